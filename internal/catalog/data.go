package catalog

import "github.com/louisbranch/chance/internal/core/dataset"

// Default data set names.
const (
	SetMonths     = "months"
	SetDays       = "days"
	SetTLDs       = "tlds"
	SetGenders    = "genders"
	SetAges       = "ages"
	SetPrefixes   = "prefixes"
	SetSuffixes   = "suffixes"
	SetCards      = "cards"
	SetSyllables  = "syllables"
	SetFirstNames = "firstNames"
	SetLastNames  = "lastNames"
	SetWords      = "words"
)

// AgeBand is an entry of the ages data set. Min and Max are inclusive.
type AgeBand struct {
	Kind string
	Min  int
	Max  int
}

// Age band kinds.
const (
	AgeChild  = "child"
	AgeTeen   = "teen"
	AgeAdult  = "adult"
	AgeSenior = "senior"
)

// Install defines every default data set in sets, replacing existing
// definitions with the same names.
func Install(sets *dataset.Registry) {
	sets.Define(SetMonths, dataset.FixedOf(months))
	sets.Define(SetDays, dataset.FixedOf(days))
	sets.Define(SetTLDs, dataset.FixedOf(tlds))
	sets.Define(SetGenders, dataset.FixedOf(genders))
	sets.Define(SetAges, dataset.FixedOf(ageBands))
	sets.Define(SetPrefixes, dataset.FixedOf(prefixes))
	sets.Define(SetSuffixes, dataset.FixedOf(suffixes))
	sets.Define(SetCards, dataset.FixedOf(Cards()))
	sets.Define(SetSyllables, dataset.FixedOf(syllables))
	sets.Define(SetFirstNames, dataset.FixedOf(firstNames))
	sets.Define(SetLastNames, dataset.FixedOf(lastNames))
	sets.Define(SetWords, dataset.FixedOf(words))
}

// Cards returns a fresh, ordered 52-card deck. Each card is rank then suit,
// e.g. "QH" or "10S".
func Cards() []string {
	deck := make([]string, 0, len(cardSuits)*len(cardRanks))
	for _, suit := range cardSuits {
		for _, rank := range cardRanks {
			deck = append(deck, rank+suit)
		}
	}
	return deck
}

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var days = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var tlds = []string{
	"com", "org", "edu", "gov", "net", "io", "dev", "co.uk", "space", "info",
}

var genders = []string{"Male", "Female"}

var ageBands = []AgeBand{
	{Kind: AgeChild, Min: 1, Max: 12},
	{Kind: AgeTeen, Min: 13, Max: 19},
	{Kind: AgeAdult, Min: 18, Max: 65},
	{Kind: AgeSenior, Min: 65, Max: 100},
}

var prefixes = []string{"Mr.", "Mrs.", "Ms.", "Miss", "Dr.", "Prof."}

var suffixes = []string{"Jr.", "Sr.", "II", "III", "IV", "PhD", "MD"}

var cardSuits = []string{"C", "D", "H", "S"}

var cardRanks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var syllables = []string{
	"ba", "be", "bi", "bo", "bu", "ca", "ce", "ci", "co", "cu",
	"da", "de", "di", "do", "du", "fa", "fe", "fi", "fo", "fu",
	"ga", "ge", "gi", "go", "gu", "ka", "ke", "ki", "ko", "ku",
	"la", "le", "li", "lo", "lu", "ma", "me", "mi", "mo", "mu",
	"na", "ne", "ni", "no", "nu", "pa", "pe", "pi", "po", "pu",
	"ra", "re", "ri", "ro", "ru", "sa", "se", "si", "so", "su",
	"ta", "te", "ti", "to", "tu", "va", "ve", "vi", "vo", "vu",
	"zan", "tor", "mel", "rin", "dor", "vel", "kas", "mir", "thal", "wen",
}

// First names - culturally diverse.
var firstNames = []string{
	// Western European inspired
	"Rowan", "Elena", "Marcus", "Vera", "Theron", "Lyra",
	"Aldric", "Isolde", "Gareth", "Celeste",
	// African inspired
	"Amara", "Kofi", "Zara", "Jabari", "Nia", "Kwame",
	"Ayo", "Imani", "Sekou", "Adaeze",
	// East Asian inspired
	"Kenji", "Mei", "Hiroshi", "Yuki", "Jin", "Sora",
	"Hana", "Takeshi", "Akira", "Sakura",
	// South Asian inspired
	"Priya", "Arjun", "Kavya", "Ravi", "Anaya", "Dev",
	"Lakshmi", "Vikram", "Nisha", "Arun",
	// Middle Eastern inspired
	"Layla", "Nasir", "Farah", "Khalil", "Zahra", "Omar",
	"Soraya", "Rashid", "Leila", "Tariq",
	// Latin American inspired
	"Mateo", "Lucia", "Diego", "Carmen", "Rafael", "Sofia",
	"Camila", "Alejandro", "Valentina", "Miguel",
}

var lastNames = []string{
	// European inspired
	"Blackwood", "Ashford", "Thornwick", "Fairchild", "Greymoor",
	// African inspired
	"Okonkwo", "Mbeki", "Diallo", "Nkrumah", "Osei",
	"Mensah", "Kone", "Traore", "Achebe", "Bankole",
	// Asian inspired
	"Tanaka", "Chen", "Sharma", "Nguyen", "Kim",
	"Nakamura", "Patel", "Li", "Yamamoto", "Singh",
	// Middle Eastern inspired
	"Hakim", "Farouk", "Barzani", "Nazari",
	"Khoury", "Abbasi", "Karimi", "Mansouri",
	// Latin inspired
	"Reyes", "Mendoza", "Castillo", "Vargas", "Delgado",
	"Moreno", "Fuentes", "Navarro", "Santos", "Vega",
}

// Words for lorem-style text; all lowercase.
var words = []string{
	"crimson", "forgotten", "shattered", "eternal", "hollow",
	"burning", "silent", "lost", "golden", "jade",
	"obsidian", "amber", "silver", "frozen", "verdant",
	"twilight", "iron", "sapphire", "ashen", "emerald",
	"vale", "kingdom", "throne", "realm", "keep",
	"tower", "coast", "marsh", "oasis", "summit",
	"grove", "expanse", "depths", "citadel", "sanctuary",
	"dominion", "frontier", "wasteland", "haven", "abyss",
}
