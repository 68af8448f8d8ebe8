package catalog

import (
	"errors"
	"math"
	"net/netip"
	"regexp"
	"slices"
	"strings"
	"testing"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/louisbranch/chance/internal/core/dataset"
	"github.com/louisbranch/chance/internal/core/rng"
	"github.com/louisbranch/chance/internal/core/selection"
)

func newCatalog(seed uint64) *Catalog {
	engine := rng.New(seed)
	sets := dataset.NewRegistry(engine)
	Install(sets)
	return New(engine, sets)
}

func TestCatalogDeterministic(t *testing.T) {
	a := newCatalog(99)
	b := newCatalog(99)

	for i := 0; i < 20; i++ {
		if x, y := a.Name(NameOptions{Middle: true}), b.Name(NameOptions{Middle: true}); x != y {
			t.Fatalf("Name diverged: %q vs %q", x, y)
		}
		if x, y := a.Email(), b.Email(); x != y {
			t.Fatalf("Email diverged: %q vs %q", x, y)
		}
		if x, y := a.UUID(), b.UUID(); x != y {
			t.Fatalf("UUID diverged: %q vs %q", x, y)
		}
		if x, y := a.Date(DateOptions{}), b.Date(DateOptions{}); !x.Equal(y) {
			t.Fatalf("Date diverged: %v vs %v", x, y)
		}
	}
}

func TestInstallDefinesDefaultSets(t *testing.T) {
	sets := dataset.NewRegistry(rng.New(1))
	Install(sets)

	want := []string{
		SetAges, SetCards, SetDays, SetFirstNames, SetGenders, SetLastNames,
		SetMonths, SetPrefixes, SetSuffixes, SetSyllables, SetTLDs, SetWords,
	}
	slices.Sort(want)
	if got := sets.Names(); !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	if values, _ := sets.Values(SetCards); len(values) != 52 {
		t.Fatalf("cards set has %d values, want 52", len(values))
	}
}

func TestBool(t *testing.T) {
	c := newCatalog(1)
	for i := 0; i < 200; i++ {
		if !c.Bool(BoolOptions{Likelihood: 100}) {
			t.Fatal("Likelihood 100 returned false")
		}
		if c.Bool(BoolOptions{Likelihood: -1}) {
			t.Fatal("negative Likelihood returned true")
		}
	}

	trues := 0
	for i := 0; i < 1000; i++ {
		if c.Bool(BoolOptions{}) {
			trues++
		}
	}
	if trues < 400 || trues > 600 {
		t.Fatalf("default Bool returned true %d/1000 times", trues)
	}
}

func TestNumbers(t *testing.T) {
	c := newCatalog(2)
	for i := 0; i < 500; i++ {
		if v := c.Integer(IntegerOptions{Min: -5, Max: 5}); v < -5 || v > 5 {
			t.Fatalf("Integer() = %d, out of [-5,5]", v)
		}
		if v := c.Natural(10); v < 0 || v > 10 {
			t.Fatalf("Natural(10) = %d", v)
		}
		if v := c.Natural(0); v < 0 {
			t.Fatalf("Natural(0) = %d", v)
		}
		v := c.Float(FloatOptions{Min: 1.5, Max: 2.5, Fixed: 2})
		if v < 1.5 || v > 2.5 {
			t.Fatalf("Float() = %v, out of [1.5,2.5]", v)
		}
		if scaled := v * 100; math.Abs(scaled-math.Round(scaled)) > 1e-6 {
			t.Fatalf("Float() = %v has more than 2 decimals", v)
		}
		if v := c.Float(FloatOptions{}); v < 0 || v > 1 {
			t.Fatalf("Float() = %v, out of [0,1]", v)
		}
	}
	if v := c.Float(FloatOptions{Min: 3, Max: 3}); v != 3 {
		t.Fatalf("degenerate Float() = %v, want 3", v)
	}
}

func TestCharacterAndString(t *testing.T) {
	c := newCatalog(3)
	for i := 0; i < 100; i++ {
		if ch := c.Character(CharacterOptions{Pool: "xyz"}); !strings.Contains("xyz", ch) || len(ch) != 1 {
			t.Fatalf("Character() = %q, want one of xyz", ch)
		}
		if ch := c.Character(CharacterOptions{Kind: CharDigit}); !unicode.IsDigit(rune(ch[0])) {
			t.Fatalf("Character(digit) = %q", ch)
		}
	}
	if s := c.String(StringOptions{Length: 12, Kind: CharUpper}); len(s) != 12 || strings.ToUpper(s) != s {
		t.Fatalf("String() = %q", s)
	}
	if s := c.String(StringOptions{}); len(s) < 5 || len(s) > 20 {
		t.Fatalf("default String() length %d", len(s))
	}
	if h := c.Hash(0); !regexp.MustCompile(`^[0-9a-f]{40}$`).MatchString(h) {
		t.Fatalf("Hash() = %q", h)
	}
}

func TestWordUsesSyllables(t *testing.T) {
	c := newCatalog(4)
	c.Sets().Define(SetSyllables, dataset.Fixed("ka"))

	if got := c.Word(WordOptions{Syllables: 3}); got != "kakaka" {
		t.Fatalf("Word(3) = %q, want kakaka", got)
	}

	c.Sets().Remove(SetWords)
	got := c.Word(WordOptions{})
	if got != "ka" && got != "kaka" && got != "kakaka" {
		t.Fatalf("Word() = %q, want one to three syllables", got)
	}
}

func TestSentenceAndParagraph(t *testing.T) {
	c := newCatalog(5)
	s := c.Sentence(SentenceOptions{Words: 6})
	if !strings.HasSuffix(s, ".") {
		t.Fatalf("Sentence() = %q, want trailing period", s)
	}
	if n := len(strings.Fields(s)); n != 6 {
		t.Fatalf("Sentence() has %d words, want 6", n)
	}
	if !unicode.IsUpper([]rune(s)[0]) {
		t.Fatalf("Sentence() = %q, want capitalized", s)
	}

	p := c.Paragraph(ParagraphOptions{Sentences: 3})
	if n := strings.Count(p, "."); n != 3 {
		t.Fatalf("Paragraph() has %d sentences, want 3", n)
	}
}

func TestName(t *testing.T) {
	c := newCatalog(6)
	if n := len(strings.Fields(c.Name(NameOptions{}))); n != 2 {
		t.Fatalf("Name() has %d parts, want 2", n)
	}
	full := c.Name(NameOptions{Middle: true, Prefix: true, Suffix: true})
	if n := len(strings.Fields(full)); n != 5 {
		t.Fatalf("Name(all) = %q, want 5 parts", full)
	}
}

func TestRedefinedSetsChangeOutput(t *testing.T) {
	c := newCatalog(7)
	c.Sets().Define(SetFirstNames, dataset.Fixed("Zed"))
	c.Sets().Define(SetLastNames, dataset.Generated(func() any { return "Quux" }))

	if got := c.Name(NameOptions{}); got != "Zed Quux" {
		t.Fatalf("Name() = %q, want Zed Quux", got)
	}

	c.Sets().Remove(SetGenders)
	if got := c.Gender(); got != "" {
		t.Fatalf("Gender() with no set = %q, want empty", got)
	}
}

func TestAge(t *testing.T) {
	c := newCatalog(8)
	for _, kind := range []string{AgeChild, AgeTeen, AgeAdult, AgeSenior, ""} {
		band, ok := c.ageBand(kind)
		if kind == "" {
			band, ok = c.ageBand(AgeAdult)
		}
		if !ok {
			t.Fatalf("no band for %q", kind)
		}
		for i := 0; i < 50; i++ {
			if v := c.Age(AgeOptions{Kind: kind}); v < band.Min || v > band.Max {
				t.Fatalf("Age(%q) = %d, out of [%d,%d]", kind, v, band.Min, band.Max)
			}
		}
	}

	c.Sets().Define(SetAges, dataset.Fixed(map[string]any{"kind": "elder", "min": 90.0, "max": 95.0}))
	for i := 0; i < 20; i++ {
		if v := c.Age(AgeOptions{Kind: "elder"}); v < 90 || v > 95 {
			t.Fatalf("Age(elder) = %d", v)
		}
	}
	if v := c.Age(AgeOptions{Kind: "unknown"}); v < 1 || v > 100 {
		t.Fatalf("Age(unknown) = %d", v)
	}
}

func TestBirthday(t *testing.T) {
	c := newCatalog(9)
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		b := c.Birthday(now)
		if b.Year() < 2026-65 || b.Year() > 2026-18 {
			t.Fatalf("Birthday() = %v", b)
		}
		if b.Hour() != 0 || b.Minute() != 0 {
			t.Fatalf("Birthday() = %v, want midnight", b)
		}
	}
}

func TestFormattedNumbers(t *testing.T) {
	c := newCatalog(10)
	if s := c.SSN(); !regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`).MatchString(s) {
		t.Fatalf("SSN() = %q", s)
	}
	if s := c.Phone(); !regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`).MatchString(s) {
		t.Fatalf("Phone() = %q", s)
	}
}

func TestDate(t *testing.T) {
	c := newCatalog(11)
	for i := 0; i < 200; i++ {
		d := c.Date(DateOptions{})
		if d.Year() < DefaultMinYear || d.Year() > DefaultMaxYear {
			t.Fatalf("Date() year %d", d.Year())
		}
		if d.Day() > DaysIn(d.Year(), d.Month()) {
			t.Fatalf("Date() = %v has an invalid day", d)
		}
	}

	lo := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		d := c.Date(DateOptions{Min: lo, Max: hi})
		if d.Before(lo) || d.After(hi) {
			t.Fatalf("bounded Date() = %v", d)
		}
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2023, time.April, 30},
		{2023, time.December, 31},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
	if daysInYear(2024) != 366 || daysInYear(2023) != 365 {
		t.Fatal("daysInYear miscounts leap years")
	}
}

func TestTimeParts(t *testing.T) {
	c := newCatalog(12)
	for i := 0; i < 100; i++ {
		if h := c.Hour(false); h < 1 || h > 12 {
			t.Fatalf("Hour(false) = %d", h)
		}
		if h := c.Hour(true); h < 0 || h > 23 {
			t.Fatalf("Hour(true) = %d", h)
		}
		if m := c.Minute(); m < 0 || m > 59 {
			t.Fatalf("Minute() = %d", m)
		}
		if ap := c.AmPm(); ap != "am" && ap != "pm" {
			t.Fatalf("AmPm() = %q", ap)
		}
		if y := c.Year(YearOptions{Min: 2000, Max: 2010}); y < 2000 || y > 2010 {
			t.Fatalf("Year() = %d", y)
		}
	}
	if !slices.Contains(months, c.Month()) {
		t.Fatal("Month() returned a value outside the months set")
	}
	if !slices.Contains(days, c.Day()) {
		t.Fatal("Day() returned a value outside the days set")
	}
}

func TestWeb(t *testing.T) {
	c := newCatalog(13)
	for i := 0; i < 50; i++ {
		ip, err := netip.ParseAddr(c.IP())
		if err != nil || !ip.Is4() {
			t.Fatalf("IP() not an IPv4 address: %v", err)
		}
		ip6, err := netip.ParseAddr(c.IPv6())
		if err != nil || !ip6.Is6() {
			t.Fatalf("IPv6() not an IPv6 address: %v", err)
		}
	}

	if e := c.Email(); strings.Count(e, "@") != 1 || !strings.Contains(e, ".") {
		t.Fatalf("Email() = %q", e)
	}
	if u := c.URI(URIOptions{Scheme: "https", Path: "/docs"}); !strings.HasPrefix(u, "https://") || !strings.HasSuffix(u, "/docs") {
		t.Fatalf("URI() = %q", u)
	}
	if h := c.Hashtag(); !strings.HasPrefix(h, "#") {
		t.Fatalf("Hashtag() = %q", h)
	}
	if h := c.Twitter(); !strings.HasPrefix(h, "@") {
		t.Fatalf("Twitter() = %q", h)
	}

	formats := map[ColorFormat]*regexp.Regexp{
		ColorHex:      regexp.MustCompile(`^#[0-9a-f]{6}$`),
		ColorShortHex: regexp.MustCompile(`^#[0-9a-f]{3}$`),
		ColorRGB:      regexp.MustCompile(`^rgb\(\d{1,3}, \d{1,3}, \d{1,3}\)$`),
	}
	for format, re := range formats {
		if got := c.Color(ColorOptions{Format: format}); !re.MatchString(got) {
			t.Fatalf("Color(%s) = %q", format, got)
		}
	}
}

func TestCards(t *testing.T) {
	c := newCatalog(14)

	deck := c.Deck()
	if len(deck) != 52 {
		t.Fatalf("Deck() has %d cards", len(deck))
	}
	sorted := slices.Sorted(slices.Values(deck))
	want := slices.Sorted(slices.Values(Cards()))
	if !slices.Equal(sorted, want) {
		t.Fatal("Deck() is not a permutation of the full deck")
	}

	hand, err := c.PokerHand()
	if err != nil {
		t.Fatalf("PokerHand() error = %v", err)
	}
	if len(hand) != PokerHandSize || len(slices.Compact(slices.Sorted(slices.Values(hand)))) != PokerHandSize {
		t.Fatalf("PokerHand() = %v, want %d distinct cards", hand, PokerHandSize)
	}

	c.Sets().Define(SetCards, dataset.Fixed("AS", "KS"))
	if _, err := c.PokerHand(); !errors.Is(err, selection.ErrCountExceedsPopulation) {
		t.Fatalf("PokerHand() error = %v, want ErrCountExceedsPopulation", err)
	}
}

func TestDice(t *testing.T) {
	c := newCatalog(15)
	result, err := c.Dice("2d6+1")
	if err != nil {
		t.Fatalf("Dice() error = %v", err)
	}
	if result.Total < 3 || result.Total > 13 {
		t.Fatalf("Dice(2d6+1) total = %d", result.Total)
	}
	for i := 0; i < 100; i++ {
		if v := c.D20(); v < 1 || v > 20 {
			t.Fatalf("D20() = %d", v)
		}
		if v := c.D4(); v < 1 || v > 4 {
			t.Fatalf("D4() = %d", v)
		}
	}
}

func TestUUID(t *testing.T) {
	c := newCatalog(16)
	id, err := uuid.Parse(c.UUID())
	if err != nil {
		t.Fatalf("UUID() did not parse: %v", err)
	}
	if id.Version() != 4 || id.Variant() != uuid.RFC4122 {
		t.Fatalf("UUID() version %d variant %v", id.Version(), id.Variant())
	}
	if newCatalog(16).UUID() != id.String() {
		t.Fatal("UUID() differs under the same seed")
	}
}

func TestID(t *testing.T) {
	c := newCatalog(19)
	got := c.ID()
	if !regexp.MustCompile(`^[a-z2-7]{26}$`).MatchString(got) {
		t.Fatalf("ID() = %q", got)
	}
	if newCatalog(19).ID() != got {
		t.Fatal("ID() differs under the same seed")
	}
}

func TestFormatDollar(t *testing.T) {
	c := newCatalog(17)
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{123456789, "$1,234,567.89"},
		{-1050, "-$10.50"},
		{math.MinInt64, "-$92,233,720,368,547,758.08"},
	}
	for _, tt := range tests {
		if got := c.FormatDollar(tt.cents); got != tt.want {
			t.Errorf("FormatDollar(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
	if got := c.Dollar(DollarOptions{Max: 5}); !regexp.MustCompile(`^\$[0-5]\.\d{2}$`).MatchString(got) {
		t.Fatalf("Dollar(5) = %q", got)
	}
}

func TestDollarClampsHugeBounds(t *testing.T) {
	c := newCatalog(17)
	amount := regexp.MustCompile(`^\$[0-9,]+\.\d{2}$`)
	for _, max := range []float64{1e17, 1e300, math.Inf(1), math.NaN(), -5} {
		for i := 0; i < 50; i++ {
			got := c.Dollar(DollarOptions{Max: max})
			if !amount.MatchString(got) {
				t.Fatalf("Dollar(%v) = %q", max, got)
			}
			digits := strings.ReplaceAll(strings.TrimPrefix(got, "$"), ",", "")
			whole, _, _ := strings.Cut(digits, ".")
			if len(whole) > 16 {
				t.Fatalf("Dollar(%v) = %q exceeds MaxDollar", max, got)
			}
		}
	}
}

func TestGenerate(t *testing.T) {
	c := newCatalog(18)
	for _, name := range Names() {
		if _, err := c.Generate(name); err != nil {
			t.Fatalf("Generate(%q) error = %v", name, err)
		}
	}
	if _, err := c.Generate("nope"); !errors.Is(err, ErrUnknownGenerator) {
		t.Fatalf("Generate(nope) error = %v, want ErrUnknownGenerator", err)
	}
	if !slices.IsSorted(Names()) {
		t.Fatal("Names() is not sorted")
	}
}
