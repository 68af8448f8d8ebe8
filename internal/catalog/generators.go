package catalog

import (
	"fmt"
	"maps"
	"slices"
	"time"

	apperrors "github.com/louisbranch/chance/internal/platform/errors"
)

// ErrUnknownGenerator indicates a generator name that is not registered.
var ErrUnknownGenerator = apperrors.New(apperrors.CodeUnknownGenerator, "unknown generator")

// Generator produces one value using default options.
type Generator func(c *Catalog) (any, error)

func simple[T any](fn func(c *Catalog) T) Generator {
	return func(c *Catalog) (any, error) { return fn(c), nil }
}

// generators maps the names exposed on the command line and to scripts.
var generators = map[string]Generator{
	"bool":      simple(func(c *Catalog) bool { return c.Bool(BoolOptions{}) }),
	"integer":   simple(func(c *Catalog) int { return c.Integer(IntegerOptions{}) }),
	"natural":   simple(func(c *Catalog) int { return c.Natural(0) }),
	"float":     simple(func(c *Catalog) float64 { return c.Float(FloatOptions{}) }),
	"character": simple(func(c *Catalog) string { return c.Character(CharacterOptions{}) }),
	"string":    simple(func(c *Catalog) string { return c.String(StringOptions{}) }),
	"hash":      simple(func(c *Catalog) string { return c.Hash(0) }),

	"syllable":  simple((*Catalog).Syllable),
	"word":      simple(func(c *Catalog) string { return c.Word(WordOptions{}) }),
	"sentence":  simple(func(c *Catalog) string { return c.Sentence(SentenceOptions{}) }),
	"paragraph": simple(func(c *Catalog) string { return c.Paragraph(ParagraphOptions{}) }),

	"gender":    simple((*Catalog).Gender),
	"prefix":    simple((*Catalog).Prefix),
	"suffix":    simple((*Catalog).Suffix),
	"firstName": simple((*Catalog).FirstName),
	"lastName":  simple((*Catalog).LastName),
	"name":      simple(func(c *Catalog) string { return c.Name(NameOptions{}) }),
	"age":       simple(func(c *Catalog) int { return c.Age(AgeOptions{}) }),
	"birthday":  simple(func(c *Catalog) string { return c.Birthday(time.Now()).Format(time.DateOnly) }),
	"ssn":       simple((*Catalog).SSN),
	"phone":     simple((*Catalog).Phone),

	"month":     simple((*Catalog).Month),
	"day":       simple((*Catalog).Day),
	"year":      simple(func(c *Catalog) int { return c.Year(YearOptions{}) }),
	"hour":      simple(func(c *Catalog) int { return c.Hour(false) }),
	"minute":    simple((*Catalog).Minute),
	"second":    simple((*Catalog).Second),
	"ampm":      simple((*Catalog).AmPm),
	"date":      simple(func(c *Catalog) string { return c.Date(DateOptions{}).Format(time.DateOnly) }),
	"timestamp": simple((*Catalog).Timestamp),

	"tld":     simple((*Catalog).TLD),
	"domain":  simple((*Catalog).Domain),
	"email":   simple((*Catalog).Email),
	"ip":      simple((*Catalog).IP),
	"ipv6":    simple((*Catalog).IPv6),
	"uri":     simple(func(c *Catalog) string { return c.URI(URIOptions{}) }),
	"hashtag": simple((*Catalog).Hashtag),
	"twitter": simple((*Catalog).Twitter),
	"color":   simple(func(c *Catalog) string { return c.Color(ColorOptions{}) }),

	"card": simple((*Catalog).Card),
	"deck": simple((*Catalog).Deck),
	"pokerHand": func(c *Catalog) (any, error) {
		return c.PokerHand()
	},
	"d4":   simple((*Catalog).D4),
	"d6":   simple((*Catalog).D6),
	"d8":   simple((*Catalog).D8),
	"d10":  simple((*Catalog).D10),
	"d12":  simple((*Catalog).D12),
	"d20":  simple((*Catalog).D20),
	"d100": simple((*Catalog).D100),

	"uuid":   simple((*Catalog).UUID),
	"id":     simple((*Catalog).ID),
	"dollar": simple(func(c *Catalog) string { return c.Dollar(DollarOptions{}) }),
}

// Lookup returns the generator registered under name.
func Lookup(name string) (Generator, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, apperrors.WrapWithMetadata(
			apperrors.CodeUnknownGenerator,
			fmt.Sprintf("unknown generator: %s", name),
			map[string]string{"Name": name},
			ErrUnknownGenerator,
		)
	}
	return gen, nil
}

// Names returns every registered generator name in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(generators))
}

// Generate runs the generator registered under name.
func (c *Catalog) Generate(name string) (any, error) {
	gen, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return gen(c)
}
