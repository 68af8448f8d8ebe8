package catalog

import (
	"strings"

	"github.com/spf13/cast"
)

// Syllable returns a value from the syllables set.
func (c *Catalog) Syllable() string {
	return c.drawString(SetSyllables)
}

// WordOptions configures Word.
type WordOptions struct {
	// Syllables joins that many syllables into a word. Zero draws from the
	// words set, falling back to one to three syllables when it is empty.
	Syllables int
}

// Word returns a lowercase word.
func (c *Catalog) Word(opts WordOptions) string {
	n := opts.Syllables
	if n <= 0 {
		if v, ok := c.sets.FromSet(SetWords); ok {
			if w := cast.ToString(v); w != "" {
				return w
			}
		}
		n = c.engine.Range(1, 3)
	}
	var b strings.Builder
	for range n {
		b.WriteString(c.Syllable())
	}
	return b.String()
}

// SentenceOptions configures Sentence. Zero Words picks 12 to 18.
type SentenceOptions struct {
	Words int
}

// Sentence returns words joined by spaces, capitalized and ending in a period.
func (c *Catalog) Sentence(opts SentenceOptions) string {
	n := opts.Words
	if n <= 0 {
		n = c.engine.Range(12, 18)
	}
	ws := make([]string, n)
	for i := range ws {
		ws[i] = c.Word(WordOptions{})
	}
	ws[0] = c.capitalize(ws[0])
	return strings.Join(ws, " ") + "."
}

// ParagraphOptions configures Paragraph. Zero Sentences picks 3 to 7.
type ParagraphOptions struct {
	Sentences int
}

// Paragraph returns sentences joined by single spaces.
func (c *Catalog) Paragraph(opts ParagraphOptions) string {
	n := opts.Sentences
	if n <= 0 {
		n = c.engine.Range(3, 7)
	}
	ss := make([]string, n)
	for i := range ss {
		ss[i] = c.Sentence(SentenceOptions{})
	}
	return strings.Join(ss, " ")
}
