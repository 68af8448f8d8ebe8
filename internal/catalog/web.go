package catalog

import (
	"fmt"
	"strings"
)

// TLD returns a top-level domain without the leading dot.
func (c *Catalog) TLD() string {
	return c.drawString(SetTLDs)
}

// Domain returns a domain such as "ashen.io".
func (c *Catalog) Domain() string {
	return c.Word(WordOptions{}) + "." + c.TLD()
}

// Email returns an address at a random domain.
func (c *Catalog) Email() string {
	return c.Word(WordOptions{}) + "@" + c.Domain()
}

// IP returns a dotted IPv4 address whose first and last octets avoid 0 and 255.
func (c *Catalog) IP() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		c.engine.Range(1, 254),
		c.engine.Range(0, 255),
		c.engine.Range(0, 255),
		c.engine.Range(1, 254),
	)
}

// IPv6 returns eight groups of four hex digits.
func (c *Catalog) IPv6() string {
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = c.Hash(4)
	}
	return strings.Join(groups, ":")
}

// URIOptions configures URI. Scheme defaults to http and Path to a word.
type URIOptions struct {
	Scheme string
	Path   string
}

// URI returns scheme://domain/path.
func (c *Catalog) URI(opts URIOptions) string {
	scheme := opts.Scheme
	if scheme == "" {
		scheme = "http"
	}
	path := strings.TrimPrefix(opts.Path, "/")
	if path == "" {
		path = c.Word(WordOptions{})
	}
	return scheme + "://" + c.Domain() + "/" + path
}

// Hashtag returns a word prefixed with #.
func (c *Catalog) Hashtag() string {
	return "#" + c.Word(WordOptions{})
}

// Twitter returns a handle prefixed with @.
func (c *Catalog) Twitter() string {
	return "@" + c.Word(WordOptions{})
}

// ColorFormat selects how Color renders.
type ColorFormat string

const (
	ColorHex      ColorFormat = "hex"
	ColorShortHex ColorFormat = "shorthex"
	ColorRGB      ColorFormat = "rgb"
)

// ColorOptions configures Color. The zero value renders hex.
type ColorOptions struct {
	Format ColorFormat
}

// Color returns a color like "#a1b2c3", "#ab3" or "rgb(12, 200, 7)".
func (c *Catalog) Color(opts ColorOptions) string {
	switch opts.Format {
	case ColorShortHex:
		return fmt.Sprintf("#%x%x%x", c.engine.Range(0, 15), c.engine.Range(0, 15), c.engine.Range(0, 15))
	case ColorRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.engine.Range(0, 255), c.engine.Range(0, 255), c.engine.Range(0, 255))
	default:
		return fmt.Sprintf("#%02x%02x%02x", c.engine.Range(0, 255), c.engine.Range(0, 255), c.engine.Range(0, 255))
	}
}
