// Package catalog holds the fixed category set and the per-run index of
// news codes used to validate user input.
package catalog

// Categories is the closed set of source categories, in display order.
var Categories = []string{
	"business",
	"entertainment",
	"gaming",
	"general",
	"music",
	"politics",
	"science-and-nature",
	"sport",
	"technology",
}

// IsCategory reports whether name is one of Categories. Matching is exact.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Catalog is the ordered list of news codes returned by the sources
// endpoint. Duplicates are kept as received.
type Catalog struct {
	codes []string
}

// New builds a Catalog from codes. The slice is copied.
func New(codes []string) *Catalog {
	return &Catalog{codes: append([]string(nil), codes...)}
}

// Contains reports whether code was returned by the API.
func (c *Catalog) Contains(code string) bool {
	if c == nil {
		return false
	}
	for _, k := range c.codes {
		if k == code {
			return true
		}
	}
	return false
}

// Len returns the number of codes, duplicates included.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.codes)
}
