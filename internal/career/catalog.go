package career

import (
	"fmt"
	"iter"
)

// Catalog is an ordered collection of careers. It is built once at
// startup and read-only afterwards; Add exists for explicit
// administrative extension (such as careers declared in the config file)
// and is not part of the normal request flow. A catalog that is no longer
// mutated is safe for concurrent readers.
type Catalog struct {
	careers []*Career
}

// NewCatalog builds a catalog from the given careers, rejecting
// duplicate names (case-insensitive).
func NewCatalog(careers ...*Career) (*Catalog, error) {
	c := &Catalog{}
	for _, entry := range careers {
		if err := c.Add(entry); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends a career to the catalog. Administrative operation.
func (c *Catalog) Add(entry *Career) error {
	if entry == nil {
		return fmt.Errorf("career is required")
	}

	if existing := c.FindByName(entry.Name); existing != nil {
		return fmt.Errorf("career %q is already in the catalog", entry.Name)
	}

	c.careers = append(c.careers, entry)
	return nil
}

// All returns a restartable iterator over the careers in catalog order.
func (c *Catalog) All() iter.Seq[*Career] {
	return func(yield func(*Career) bool) {
		for _, entry := range c.careers {
			if !yield(entry) {
				return
			}
		}
	}
}

// FindByName returns the career with the given name, matched
// case-insensitively, or nil when the catalog has no such career.
func (c *Catalog) FindByName(name string) *Career {
	key := Normalize(name)
	for _, entry := range c.careers {
		if Normalize(entry.Name) == key {
			return entry
		}
	}
	return nil
}

// Names returns the career names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.careers))
	for _, entry := range c.careers {
		names = append(names, entry.Name)
	}
	return names
}

// Len returns the number of careers in the catalog.
func (c *Catalog) Len() int {
	return len(c.careers)
}
