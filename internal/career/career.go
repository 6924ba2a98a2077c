package career

import "fmt"

// Requirement is a single minimum-level requirement of a career.
type Requirement struct {
	Skill    string
	MinLevel int
}

// Career is a named occupation with minimum required levels per
// competency. Requirements keep their declaration order. A Career is
// immutable once constructed.
type Career struct {
	Name string

	requirements []Requirement
}

// NewCareer validates and builds a career. Requirement skills with the
// same normalized name collapse into one entry, last level wins.
func NewCareer(name string, requirements []Requirement) (*Career, error) {
	if Normalize(name) == "" {
		return nil, fmt.Errorf("career name %q: %w", name, ErrInvalidName)
	}

	c := &Career{Name: name}

	seen := make(map[string]int)
	for _, req := range requirements {
		key := Normalize(req.Skill)
		if key == "" {
			return nil, fmt.Errorf("career %q requirement skill %q: %w", name, req.Skill, ErrInvalidName)
		}
		if !validLevel(req.MinLevel) {
			return nil, fmt.Errorf("career %q requirement %q level %d: %w", name, key, req.MinLevel, ErrInvalidLevel)
		}

		if idx, ok := seen[key]; ok {
			c.requirements[idx].MinLevel = req.MinLevel
			continue
		}

		seen[key] = len(c.requirements)
		c.requirements = append(c.requirements, req)
	}

	return c, nil
}

// Requirements returns a copy of the requirements in declaration order.
func (c *Career) Requirements() []Requirement {
	out := make([]Requirement, len(c.requirements))
	copy(out, c.requirements)
	return out
}

// RequiredLevel reports the minimum level for the named skill and whether
// the career requires it.
func (c *Career) RequiredLevel(skill string) (int, bool) {
	key := Normalize(skill)
	for _, req := range c.requirements {
		if Normalize(req.Skill) == key {
			return req.MinLevel, true
		}
	}
	return 0, false
}
