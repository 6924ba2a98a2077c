package career

import (
	"fmt"
	"iter"
	"strings"
)

// Profile is a named user holding a set of competencies keyed by
// normalized competency name. Competencies keep their insertion order.
//
// A Profile is not safe for concurrent mutation; callers that share one
// across goroutines are responsible for synchronization.
type Profile struct {
	Owner string

	order  []string
	byName map[string]Competency
}

// NewProfile creates an empty profile for the given owner.
func NewProfile(owner string) *Profile {
	return &Profile{
		Owner:  strings.TrimSpace(owner),
		byName: make(map[string]Competency),
	}
}

// AddOrUpdateCompetency validates and upserts a competency. An entry with
// the same normalized name is overwritten in place, keeping its original
// position in the listing order.
func (p *Profile) AddOrUpdateCompetency(name string, level int) error {
	key := Normalize(name)
	if key == "" {
		return fmt.Errorf("competency name %q: %w", name, ErrInvalidName)
	}

	if !validLevel(level) {
		return fmt.Errorf("competency %q level %d: %w", key, level, ErrInvalidLevel)
	}

	if _, ok := p.byName[key]; !ok {
		p.order = append(p.order, key)
	}

	p.byName[key] = Competency{
		Name:  strings.TrimSpace(name),
		Level: level,
	}

	return nil
}

// RemoveCompetency deletes a competency by name. Removing an absent
// competency is a no-op.
func (p *Profile) RemoveCompetency(name string) {
	key := Normalize(name)
	if _, ok := p.byName[key]; !ok {
		return
	}

	delete(p.byName, key)
	for idx, existing := range p.order {
		if existing == key {
			p.order = append(p.order[:idx], p.order[idx+1:]...)
			break
		}
	}
}

// All returns a restartable iterator over the competencies in insertion order.
func (p *Profile) All() iter.Seq[Competency] {
	return func(yield func(Competency) bool) {
		for _, key := range p.order {
			if !yield(p.byName[key]) {
				return
			}
		}
	}
}

// Level reports the proficiency level for the named competency and whether
// the profile has it at all.
func (p *Profile) Level(name string) (int, bool) {
	c, ok := p.byName[Normalize(name)]
	return c.Level, ok
}

// Len returns the number of competencies in the profile.
func (p *Profile) Len() int {
	return len(p.order)
}
