// Package recommend scores careers against a profile and ranks them.
// Recommend is a pure function of its inputs: it never mutates the
// profile or the catalog and performs no I/O.
package recommend

import (
	"errors"
	"sort"
	"strings"

	"github.com/spigell/career-compass/internal/career"
)

// ErrEmptyCatalog is returned when Recommend is called with a catalog
// that has no careers.
var ErrEmptyCatalog = errors.New("catalog has no careers")

// Options configures result filtering and truncation.
type Options struct {
	// MinRatio drops careers whose match ratio is below this value
	// before ranking. Zero keeps everything.
	MinRatio float64
	// TopN truncates the ranked result to the first N entries.
	// Zero or negative means unlimited.
	TopN int
}

// Gap records one unsatisfied requirement: the level the career asks for
// and what the profile actually has. Present is false when the profile
// lacks the competency entirely, in which case ActualLevel is zero.
type Gap struct {
	Skill         string
	RequiredLevel int
	ActualLevel   int
	Present       bool
}

// Recommendation is the scored result for a single career.
type Recommendation struct {
	Career   string
	Ratio    float64
	Matched  int
	Required int
	// Missing lists the unsatisfied requirements in the career's
	// declaration order. len(Missing) == Required - Matched.
	Missing []Gap
}

// Recommend scores every career in the catalog against the profile and
// returns them ranked: ratio descending, then matched count descending,
// then career name ascending (case-insensitive). The order is a
// deterministic total order, so identical inputs always produce
// identical output.
//
// An empty profile is legal and simply satisfies nothing. A career with
// zero requirements counts as fully matched by convention.
func Recommend(profile *career.Profile, catalog *career.Catalog, opts Options) ([]Recommendation, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	if profile == nil {
		profile = career.NewProfile("")
	}

	results := make([]Recommendation, 0, catalog.Len())
	for c := range catalog.All() {
		rec := score(profile, c)
		if rec.Ratio < opts.MinRatio {
			continue
		}
		results = append(results, rec)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Ratio != results[j].Ratio {
			return results[i].Ratio > results[j].Ratio
		}
		if results[i].Matched != results[j].Matched {
			return results[i].Matched > results[j].Matched
		}
		return strings.ToLower(results[i].Career) < strings.ToLower(results[j].Career)
	})

	if opts.TopN > 0 && len(results) > opts.TopN {
		results = results[:opts.TopN]
	}

	return results, nil
}

// score evaluates a single career. A requirement is satisfied when the
// profile has the competency at or above the required level; anything
// else lands in Missing with the observed shortfall.
func score(profile *career.Profile, c *career.Career) Recommendation {
	requirements := c.Requirements()

	rec := Recommendation{
		Career:   c.Name,
		Required: len(requirements),
	}

	for _, req := range requirements {
		level, ok := profile.Level(req.Skill)
		if ok && level >= req.MinLevel {
			rec.Matched++
			continue
		}

		rec.Missing = append(rec.Missing, Gap{
			Skill:         req.Skill,
			RequiredLevel: req.MinLevel,
			ActualLevel:   level,
			Present:       ok,
		})
	}

	// A career without requirements is a guaranteed match.
	if rec.Required == 0 {
		rec.Ratio = 1.0
		return rec
	}

	rec.Ratio = float64(rec.Matched) / float64(rec.Required)
	return rec
}
