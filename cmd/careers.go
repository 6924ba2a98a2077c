package cmd

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spigell/career-compass/internal/career"
)

// CareerConfig describes one extra catalog entry declared in the config
// file under the careers key.
type CareerConfig struct {
	Name         string         `mapstructure:"name"`
	Requirements map[string]int `mapstructure:"requirements"`
}

// buildCatalog seeds the built-in catalog and appends the careers
// declared in the config file.
func buildCatalog() (*career.Catalog, error) {
	catalog := career.Builtin()

	extra, err := extraCareers()
	if err != nil {
		return nil, err
	}

	for _, entry := range extra {
		if err := catalog.Add(entry); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

// extraCareers decodes the careers section of the config file.
// Requirement keys come out of an unordered map, so they are sorted to
// keep the catalog deterministic across runs.
func extraCareers() ([]*career.Career, error) {
	raw := viper.Get("careers")
	if raw == nil {
		return nil, nil
	}

	var configs []*CareerConfig
	if err := mapstructure.Decode(raw, &configs); err != nil {
		return nil, fmt.Errorf("decoding careers section: %w", err)
	}

	careers := make([]*career.Career, 0, len(configs))
	for _, cfg := range configs {
		skills := make([]string, 0, len(cfg.Requirements))
		for skill := range cfg.Requirements {
			skills = append(skills, skill)
		}
		sort.Strings(skills)

		requirements := make([]career.Requirement, 0, len(skills))
		for _, skill := range skills {
			requirements = append(requirements, career.Requirement{
				Skill:    skill,
				MinLevel: cfg.Requirements[skill],
			})
		}

		entry, err := career.NewCareer(cfg.Name, requirements)
		if err != nil {
			return nil, fmt.Errorf("careers section: %w", err)
		}

		careers = append(careers, entry)
	}

	return careers, nil
}
