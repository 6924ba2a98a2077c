package career

import (
	"errors"
	"strings"
)

// Proficiency levels are expressed on a 1-10 scale for both profile
// competencies and career requirements.
const (
	MinLevel = 1
	MaxLevel = 10
)

var (
	// ErrInvalidLevel is returned when a proficiency level falls outside [MinLevel, MaxLevel].
	ErrInvalidLevel = errors.New("level must be between 1 and 10")
	// ErrInvalidName is returned when a competency or career name is empty after trimming.
	ErrInvalidName = errors.New("name must not be empty")
)

// Competency is a named skill with a proficiency level.
type Competency struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Normalize produces the lookup key for a competency or career name.
// Every lookup site (profile storage, requirement checks, catalog search)
// must go through this function so the same skill spelled with different
// casing or surrounding whitespace still matches.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func validLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}
