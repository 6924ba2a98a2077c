package recommend

import (
	"fmt"
	"sort"

	"github.com/spigell/career-compass/internal/career"
)

// PlanStep is one study suggestion: bring a skill up to the career's
// required level. Shortfall is the distance still to cover; for a skill
// the profile lacks entirely it equals the full required level.
type PlanStep struct {
	Skill       string
	TargetLevel int
	Shortfall   int
}

// GapPlan ranks the unmet requirements of a career by shortfall,
// largest first, ties kept in requirement order. topK truncates the
// plan; zero or negative means unlimited. An empty plan means the
// profile already satisfies the career.
func GapPlan(profile *career.Profile, c *career.Career, topK int) []PlanStep {
	if c == nil {
		return nil
	}

	if profile == nil {
		profile = career.NewProfile("")
	}

	var steps []PlanStep
	for _, req := range c.Requirements() {
		level, ok := profile.Level(req.Skill)
		if !ok {
			level = 0
		}
		if level >= req.MinLevel {
			continue
		}

		steps = append(steps, PlanStep{
			Skill:       req.Skill,
			TargetLevel: req.MinLevel,
			Shortfall:   req.MinLevel - level,
		})
	}

	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Shortfall > steps[j].Shortfall
	})

	if topK > 0 && len(steps) > topK {
		steps = steps[:topK]
	}

	return steps
}

// String renders a step as a human-readable suggestion.
func (s PlanStep) String() string {
	return fmt.Sprintf("practice %q up to level %d (gap %d)", s.Skill, s.TargetLevel, s.Shortfall)
}
