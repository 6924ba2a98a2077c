package recommend

import (
	"testing"

	"github.com/spigell/career-compass/internal/career"
)

func TestGapPlanOrdersByShortfall(t *testing.T) {
	t.Parallel()

	profile := buildProfile(t,
		career.Competency{Name: "python", Level: 6},
		career.Competency{Name: "statistics", Level: 2},
	)
	c := buildCareer(t, "Data Scientist",
		career.Requirement{Skill: "python", MinLevel: 7},
		career.Requirement{Skill: "statistics", MinLevel: 6},
		career.Requirement{Skill: "machine learning", MinLevel: 6},
	)

	plan := GapPlan(profile, c, 0)

	// machine learning is absent, so its shortfall is the full level.
	want := []PlanStep{
		{Skill: "machine learning", TargetLevel: 6, Shortfall: 6},
		{Skill: "statistics", TargetLevel: 6, Shortfall: 4},
		{Skill: "python", TargetLevel: 7, Shortfall: 1},
	}

	if len(plan) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(plan))
	}
	for i := range want {
		if plan[i] != want[i] {
			t.Fatalf("expected step %d to be %+v, got %+v", i, want[i], plan[i])
		}
	}
}

func TestGapPlanTiesKeepRequirementOrder(t *testing.T) {
	t.Parallel()

	profile := buildProfile(t)
	c := buildCareer(t, "Data Scientist",
		career.Requirement{Skill: "statistics", MinLevel: 6},
		career.Requirement{Skill: "machine learning", MinLevel: 6},
	)

	plan := GapPlan(profile, c, 0)

	if plan[0].Skill != "statistics" || plan[1].Skill != "machine learning" {
		t.Fatalf("expected equal shortfalls to keep requirement order, got %+v", plan)
	}
}

func TestGapPlanTruncation(t *testing.T) {
	t.Parallel()

	profile := buildProfile(t)
	c := buildCareer(t, "Data Scientist",
		career.Requirement{Skill: "python", MinLevel: 7},
		career.Requirement{Skill: "statistics", MinLevel: 6},
		career.Requirement{Skill: "machine learning", MinLevel: 6},
	)

	plan := GapPlan(profile, c, 2)
	if len(plan) != 2 {
		t.Fatalf("expected 2 steps with topK=2, got %d", len(plan))
	}

	if plan[0].Skill != "python" {
		t.Fatalf("expected the largest shortfall first, got %+v", plan[0])
	}
}

func TestGapPlanSatisfiedCareer(t *testing.T) {
	t.Parallel()

	profile := buildProfile(t, career.Competency{Name: "python", Level: 9})
	c := buildCareer(t, "Scripter",
		career.Requirement{Skill: "python", MinLevel: 5},
	)

	if plan := GapPlan(profile, c, 5); len(plan) != 0 {
		t.Fatalf("expected an empty plan for a satisfied career, got %+v", plan)
	}

	if plan := GapPlan(profile, nil, 5); plan != nil {
		t.Fatalf("expected nil plan for nil career, got %+v", plan)
	}
}

func TestPlanStepString(t *testing.T) {
	t.Parallel()

	step := PlanStep{Skill: "statistics", TargetLevel: 6, Shortfall: 4}
	want := `practice "statistics" up to level 6 (gap 4)`
	if got := step.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
