package career

import (
	"errors"
	"testing"
)

func TestAddOrUpdateCompetencyValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		comp    string
		level   int
		wantErr error
	}{
		{
			name:  "valid competency",
			comp:  "Python",
			level: 7,
		},
		{
			name:  "boundary levels are valid",
			comp:  "SQL",
			level: MinLevel,
		},
		{
			name:    "level above maximum",
			comp:    "Python",
			level:   11,
			wantErr: ErrInvalidLevel,
		},
		{
			name:    "level below minimum",
			comp:    "Python",
			level:   0,
			wantErr: ErrInvalidLevel,
		},
		{
			name:    "whitespace-only name",
			comp:    "   ",
			level:   5,
			wantErr: ErrInvalidName,
		},
		{
			name:    "empty name",
			comp:    "",
			level:   5,
			wantErr: ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewProfile("tester")
			err := p.AddOrUpdateCompetency(tt.comp, tt.level)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if p.Len() != 0 {
				t.Fatalf("failed add must not modify the profile, got %d competencies", p.Len())
			}
		})
	}
}

func TestAddOrUpdateCompetencyUpsert(t *testing.T) {
	t.Parallel()

	p := NewProfile("tester")
	if err := p.AddOrUpdateCompetency("Python", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.AddOrUpdateCompetency("  python ", 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Len() != 1 {
		t.Fatalf("expected 1 competency after upsert, got %d", p.Len())
	}

	level, ok := p.Level("PYTHON")
	if !ok {
		t.Fatalf("expected competency to be present")
	}
	if level != 8 {
		t.Fatalf("expected level 8 after upsert, got %d", level)
	}
}

func TestProfileInsertionOrder(t *testing.T) {
	t.Parallel()

	p := NewProfile("tester")
	for _, name := range []string{"Python", "SQL", "Statistics"} {
		if err := p.AddOrUpdateCompetency(name, 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Updating an existing entry must not move it.
	if err := p.AddOrUpdateCompetency("SQL", 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for c := range p.All() {
		got = append(got, c.Name)
	}

	want := []string{"Python", "SQL", "Statistics"}
	if len(got) != len(want) {
		t.Fatalf("expected %d competencies, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %q at position %d, got %q", want[i], i, got[i])
		}
	}
}

func TestRemoveCompetency(t *testing.T) {
	t.Parallel()

	p := NewProfile("tester")
	if err := p.AddOrUpdateCompetency("Python", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.AddOrUpdateCompetency("SQL", 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.RemoveCompetency(" PYTHON ")
	if p.Len() != 1 {
		t.Fatalf("expected 1 competency after remove, got %d", p.Len())
	}
	if _, ok := p.Level("python"); ok {
		t.Fatalf("expected python to be removed")
	}

	// Removing an absent competency is a no-op.
	p.RemoveCompetency("does-not-exist")
	if p.Len() != 1 {
		t.Fatalf("expected remove of absent competency to be a no-op")
	}
}

func TestProfileAllIsRestartable(t *testing.T) {
	t.Parallel()

	p := NewProfile("tester")
	for _, name := range []string{"Python", "SQL"} {
		if err := p.AddOrUpdateCompetency(name, 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	seq := p.All()

	first := 0
	for range seq {
		first++
	}

	second := 0
	for range seq {
		second++
	}

	if first != 2 || second != 2 {
		t.Fatalf("expected both passes to yield 2 competencies, got %d and %d", first, second)
	}

	// Early break must not panic or corrupt the profile.
	for range seq {
		break
	}
	if p.Len() != 2 {
		t.Fatalf("expected profile to be unchanged after early break")
	}
}
