package career

import "fmt"

// builtinCareers is the static table the catalog is seeded from at
// process start.
var builtinCareers = []struct {
	name         string
	requirements []Requirement
}{
	{
		name: "Data Scientist",
		requirements: []Requirement{
			{Skill: "Python", MinLevel: 7},
			{Skill: "Statistics", MinLevel: 6},
			{Skill: "Machine Learning", MinLevel: 6},
			{Skill: "Communication", MinLevel: 6},
		},
	},
	{
		name: "Software Engineer",
		requirements: []Requirement{
			{Skill: "Algorithms", MinLevel: 7},
			{Skill: "Data Structures", MinLevel: 7},
			{Skill: "Python", MinLevel: 6},
			{Skill: "Teamwork", MinLevel: 6},
		},
	},
	{
		name: "Automation & IoT Specialist",
		requirements: []Requirement{
			{Skill: "Basic Electronics", MinLevel: 6},
			{Skill: "Python", MinLevel: 6},
			{Skill: "Embedded Systems", MinLevel: 7},
			{Skill: "Adaptability", MinLevel: 6},
		},
	},
	{
		name: "UX Designer",
		requirements: []Requirement{
			{Skill: "Creativity", MinLevel: 7},
			{Skill: "Prototyping", MinLevel: 6},
			{Skill: "User Research", MinLevel: 6},
			{Skill: "Empathy", MinLevel: 7},
		},
	},
}

// Builtin returns a fresh catalog seeded with the built-in careers.
// The table is static and known-valid, so construction failures indicate
// a programming error and panic.
func Builtin() *Catalog {
	catalog := &Catalog{}
	for _, entry := range builtinCareers {
		c, err := NewCareer(entry.name, entry.requirements)
		if err != nil {
			panic(fmt.Sprintf("builtin catalog: %v", err))
		}
		if err := catalog.Add(c); err != nil {
			panic(fmt.Sprintf("builtin catalog: %v", err))
		}
	}
	return catalog
}
