package stats

import (
	"slices"
	"testing"

	"weboodi-charts/internal/courses"
)

// canonical builds the canonical list out of rows given in chronological
// order (the page itself lists them the other way around).
func canonical(t testing.TB, rows ...courses.Row) []courses.Course {
	pageOrder := slices.Clone(rows)
	slices.Reverse(pageOrder)
	result, err := courses.Build(pageOrder, nil)
	if err != nil {
		t.Fatal(err)
	}
	return result.Courses
}

type staticNames map[string]string

func (s staticNames) Lookup(code string) (string, bool) {
	name, ok := s[code]
	return name, ok
}
