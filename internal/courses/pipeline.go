package courses

import (
	"slices"

	"weboodi-charts/lib/textutil"
)

// BuildResult is the canonical course list of a transcript together with
// the amount of rows each stage threw away.
type BuildResult struct {
	Courses []Course
	// Excluded is the amount of rows removed by the exclusion list.
	Excluded int
	// Malformed is the amount of rows removed for being too short or for
	// carrying invalid credits.
	Malformed int
}

// Build runs the rows of a transcript page through parsing, exclusion and
// sequencing and returns the canonical course list.
//
// The page lists the most recent course first, rows are reversed into
// chronological order before the (stable) date sort so that courses of the
// same day keep the order they were completed in.
func Build(rows []Row, excluded []string) (BuildResult, error) {
	exclude := make(map[string]struct{}, len(excluded))
	for _, code := range excluded {
		exclude[textutil.Clean(code)] = struct{}{}
	}

	var kept []Row
	result := BuildResult{}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if _, ok := exclude[textutil.Clean(row[cellCode])]; ok {
			result.Excluded++
			continue
		}
		kept = append(kept, row)
	}
	slices.Reverse(kept)

	parsed := make([]Course, 0, len(kept))
	for _, row := range kept {
		course, ok, err := ParseRow(row)
		if err != nil {
			return BuildResult{}, err
		}
		if !ok {
			result.Malformed++
			continue
		}
		parsed = append(parsed, course)
	}

	result.Courses = Sequence(parsed)
	return result, nil
}

// Sequence returns a copy of list stably sorted by date with
// CumulativeCredits recomputed. Sequencing an already sequenced list
// returns an equal list.
func Sequence(list []Course) []Course {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b Course) int {
		return a.Date.Compare(b.Date)
	})

	var cumulative float64
	for i, c := range out {
		cumulative += c.Credits
		out[i] = c.WithCumulativeCredits(cumulative)
	}
	return out
}
