package stats

import (
	"weboodi-charts/internal/courses"
)

// AveragePoint is the running grade average right after Course.
type AveragePoint struct {
	Course  courses.Course
	Average float64
}

func (p AveragePoint) String() string {
	return Fixed2(p.Average)
}

// RunningAverages returns one point per graded course of list (in list
// order), each the mean of that grade and every graded course before it.
// Pass courses are skipped, they neither get a point nor move the average.
func RunningAverages(list []courses.Course) []AveragePoint {
	var points []AveragePoint
	var sum float64
	for _, c := range list {
		if !c.Grade.Valid {
			continue
		}
		sum += c.Grade.Value
		points = append(points, AveragePoint{
			Course:  c,
			Average: sum / float64(len(points)+1),
		})
	}
	return points
}

// WeightedAverage returns sum(grade*credits) / sum(credits) over the graded
// courses of list, weighted by printed credits.
func WeightedAverage(list []courses.Course) Average {
	var weighted, credits float64
	for _, c := range list {
		if !c.Grade.Valid {
			continue
		}
		weighted += c.Grade.Value * c.RawCredits
		credits += c.RawCredits
	}
	if credits == 0 {
		return Average{}
	}
	return Average{Value: weighted / credits, Valid: true}
}

// SubsetPoint is a point of a subset average series aligned to the overall
// running average timeline. Valid is false before the first course of the
// subset.
type SubsetPoint struct {
	Average float64
	Valid   bool
	// FromSubset is true when the point's course belongs to the subset,
	// false when the value was carried forward.
	FromSubset bool
}

func (p SubsetPoint) String() string {
	if !p.Valid {
		return ""
	}
	return Fixed2(p.Average)
}

// SubsetAverages computes the running average of only the courses whose
// code is in codes and aligns it to timeline (the result of
// RunningAverages over every course) so that both can share a date axis.
// Where a timeline course is not part of the subset the last subset average
// is carried forward. A nil slice is returned when codes is empty.
func SubsetAverages(timeline []AveragePoint, codes []string) []SubsetPoint {
	if len(codes) == 0 {
		return nil
	}
	inSubset := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		inSubset[code] = struct{}{}
	}

	out := make([]SubsetPoint, len(timeline))
	var sum float64
	var count int
	var last SubsetPoint
	for i, point := range timeline {
		if _, ok := inSubset[point.Course.Code]; !ok {
			out[i] = SubsetPoint{Average: last.Average, Valid: last.Valid}
			continue
		}
		sum += point.Course.Grade.Value
		count++
		last = SubsetPoint{Average: sum / float64(count), Valid: true, FromSubset: true}
		out[i] = last
	}
	return out
}
