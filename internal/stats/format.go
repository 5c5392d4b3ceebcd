// Package stats derives every statistic of the report from the canonical
// course list. Nothing in here mutates its input, all results are
// recomputed from scratch on every run.
package stats

import (
	"math"
	"strconv"
)

// PassLabel is shown in place of an average that has no graded course
// behind it.
const PassLabel = "hyv"

// Fixed2 formats v with two decimals, rounding ties away from zero like the
// transcript pages' own figures do.
func Fixed2(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}

// Round2 rounds v to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Average is a mean over graded courses. Valid is false when there were no
// graded courses to average.
type Average struct {
	Value float64
	Valid bool
}

func (a Average) String() string {
	if !a.Valid {
		return PassLabel
	}
	return Fixed2(a.Value)
}

func mean(values []float64) Average {
	if len(values) == 0 {
		return Average{}
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return Average{Value: sum / float64(len(values)), Valid: true}
}
