package stats

import (
	"fmt"
	"strconv"
	"time"

	"weboodi-charts/internal/courses"
)

// academicYearWindow returns the first and last instant of the academic
// year that starts on August 1st of year.
func academicYearWindow(year int, loc *time.Location) (time.Time, time.Time) {
	return time.Date(year, time.August, 1, 0, 0, 0, 0, loc),
		time.Date(year+1, time.July, 31, 23, 59, 59, 0, loc)
}

func inWindow(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

// AcademicYear returns the starting year of the academic year (August 1st
// to July 31st) that date falls in: 15.03.2021 belongs to 2020, 15.09.2021
// to 2021.
func AcademicYear(date time.Time) int {
	year := date.Year()
	start, end := academicYearWindow(year, date.Location())
	if inWindow(date, start, end) {
		return year
	}
	start, end = academicYearWindow(year+1, date.Location())
	if inWindow(date, start, end) {
		return year + 1
	}
	return year - 1
}

// Bucket is the credit total of a period together with the cumulative
// credits of the last course completed in it.
type Bucket struct {
	Label   string
	Credits float64
	// RawCredits is Credits in printed credits.
	RawCredits float64
	Cumulative float64
}

// YearBucket is a Bucket of one academic year.
type YearBucket struct {
	Bucket
	Year int
	// Padding marks a zero bucket that only exists so that a single year of
	// data is still drawn between two neighbors.
	Padding bool
}

func academicYearLabel(year int) string {
	return fmt.Sprintf("%d-%d", year, year+1)
}

// groupBy folds the canonical list (already in date order) into buckets
// keyed by key, in order of first appearance.
func groupBy(list []courses.Course, key func(courses.Course) string) []Bucket {
	index := map[string]int{}
	var out []Bucket
	for _, c := range list {
		k := key(c)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Bucket{Label: k})
		}
		out[i].Credits += c.Credits
		out[i].RawCredits += c.RawCredits
		out[i].Cumulative = c.CumulativeCredits
	}
	return out
}

// AcademicYears buckets the canonical list by academic year. When there is
// only one year it is padded with an empty year on both sides.
func AcademicYears(list []courses.Course) []YearBucket {
	buckets := groupBy(list, func(c courses.Course) string {
		return strconv.Itoa(AcademicYear(c.Date))
	})

	out := make([]YearBucket, len(buckets))
	for i, b := range buckets {
		year, _ := strconv.Atoi(b.Label)
		b.Label = academicYearLabel(year)
		out[i] = YearBucket{Bucket: b, Year: year}
	}

	if len(out) == 1 {
		year := out[0].Year
		out = []YearBucket{
			{Bucket: Bucket{Label: academicYearLabel(year - 1)}, Year: year - 1, Padding: true},
			out[0],
			{Bucket: Bucket{Label: academicYearLabel(year + 1), Cumulative: out[0].Cumulative}, Year: year + 1, Padding: true},
		}
	}
	return out
}

var finnishMonths = [...]string{
	"tammikuu",
	"helmikuu",
	"maaliskuu",
	"huhtikuu",
	"toukokuu",
	"kesäkuu",
	"heinäkuu",
	"elokuu",
	"syyskuu",
	"lokakuu",
	"marraskuu",
	"joulukuu",
}

// MonthName returns the Finnish name of month.
func MonthName(month time.Month) string {
	return finnishMonths[month-1]
}

// MonthKey returns the "<month> <year>" label of date, ex. "syyskuu 2020".
func MonthKey(date time.Time) string {
	return fmt.Sprintf("%s %d", MonthName(date.Month()), date.Year())
}

// Months buckets the canonical list by calendar month.
func Months(list []courses.Course) []Bucket {
	return groupBy(list, func(c courses.Course) string {
		return MonthKey(c.Date)
	})
}

// BusiestMonth returns the first month with the most printed credits.
func BusiestMonth(months []Bucket) (Bucket, bool) {
	if len(months) == 0 {
		return Bucket{}, false
	}
	best := months[0]
	for _, m := range months[1:] {
		if m.RawCredits > best.RawCredits {
			best = m
		}
	}
	return best, true
}

// Days buckets the canonical list by completion day, labeled with the
// transcript date of the day's first course.
func Days(list []courses.Course) []Bucket {
	labels := map[string]string{}
	buckets := groupBy(list, func(c courses.Course) string {
		key := c.Date.Format(time.DateOnly)
		if _, ok := labels[key]; !ok {
			labels[key] = c.DateText
		}
		return key
	})
	for i, b := range buckets {
		buckets[i].Label = labels[b.Label]
	}
	return buckets
}
