package stats

import (
	"slices"
	"strconv"

	"weboodi-charts/internal/courses"
)

// creditsPerYear is the target amount of credits of one study year.
const creditsPerYear = 60

// Summary holds the one-line figures of the report. Credit figures are in
// printed credits (RawCredits).
type Summary struct {
	CourseCount    int
	LecturerCount  int
	Credits        float64
	OpenUniCount   int
	OpenUniCredits float64
	PassCount      int
	PassCredits    float64
	// Average is the last point of the running average.
	Average         Average
	WeightedAverage Average
	BusiestMonth    Bucket
}

// StudyYears estimates the amount of study years completed.
func (s Summary) StudyYears() float64 {
	return s.Credits / creditsPerYear
}

// CreditsPerCourse is the mean printed credits of a course.
func (s Summary) CreditsPerCourse() float64 {
	if s.CourseCount == 0 {
		return 0
	}
	return s.Credits / float64(s.CourseCount)
}

// CoursesPerLecturer is the amount of courses per distinct lecturer.
func (s Summary) CoursesPerLecturer() float64 {
	if s.LecturerCount == 0 {
		return 0
	}
	return float64(s.CourseCount) / float64(s.LecturerCount)
}

// CreditsPerLecturer is the amount of printed credits per distinct lecturer.
func (s Summary) CreditsPerLecturer() float64 {
	if s.LecturerCount == 0 {
		return 0
	}
	return s.Credits / float64(s.LecturerCount)
}

// OpenUniShare is the percentage of courses taken at the open university.
func (s Summary) OpenUniShare() float64 {
	if s.CourseCount == 0 {
		return 0
	}
	return float64(s.OpenUniCount) / float64(s.CourseCount) * 100
}

// PassShare is the percentage of courses without a numeric grade.
func (s Summary) PassShare() float64 {
	if s.CourseCount == 0 {
		return 0
	}
	return float64(s.PassCount) / float64(s.CourseCount) * 100
}

// Summarize computes the summary figures of the canonical list.
func Summarize(list []courses.Course, averages []AveragePoint, lecturers []Lecturer, months []Bucket) Summary {
	s := Summary{
		CourseCount:     len(list),
		LecturerCount:   len(lecturers),
		WeightedAverage: WeightedAverage(list),
	}
	for _, c := range list {
		s.Credits += c.RawCredits
		if c.IsOpenUniversity() {
			s.OpenUniCount++
			s.OpenUniCredits += c.RawCredits
		}
		if !c.Grade.Valid {
			s.PassCount++
			s.PassCredits += c.RawCredits
		}
	}
	if len(averages) > 0 {
		s.Average = Average{Value: averages[len(averages)-1].Average, Valid: true}
	}
	s.BusiestMonth, _ = BusiestMonth(months)
	return s
}

// DistributionEntry is the amount of courses that share a value.
type DistributionEntry struct {
	// Value is the shared value, Valid is false for pass courses in a
	// grade distribution.
	Value float64
	Valid bool
	Count int
}

func (e DistributionEntry) String() string {
	if !e.Valid {
		return PassLabel
	}
	return strconv.FormatFloat(e.Value, 'f', -1, 64)
}

func distribution(list []courses.Course, value func(courses.Course) (float64, bool)) []DistributionEntry {
	var out []DistributionEntry
	var pass DistributionEntry
	index := map[float64]int{}
	for _, c := range list {
		v, ok := value(c)
		if !ok {
			pass.Count++
			continue
		}
		i, seen := index[v]
		if !seen {
			i = len(out)
			index[v] = i
			out = append(out, DistributionEntry{Value: v, Valid: true})
		}
		out[i].Count++
	}
	slices.SortFunc(out, func(a, b DistributionEntry) int {
		return compareFloat(a.Value, b.Value)
	})
	if pass.Count > 0 {
		out = append(out, pass)
	}
	return out
}

// GradeDistribution counts courses per grade, ascending, pass courses last.
func GradeDistribution(list []courses.Course) []DistributionEntry {
	return distribution(list, func(c courses.Course) (float64, bool) {
		return c.Grade.Value, c.Grade.Valid
	})
}

// CreditDistribution counts courses per printed credit value, ascending.
func CreditDistribution(list []courses.Course) []DistributionEntry {
	return distribution(list, func(c courses.Course) (float64, bool) {
		return c.RawCredits, true
	})
}
