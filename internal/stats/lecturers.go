package stats

import (
	"slices"

	"weboodi-charts/internal/courses"
)

// Lecturer summarizes every course a lecturer taught.
type Lecturer struct {
	Name            string
	CourseCount     int
	TotalCredits    float64
	TotalRawCredits float64
	Grades          []float64
	Average         Average
}

// ExplodeLecturers returns one copy of a course per lecturer named in its
// lecturer cell, each copy naming only that lecturer. Courses without
// lecturers disappear.
func ExplodeLecturers(list []courses.Course) []courses.Course {
	var out []courses.Course
	for _, c := range list {
		for _, name := range c.LecturerNames() {
			out = append(out, c.WithLecturers(name))
		}
	}
	return out
}

// Lecturers groups the exploded courses by lecturer name (exact, case
// sensitive) in order of first appearance.
func Lecturers(list []courses.Course) []Lecturer {
	index := map[string]int{}
	var out []Lecturer
	for _, c := range ExplodeLecturers(list) {
		i, ok := index[c.Lecturers]
		if !ok {
			i = len(out)
			index[c.Lecturers] = i
			out = append(out, Lecturer{Name: c.Lecturers})
		}

		l := out[i]
		l.CourseCount++
		l.TotalCredits += c.Credits
		l.TotalRawCredits += c.RawCredits
		if c.Grade.Valid {
			l.Grades = append(l.Grades, c.Grade.Value)
		}
		out[i] = l
	}

	for i, l := range out {
		out[i].Average = mean(l.Grades)
	}
	return out
}

// SortByCourseCount orders lecturers by course count, most first.
func SortByCourseCount(list []Lecturer) []Lecturer {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b Lecturer) int {
		return b.CourseCount - a.CourseCount
	})
	return out
}

// SortByCredits orders lecturers by total printed credits, most first.
func SortByCredits(list []Lecturer) []Lecturer {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b Lecturer) int {
		return compareFloat(b.TotalRawCredits, a.TotalRawCredits)
	})
	return out
}

// SortByAverage orders lecturers with a graded course by their (two
// decimal) average, best first, ties broken by course count. Lecturers of
// pass-only courses follow in their original order.
func SortByAverage(list []Lecturer) []Lecturer {
	var graded, passOnly []Lecturer
	for _, l := range list {
		if l.Average.Valid {
			graded = append(graded, l)
			continue
		}
		passOnly = append(passOnly, l)
	}
	slices.SortStableFunc(graded, func(a, b Lecturer) int {
		if c := compareFloat(Round2(b.Average.Value), Round2(a.Average.Value)); c != 0 {
			return c
		}
		return b.CourseCount - a.CourseCount
	})
	return append(graded, passOnly...)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
