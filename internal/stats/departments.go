package stats

import (
	"regexp"
	"slices"

	"weboodi-charts/internal/courses"
	"weboodi-charts/lib/textutil"
)

// UnknownDepartment is the department of a course code that is only digits.
const UnknownDepartment = "EMT"

var (
	openUniversityPrefix = regexp.MustCompile(`^(?i:ay|a)`)
	variantSuffix        = regexp.MustCompile(`[-_](?s:.)+`)
	digits               = regexp.MustCompile(`\d+`)
)

// DepartmentCode extracts the department of a course code: the open
// university "ay"/"a" prefix, anything after a dash or underscore and every
// digit are removed and the rest is uppercased. "TKT20002" belongs to TKT,
// "AYMAT11001" to MAT and the all-digit "A582103" to EMT.
func DepartmentCode(code string) string {
	code = openUniversityPrefix.ReplaceAllString(code, "")
	code = variantSuffix.ReplaceAllString(code, "")
	code = digits.ReplaceAllString(code, "")
	if code == "" {
		return UnknownDepartment
	}
	return textutil.Upper(code)
}

// Department summarizes the courses of one department.
type Department struct {
	Code            string
	CourseCount     int
	TotalCredits    float64
	TotalRawCredits float64
	Courses         []courses.Course
	SimpleAverage   Average
	WeightedAverage Average
}

// Departments groups list by DepartmentCode, in order of first appearance.
func Departments(list []courses.Course) []Department {
	index := map[string]int{}
	var out []Department
	for _, c := range list {
		code := DepartmentCode(c.Code)
		i, ok := index[code]
		if !ok {
			i = len(out)
			index[code] = i
			out = append(out, Department{Code: code})
		}
		d := out[i]
		d.CourseCount++
		d.TotalCredits += c.Credits
		d.TotalRawCredits += c.RawCredits
		d.Courses = append(d.Courses, c)
		out[i] = d
	}

	for i, d := range out {
		var grades []float64
		for _, c := range d.Courses {
			if c.Grade.Valid {
				grades = append(grades, c.Grade.Value)
			}
		}
		out[i].SimpleAverage = mean(grades)
		out[i].WeightedAverage = WeightedAverage(d.Courses)
	}
	return out
}

// SortDepartmentsByCredits orders departments by total printed credits,
// most first.
func SortDepartmentsByCredits(list []Department) []Department {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b Department) int {
		return compareFloat(b.TotalRawCredits, a.TotalRawCredits)
	})
	return out
}

// MajorDepartment finds the department of the configured major.
func MajorDepartment(list []Department, major string) (Department, bool) {
	if major == "" {
		return Department{}, false
	}
	major = textutil.Upper(major)
	for _, d := range list {
		if d.Code == major {
			return d, true
		}
	}
	return Department{}, false
}

// MinorDepartments returns the departments of the configured minors, in
// department order.
func MinorDepartments(list []Department, minors []string) []Department {
	wanted := map[string]struct{}{}
	for _, m := range textutil.UpperAll(minors) {
		wanted[m] = struct{}{}
	}
	var out []Department
	for _, d := range list {
		if _, ok := wanted[d.Code]; ok {
			out = append(out, d)
		}
	}
	return out
}
