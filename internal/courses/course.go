package courses

import (
	"fmt"
	"strings"
	"time"

	"weboodi-charts/lib/textutil"
)

// Grade is a numeric course grade (0-5) or a pass marking ("hyv") which
// carries no number.
type Grade struct {
	Value float64
	Valid bool
}

// Graded returns a numeric grade.
func Graded(value float64) Grade {
	return Grade{Value: value, Valid: true}
}

// Pass is the grade of a course that was only accepted, it is excluded from
// every grade average but still counts towards credits.
var Pass = Grade{}

func (g Grade) String() string {
	if !g.Valid {
		return "hyv"
	}
	return fmt.Sprintf("%g", g.Value)
}

// Course is one completed course from the transcript. It is a value type,
// the With... methods return modified copies.
type Course struct {
	Code string
	Name string
	// Credits is the chart magnitude of the course: printed values <= 10
	// are multiplied by 10.
	Credits float64
	// RawCredits is the credit value as printed on the transcript.
	RawCredits float64
	Grade      Grade
	Date       time.Time
	// DateText is the date as printed on the transcript (DD.MM.YYYY).
	DateText string
	// Lecturers is the raw comma separated lecturer cell.
	Lecturers string
	// CumulativeCredits is the sum of Credits of this and every earlier
	// course of the canonical list.
	CumulativeCredits float64
}

func (c Course) WithLecturers(lecturers string) Course {
	c.Lecturers = lecturers
	return c
}

func (c Course) WithCumulativeCredits(cumulative float64) Course {
	c.CumulativeCredits = cumulative
	return c
}

// LecturerNames splits the lecturer cell into cleaned, non-empty names.
func (c Course) LecturerNames() []string {
	var names []string
	for _, name := range strings.Split(c.Lecturers, ",") {
		name = textutil.Clean(name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

var openUniversityMarkers = []string{"avoin yo", "open uni"}

// IsOpenUniversity reports whether the course was completed at the open
// university, which is only visible from its name.
func (c Course) IsOpenUniversity() bool {
	name := strings.ToLower(c.Name)
	for _, marker := range openUniversityMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// StripOpenUniversity removes the "Avoin yo:" / "Open uni:" prefix of a
// course name.
func StripOpenUniversity(name string) string {
	name = strings.Replace(name, "Avoin yo:", "", 1)
	name = strings.Replace(name, "Open uni:", "", 1)
	return strings.TrimSpace(name)
}

// Codes returns the course code of every course.
func Codes(list []Course) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.Code
	}
	return out
}
