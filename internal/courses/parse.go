package courses

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"weboodi-charts/internal/components/chrono"
	"weboodi-charts/lib/textutil"
)

// ErrDateParse is returned when a transcript date does not have the form
// DD.MM.YYYY. Every later stage sorts by date, so it stops the whole run.
var ErrDateParse = errors.New("parse transcript date")

// Row is one transcript table row: code, name, credits, grade, date and
// lecturers, in that order. Trailing cells may be missing.
type Row []string

const (
	cellCode = iota
	cellName
	cellCredits
	cellGrade
	cellDate
	cellLecturers
)

// minRowCells is the amount of cells a row needs before it is parsed at
// all, shorter rows are layout noise.
const minRowCells = 4

const defaultDate = "01.01.1970"

// maxUnscaledCredits is the largest printed credit value that gets scaled
// by 10 for charting.
const maxUnscaledCredits = 10

// ScaleCredits converts a printed credit value into its chart magnitude.
func ScaleCredits(raw float64) float64 {
	if raw <= maxUnscaledCredits {
		return raw * 10
	}
	return raw
}

// ParseDate parses a DD.MM.YYYY transcript date.
func ParseDate(text string) (time.Time, error) {
	parts := strings.Split(text, ".")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, text)
	}
	var numbers [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, text)
		}
		numbers[i] = n
	}
	return chrono.Date(numbers[2], time.Month(numbers[1]), numbers[0]), nil
}

// parseNumber parses a cell the way the page's numbers are written. Empty
// cells are not numbers.
func parseNumber(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func removeParentheses(text string) string {
	text = strings.ReplaceAll(text, "(", "")
	text = strings.ReplaceAll(text, ")", "")
	return strings.TrimSpace(text)
}

func cell(row Row, i int) (string, bool) {
	if i >= len(row) {
		return "", false
	}
	return textutil.Clean(row[i]), true
}

// ParseRow turns a transcript row into a Course.
//
// ok is false when the row must be dropped silently: fewer than four cells,
// or credits that are not a positive number. A non-numeric grade is not an
// error, it marks a pass. err is only set for a malformed date.
func ParseRow(row Row) (course Course, ok bool, err error) {
	if len(row) < minRowCells {
		return Course{}, false, nil
	}

	code, _ := cell(row, cellCode)
	name, _ := cell(row, cellName)
	creditsText, _ := cell(row, cellCredits)
	gradeText, _ := cell(row, cellGrade)
	dateText, hasDate := cell(row, cellDate)
	lecturers, _ := cell(row, cellLecturers)

	date := chrono.Epoch()
	if hasDate {
		date, err = ParseDate(dateText)
		if err != nil {
			return Course{}, false, fmt.Errorf("course %s: %w", code, err)
		}
	} else {
		dateText = defaultDate
	}

	// packaged degrees print their credits in parentheses
	rawCredits, isNumber := parseNumber(removeParentheses(creditsText))
	if !isNumber || rawCredits <= 0 {
		return Course{}, false, nil
	}

	grade := Pass
	if value, isNumber := parseNumber(gradeText); isNumber {
		grade = Graded(value)
	}

	return Course{
		Code:       code,
		Name:       name,
		Credits:    ScaleCredits(rawCredits),
		RawCredits: rawCredits,
		Grade:      grade,
		Date:       date,
		DateText:   dateText,
		Lecturers:  lecturers,
	}, true, nil
}
