package chrono

import (
	"time"

	_ "time/tzdata"
)

var helsinki *time.Location

func init() {
	var err error
	helsinki, err = time.LoadLocation("Europe/Helsinki")
	if err != nil {
		panic(err)
	}
}

// Helsinki returns a [*time.Location] for Europe/Helsinki, transcript dates
// are always interpreted in it so that Year()/Month() of a date never
// depend on the machine the report is generated on.
func Helsinki() *time.Location {
	return helsinki
}

// Date returns midnight of the given day in Helsinki. Out of range values
// are normalized the way time.Date normalizes them (32.01 becomes 01.02).
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, helsinki)
}

// Epoch is the date used for transcript rows that carry no date at all.
func Epoch() time.Time {
	return Date(1970, time.January, 1)
}
