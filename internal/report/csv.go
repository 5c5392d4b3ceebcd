package report

import (
	"io"

	"github.com/gocarina/gocsv"
)

// RenderCSV writes the course list with a header row.
func RenderCSV(w io.Writer, rows []CourseRow) error {
	if rows == nil {
		rows = []CourseRow{}
	}
	return gocsv.Marshal(rows, w)
}
