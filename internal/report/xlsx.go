package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary   = "Yhteenveto"
	sheetCourses   = "Kurssit"
	sheetLecturers = "Luennoitsijat"
)

type workbook struct {
	file        *excelize.File
	headerStyle int
}

func newWorkbook() (*workbook, error) {
	f := excelize.NewFile()
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	return &workbook{file: f, headerStyle: headerStyle}, nil
}

// sheet creates a sheet with a styled header row.
func (wb *workbook) sheet(name string, headers ...string) error {
	_, err := wb.file.NewSheet(name)
	if err != nil {
		return err
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		err = wb.file.SetCellValue(name, cell, header)
		if err != nil {
			return err
		}
		err = wb.file.SetCellStyle(name, cell, cell, wb.headerStyle)
		if err != nil {
			return err
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		err = wb.file.SetColWidth(name, col, col, 18)
		if err != nil {
			return err
		}
	}
	return nil
}

// row writes values into row (1-based) of a sheet.
func (wb *workbook) row(sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return wb.file.SetSheetRow(sheet, cell, &values)
}

func (wb *workbook) summary(page *Page) error {
	err := wb.sheet(sheetSummary, "Elementti", "Sisältö")
	if err != nil {
		return err
	}
	err = wb.file.SetColWidth(sheetSummary, "B", "B", 100)
	if err != nil {
		return err
	}
	for i, block := range page.Blocks() {
		text, err := block.PlainText()
		if err != nil {
			return fmt.Errorf("%s: %w", block.ID, err)
		}
		err = wb.row(sheetSummary, i+2, block.ID, text)
		if err != nil {
			return err
		}
	}
	return nil
}

func (wb *workbook) courses(rows []CourseRow) error {
	err := wb.sheet(sheetCourses, "Tunniste", "Opintojakso", "Op", "Skaalatut op", "Arvosana", "Päivämäärä", "Opettajat", "Kumulatiiviset op", "Laitos")
	if err != nil {
		return err
	}
	for i, c := range rows {
		err := wb.row(sheetCourses, i+2,
			c.Code, c.Name, c.Credits, c.ScaledCredits, c.Grade, c.Date, c.Lecturers, c.CumulativeCredits, c.Department,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (wb *workbook) lecturers(lists []LecturerList) error {
	if len(lists) == 0 {
		return nil
	}
	err := wb.sheet(sheetLecturers, "Lista", "#", "Luennoitsija", "Kursseja", "Keskiarvo", "Noppia")
	if err != nil {
		return err
	}
	row := 2
	for _, list := range lists {
		for i, l := range list.Rows {
			err := wb.row(sheetLecturers, row, list.Title, i+1, l.Name, l.CourseCount, l.Average, l.Credits)
			if err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

func (wb *workbook) chart(chart Chart) error {
	headers := []string{""}
	for _, d := range chart.Datasets {
		headers = append(headers, d.Label)
	}
	err := wb.sheet(chart.ID, headers...)
	if err != nil {
		return err
	}
	for i, label := range chart.Labels {
		values := []any{label}
		for _, d := range chart.Datasets {
			if i < len(d.Data) && d.Data[i].Valid {
				values = append(values, d.Data[i].Number)
				continue
			}
			values = append(values, nil)
		}
		err := wb.row(chart.ID, i+2, values...)
		if err != nil {
			return err
		}
	}
	return nil
}

// RenderXLSX writes the page as a workbook: a summary sheet, the course
// list, the lecturer lists and one data sheet per chart.
func RenderXLSX(w io.Writer, page *Page) error {
	wb, err := newWorkbook()
	if err != nil {
		return err
	}
	defer wb.file.Close()

	err = wb.summary(page)
	if err != nil {
		return err
	}
	err = wb.courses(page.Courses)
	if err != nil {
		return err
	}
	err = wb.lecturers(page.Lecturers)
	if err != nil {
		return err
	}
	for _, chart := range page.Charts() {
		err = wb.chart(chart)
		if err != nil {
			return fmt.Errorf("chart %s: %w", chart.ID, err)
		}
	}

	// NewFile starts out with an empty "Sheet1"
	err = wb.file.DeleteSheet("Sheet1")
	if err != nil {
		return err
	}
	index, err := wb.file.GetSheetIndex(sheetSummary)
	if err != nil {
		return err
	}
	wb.file.SetActiveSheet(index)
	_, err = wb.file.WriteTo(w)
	return err
}
