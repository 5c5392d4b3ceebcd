package report

import (
	"fmt"
	"html"
	"strings"

	"weboodi-charts/internal/courses"
	"weboodi-charts/internal/service"
	"weboodi-charts/internal/stats"
)

// LecturerRow is one lecturer of a top list.
type LecturerRow struct {
	Name        string  `json:"name"`
	CourseCount int     `json:"courseCount"`
	Average     string  `json:"average"`
	Credits     float64 `json:"credits"`
}

type LecturerList struct {
	Title string
	Rows  []LecturerRow
}

// CloudWord is a word of the word cloud, FontSize is in pixels.
type CloudWord struct {
	Word     string  `json:"word"`
	Count    int     `json:"count"`
	FontSize float64 `json:"fontSize"`
}

// CourseRow is a course of the canonical list as it is exported.
type CourseRow struct {
	Code              string  `csv:"code" json:"code"`
	Name              string  `csv:"name" json:"name"`
	Credits           float64 `csv:"credits" json:"credits"`
	ScaledCredits     float64 `csv:"scaled_credits" json:"scaledCredits"`
	Grade             string  `csv:"grade" json:"grade"`
	Date              string  `csv:"date" json:"date"`
	Lecturers         string  `csv:"lecturers" json:"lecturers"`
	CumulativeCredits float64 `csv:"cumulative_credits" json:"cumulativeCredits"`
	Department        string  `csv:"department" json:"department"`
}

// CourseRows converts the canonical list into export rows.
func CourseRows(list []courses.Course) []CourseRow {
	out := make([]CourseRow, len(list))
	for i, c := range list {
		out[i] = CourseRow{
			Code:              c.Code,
			Name:              c.Name,
			Credits:           c.RawCredits,
			ScaledCredits:     c.Credits,
			Grade:             c.Grade.String(),
			Date:              c.DateText,
			Lecturers:         c.Lecturers,
			CumulativeCredits: c.CumulativeCredits,
			Department:        stats.DepartmentCode(c.Code),
		}
	}
	return out
}

// Build lays the result of a run out on a page. A run without courses
// yields an empty page, there is nothing to divide by.
func Build(result service.Result) (*Page, error) {
	page := NewPage()
	if len(result.Courses) == 0 {
		return page, nil
	}
	page.Courses = CourseRows(result.Courses)

	b := builder{page: page}
	b.summaryTexts(result)
	b.wordCloud(result.Words)
	b.lecturers(result)
	b.progress(result)

	b.chart(creditsChart(result.Days))
	b.chart(averagesChart(result))
	b.chart(monthsChart(result.Months))
	b.chart(yearsChart(result.Years))
	b.chart(departmentsChart(result.Departments))
	b.chart(distributionChart(ChartGradeDistribution, "Arvosana", result.GradeDistribution))
	b.chart(distributionChart(ChartCreditDistribution, "op", result.CreditDistribution))

	if b.err != nil {
		return nil, b.err
	}
	return page, nil
}

// builder keeps the first error of a series of page writes.
type builder struct {
	page *Page
	err  error
}

func (b *builder) text(id, content string) {
	if b.err != nil {
		return
	}
	b.err = b.page.SetText(id, content)
}

func (b *builder) chart(chart Chart) {
	if b.err != nil {
		return
	}
	b.err = b.page.SetChart(chart)
}

func (b *builder) summaryTexts(result service.Result) {
	s := result.Summary
	b.text(ElementCourseCount, courseCountText(s))
	b.text(ElementCreditsPerCourse, creditsPerCourseText(s))
	if s.LecturerCount > 0 {
		b.text(ElementLecturerCount, lecturerCountText(s))
	}
	if s.OpenUniCount > 0 {
		b.text(ElementOpenUniversity, openUniversityText(s))
	}
	if s.PassCount > 0 {
		b.text(ElementPassCount, passCountText(s))
	}
	b.text(ElementStudyYears, studyYearsText(s))
	b.text(ElementBusiestMonth, busiestMonthText(s.BusiestMonth))
	b.text(ElementAverage, averageText(s))
	if result.HasMajor {
		b.text(ElementMajor, majorText(result.Major))
	}
	if len(result.Minors) > 0 {
		b.text(ElementMinors, minorsText(result.Minors))
	}
}

func (b *builder) wordCloud(words []stats.WordCount) {
	if len(words) == 0 {
		return
	}
	lowest, highest := stats.CountRange(words)
	spans := make([]string, len(words))
	for i, w := range words {
		size := stats.FontSize(w.Count, lowest, highest)
		b.page.Cloud = append(b.page.Cloud, CloudWord{Word: w.Word, Count: w.Count, FontSize: size})

		word := html.EscapeString(w.Word)
		spans[i] = fmt.Sprintf(
			`<span style="font-size: %spx;" title="%s on mainittu %d kertaa suorituksissasi">%s</span>`,
			number(size), word, w.Count, word,
		)
	}
	b.text(ElementWordCloud, strings.Join(spans, " "))
}

func lecturerRows(list []stats.Lecturer) []LecturerRow {
	out := make([]LecturerRow, len(list))
	for i, l := range list {
		out[i] = LecturerRow{
			Name:        l.Name,
			CourseCount: l.CourseCount,
			Average:     l.Average.String(),
			Credits:     l.TotalRawCredits,
		}
	}
	return out
}

func (b *builder) lecturers(result service.Result) {
	if len(result.Lecturers) == 0 {
		return
	}
	b.page.Lecturers = []LecturerList{
		{Title: "Luennoitsijoiden top lista by kurssimaara", Rows: lecturerRows(result.LecturersByCourseCount)},
		{Title: "Luennoitsijoiden top lista by keskiarvo", Rows: lecturerRows(result.LecturersByAverage)},
		{Title: "Luennoitsijoiden top lista by nopat", Rows: lecturerRows(result.LecturersByCredits)},
	}

	var out strings.Builder
	for _, list := range b.page.Lecturers {
		fmt.Fprintf(&out, `<div class="luennoitsijat pull-left"><p><strong>%s</strong></p>`, list.Title)
		for _, row := range list.Rows {
			fmt.Fprintf(
				&out, "<p>%s, kursseja %d, keskiarvo: %s, noppia: %s</p>",
				html.EscapeString(row.Name), row.CourseCount, row.Average, number(row.Credits),
			)
		}
		out.WriteString("</div>")
	}
	b.text(ElementLecturers, out.String())
}

func (b *builder) progress(result service.Result) {
	if len(result.Settings.BasicStudies) > 0 {
		b.text(ElementBasicProgress, progressText(result.BasicProgress))
		b.chart(progressChart(ChartBasicStudies, result.BasicProgress))
	}
	if len(result.Settings.IntermediateStudies) > 0 {
		b.text(ElementIntermediateProgress, progressText(result.IntermediateProgress))
		b.chart(progressChart(ChartIntermediateStudies, result.IntermediateProgress))
	}
}
