// Package report turns the result of a pipeline run into a page: text
// blocks and chart specs addressed by the fixed element ids of the
// transcript overlay, plus renderers that write such a page out as text,
// HTML, JSON, CSV or an XLSX workbook.
package report

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownElement is returned when a page element id is not one of the
// fixed ids of the overlay.
var ErrUnknownElement = errors.New("unknown page element")

// text block ids
const (
	ElementCourseCount          = "opintojen-maara"
	ElementCreditsPerCourse     = "keskiarvo-op-maara"
	ElementLecturerCount        = "luennoitsijoiden-maara"
	ElementOpenUniversity       = "open-uni-maara"
	ElementPassCount            = "hyv-maara"
	ElementStudyYears           = "vuodet-arvio"
	ElementBusiestMonth         = "max-kuukausi-nopat"
	ElementAverage              = "keskiarvo"
	ElementMajor                = "pääaine-data"
	ElementMinors               = "sivuaineet-data"
	ElementWordCloud            = "tagipilvi"
	ElementBasicProgress        = "perusopinnot-progress"
	ElementIntermediateProgress = "aineopinnot-progress"
	ElementLecturers            = "luennoitsijat"
)

// chart canvas ids
const (
	ChartCredits             = "chart-nopat"
	ChartAverages            = "chart-keskiarvo"
	ChartMonths              = "chart-nopat-kuukaudet"
	ChartYears               = "chart-nopat-vuosi"
	ChartDepartments         = "chart-laitos-graafit"
	ChartGradeDistribution   = "chart-arvosanat-groupattuna"
	ChartCreditDistribution  = "chart-nopat-groupattuna"
	ChartBasicStudies        = "perusopinnot"
	ChartIntermediateStudies = "aineopinnot"
)

// TextElements lists the text block ids in page order.
var TextElements = []string{
	ElementCourseCount,
	ElementCreditsPerCourse,
	ElementLecturerCount,
	ElementOpenUniversity,
	ElementPassCount,
	ElementStudyYears,
	ElementBusiestMonth,
	ElementAverage,
	ElementMajor,
	ElementMinors,
	ElementWordCloud,
	ElementBasicProgress,
	ElementIntermediateProgress,
	ElementLecturers,
}

// ChartElements lists the chart canvas ids in page order.
var ChartElements = []string{
	ChartCredits,
	ChartAverages,
	ChartMonths,
	ChartYears,
	ChartDepartments,
	ChartGradeDistribution,
	ChartCreditDistribution,
	ChartBasicStudies,
	ChartIntermediateStudies,
}

// Block is the content of a text element. HTML is an HTML fragment in
// which every piece of transcript text is already escaped.
type Block struct {
	ID   string
	HTML string
}

// Page is the render target of a run.
type Page struct {
	texts  map[string]string
	charts map[string]Chart

	// Lecturers are the lecturer top lists shown in ElementLecturers.
	Lecturers []LecturerList
	// Cloud is the word cloud shown in ElementWordCloud.
	Cloud []CloudWord
	// Courses is the canonical course list.
	Courses []CourseRow
}

func NewPage() *Page {
	return &Page{
		texts:  map[string]string{},
		charts: map[string]Chart{},
	}
}

func unknownElement(id string) error {
	return fmt.Errorf("%w: %q", ErrUnknownElement, id)
}

// SetText replaces the content of a text element.
func (p *Page) SetText(id, html string) error {
	if !slices.Contains(TextElements, id) {
		return unknownElement(id)
	}
	p.texts[id] = html
	return nil
}

// Text returns the content of a text element, found is false when it was
// never set.
func (p *Page) Text(id string) (html string, found bool, err error) {
	if !slices.Contains(TextElements, id) {
		return "", false, unknownElement(id)
	}
	html, found = p.texts[id]
	return html, found, nil
}

// SetChart replaces the chart drawn on the canvas chart.ID.
func (p *Page) SetChart(chart Chart) error {
	if !slices.Contains(ChartElements, chart.ID) {
		return unknownElement(chart.ID)
	}
	p.charts[chart.ID] = chart
	return nil
}

func (p *Page) Chart(id string) (chart Chart, found bool, err error) {
	if !slices.Contains(ChartElements, id) {
		return Chart{}, false, unknownElement(id)
	}
	chart, found = p.charts[id]
	return chart, found, nil
}

// Blocks returns every set text element in page order.
func (p *Page) Blocks() []Block {
	var out []Block
	for _, id := range TextElements {
		if html, ok := p.texts[id]; ok {
			out = append(out, Block{ID: id, HTML: html})
		}
	}
	return out
}

// Charts returns every set chart in page order.
func (p *Page) Charts() []Chart {
	var out []Chart
	for _, id := range ChartElements {
		if chart, ok := p.charts[id]; ok {
			out = append(out, chart)
		}
	}
	return out
}

// Empty reports whether nothing was set on the page.
func (p *Page) Empty() bool {
	return len(p.texts) == 0 && len(p.charts) == 0
}
