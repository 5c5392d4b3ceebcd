package report

import (
	"testing"

	"weboodi-charts/internal/courses"
	"weboodi-charts/internal/service"
	"weboodi-charts/internal/settings"
)

type staticNames map[string]string

func (s staticNames) Lookup(code string) (string, bool) {
	name, ok := s[code]
	return name, ok
}

// rows in page order, most recent first
var fixtureRows = []courses.Row{
	{"MAT11001", "Raja-arvot", "5", "2", "10.01.2021", "Virtanen"},
	{"TKT20002", "Ohjelmistotekniikka", "5", "4", "15.12.2020", "Luukkainen"},
	{"AYTKT10003", "Avoin yo: Ohjelmoinnin jatkokurssi", "5", "hyv", "20.10.2020", "Hellas, Luukkainen"},
	{"TKT10002", "Ohjelmoinnin perusteet", "5", "5", "01.09.2020", "Hellas"},
}

var fixtureValues = settings.Values{
	BasicStudies:        []string{"TKT10002", "TKT10003"},
	IntermediateStudies: []string{"TKT20002"},
	Major:               "TKT",
	Minors:              []string{"MAT"},
}

func fixturePage(t *testing.T) *Page {
	result, err := service.Compute(fixtureRows, fixtureValues, staticNames{
		"TKT10002": "Ohjelmoinnin perusteet",
		"TKT10003": "Ohjelmoinnin jatkokurssi",
		"TKT20002": "Ohjelmistotekniikka",
	})
	if err != nil {
		t.Fatal(err)
	}
	page, err := Build(result)
	if err != nil {
		t.Fatal(err)
	}
	return page
}

func textOf(t *testing.T, page *Page, id string) string {
	content, found, err := page.Text(id)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatalf("text %s was not set", id)
	}
	return content
}

func chartOf(t *testing.T, page *Page, id string) Chart {
	c, found, err := page.Chart(id)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatalf("chart %s was not set", id)
	}
	return c
}
