package report

import (
	"encoding/json"
	"io"
)

type jsonBlock struct {
	ID   string `json:"id"`
	HTML string `json:"html"`
	Text string `json:"text"`
}

type jsonLecturerList struct {
	Title string        `json:"title"`
	Rows  []LecturerRow `json:"rows"`
}

type jsonDocument struct {
	Texts     []jsonBlock        `json:"texts"`
	Charts    []Chart            `json:"charts"`
	Lecturers []jsonLecturerList `json:"lecturers"`
	Cloud     []CloudWord        `json:"cloud"`
	Courses   []CourseRow        `json:"courses"`
}

func document(page *Page) (jsonDocument, error) {
	doc := jsonDocument{
		Texts:     []jsonBlock{},
		Charts:    page.Charts(),
		Lecturers: []jsonLecturerList{},
		Cloud:     page.Cloud,
		Courses:   page.Courses,
	}
	if doc.Charts == nil {
		doc.Charts = []Chart{}
	}
	for _, block := range page.Blocks() {
		text, err := block.PlainText()
		if err != nil {
			return jsonDocument{}, err
		}
		doc.Texts = append(doc.Texts, jsonBlock{ID: block.ID, HTML: block.HTML, Text: text})
	}
	for _, list := range page.Lecturers {
		doc.Lecturers = append(doc.Lecturers, jsonLecturerList(list))
	}
	return doc, nil
}

// RenderJSON writes the page as one indented JSON document.
func RenderJSON(w io.Writer, page *Page) error {
	doc, err := document(page)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
