package report

import (
	_ "embed"
	"html/template"
	"io"
)

//go:embed page.html.tmpl
var pageTemplateText string

var pageTemplate = template.Must(template.New("page").Parse(pageTemplateText))

type htmlBlock struct {
	ID string
	// the builder escapes every piece of transcript text it puts in a
	// block
	HTML template.HTML
}

type htmlPage struct {
	Title  string
	Blocks []htmlBlock
	Charts []Chart
}

// RenderHTML writes a standalone page that draws the charts with Chart.js.
func RenderHTML(w io.Writer, page *Page) error {
	view := htmlPage{
		Title:  "Opintosuoritukset",
		Charts: page.Charts(),
	}
	if view.Charts == nil {
		view.Charts = []Chart{}
	}
	for _, block := range page.Blocks() {
		view.Blocks = append(view.Blocks, htmlBlock{
			ID:   block.ID,
			HTML: template.HTML(block.HTML),
		})
	}
	return pageTemplate.Execute(w, view)
}
