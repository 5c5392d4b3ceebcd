package report

import (
	"fmt"
	"io"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var Formats = []Format{FormatText, FormatHTML, FormatJSON, FormatCSV, FormatXLSX}

func ParseFormat(text string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(text)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", text)
}

// Render writes page to w in the given format. CSV only carries the course
// list, every other format carries the whole page.
func Render(w io.Writer, page *Page, format Format) error {
	switch format {
	case FormatText:
		return RenderText(w, page)
	case FormatHTML:
		return RenderHTML(w, page)
	case FormatJSON:
		return RenderJSON(w, page)
	case FormatCSV:
		return RenderCSV(w, page.Courses)
	case FormatXLSX:
		return RenderXLSX(w, page)
	}
	return fmt.Errorf("unknown output format %q", format)
}
