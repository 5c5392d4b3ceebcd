// Package transcript reads the course rows out of a saved WebOodi
// "suoritukset" page.
package transcript

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"weboodi-charts/internal/courses"
	"weboodi-charts/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html/charset"
)

var tracer = otel.Tracer("weboodi.transcript")

// ErrNoTable is returned when the page has no transcript table, ex. when a
// different WebOodi page was saved.
var ErrNoTable = errors.New("transcript table not found")

// the result table is the nested table right after the "suoritus" anchor's
// header table
const tableSelector = "[name=suoritus] + table + table:not(.eisei) table.eisei"

// Scrape finds the transcript table of an HTML page and returns the cleaned
// cell texts of each of its body rows, in page order (most recent first).
// contentType is used together with the page's own <meta> tags to detect
// its charset; WebOodi serves ISO-8859-1.
func Scrape(ctx context.Context, r io.Reader, contentType string) ([]courses.Row, error) {
	ctx, span := tracer.Start(ctx, "Scrape")
	defer span.End()

	decoded, err := charset.NewReader(r, contentType)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("detect page charset: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(decoded)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("parse page: %w", err)
	}

	table := doc.Find(tableSelector).First()
	if table.Length() == 0 {
		span.SetStatus(codes.Error, ErrNoTable.Error())
		return nil, ErrNoTable
	}

	var rows []courses.Row
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if ctx.Err() != nil {
			return
		}
		rows = append(rows, courses.Row(htmlutil.CellTexts(tr.ChildrenFiltered("td"))))
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("rows", len(rows)))
	return rows, nil
}

// ScrapeFile is Scrape on a page saved to disk.
func ScrapeFile(ctx context.Context, path string) ([]courses.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Scrape(ctx, f, "text/html")
}
