package transcript

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"weboodi-charts/internal/courses"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"golang.org/x/text/encoding/charmap"
)

func latin1Fixture(t *testing.T) []byte {
	contents, err := os.ReadFile("testdata/suoritukset.html")
	if err != nil {
		t.Fatal(err)
	}
	encoded, err := charmap.ISO8859_1.NewEncoder().Bytes(contents)
	if err != nil {
		t.Fatal(err)
	}
	return encoded
}

func TestScrape(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(provider)
	defer provider.Shutdown(context.Background())

	rows, err := Scrape(context.Background(), bytes.NewReader(latin1Fixture(t)), "text/html")
	require.NoError(t, err)

	require.Equal(t, []courses.Row{
		{},
		{"TKT20002", "Ohjelmistotekniikka", "5", "4", "15.03.2021", "Matti Luukkainen"},
		{"AYTKT10003", "Avoin yo: Ohjelmoinnin jatkokurssi", "5", "hyv.", "20.10.2020", "Arto Hellas, Matti Luukkainen"},
		{"TKT10002", "Ohjelmoinnin perusteet", "(5)", "5", "01.09.2020", "Arto Hellas"},
		{"Yhteensä 15 op"},
	}, rows)

	spans := recorder.Ended()
	require.NotEmpty(t, spans)
	require.Equal(t, "Scrape", spans[len(spans)-1].Name())

	result, err := courses.Build(rows, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"TKT10002", "AYTKT10003", "TKT20002"}, courses.Codes(result.Courses))
}

func TestScrapeUTF8(t *testing.T) {
	page := `<html><head><meta charset="utf-8"></head><body>
<a name="suoritus"></a><table></table>
<table><tr><td><table class="eisei">
<tr><td>KIK1</td><td>Käännöstiede</td><td>5</td><td>3</td><td>01.09.2020</td><td>Sääksjärvi</td></tr>
</table></td></tr></table></body></html>`

	rows, err := Scrape(context.Background(), strings.NewReader(page), "text/html; charset=utf-8")
	require.NoError(t, err)
	require.Equal(t, []courses.Row{
		{"KIK1", "Käännöstiede", "5", "3", "01.09.2020", "Sääksjärvi"},
	}, rows)
}

func TestScrapeNoTable(t *testing.T) {
	_, err := Scrape(context.Background(), strings.NewReader("<html><body><p>Kirjaudu sisään</p></body></html>"), "text/html")
	require.True(t, errors.Is(err, ErrNoTable))

	// the "eisei" navigation table alone is not the transcript
	page := `<a name="suoritus"></a><table></table><table class="eisei"><tr><td><table class="eisei"></table></td></tr></table>`
	_, err = Scrape(context.Background(), strings.NewReader(page), "text/html")
	require.ErrorIs(t, err, ErrNoTable)
}

func TestScrapeFile(t *testing.T) {
	rows, err := ScrapeFile(context.Background(), "testdata/suoritukset.html")
	require.NoError(t, err)
	require.Len(t, rows, 5)

	_, err = ScrapeFile(context.Background(), "testdata/missing.html")
	require.ErrorIs(t, err, os.ErrNotExist)
}
