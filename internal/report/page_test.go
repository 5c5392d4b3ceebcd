package report

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageUnknownElement(t *testing.T) {
	page := NewPage()
	require.True(t, page.Empty())

	err := page.SetText("ei-ole", "x")
	require.True(t, errors.Is(err, ErrUnknownElement))
	_, _, err = page.Text("ei-ole")
	require.ErrorIs(t, err, ErrUnknownElement)

	err = page.SetChart(Chart{ID: "chart-ei-ole"})
	require.ErrorIs(t, err, ErrUnknownElement)
	_, _, err = page.Chart("chart-ei-ole")
	require.ErrorIs(t, err, ErrUnknownElement)

	// text ids are not chart ids
	require.ErrorIs(t, page.SetChart(Chart{ID: ElementAverage}), ErrUnknownElement)
	require.ErrorIs(t, page.SetText(ChartAverages, "x"), ErrUnknownElement)
}

func TestPageOrder(t *testing.T) {
	page := NewPage()
	require.NoError(t, page.SetText(ElementLecturers, "c"))
	require.NoError(t, page.SetText(ElementCourseCount, "a"))
	require.NoError(t, page.SetText(ElementAverage, "b"))
	require.NoError(t, page.SetText(ElementAverage, "b2"))

	require.Equal(t, []Block{
		{ID: ElementCourseCount, HTML: "a"},
		{ID: ElementAverage, HTML: "b2"},
		{ID: ElementLecturers, HTML: "c"},
	}, page.Blocks())

	_, found, err := page.Text(ElementMajor)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, page.SetChart(Chart{ID: ChartBasicStudies}))
	require.NoError(t, page.SetChart(Chart{ID: ChartCredits}))
	charts := page.Charts()
	require.Len(t, charts, 2)
	require.Equal(t, ChartCredits, charts[0].ID)
	require.False(t, page.Empty())
}

func TestCeilToStep(t *testing.T) {
	table := []struct {
		value    float64
		expected float64
	}{
		{value: 0, expected: 0},
		{value: 1, expected: 55},
		{value: 55, expected: 55},
		{value: 56, expected: 110},
		{value: 200, expected: 220},
	}
	for _, row := range table {
		require.Equal(t, row.expected, CeilToStep(row.value, tickStep))
	}
}

func TestValueJSON(t *testing.T) {
	encoded, err := json.Marshal([]Value{Number(1.5), {}, Number(0)})
	require.NoError(t, err)
	require.JSONEq(t, `[1.5, null, 0]`, string(encoded))
	require.Equal(t, "", Value{}.String())
	require.Equal(t, "3.67", Number(3.67).String())
}

func TestBlockPlainText(t *testing.T) {
	table := []struct {
		html     string
		expected string
	}{
		{html: "plain", expected: "plain"},
		{html: "a<br>b", expected: "a\nb"},
		{html: `x = <span title="t">20 / 60</span>.`, expected: "x = 20 / 60."},
		{html: "<div><p><strong>Title</strong></p><p>a,\n   b</p></div>", expected: "Title\na, b"},
		{html: "&lt;b&gt; &amp; ä", expected: "<b> & ä"},
	}
	for _, row := range table {
		text, err := Block{HTML: row.html}.PlainText()
		require.NoError(t, err)
		require.Equal(t, row.expected, text)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		parsed, err := ParseFormat(string(f))
		require.NoError(t, err)
		require.Equal(t, f, parsed)
	}
	parsed, err := ParseFormat(" HTML ")
	require.NoError(t, err)
	require.Equal(t, FormatHTML, parsed)
	_, err = ParseFormat("pdf")
	require.Error(t, err)
}
