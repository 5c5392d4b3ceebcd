package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderText writes the page as text blocks followed by one table per
// lecturer list and per chart.
func RenderText(w io.Writer, page *Page) error {
	if page.Empty() {
		_, err := fmt.Fprintln(w, "Ei suorituksia.")
		return err
	}

	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.SetStyle(table.StyleRounded)
	summary.Style().Options.SeparateRows = true
	summary.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 80},
	})
	for _, block := range page.Blocks() {
		// the lists and the cloud get their own tables below
		if block.ID == ElementLecturers || block.ID == ElementWordCloud {
			continue
		}
		content, err := block.PlainText()
		if err != nil {
			return fmt.Errorf("%s: %w", block.ID, err)
		}
		summary.AppendRow(table.Row{block.ID, content})
	}
	summary.Render()

	if len(page.Cloud) > 0 {
		t := newTable(w, "Tagipilvi")
		t.AppendHeader(table.Row{"Sana", "Mainintoja", "Koko (px)"})
		for _, word := range page.Cloud {
			t.AppendRow(table.Row{word.Word, word.Count, number(word.FontSize)})
		}
		t.Render()
	}

	for _, list := range page.Lecturers {
		t := newTable(w, list.Title)
		t.AppendHeader(table.Row{"#", "Luennoitsija", "Kursseja", "Keskiarvo", "Noppia"})
		for i, row := range list.Rows {
			t.AppendRow(table.Row{i + 1, row.Name, row.CourseCount, row.Average, number(row.Credits)})
		}
		t.Render()
	}

	for _, chart := range page.Charts() {
		chartTable(w, chart).Render()
	}
	return nil
}

func newTable(w io.Writer, title string) table.Writer {
	fmt.Fprintln(w)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(title)
	t.Style().Title.Align = text.AlignLeft
	return t
}

func chartTable(w io.Writer, chart Chart) table.Writer {
	t := newTable(w, chart.ID)

	header := table.Row{""}
	for _, d := range chart.Datasets {
		label := d.Label
		if label == "" {
			label = "%"
		}
		header = append(header, label)
	}
	hasColors := len(chart.Datasets) == 1 && len(chart.Datasets[0].Colors) > 0
	if hasColors {
		header = append(header, "")
	}
	t.AppendHeader(header)

	for i, label := range chart.Labels {
		row := table.Row{label}
		for _, d := range chart.Datasets {
			if i < len(d.Data) {
				row = append(row, d.Data[i].String())
				continue
			}
			row = append(row, "")
		}
		if hasColors {
			row = append(row, chart.Datasets[0].Colors[i])
		}
		t.AppendRow(row)
	}
	if chart.YMax > 0 {
		t.AppendFooter(table.Row{fmt.Sprintf("max %s, step %s", number(chart.YMax), number(chart.StepSize))})
	}
	return t
}
