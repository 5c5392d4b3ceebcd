package commands

import (
	"context"
	"io"

	"weboodi-charts/internal/report"
	"weboodi-charts/internal/service"
	"weboodi-charts/internal/transcript"
	"weboodi-charts/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(coursesCmd)
}

// writeCourses prints the canonical course list of a transcript page, as
// CSV when asked for and as a table otherwise.
func writeCourses(ctx context.Context, svc service.Service, path string, format report.Format, w io.Writer) error {
	rows, err := transcript.ScrapeFile(ctx, path)
	if err != nil {
		return err
	}
	result, err := svc.Run(ctx, rows)
	if err != nil {
		return err
	}
	list := report.CourseRows(result.Courses)
	if format == report.FormatCSV {
		return report.RenderCSV(w, list)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Tunniste", "Opintojakso", "Op", "Arvosana", "Päivämäärä", "Opettajat", "Kumulatiiviset op"})

	var credits float64
	for _, c := range list {
		credits += c.Credits
		t.AppendRow(table.Row{c.Code, c.Name, c.Credits, c.Grade, c.Date, c.Lecturers, c.CumulativeCredits})
	}
	t.AppendFooter(table.Row{"Yhteensä", len(list), credits})
	t.Render()
	return nil
}

var coursesCmd = &cobra.Command{
	Use:   "courses <suoritukset.html>",
	Short: "Prints the deduplicated, date ordered course list of a transcript page.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, err := report.ParseFormat(config.Output.Format)
		if err != nil {
			serviceutil.Fatal("invalid output format", err)
		}
		svc, closeDb := openService()
		defer closeDb()

		err = writeCourses(cmd.Context(), svc, args[0], format, cmd.OutOrStdout())
		if noTranscript(err, args[0]) {
			return
		}
		if err != nil {
			serviceutil.Fatal("failed to list courses", err)
		}
	},
}
