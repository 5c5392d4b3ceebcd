package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"weboodi-charts/internal/report"
	"weboodi-charts/internal/service"
	"weboodi-charts/internal/transcript"
	"weboodi-charts/lib/serviceutil"

	"github.com/spf13/cobra"
)

var reportOut *string

func init() {
	reportOut = reportCmd.Flags().StringP("out", "o", "", "Write the report to a file instead of stdout.")
	rootCmd.AddCommand(reportCmd)
}

// writeReport renders the report of a saved transcript page.
func writeReport(ctx context.Context, svc service.Service, path string, format report.Format, w io.Writer) error {
	rows, err := transcript.ScrapeFile(ctx, path)
	if err != nil {
		return err
	}
	result, err := svc.Run(ctx, rows)
	if err != nil {
		return err
	}
	page, err := report.Build(result)
	if err != nil {
		return err
	}
	return report.Render(w, page, format)
}

// noTranscript reports whether err only means that page holds no
// transcript table, which leaves nothing to do.
func noTranscript(err error, page string) bool {
	if !errors.Is(err, transcript.ErrNoTable) {
		return false
	}
	slog.Info("the page has no transcript table, nothing to do", "page", page)
	return true
}

// output returns where a command writes its result, stdout when path is
// empty.
func output(path string) (io.Writer, func()) {
	if path == "" {
		return os.Stdout, func() {}
	}
	f, err := os.Create(path)
	if err != nil {
		serviceutil.Fatal("failed to create output file", err)
	}
	return f, func() {
		err := f.Close()
		if err != nil {
			slog.Warn("failed to close output file", "path", path, "err", err)
		}
	}
}

var reportCmd = &cobra.Command{
	Use:   "report <suoritukset.html> [--out <file>]",
	Short: "Prints the statistics and charts of a saved WebOodi transcript page.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, err := report.ParseFormat(config.Output.Format)
		if err != nil {
			serviceutil.Fatal("invalid output format", err)
		}

		svc, closeDb := openService()
		defer closeDb()

		// the output file is only created once the report rendered
		var buff bytes.Buffer
		err = writeReport(cmd.Context(), svc, args[0], format, &buff)
		if noTranscript(err, args[0]) {
			return
		}
		if err != nil {
			serviceutil.Fatal("failed to generate report", err)
		}

		out, closeOut := output(*reportOut)
		defer closeOut()
		_, err = buff.WriteTo(out)
		if err != nil {
			serviceutil.Fatal("failed to write report", err)
		}
	},
}
