package commands

import (
	"context"
	"io"

	"weboodi-charts/internal/coursedb"
	"weboodi-charts/internal/service"
	"weboodi-charts/internal/settings"
	"weboodi-charts/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var prefillProgram *string

func init() {
	prefillProgram = prefillCmd.Flags().String("program", coursedb.DefaultProgram, "The degree program of the course database to read from.")
	rootCmd.AddCommand(prefillCmd)
}

func prefill(ctx context.Context, svc service.Service, program, curriculumText string, w io.Writer) error {
	curriculum, err := coursedb.ParseCurriculum(curriculumText)
	if err != nil {
		return err
	}
	requirements, err := svc.Prefill(ctx, program, curriculum)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Avain", "Kursseja"})
	t.AppendRow(table.Row{settings.KeyBasicStudies, len(requirements.Basic)})
	t.AppendRow(table.Row{settings.KeyIntermediateStudies, len(requirements.Intermediate)})
	t.Render()
	return nil
}

var prefillCmd = &cobra.Command{
	Use:       "prefill <2017|pre-2017> [--program <program>]",
	Short:     "Fills the basic and intermediate study lists from the course database.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(coursedb.Curriculum2017), string(coursedb.CurriculumPre2017)},
	Run: func(cmd *cobra.Command, args []string) {
		svc, closeDb := openService()
		defer closeDb()

		err := prefill(cmd.Context(), svc, *prefillProgram, args[0], cmd.OutOrStdout())
		if err != nil {
			serviceutil.Fatal("failed to prefill settings", err)
		}
	},
}
