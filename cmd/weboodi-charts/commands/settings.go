package commands

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"weboodi-charts/internal/settings"
	"weboodi-charts/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func showSettings(ctx context.Context, s settings.Settings, w io.Writer) error {
	values, err := s.Load(ctx)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Avain", "Arvo"})
	t.AppendRows([]table.Row{
		{settings.KeyDuplicates, strings.Join(values.Duplicates, ", ")},
		{settings.KeyBasicStudies, strings.Join(values.BasicStudies, ", ")},
		{settings.KeyIntermediateStudies, strings.Join(values.IntermediateStudies, ", ")},
		{settings.KeyMajor, values.Major},
		{settings.KeyMinors, strings.Join(values.Minors, ", ")},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 80},
	})
	t.Render()
	return nil
}

func setSetting(ctx context.Context, s settings.Settings, key, value string) error {
	if !slices.Contains(settings.Keys, key) {
		return fmt.Errorf("unknown setting %q, expected one of %s", key, strings.Join(settings.Keys, ", "))
	}
	return s.SetText(ctx, key, value)
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Shows and edits the stored settings.",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints every stored setting.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, closeDb := openService()
		defer closeDb()

		err := showSettings(cmd.Context(), svc.Settings(), cmd.OutOrStdout())
		if err != nil {
			serviceutil.Fatal("failed to read settings", err)
		}
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Sets a setting. Lists are given comma separated, an empty value clears the setting.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		svc, closeDb := openService()
		defer closeDb()

		err := setSetting(cmd.Context(), svc.Settings(), args[0], args[1])
		if err != nil {
			serviceutil.Fatal("failed to store setting", err)
		}
	},
}
