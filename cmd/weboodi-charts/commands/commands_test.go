package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"weboodi-charts/internal/coursedb"
	"weboodi-charts/internal/report"
	"weboodi-charts/internal/service"
	"weboodi-charts/internal/settings"
	"weboodi-charts/internal/transcript"

	"github.com/stretchr/testify/require"
)

const fixturePage = "../../../internal/transcript/testdata/suoritukset.html"

func newService(t *testing.T) service.Service {
	db, err := coursedb.Load()
	require.NoError(t, err)
	return service.NewService(settings.NewMemory(), db)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "weboodi.json5"), []byte(`{
		// relative to wherever the command runs
		database: { file: "oodi.db" },
		output: { format: "html" },
	}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weboodi.local.json5"), []byte(`{
		output: { format: "json" },
	}`), 0644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := loadConfig("weboodi.json5")
	require.NoError(t, err)
	require.Equal(t, "oodi.db", cfg.Database.File)
	require.Equal(t, "json", cfg.Output.Format)
	require.False(t, cfg.Debug)

	cfg, err = loadConfig(filepath.Join(dir, "puuttuu.json5"))
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weboodi.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{ database: `), 0644))
	_, err := loadConfig(path)
	require.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	require.NoError(t, setSetting(ctx, svc.Settings(), settings.KeyMajor, "tkt"))

	var out bytes.Buffer
	err := writeReport(ctx, svc, fixturePage, report.FormatJSON, &out)
	require.NoError(t, err)

	var doc struct {
		Texts []struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"texts"`
		Courses []report.CourseRow `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Courses, 3)
	require.Equal(t, "TKT10002", doc.Courses[0].Code)

	texts := map[string]string{}
	for _, block := range doc.Texts {
		texts[block.ID] = block.Text
	}
	require.Equal(t, "Olet suorittanut huimat 3 erilaista kurssia! Good for you!", texts[report.ElementCourseCount])
	require.Contains(t, texts, report.ElementMajor)
}

func TestWriteReportNoTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etusivu.html")
	require.NoError(t, os.WriteFile(path, []byte("<html><body><p>WebOodi</p></body></html>"), 0644))

	var out bytes.Buffer
	err := writeReport(context.Background(), newService(t), path, report.FormatText, &out)
	require.ErrorIs(t, err, transcript.ErrNoTable)
	require.Zero(t, out.Len())
}

func TestNoTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "etusivu.html")
	require.NoError(t, os.WriteFile(path, []byte("<html><body><p>WebOodi</p></body></html>"), 0644))

	var out bytes.Buffer
	err := writeCourses(context.Background(), newService(t), path, report.FormatCSV, &out)
	require.ErrorIs(t, err, transcript.ErrNoTable)
	require.True(t, noTranscript(err, path))
	require.Zero(t, out.Len())

	require.False(t, noTranscript(nil, path))
	require.False(t, noTranscript(errors.New("permission denied"), path))
}

func TestWriteCourses(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	require.NoError(t, setSetting(ctx, svc.Settings(), settings.KeyDuplicates, "TKT20002"))

	var out bytes.Buffer
	require.NoError(t, writeCourses(ctx, svc, fixturePage, report.FormatCSV, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[1], "TKT10002,Ohjelmoinnin perusteet,5,50,5,01.09.2020,"))

	out.Reset()
	require.NoError(t, writeCourses(ctx, svc, fixturePage, report.FormatText, &out))
	require.Contains(t, out.String(), "AYTKT10003")
	require.NotContains(t, out.String(), "TKT20002")
}

func TestSettingsCommands(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	require.NoError(t, setSetting(ctx, svc.Settings(), settings.KeyMinors, "MAT, FYS"))
	require.Error(t, setSetting(ctx, svc.Settings(), "kieli", "fi"))

	var out bytes.Buffer
	require.NoError(t, showSettings(ctx, svc.Settings(), &out))
	require.Contains(t, out.String(), "MAT, FYS")
	require.Contains(t, out.String(), settings.KeyDuplicates)
}

func TestPrefill(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, prefill(ctx, svc, coursedb.DefaultProgram, "2017", &out))
	require.Contains(t, out.String(), settings.KeyBasicStudies)

	values, err := svc.Settings().Load(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, values.BasicStudies)
	require.NotEmpty(t, values.IntermediateStudies)

	require.Error(t, prefill(ctx, svc, coursedb.DefaultProgram, "1999", &out))
}
