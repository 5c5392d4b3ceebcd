package stats

import (
	"testing"

	"weboodi-charts/internal/courses"

	"github.com/stretchr/testify/require"
)

func TestTrackProgress(t *testing.T) {
	list := canonical(t,
		courses.Row{"TKT10002", "Ohjelmoinnin perusteet", "5", "5", "01.09.2020", ""},
		courses.Row{"AYTKT10003", "Avoin yo: Ohjelmoinnin jatkokurssi", "5", "4", "01.10.2020", ""},
	)
	names := staticNames{
		"TKT10002":   "Ohjelmoinnin perusteet",
		"TKT10003":   "Ohjelmoinnin jatkokurssi",
		"AYTKT10003": "Ohjelmoinnin jatkokurssi",
		"TKT10004":   "Avoin yo: Tietokantojen perusteet",
	}
	progress := TrackProgress(list, []string{"TKT10002", "TKT10003", "AYTKT10003", "TKT10004", "MAT11001"}, names)

	require.Equal(t, []ProgressEntry{
		{Code: "TKT10002", Name: "Ohjelmoinnin perusteet", Done: true},
		{Code: "AYTKT10003", Name: "Ohjelmoinnin jatkokurssi", Done: true},
		{Code: "TKT10004", Name: "Tietokantojen perusteet"},
		{Code: "MAT11001", Name: "MAT11001"},
	}, progress.Entries)
	require.Equal(t, 2, progress.DoneCount)
	require.Equal(t, 4, progress.Total())
	require.False(t, progress.Complete())
	require.Equal(t, 25.0, progress.SliceWeight())
}

func TestTrackProgressComplete(t *testing.T) {
	list := canonical(t, courses.Row{"TKT10002", "Ohjelmoinnin perusteet", "5", "5", "01.09.2020", ""})

	progress := TrackProgress(list, []string{"TKT10002"}, nil)
	require.True(t, progress.Complete())

	empty := TrackProgress(list, nil, nil)
	require.False(t, empty.Complete())
	require.Zero(t, empty.SliceWeight())
}
