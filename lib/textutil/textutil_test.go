package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	table := []struct {
		input    string
		expected string
	}{
		{input: "  A582103 ", expected: "A582103"},
		{input: "&nbsp;Ohjelmoinnin perusteet&nbsp;", expected: "Ohjelmoinnin perusteet"},
		{input: " 5 ", expected: "5"},
		{input: "harjoitustyö", expected: "harjoitustyö"},
		{input: "\n\t", expected: ""},
	}

	for _, row := range table {
		require.Equal(t, row.expected, Clean(row.input))
	}
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"A582103", "A581325"}, SplitList("A582103, A581325"))
	require.Equal(t, []string{"TKT"}, SplitList(" ,TKT,, "))
	require.Nil(t, SplitList(""))
}

func TestNormalizeKey(t *testing.T) {
	require.True(t, EqualFold("a58131", "A58131"))
	require.True(t, EqualFold(" AYTKT10002 ", "aytkt10002"))
	require.False(t, EqualFold("TKT", "MAT"))
}

func TestUpper(t *testing.T) {
	require.Equal(t, "TKT", Upper("tkt"))
	require.Equal(t, "ÄIDINKIELI", Upper("äidinkieli"))
	require.Equal(t, []string{"MAT", "FYS"}, UpperAll([]string{"mat", "Fys"}))
}
