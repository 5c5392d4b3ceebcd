package stats

import (
	"testing"

	"weboodi-charts/internal/courses"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	require.Equal(t,
		[]string{"Ohjelmointi", "osa", "harjoitustyö"},
		Tokenize("Ohjelmointi 1, osa 2 (Avoin yo: harjoitustyö)"),
	)
	require.Equal(t, []string{"Tietorakenteet", "algoritmit"}, Tokenize("Tietorakenteet ja algoritmit"))
	require.Empty(t, Tokenize("II"))
}

func TestWordFrequencies(t *testing.T) {
	list := canonical(t,
		courses.Row{"A1", "Ohjelmoinnin perusteet", "5", "3", "01.09.2020", ""},
		courses.Row{"A2", "Tietokantojen perusteet", "5", "3", "02.09.2020", ""},
		courses.Row{"A3", "Avoin yo: Ohjelmoinnin jatkokurssi", "5", "3", "03.09.2020", ""},
	)
	words := WordFrequencies(list)
	require.Equal(t, []WordCount{
		{Word: "Ohjelmoinnin", Count: 2},
		{Word: "perusteet", Count: 2},
		{Word: "Tietokantojen", Count: 1},
		{Word: "jatkokurssi", Count: 1},
	}, words)

	lowest, highest := CountRange(words)
	require.Equal(t, 1, lowest)
	require.Equal(t, 2, highest)
}

func TestFontSize(t *testing.T) {
	require.Equal(t, 1.0, FontSize(1, 1, 5))
	require.Equal(t, float64(MaxFontSize+MinFontSize), FontSize(5, 1, 5))
	require.Equal(t, 21.0, FontSize(3, 1, 5))
	// a single distinct count hides every word
	require.Equal(t, 1.0, FontSize(4, 4, 4))
}
