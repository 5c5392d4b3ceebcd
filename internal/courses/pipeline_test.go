package courses

import (
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBuildScenario(t *testing.T) {
	rows := []Row{
		{"A1", "Intro", "5", "3", "01.09.2020", "Smith"},
		{"A2", "Algo", "10", "4", "01.10.2020", "Jones"},
	}

	result, err := Build(rows, nil)
	require.NoError(t, err)
	require.Len(t, result.Courses, 2)
	require.Equal(t, []string{"A1", "A2"}, Codes(result.Courses))

	var credits, cumulative []float64
	for _, c := range result.Courses {
		credits = append(credits, c.Credits)
		cumulative = append(cumulative, c.CumulativeCredits)
	}
	require.Equal(t, []float64{50, 100}, credits)
	require.Equal(t, []float64{50, 150}, cumulative)
}

func TestBuildExclusions(t *testing.T) {
	rows := []Row{
		{"A582103", "Ohjelmoinnin jatkokurssi", "5", "5", "01.03.2020", "Luukkainen"},
		{},
		{"A582103", "Ohjelmoinnin jatkokurssi", "5", "4", "01.12.2019", "Luukkainen"},
		{"A581325", "Ohjelmoinnin perusteet", "5", "3", "01.10.2019", "Luukkainen"},
		{"yhteensä", "", "15"},
		{"X", "Broken credits", "op", "3", "01.10.2019", ""},
	}

	result, err := Build(rows, []string{" A582103"})
	require.NoError(t, err)
	require.Equal(t, 2, result.Excluded)
	require.Equal(t, 2, result.Malformed)
	require.Equal(t, []string{"A581325"}, Codes(result.Courses))
}

func TestBuildSameDayKeepsCompletionOrder(t *testing.T) {
	// most recent first, as the page lists them
	rows := []Row{
		{"C", "Third", "5", "3", "02.01.2020", ""},
		{"B", "Second", "5", "3", "01.01.2020", ""},
		{"A", "First", "5", "3", "01.01.2020", ""},
	}
	result, err := Build(rows, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, Codes(result.Courses))
}

func TestBuildFatalDate(t *testing.T) {
	rows := []Row{
		{"A1", "Intro", "5", "3", "01.09.2020", "Smith"},
		{"A2", "Algo", "5", "3", "ensi syksynä", "Jones"},
	}
	_, err := Build(rows, nil)
	require.ErrorIs(t, err, ErrDateParse)
}

func randomRows(faker *gofakeit.Faker, n int) []Row {
	start := time.Date(2012, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	rows := make([]Row, n)
	for i := range rows {
		date := faker.DateRange(start, end)
		grade := fmt.Sprint(faker.Number(0, 5))
		if faker.Number(0, 4) == 0 {
			grade = "hyv"
		}
		rows[i] = Row{
			fmt.Sprintf("%s%d", faker.RandomString([]string{"TKT", "MAT", "A58", "AYTKT"}), faker.Number(100, 99999)),
			faker.Word() + " " + faker.Word(),
			fmt.Sprint(faker.Number(1, 15)),
			grade,
			date.Format("02.01.2006"),
			faker.LastName() + ", " + faker.LastName(),
		}
	}
	return rows
}

func TestSequenceProperties(t *testing.T) {
	faker := gofakeit.New(42)

	for round := 0; round < 20; round++ {
		rows := randomRows(faker, faker.Number(1, 60))
		result, err := Build(rows, nil)
		require.NoError(t, err)
		require.Len(t, result.Courses, len(rows))

		var prefix float64
		for i, c := range result.Courses {
			prefix += c.Credits
			require.Greater(t, c.Credits, 0.0)
			require.Equal(t, prefix, c.CumulativeCredits)
			if i > 0 {
				prev := result.Courses[i-1]
				require.False(t, c.Date.Before(prev.Date))
				require.GreaterOrEqual(t, c.CumulativeCredits, prev.CumulativeCredits)
			}
		}

		again := Sequence(result.Courses)
		if diff := cmp.Diff(result.Courses, again); diff != "" {
			t.Fatalf("sequencing is not idempotent (-first +second):\n%s", diff)
		}
	}
}
