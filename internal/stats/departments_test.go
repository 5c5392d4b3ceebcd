package stats

import (
	"testing"

	"weboodi-charts/internal/courses"

	"github.com/stretchr/testify/require"
)

func TestDepartmentCode(t *testing.T) {
	table := []struct {
		code     string
		expected string
	}{
		{code: "A582103", expected: UnknownDepartment},
		{code: "TKT123", expected: "TKT"},
		{code: "TKT20002", expected: "TKT"},
		{code: "AYMAT11001", expected: "MAT"},
		{code: "aytkt10002", expected: "TKT"},
		{code: "MAT-12345", expected: "MAT"},
		{code: "KIK_LAB1", expected: "KIK"},
		{code: "582103", expected: UnknownDepartment},
		// every digit run goes, not only the first
		{code: "TKT12ab34", expected: "TKTAB"},
	}
	for _, row := range table {
		t.Run(row.code, func(t *testing.T) {
			require.Equal(t, row.expected, DepartmentCode(row.code))
		})
	}
}

func departmentCodes(list []Department) []string {
	out := make([]string, len(list))
	for i, d := range list {
		out[i] = d.Code
	}
	return out
}

func TestDepartments(t *testing.T) {
	list := canonical(t,
		courses.Row{"MAT11001", "Calculus", "5", "2", "01.09.2020", ""},
		courses.Row{"TKT10002", "Programming", "5", "5", "02.09.2020", ""},
		courses.Row{"AYTKT10003", "Avoin yo: Programming 2", "10", "3", "03.09.2020", ""},
		courses.Row{"TKT10004", "Seminar", "15", "hyv", "04.09.2020", ""},
		courses.Row{"A582103", "Language", "2", "hyv", "05.09.2020", ""},
	)
	departments := Departments(list)
	require.Equal(t, []string{"MAT", "TKT", UnknownDepartment}, departmentCodes(departments))

	tkt := departments[1]
	require.Equal(t, 3, tkt.CourseCount)
	require.Equal(t, 165.0, tkt.TotalCredits)
	require.Equal(t, 30.0, tkt.TotalRawCredits)
	require.Equal(t, "4.00", tkt.SimpleAverage.String())
	// (5*5 + 3*10) / 15
	require.Equal(t, "3.67", tkt.WeightedAverage.String())

	require.Equal(t, PassLabel, departments[2].SimpleAverage.String())
	require.Equal(t, []string{"TKT", "MAT", UnknownDepartment}, departmentCodes(SortDepartmentsByCredits(departments)))

	major, ok := MajorDepartment(departments, "tkt")
	require.True(t, ok)
	require.Equal(t, "TKT", major.Code)
	_, ok = MajorDepartment(departments, "FYS")
	require.False(t, ok)
	_, ok = MajorDepartment(departments, "")
	require.False(t, ok)

	minors := MinorDepartments(departments, []string{"emt", "mat", "fys"})
	require.Equal(t, []string{"MAT", UnknownDepartment}, departmentCodes(minors))
}

func TestSortDepartmentsMixedCredits(t *testing.T) {
	departments := Departments(canonical(t,
		courses.Row{"MAT1", "One", "8", "3", "01.09.2020", ""},
		courses.Row{"TKT1", "Two", "15", "3", "02.09.2020", ""},
	))
	require.Equal(t, []string{"TKT", "MAT"}, departmentCodes(SortDepartmentsByCredits(departments)))
}
