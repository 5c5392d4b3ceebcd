package service

import (
	"weboodi-charts/internal/courses"
	"weboodi-charts/internal/settings"
	"weboodi-charts/internal/stats"
)

// Result is every derived structure of one run.
type Result struct {
	Settings settings.Values

	Courses   []courses.Course
	Excluded  int
	Malformed int

	Averages             []stats.AveragePoint
	WeightedAverage      stats.Average
	BasicAverages        []stats.SubsetPoint
	IntermediateAverages []stats.SubsetPoint

	Lecturers              []stats.Lecturer
	LecturersByCourseCount []stats.Lecturer
	LecturersByAverage     []stats.Lecturer
	LecturersByCredits     []stats.Lecturer

	// Departments are ordered by total credits.
	Departments []stats.Department
	Major       stats.Department
	HasMajor    bool
	Minors      []stats.Department

	Years  []stats.YearBucket
	Months []stats.Bucket
	Days   []stats.Bucket

	BasicProgress        stats.Progress
	IntermediateProgress stats.Progress

	Words []stats.WordCount

	Summary            stats.Summary
	GradeDistribution  []stats.DistributionEntry
	CreditDistribution []stats.DistributionEntry

	Warnings []Warning
}

// Compute runs the pipeline on rows with the given settings, names resolves
// the display names of requirement codes (it may be nil).
func Compute(rows []courses.Row, values settings.Values, names stats.NameResolver) (Result, error) {
	built, err := courses.Build(rows, values.Duplicates)
	if err != nil {
		return Result{}, err
	}
	list := built.Courses

	averages := stats.RunningAverages(list)
	lecturers := stats.Lecturers(list)
	departments := stats.Departments(list)
	months := stats.Months(list)

	result := Result{
		Settings:  values,
		Courses:   list,
		Excluded:  built.Excluded,
		Malformed: built.Malformed,

		Averages:             averages,
		WeightedAverage:      stats.WeightedAverage(list),
		BasicAverages:        stats.SubsetAverages(averages, values.BasicStudies),
		IntermediateAverages: stats.SubsetAverages(averages, values.IntermediateStudies),

		Lecturers:              lecturers,
		LecturersByCourseCount: stats.SortByCourseCount(lecturers),
		LecturersByAverage:     stats.SortByAverage(lecturers),
		LecturersByCredits:     stats.SortByCredits(lecturers),

		Departments: stats.SortDepartmentsByCredits(departments),
		Minors:      stats.MinorDepartments(departments, values.Minors),

		Years:  stats.AcademicYears(list),
		Months: months,
		Days:   stats.Days(list),

		BasicProgress:        stats.TrackProgress(list, values.BasicStudies, names),
		IntermediateProgress: stats.TrackProgress(list, values.IntermediateStudies, names),

		Words: stats.WordFrequencies(list),

		Summary:            stats.Summarize(list, averages, lecturers, months),
		GradeDistribution:  stats.GradeDistribution(list),
		CreditDistribution: stats.CreditDistribution(list),
	}
	result.Major, result.HasMajor = stats.MajorDepartment(departments, values.Major)
	result.Warnings = checkSettings(rows, values, departments)
	return result, nil
}
