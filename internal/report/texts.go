package report

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"weboodi-charts/internal/stats"
)

const allDone = "All done, nice!"

// number formats a count or credit total the way it is printed on the
// transcript, without trailing zeros.
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func courseCountText(s stats.Summary) string {
	return fmt.Sprintf("Olet suorittanut huimat %d erilaista kurssia! Good for you!", s.CourseCount)
}

func creditsPerCourseText(s stats.Summary) string {
	return fmt.Sprintf("Keskiarvolta %s noppaa per kurssi.", stats.Fixed2(s.CreditsPerCourse()))
}

func lecturerCountText(s stats.Summary) string {
	return fmt.Sprintf(
		"Olet käynyt %d eri luennoitsijan kursseilla, %s kurssia per luennoitsija, %s op per luennoitsija.",
		s.LecturerCount,
		stats.Fixed2(s.CoursesPerLecturer()),
		stats.Fixed2(s.CreditsPerLecturer()),
	)
}

func openUniversityText(s stats.Summary) string {
	return fmt.Sprintf(
		"Olet suorittanut %d avoimen kurssia, joka on %s%% opinnoistasi. Yhteensä %s op.",
		s.OpenUniCount, stats.Fixed2(s.OpenUniShare()), number(s.OpenUniCredits),
	)
}

func passCountText(s stats.Summary) string {
	return fmt.Sprintf(
		"Olet saanut %d hyv merkintää, joka on %s%% opinnoistasi. Yhteensä %s op.",
		s.PassCount, stats.Fixed2(s.PassShare()), number(s.PassCredits),
	)
}

func studyYearsText(s stats.Summary) string {
	return fmt.Sprintf(
		`Opintopistemäärän mukaan arvioin sinun suorittaneen %s vuotta opintojasi. Laskukaava = <span title="Opintopistemäärä / vuoden tavoiteopintopistemäärä">%s / 60</span>.`,
		stats.Fixed2(s.StudyYears()), number(s.Credits),
	)
}

// busiestMonthText inflects the month into the inessive ("syyskuussa").
func busiestMonthText(month stats.Bucket) string {
	name, year, _ := strings.Cut(month.Label, " ")
	return fmt.Sprintf(
		"Olit tulessa %sssa %s! Suoritit silloin %s noppaa! Whoah!",
		name, year, number(month.RawCredits),
	)
}

func averageText(s stats.Summary) string {
	return fmt.Sprintf(
		"Opintojen keskiarvo: %s. Painotettu keskiarvo: %s.",
		s.Average, s.WeightedAverage,
	)
}

func departmentText(prefix string, d stats.Department) string {
	return fmt.Sprintf(
		"%s %s keskiarvo on %s ja painotettu keskiarvo on %s",
		prefix, html.EscapeString(d.Code), d.SimpleAverage, d.WeightedAverage,
	)
}

func majorText(d stats.Department) string {
	return departmentText("Pääaineesi", d)
}

func minorsText(list []stats.Department) string {
	lines := make([]string, len(list))
	for i, d := range list {
		lines[i] = departmentText("Sivuaineesi", d)
	}
	return strings.Join(lines, "<br>")
}

func progressText(p stats.Progress) string {
	text := fmt.Sprintf("%d/%d", p.DoneCount, p.Total())
	if p.Complete() {
		text += " " + allDone
	}
	return text
}
