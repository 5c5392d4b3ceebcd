package report

import (
	"weboodi-charts/internal/service"
	"weboodi-charts/internal/stats"
)

func creditsChart(days []stats.Bucket) Chart {
	labels := make([]string, len(days))
	credits := make([]float64, len(days))
	cumulative := make([]float64, len(days))
	for i, d := range days {
		labels[i] = d.Label
		credits[i] = d.Credits
		cumulative[i] = d.Cumulative
	}
	return Chart{
		ID:     ChartCredits,
		Type:   ChartBar,
		Labels: labels,
		Datasets: []Dataset{
			{Label: "Päivän opintopisteet", Data: values(credits)},
			{Label: "Suoritukset", Data: values(cumulative), Type: ChartLine, Style: styleRed},
		},
		ScaledTooltip: true,
	}.withCustomTicks()
}

func subsetValues(points []stats.SubsetPoint) []Value {
	out := make([]Value, len(points))
	for i, p := range points {
		out[i] = Value{Number: stats.Round2(p.Average), Valid: p.Valid}
	}
	return out
}

func averagesChart(result service.Result) Chart {
	labels := make([]string, len(result.Averages))
	averages := make([]float64, len(result.Averages))
	for i, p := range result.Averages {
		labels[i] = p.Course.DateText
		averages[i] = stats.Round2(p.Average)
	}

	datasets := []Dataset{
		{Label: "Kurssien keskiarvo", Data: values(averages), Style: styleRed},
	}
	if len(result.BasicAverages) > 0 {
		datasets = append(datasets, Dataset{
			Label: "Perusopintojen keskiarvo",
			Data:  subsetValues(result.BasicAverages),
			Style: styleBlue,
		})
	}
	if len(result.IntermediateAverages) > 0 {
		datasets = append(datasets, Dataset{
			Label: "Aineopintojen keskiarvo",
			Data:  subsetValues(result.IntermediateAverages),
			Style: styleGreen,
		})
	}
	return Chart{
		ID:       ChartAverages,
		Type:     ChartLine,
		Labels:   labels,
		Datasets: datasets,
	}
}

func monthsChart(months []stats.Bucket) Chart {
	labels := make([]string, len(months))
	credits := make([]float64, len(months))
	cumulative := make([]float64, len(months))
	for i, m := range months {
		labels[i] = m.Label
		credits[i] = m.Credits
		cumulative[i] = m.Cumulative
	}
	return Chart{
		ID:     ChartMonths,
		Type:   ChartBar,
		Labels: labels,
		Datasets: []Dataset{
			{Label: "Noppia per kuukausi", Data: values(credits), Style: styleBlue},
			{Label: "Kumulatiiviset nopat", Data: values(cumulative), Type: ChartLine, Style: styleGreen},
		},
	}
}

func yearsChart(years []stats.YearBucket) Chart {
	labels := make([]string, len(years))
	credits := make([]float64, len(years))
	for i, y := range years {
		labels[i] = y.Label
		credits[i] = y.Credits
	}
	return Chart{
		ID:     ChartYears,
		Type:   ChartLine,
		Labels: labels,
		Datasets: []Dataset{
			{Label: "Noppia per lukuvuosi", Data: values(credits), Style: styleBlue},
		},
	}
}

func averageValue(a stats.Average) Value {
	return Value{Number: stats.Round2(a.Value), Valid: a.Valid}
}

func departmentsChart(departments []stats.Department) Chart {
	labels := make([]string, len(departments))
	counts := make([]float64, len(departments))
	credits := make([]float64, len(departments))
	simple := make([]Value, len(departments))
	weighted := make([]Value, len(departments))
	for i, d := range departments {
		labels[i] = d.Code
		counts[i] = float64(d.CourseCount)
		credits[i] = d.TotalRawCredits
		simple[i] = averageValue(d.SimpleAverage)
		weighted[i] = averageValue(d.WeightedAverage)
	}
	return Chart{
		ID:     ChartDepartments,
		Type:   ChartBar,
		Labels: labels,
		Datasets: []Dataset{
			{Label: "Kursseja", Data: values(counts), Style: styleRed},
			{Label: "Nopat", Data: values(credits), Style: styleBlue},
			{Label: "Keskiarvo", Data: simple, Style: styleGreen},
			{Label: "Painotettu keskiarvo", Data: weighted, Style: styleGreen},
		},
	}
}

func distributionChart(id, prefix string, entries []stats.DistributionEntry) Chart {
	labels := make([]string, len(entries))
	counts := make([]float64, len(entries))
	for i, e := range entries {
		labels[i] = prefix + " " + e.String()
		counts[i] = float64(e.Count)
	}
	return Chart{
		ID:     id,
		Type:   ChartBar,
		Labels: labels,
		Datasets: []Dataset{
			{Label: "Suorituksia", Data: values(counts), Style: styleBlue},
		},
	}
}

func progressChart(id string, p stats.Progress) Chart {
	labels := make([]string, len(p.Entries))
	weights := make([]float64, len(p.Entries))
	colors := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		labels[i] = e.Name
		weights[i] = p.SliceWeight()
		colors[i] = colorNotDone
		if e.Done {
			colors[i] = colorDone
		}
	}
	return Chart{
		ID:     id,
		Type:   ChartPie,
		Labels: labels,
		Datasets: []Dataset{
			{Data: values(weights), Colors: colors},
		},
	}
}
