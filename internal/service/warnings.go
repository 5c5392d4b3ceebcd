package service

import (
	"weboodi-charts/internal/courses"
	"weboodi-charts/internal/settings"
	"weboodi-charts/internal/stats"
	"weboodi-charts/lib/textutil"

	"github.com/antzucaro/matchr"
)

// similarity under which a code is too different to be suggested
const minSuggestionSimilarity = 0.8

// Warning is a configured code that the transcript never mentions.
type Warning struct {
	Setting string
	Code    string
	// Suggestion is the most similar code that does exist, empty when
	// nothing is close enough.
	Suggestion string
}

func suggest(code string, candidates []string) string {
	var best string
	var bestSimilarity float64
	for _, candidate := range candidates {
		similarity := matchr.JaroWinkler(textutil.NormalizeKey(code), textutil.NormalizeKey(candidate), false)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = candidate
		}
	}
	if bestSimilarity < minSuggestionSimilarity {
		return ""
	}
	return best
}

// unknown returns a warning for every configured code whose key is not the
// key of a known code. key must match how the pipeline itself compares the
// setting.
func unknown(setting string, configured, known []string, key func(string) string) []Warning {
	present := make(map[string]struct{}, len(known))
	for _, k := range known {
		present[key(k)] = struct{}{}
	}
	var out []Warning
	for _, code := range configured {
		if _, ok := present[key(code)]; ok {
			continue
		}
		out = append(out, Warning{
			Setting:    setting,
			Code:       code,
			Suggestion: suggest(code, known),
		})
	}
	return out
}

// checkSettings finds excluded course codes that match no transcript row
// and major or minor subjects that match no department, both usually
// typos. Requirement lists are not checked since courses that are not done
// yet are missing on purpose.
func checkSettings(rows []courses.Row, values settings.Values, departments []stats.Department) []Warning {
	var codes []string
	seen := map[string]struct{}{}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		code := textutil.Clean(row[0])
		if _, ok := seen[code]; ok || code == "" {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	departmentCodes := make([]string, len(departments))
	for i, d := range departments {
		departmentCodes[i] = d.Code
	}

	var warnings []Warning
	warnings = append(warnings, unknown(settings.KeyDuplicates, values.Duplicates, codes, textutil.Clean)...)
	if values.Major != "" {
		warnings = append(warnings, unknown(settings.KeyMajor, []string{values.Major}, departmentCodes, textutil.Upper)...)
	}
	warnings = append(warnings, unknown(settings.KeyMinors, values.Minors, departmentCodes, textutil.Upper)...)
	return warnings
}
