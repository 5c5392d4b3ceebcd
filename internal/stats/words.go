package stats

import (
	"strings"
	"unicode/utf8"

	"weboodi-charts/internal/courses"
)

// words of two characters or less ("1,", "ja", "II") are left out of the
// word cloud
const maxShortWordLength = 2

const (
	MinFontSize = 7
	MaxFontSize = 28
	// smallest words are drawn at 1px, practically hiding them
	hiddenFontSize = 1
)

// WordCount is the amount of course names a word appears in.
type WordCount struct {
	Word  string
	Count int
}

func removeParentheses(text string) string {
	text = strings.ReplaceAll(text, "(", "")
	text = strings.ReplaceAll(text, ")", "")
	return strings.TrimSpace(text)
}

// Tokenize splits a course name into its word cloud words.
func Tokenize(name string) []string {
	name = removeParentheses(courses.StripOpenUniversity(name))

	var out []string
	for _, token := range strings.Split(name, " ") {
		if utf8.RuneCountInString(token) <= maxShortWordLength {
			continue
		}
		token = strings.TrimSpace(strings.Replace(token, ",", "", 1))
		out = append(out, token)
	}
	return out
}

// WordFrequencies counts the words of every course name, in order of first
// appearance.
func WordFrequencies(list []courses.Course) []WordCount {
	index := map[string]int{}
	var out []WordCount
	for _, c := range list {
		for _, word := range Tokenize(c.Name) {
			i, ok := index[word]
			if !ok {
				i = len(out)
				index[word] = i
				out = append(out, WordCount{Word: word})
			}
			out[i].Count++
		}
	}
	return out
}

// CountRange returns the smallest and largest count of words.
func CountRange(words []WordCount) (lowest, highest int) {
	for i, w := range words {
		if i == 0 || w.Count < lowest {
			lowest = w.Count
		}
		if i == 0 || w.Count > highest {
			highest = w.Count
		}
	}
	return lowest, highest
}

// FontSize scales count linearly between the font sizes of the cloud,
// counts at the minimum get the hidden size.
func FontSize(count, lowest, highest int) float64 {
	if count <= lowest {
		return hiddenFontSize
	}
	return MaxFontSize*float64(count-lowest)/float64(highest-lowest) + MinFontSize
}
