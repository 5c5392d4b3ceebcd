package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	folder = cases.Fold()
	upper  = cases.Upper(language.Finnish)
)

// Clean turns the text content of a transcript cell into a plain string:
// `&nbsp;` entities (escaped or already decoded) become spaces, the text is
// NFC normalized and surrounding whitespace is removed.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	text = strings.ReplaceAll(text, " ", " ")
	text = norm.NFC.String(text)
	return strings.TrimSpace(text)
}

// SplitList splits a comma separated user input like "A582103, A581325"
// into its cleaned, non-empty parts.
func SplitList(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		part = Clean(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// NormalizeKey case folds a course code or name so that legacy spellings
// like "a58131" and "A58131" compare equal.
func NormalizeKey(key string) string {
	return folder.String(Clean(key))
}

// EqualFold reports whether two keys are equal after NormalizeKey.
func EqualFold(a, b string) bool {
	return NormalizeKey(a) == NormalizeKey(b)
}

// Upper uppercases text using Finnish casing rules.
func Upper(text string) string {
	return upper.String(text)
}

// UpperAll uppercases every element of list.
func UpperAll(list []string) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = Upper(s)
	}
	return out
}
