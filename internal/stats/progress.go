package stats

import (
	"strings"

	"weboodi-charts/internal/courses"
)

// NameResolver resolves a course code into a display name.
type NameResolver interface {
	Lookup(code string) (name string, ok bool)
}

// ProgressEntry is one requirement of a requirement list.
type ProgressEntry struct {
	Code string
	Name string
	Done bool
}

// Progress is the state of a requirement list against the transcript.
type Progress struct {
	Entries   []ProgressEntry
	DoneCount int
}

// Total is the amount of distinct requirements.
func (p Progress) Total() int {
	return len(p.Entries)
}

// Complete reports whether every requirement is done.
func (p Progress) Complete() bool {
	return len(p.Entries) > 0 && p.DoneCount == len(p.Entries)
}

// SliceWeight is the share (in percent) of one requirement in the
// progress pie.
func (p Progress) SliceWeight() float64 {
	if len(p.Entries) == 0 {
		return 0
	}
	return 100 / float64(len(p.Entries))
}

func stripOpenUniversityPrefix(name string) string {
	name = strings.Replace(name, "Avoin yo: ", "", 1)
	return strings.Replace(name, "Open uni: ", "", 1)
}

// TrackProgress splits the requirement codes into done (the code appears in
// the canonical list) and not done, resolves a display name for each and
// removes entries that resolve to an already listed name. Done entries are
// listed first so a done entry wins over a not done one of the same name.
func TrackProgress(list []courses.Course, codes []string, names NameResolver) Progress {
	completed := map[string]struct{}{}
	for _, c := range list {
		completed[c.Code] = struct{}{}
	}

	var done, notDone []string
	for _, code := range codes {
		if _, ok := completed[code]; ok {
			done = append(done, code)
			continue
		}
		notDone = append(notDone, code)
	}

	resolve := func(code string) string {
		if names != nil {
			if name, ok := names.Lookup(code); ok && name != "" {
				return name
			}
		}
		return code
	}

	progress := Progress{}
	seen := map[string]struct{}{}
	add := func(code string, isDone bool) {
		name := resolve(code)
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		progress.Entries = append(progress.Entries, ProgressEntry{
			Code: code,
			Name: stripOpenUniversityPrefix(name),
			Done: isDone,
		})
		if isDone {
			progress.DoneCount++
		}
	}
	for _, code := range done {
		add(code, true)
	}
	for _, code := range notDone {
		add(code, false)
	}
	return progress
}
