package coursedb

import (
	"fmt"
	"strings"
)

// Curriculum selects which generation of requirement categories a prefill
// uses.
type Curriculum string

const (
	Curriculum2017    Curriculum = "2017"
	CurriculumPre2017 Curriculum = "pre-2017"
)

// DefaultProgram is the only program the embedded database describes.
const DefaultProgram = "tkt"

func ParseCurriculum(text string) (Curriculum, error) {
	switch c := Curriculum(strings.ToLower(strings.TrimSpace(text))); c {
	case Curriculum2017, CurriculumPre2017:
		return c, nil
	}
	return "", fmt.Errorf("unknown curriculum %q (want %q or %q)", text, Curriculum2017, CurriculumPre2017)
}

func (c Curriculum) categories() (basic, intermediate string) {
	if c == CurriculumPre2017 {
		return "perusopinnotPre2017", "aineopinnotPre2017"
	}
	return "perusopinnot", "aineopinnot"
}

// Requirements are the prefilled basic (perusopinnot) and intermediate
// (aineopinnot) course code lists of a program.
type Requirements struct {
	Basic        []string
	Intermediate []string
}

func (db Database) Requirements(program string, curriculum Curriculum) (Requirements, error) {
	basicCategory, intermediateCategory := curriculum.categories()
	basic, err := db.Keys(program, basicCategory)
	if err != nil {
		return Requirements{}, err
	}
	intermediate, err := db.Keys(program, intermediateCategory)
	if err != nil {
		return Requirements{}, err
	}
	return Requirements{Basic: basic, Intermediate: intermediate}, nil
}
