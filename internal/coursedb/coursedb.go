// Package coursedb holds the course reference database: a tree of study
// programs, requirement categories and courses, used to resolve course
// codes into display names and to prefill requirement lists.
package coursedb

import (
	_ "embed"
	"errors"
	"fmt"

	"weboodi-charts/lib/textutil"

	"github.com/titanous/json5"
)

//go:embed courses.json5
var embedded []byte

var ErrUnknownCategory = errors.New("unknown course category")

type Entry struct {
	Name string   `json:"name"`
	Keys []string `json:"keys"`
}

type Category struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

type Program struct {
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

type Database struct {
	Programs []Program `json:"programs"`
}

// Parse decodes a JSON5 course database.
func Parse(data []byte) (Database, error) {
	var db Database
	err := json5.Unmarshal(data, &db)
	if err != nil {
		return Database{}, fmt.Errorf("parse course database: %w", err)
	}
	for _, p := range db.Programs {
		if p.Name == "" {
			return Database{}, fmt.Errorf("parse course database: program without a name")
		}
		for _, c := range p.Categories {
			for _, e := range c.Entries {
				if e.Name == "" || len(e.Keys) == 0 {
					return Database{}, fmt.Errorf("parse course database: %s/%s: entry needs a name and keys", p.Name, c.Name)
				}
			}
		}
	}
	return db, nil
}

// Load returns the embedded course database.
func Load() (Database, error) {
	return Parse(embedded)
}

// Lookup returns the name of the first course, searching depth first in
// file order, that lists code (case insensitive) among its keys.
func (db Database) Lookup(code string) (string, bool) {
	for _, p := range db.Programs {
		for _, c := range p.Categories {
			for _, e := range c.Entries {
				for _, key := range e.Keys {
					if textutil.EqualFold(key, code) {
						return e.Name, true
					}
				}
			}
		}
	}
	return "", false
}

func (db Database) category(program, category string) (Category, error) {
	for _, p := range db.Programs {
		if p.Name != program {
			continue
		}
		for _, c := range p.Categories {
			if c.Name == category {
				return c, nil
			}
		}
	}
	return Category{}, fmt.Errorf("%w: %s/%s", ErrUnknownCategory, program, category)
}

// Keys flattens every key of every course in a category, in file order.
func (db Database) Keys(program, category string) ([]string, error) {
	c, err := db.category(program, category)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, e := range c.Entries {
		keys = append(keys, e.Keys...)
	}
	return keys, nil
}
