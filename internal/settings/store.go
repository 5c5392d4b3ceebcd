// Package settings persists the user's configuration of the report: the
// excluded course codes, the requirement lists and the major and minor
// subjects. Values are JSON encoded strings behind a small key-value
// interface so that the backing storage can be swapped out in tests.
package settings

import (
	"context"
	"sync"
)

const (
	KeyDuplicates          = "duplikaattiKurssit"
	KeyBasicStudies        = "perusOpinnot"
	KeyIntermediateStudies = "aineOpinnot"
	KeyMajor               = "pääaine"
	KeyMinors              = "sivuaineet"
)

// Keys lists every settings key in display order.
var Keys = []string{
	KeyDuplicates,
	KeyBasicStudies,
	KeyIntermediateStudies,
	KeyMajor,
	KeyMinors,
}

// Store is a string key-value store.
type Store interface {
	// Get returns the stored value, found is false when the key was never
	// set.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Memory is a Store that lives only as long as the process.
type Memory struct {
	mutex  sync.Mutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.values[key] = value
	return nil
}
