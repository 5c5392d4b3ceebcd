package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"weboodi-charts/internal/components/assert"
	"weboodi-charts/internal/components/telemetry"
	"weboodi-charts/lib/textutil"
)

const (
	report_settings_malformed = "malformed"
)

// Values is the decoded configuration of one report run.
type Values struct {
	// Duplicates are course codes left out of every statistic.
	Duplicates []string
	// BasicStudies (perusopinnot) and IntermediateStudies (aineopinnot) are
	// the requirement lists whose progress is tracked.
	BasicStudies        []string
	IntermediateStudies []string
	// Major is the department code of the major subject, empty when unset.
	Major  string
	Minors []string
}

// Settings reads and writes typed values through a Store. A value that is
// missing or fails to decode reads as empty.
type Settings struct {
	store Store
	tel   telemetry.API
}

func New(store Store, tel telemetry.API) Settings {
	assert.NotNil(store)
	assert.NotNil(tel)
	return Settings{
		store: store,
		tel:   telemetry.NewScopedAPI("settings", tel),
	}
}

func (s Settings) list(ctx context.Context, key string) ([]string, error) {
	raw, found, err := s.store.Get(ctx, key)
	if err != nil || !found {
		return nil, err
	}
	var out []string
	err = json.Unmarshal([]byte(raw), &out)
	if err != nil {
		s.tel.ReportWarning(report_settings_malformed, key, err)
		return nil, nil
	}
	return slices.DeleteFunc(out, func(v string) bool { return v == "" }), nil
}

func (s Settings) major(ctx context.Context) (string, error) {
	raw, found, err := s.store.Get(ctx, KeyMajor)
	if err != nil || !found {
		return "", err
	}
	// an unset major is stored as the JSON null
	var out *string
	err = json.Unmarshal([]byte(raw), &out)
	if err != nil {
		s.tel.ReportWarning(report_settings_malformed, KeyMajor, err)
		return "", nil
	}
	if out == nil {
		return "", nil
	}
	return *out, nil
}

// Load reads every setting.
func (s Settings) Load(ctx context.Context) (Values, error) {
	var values Values
	var err error
	lists := []struct {
		key string
		out *[]string
	}{
		{KeyDuplicates, &values.Duplicates},
		{KeyBasicStudies, &values.BasicStudies},
		{KeyIntermediateStudies, &values.IntermediateStudies},
		{KeyMinors, &values.Minors},
	}
	for _, l := range lists {
		*l.out, err = s.list(ctx, l.key)
		if err != nil {
			return Values{}, err
		}
	}
	values.Major, err = s.major(ctx)
	if err != nil {
		return Values{}, err
	}
	return values, nil
}

// SetList stores a list setting.
func (s Settings) SetList(ctx context.Context, key string, values []string) error {
	if key == KeyMajor {
		return fmt.Errorf("%s is not a list setting", key)
	}
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, key, string(encoded))
}

// SetMajor stores the major subject, an empty major unsets it.
func (s Settings) SetMajor(ctx context.Context, major string) error {
	var value *string
	if major != "" {
		value = &major
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, KeyMajor, string(encoded))
}

// SetText stores user input the way the settings form takes it: list
// settings are comma separated, the major is a single trimmed code.
func (s Settings) SetText(ctx context.Context, key, input string) error {
	switch key {
	case KeyMajor:
		return s.SetMajor(ctx, textutil.Clean(input))
	case KeyDuplicates, KeyBasicStudies, KeyIntermediateStudies, KeyMinors:
		return s.SetList(ctx, key, textutil.SplitList(input))
	}
	return fmt.Errorf("unknown setting %q", key)
}
