// Package service runs one report trigger: it loads the settings, builds
// the canonical course list out of the transcript rows and derives every
// statistic the report shows.
package service

import (
	"context"
	"fmt"

	"weboodi-charts/internal/components/assert"
	"weboodi-charts/internal/components/telemetry"
	"weboodi-charts/internal/coursedb"
	"weboodi-charts/internal/courses"
	"weboodi-charts/internal/settings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("weboodi.service")

const (
	report_pipeline_excluded  = "pipeline.excluded"
	report_pipeline_malformed = "pipeline.malformed"
	report_pipeline_courses   = "pipeline.courses"
	report_pipeline_build     = "pipeline.build"
	report_settings_load      = "settings.load"
	report_settings_unknown   = "settings.unknown-code"
	report_prefill            = "prefill"
)

type serviceConfig struct {
	tel telemetry.API
}

type Option func(cfg *serviceConfig)

func WithTelemetryAPI(tel telemetry.API) Option {
	return func(cfg *serviceConfig) {
		cfg.tel = tel
	}
}

// Service ties the settings and the course database to the pipeline.
type Service struct {
	settings settings.Settings
	db       coursedb.Database
	tel      telemetry.API
}

func NewService(store settings.Store, db coursedb.Database, options ...Option) Service {
	assert.NotNil(store)

	cfg := serviceConfig{}
	for _, opt := range options {
		opt(&cfg)
	}
	var tel telemetry.API = telemetry.SlogAPI{}
	if cfg.tel != nil {
		tel = cfg.tel
	}

	return Service{
		settings: settings.New(store, tel),
		db:       db,
		tel:      telemetry.NewScopedAPI("service", tel),
	}
}

// Settings exposes the typed settings the service reads from.
func (s Service) Settings() settings.Settings {
	return s.settings
}

// Run computes the report data of the given transcript rows. The only
// error of the pipeline itself is a malformed date (courses.ErrDateParse),
// nothing is returned in that case.
func (s Service) Run(ctx context.Context, rows []courses.Row) (Result, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	values, err := s.settings.Load(ctx)
	if err != nil {
		s.tel.ReportBroken(report_settings_load, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	result, err := Compute(rows, values, s.db)
	if err != nil {
		s.tel.ReportBroken(report_pipeline_build, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	s.tel.ReportCount(report_pipeline_courses, int64(len(result.Courses)))
	s.tel.ReportCount(report_pipeline_excluded, int64(result.Excluded))
	s.tel.ReportCount(report_pipeline_malformed, int64(result.Malformed))
	if result.Malformed > 0 {
		s.tel.ReportDebug("dropped malformed rows", result.Malformed)
	}
	for _, w := range result.Warnings {
		s.tel.ReportWarning(report_settings_unknown, w.Setting, w.Code, w.Suggestion)
	}

	span.SetAttributes(
		attribute.Int("rows", len(rows)),
		attribute.Int("courses", len(result.Courses)),
	)
	return result, nil
}

// Prefill replaces the basic and intermediate requirement lists with the
// course codes of a curriculum from the course database.
func (s Service) Prefill(ctx context.Context, program string, curriculum coursedb.Curriculum) (coursedb.Requirements, error) {
	ctx, span := tracer.Start(ctx, "Prefill")
	defer span.End()
	span.SetAttributes(
		attribute.String("program", program),
		attribute.String("curriculum", string(curriculum)),
	)

	requirements, err := s.db.Requirements(program, curriculum)
	if err != nil {
		s.tel.ReportBroken(report_prefill, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return coursedb.Requirements{}, err
	}

	err = s.settings.SetList(ctx, settings.KeyBasicStudies, requirements.Basic)
	if err != nil {
		return coursedb.Requirements{}, fmt.Errorf("prefill %s: %w", settings.KeyBasicStudies, err)
	}
	err = s.settings.SetList(ctx, settings.KeyIntermediateStudies, requirements.Intermediate)
	if err != nil {
		return coursedb.Requirements{}, fmt.Errorf("prefill %s: %w", settings.KeyIntermediateStudies, err)
	}
	return requirements, nil
}
