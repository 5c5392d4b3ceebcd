package telemetry

import (
	"fmt"
)

// API is an abstraction over logging/metrics so that components can be
// tested for the reports they emit.
//
// note: fault injection point
type API interface {
	// ReportBroken reports a component that failed in a way that stops the
	// current run (ex. an unparseable transcript date).
	//
	// The id names the component, not the line that broke. It is all
	// lowercase, uses dashes for methods of a component and is usually
	// namespaced through ScopedAPI, ex. `transcript: scrape` or
	// `courses: parse-row`.
	ReportBroken(id string, params ...any)

	// ReportWarning reports something that does not stop the run but that a
	// user may want to look at, like a configured course code that never
	// shows up in the transcript.
	ReportWarning(id string, params ...any)

	// ReportDebug reports debug information that is hidden unless debug
	// logging is turned on.
	ReportDebug(msg string, params ...any)

	// ReportCount reports the count of something at the current point of
	// the run (ex. how many rows were dropped while parsing).
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id with a namespace, like a "sub" logger.
type ScopedAPI struct {
	namespace string
	inner     API
}

// NewScopedAPI creates a ScopedAPI out of a given namespace and another api.
func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(fmt.Sprintf("%s: %s", s.namespace, msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(fmt.Sprintf("%s: %s", s.namespace, id), count)
}
