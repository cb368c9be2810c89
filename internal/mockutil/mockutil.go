// Package mockutil holds the logging and metrics hooks shared by the trigger
// mock packages.
package mockutil

import (
	"errors"
	"maps"
	"time"

	"github.com/sudzxd/azure-functions-test/internal/serialization"
	"github.com/sudzxd/azure-functions-test/observability"
)

const component = "mocks"

// Created logs and counts a constructed mock.
func Created(trigger string, fields observability.Fields) {
	observability.GetMetrics(component).RecordMockCreated(trigger)
	observability.GetLogger(component).Debug("created "+trigger+" mock", fields)
}

// DecodeJSON decodes a mock body, counting and logging failures.
// label names the trigger in error messages, trigger is the metric label.
func DecodeJSON(trigger, label string, body []byte) (any, error) {
	v, err := serialization.DecodeJSON(label, body)
	if err != nil {
		reason := "json"
		if errors.Is(err, serialization.ErrInvalidUTF8) {
			reason = "utf8"
		}
		observability.GetMetrics(component).RecordDecodeError(trigger, reason)
		observability.GetLogger(component).Debug("JSON accessor failed", observability.Fields{
			"trigger": trigger,
			"reason":  reason,
		})
		return nil, err
	}
	return v, nil
}

// Now returns the current time in UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// TimePtr returns a pointer to a copy of t.
func TimePtr(t time.Time) *time.Time {
	return &t
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}

// CopyMap returns a shallow copy of m, never nil.
func CopyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	maps.Copy(out, m)
	return out
}
