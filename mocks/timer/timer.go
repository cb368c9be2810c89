// Package timer builds Timer trigger requests for tests.
package timer

import (
	"fmt"
	"time"

	"github.com/sudzxd/azure-functions-test/bindings"
	"github.com/sudzxd/azure-functions-test/internal/mockutil"
	"github.com/sudzxd/azure-functions-test/observability"
)

const trigger = "timer"

var _ bindings.TimerRequest = (*Request)(nil)

// Request is a Timer trigger invocation.
type Request struct {
	pastDue        bool
	scheduleStatus map[string]time.Time
	schedule       map[string]any
}

// Option overrides a request default.
type Option func(*Request)

// WithPastDue marks the invocation as running later than scheduled.
func WithPastDue(pastDue bool) Option {
	return func(r *Request) {
		r.pastDue = pastDue
	}
}

// WithScheduleStatus replaces the schedule status with a copy of status. A
// nil map keeps the default.
func WithScheduleStatus(status map[string]time.Time) Option {
	return func(r *Request) {
		if status != nil {
			r.scheduleStatus = mockutil.CopyMap(status)
		}
	}
}

// WithSchedule sets the schedule configuration, e.g. {"AdjustForDST": true}.
// A nil map keeps the default.
func WithSchedule(schedule map[string]any) Option {
	return func(r *Request) {
		if schedule != nil {
			r.schedule = mockutil.CopyMap(schedule)
		}
	}
}

// New creates a timer request that is on schedule, with Last, Next and
// LastUpdated all set to now.
func New(opts ...Option) *Request {
	now := mockutil.Now()
	r := &Request{
		scheduleStatus: map[string]time.Time{
			bindings.ScheduleLast:        now,
			bindings.ScheduleNext:        now,
			bindings.ScheduleLastUpdated: now,
		},
		schedule: make(map[string]any),
	}
	for _, opt := range opts {
		opt(r)
	}

	mockutil.Created(trigger, observability.Fields{
		"past_due": r.pastDue,
	})
	return r
}

// PastDue reports whether the invocation is late.
func (r *Request) PastDue() bool { return r.pastDue }

// ScheduleStatus returns the Last, Next and LastUpdated occurrences.
func (r *Request) ScheduleStatus() map[string]time.Time { return r.scheduleStatus }

// Schedule returns the schedule configuration.
func (r *Request) Schedule() map[string]any { return r.schedule }

// String implements fmt.Stringer.
func (r *Request) String() string {
	return fmt.Sprintf("timer.Request{past_due=%t}", r.pastDue)
}
