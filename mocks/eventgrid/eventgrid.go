// Package eventgrid builds Event Grid trigger events for tests.
package eventgrid

import (
	"fmt"
	"time"

	"github.com/sudzxd/azure-functions-test/bindings"
	"github.com/sudzxd/azure-functions-test/internal/mockutil"
	"github.com/sudzxd/azure-functions-test/mocks"
	"github.com/sudzxd/azure-functions-test/observability"
)

const trigger = "eventgrid"

var _ bindings.EventGridEvent = (*Event)(nil)

// Event is an Event Grid trigger event.
type Event struct {
	id          string
	topic       string
	subject     string
	eventType   string
	eventTime   *time.Time
	dataVersion string
	data        map[string]any
}

// Option overrides an event default.
type Option func(*Event)

// WithID sets the event id.
func WithID(id string) Option {
	return func(e *Event) {
		e.id = id
	}
}

// WithTopic sets the full resource path of the event source.
func WithTopic(topic string) Option {
	return func(e *Event) {
		e.topic = topic
	}
}

// WithSubject sets the publisher-defined subject path.
func WithSubject(subject string) Option {
	return func(e *Event) {
		e.subject = subject
	}
}

// WithEventType sets the registered event type.
func WithEventType(eventType string) Option {
	return func(e *Event) {
		e.eventType = eventType
	}
}

// WithEventTime sets when the event was generated. A zero time is ignored.
func WithEventTime(t time.Time) Option {
	return func(e *Event) {
		if !t.IsZero() {
			e.eventTime = mockutil.TimePtr(t)
		}
	}
}

// WithDataVersion sets the schema version of the data payload.
func WithDataVersion(version string) Option {
	return func(e *Event) {
		e.dataVersion = version
	}
}

// New creates an event carrying a copy of data. A nil map gives an empty
// payload.
func New(data map[string]any, opts ...Option) *Event {
	e := &Event{
		id:          mocks.DefaultEventID,
		topic:       mocks.DefaultEventTopic,
		subject:     mocks.DefaultEventSubject,
		eventType:   mocks.DefaultEventType,
		eventTime:   mockutil.TimePtr(mockutil.Now()),
		dataVersion: mocks.DefaultEventDataVersion,
		data:        mockutil.CopyMap(data),
	}
	for _, opt := range opts {
		opt(e)
	}

	mockutil.Created(trigger, observability.Fields{
		"id":         e.id,
		"event_type": e.eventType,
	})
	return e
}

// ID returns the event id.
func (e *Event) ID() string { return e.id }

// Topic returns the resource path of the event source.
func (e *Event) Topic() string { return e.topic }

// Subject returns the subject path.
func (e *Event) Subject() string { return e.subject }

// EventType returns the event type.
func (e *Event) EventType() string { return e.eventType }

// EventTime returns when the event was generated.
func (e *Event) EventTime() *time.Time { return e.eventTime }

// DataVersion returns the schema version of the data payload.
func (e *Event) DataVersion() string { return e.dataVersion }

// GetJSON returns the data payload. It is already structured, so nothing is
// decoded.
func (e *Event) GetJSON() map[string]any { return e.data }

// String implements fmt.Stringer.
func (e *Event) String() string {
	return fmt.Sprintf("eventgrid.Event{id=%q event_type=%q}", e.id, e.eventType)
}
