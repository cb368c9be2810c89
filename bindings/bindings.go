// Package bindings defines the shapes Azure Functions trigger inputs and output
// bindings present to handler code.
//
// Handlers are written against these interfaces. In production an adapter wraps
// the runtime's objects; in tests the types in package mocks satisfy them, so the
// same handler runs unmodified against either.
package bindings

import (
	"io"
	"time"
)

// QueueMessage is a Storage Queue trigger message.
type QueueMessage interface {
	ID() string
	DequeueCount() int
	ExpirationTime() *time.Time
	InsertionTime() *time.Time
	TimeNextVisible() *time.Time
	PopReceipt() string

	// GetBody returns the raw message bytes.
	GetBody() []byte
	// GetJSON decodes the body as UTF-8 JSON.
	GetJSON() (any, error)
}

// HTTPRequest is an HTTP trigger request.
type HTTPRequest interface {
	Method() string
	URL() string
	Headers() map[string]string
	Params() map[string]string
	RouteParams() map[string]string

	// Form returns the URL-encoded form fields of the body. It is empty unless
	// the request carries a form Content-Type.
	Form() map[string]string

	GetBody() []byte
	GetJSON() (any, error)
}

// InputStream is a Blob trigger input. Reads share a single cursor.
type InputStream interface {
	io.Reader

	Name() string
	URI() string
	Length() int

	// ReadN returns up to n bytes from the cursor. A negative n reads to the end.
	ReadN(n int) []byte
	// ReadAll returns everything from the cursor to the end.
	ReadAll() []byte
}

// EventGridEvent is an Event Grid trigger event.
type EventGridEvent interface {
	ID() string
	Topic() string
	Subject() string
	EventType() string
	EventTime() *time.Time
	DataVersion() string

	// GetJSON returns the event data payload.
	GetJSON() map[string]any
}

// ServiceBusMessage is a Service Bus trigger message.
type ServiceBusMessage interface {
	MessageID() string
	ContentType() *string
	CorrelationID() *string
	SessionID() *string
	PartitionKey() *string
	ReplyTo() *string
	ReplyToSessionID() *string
	To() *string
	Label() *string
	Subject() *string

	DeliveryCount() int
	EnqueuedTimeUTC() *time.Time
	EnqueuedSequenceNumber() *int64
	SequenceNumber() *int64
	ExpiresAtUTC() *time.Time
	ExpirationTime() *time.Time
	ScheduledEnqueueTime() *time.Time
	ScheduledEnqueueTimeUTC() *time.Time
	TimeToLive() *time.Duration
	LockToken() *string
	LockedUntil() *time.Time

	DeadLetterSource() *string
	DeadLetterReason() *string
	DeadLetterErrorDescription() *string

	TransactionPartitionKey() *string
	State() *int
	ApplicationProperties() map[string]any
	UserProperties() map[string]any
	Metadata() map[string]any

	GetBody() []byte
	GetJSON() (any, error)
}

// TimerRequest is a Timer trigger invocation.
type TimerRequest interface {
	PastDue() bool
	// ScheduleStatus is keyed by ScheduleLast, ScheduleNext and ScheduleLastUpdated.
	ScheduleStatus() map[string]time.Time
	Schedule() map[string]any
}

// Out is an output binding. A handler calls Set; the host (or a test) reads
// the value back with Get.
type Out[T any] interface {
	Set(val T)
	Get() (T, error)
}
