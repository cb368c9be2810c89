// Package queue builds Storage Queue trigger messages for tests.
package queue

import (
	"fmt"
	"time"

	"github.com/sudzxd/azure-functions-test/bindings"
	"github.com/sudzxd/azure-functions-test/internal/mockutil"
	"github.com/sudzxd/azure-functions-test/internal/serialization"
	"github.com/sudzxd/azure-functions-test/mocks"
	"github.com/sudzxd/azure-functions-test/observability"
)

const trigger = "queue"

var _ bindings.QueueMessage = (*Message)(nil)

// Message is a queue trigger message.
type Message struct {
	id              string
	body            []byte
	dequeueCount    int
	expirationTime  *time.Time
	insertionTime   *time.Time
	timeNextVisible *time.Time
	popReceipt      string
}

// Option overrides a message default.
type Option func(*Message)

// WithID sets the message id.
func WithID(id string) Option {
	return func(m *Message) {
		m.id = id
	}
}

// WithDequeueCount sets how many times the message has been dequeued.
// Zero is kept as given.
func WithDequeueCount(n int) Option {
	return func(m *Message) {
		m.dequeueCount = n
	}
}

// WithExpirationTime sets the expiration time. A zero time is ignored.
func WithExpirationTime(t time.Time) Option {
	return func(m *Message) {
		if !t.IsZero() {
			m.expirationTime = mockutil.TimePtr(t)
		}
	}
}

// WithInsertionTime sets the insertion time. A zero time keeps the
// construction-time default.
func WithInsertionTime(t time.Time) Option {
	return func(m *Message) {
		if !t.IsZero() {
			m.insertionTime = mockutil.TimePtr(t)
		}
	}
}

// WithTimeNextVisible sets when the message becomes visible again. A zero
// time is ignored.
func WithTimeNextVisible(t time.Time) Option {
	return func(m *Message) {
		if !t.IsZero() {
			m.timeNextVisible = mockutil.TimePtr(t)
		}
	}
}

// WithPopReceipt sets the pop receipt.
func WithPopReceipt(receipt string) Option {
	return func(m *Message) {
		m.popReceipt = receipt
	}
}

// New creates a queue message. Maps and slices are stored as JSON.
func New(body any, opts ...Option) (*Message, error) {
	data, err := serialization.ToBytes(body, true)
	if err != nil {
		return nil, fmt.Errorf("queue message body: %w", err)
	}

	m := &Message{
		id:            mocks.DefaultMessageID,
		body:          data,
		dequeueCount:  mocks.DequeueCountDefault,
		insertionTime: mockutil.TimePtr(mockutil.Now()),
		popReceipt:    mocks.DefaultPopReceipt,
	}
	for _, opt := range opts {
		opt(m)
	}

	mockutil.Created(trigger, observability.Fields{
		"id":            m.id,
		"dequeue_count": m.dequeueCount,
	})
	return m, nil
}

// ID returns the message id.
func (m *Message) ID() string { return m.id }

// DequeueCount returns the number of times the message was dequeued.
func (m *Message) DequeueCount() int { return m.dequeueCount }

// ExpirationTime returns the expiration time or nil.
func (m *Message) ExpirationTime() *time.Time { return m.expirationTime }

// InsertionTime returns when the message was added to the queue.
func (m *Message) InsertionTime() *time.Time { return m.insertionTime }

// TimeNextVisible returns when the message becomes visible again or nil.
func (m *Message) TimeNextVisible() *time.Time { return m.timeNextVisible }

// PopReceipt returns the pop receipt.
func (m *Message) PopReceipt() string { return m.popReceipt }

// GetBody returns the message body.
func (m *Message) GetBody() []byte { return m.body }

// GetJSON decodes the body as JSON.
func (m *Message) GetJSON() (any, error) {
	return mockutil.DecodeJSON(trigger, "queue message", m.body)
}

// String implements fmt.Stringer.
func (m *Message) String() string {
	return fmt.Sprintf("queue.Message{id=%q dequeue_count=%d}", m.id, m.dequeueCount)
}
