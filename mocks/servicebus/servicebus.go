// Package servicebus builds Service Bus trigger messages for tests.
//
// Optional broker properties are nil unless an option sets them, mirroring
// the runtime where unset properties are absent.
package servicebus

import (
	"fmt"
	"time"

	"github.com/sudzxd/azure-functions-test/bindings"
	"github.com/sudzxd/azure-functions-test/internal/mockutil"
	"github.com/sudzxd/azure-functions-test/internal/serialization"
	"github.com/sudzxd/azure-functions-test/mocks"
	"github.com/sudzxd/azure-functions-test/observability"
)

const trigger = "servicebus"

var _ bindings.ServiceBusMessage = (*Message)(nil)

// Message is a Service Bus trigger message.
type Message struct {
	messageID        string
	body             []byte
	contentType      *string
	correlationID    *string
	sessionID        *string
	partitionKey     *string
	replyTo          *string
	replyToSessionID *string
	to               *string
	label            *string
	subject          *string

	deliveryCount           int
	enqueuedTimeUTC         *time.Time
	enqueuedSequenceNumber  *int64
	sequenceNumber          *int64
	expiresAtUTC            *time.Time
	expirationTime          *time.Time
	scheduledEnqueueTime    *time.Time
	scheduledEnqueueTimeUTC *time.Time
	timeToLive              *time.Duration
	lockToken               *string
	lockedUntil             *time.Time

	deadLetterSource           *string
	deadLetterReason           *string
	deadLetterErrorDescription *string

	transactionPartitionKey *string
	state                   *int
	applicationProperties   map[string]any
	userProperties          map[string]any
	metadata                map[string]any
}

// New creates a Service Bus message. Map bodies are stored as JSON; slice
// bodies are rejected.
func New(body any, opts ...Option) (*Message, error) {
	data, err := serialization.ToBytes(body, false)
	if err != nil {
		return nil, fmt.Errorf("Service Bus message body: %w", err)
	}

	m := &Message{
		messageID:             mocks.DefaultMessageID,
		body:                  data,
		deliveryCount:         mocks.DeliveryCountDefault,
		enqueuedTimeUTC:       mockutil.TimePtr(mockutil.Now()),
		applicationProperties: make(map[string]any),
		userProperties:        make(map[string]any),
	}
	for _, opt := range opts {
		opt(m)
	}

	fields := observability.Fields{
		"message_id":     m.messageID,
		"delivery_count": m.deliveryCount,
	}
	if m.sessionID != nil {
		fields["session_id"] = *m.sessionID
	}
	mockutil.Created(trigger, fields)
	return m, nil
}

// MessageID returns the message id.
func (m *Message) MessageID() string { return m.messageID }

// ContentType returns the content type, or nil when unset.
func (m *Message) ContentType() *string { return m.contentType }

// CorrelationID returns the correlation id, or nil when unset.
func (m *Message) CorrelationID() *string { return m.correlationID }

// SessionID returns the session id, or nil for a sessionless message.
func (m *Message) SessionID() *string { return m.sessionID }

// PartitionKey returns the partition key, or nil when unset.
func (m *Message) PartitionKey() *string { return m.partitionKey }

// ReplyTo returns the reply address, or nil when unset.
func (m *Message) ReplyTo() *string { return m.replyTo }

// ReplyToSessionID returns the session to reply to, or nil when unset.
func (m *Message) ReplyToSessionID() *string { return m.replyToSessionID }

// To returns the destination address, or nil when unset.
func (m *Message) To() *string { return m.to }

// Label returns the legacy label, or nil when unset.
func (m *Message) Label() *string { return m.label }

// Subject returns the subject, or nil when unset.
func (m *Message) Subject() *string { return m.subject }

// DeliveryCount returns how many times the message was delivered.
func (m *Message) DeliveryCount() int { return m.deliveryCount }

// EnqueuedTimeUTC returns when the message was enqueued.
func (m *Message) EnqueuedTimeUTC() *time.Time { return m.enqueuedTimeUTC }

// EnqueuedSequenceNumber returns the enqueued sequence number, or nil when unset.
func (m *Message) EnqueuedSequenceNumber() *int64 { return m.enqueuedSequenceNumber }

// SequenceNumber returns the broker sequence number, or nil when unset.
func (m *Message) SequenceNumber() *int64 { return m.sequenceNumber }

// ExpiresAtUTC returns when the message expires, or nil when unset.
func (m *Message) ExpiresAtUTC() *time.Time { return m.expiresAtUTC }

// ExpirationTime returns the legacy expiry field, or nil when unset.
func (m *Message) ExpirationTime() *time.Time { return m.expirationTime }

// ScheduledEnqueueTime returns the scheduled enqueue time, or nil when unset.
func (m *Message) ScheduledEnqueueTime() *time.Time { return m.scheduledEnqueueTime }

// ScheduledEnqueueTimeUTC returns the scheduled enqueue time in UTC, or nil when unset.
func (m *Message) ScheduledEnqueueTimeUTC() *time.Time { return m.scheduledEnqueueTimeUTC }

// TimeToLive returns the message lifetime, or nil when unset.
func (m *Message) TimeToLive() *time.Duration { return m.timeToLive }

// LockToken returns the peek-lock token, or nil when unset.
func (m *Message) LockToken() *string { return m.lockToken }

// LockedUntil returns when the peek lock expires, or nil when unset.
func (m *Message) LockedUntil() *time.Time { return m.lockedUntil }

// DeadLetterSource returns the entity the message was dead-lettered from, or nil.
func (m *Message) DeadLetterSource() *string { return m.deadLetterSource }

// DeadLetterReason returns why the message was dead-lettered, or nil.
func (m *Message) DeadLetterReason() *string { return m.deadLetterReason }

// DeadLetterErrorDescription returns the dead-letter error description, or nil.
func (m *Message) DeadLetterErrorDescription() *string { return m.deadLetterErrorDescription }

// TransactionPartitionKey returns the transaction partition key, or nil when unset.
func (m *Message) TransactionPartitionKey() *string { return m.transactionPartitionKey }

// State returns the message state, or nil when unset.
func (m *Message) State() *int { return m.state }

// ApplicationProperties returns the custom properties set by the sender.
func (m *Message) ApplicationProperties() map[string]any { return m.applicationProperties }

// UserProperties returns the legacy name for application properties.
func (m *Message) UserProperties() map[string]any { return m.userProperties }

// Metadata returns trigger metadata, or nil when none was set.
func (m *Message) Metadata() map[string]any { return m.metadata }

// GetBody returns the message body.
func (m *Message) GetBody() []byte { return m.body }

// GetJSON decodes the body as JSON.
func (m *Message) GetJSON() (any, error) {
	return mockutil.DecodeJSON(trigger, "Service Bus message", m.body)
}

// String implements fmt.Stringer.
func (m *Message) String() string {
	return fmt.Sprintf("servicebus.Message{message_id=%q delivery_count=%d}", m.messageID, m.deliveryCount)
}
