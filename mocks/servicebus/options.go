package servicebus

import (
	"time"

	"github.com/sudzxd/azure-functions-test/internal/mockutil"
)

// Option overrides a message default. Pointer fields get a fresh copy each
// time the option is applied, so one option can be shared between messages.
type Option func(*Message)

func ptr[T any](v T) *T {
	return &v
}

// WithMessageID sets the message id.
func WithMessageID(id string) Option {
	return func(m *Message) {
		m.messageID = id
	}
}

// WithContentType sets the content type.
func WithContentType(contentType string) Option {
	return func(m *Message) {
		m.contentType = ptr(contentType)
	}
}

// WithCorrelationID sets the correlation id.
func WithCorrelationID(id string) Option {
	return func(m *Message) {
		m.correlationID = ptr(id)
	}
}

// WithSessionID marks the message as belonging to a session.
func WithSessionID(id string) Option {
	return func(m *Message) {
		m.sessionID = ptr(id)
	}
}

// WithPartitionKey sets the partition key.
func WithPartitionKey(key string) Option {
	return func(m *Message) {
		m.partitionKey = ptr(key)
	}
}

// WithReplyTo sets the reply address.
func WithReplyTo(address string) Option {
	return func(m *Message) {
		m.replyTo = ptr(address)
	}
}

// WithReplyToSessionID sets the session a reply should go to.
func WithReplyToSessionID(id string) Option {
	return func(m *Message) {
		m.replyToSessionID = ptr(id)
	}
}

// WithTo sets the destination address.
func WithTo(address string) Option {
	return func(m *Message) {
		m.to = ptr(address)
	}
}

// WithLabel sets the legacy label.
func WithLabel(label string) Option {
	return func(m *Message) {
		m.label = ptr(label)
	}
}

// WithSubject sets the subject.
func WithSubject(subject string) Option {
	return func(m *Message) {
		m.subject = ptr(subject)
	}
}

// WithDeliveryCount sets how many times the message was delivered. Zero is
// kept as given.
func WithDeliveryCount(n int) Option {
	return func(m *Message) {
		m.deliveryCount = n
	}
}

// WithEnqueuedTimeUTC sets the enqueue time. A zero time keeps the
// construction-time default.
func WithEnqueuedTimeUTC(t time.Time) Option {
	return func(m *Message) {
		if !t.IsZero() {
			m.enqueuedTimeUTC = mockutil.TimePtr(t)
		}
	}
}

// WithEnqueuedSequenceNumber sets the enqueued sequence number.
func WithEnqueuedSequenceNumber(n int64) Option {
	return func(m *Message) {
		m.enqueuedSequenceNumber = ptr(n)
	}
}

// WithSequenceNumber sets the broker sequence number.
func WithSequenceNumber(n int64) Option {
	return func(m *Message) {
		m.sequenceNumber = ptr(n)
	}
}

// WithExpiresAtUTC sets the expiry. A zero time is ignored.
func WithExpiresAtUTC(t time.Time) Option {
	return timeOption(t, func(m *Message, p *time.Time) { m.expiresAtUTC = p })
}

// WithExpirationTime sets the legacy expiry field. A zero time is ignored.
func WithExpirationTime(t time.Time) Option {
	return timeOption(t, func(m *Message, p *time.Time) { m.expirationTime = p })
}

// WithScheduledEnqueueTime sets the scheduled enqueue time. A zero time is
// ignored.
func WithScheduledEnqueueTime(t time.Time) Option {
	return timeOption(t, func(m *Message, p *time.Time) { m.scheduledEnqueueTime = p })
}

// WithScheduledEnqueueTimeUTC sets the explicit UTC scheduled enqueue time. A
// zero time is ignored.
func WithScheduledEnqueueTimeUTC(t time.Time) Option {
	return timeOption(t, func(m *Message, p *time.Time) { m.scheduledEnqueueTimeUTC = p })
}

// WithTimeToLive sets the message lifetime.
func WithTimeToLive(d time.Duration) Option {
	return func(m *Message) {
		m.timeToLive = ptr(d)
	}
}

// WithLockToken sets the peek-lock token.
func WithLockToken(token string) Option {
	return func(m *Message) {
		m.lockToken = ptr(token)
	}
}

// WithLockedUntil sets the lock expiry. A zero time is ignored.
func WithLockedUntil(t time.Time) Option {
	return timeOption(t, func(m *Message, p *time.Time) { m.lockedUntil = p })
}

// WithDeadLetterSource sets the entity the message was dead-lettered from.
func WithDeadLetterSource(source string) Option {
	return func(m *Message) {
		m.deadLetterSource = ptr(source)
	}
}

// WithDeadLetterReason sets why the message was dead-lettered.
func WithDeadLetterReason(reason string) Option {
	return func(m *Message) {
		m.deadLetterReason = ptr(reason)
	}
}

// WithDeadLetterErrorDescription sets the dead-letter error description.
func WithDeadLetterErrorDescription(description string) Option {
	return func(m *Message) {
		m.deadLetterErrorDescription = ptr(description)
	}
}

// WithTransactionPartitionKey sets the transaction partition key.
func WithTransactionPartitionKey(key string) Option {
	return func(m *Message) {
		m.transactionPartitionKey = ptr(key)
	}
}

// WithState sets the message state.
func WithState(state int) Option {
	return func(m *Message) {
		m.state = ptr(state)
	}
}

// WithApplicationProperties copies props into the message. A nil map is
// ignored.
func WithApplicationProperties(props map[string]any) Option {
	return func(m *Message) {
		if props != nil {
			m.applicationProperties = mockutil.CopyMap(props)
		}
	}
}

// WithUserProperties copies props into the message. A nil map is ignored.
func WithUserProperties(props map[string]any) Option {
	return func(m *Message) {
		if props != nil {
			m.userProperties = mockutil.CopyMap(props)
		}
	}
}

// WithMetadata sets trigger metadata. A nil map leaves it unset.
func WithMetadata(metadata map[string]any) Option {
	return func(m *Message) {
		if metadata != nil {
			m.metadata = mockutil.CopyMap(metadata)
		}
	}
}

func timeOption(t time.Time, set func(*Message, *time.Time)) Option {
	return func(m *Message) {
		if !t.IsZero() {
			set(m, mockutil.TimePtr(t))
		}
	}
}
