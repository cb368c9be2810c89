package servicebus

import (
	"time"

	"github.com/google/uuid"

	"github.com/sudzxd/azure-functions-test/internal/mockutil"
	"github.com/sudzxd/azure-functions-test/mocks"
)

// NewSession creates a locked message in sessionID. An empty sessionID uses
// default-session. The lock token is a fresh UUID and the lock expires five
// minutes from now.
func NewSession(body any, sessionID string, opts ...Option) (*Message, error) {
	if sessionID == "" {
		sessionID = mocks.DefaultSessionID
	}
	base := []Option{
		WithSessionID(sessionID),
		WithLockToken(uuid.NewString()),
		WithLockedUntil(mockutil.Now().Add(mocks.LockTimeout)),
	}
	return New(body, append(base, opts...)...)
}

// NewDeadLetter creates a message that was moved to the dead-letter queue
// after exhausting its deliveries.
func NewDeadLetter(body any, opts ...Option) (*Message, error) {
	base := []Option{
		WithDeadLetterSource(mocks.DefaultDeadLetterSource),
		WithDeadLetterReason(mocks.DefaultDeadLetterReason),
		WithDeadLetterErrorDescription(mocks.DefaultDeadLetterDescription),
		WithDeliveryCount(mocks.DeadLetterDeliveryCountDefault),
	}
	return New(body, append(base, opts...)...)
}

// NewScheduled creates a message scheduled for at. A zero at schedules it
// one hour from now. Both scheduled enqueue fields are set.
func NewScheduled(body any, at time.Time, opts ...Option) (*Message, error) {
	if at.IsZero() {
		at = mockutil.Now().Add(mocks.ScheduledTimeOffset)
	}
	base := []Option{
		WithScheduledEnqueueTime(at),
		WithScheduledEnqueueTimeUTC(at.UTC()),
	}
	return New(body, append(base, opts...)...)
}

// NewRequestReply creates a request whose reply goes to replyTo, or to
// response-queue when replyTo is empty. The correlation id is a fresh UUID.
func NewRequestReply(body any, replyTo string, opts ...Option) (*Message, error) {
	if replyTo == "" {
		replyTo = mocks.DefaultReplyToQueue
	}
	base := []Option{
		WithReplyTo(replyTo),
		WithCorrelationID(uuid.NewString()),
	}
	return New(body, append(base, opts...)...)
}
