package queue

import (
	"fmt"
	"slices"

	"github.com/sudzxd/azure-functions-test/mocks"
)

// NewPoison creates a message whose dequeue count is past the poison
// threshold. Options may still override the count.
func NewPoison(body any, opts ...Option) (*Message, error) {
	return New(body, append([]Option{WithDequeueCount(mocks.PoisonDequeueCount)}, opts...)...)
}

// NewBatch creates one message per body with ids batch-message-0,
// batch-message-1 and so on. opts apply to every message.
func NewBatch(bodies []any, opts ...Option) ([]*Message, error) {
	msgs := make([]*Message, 0, len(bodies))
	for i, body := range bodies {
		id := fmt.Sprintf("%s-%d", mocks.BatchMessageIDPrefix, i)
		msg, err := New(body, append(slices.Clip(opts), WithID(id))...)
		if err != nil {
			return nil, fmt.Errorf("batch message %d: %w", i, err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
