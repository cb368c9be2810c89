// Package awslambda converts trigger mocks to and from aws-lambda-go event
// fixtures, so handler logic deployed to both Azure Functions and AWS Lambda
// can be tested from the same inputs.
package awslambda

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/sudzxd/azure-functions-test/bindings"
	"github.com/sudzxd/azure-functions-test/mocks/queue"
	"github.com/sudzxd/azure-functions-test/observability"
)

const component = "awslambda"

// Fixture identity shared by every converted event.
const (
	DefaultRegion    = "us-east-1"
	DefaultAccountID = "123456789012"
	DefaultQueueARN  = "arn:aws:sqs:" + DefaultRegion + ":" + DefaultAccountID + ":test-queue"
)

const (
	eventSourceSQS    = "aws:sqs"
	attrReceiveCount  = "ApproximateReceiveCount"
	attrSentTimestamp = "SentTimestamp"
)

// ErrInvalidRecord is returned when an SQS record cannot become a queue
// message.
var ErrInvalidRecord = errors.New("invalid SQS record")

// QueueHandler processes one queue message.
type QueueHandler func(ctx context.Context, msg bindings.QueueMessage) error

// SQSMessage converts a queue message into an SQS record. The dequeue count
// becomes ApproximateReceiveCount and the insertion time SentTimestamp.
func SQSMessage(msg bindings.QueueMessage) events.SQSMessage {
	body := msg.GetBody()
	sum := md5.Sum(body)

	attrs := map[string]string{
		attrReceiveCount: strconv.Itoa(msg.DequeueCount()),
	}
	if inserted := msg.InsertionTime(); inserted != nil {
		attrs[attrSentTimestamp] = strconv.FormatInt(inserted.UnixMilli(), 10)
	}

	return events.SQSMessage{
		MessageId:      msg.ID(),
		ReceiptHandle:  msg.PopReceipt(),
		Body:           string(body),
		Md5OfBody:      hex.EncodeToString(sum[:]),
		Attributes:     attrs,
		EventSource:    eventSourceSQS,
		EventSourceARN: DefaultQueueARN,
		AWSRegion:      DefaultRegion,
	}
}

// SQSEvent wraps msgs in a single SQS batch.
func SQSEvent(msgs ...bindings.QueueMessage) events.SQSEvent {
	records := make([]events.SQSMessage, 0, len(msgs))
	for _, msg := range msgs {
		records = append(records, SQSMessage(msg))
	}
	return events.SQSEvent{Records: records}
}

// QueueMessages converts the records of an SQS batch into queue messages.
func QueueMessages(event events.SQSEvent) ([]*queue.Message, error) {
	msgs := make([]*queue.Message, 0, len(event.Records))
	for i, record := range event.Records {
		msg, err := queueMessage(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

// ProcessSQSBatch runs handle for every record and reports the failed ones as
// batch item failures, the way a Lambda with partial batch responses does.
func ProcessSQSBatch(ctx context.Context, event events.SQSEvent, handle QueueHandler) events.SQSEventResponse {
	logger := observability.GetLogger(component)
	response := events.SQSEventResponse{
		BatchItemFailures: []events.SQSBatchItemFailure{},
	}

	for _, record := range event.Records {
		msg, err := queueMessage(record)
		if err == nil {
			err = handle(ctx, msg)
		}
		if err != nil {
			logger.Warn("SQS record failed", observability.Fields{
				"message_id": record.MessageId,
				"error":      err.Error(),
			})
			response.BatchItemFailures = append(response.BatchItemFailures,
				events.SQSBatchItemFailure{
					ItemIdentifier: record.MessageId,
				})
		}
	}

	logger.Debug("SQS batch processed", observability.Fields{
		"total":  len(event.Records),
		"failed": len(response.BatchItemFailures),
	})
	return response
}

func queueMessage(record events.SQSMessage) (*queue.Message, error) {
	opts := []queue.Option{
		queue.WithID(record.MessageId),
		queue.WithPopReceipt(record.ReceiptHandle),
	}

	if raw, ok := record.Attributes[attrReceiveCount]; ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidRecord, attrReceiveCount, raw)
		}
		opts = append(opts, queue.WithDequeueCount(n))
	}
	if raw, ok := record.Attributes[attrSentTimestamp]; ok {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidRecord, attrSentTimestamp, raw)
		}
		opts = append(opts, queue.WithInsertionTime(time.UnixMilli(ms).UTC()))
	}

	return queue.New([]byte(record.Body), opts...)
}
