package mocks

import "time"

// Identifiers used when a mock is built without explicit values.
const (
	DefaultMessageID  = "test-message-id"
	DefaultEventID    = "test-event-id"
	DefaultPopReceipt = "test-pop-receipt"
	DefaultSessionID  = "default-session"
)

// Azure resource names.
const (
	DefaultStorageAccount   = "teststorageaccount"
	DefaultContainerName    = "test-container"
	DefaultQueueName        = "test-queue"
	DefaultTopicName        = "test-topic"
	DefaultSubscriptionName = "test-subscription"
	DefaultResourceGroup    = "test-resource-group"
	DefaultSubscriptionID   = "sub-id"
)

// Blob defaults.
const (
	DefaultBlobName          = "test-blob.txt"
	DefaultBlobURI           = "https://test.blob.core.windows.net/container/test-blob.txt"
	DefaultBlobContentLength = 1024
)

// HTTP defaults.
const (
	DefaultHTTPMethod = "GET"
	DefaultHTTPURL    = "http://localhost"
)

// Event Grid defaults.
const (
	DefaultEventType        = "Test.Event"
	DefaultEventTopic       = "/subscriptions/sub-id/resourceGroups/rg/providers/Microsoft.EventGrid/topics/test-topic"
	DefaultEventSubject     = "test/subject"
	DefaultEventDataVersion = "1.0"
	CustomEventType         = "Custom.Application.Event"
	CustomEventSubject      = "custom/event"
)

// Service Bus defaults.
const (
	DefaultReplyToQueue          = "response-queue"
	DefaultDeadLetterSource      = "original-queue"
	DefaultDeadLetterReason      = "ProcessingError"
	DefaultDeadLetterDescription = "Message processing failed after maximum retries"
)

// Delivery counts.
const (
	DequeueCountDefault = 1

	// PoisonThreshold is the conventional dequeue count above which a handler
	// treats a queue message as poison. The mocks never enforce it.
	PoisonThreshold    = 5
	PoisonDequeueCount = 6

	DeliveryCountDefault           = 1
	DeadLetterDeliveryCountDefault = 10
)

// BatchMessageIDPrefix prefixes the ids of batch queue messages.
const BatchMessageIDPrefix = "batch-message"

// Service Bus timing.
const (
	ScheduledTimeOffset     = time.Hour
	ScheduledTimeOffsetLong = 2 * time.Hour
	LockTimeout             = 5 * time.Minute
)

// Event Grid blob event encoding.
const (
	ETagHexLength = 16

	// SequencerTimeLayout formats the timestamp part of a blob event sequencer.
	SequencerTimeLayout = "20060102150405"
	SequencerSuffix     = "0000000000000"
)

// Resource provider namespaces by resource type.
var ResourceProviders = map[string]string{
	"storageAccounts": "Microsoft.Storage",
	"topics":          "Microsoft.EventGrid",
	"namespaces":      "Microsoft.ServiceBus",
	"sites":           "Microsoft.Web",
}

// DefaultProvider is used for resource types missing from ResourceProviders.
const DefaultProvider = "Microsoft.Test"
