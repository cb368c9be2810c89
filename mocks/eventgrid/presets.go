package eventgrid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sudzxd/azure-functions-test/bindings"
	"github.com/sudzxd/azure-functions-test/internal/mockutil"
	"github.com/sudzxd/azure-functions-test/mocks"
)

const (
	storageResourceType = "storageAccounts"
	blobSubjectFormat   = "/blobServices/default/containers/%s/blobs/%s"
)

type blobEvent struct {
	container      string
	blobName       string
	account        string
	contentType    string
	contentLength  int
	subscriptionID string
	resourceGroup  string
	eventOpts      []Option
}

// BlobOption overrides a blob storage event default.
type BlobOption func(*blobEvent)

// WithContainer sets the container name used in the subject.
func WithContainer(name string) BlobOption {
	return func(b *blobEvent) {
		b.container = name
	}
}

// WithBlobName sets the blob name used in the subject.
func WithBlobName(name string) BlobOption {
	return func(b *blobEvent) {
		b.blobName = name
	}
}

// WithStorageAccount sets the storage account used in the topic.
func WithStorageAccount(name string) BlobOption {
	return func(b *blobEvent) {
		b.account = name
	}
}

// WithContentType sets the blob content type.
func WithContentType(contentType string) BlobOption {
	return func(b *blobEvent) {
		b.contentType = contentType
	}
}

// WithContentLength sets the blob size reported by created events.
func WithContentLength(n int) BlobOption {
	return func(b *blobEvent) {
		b.contentLength = n
	}
}

// WithSubscription sets the subscription id and resource group of the topic.
func WithSubscription(subscriptionID, resourceGroup string) BlobOption {
	return func(b *blobEvent) {
		b.subscriptionID = subscriptionID
		b.resourceGroup = resourceGroup
	}
}

// WithEventOptions applies event options, such as WithID or WithEventTime,
// after the preset fields are set.
func WithEventOptions(opts ...Option) BlobOption {
	return func(b *blobEvent) {
		b.eventOpts = append(b.eventOpts, opts...)
	}
}

// NewBlobCreated creates a Microsoft.Storage.BlobCreated event for blobURL.
// Container, blob name and account come from options, then from the URL,
// then from defaults.
func NewBlobCreated(blobURL string, opts ...BlobOption) (*Event, error) {
	return newBlobEvent(bindings.EventTypeBlobCreated, bindings.BlobOperationPut, blobURL, opts)
}

// NewBlobDeleted creates a Microsoft.Storage.BlobDeleted event for blobURL.
// Deleted events carry no eTag or contentLength.
func NewBlobDeleted(blobURL string, opts ...BlobOption) (*Event, error) {
	return newBlobEvent(bindings.EventTypeBlobDeleted, bindings.BlobOperationDelete, blobURL, opts)
}

// NewCustom creates an application event of type Custom.Application.Event
// with subject custom/event. opts may override both.
func NewCustom(data map[string]any, opts ...Option) *Event {
	base := []Option{
		WithEventType(mocks.CustomEventType),
		WithSubject(mocks.CustomEventSubject),
	}
	return New(data, append(base, opts...)...)
}

func newBlobEvent(eventType, api, blobURL string, opts []BlobOption) (*Event, error) {
	loc := mocks.ParseBlobURL(blobURL)
	b := &blobEvent{
		container:      firstNonEmpty(loc.Container, mocks.DefaultContainerName),
		blobName:       firstNonEmpty(loc.Blob, mocks.DefaultBlobName),
		account:        firstNonEmpty(loc.Account, mocks.DefaultStorageAccount),
		contentType:    bindings.ContentTypeOctetStream,
		contentLength:  mocks.DefaultBlobContentLength,
		subscriptionID: mocks.DefaultSubscriptionID,
		resourceGroup:  mocks.DefaultResourceGroup,
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := mocks.ValidateStorageAccountName(b.account); err != nil {
		return nil, fmt.Errorf("%s event: %w", eventType, err)
	}

	now := mockutil.Now()
	data := map[string]any{
		"api":             api,
		"clientRequestId": uuid.NewString(),
		"requestId":       uuid.NewString(),
		"contentType":     b.contentType,
		"blobType":        bindings.BlobTypeBlock,
		"url":             blobURL,
		"sequencer":       now.Format(mocks.SequencerTimeLayout) + mocks.SequencerSuffix,
	}
	if eventType == bindings.EventTypeBlobCreated {
		data["eTag"] = newETag()
		data["contentLength"] = b.contentLength
	}

	eventOpts := append([]Option{
		WithEventType(eventType),
		WithSubject(fmt.Sprintf(blobSubjectFormat, b.container, b.blobName)),
		WithTopic(mocks.ResourceTopic(b.subscriptionID, b.resourceGroup, storageResourceType, b.account)),
		WithEventTime(now),
	}, b.eventOpts...)

	return New(data, eventOpts...), nil
}

// newETag returns "0x" followed by upper-case hex digits.
func newETag() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "0x" + strings.ToUpper(hex[:mocks.ETagHexLength])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
