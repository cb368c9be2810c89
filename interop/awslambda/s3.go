package awslambda

import (
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"

	"github.com/sudzxd/azure-functions-test/bindings"
	"github.com/sudzxd/azure-functions-test/internal/mockutil"
	"github.com/sudzxd/azure-functions-test/mocks"
)

// S3 event names.
const (
	EventNameObjectCreated = "ObjectCreated:Put"
	EventNameObjectRemoved = "ObjectRemoved:Delete"
)

const (
	eventSourceS3  = "aws:s3"
	s3EventVersion = "2.1"
	s3BucketARN    = "arn:aws:s3:::"
)

// ErrNotBlobEvent is returned when an Event Grid event is not a blob created
// or deleted notification.
var ErrNotBlobEvent = errors.New("not a blob storage event")

// S3Event converts a blob stream into a single-record S3 notification. The
// container becomes the bucket and the blob path the key, both taken from the
// stream URI. An empty eventName means ObjectCreated:Put.
func S3Event(s bindings.InputStream, eventName string) events.S3Event {
	if eventName == "" {
		eventName = EventNameObjectCreated
	}
	loc := mocks.ParseBlobURL(s.URI())
	key := loc.Blob
	if key == "" {
		key = s.Name()
	}
	return s3Event(eventName, loc.Container, key, int64(s.Length()), "")
}

// S3EventFromEventGrid converts a Microsoft.Storage.BlobCreated or BlobDeleted
// event into the matching S3 notification, using the url in its data.
func S3EventFromEventGrid(e bindings.EventGridEvent) (events.S3Event, error) {
	var eventName string
	switch e.EventType() {
	case bindings.EventTypeBlobCreated:
		eventName = EventNameObjectCreated
	case bindings.EventTypeBlobDeleted:
		eventName = EventNameObjectRemoved
	default:
		return events.S3Event{}, fmt.Errorf("%w: %s", ErrNotBlobEvent, e.EventType())
	}

	data := e.GetJSON()
	rawURL, _ := data["url"].(string)
	loc := mocks.ParseBlobURL(rawURL)

	var size int64
	switch n := data["contentLength"].(type) {
	case int:
		size = int64(n)
	case int64:
		size = n
	case float64:
		size = int64(n)
	}
	etag, _ := data["eTag"].(string)

	return s3Event(eventName, loc.Container, loc.Blob, size, etag), nil
}

func s3Event(eventName, bucket, key string, size int64, etag string) events.S3Event {
	if bucket == "" {
		bucket = mocks.DefaultContainerName
	}
	if key == "" {
		key = mocks.DefaultBlobName
	}

	return events.S3Event{
		Records: []events.S3EventRecord{
			{
				EventVersion: s3EventVersion,
				EventSource:  eventSourceS3,
				AWSRegion:    DefaultRegion,
				EventTime:    mockutil.Now(),
				EventName:    eventName,
				S3: events.S3Entity{
					SchemaVersion: "1.0",
					Bucket: events.S3Bucket{
						Name: bucket,
						Arn:  s3BucketARN + bucket,
					},
					Object: events.S3Object{
						Key:           key,
						URLDecodedKey: key,
						Size:          size,
						ETag:          etag,
					},
				},
			},
		},
	}
}
