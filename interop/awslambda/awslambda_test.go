package awslambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudzxd/azure-functions-test/bindings"
	"github.com/sudzxd/azure-functions-test/mocks"
	"github.com/sudzxd/azure-functions-test/mocks/blob"
	"github.com/sudzxd/azure-functions-test/mocks/eventgrid"
	mockshttp "github.com/sudzxd/azure-functions-test/mocks/http"
	"github.com/sudzxd/azure-functions-test/mocks/queue"
	"github.com/sudzxd/azure-functions-test/mocks/timer"
)

func TestSQSMessage(t *testing.T) {
	inserted := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	msg := mocks.Must(queue.New(map[string]any{"order_id": 123},
		queue.WithID("msg-1"),
		queue.WithDequeueCount(3),
		queue.WithInsertionTime(inserted),
		queue.WithPopReceipt("receipt-1"),
	))

	record := SQSMessage(msg)

	assert.Equal(t, "msg-1", record.MessageId)
	assert.Equal(t, "receipt-1", record.ReceiptHandle)
	assert.Equal(t, `{"order_id":123}`, record.Body)
	assert.Equal(t, "3", record.Attributes["ApproximateReceiveCount"])
	assert.Equal(t, "1736928000000", record.Attributes["SentTimestamp"])
	assert.Equal(t, "aws:sqs", record.EventSource)
	assert.Equal(t, DefaultQueueARN, record.EventSourceARN)
	assert.Len(t, record.Md5OfBody, 32)
}

func TestQueueMessages_RoundTrip(t *testing.T) {
	batch := mocks.Must(queue.NewBatch([]any{"a", map[string]any{"b": 2}}, queue.WithDequeueCount(4)))

	msgs, err := QueueMessages(SQSEvent(batch[0], batch[1]))

	require.NoError(t, err)
	require.Len(t, msgs, 2)
	for i, msg := range msgs {
		assert.Equal(t, batch[i].ID(), msg.ID())
		assert.Equal(t, batch[i].GetBody(), msg.GetBody())
		assert.Equal(t, 4, msg.DequeueCount())
		assert.Equal(t, batch[i].InsertionTime().UnixMilli(), msg.InsertionTime().UnixMilli())
	}
}

func TestQueueMessages_InvalidAttributes(t *testing.T) {
	event := events.SQSEvent{Records: []events.SQSMessage{
		{MessageId: "ok"},
		{MessageId: "bad", Attributes: map[string]string{"ApproximateReceiveCount": "many"}},
	}}

	_, err := QueueMessages(event)

	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.Contains(t, err.Error(), "record 1")
}

func TestProcessSQSBatch(t *testing.T) {
	ok := mocks.Must(queue.New("fine", queue.WithID("msg-1")))
	poison := mocks.Must(queue.NewPoison("broken", queue.WithID("msg-2")))
	event := SQSEvent(ok, poison)

	var seen []string
	response := ProcessSQSBatch(context.Background(), event, func(_ context.Context, msg bindings.QueueMessage) error {
		seen = append(seen, msg.ID())
		if msg.DequeueCount() > mocks.PoisonThreshold {
			return errors.New("poison message")
		}
		return nil
	})

	assert.Equal(t, []string{"msg-1", "msg-2"}, seen)
	assert.Equal(t, []events.SQSBatchItemFailure{{ItemIdentifier: "msg-2"}}, response.BatchItemFailures)
}

func TestProcessSQSBatch_AllSucceed(t *testing.T) {
	event := SQSEvent(mocks.Must(queue.New("x")))

	response := ProcessSQSBatch(context.Background(), event, func(context.Context, bindings.QueueMessage) error {
		return nil
	})

	assert.NotNil(t, response.BatchItemFailures)
	assert.Empty(t, response.BatchItemFailures)
}

func TestAPIGatewayProxyRequest(t *testing.T) {
	req := mocks.Must(mockshttp.New(map[string]any{"name": "John"},
		mockshttp.WithMethod(bindings.MethodPost),
		mockshttp.WithURL("http://localhost/api/users/123?verbose=1&page=2"),
		mockshttp.WithParams(map[string]string{"page": "3"}),
		mockshttp.WithRouteParams(map[string]string{"id": "123"}),
	))

	got, err := APIGatewayProxyRequest(req)

	require.NoError(t, err)
	assert.Equal(t, "POST", got.HTTPMethod)
	assert.Equal(t, "/api/users/123", got.Path)
	assert.Equal(t, map[string]string{"verbose": "1", "page": "3"}, got.QueryStringParameters)
	assert.Equal(t, map[string]string{"id": "123"}, got.PathParameters)
	assert.Equal(t, "application/json", got.Headers["Content-Type"])
	assert.JSONEq(t, `{"name":"John"}`, got.Body)
	assert.False(t, got.IsBase64Encoded)
	assert.Equal(t, "/api/users/123", got.RequestContext.Path)
	assert.NotEmpty(t, got.RequestContext.RequestID)
}

func TestAPIGatewayProxyRequest_BinaryBody(t *testing.T) {
	req := mocks.Must(mockshttp.New([]byte{0xff, 0x00, 0xfe}))

	got, err := APIGatewayProxyRequest(req)

	require.NoError(t, err)
	assert.True(t, got.IsBase64Encoded)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0xff, 0x00, 0xfe}), got.Body)
	assert.Equal(t, "/", got.Path)
}

func TestHTTPRequest_RoundTrip(t *testing.T) {
	original := mocks.Must(mockshttp.New([]byte{0xff, 0x01},
		mockshttp.WithMethod(bindings.MethodPut),
		mockshttp.WithURL("http://localhost/files/7"),
		mockshttp.WithHeader("X-Request-ID", "abc"),
		mockshttp.WithRouteParams(map[string]string{"id": "7"}),
	))
	proxy, err := APIGatewayProxyRequest(original)
	require.NoError(t, err)

	got, err := HTTPRequest(proxy)

	require.NoError(t, err)
	assert.Equal(t, "PUT", got.Method())
	assert.Equal(t, "http://localhost/files/7", got.URL())
	assert.Equal(t, original.GetBody(), got.GetBody())
	assert.Equal(t, "abc", got.Headers()["X-Request-ID"])
	assert.Equal(t, "7", got.RouteParams()["id"])
}

func TestHTTPRequest_BadBase64(t *testing.T) {
	_, err := HTTPRequest(events.APIGatewayProxyRequest{Body: "%%%", IsBase64Encoded: true})

	assert.Error(t, err)
}

func TestAPIGatewayProxyResponse(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		resp := mocks.Must(bindings.NewJSONResponse(201, map[string]any{"id": 1}))

		got := APIGatewayProxyResponse(resp)

		assert.Equal(t, 201, got.StatusCode)
		assert.Equal(t, "application/json; charset=utf-8", got.Headers["Content-Type"])
		assert.JSONEq(t, `{"id":1}`, got.Body)
	})

	t.Run("explicit content type header", func(t *testing.T) {
		resp := mocks.Must(bindings.NewHTTPResponse("<p>hi</p>", bindings.WithHeader("Content-Type", "text/html")))

		got := APIGatewayProxyResponse(resp)

		assert.Equal(t, "text/html", got.Headers["Content-Type"])
		assert.Equal(t, "<p>hi</p>", got.Body)
	})
}

func TestCloudWatchEvent(t *testing.T) {
	at := time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC)
	e := eventgrid.NewCustom(map[string]any{"orderId": "ORD-1"},
		eventgrid.WithID("evt-1"),
		eventgrid.WithEventType("Custom.Order.Created"),
		eventgrid.WithSubject("orders/1"),
		eventgrid.WithEventTime(at),
	)

	got, err := CloudWatchEvent(e)

	require.NoError(t, err)
	assert.Equal(t, "evt-1", got.ID)
	assert.Equal(t, "Custom.Order.Created", got.DetailType)
	assert.Equal(t, mocks.DefaultEventTopic, got.Source)
	assert.Equal(t, at, got.Time)
	assert.Equal(t, []string{"orders/1"}, got.Resources)
	assert.JSONEq(t, `{"orderId":"ORD-1"}`, string(got.Detail))
}

func TestCloudWatchEvent_UnencodableData(t *testing.T) {
	e := eventgrid.New(map[string]any{"ch": make(chan int)})

	_, err := CloudWatchEvent(e)

	assert.Error(t, err)
}

func TestScheduledEvent(t *testing.T) {
	last := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r := timer.New(
		timer.WithPastDue(true),
		timer.WithScheduleStatus(map[string]time.Time{bindings.ScheduleLast: last}),
		timer.WithSchedule(map[string]any{"AdjustForDST": true}),
	)

	got, err := ScheduledEvent(r)

	require.NoError(t, err)
	assert.Equal(t, "Scheduled Event", got.DetailType)
	assert.Equal(t, "aws.events", got.Source)
	assert.Equal(t, last, got.Time)
	assert.Equal(t, []string{DefaultScheduleRuleARN}, got.Resources)

	var detail map[string]any
	require.NoError(t, json.Unmarshal(got.Detail, &detail))
	assert.Equal(t, true, detail["pastDue"])
	assert.Equal(t, map[string]any{"AdjustForDST": true}, detail["schedule"])
}

func TestS3Event(t *testing.T) {
	s := mocks.Must(blob.New("Hello, World!",
		blob.WithName("uploads/report.csv"),
		blob.WithURI("https://myaccount.blob.core.windows.net/uploads/2025/report.csv"),
	))

	got := S3Event(s, "")

	require.Len(t, got.Records, 1)
	record := got.Records[0]
	assert.Equal(t, "ObjectCreated:Put", record.EventName)
	assert.Equal(t, "aws:s3", record.EventSource)
	assert.Equal(t, "uploads", record.S3.Bucket.Name)
	assert.Equal(t, "arn:aws:s3:::uploads", record.S3.Bucket.Arn)
	assert.Equal(t, "2025/report.csv", record.S3.Object.Key)
	assert.Equal(t, int64(13), record.S3.Object.Size)
}

func TestS3Event_DefaultsWhenURIHasNoPath(t *testing.T) {
	s := mocks.Must(blob.New(nil, blob.WithName("data.txt"), blob.WithURI("")))

	got := S3Event(s, EventNameObjectRemoved)

	record := got.Records[0]
	assert.Equal(t, "ObjectRemoved:Delete", record.EventName)
	assert.Equal(t, mocks.DefaultContainerName, record.S3.Bucket.Name)
	assert.Equal(t, "data.txt", record.S3.Object.Key)
}

func TestS3EventFromEventGrid(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e := mocks.Must(eventgrid.NewBlobCreated("https://acct.blob.core.windows.net/photos/cat.jpg",
			eventgrid.WithContentLength(2048)))

		got, err := S3EventFromEventGrid(e)

		require.NoError(t, err)
		record := got.Records[0]
		assert.Equal(t, EventNameObjectCreated, record.EventName)
		assert.Equal(t, "photos", record.S3.Bucket.Name)
		assert.Equal(t, "cat.jpg", record.S3.Object.Key)
		assert.Equal(t, int64(2048), record.S3.Object.Size)
		assert.Equal(t, e.GetJSON()["eTag"], record.S3.Object.ETag)
	})

	t.Run("deleted", func(t *testing.T) {
		e := mocks.Must(eventgrid.NewBlobDeleted("https://acct.blob.core.windows.net/photos/cat.jpg"))

		got, err := S3EventFromEventGrid(e)

		require.NoError(t, err)
		assert.Equal(t, EventNameObjectRemoved, got.Records[0].EventName)
		assert.Zero(t, got.Records[0].S3.Object.Size)
	})

	t.Run("other event type", func(t *testing.T) {
		_, err := S3EventFromEventGrid(eventgrid.New(nil))

		assert.ErrorIs(t, err, ErrNotBlobEvent)
	})
}
