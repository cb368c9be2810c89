package bindings

import "net/http"

// HTTP methods accepted by HTTP triggers.
const (
	MethodGet     = http.MethodGet
	MethodPost    = http.MethodPost
	MethodPut     = http.MethodPut
	MethodDelete  = http.MethodDelete
	MethodPatch   = http.MethodPatch
	MethodHead    = http.MethodHead
	MethodOptions = http.MethodOptions
)

// Content types.
const (
	ContentTypeJSON           = "application/json"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
	ContentTypeMultipartForm  = "multipart/form-data"
	ContentTypeOctetStream    = "application/octet-stream"
	ContentTypeText           = "text/plain"
	ContentTypeHTML           = "text/html"
)

// HeaderContentType is the header key checked when inferring JSON bodies.
const HeaderContentType = "Content-Type"

// Event Grid event types.
const (
	EventTypeBlobCreated      = "Microsoft.Storage.BlobCreated"
	EventTypeBlobDeleted      = "Microsoft.Storage.BlobDeleted"
	EventTypeBlobRenamed      = "Microsoft.Storage.BlobRenamed"
	EventTypeDirectoryCreated = "Microsoft.Storage.DirectoryCreated"
	EventTypeDirectoryDeleted = "Microsoft.Storage.DirectoryDeleted"
	EventTypeTest             = "Test.Event"
	EventTypeCustom           = "Custom.Application.Event"
)

// Blob storage operations reported in the "api" field of storage events.
const (
	BlobOperationPut      = "PutBlob"
	BlobOperationDelete   = "DeleteBlob"
	BlobOperationCopy     = "CopyBlob"
	BlobOperationSnapshot = "SnapshotBlob"
)

// Blob types.
const (
	BlobTypeBlock  = "BlockBlob"
	BlobTypePage   = "PageBlob"
	BlobTypeAppend = "AppendBlob"
)

// Timer schedule status keys.
const (
	ScheduleLast        = "Last"
	ScheduleNext        = "Next"
	ScheduleLastUpdated = "LastUpdated"
)
