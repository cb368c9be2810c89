// Package mocks holds what the trigger mock packages share: default values,
// sentinel errors, Azure naming rules and resource path helpers.
//
// The mocks themselves live in one package per trigger kind:
//
//	mocks/queue       Storage Queue messages
//	mocks/http        HTTP requests
//	mocks/blob        Blob input streams
//	mocks/eventgrid   Event Grid events
//	mocks/servicebus  Service Bus messages
//	mocks/timer       Timer requests
//
// Each package has a New constructor taking the primary payload (if the
// trigger has one) and functional options. Unset options keep their
// defaults, including computed ones such as the current time:
//
//	msg, err := queue.New(map[string]any{"order_id": 123}, queue.WithDequeueCount(6))
//
// Body payloads follow one rule set: nil is empty, []byte is kept as is,
// strings are UTF-8 and string-keyed maps become JSON. Slices become JSON for
// queue messages only; other triggers return ErrListBodyNotAllowed.
package mocks
