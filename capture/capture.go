// Package capture records the values a handler writes to its output bindings.
//
// A test creates one Context, hands slots from it to the handler, then
// inspects what was written:
//
//	ctx := capture.New()
//	handle(msg, ctx.Out("result"))
//	ctx.AssertOutput(t, "result", "done")
//
// A Context is owned by a single test and is not safe for concurrent use.
package capture

import (
	"errors"
	"fmt"

	"github.com/stretchr/testify/assert"

	"github.com/sudzxd/azure-functions-test/bindings"
	"github.com/sudzxd/azure-functions-test/observability"
)

const component = "capture"

var (
	// ErrOutputNotSet is returned by Get on a slot that was never written.
	ErrOutputNotSet = errors.New("output was never set")
	// ErrOutputNotCreated is returned by Verify for a name no slot was made for.
	ErrOutputNotCreated = errors.New("output was never created")
	// ErrOutputMismatch is returned by Verify when the captured value differs.
	ErrOutputMismatch = errors.New("output mismatch")
	// ErrOutputTypeMismatch is the panic value when a name is requested with
	// a different element type than it was created with.
	ErrOutputTypeMismatch = errors.New("output requested with a different type")
)

var _ bindings.Out[any] = (*Output[any])(nil)

type slot interface {
	Name() string
	IsSet() bool
	captured() any
}

// Output is a named capture slot. It satisfies bindings.Out[T].
type Output[T any] struct {
	name    string
	value   T
	written bool
}

// Set records val. Later calls replace the value.
func (o *Output[T]) Set(val T) {
	o.value = val
	o.written = true

	observability.GetMetrics(component).RecordOutputWritten(o.name)
	observability.GetLogger(component).Debug("output set", observability.Fields{
		"name":  o.name,
		"value": fmt.Sprintf("%#v", val),
	})
}

// Get returns the recorded value, or ErrOutputNotSet before the first Set.
func (o *Output[T]) Get() (T, error) {
	if !o.written {
		var zero T
		return zero, fmt.Errorf("output %q: %w", o.name, ErrOutputNotSet)
	}
	return o.value, nil
}

// IsSet reports whether Set was called, whatever the value.
func (o *Output[T]) IsSet() bool { return o.written }

// Name returns the binding name.
func (o *Output[T]) Name() string { return o.name }

func (o *Output[T]) captured() any { return o.value }

// String implements fmt.Stringer.
func (o *Output[T]) String() string {
	return fmt.Sprintf("capture.Output{name=%q set=%t}", o.name, o.written)
}

// Context hands out capture slots by name.
type Context struct {
	slots map[string]slot
	order []string
}

// New creates an empty Context.
func New() *Context {
	return &Context{slots: make(map[string]slot)}
}

// Out returns the untyped slot for name, creating it on first use.
func (c *Context) Out(name string) *Output[any] {
	return Out[any](c, name)
}

// Out returns the slot for name with element type T, creating it on first
// use. Asking for an existing name with another T panics with
// ErrOutputTypeMismatch.
func Out[T any](c *Context, name string) *Output[T] {
	if s, ok := c.slots[name]; ok {
		out, ok := s.(*Output[T])
		if !ok {
			panic(fmt.Errorf("%w: %q is %T", ErrOutputTypeMismatch, name, s))
		}
		return out
	}

	out := &Output[T]{name: name}
	c.slots[name] = out
	c.order = append(c.order, name)
	observability.GetLogger(component).Debug("output created", observability.Fields{
		"name": name,
	})
	return out
}

// Outputs returns a new map of the written slots. Slots that were created
// but never set are absent.
func (c *Context) Outputs() map[string]any {
	out := make(map[string]any, len(c.slots))
	for name, s := range c.slots {
		if s.IsSet() {
			out[name] = s.captured()
		}
	}
	return out
}

// IsSet reports whether the slot for name exists and was written.
func (c *Context) IsSet(name string) bool {
	s, ok := c.slots[name]
	return ok && s.IsSet()
}

// Names returns the slot names in creation order.
func (c *Context) Names() []string {
	return append([]string(nil), c.order...)
}

// Verify compares the captured value for name with expected. An unwritten
// slot holds its zero value.
func (c *Context) Verify(name string, expected any) error {
	s, ok := c.slots[name]
	if !ok {
		return fmt.Errorf("output %q: %w", name, ErrOutputNotCreated)
	}

	actual := s.captured()
	if !assert.ObjectsAreEqual(expected, actual) {
		return fmt.Errorf("%w: output %q\n  expected: %#v\n  actual:   %#v", ErrOutputMismatch, name, expected, actual)
	}
	return nil
}

// AssertOutput fails t unless Verify succeeds.
func (c *Context) AssertOutput(t assert.TestingT, name string, expected any, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if err := c.Verify(name, expected); err != nil {
		return assert.Fail(t, err.Error(), msgAndArgs...)
	}
	return true
}
