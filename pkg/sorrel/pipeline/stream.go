// Package pipeline is the execution core of the Sorrel shell: it carries
// values between stages, drives internal commands and their control-action
// protocol, and bridges external subprocesses into the typed stream.
package pipeline

import (
	"io"
	"sync"

	"github.com/sambeau/sorrel/pkg/sorrel/errors"
	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

// InputStream is a lazy sequence of values flowing between pipeline stages.
// The producing goroutine blocks until the consumer takes the next item, so
// order is strict FIFO with at most one item of lookahead. A consumer that
// stops early must call Close so the producer can unwind.
type InputStream struct {
	ch   chan value.Value
	done chan struct{}
	once sync.Once
}

// NewInputStream starts a producer for a lazy value sequence. The producer
// sends through Send and returns when done or when Send reports the consumer
// has gone away.
func NewInputStream(produce func(out *InputStream)) *InputStream {
	s := &InputStream{
		ch:   make(chan value.Value),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.ch)
		produce(s)
	}()
	return s
}

// InputFromValues creates a stream over an already-materialized sequence.
func InputFromValues(vs ...value.Value) *InputStream {
	return NewInputStream(func(out *InputStream) {
		for _, v := range vs {
			if !out.Send(v) {
				return
			}
		}
	})
}

// Send delivers one value downstream. It reports false once the consumer has
// closed the stream.
func (s *InputStream) Send(v value.Value) bool {
	select {
	case s.ch <- v:
		return true
	case <-s.done:
		return false
	}
}

// Values returns the channel the consumer ranges over.
func (s *InputStream) Values() <-chan value.Value {
	return s.ch
}

// Close tells the producer the consumer has stopped. Safe to call more than
// once.
func (s *InputStream) Close() {
	s.once.Do(func() { close(s.done) })
}

// Drain consumes the whole stream into a slice.
func (s *InputStream) Drain() []value.Value {
	var out []value.Value
	for v := range s.ch {
		out = append(out, v)
	}
	return out
}

// ReturnKind identifies one item of a command's result stream.
type ReturnKind int

const (
	// ReturnPlainValue is ordinary output, forwarded downstream.
	ReturnPlainValue ReturnKind = iota
	// ReturnDebugValue is rendered to a width-bounded textual form and
	// forwarded as a string value.
	ReturnDebugValue
	// ReturnAction is a control directive consumed by the driver, never
	// forwarded downstream.
	ReturnAction
	// ReturnErr records an error and truncates the stage's remaining output.
	ReturnErr
)

// ReturnValue is one item produced by an internal command.
type ReturnValue struct {
	Kind   ReturnKind
	Value  value.Value        // ReturnPlainValue, ReturnDebugValue
	Action *CommandAction     // ReturnAction
	Err    *errors.ShellError // ReturnErr
}

// OfValue wraps ordinary output.
func OfValue(v value.Value) ReturnValue {
	return ReturnValue{Kind: ReturnPlainValue, Value: v}
}

// OfDebugValue wraps output destined for pretty debug rendering.
func OfDebugValue(v value.Value) ReturnValue {
	return ReturnValue{Kind: ReturnDebugValue, Value: v}
}

// OfAction wraps a control directive.
func OfAction(a *CommandAction) ReturnValue {
	return ReturnValue{Kind: ReturnAction, Action: a}
}

// OfError wraps a failure.
func OfError(err *errors.ShellError) ReturnValue {
	return ReturnValue{Kind: ReturnErr, Err: err}
}

// OutputStream is the lazy result sequence of one internal command. Same
// discipline as InputStream: the consumer buffers at most one item ahead.
type OutputStream struct {
	ch   chan ReturnValue
	done chan struct{}
	once sync.Once
}

// NewOutputStream starts a producer for a command result sequence.
func NewOutputStream(produce func(out *OutputStream)) *OutputStream {
	s := &OutputStream{
		ch:   make(chan ReturnValue),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.ch)
		produce(s)
	}()
	return s
}

// OutputFromReturnValues creates a result stream over a fixed item sequence.
func OutputFromReturnValues(items ...ReturnValue) *OutputStream {
	return NewOutputStream(func(out *OutputStream) {
		for _, item := range items {
			if !out.Send(item) {
				return
			}
		}
	})
}

// Send delivers one result item. It reports false once the driver has closed
// the stream.
func (s *OutputStream) Send(rv ReturnValue) bool {
	select {
	case s.ch <- rv:
		return true
	case <-s.done:
		return false
	}
}

// Values returns the channel the driver drains.
func (s *OutputStream) Values() <-chan ReturnValue {
	return s.ch
}

// Close tells the producer the driver has stopped consuming.
func (s *OutputStream) Close() {
	s.once.Do(func() { close(s.done) })
}

// ClassifiedInputStream is the transport between pipeline stages. Exactly one
// of the two sides is meaningful per instance: Objects carries a lazy typed
// value sequence, Stdin carries a previous external stage's raw stdout so
// external-to-external chains avoid decode round-trips.
type ClassifiedInputStream struct {
	Objects *InputStream
	Stdin   io.ReadCloser
}

// NewClassifiedInputStream returns the stream a pipeline starts with when it
// has no input: a single nothing value with unknown provenance.
func NewClassifiedInputStream() ClassifiedInputStream {
	return ClassifiedInputStream{
		Objects: InputFromValues(value.Nothing().IntoUntaggedValue()),
	}
}

// FromInputStream wraps a typed value sequence.
func FromInputStream(s *InputStream) ClassifiedInputStream {
	return ClassifiedInputStream{Objects: s}
}

// FromStdout wraps a raw subprocess stdout handle, leaving the typed side
// empty.
func FromStdout(stdout io.ReadCloser) ClassifiedInputStream {
	return ClassifiedInputStream{
		Objects: InputFromValues(),
		Stdin:   stdout,
	}
}
