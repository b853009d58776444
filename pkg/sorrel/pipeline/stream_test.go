package pipeline

import (
	"testing"
	"time"

	"github.com/sambeau/sorrel/pkg/sorrel/value"
)

func TestInputStreamPreservesOrder(t *testing.T) {
	s := InputFromValues(
		value.String("a").IntoUntaggedValue(),
		value.String("b").IntoUntaggedValue(),
		value.String("c").IntoUntaggedValue(),
	)

	got := s.Drain()
	if len(got) != 3 {
		t.Fatalf("drained %d values, want 3", len(got))
	}
	for i, expected := range []string{"a", "b", "c"} {
		if got[i].Value.Primitive.Str != expected {
			t.Errorf("value %d = %q, want %q", i, got[i].Value.Primitive.Str, expected)
		}
	}
}

func TestCloseUnblocksProducer(t *testing.T) {
	finished := make(chan struct{})
	s := NewInputStream(func(out *InputStream) {
		defer close(finished)
		for i := 0; ; i++ {
			if !out.Send(value.IntFromInt64(int64(i)).IntoUntaggedValue()) {
				return
			}
		}
	})

	<-s.Values()
	s.Close()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("producer did not unwind after Close")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	s := InputFromValues(value.String("x").IntoUntaggedValue())
	s.Close()
	s.Close()
}

func TestOutputStreamCarriesAllKinds(t *testing.T) {
	s := OutputFromReturnValues(
		OfValue(value.String("plain").IntoUntaggedValue()),
		OfAction(NextShell()),
		OfError(nil),
	)

	var kinds []ReturnKind
	for item := range s.Values() {
		kinds = append(kinds, item.Kind)
	}
	expected := []ReturnKind{ReturnPlainValue, ReturnAction, ReturnErr}
	if len(kinds) != len(expected) {
		t.Fatalf("kinds = %v", kinds)
	}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Errorf("kind %d = %v, want %v", i, kinds[i], expected[i])
		}
	}
}

func TestEmptyPipelineInput(t *testing.T) {
	input := NewClassifiedInputStream()

	got := input.Objects.Drain()
	if len(got) != 1 {
		t.Fatalf("drained %d values, want 1", len(got))
	}
	if !got[0].IsNothing() {
		t.Errorf("value = %v, want nothing", got[0].Value)
	}
	if input.Stdin != nil {
		t.Error("fresh pipeline input should have no raw stdin")
	}
}
