package assistant

import (
	"bytes"
	"testing"
)

type flushBuffer struct {
	bytes.Buffer
	flushes int
}

func (f *flushBuffer) Flush() error {
	f.flushes++
	return nil
}

func TestStreamSinkRunsHookOnceBeforeFirstWrite(t *testing.T) {
	var out bytes.Buffer
	calls := 0
	sink := &streamSink{w: &out, onFirst: func() { calls++ }}

	sink.Write([]byte("a"))
	sink.Write([]byte("b"))

	if calls != 1 {
		t.Errorf("Expected hook to run once, ran %d times", calls)
	}
	if out.String() != "ab" {
		t.Errorf("Expected %q, got %q", "ab", out.String())
	}
	if !sink.started {
		t.Error("Sink should record that output started")
	}
}

func TestStreamSinkFlushPassthrough(t *testing.T) {
	out := &flushBuffer{}
	sink := &streamSink{w: out}

	if err := sink.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if out.flushes != 1 {
		t.Errorf("Expected flush to pass through, got %d", out.flushes)
	}
}

func TestStreamSinkFlushWithoutFlusher(t *testing.T) {
	sink := &streamSink{w: &bytes.Buffer{}}
	if err := sink.Flush(); err != nil {
		t.Errorf("Flush on plain writer should be a no-op, got %v", err)
	}
}
