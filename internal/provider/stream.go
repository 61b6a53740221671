package provider

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// streamChunk is the wire form of one streamed line. Pointer fields
// distinguish an absent key from a zero value, so diagnostic payloads
// like {"error":"..."} fail classification instead of rendering as an
// empty fragment.
type streamChunk struct {
	Response *string `json:"response"`
	Done     *bool   `json:"done"`
}

// classifyLine decodes one line of the streamed body. The second return
// is false for lines that should be skipped: empty lines, malformed
// JSON, and payloads missing the fragment fields.
func classifyLine(line []byte) (Fragment, bool) {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return Fragment{}, false
	}
	var chunk streamChunk
	if err := json.Unmarshal(trimmed, &chunk); err != nil {
		return Fragment{}, false
	}
	if chunk.Response == nil || chunk.Done == nil {
		return Fragment{}, false
	}
	return Fragment{Text: *chunk.Response, Done: *chunk.Done}, true
}

type flusher interface {
	Flush() error
}

// ConsumeStream reads newline-delimited fragments from r and renders
// each fragment's text to out immediately, flushing after every write
// so tokens appear as they arrive. Lines that fail to classify are
// skipped. Reading stops at the first fragment with done=true; any
// bytes still queued on the stream are discarded. A stream that ends
// without a final marker is treated as complete.
func ConsumeStream(r io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		frag, ok := classifyLine(scanner.Bytes())
		if !ok {
			continue
		}
		if _, err := io.WriteString(out, frag.Text); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if f, ok := out.(flusher); ok {
			if err := f.Flush(); err != nil {
				return fmt.Errorf("flush output: %w", err)
			}
		}
		if frag.Done {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stream: %w", err)
	}
	return nil
}
