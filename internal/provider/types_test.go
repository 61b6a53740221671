package provider

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	wctx "github.com/tara-vision/assist/internal/context"
)

func TestComposeRequestPassthrough(t *testing.T) {
	req := ComposeRequest("llama3.2", "why is the sky blue", "be brief", "", 0.4, true)
	if req.Model != "llama3.2" || req.Prompt != "why is the sky blue" ||
		req.Temperature != 0.4 || !req.Stream {
		t.Errorf("Fields not passed through unchanged: %+v", req)
	}
	if req.System != "be brief" {
		t.Errorf("Empty packet should leave the instruction alone, got %q", req.System)
	}
}

func TestComposeRequestRoundTrip(t *testing.T) {
	dir, err := os.MkdirTemp("", "assist-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# hi"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	limits := wctx.DefaultLimits(10, 1024)
	packet := wctx.BuildPacket(dir, limits, true)
	if packet == "" {
		t.Fatal("Expected a non-empty packet")
	}

	instruction := "single-line instruction"
	req := ComposeRequest("m", "p", instruction, packet, 0.7, false)

	gotInstruction, gotPacket, found := strings.Cut(req.System, "\n")
	if !found {
		t.Fatal("System field missing the separating newline")
	}
	if gotInstruction != instruction {
		t.Errorf("Instruction mangled: %q", gotInstruction)
	}
	if gotPacket != packet {
		t.Errorf("Packet mangled:\nwant %q\ngot  %q", packet, gotPacket)
	}
}
