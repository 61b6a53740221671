package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

var markdownRenderer *glamour.TermRenderer

func init() {
	initMarkdownRenderer()
}

func initMarkdownRenderer() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
		glamour.WithEmoji(),
	)
	if err != nil {
		// Fallback: RenderMarkdown returns plain text.
		markdownRenderer = nil
	}
}

// RenderMarkdown renders a complete reply with syntax highlighting.
// Streaming output never goes through here; glamour only handles whole
// documents.
func RenderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(rendered)
}

// DisableMarkdown disables markdown rendering (returns plain text).
func DisableMarkdown() {
	markdownRenderer = nil
}

// IsMarkdownEnabled returns whether markdown rendering is available.
func IsMarkdownEnabled() bool {
	return markdownRenderer != nil
}
