package ui

import (
	"fmt"
	"strings"

	"github.com/tara-vision/assist/internal/config"
	"github.com/tara-vision/assist/internal/provider"
)

// Renderer handles all styled console output.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Divider returns the horizontal rule printed around replies.
func (r *Renderer) Divider() string {
	return Subtle.Render(strings.Repeat("─", 60))
}

// ThinkingLine returns the status shown while waiting for the server.
func (r *Renderer) ThinkingLine(model string) string {
	return fmt.Sprintf("%s %s", Subtle.Render("Using"), ModelStyle.Render(model))
}

// AssistantLabel returns the prefix printed before the reply text.
func (r *Renderer) AssistantLabel() string {
	return TitleStyle.Render("Assistant:") + " "
}

// ErrorMessage formats an error message.
func (r *Renderer) ErrorMessage(err error) string {
	return ErrorStyle.Render(fmt.Sprintf("%s Error: %v", IconError, err))
}

// WarningMessage formats a warning message.
func (r *Renderer) WarningMessage(msg string) string {
	return WarningStyle.Render(fmt.Sprintf("%s %s", IconWarning, msg))
}

// SuccessMessage formats a success message.
func (r *Renderer) SuccessMessage(msg string) string {
	return SuccessStyle.Render(fmt.Sprintf("%s %s", IconSuccess, msg))
}

// FormatModels formats the server's model listing, starring the
// configured default.
func (r *Renderer) FormatModels(models []provider.ModelInfo, defaultModel string) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Available Models:") + "\n")
	sb.WriteString(r.Divider() + "\n")

	if len(models) == 0 {
		sb.WriteString("  " + ErrorStyle.Render("No models found") + "\n")
		return sb.String()
	}

	for _, m := range models {
		marker := ""
		if m.Name == defaultModel {
			marker = " " + IconStar
		}
		if m.Size > 0 {
			sb.WriteString(fmt.Sprintf("  %s (%d MB)%s\n",
				SuccessStyle.Render(m.Name), m.Size/(1024*1024), marker))
		} else {
			sb.WriteString(fmt.Sprintf("  %s%s\n", SuccessStyle.Render(m.Name), marker))
		}
	}
	return sb.String()
}

// FormatSettings formats the current configuration snapshot.
func (r *Renderer) FormatSettings(s config.Settings, configPath string) string {
	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Current Configuration:") + "\n")
	sb.WriteString(r.Divider() + "\n")
	fmt.Fprintf(&sb, "  %s: %s\n", Bold.Render("Default Model"), SuccessStyle.Render(s.DefaultModel))
	fmt.Fprintf(&sb, "  %s: %s\n", Bold.Render("Host"), s.Host)
	fmt.Fprintf(&sb, "  %s: %g\n", Bold.Render("Temperature"), s.Temperature)
	fmt.Fprintf(&sb, "  %s: %t\n", Bold.Render("Stream"), s.Stream)
	fmt.Fprintf(&sb, "  %s: %t\n", Bold.Render("Workspace Context"), s.ContextEnabled)
	fmt.Fprintf(&sb, "  %s: %d\n", Bold.Render("Max Files"), s.MaxFiles)
	fmt.Fprintf(&sb, "  %s: %d\n", Bold.Render("Max File Bytes"), s.MaxFileBytes)
	fmt.Fprintf(&sb, "  %s: %s\n", Bold.Render("Config Path"), Subtle.Render(configPath))
	return sb.String()
}
