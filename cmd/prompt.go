package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/tara-vision/assist/internal/ui"
)

// readMultilinePrompt collects an interactive prompt from the terminal.
// Input ends at EOF (Ctrl+D) or a line containing only "END"; Ctrl+C
// aborts with an empty prompt.
func readMultilinePrompt() (string, error) {
	fmt.Println(ui.Subtle.Render("Enter your prompt (Ctrl+D or 'END' on a new line to finish):"))

	rl, err := readline.New("> ")
	if err != nil {
		return "", fmt.Errorf("setup input: %w", err)
	}
	defer rl.Close()

	var lines []string
	for {
		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err == readline.ErrInterrupt {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		if strings.TrimSpace(line) == "END" {
			break
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
