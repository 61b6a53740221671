package assistant

import (
	gocontext "context"
	"fmt"
	"io"
	"os"

	"github.com/tara-vision/assist/internal/config"
	"github.com/tara-vision/assist/internal/context"
	"github.com/tara-vision/assist/internal/provider"
	"github.com/tara-vision/assist/internal/ui"
)

// Assistant runs one prompt through the full pipeline: workspace scan,
// request composition, network call, rendering. The stages are strictly
// sequential on the calling goroutine.
type Assistant struct {
	settings      config.Settings
	client        *provider.Client
	renderer      *ui.Renderer
	workingDir    string
	enableSpinner bool
}

// New creates an assistant from an immutable settings snapshot. Failing
// to resolve the working directory is fatal: no request is made.
func New(settings config.Settings, enableSpinner bool) (*Assistant, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	return &Assistant{
		settings:      settings,
		client:        provider.NewClient(settings.Host),
		renderer:      ui.NewRenderer(),
		workingDir:    workingDir,
		enableSpinner: enableSpinner,
	}, nil
}

// Client returns the underlying server client.
func (a *Assistant) Client() *provider.Client {
	return a.client
}

// SendPrompt forwards the prompt to the server and renders the reply,
// streaming it token by token when streaming is enabled.
func (a *Assistant) SendPrompt(prompt string) error {
	fmt.Printf("\n%s\n", a.renderer.ThinkingLine(a.settings.DefaultModel))

	limits := context.DefaultLimits(a.settings.MaxFiles, a.settings.MaxFileBytes)
	packet := context.BuildPacket(a.workingDir, limits, a.settings.ContextEnabled)
	req := provider.ComposeRequest(
		a.settings.DefaultModel,
		prompt,
		a.settings.SystemPrompt,
		packet,
		a.settings.Temperature,
		a.settings.Stream,
	)

	ctx, cancel := gocontext.WithTimeout(gocontext.Background(), provider.GenerateTimeout)
	defer cancel()

	var spinner *ui.Spinner
	if a.enableSpinner {
		spinner = ui.NewSpinner()
		spinner.Start("thinking...")
		defer spinner.Stop()
	}

	if req.Stream {
		sink := &streamSink{w: os.Stdout, onFirst: func() {
			if spinner != nil {
				spinner.Stop()
			}
			fmt.Println(a.renderer.Divider())
			fmt.Print(a.renderer.AssistantLabel())
		}}
		if err := a.client.GenerateStream(ctx, req, sink); err != nil {
			return err
		}
		if sink.started {
			fmt.Printf("\n%s\n", a.renderer.Divider())
		}
		return nil
	}

	reply, err := a.client.Generate(ctx, req)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	fmt.Println(a.renderer.Divider())
	if ui.IsMarkdownEnabled() {
		fmt.Println(a.renderer.AssistantLabel())
		fmt.Println(ui.RenderMarkdown(reply))
	} else {
		fmt.Printf("%s%s\n", a.renderer.AssistantLabel(), reply)
	}
	fmt.Println(a.renderer.Divider())
	return nil
}

// streamSink forwards fragment text to the terminal, running a hook
// before the first fragment so the spinner is cleared and the reply
// header printed only once tokens actually arrive.
type streamSink struct {
	w       io.Writer
	onFirst func()
	started bool
}

func (s *streamSink) Write(p []byte) (int, error) {
	if !s.started {
		s.started = true
		if s.onFirst != nil {
			s.onFirst()
		}
	}
	return s.w.Write(p)
}

func (s *streamSink) Flush() error {
	if f, ok := s.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
