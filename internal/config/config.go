package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Viper keys for persisted settings
const (
	KeyDefaultModel = "default_model"
	KeyHost         = "host"
	KeyTemperature  = "temperature"
	KeyStream       = "stream"
	KeySystemPrompt = "system_prompt"
	KeyContext      = "context"
	KeyMaxFiles     = "max_files"
	KeyMaxFileBytes = "max_file_bytes"
)

// DefaultSystemPrompt is the static instruction prepended to every request.
// The workspace context packet, when enabled, is appended below it.
const DefaultSystemPrompt = `You are a helpful AI assistant running in the user's terminal. Answer concisely and use the workspace context below when it is relevant to the question.`

// Settings is a single immutable snapshot of configuration, taken once
// per invocation. Components receive it by value and never observe it
// changing mid-run.
type Settings struct {
	DefaultModel   string
	Host           string
	Temperature    float64
	Stream         bool
	SystemPrompt   string
	ContextEnabled bool
	MaxFiles       int
	MaxFileBytes   int
}

// Defaults returns the out-of-the-box settings.
func Defaults() Settings {
	return Settings{
		DefaultModel:   "llama3.2",
		Host:           "http://host.docker.internal:11434",
		Temperature:    0.7,
		Stream:         true,
		SystemPrompt:   DefaultSystemPrompt,
		ContextEnabled: true,
		MaxFiles:       50,
		MaxFileBytes:   64 * 1024,
	}
}

// SetDefaults registers the default values with viper so that a missing
// config file or a partially written one still yields a full snapshot.
func SetDefaults() {
	d := Defaults()
	viper.SetDefault(KeyDefaultModel, d.DefaultModel)
	viper.SetDefault(KeyHost, d.Host)
	viper.SetDefault(KeyTemperature, d.Temperature)
	viper.SetDefault(KeyStream, d.Stream)
	viper.SetDefault(KeySystemPrompt, d.SystemPrompt)
	viper.SetDefault(KeyContext, d.ContextEnabled)
	viper.SetDefault(KeyMaxFiles, d.MaxFiles)
	viper.SetDefault(KeyMaxFileBytes, d.MaxFileBytes)
}

// Load snapshots the current viper state into an immutable Settings value.
// Call after cobra/viper initialization so flags and env are merged in.
func Load() Settings {
	return Settings{
		DefaultModel:   viper.GetString(KeyDefaultModel),
		Host:           viper.GetString(KeyHost),
		Temperature:    viper.GetFloat64(KeyTemperature),
		Stream:         viper.GetBool(KeyStream),
		SystemPrompt:   viper.GetString(KeySystemPrompt),
		ContextEnabled: viper.GetBool(KeyContext),
		MaxFiles:       viper.GetInt(KeyMaxFiles),
		MaxFileBytes:   viper.GetInt(KeyMaxFileBytes),
	}
}

// Dir returns the assist config directory, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	dir := filepath.Join(home, ".assist")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return dir, nil
}

// Path returns the config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Save persists the current viper state to the config file.
func Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// SetDefaultModel updates the persisted default model.
func SetDefaultModel(model string) error {
	viper.Set(KeyDefaultModel, model)
	return Save()
}

// Reset restores all persisted settings to their defaults.
func Reset() error {
	d := Defaults()
	viper.Set(KeyDefaultModel, d.DefaultModel)
	viper.Set(KeyHost, d.Host)
	viper.Set(KeyTemperature, d.Temperature)
	viper.Set(KeyStream, d.Stream)
	viper.Set(KeySystemPrompt, d.SystemPrompt)
	viper.Set(KeyContext, d.ContextEnabled)
	viper.Set(KeyMaxFiles, d.MaxFiles)
	viper.Set(KeyMaxFileBytes, d.MaxFileBytes)
	return Save()
}
