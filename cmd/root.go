package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tara-vision/assist/internal/assistant"
	"github.com/tara-vision/assist/internal/config"
	"github.com/tara-vision/assist/internal/ui"
)

var (
	cfgFile string
	Version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "assist [prompt...]",
	Version: Version,
	Short:   "CLI client for local Ollama models",
	Long: `Assist forwards a prompt to a locally reachable Ollama server and
renders the reply, prepending a bounded snapshot of the current working
directory to the model's system instructions.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := strings.TrimSpace(strings.Join(args, " "))
		if prompt == "" {
			var err error
			prompt, err = readMultilinePrompt()
			if err != nil {
				return err
			}
		}
		if prompt == "" {
			fmt.Println(ui.WarningStyle.Render("No prompt provided. Use --help for usage information."))
			return nil
		}

		settings := loadSettings()
		asst, err := assistant.New(settings, !viper.GetBool("no_spinner"))
		if err != nil {
			return err
		}
		return asst.SendPrompt(prompt)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.assist/config.yaml)")
	rootCmd.PersistentFlags().String("host", "", "Ollama server URL (e.g. http://localhost:11434)")
	rootCmd.PersistentFlags().StringP("model", "m", "", "model to use (overrides default)")
	rootCmd.PersistentFlags().Float64P("temperature", "t", 0, "temperature for generation (0.0 to 1.0)")
	rootCmd.PersistentFlags().Bool("no-stream", false, "disable streaming output (show response all at once)")
	rootCmd.PersistentFlags().Bool("no-context", false, "disable the workspace context packet")
	rootCmd.PersistentFlags().Bool("no-spinner", false, "disable spinner animations")
	rootCmd.PersistentFlags().Bool("no-markdown", false, "disable markdown rendering of non-streaming replies")

	viper.BindPFlag(config.KeyHost, rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag(config.KeyDefaultModel, rootCmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag(config.KeyTemperature, rootCmd.PersistentFlags().Lookup("temperature"))
	viper.BindPFlag("no_stream", rootCmd.PersistentFlags().Lookup("no-stream"))
	viper.BindPFlag("no_context", rootCmd.PersistentFlags().Lookup("no-context"))
	viper.BindPFlag("no_spinner", rootCmd.PersistentFlags().Lookup("no-spinner"))
	viper.BindPFlag("no_markdown", rootCmd.PersistentFlags().Lookup("no-markdown"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := config.Dir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		viper.AddConfigPath(dir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("ASSIST")
	viper.AutomaticEnv()
	config.SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			// First run: persist the defaults so `config show` has a file.
			_ = config.Save()
		}
	}
}

// loadSettings snapshots configuration once per invocation and applies
// the inverted convenience flags.
func loadSettings() config.Settings {
	settings := config.Load()
	if viper.GetBool("no_stream") {
		settings.Stream = false
	}
	if viper.GetBool("no_context") {
		settings.ContextEnabled = false
	}
	if viper.GetBool("no_markdown") {
		ui.DisableMarkdown()
	}
	return settings
}
