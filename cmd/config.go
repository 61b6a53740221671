package cmd

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/tara-vision/assist/internal/config"
	"github.com/tara-vision/assist/internal/provider"
	"github.com/tara-vision/assist/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change persisted configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig()
	},
}

var configSetDefaultCmd = &cobra.Command{
	Use:   "set-default [model]",
	Short: "Set the default model (interactive when no model is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model := ""
		if len(args) == 1 {
			model = args[0]
		} else {
			picked, err := pickModel()
			if err != nil {
				return err
			}
			model = picked
		}

		if err := config.SetDefaultModel(model); err != nil {
			return err
		}
		fmt.Println(ui.NewRenderer().SuccessMessage("Default model set to: " + model))
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset configuration to defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Reset(); err != nil {
			return err
		}
		fmt.Println(ui.NewRenderer().SuccessMessage("Configuration reset to defaults"))
		return showConfig()
	},
}

func showConfig() error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Print(ui.NewRenderer().FormatSettings(loadSettings(), path))
	fmt.Println()
	return nil
}

// pickModel lets the user choose a default model from the server's
// listing.
func pickModel() (string, error) {
	settings := loadSettings()
	client := provider.NewClient(settings.Host)

	ctx, cancel := context.WithTimeout(context.Background(), listModelsTimeout)
	defer cancel()

	models, err := client.ListModels(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch models: %w", err)
	}
	if len(models) == 0 {
		return "", fmt.Errorf("no models available on %s", settings.Host)
	}

	names := make([]string, 0, len(models))
	for _, m := range models {
		names = append(names, m.Name)
	}

	prompt := promptui.Select{
		Label: "Default model",
		Items: names,
		Size:  10,
	}
	_, choice, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("select model: %w", err)
	}
	return choice, nil
}

func init() {
	configCmd.AddCommand(configSetDefaultCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}
