package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tara-vision/assist/internal/provider"
	"github.com/tara-vision/assist/internal/ui"
)

const listModelsTimeout = 30 * time.Second

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := loadSettings()
		client := provider.NewClient(settings.Host)

		ctx, cancel := context.WithTimeout(context.Background(), listModelsTimeout)
		defer cancel()

		models, err := client.ListModels(ctx)
		if err != nil {
			return fmt.Errorf("fetch models: %w", err)
		}

		fmt.Println()
		fmt.Print(ui.NewRenderer().FormatModels(models, settings.DefaultModel))
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
