package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/basel-ax/dalleimg/internal/app"
	"github.com/basel-ax/dalleimg/internal/config"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dalleimg",
		Short: "Generate an AI image for a random quote and archive it",
		Long: `dalleimg fetches a random quote, picks an image style, asks the OpenAI
Images API for a picture of "<quote> - <style>", stores the image in object
storage and prepends an entry to the JSON manifest next to it.

Configuration comes from the environment (and an optional .env file).`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newScheduleCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newHistoryCmd())

	return cmd
}

// loadApp loads the configuration and wires the application
func loadApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg)
}
