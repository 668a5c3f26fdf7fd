package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/basel-ax/dalleimg/internal/handler"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the pipeline once and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			result := a.Pipeline.Run(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), string(handler.Body(result)))

			if result.StatusCode != http.StatusOK {
				return fmt.Errorf("run %s failed with status %d", result.RunID, result.StatusCode)
			}
			return nil
		},
	}
}
