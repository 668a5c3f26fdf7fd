package main

import (
	"github.com/spf13/cobra"

	"github.com/basel-ax/dalleimg/internal/scheduler"
)

func newScheduleCmd() *cobra.Command {
	var spec string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the pipeline on a cron schedule until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if spec == "" {
				spec = a.Cfg.Schedule
			}

			s, err := scheduler.New(spec, a.Cfg.Location(), a.Pipeline, a.Logger)
			if err != nil {
				return err
			}

			err = s.Run(cmd.Context())
			a.Logger.Info("Shutting down gracefully...")
			return err
		},
	}

	cmd.Flags().StringVar(&spec, "schedule", "", "cron spec with seconds field (default from SCHEDULE)")
	return cmd
}
