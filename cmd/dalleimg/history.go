package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent runs recorded in Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if a.History == nil {
				return errors.New("run history is disabled; set DB_HOST to enable it")
			}

			generations, err := a.History.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to read run history: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tSTATUS\tKEY\tDESCRIPTION\tERROR")
			for _, g := range generations {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					g.CreatedAt.In(a.Cfg.Location()).Format(time.DateTime), g.Status, g.ImageKey, g.Description, g.Error)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to show")
	return cmd
}
