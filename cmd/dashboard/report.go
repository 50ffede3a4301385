package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func reportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "print the dashboard views as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			report := map[string]any{
				"stats":      a.agg.Stats(ctx),
				"activity":   a.agg.RecentActivity(ctx),
				"sales":      a.agg.Sales(ctx),
				"categories": a.agg.CategoryBreakdown(ctx),
				"financial":  a.agg.Financial(ctx),
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
}
