package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "dashboard",
		Short:        "in-memory admin dashboard service",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		serveCommand(),
		reportCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
