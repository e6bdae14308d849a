package main

import (
	"os"

	"github.com/spf13/cobra"

	"aster/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aster",
		Short: "Aster - support tickets and payment gateway service",
		Long:  `Aster serves the customer support ticket flow and the THeadPay payment gateway integration.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
