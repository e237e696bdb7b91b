package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "klimatshop",
	Short: "КЛИМАТ ТЕХНО - air conditioner shop backend",
	Long: `Backend for the КЛИМАТ ТЕХНО air conditioner shop.

Runs the HTTP storefront API, the Telegram admin bot, and the
database backup utility.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
