package main

import (
	"fmt"

	"registrant-auth/internal/auth/credentials"

	"github.com/spf13/cobra"
)

// digestCmd prints the value to configure as SESSION_GENERATION_PHRASE.
var digestCmd = &cobra.Command{
	Use:   "digest <passphrase>",
	Short: "Print the configuration digest of a session generation passphrase",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), credentials.HashSecret(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(digestCmd)
}
