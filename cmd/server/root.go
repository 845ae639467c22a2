package main

import (
	"fmt"
	"os"

	"registrant-auth/internal/config"
	"registrant-auth/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "registrant-auth",
	Short: "Session issuance and authentication for registrants",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = c
		logger.Init(cfg.LogLevel, cfg.LogFormat)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
}
