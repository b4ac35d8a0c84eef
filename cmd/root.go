package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "famsched",
	Short: "Family activity-scheduling assistant",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (defaults apply when omitted)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
