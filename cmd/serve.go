package cmd

import "github.com/spf13/cobra"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Plan once and serve metrics until interrupted",
	RunE:  run,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
