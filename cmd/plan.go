package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/preplab/biosched/app"
	"github.com/preplab/biosched/config"
)

var (
	jsonOut string
	csvOut  string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Run the scheduling passes once and print the calendar",
	RunE:  planOnce,
}

func init() {
	planCmd.Flags().StringVar(&jsonOut, "json", "", "write the plan as JSON to this file")
	planCmd.Flags().StringVar(&csvOut, "csv", "", "write the schedule as CSV to this file")
	rootCmd.AddCommand(planCmd)
}

func planOnce(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	plan, in, err := svc.PlanOnce()
	if err != nil {
		return err
	}
	return svc.WriteOutputs(plan, in, jsonOut, csvOut)
}
