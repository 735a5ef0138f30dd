// Package report handles variance report generation commands
package report

import (
	"github.com/spf13/cobra"

	"github.com/Mohamed-68/pnl-report/cmd/root"
	"github.com/Mohamed-68/pnl-report/internal/accounts"
	"github.com/Mohamed-68/pnl-report/internal/calendar"
	"github.com/Mohamed-68/pnl-report/internal/common"
	"github.com/Mohamed-68/pnl-report/internal/models"
	"github.com/Mohamed-68/pnl-report/internal/pipeline"
	reportgen "github.com/Mohamed-68/pnl-report/internal/report"
)

var format string

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Build the Actual-vs-Budget variance report from a fact CSV",
	Long: `Build the Actual-vs-Budget variance report: one row per month with each
KPI's actual, budget, variance and variance percentage side by side.
A scenario missing for a month is reported as null, not zero.`,
	Run: reportFunc,
}

func init() {
	Cmd.Flags().StringVar(&format, "format", "", "Output format: csv or json (default from config)")
}

func reportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Variance report command called")
	root.Log.Infof("Input fact CSV: %s", root.SharedFlags.Input)
	root.Log.Infof("Output report file: %s", root.SharedFlags.Output)

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}

	if format == "" {
		format = root.Cfg.Report.Format
	}
	if err := reportgen.ValidateFormat(format); err != nil {
		root.Log.Fatalf("Invalid report format: %v", err)
	}

	raws, err := common.ReadCSVFile[models.RawFact](root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading fact CSV: %v", err)
	}

	classifier, err := accounts.LoadClassifier(root.Cfg.Accounts.File)
	if err != nil {
		root.Log.Fatalf("Error loading account classification: %v", err)
	}

	result, err := pipeline.Run(raws, classifier, calendar.Calendar{}, pipeline.Options{
		CodeWidth: root.Cfg.Accounts.CodeWidth,
		Strict:    root.Cfg.Accounts.Strict,
	})
	if err != nil {
		root.Log.Fatalf("Error running reporting pipeline: %v", err)
	}

	if err := reportgen.Write(result.Variances, root.SharedFlags.Output, format); err != nil {
		root.Log.Fatalf("Error writing variance report: %v", err)
	}
	root.Log.Info("Variance report completed successfully!")
}
