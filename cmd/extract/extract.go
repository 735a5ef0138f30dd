// Package extract handles workbook-to-fact-CSV extraction commands
package extract

import (
	"github.com/spf13/cobra"

	"github.com/Mohamed-68/pnl-report/cmd/root"
	"github.com/Mohamed-68/pnl-report/internal/common"
	"github.com/Mohamed-68/pnl-report/internal/models"
	"github.com/Mohamed-68/pnl-report/internal/normalizer"
	"github.com/Mohamed-68/pnl-report/internal/workbook"
)

var sheetName string

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract P&L fact rows from an Excel workbook",
	Long: `Extract P&L fact rows from an Excel workbook into a canonical fact CSV.
Both the clean FactPnL_Monthly layout and the wide "Actual P&L <year>" /
"Budget P&L <year>" sheet layouts are supported; wide sheets are unpivoted
into one row per (month, scenario, account).`,
	Run: extractFunc,
}

func init() {
	Cmd.Flags().StringVar(&sheetName, "sheet", "", "Extract a single named sheet instead of the whole workbook")
}

func extractFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Workbook extract command called")
	root.Log.Infof("Input workbook: %s", root.SharedFlags.Input)
	root.Log.Infof("Output fact CSV: %s", root.SharedFlags.Output)

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}

	var (
		raws []models.RawFact
		err  error
	)
	if sheetName != "" {
		raws, err = workbook.ExtractSheet(root.SharedFlags.Input, sheetName)
	} else {
		raws, err = workbook.Extract(root.SharedFlags.Input)
	}
	if err != nil {
		root.Log.Fatalf("Error extracting workbook: %v", err)
	}

	// The extract output is canonical, so downstream commands can consume
	// it without re-cleaning.
	facts, err := normalizer.Normalize(raws, root.Cfg.Accounts.CodeWidth)
	if err != nil {
		root.Log.Fatalf("Error normalizing extracted rows: %v", err)
	}

	if err := common.WriteCSVFile(facts, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing fact CSV: %v", err)
	}
	root.Log.Info("Workbook extraction completed successfully!")
}
