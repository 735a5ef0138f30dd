// Package summary handles monthly KPI aggregation commands
package summary

import (
	"github.com/spf13/cobra"

	"github.com/Mohamed-68/pnl-report/cmd/root"
	"github.com/Mohamed-68/pnl-report/internal/accounts"
	"github.com/Mohamed-68/pnl-report/internal/aggregator"
	"github.com/Mohamed-68/pnl-report/internal/common"
	"github.com/Mohamed-68/pnl-report/internal/models"
	"github.com/Mohamed-68/pnl-report/internal/normalizer"
)

var byAccountFile string

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Roll a fact CSV up into monthly KPI aggregates",
	Long: `Roll a fact CSV up into one row per (month, scenario) with Revenue, COGS,
Opex and Other bucket sums and the derived GrossProfit, EBITDA and NetIncome
lines. Bucket membership comes from the accounts classification file.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().StringVar(&byAccountFile, "by-account", "", "Also write a per-account trial balance to this file")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Monthly summary command called")
	root.Log.Infof("Input fact CSV: %s", root.SharedFlags.Input)
	root.Log.Infof("Output aggregate CSV: %s", root.SharedFlags.Output)

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}

	facts := loadFacts()

	classifier, err := accounts.LoadClassifier(root.Cfg.Accounts.File)
	if err != nil {
		root.Log.Fatalf("Error loading account classification: %v", err)
	}

	var aggs []models.MonthlyAggregate
	if root.Cfg.Accounts.Strict {
		aggs, err = aggregator.AggregateStrict(facts, classifier)
	} else {
		aggs, err = aggregator.Aggregate(facts, classifier)
	}
	if err != nil {
		root.Log.Fatalf("Error aggregating facts: %v", err)
	}

	if err := common.WriteCSVFile(aggs, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error writing aggregate CSV: %v", err)
	}

	if byAccountFile != "" {
		balances := aggregator.AccountBalances(facts)
		if err := common.WriteCSVFile(balances, byAccountFile); err != nil {
			root.Log.Fatalf("Error writing account balance CSV: %v", err)
		}
	}

	root.Log.Info("Monthly summary completed successfully!")
}

// loadFacts reads the input CSV and normalizes it. Canonical extracts pass
// through unchanged; hand-edited ones get the same cleaning as raw data.
func loadFacts() []models.Fact {
	raws, err := common.ReadCSVFile[models.RawFact](root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading fact CSV: %v", err)
	}

	facts, err := normalizer.Normalize(raws, root.Cfg.Accounts.CodeWidth)
	if err != nil {
		root.Log.Fatalf("Error normalizing facts: %v", err)
	}
	return facts
}
