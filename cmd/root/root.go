// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Mohamed-68/pnl-report/internal/accounts"
	"github.com/Mohamed-68/pnl-report/internal/aggregator"
	"github.com/Mohamed-68/pnl-report/internal/common"
	"github.com/Mohamed-68/pnl-report/internal/config"
	"github.com/Mohamed-68/pnl-report/internal/dateutils"
	"github.com/Mohamed-68/pnl-report/internal/logging"
	"github.com/Mohamed-68/pnl-report/internal/normalizer"
	"github.com/Mohamed-68/pnl-report/internal/quality"
	"github.com/Mohamed-68/pnl-report/internal/report"
	"github.com/Mohamed-68/pnl-report/internal/variance"
	"github.com/Mohamed-68/pnl-report/internal/workbook"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pnl-report",
		Short: "Actual-vs-Budget P&L reporting from raw fact extracts.",
		Long: `pnl-report turns a raw Profit & Loss fact extract into Actual-vs-Budget
KPI rollups (Revenue, COGS, OPEX, EBITDA) with variance columns, and runs
data-quality checks for duplicate fact rows and missing month/scenario
coverage.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to pnl-report!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Propagate the configured logger to every package with
			// its own log handle.
			appLog := logging.NewLogrusAdapterFromLogger(Log)
			common.SetLogger(appLog)
			dateutils.SetLogger(appLog)
			accounts.SetLogger(appLog)
			normalizer.SetLogger(appLog)
			aggregator.SetLogger(appLog)
			variance.SetLogger(appLog)
			quality.SetLogger(appLog)
			workbook.SetLogger(appLog)
			report.SetLogger(appLog)

			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
