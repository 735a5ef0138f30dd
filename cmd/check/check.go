// Package check handles data-quality check commands
package check

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Mohamed-68/pnl-report/cmd/root"
	"github.com/Mohamed-68/pnl-report/internal/calendar"
	"github.com/Mohamed-68/pnl-report/internal/common"
	"github.com/Mohamed-68/pnl-report/internal/models"
	"github.com/Mohamed-68/pnl-report/internal/normalizer"
	"github.com/Mohamed-68/pnl-report/internal/quality"
)

var (
	calendarFile   string
	yearRange      string
	duplicatesFile string
	coverageFile   string
	strict         bool
)

// Cmd represents the check command
var Cmd = &cobra.Command{
	Use:   "check",
	Short: "Run data-quality checks over a fact CSV",
	Long: `Run the data-quality checks: duplicate (month, scenario, account) keys,
and coverage gaps against an expected calendar of month-ends. The calendar
comes from a dim-date CSV (--calendar) or an explicit year range (--years);
the coverage check is skipped when neither is given.

With --strict the command fails when any issue is found, so it can gate a
reporting run in CI.`,
	RunE: checkFunc,
}

func init() {
	Cmd.Flags().StringVar(&calendarFile, "calendar", "", "Dim-date CSV listing expected month-end dates")
	Cmd.Flags().StringVar(&yearRange, "years", "", "Expected year range, e.g. 2020-2024")
	Cmd.Flags().StringVar(&duplicatesFile, "duplicates", "", "Write the duplicate-key report to this file")
	Cmd.Flags().StringVar(&coverageFile, "coverage", "", "Write the coverage-gap report to this file")
	Cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any issue is found")
}

// checkOptions carries one check run's resolved inputs.
type checkOptions struct {
	inputFile      string
	codeWidth      int
	cal            calendar.Calendar
	haveCalendar   bool
	duplicatesFile string
	coverageFile   string
	strict         bool
}

func checkFunc(cmd *cobra.Command, args []string) error {
	root.Log.Info("Data-quality check command called")
	root.Log.Infof("Input fact CSV: %s", root.SharedFlags.Input)

	if root.SharedFlags.Input == "" {
		return fmt.Errorf("--input is required")
	}

	cal, checked, err := loadCalendar()
	if err != nil {
		return err
	}

	if err := runChecks(checkOptions{
		inputFile:      root.SharedFlags.Input,
		codeWidth:      root.Cfg.Accounts.CodeWidth,
		cal:            cal,
		haveCalendar:   checked,
		duplicatesFile: duplicatesFile,
		coverageFile:   coverageFile,
		strict:         strict,
	}); err != nil {
		return err
	}
	root.Log.Info("Data-quality checks completed successfully!")
	return nil
}

// runChecks reads and normalizes the fact CSV, runs the duplicate and
// coverage checks, writes the requested reports, and fails in strict mode
// when any issue is found.
func runChecks(opts checkOptions) error {
	raws, err := common.ReadCSVFile[models.RawFact](opts.inputFile)
	if err != nil {
		return fmt.Errorf("error reading fact CSV: %w", err)
	}
	facts, err := normalizer.Normalize(raws, opts.codeWidth)
	if err != nil {
		return fmt.Errorf("error normalizing facts: %w", err)
	}

	duplicates := quality.Duplicates(facts)
	root.Log.Infof("Duplicate fact keys: %d", len(duplicates))
	if opts.duplicatesFile != "" {
		if duplicates == nil {
			// A clean dataset still gets a report file, with just the header.
			duplicates = []models.DuplicateGroup{}
		}
		if err := common.WriteCSVFile(duplicates, opts.duplicatesFile); err != nil {
			return fmt.Errorf("error writing duplicate report: %w", err)
		}
	}

	var gaps []models.CoverageGap
	if opts.haveCalendar {
		gaps = quality.Coverage(facts, opts.cal)
		root.Log.Infof("Coverage gaps: %d", len(gaps))
		if opts.coverageFile != "" {
			out := gaps
			if out == nil {
				out = []models.CoverageGap{}
			}
			if err := common.WriteCSVFile(out, opts.coverageFile); err != nil {
				return fmt.Errorf("error writing coverage report: %w", err)
			}
		}
	} else {
		root.Log.Warn("No calendar given, skipping coverage check")
	}

	if opts.strict && (len(duplicates) > 0 || len(gaps) > 0) {
		return fmt.Errorf("quality checks failed: %d duplicate keys, %d coverage gaps",
			len(duplicates), len(gaps))
	}
	return nil
}

// loadCalendar resolves the expected calendar from the --calendar file or
// the --years range. The second return value is false when neither flag was
// given.
func loadCalendar() (calendar.Calendar, bool, error) {
	if calendarFile != "" {
		cal, err := calendar.LoadDimDateCSV(calendarFile)
		if err != nil {
			return calendar.Calendar{}, false, fmt.Errorf("error loading calendar: %w", err)
		}
		return cal, true, nil
	}

	if yearRange != "" {
		from, to, err := parseYearRange(yearRange)
		if err != nil {
			return calendar.Calendar{}, false, fmt.Errorf("invalid --years value: %w", err)
		}
		cal, err := calendar.Generate(from, to)
		if err != nil {
			return calendar.Calendar{}, false, fmt.Errorf("error generating calendar: %w", err)
		}
		return cal, true, nil
	}

	return calendar.Calendar{}, false, nil
}

// parseYearRange parses "2020-2024" or a single year "2024".
func parseYearRange(value string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(value), "-", 2)
	from, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", parts[0])
	}
	if len(parts) == 1 {
		return from, from, nil
	}
	to, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", parts[1])
	}
	return from, to, nil
}
