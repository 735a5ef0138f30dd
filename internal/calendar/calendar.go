// Package calendar models the expected sequence of reporting month-ends.
//
// The calendar is an external input: the coverage check never guesses which
// months a dataset should cover. It comes either from a dim-date CSV extract
// or from an explicit year range given on the command line.
package calendar

import (
	"fmt"
	"time"

	"github.com/Mohamed-68/pnl-report/internal/common"
	"github.com/Mohamed-68/pnl-report/internal/dateutils"
	"github.com/Mohamed-68/pnl-report/internal/models"
	"github.com/Mohamed-68/pnl-report/internal/parsererror"
)

// Calendar is an ordered sequence of expected month-end dates.
type Calendar struct {
	months []models.Date
}

// Months returns the ordered month-end dates.
func (c Calendar) Months() []models.Date {
	return c.months
}

// Len returns the number of months in the calendar.
func (c Calendar) Len() int {
	return len(c.months)
}

// FromDates builds a calendar from an explicit date sequence, validating
// that the dates are strictly ascending, unique month-end dates.
func FromDates(dates []models.Date) (Calendar, error) {
	for i, date := range dates {
		if !date.Equal(dateutils.EndOfMonth(date.Time)) {
			return Calendar{}, &parsererror.ValidationError{
				Source: "calendar",
				Reason: fmt.Sprintf("%s is not a month-end date", date),
			}
		}
		if i > 0 && !dates[i-1].Before(date.Time) {
			return Calendar{}, &parsererror.ValidationError{
				Source: "calendar",
				Reason: fmt.Sprintf("dates not strictly ascending at %s", date),
			}
		}
	}
	months := make([]models.Date, len(dates))
	copy(months, dates)
	return Calendar{months: months}, nil
}

// Generate builds a calendar of all month-ends from January of yearFrom
// through December of yearTo.
func Generate(yearFrom, yearTo int) (Calendar, error) {
	if yearFrom > yearTo {
		return Calendar{}, &parsererror.ValidationError{
			Source: "calendar",
			Reason: fmt.Sprintf("year range %d-%d is inverted", yearFrom, yearTo),
		}
	}

	var months []models.Date
	for year := yearFrom; year <= yearTo; year++ {
		for month := time.January; month <= time.December; month++ {
			months = append(months, models.NewDate(dateutils.MonthEnd(year, month)))
		}
	}
	return Calendar{months: months}, nil
}

// DimDateRow mirrors one row of a dim-date CSV extract. Only MonthEndDate
// feeds the calendar; the remaining columns are carried for completeness of
// the contract with the upstream dimension table.
type DimDateRow struct {
	DateKey        int         `csv:"date_key"`
	MonthEndDate   models.Date `csv:"month_end_date"`
	Year           int         `csv:"year"`
	MonthNumber    int         `csv:"month_number"`
	MonthName      string      `csv:"month_name"`
	Quarter        string      `csv:"quarter"`
	MonthStartDate models.Date `csv:"month_start_date"`
}

// LoadDimDateCSV reads a dim-date extract and builds a calendar from its
// month-end column.
func LoadDimDateCSV(filePath string) (Calendar, error) {
	rows, err := common.ReadCSVFile[DimDateRow](filePath)
	if err != nil {
		return Calendar{}, fmt.Errorf("error reading calendar file: %w", err)
	}
	if len(rows) == 0 {
		return Calendar{}, &parsererror.ValidationError{
			Source: filePath,
			Reason: "calendar file has no rows",
		}
	}

	dates := make([]models.Date, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, row.MonthEndDate)
	}

	cal, err := FromDates(dates)
	if err != nil {
		return Calendar{}, fmt.Errorf("invalid calendar in %s: %w", filePath, err)
	}
	return cal, nil
}
