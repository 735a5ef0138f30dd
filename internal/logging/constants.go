package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across the pipeline so the
// reports it emits can be traced back through a single set of keys.
const (
	FieldFile       = "file_path"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldSheet      = "sheet"
	FieldFormat     = "format"
	FieldDelimiter  = "delimiter"
	FieldRow        = "row"
	FieldCount      = "count"
	FieldMonth      = "month_end_date"
	FieldScenario   = "scenario"
	FieldAccount    = "account_code"
	FieldGroup      = "pnl_group"
	FieldError      = "error"
)
