package log

import "bilancio/internal/core"

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldKind      = "kind"
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldDate      = "date"
	FieldMonth     = "month"
	FieldFile      = "file"
	FieldRecords   = "records"
	FieldLine      = "line"
	FieldEvent     = "event"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentLedger = "ledger"
	ComponentShell  = "shell"
	ComponentAMQP   = "amqp"
	ComponentExport = "export"
	ComponentConfig = "config"
)

// Operations defines standard operation names
const (
	OpAppend    = "append"
	OpLoad      = "load"
	OpSave      = "save"
	OpSummarize = "summarize"
	OpExport    = "export"
	OpPublish   = "publish"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

// WithError adds error field
func (f LogFields) WithError(err error) LogFields {
	if err != nil {
		f[FieldError] = err.Error()
	}
	return f
}

// WithOperation adds operation field
func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithRecord adds the record's fields
func (f LogFields) WithRecord(r core.Record) LogFields {
	f[FieldKind] = r.Kind().String()
	f[FieldAmount] = r.Amount().String()
	f[FieldCategory] = r.Category()
	f[FieldDate] = r.Date().String()
	return f
}

// WithMonth adds the year-month filter
func (f LogFields) WithMonth(month string) LogFields {
	f[FieldMonth] = month
	return f
}

// WithFile adds the backing file path and record count
func (f LogFields) WithFile(path string, records int) LogFields {
	f[FieldFile] = path
	f[FieldRecords] = records
	return f
}

// WithLine adds the 1-based line number of a ledger file
func (f LogFields) WithLine(line int) LogFields {
	f[FieldLine] = line
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
