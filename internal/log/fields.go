package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldKind      = "kind"
	FieldLimit     = "limit"
	FieldCurrency  = "currency"
	FieldFile      = "file"
	FieldRecords   = "records"
	FieldLine      = "line"
	FieldToday     = "today"
	FieldWeek      = "week"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentConfig     = "config"
	ComponentSeed       = "seed"
	ComponentCalculator = "calculator"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpValidate = "validate"
	OpReport   = "report"
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

// WithBudget adds calculator kind and limit
func (f LogFields) WithBudget(kind, limit string) LogFields {
	f[FieldKind] = kind
	f[FieldLimit] = limit
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
