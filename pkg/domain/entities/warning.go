package entities

// Severity classifies a validation warning
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String method for Severity enum
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	case SeverityInfo:
		return "Info"
	default:
		return "Unknown"
	}
}

// ValidationWarning is an advisory finding attached to a calculation
// result. Warnings never mutate the calculation they describe.
type ValidationWarning struct {
	Severity Severity
	Message  string
	Field    string // request field the warning pertains to, may be empty
}
