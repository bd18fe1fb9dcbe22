package validator

import (
	"fmt"
	"strings"
)

// Diagnostic is one structural violation found during Validate, always
// carrying the source line it applies to, following the teacher's
// Diagnostic/DiagnosticsError pattern in internal/corelx/diagnostics.go
// scaled down to the one category BASIC validation needs.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// Error aggregates every Diagnostic collected by a single Validate
// call into one reportable error.
type Error struct {
	Diagnostics []Diagnostic
}

func (e *Error) Error() string {
	lines := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}
