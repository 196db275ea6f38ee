package ingest

import "fmt"

// ValidationError reports a malformed record with its file, line, and field
// context, so a bad dataset can be fixed rather than guessed at.
type ValidationError struct {
	File    string
	Line    int
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: line %d: field %q: %s", e.File, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: line %d: %s", e.File, e.Line, e.Message)
}
