package dynsql

import "fmt"

// MissingParameterError reports a placeholder that must resolve during this
// render call but has no entry in the argument map. It aborts the whole
// statement render; partial output is discarded.
type MissingParameterError struct {
	Name string
}

func (e MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter %q", e.Name)
}

// InvalidClauseError reports an invalid clause combination. The only
// combination rejected today is OFFSET without a resolvable LIMIT, which
// signals a malformed statement rather than a missing argument.
type InvalidClauseError struct {
	Reason string
}

func (e InvalidClauseError) Error() string {
	return "invalid clause combination: " + e.Reason
}
