package opcalc

import (
	"fmt"
	"strings"
)

// MissingParameterError reports that Finalize was called before every
// required parameter was supplied. Fields lists the unset parameters in a
// fixed order, so a caller can surface all of them at once.
type MissingParameterError struct {
	Fields []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("option builder: missing parameters: %s", strings.Join(e.Fields, ", "))
}

// InvalidParameterError reports a supplied value that violates a domain
// constraint, e.g. a non-positive strike. Only the first violation found is
// reported.
type InvalidParameterError struct {
	Field      string
	Constraint string
	Value      float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("option builder: invalid %s (%v): must satisfy %s", e.Field, e.Value, e.Constraint)
}
