// Package simerr defines the structured error taxonomy shared across the
// similarity-join engine: InvalidInput, InvalidConfig, InvalidTokenizer and
// Internal, as sentinels that callers can match with errors.Is.
package simerr

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Wrap one of these with fmt.Errorf("<scope>: %w", kind) at
// the call site so errors.Is still matches while the message stays specific.
var (
	// InvalidInput covers missing attribute names, non-unique or null keys,
	// and malformed input shape. Raised during validation, before any index
	// is built.
	InvalidInput = errors.New("invalid input")

	// InvalidConfig covers unsupported (measure, comp_op) pairs, thresholds
	// out of range, and tokenizer/measure mismatches (e.g. a non-q-gram
	// tokenizer for EDIT_DISTANCE).
	InvalidConfig = errors.New("invalid config")

	// InvalidTokenizer covers a tokenizer that does not satisfy the
	// Tokenizer contract.
	InvalidTokenizer = errors.New("invalid tokenizer")

	// Internal covers invariant violations that should be unreachable, such
	// as a position-index size mismatch. Surfacing one is a bug report, not
	// a user mistake.
	Internal = errors.New("internal invariant violation")
)

// Error names the offending attribute and condition for the diagnostic
// spec.md §7 requires: "a diagnostic naming the offending attribute and
// condition."
type Error struct {
	Kind      error
	Attribute string
	Condition string
}

func (e *Error) Error() string {
	if e.Attribute == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Condition)
	}
	return fmt.Sprintf("%s: attribute %q: %s", e.Kind, e.Attribute, e.Condition)
}

func (e *Error) Unwrap() error { return e.Kind }

// New builds an *Error for the given kind, attribute and condition.
func New(kind error, attribute, condition string) *Error {
	return &Error{Kind: kind, Attribute: attribute, Condition: condition}
}
