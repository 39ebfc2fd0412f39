package session

import (
	"errors"
	"fmt"

	"stylistapi/services"
)

// ErrorKind classifies every failure a session operation can produce.
// The presentation layer maps kinds to responses; the session never
// formats user-facing strings.
type ErrorKind string

const (
	KindCredentialMissing  ErrorKind = "credential_missing"
	KindTransportFailure   ErrorKind = "transport_failure"
	KindMalformedJSON      ErrorKind = "malformed_json"
	KindSchemaMismatch     ErrorKind = "schema_mismatch"
	KindPersistenceFailure ErrorKind = "persistence_failure"
)

// Error carries the kind plus, for extraction failures, the raw model
// text so it can be surfaced for diagnosis instead of dropped.
type Error struct {
	Kind ErrorKind
	Raw  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation failures surfaced before any model call is attempted.
var (
	ErrNoProfile     = errors.New("no style profile created yet")
	ErrEmptyWardrobe = errors.New("wardrobe has no items")
	ErrUnknownOption = errors.New("option id not present in the last generated batch")
	ErrItemNotFound  = errors.New("wardrobe item not found")
)

// extractionError maps the extractor's failure types onto error kinds,
// keeping the raw response text.
func extractionError(err error) *Error {
	var malformed *services.MalformedJSONError
	if errors.As(err, &malformed) {
		return &Error{Kind: KindMalformedJSON, Raw: malformed.Raw, Err: err}
	}
	var mismatch *services.SchemaMismatchError
	if errors.As(err, &mismatch) {
		return &Error{Kind: KindSchemaMismatch, Raw: mismatch.Raw, Err: err}
	}
	return &Error{Kind: KindMalformedJSON, Err: err}
}
