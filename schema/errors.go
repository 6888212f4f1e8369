package schema

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error patterns.
// These allow both errors.Is() checks and errors.As() for detailed information.
var (
	// ErrSchemaNotFound is returned when an identifier is not in the registry.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrUnsupportedSource is returned when a schema source cannot be
	// resolved, currently only URL sources.
	ErrUnsupportedSource = errors.New("unsupported schema source")
)

// NotFoundError indicates a schema identifier is not registered.
// Absence via Get is a normal outcome; this error only surfaces from
// operations that need content for the identifier.
type NotFoundError struct {
	ID   string
	Help string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("schema not found: %s (%s)", e.ID, e.Help)
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, schema.ErrSchemaNotFound)
func (e *NotFoundError) Is(target error) bool {
	return target == ErrSchemaNotFound
}

// UnsupportedSourceError indicates a URL-sourced schema was resolved.
// URL fetching is deliberately unimplemented; the failure is loud so a
// downstream validator never treats an unvalidated document as valid.
type UnsupportedSourceError struct {
	URL string
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("url schemas not yet implemented: %s", e.URL)
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, schema.ErrUnsupportedSource)
func (e *UnsupportedSourceError) Is(target error) bool {
	return target == ErrUnsupportedSource
}

// MalformedDefinitionError indicates a definition file failed to parse or
// validate during a bulk load. The whole load aborts; nothing from the
// failed batch reaches the registry.
type MalformedDefinitionError struct {
	Path string
	Err  error
}

func (e *MalformedDefinitionError) Error() string {
	return fmt.Sprintf("malformed schema definition %q: %v", e.Path, e.Err)
}

func (e *MalformedDefinitionError) Unwrap() error {
	return e.Err
}
