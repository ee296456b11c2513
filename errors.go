package lisgraph

import "fmt"

// ParseError reports a line or filename whose shape does not match the
// expectations of its declared format.
type ParseError struct {
	File string
	Line int // 1-based; 0 when the error is not tied to a line
	Msg  string
}

func (e ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", e.File, e.Line, e.Msg)
	}

	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}

// MissingMetadataError reports an absent README record, or an absent
// required key within one.
type MissingMetadataError struct {
	File string
	Key  string
}

func (e MissingMetadataError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: metadata record is required but was not loaded", e.File)
	}

	return fmt.Sprintf("%s: required metadata key %q is absent", e.File, e.Key)
}

// ValidationError reports a mandatory identifier field that was empty at
// the line where it was read.
type ValidationError struct {
	File   string
	Line   int  // 1-based
	Record bool // Line counts data records, not physical lines
	Field  string
}

func (e ValidationError) Error() string {
	unit := "line"
	if e.Record {
		// Record-oriented readers do not see physical line numbers.
		unit = "record"
	}

	return fmt.Sprintf("%s: empty %s identifier at %s %d", e.File, e.Field, unit, e.Line)
}

// UnsupportedRecordTypeError reports an input record of a kind the format
// does not model. Silently dropping biological records is worse than
// aborting, so this is fatal.
type UnsupportedRecordTypeError struct {
	File string
	Line int
	Type string
}

func (e UnsupportedRecordTypeError) Error() string {
	return fmt.Sprintf("%s: line %d: unsupported record type %q", e.File, e.Line, e.Type)
}

// ReferenceResolutionError reports an entity that reached finalize without
// a required shared reference. It indicates an internal invariant
// violation rather than bad input.
type ReferenceResolutionError struct {
	Kind       string
	Identifier string
	Missing    string
}

func (e ReferenceResolutionError) Error() string {
	return fmt.Sprintf("%s %q has no %s reference at finalize", e.Kind, e.Identifier, e.Missing)
}
