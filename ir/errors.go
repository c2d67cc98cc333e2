package ir

import "fmt"

// The generator's failure taxonomy. Every error here is fatal: the run
// halts and no output artifact is produced. Nothing is retried or
// defaulted — a bad input or a missing table entry must stop the build.

// ParseError reports a malformed introspection document. It wraps the
// underlying decoder diagnostic and identifies the offending input path.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid XML in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnmappedTypeError reports a DBus type code with no entry in the target
// type table. Resolving it requires extending the table in code; it is
// not a data-level problem.
type UnmappedTypeError struct {
	Code      string
	Interface string
	Signal    string
	Arg       string
}

func (e *UnmappedTypeError) Error() string {
	if e.Interface == "" {
		return fmt.Sprintf("no target type mapping for DBus type %q", e.Code)
	}
	return fmt.Sprintf("no target type mapping for DBus type %q (arg %q of %s.%s)",
		e.Code, e.Arg, e.Interface, e.Signal)
}

// SlotOverflowError reports a signal with more positional arguments than
// the slot-name convention supports.
type SlotOverflowError struct {
	Index     int
	Interface string
	Signal    string
}

func (e *SlotOverflowError) Error() string {
	if e.Interface == "" {
		return fmt.Sprintf("positional slot %d exceeds the %d-slot naming convention", e.Index, SlotCount)
	}
	return fmt.Sprintf("signal %s.%s has more than %d positional arguments", e.Interface, e.Signal, SlotCount)
}
