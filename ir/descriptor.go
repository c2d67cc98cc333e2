// Package ir defines the descriptor model shared by all introgen emitters.
//
// Descriptors are built once per generation run by the provider and are
// never mutated afterwards. Ordering is significant everywhere: interfaces
// keep document order, signals keep declaration order within their
// interface, and arguments keep positional order within their signal.
package ir

import "strings"

// InterfaceDescriptor is one <interface> element of an introspection
// document: a dot-separated hierarchical name and its declared signals.
type InterfaceDescriptor struct {
	// Name is the full DBus interface name, e.g. "org.a11y.atspi.Event.Object".
	Name string

	// Signals lists the interface's signals in declaration order.
	Signals []SignalDescriptor

	// XML holds the interface subtree serialized back to text, as embedded
	// verbatim by the C header emitter.
	XML string

	// SourcePath is the input document this interface was read from.
	// Informational only; duplicate names across documents are not merged.
	SourcePath string
}

// LastSegment returns the final dot-separated segment of the interface
// name ("Object" for "org.a11y.atspi.Event.Object"). The full name is
// returned unchanged when it contains no dot.
func (d InterfaceDescriptor) LastSegment() string {
	if i := strings.LastIndex(d.Name, "."); i >= 0 {
		return d.Name[i+1:]
	}
	return d.Name
}

// SignalDescriptor is one <signal> element: a member name and its ordered
// arguments. Annotation children are dropped during loading.
type SignalDescriptor struct {
	Name string
	Args []ArgDescriptor
}

// ArgDescriptor is one <arg> element of a signal.
//
// An arg with an empty Name is an unused slot in the event body: it
// produces no struct field and no accessor, but it still occupies its
// positional slot for table rendering.
type ArgDescriptor struct {
	Name string
	Type string
}

// Named reports whether the argument carries a name attribute.
func (a ArgDescriptor) Named() bool { return a.Name != "" }
