// Package rustgen emits the Rust event model for introspected interfaces:
// per interface, one module holding an event struct per signal, an enum
// listing one variant per signal, optional field accessors, and a summary
// table documenting how signal arguments occupy the conventional
// positional slots.
package rustgen

import (
	"bytes"
	"fmt"

	"github.com/a11ykit/introgen/ir"
)

// Options controls optional parts of the rendered model.
type Options struct {
	// Accessors emits a #[must_use] getter per named field.
	Accessors bool
}

// Render produces the event-model source for the given interfaces, in
// document order. Any argument whose type code is missing from the lookup
// table aborts the render with an UnmappedTypeError, named args or not:
// an unused slot with an unknown signature is still a protocol the table
// cannot describe.
func Render(descs []ir.InterfaceDescriptor, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	for i, desc := range descs {
		if i > 0 {
			buf.WriteString("\n")
		}
		if err := emitInterface(&buf, desc, opts); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func emitInterface(buf *bytes.Buffer, desc ir.InterfaceDescriptor, opts Options) error {
	segment := desc.LastSegment()

	fmt.Fprintf(buf, "pub mod %s {\n", modIdent(segment))
	buf.WriteString("\tuse serde::{Deserialize, Serialize};\n")

	for _, sig := range desc.Signals {
		buf.WriteString("\n")
		if err := emitStruct(buf, desc, sig); err != nil {
			return err
		}
		if opts.Accessors {
			if err := emitAccessors(buf, desc, sig); err != nil {
				return err
			}
		}
	}

	buf.WriteString("\n")
	emitTable(buf, desc, segment)
	emitEnum(buf, desc, segment)

	buf.WriteString("}\n")
	return nil
}

// emitStruct emits the per-signal event struct: one public field per
// named argument, in positional order. Unnamed arguments contribute no
// field but are still checked against the type table.
func emitStruct(buf *bytes.Buffer, desc ir.InterfaceDescriptor, sig ir.SignalDescriptor) error {
	buf.WriteString("\t#[derive(Debug, PartialEq, Clone, Serialize, Deserialize)]\n")
	fmt.Fprintf(buf, "\tpub struct %s {\n", eventIdent(sig.Name))
	for _, arg := range sig.Args {
		t, err := lookupType(arg.Type, desc, sig, arg)
		if err != nil {
			return err
		}
		if !arg.Named() {
			continue
		}
		fmt.Fprintf(buf, "\t\tpub %s: %s,\n", arg.Name, t.Name)
	}
	buf.WriteString("\t}\n")
	return nil
}

func emitAccessors(buf *bytes.Buffer, desc ir.InterfaceDescriptor, sig ir.SignalDescriptor) error {
	named := 0
	for _, arg := range sig.Args {
		if arg.Named() {
			named++
		}
	}
	if named == 0 {
		return nil
	}

	fmt.Fprintf(buf, "\timpl %s {\n", eventIdent(sig.Name))
	for _, arg := range sig.Args {
		if !arg.Named() {
			continue
		}
		t, err := lookupType(arg.Type, desc, sig, arg)
		if err != nil {
			return err
		}
		buf.WriteString("\t\t#[must_use]\n")
		if t.Copy {
			fmt.Fprintf(buf, "\t\tpub fn %s(&self) -> %s {\n\t\t\tself.%s\n\t\t}\n", arg.Name, t.Name, arg.Name)
		} else {
			fmt.Fprintf(buf, "\t\tpub fn %s(&self) -> &%s {\n\t\t\t&self.%s\n\t\t}\n", arg.Name, t.Name, arg.Name)
		}
	}
	buf.WriteString("\t}\n")
	return nil
}

// emitEnum emits the tagged union: one variant per signal, each wrapping
// that signal's event struct.
func emitEnum(buf *bytes.Buffer, desc ir.InterfaceDescriptor, segment string) {
	buf.WriteString("\t#[derive(Clone, Debug)]\n")
	fmt.Fprintf(buf, "\tpub enum %s {\n", eventsIdent(segment))
	for _, sig := range desc.Signals {
		fmt.Fprintf(buf, "\t\t%s(%s),\n", variantIdent(sig.Name), eventIdent(sig.Name))
	}
	buf.WriteString("\t}\n")
}
