// Package provider loads DBus introspection documents into ir descriptors.
//
// Documents use the standard introspection dialect: a <node> root holding
// <interface> elements, which hold <signal> (and <method>) elements, which
// hold <arg> elements. Decoding goes through the godbus introspect structs,
// so anything the dialect allows but the generator does not consume (method
// bodies, properties, annotations) is carried through to the serialized
// subtree untouched and otherwise ignored.
package provider

import (
	"bytes"
	"encoding/xml"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/a11ykit/introgen/ir"
)

// Load parses each input path in argument order and returns the
// concatenated interface descriptors.
//
// Interfaces are not deduplicated across documents: an interface name
// declared in two inputs yields two independent descriptors, in input
// order. Merging is deliberately out of scope.
func Load(paths []string) ([]ir.InterfaceDescriptor, error) {
	var descs []ir.InterfaceDescriptor
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read introspection document")
		}
		fileDescs, err := Parse(data, path)
		if err != nil {
			return nil, err
		}
		descs = append(descs, fileDescs...)
	}
	return descs, nil
}

// Parse decodes one introspection document. path labels diagnostics only;
// Parse performs no I/O.
func Parse(data []byte, path string) ([]ir.InterfaceDescriptor, error) {
	var node introspect.Node
	if err := xml.Unmarshal(data, &node); err != nil {
		return nil, &ir.ParseError{Path: path, Err: err}
	}

	descs := make([]ir.InterfaceDescriptor, 0, len(node.Interfaces))
	for _, itf := range node.Interfaces {
		desc, err := convertInterface(itf, path)
		if err != nil {
			return nil, err
		}
		descs = append(descs, desc)
	}
	return descs, nil
}

func convertInterface(itf introspect.Interface, path string) (ir.InterfaceDescriptor, error) {
	desc := ir.InterfaceDescriptor{
		Name:       itf.Name,
		SourcePath: path,
		Signals:    make([]ir.SignalDescriptor, 0, len(itf.Signals)),
	}

	for _, sig := range itf.Signals {
		// The slot convention caps a signal body at ir.SlotCount positional
		// arguments. Checked here so neither emitter can render a partial
		// result for an oversized signal.
		if len(sig.Args) > 0 {
			if _, err := ir.SlotName(len(sig.Args) - 1); err != nil {
				return ir.InterfaceDescriptor{}, &ir.SlotOverflowError{
					Index:     len(sig.Args) - 1,
					Interface: itf.Name,
					Signal:    sig.Name,
				}
			}
		}

		s := ir.SignalDescriptor{
			Name: sig.Name,
			Args: make([]ir.ArgDescriptor, 0, len(sig.Args)),
		}
		for _, a := range sig.Args {
			s.Args = append(s.Args, ir.ArgDescriptor{Name: a.Name, Type: a.Type})
		}
		desc.Signals = append(desc.Signals, s)
	}

	text, err := serializeInterface(itf)
	if err != nil {
		return ir.InterfaceDescriptor{}, errors.Wrapf(err, "serialize interface %s", itf.Name)
	}
	desc.XML = text

	return desc, nil
}

// serializeInterface renders the full interface subtree back to indented
// XML text. This is the canonical form embedded by the C header emitter;
// it is deterministic for a given input document.
func serializeInterface(itf introspect.Interface) (string, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	start := xml.StartElement{Name: xml.Name{Local: "interface"}}
	if err := enc.EncodeElement(itf, start); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
