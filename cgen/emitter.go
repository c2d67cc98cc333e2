// Package cgen emits the C definition/header pair embedding introspection
// XML as string constants. One constant per interface: the definitions
// file carries the escaped XML body, the header file carries the matching
// extern declaration inside an include guard.
package cgen

import (
	"bytes"
	"fmt"

	"github.com/a11ykit/introgen/ir"
)

const banner = `/*
 * This file has been auto-generated by introgen from DBus introspection
 * data. The protocol is defined by the XML documents this file was
 * generated from.
 *
 * DO NOT EDIT.
 */`

const guard = "SPI_INTROSPECTION_DATA_H_"

// Render produces the definitions text and the declarations text for the
// given interfaces, in document order. Both are fully rendered in memory;
// the caller decides where they land.
func Render(descs []ir.InterfaceDescriptor) (defs, decls []byte) {
	var defBuf, declBuf bytes.Buffer

	defBuf.WriteString(banner)
	defBuf.WriteString("\n")

	declBuf.WriteString(banner)
	declBuf.WriteString("\n\n#ifndef ")
	declBuf.WriteString(guard)
	declBuf.WriteString("\n#define ")
	declBuf.WriteString(guard)
	declBuf.WriteString("\n")

	for _, desc := range descs {
		name := ConstantName(desc.Name)
		fmt.Fprintf(&declBuf, "\nextern const char *%s;\n", name)
		fmt.Fprintf(&defBuf, "\nconst char *%s =\n%s;\n", name, EscapeLiteral(desc.XML))
	}

	declBuf.WriteString("\n#endif /* ")
	declBuf.WriteString(guard)
	declBuf.WriteString(" */\n")

	return defBuf.Bytes(), declBuf.Bytes()
}
