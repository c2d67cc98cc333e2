package rustgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/a11ykit/introgen/ir"
)

// slotPlaceholder fills a table cell whose positional slot carries no
// named argument.
const slotPlaceholder = "    "

// emitTable emits the markdown summary table as a doc comment on the
// enum that follows it: one row per signal, one column per positional
// slot, cells holding the argument name occupying that slot.
func emitTable(buf *bytes.Buffer, desc ir.InterfaceDescriptor, segment string) {
	buf.WriteString("\t/// Event table for the contained types:\n")
	buf.WriteString("\t///\n")
	buf.WriteString("\t/// Interface|Member|Kind|Detail 1|Detail 2|Any Data|Properties\n")
	buf.WriteString("\t/// |:--|---|---|---|---|---|---|\n")
	for _, sig := range desc.Signals {
		cells := make([]string, 0, 2+ir.SlotCount)
		cells = append(cells, tableIdent(segment), sig.Name)
		cells = append(cells, slotRow(sig)...)
		fmt.Fprintf(buf, "\t/// |%s|\n", strings.Join(cells, "|"))
	}
}

// slotRow maps a signal's arguments onto the fixed positional slots.
// Each declared argument consumes the slot at its index; a slot whose
// argument is unnamed, and every slot past the last declared argument,
// renders as the placeholder.
func slotRow(sig ir.SignalDescriptor) []string {
	row := make([]string, ir.SlotCount)
	for i := range row {
		row[i] = slotPlaceholder
		if i < len(sig.Args) && sig.Args[i].Named() {
			row[i] = sig.Args[i].Name
		}
	}
	return row
}
