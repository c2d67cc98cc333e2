package ir

// slotNames is the positional naming convention for the AT-SPI event
// signal body. Every event signal carries up to five arguments, labeled
// by position regardless of the per-signal argument names. This is a
// protocol-family convention, not a general DBus rule.
var slotNames = [...]string{"kind", "detail1", "detail2", "any_data", "properties"}

// SlotCount is the number of positional slots the convention names.
const SlotCount = len(slotNames)

// SlotName returns the conventional name for positional slot i.
// Indexes at or beyond SlotCount return a SlotOverflowError: a signal
// with more arguments than the convention supports cannot be generated.
func SlotName(i int) (string, error) {
	if i < 0 || i >= SlotCount {
		return "", &SlotOverflowError{Index: i}
	}
	return slotNames[i], nil
}

// SlotNames returns the full slot-name table in positional order.
// The returned slice is a copy.
func SlotNames() []string {
	names := make([]string, SlotCount)
	copy(names, slotNames[:])
	return names
}
