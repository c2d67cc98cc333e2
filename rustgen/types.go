package rustgen

import "github.com/a11ykit/introgen/ir"

// rustType is one entry of the DBus-signature-to-Rust lookup table.
// Copy marks types returned by value from accessors; everything else is
// returned by reference.
type rustType struct {
	Name string
	Copy bool
}

// rustTypes is the fixed vocabulary of signature codes the event protocol
// uses. Extending it is a code change: an unknown code is a hard error,
// never a silent default.
var rustTypes = map[string]rustType{
	"s":     {Name: "String"},
	"i":     {Name: "i32", Copy: true},
	"u":     {Name: "u32", Copy: true},
	"v":     {Name: "zbus::zvariant::OwnedValue"},
	"o":     {Name: "zbus::zvariant::OwnedObjectPath"},
	"a{sv}": {Name: "std::collections::HashMap<String, zbus::zvariant::OwnedValue>"},
}

// TypeFor resolves a DBus signature code to its Rust type name.
func TypeFor(code string) (string, error) {
	t, ok := rustTypes[code]
	if !ok {
		return "", &ir.UnmappedTypeError{Code: code}
	}
	return t.Name, nil
}

func lookupType(code string, iface ir.InterfaceDescriptor, sig ir.SignalDescriptor, arg ir.ArgDescriptor) (rustType, error) {
	t, ok := rustTypes[code]
	if !ok {
		return rustType{}, &ir.UnmappedTypeError{
			Code:      code,
			Interface: iface.Name,
			Signal:    sig.Name,
			Arg:       arg.Name,
		}
	}
	return t, nil
}
