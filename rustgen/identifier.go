package rustgen

import "strings"

// enumWordFixes repairs member names that would otherwise read as a
// single run in the generated enum ("RowinsertedEvent", "uUShadeEvent").
// The protocol's member names are the source of truth; these are the only
// known spellings that need help.
var enumWordFixes = strings.NewReplacer(
	"uU", "UU",
	"count", "Count",
	"width", "Width",
)

// variantIdent derives the enum variant name for a signal member.
func variantIdent(member string) string {
	return enumWordFixes.Replace(member)
}

// eventIdent derives the struct name for a signal member ("Foo" -> "FooEvent").
func eventIdent(member string) string {
	return enumWordFixes.Replace(member + "Event")
}

// eventsIdent derives the enum name for an interface's name segment
// ("Object" -> "ObjectEvents").
func eventsIdent(segment string) string {
	return enumWordFixes.Replace(segment + "Events")
}

// modIdent derives the module name for an interface's name segment.
func modIdent(segment string) string {
	return strings.ToLower(segment)
}

// tableIdent derives the interface column label for the summary table:
// the name segment with the conventional "Event" suffix stripped.
func tableIdent(segment string) string {
	return strings.TrimSuffix(segment, "Event")
}
