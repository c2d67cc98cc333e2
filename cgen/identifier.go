package cgen

import "strings"

// ConstantName derives the C identifier for an interface constant:
// the hierarchical separators become underscores under a fixed "spi_"
// namespace prefix ("org.a11y.atspi.Accessible" -> "spi_org_a11y_atspi_Accessible").
func ConstantName(interfaceName string) string {
	return "spi_" + strings.ReplaceAll(interfaceName, ".", "_")
}

// EscapeLiteral converts XML text into a C string-literal body: embedded
// quotes are backslash-escaped and each input line becomes one quoted
// literal. Adjacent literals concatenate in C, so line structure survives
// in the source without embedded newline escapes.
func EscapeLiteral(text string) string {
	escaped := strings.ReplaceAll(text, `"`, `\"`)
	lines := strings.Split(escaped, "\n")
	literals := make([]string, len(lines))
	for i, line := range lines {
		literals[i] = `"` + line + `"`
	}
	return strings.Join(literals, "\n")
}
