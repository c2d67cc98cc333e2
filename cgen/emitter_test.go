package cgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/a11ykit/introgen/ir"
)

func TestRender(t *testing.T) {
	descs := []ir.InterfaceDescriptor{
		{Name: "org.a11y.atspi.Accessible", XML: "<interface name=\"org.a11y.atspi.Accessible\">\n</interface>"},
		{Name: "org.a11y.atspi.Action", XML: "<interface name=\"org.a11y.atspi.Action\">\n</interface>"},
	}

	defs, decls := Render(descs)

	wantDefs := []string{
		"DO NOT EDIT",
		"const char *spi_org_a11y_atspi_Accessible =\n" + `"<interface name=\"org.a11y.atspi.Accessible\">"`,
		"const char *spi_org_a11y_atspi_Action =",
	}
	for _, w := range wantDefs {
		if !bytes.Contains(defs, []byte(w)) {
			t.Errorf("definitions missing %q:\n%s", w, defs)
		}
	}

	wantDecls := []string{
		"DO NOT EDIT",
		"#ifndef SPI_INTROSPECTION_DATA_H_",
		"#define SPI_INTROSPECTION_DATA_H_",
		"extern const char *spi_org_a11y_atspi_Accessible;",
		"extern const char *spi_org_a11y_atspi_Action;",
		"#endif /* SPI_INTROSPECTION_DATA_H_ */",
	}
	for _, w := range wantDecls {
		if !bytes.Contains(decls, []byte(w)) {
			t.Errorf("declarations missing %q:\n%s", w, decls)
		}
	}

	// Declarations preserve document order.
	first := bytes.Index(decls, []byte("spi_org_a11y_atspi_Accessible"))
	second := bytes.Index(decls, []byte("spi_org_a11y_atspi_Action"))
	if first < 0 || second < 0 || first > second {
		t.Errorf("declarations out of document order (%d, %d)", first, second)
	}
}

func TestRenderDuplicateInterfaces(t *testing.T) {
	// Same name from two documents: two independent entries, no merge.
	descs := []ir.InterfaceDescriptor{
		{Name: "a.b.C", XML: "<interface name=\"a.b.C\"></interface>", SourcePath: "one.xml"},
		{Name: "a.b.C", XML: "<interface name=\"a.b.C\"></interface>", SourcePath: "two.xml"},
	}

	defs, decls := Render(descs)

	if got := strings.Count(string(defs), "const char *spi_a_b_C ="); got != 2 {
		t.Errorf("definitions contain %d entries for duplicate interface, want 2", got)
	}
	if got := strings.Count(string(decls), "extern const char *spi_a_b_C;"); got != 2 {
		t.Errorf("declarations contain %d entries for duplicate interface, want 2", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	descs := []ir.InterfaceDescriptor{
		{Name: "a.b.C", XML: "<interface name=\"a.b.C\">\n  <signal name=\"Foo\"></signal>\n</interface>"},
	}

	defs1, decls1 := Render(descs)
	defs2, decls2 := Render(descs)

	if !bytes.Equal(defs1, defs2) || !bytes.Equal(decls1, decls2) {
		t.Error("Render is not byte-for-byte deterministic")
	}
}

func TestRenderEmbeddedXMLRoundTrip(t *testing.T) {
	xml := "<interface name=\"a.b.C\">\n  <signal name=\"Foo\">\n    <arg name=\"kind\" type=\"s\"></arg>\n  </signal>\n</interface>"
	defs, _ := Render([]ir.InterfaceDescriptor{{Name: "a.b.C", XML: xml}})

	// Extract the literal between the assignment and the terminating ";".
	s := string(defs)
	start := strings.Index(s, "const char *spi_a_b_C =\n")
	if start < 0 {
		t.Fatalf("assignment not found in:\n%s", s)
	}
	literal := s[start+len("const char *spi_a_b_C =\n"):]
	end := strings.Index(literal, ";\n")
	if end < 0 {
		t.Fatalf("terminator not found in:\n%s", literal)
	}
	literal = literal[:end]

	if got := unescapeLiteral(t, literal); got != xml {
		t.Errorf("embedded constant does not round-trip:\ngot:  %q\nwant: %q", got, xml)
	}
}
