package ir

import (
	"errors"
	"testing"
)

func TestSlotName(t *testing.T) {
	tests := []struct {
		index   int
		want    string
		wantErr bool
	}{
		{index: 0, want: "kind"},
		{index: 1, want: "detail1"},
		{index: 2, want: "detail2"},
		{index: 3, want: "any_data"},
		{index: 4, want: "properties"},
		{index: 5, wantErr: true},
		{index: -1, wantErr: true},
	}

	for _, tt := range tests {
		got, err := SlotName(tt.index)
		if tt.wantErr {
			if err == nil {
				t.Errorf("SlotName(%d): expected error, got %q", tt.index, got)
				continue
			}
			var overflow *SlotOverflowError
			if !errors.As(err, &overflow) {
				t.Errorf("SlotName(%d): error is %T, want *SlotOverflowError", tt.index, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("SlotName(%d): unexpected error: %v", tt.index, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SlotName(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestSlotNamesIsACopy(t *testing.T) {
	names := SlotNames()
	if len(names) != SlotCount {
		t.Fatalf("SlotNames() has %d entries, want %d", len(names), SlotCount)
	}
	names[0] = "mutated"

	fresh, err := SlotName(0)
	if err != nil {
		t.Fatal(err)
	}
	if fresh != "kind" {
		t.Errorf("slot table mutated through SlotNames copy: slot 0 = %q", fresh)
	}
}

func TestLastSegment(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "org.a11y.atspi.Event.Object", want: "Object"},
		{name: "a.b.C", want: "C"},
		{name: "NoDots", want: "NoDots"},
	}

	for _, tt := range tests {
		d := InterfaceDescriptor{Name: tt.name}
		if got := d.LastSegment(); got != tt.want {
			t.Errorf("LastSegment(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
