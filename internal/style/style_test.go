package style

import "testing"

func TestSetColorModeNever(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if err := SetColorMode("never"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { current = colored() })

	tests := []struct {
		got  string
		want string
	}{
		{Mark(Changed), "✓"},
		{Mark(Unchanged), "⚠"},
		{Mark(Failed), "✖"},
		{Path("reserved.txt"), "reserved.txt"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("rendered %q, want %q", tt.got, tt.want)
		}
	}
}

func TestSetColorModeInvalid(t *testing.T) {
	if err := SetColorMode("sometimes"); err == nil {
		t.Error("expected error")
	}
}

func TestStatusOf(t *testing.T) {
	if StatusOf(0) != Unchanged {
		t.Error("StatusOf(0) != Unchanged")
	}
	if StatusOf(3) != Changed {
		t.Error("StatusOf(3) != Changed")
	}
}
