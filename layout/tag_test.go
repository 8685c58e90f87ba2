package layout

import "testing"

func TestMakeTag(t *testing.T) {
	got := MakeTag('G', 'P', 'O', 'S')
	if got != 0x47504F53 {
		t.Errorf("MakeTag(GPOS) = %#x, want 0x47504F53", uint32(got))
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"GPOS", "GPOS"},
		{"nko", "nko "}, // short tags pad with spaces
		{"", "    "},
		{"toolong", "tool"}, // long tags truncate
	}
	for _, tt := range tests {
		if got := ParseTag(tt.in).String(); got != tt.want {
			t.Errorf("ParseTag(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTagRoundTrip(t *testing.T) {
	for _, s := range []string{"cmap", "glyf", "DFLT", "nko "} {
		if got := ParseTag(s).String(); got != s {
			t.Errorf("round trip %q = %q", s, got)
		}
	}
}
