package main

import (
	"testing"

	"github.com/typefort/otkit/layout"
)

func TestPadTag(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "CFF", want: "CFF "},
		{in: "glyf", want: "glyf"},
		{in: "x", want: "x   "},
		{in: "", wantErr: true},
		{in: "toolong", wantErr: true},
	}
	for _, tt := range tests {
		got, err := padTag(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("padTag(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("padTag(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("padTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{in: 700, want: "700.0"},
		{in: 100.5, want: "100.5"},
		{in: 0, want: "0.0"},
		{in: -1.25, want: "-1.25"},
	}
	for _, tt := range tests {
		if got := formatFixed(tt.in); got != tt.want {
			t.Errorf("formatFixed(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseTuple(t *testing.T) {
	pins, err := parseTuple("wght=600, wdth=87.5")
	if err != nil {
		t.Fatalf("parseTuple: %v", err)
	}
	if len(pins) != 2 {
		t.Fatalf("got %d pins, want 2", len(pins))
	}
	if pins[0].tag.String() != "wght" || pins[0].value != 600 {
		t.Errorf("pin 0 = %s=%v, want wght=600", pins[0].tag, pins[0].value)
	}
	if pins[1].tag.String() != "wdth" || pins[1].value != 87.5 {
		t.Errorf("pin 1 = %s=%v, want wdth=87.5", pins[1].tag, pins[1].value)
	}
}

func TestParseTupleErrors(t *testing.T) {
	for _, in := range []string{"", "wght", "wght=heavy", "toolong=1"} {
		if _, err := parseTuple(in); err == nil {
			t.Errorf("parseTuple(%q): expected error", in)
		}
	}
}

func TestParseCodepoints(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "62,12c,6d", want: "bĬm"},
		{in: "41", want: "A"},
		{in: "41,zz,42", want: "A�B"},
		{in: "110000", want: "�"},
	}
	for _, tt := range tests {
		if got := parseCodepoints(tt.in); got != tt.want {
			t.Errorf("parseCodepoints(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGlyphsFromIndices(t *testing.T) {
	infos, err := glyphsFromIndices("36, 0, 105")
	if err != nil {
		t.Fatalf("glyphsFromIndices: %v", err)
	}
	want := []layout.GlyphID{36, 0, 105}
	if len(infos) != len(want) {
		t.Fatalf("got %d infos, want %d", len(infos), len(want))
	}
	for i, gid := range want {
		if infos[i].Glyph.GID != gid {
			t.Errorf("info %d gid = %d, want %d", i, infos[i].Glyph.GID, gid)
		}
		if len(infos[i].Glyph.Unicodes) != 0 {
			t.Errorf("info %d carries unicodes, want none", i)
		}
	}

	if _, err := glyphsFromIndices("1,x"); err == nil {
		t.Error("expected error for non-numeric index")
	}
}

func TestFormatMapping(t *testing.T) {
	tests := []struct {
		cp   rune
		gid  uint16
		want string
	}{
		{cp: 'A', gid: 36, want: "'A' U+0041 -> 36"},
		{cp: 0x0A, gid: 1, want: "'␊' U+000A -> 1"},
		{cp: 0x7F, gid: 2, want: "'␡' U+007F -> 2"},
		{cp: 0x00AD, gid: 3, want: "    U+00AD -> 3"},
		{cp: 0x1F600, gid: 900, want: "'😀' U+1F600 -> 900"},
	}
	for _, tt := range tests {
		if got := formatMapping(tt.cp, tt.gid); got != tt.want {
			t.Errorf("formatMapping(%#x, %d) = %q, want %q", tt.cp, tt.gid, got, tt.want)
		}
	}
}

func TestTestcaseScript(t *testing.T) {
	tests := []struct {
		testcase string
		script   string
		lang     string
	}{
		{testcase: "SHARAN-1", script: "arab", lang: "URD "},
		{testcase: "SHBALI-2", script: "bali", lang: "BAN "},
		{testcase: "SHKNDA-3", script: "knda", lang: "KAN "},
		{testcase: "SHLANA-1", script: "lana", lang: "THA "},
		{testcase: "OTHER", script: "latn", lang: "ENG "},
	}
	for _, tt := range tests {
		script, lang := testcaseScript(tt.testcase)
		if script.String() != tt.script || lang.String() != tt.lang {
			t.Errorf("testcaseScript(%q) = (%s, %s), want (%s, %s)",
				tt.testcase, script, lang, tt.script, tt.lang)
		}
	}
}

func TestTextDirection(t *testing.T) {
	if d := textDirection("hello", 0); d != layout.LeftToRight {
		t.Errorf("latin text direction = %v, want LeftToRight", d)
	}
	if d := textDirection("سلام", 0); d != layout.RightToLeft {
		t.Errorf("arabic text direction = %v, want RightToLeft", d)
	}
	if d := textDirection("hello", layout.ParseTag("arab")); d != layout.RightToLeft {
		t.Errorf("explicit arab script direction = %v, want RightToLeft", d)
	}
}
