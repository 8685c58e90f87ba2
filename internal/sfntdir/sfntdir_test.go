package sfntdir

import (
	"encoding/binary"
	"errors"
	"testing"
)

// buildFont assembles a minimal single-font container with the given table
// directory entries. Payload bytes are not written; offsets point past the
// directory.
func buildFont(flavor uint32, tags ...string) []byte {
	buf := make([]byte, 12+len(tags)*16)
	binary.BigEndian.PutUint32(buf, flavor)
	binary.BigEndian.PutUint16(buf[4:], uint16(len(tags)))
	for i, tag := range tags {
		rec := buf[12+i*16:]
		copy(rec, tag)
		binary.BigEndian.PutUint32(rec[4:], uint32(0x1000+i))
		binary.BigEndian.PutUint32(rec[8:], uint32(len(buf)))
		binary.BigEndian.PutUint32(rec[12:], 0)
	}
	return buf
}

func TestParseSingleFont(t *testing.T) {
	data := buildFont(FlavorTrueType, "cmap", "glyf", "head")

	d, err := Parse(data, 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Flavor != FlavorTrueType {
		t.Errorf("Flavor = 0x%08X, want 0x%08X", d.Flavor, FlavorTrueType)
	}
	if d.Collection {
		t.Error("Collection = true for a plain file")
	}
	if d.NumFonts != 1 {
		t.Errorf("NumFonts = %d, want 1", d.NumFonts)
	}
	if len(d.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(d.Entries))
	}
	want := []string{"cmap", "glyf", "head"}
	for i, tag := range want {
		if d.Entries[i].Tag != tag {
			t.Errorf("Entries[%d].Tag = %q, want %q", i, d.Entries[i].Tag, tag)
		}
	}
	if _, ok := d.Find("glyf"); !ok {
		t.Error("Find(glyf) = false")
	}
	if _, ok := d.Find("GPOS"); ok {
		t.Error("Find(GPOS) = true for absent table")
	}
}

func TestParseCollection(t *testing.T) {
	member := buildFont(FlavorCFF, "CFF ")
	header := make([]byte, 16)
	binary.BigEndian.PutUint32(header, magicTTC)
	binary.BigEndian.PutUint32(header[4:], 0x00010000)
	binary.BigEndian.PutUint32(header[8:], 1)
	binary.BigEndian.PutUint32(header[12:], 16)
	data := append(header, member...)

	d, err := Parse(data, 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !d.Collection {
		t.Error("Collection = false for TTC data")
	}
	if d.Flavor != FlavorCFF {
		t.Errorf("Flavor = 0x%08X, want OTTO", d.Flavor)
	}

	if _, err := Parse(data, 1); err == nil {
		t.Error("Parse with out-of-range index succeeded")
	}

	n, err := NumFonts(data)
	if err != nil || n != 1 {
		t.Errorf("NumFonts = %d, %v, want 1, nil", n, err)
	}
}

func TestParseUnsupportedContainers(t *testing.T) {
	for _, tt := range []struct {
		name  string
		magic uint32
		want  string
	}{
		{"woff", magicWOFF, "WOFF"},
		{"woff2", magicWOFF2, "WOFF2"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, 44)
			binary.BigEndian.PutUint32(data, tt.magic)

			_, err := Parse(data, 0)
			var uce *UnsupportedContainerError
			if !errors.As(err, &uce) {
				t.Fatalf("Parse error = %v, want UnsupportedContainerError", err)
			}
			if uce.Container != tt.want {
				t.Errorf("Container = %q, want %q", uce.Container, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, tt := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"short", []byte{0x00, 0x01}},
		{"bad magic", []byte{0xDE, 0xAD, 0xBE, 0xEF, 0, 0}},
		{"truncated directory", func() []byte {
			d := buildFont(FlavorTrueType, "cmap")
			return d[:14]
		}()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data, 0)
			var ife *InvalidFontError
			if !errors.As(err, &ife) {
				t.Errorf("Parse error = %v, want InvalidFontError", err)
			}
		})
	}
}

func TestTableSlicing(t *testing.T) {
	data := buildFont(FlavorTrueType, "name")
	payload := []byte{1, 2, 3, 4}
	binary.BigEndian.PutUint32(data[12+12:], uint32(len(payload)))
	data = append(data, payload...)

	d, err := Parse(data, 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, ok := d.Table(data, "name")
	if !ok {
		t.Fatal("Table(name) = false")
	}
	if len(got) != 4 || got[0] != 1 || got[3] != 4 {
		t.Errorf("Table(name) = % X, want % X", got, payload)
	}
	if _, ok := d.Table(data, "head"); ok {
		t.Error("Table(head) = true for absent table")
	}
}

func TestCmapEncodings(t *testing.T) {
	// Two encoding records; the second points at a format 4 subtable.
	cmap := make([]byte, 4+2*8+2)
	binary.BigEndian.PutUint16(cmap[2:], 2)
	rec := cmap[4:]
	binary.BigEndian.PutUint16(rec, 0)                       // Unicode
	binary.BigEndian.PutUint16(rec[2:], 3)                   // BMP
	binary.BigEndian.PutUint32(rec[4:], uint32(len(cmap)+8)) // out of range
	rec = cmap[12:]
	binary.BigEndian.PutUint16(rec, 3)     // Windows
	binary.BigEndian.PutUint16(rec[2:], 1) // Unicode BMP
	binary.BigEndian.PutUint32(rec[4:], 20)
	binary.BigEndian.PutUint16(cmap[20:], 4)

	encs, err := CmapEncodings(cmap)
	if err != nil {
		t.Fatalf("CmapEncodings: %v", err)
	}
	if len(encs) != 2 {
		t.Fatalf("len = %d, want 2", len(encs))
	}
	if encs[0].Format != 0xFFFF {
		t.Errorf("encs[0].Format = %d, want 0xFFFF for out-of-range offset", encs[0].Format)
	}
	if encs[0].Platform() != "Unicode" {
		t.Errorf("encs[0].Platform() = %q", encs[0].Platform())
	}
	if encs[1].Format != 4 {
		t.Errorf("encs[1].Format = %d, want 4", encs[1].Format)
	}
	if encs[1].Platform() != "Windows" {
		t.Errorf("encs[1].Platform() = %q", encs[1].Platform())
	}

	if _, err := CmapEncodings(nil); err == nil {
		t.Error("CmapEncodings(nil) succeeded")
	}
}
