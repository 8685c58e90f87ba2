// Package sfntdir reads SFNT container headers and table directories.
//
// It deliberately parses nothing below the directory level: table payloads
// are returned as raw byte ranges for callers to interpret. The package
// exists because higher-level font engines keep their table records private,
// while the dump and has-table commands need tags, checksums, offsets and
// lengths exactly as they appear in the file.
package sfntdir

import (
	"encoding/binary"
	"fmt"
)

// SFNT container magic numbers.
const (
	FlavorTrueType uint32 = 0x00010000 // glyf outlines
	FlavorCFF      uint32 = 0x4F54544F // "OTTO", CFF outlines
	FlavorAppleTT  uint32 = 0x74727565 // "true", legacy Apple TrueType
	FlavorTyp1     uint32 = 0x74797031 // "typ1", legacy Apple Type 1

	magicTTC   uint32 = 0x74746366 // "ttcf"
	magicWOFF  uint32 = 0x774F4646 // "wOFF"
	magicWOFF2 uint32 = 0x774F4632 // "wOF2"
)

// UnsupportedContainerError reports a font container format that holds SFNT
// data but needs decompression or repackaging before the directory can be
// read.
type UnsupportedContainerError struct {
	Container string
}

func (e *UnsupportedContainerError) Error() string {
	return fmt.Sprintf("sfntdir: %s containers are not supported", e.Container)
}

// InvalidFontError reports data that is not an SFNT container at all, or a
// directory that does not fit inside the data.
type InvalidFontError struct {
	Reason string
}

func (e *InvalidFontError) Error() string {
	return "sfntdir: invalid font: " + e.Reason
}

// Entry is one table directory record.
type Entry struct {
	Tag      string
	Checksum uint32
	Offset   uint32
	Length   uint32
}

// Directory is the parsed table directory of one font in a file.
type Directory struct {
	// Flavor is the sfnt version field (FlavorTrueType, FlavorCFF, ...).
	Flavor uint32

	// Collection is true when the font came out of a TTC wrapper.
	Collection bool

	// NumFonts is the member count of the collection, or 1.
	NumFonts int

	Entries []Entry
}

// FlavorString names the container flavor for display.
func (d *Directory) FlavorString() string {
	switch d.Flavor {
	case FlavorTrueType:
		return "TrueType (glyf)"
	case FlavorCFF:
		return "OpenType (CFF)"
	case FlavorAppleTT:
		return "TrueType (Apple)"
	case FlavorTyp1:
		return "Type 1 (sfnt)"
	}
	return fmt.Sprintf("0x%08X", d.Flavor)
}

// Find returns the entry for tag, if present.
func (d *Directory) Find(tag string) (Entry, bool) {
	for _, e := range d.Entries {
		if e.Tag == tag {
			return e, true
		}
	}
	return Entry{}, false
}

// Table slices the raw bytes of the named table out of data.
// data must be the same buffer the directory was parsed from.
func (d *Directory) Table(data []byte, tag string) ([]byte, bool) {
	e, ok := d.Find(tag)
	if !ok {
		return nil, false
	}
	end := uint64(e.Offset) + uint64(e.Length)
	if end > uint64(len(data)) {
		return nil, false
	}
	return data[e.Offset:end], true
}

// Parse reads the table directory of font number index in data.
// Plain TTF/OTF files have a single font at index 0. TTC files are indexed
// by member. WOFF and WOFF2 data yields an UnsupportedContainerError.
func Parse(data []byte, index int) (*Directory, error) {
	if len(data) < 4 {
		return nil, &InvalidFontError{Reason: "shorter than a magic number"}
	}

	magic := binary.BigEndian.Uint32(data)
	switch magic {
	case magicWOFF:
		return nil, &UnsupportedContainerError{Container: "WOFF"}
	case magicWOFF2:
		return nil, &UnsupportedContainerError{Container: "WOFF2"}
	case magicTTC:
		return parseCollection(data, index)
	case FlavorTrueType, FlavorCFF, FlavorAppleTT, FlavorTyp1:
		if index != 0 {
			return nil, &InvalidFontError{Reason: fmt.Sprintf("font index %d in a single-font file", index)}
		}
		d, err := parseOffsetTable(data, 0)
		if err != nil {
			return nil, err
		}
		d.NumFonts = 1
		return d, nil
	}
	return nil, &InvalidFontError{Reason: fmt.Sprintf("unrecognized magic 0x%08X", magic)}
}

func parseCollection(data []byte, index int) (*Directory, error) {
	if len(data) < 12 {
		return nil, &InvalidFontError{Reason: "truncated TTC header"}
	}
	numFonts := int(binary.BigEndian.Uint32(data[8:]))
	if index < 0 || index >= numFonts {
		return nil, &InvalidFontError{Reason: fmt.Sprintf("font index %d out of range 0..%d", index, numFonts-1)}
	}
	recOff := 12 + index*4
	if recOff+4 > len(data) {
		return nil, &InvalidFontError{Reason: "truncated TTC offset table"}
	}
	fontOff := binary.BigEndian.Uint32(data[recOff:])
	if uint64(fontOff)+12 > uint64(len(data)) {
		return nil, &InvalidFontError{Reason: "TTC member offset past end of data"}
	}

	d, err := parseOffsetTable(data, int(fontOff))
	if err != nil {
		return nil, err
	}
	d.Collection = true
	d.NumFonts = numFonts
	return d, nil
}

func parseOffsetTable(data []byte, off int) (*Directory, error) {
	if off+12 > len(data) {
		return nil, &InvalidFontError{Reason: "truncated offset table"}
	}
	flavor := binary.BigEndian.Uint32(data[off:])
	switch flavor {
	case FlavorTrueType, FlavorCFF, FlavorAppleTT, FlavorTyp1:
	default:
		return nil, &InvalidFontError{Reason: fmt.Sprintf("unrecognized sfnt version 0x%08X", flavor)}
	}

	numTables := int(binary.BigEndian.Uint16(data[off+4:]))
	dirEnd := off + 12 + numTables*16
	if dirEnd > len(data) {
		return nil, &InvalidFontError{Reason: "table directory past end of data"}
	}

	d := &Directory{Flavor: flavor, Entries: make([]Entry, 0, numTables)}
	for i := 0; i < numTables; i++ {
		rec := data[off+12+i*16:]
		d.Entries = append(d.Entries, Entry{
			Tag:      string(rec[:4]),
			Checksum: binary.BigEndian.Uint32(rec[4:]),
			Offset:   binary.BigEndian.Uint32(rec[8:]),
			Length:   binary.BigEndian.Uint32(rec[12:]),
		})
	}
	return d, nil
}

// NumFonts reports how many fonts the file holds without parsing any
// directory: 1 for plain files, the member count for collections.
func NumFonts(data []byte) (int, error) {
	if len(data) < 4 {
		return 0, &InvalidFontError{Reason: "shorter than a magic number"}
	}
	switch magic := binary.BigEndian.Uint32(data); magic {
	case magicWOFF:
		return 0, &UnsupportedContainerError{Container: "WOFF"}
	case magicWOFF2:
		return 0, &UnsupportedContainerError{Container: "WOFF2"}
	case magicTTC:
		if len(data) < 12 {
			return 0, &InvalidFontError{Reason: "truncated TTC header"}
		}
		return int(binary.BigEndian.Uint32(data[8:])), nil
	case FlavorTrueType, FlavorCFF, FlavorAppleTT, FlavorTyp1:
		return 1, nil
	}
	return 0, &InvalidFontError{Reason: "unrecognized magic"}
}
