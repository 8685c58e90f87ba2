package sfntdir

import "encoding/binary"

// Encoding is one cmap encoding record together with the subtable format it
// points at.
type Encoding struct {
	PlatformID uint16
	EncodingID uint16
	Format     uint16
	Offset     uint32
}

// Platform names the platform ID for display.
func (e Encoding) Platform() string {
	switch e.PlatformID {
	case 0:
		return "Unicode"
	case 1:
		return "Macintosh"
	case 2:
		return "ISO"
	case 3:
		return "Windows"
	case 4:
		return "Custom"
	}
	return "Unknown"
}

// CmapEncodings lists the encoding records of a raw cmap table.
// Records whose subtable offset falls outside the table keep Format 0xFFFF.
func CmapEncodings(cmap []byte) ([]Encoding, error) {
	if len(cmap) < 4 {
		return nil, &InvalidFontError{Reason: "truncated cmap header"}
	}
	numTables := int(binary.BigEndian.Uint16(cmap[2:]))
	if 4+numTables*8 > len(cmap) {
		return nil, &InvalidFontError{Reason: "cmap encoding records past end of table"}
	}

	encs := make([]Encoding, 0, numTables)
	for i := 0; i < numTables; i++ {
		rec := cmap[4+i*8:]
		e := Encoding{
			PlatformID: binary.BigEndian.Uint16(rec),
			EncodingID: binary.BigEndian.Uint16(rec[2:]),
			Offset:     binary.BigEndian.Uint32(rec[4:]),
			Format:     0xFFFF,
		}
		if int(e.Offset)+2 <= len(cmap) {
			e.Format = binary.BigEndian.Uint16(cmap[e.Offset:])
		}
		encs = append(encs, e)
	}
	return encs, nil
}
