package bitmap

import (
	"bytes"
	"encoding/binary"
	"image/png"
)

// Sbix reads Apple's sbix table. Glyph extents are addressed by glyph
// id against the maxp glyph count, with a trailing offset marking the
// end of the last glyph's data.
type Sbix struct {
	data      []byte
	numGlyphs int
	strikes   []sbixStrike
}

type sbixStrike struct {
	offset  uint32
	ppem    uint16
	ppi     uint16
	offsets []uint32
}

// NewSbix parses an sbix table. numGlyphs comes from maxp.
func NewSbix(data []byte, numGlyphs int) (*Sbix, error) {
	if len(data) < 8 {
		return nil, ErrInvalidData
	}
	if binary.BigEndian.Uint16(data) != 1 {
		return nil, ErrUnsupportedFormat
	}

	numStrikes := int(binary.BigEndian.Uint32(data[4:]))
	if 8+numStrikes*4 > len(data) {
		return nil, ErrInvalidData
	}

	s := &Sbix{data: data, numGlyphs: numGlyphs, strikes: make([]sbixStrike, numStrikes)}
	for i := range s.strikes {
		off := binary.BigEndian.Uint32(data[8+i*4:])
		if err := s.parseStrike(&s.strikes[i], off); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Sbix) parseStrike(strike *sbixStrike, off uint32) error {
	data := s.data
	n := s.numGlyphs + 1
	if int(off)+4+n*4 > len(data) {
		return ErrInvalidData
	}
	strike.offset = off
	strike.ppem = binary.BigEndian.Uint16(data[off:])
	strike.ppi = binary.BigEndian.Uint16(data[off+2:])
	strike.offsets = make([]uint32, n)
	for i := range strike.offsets {
		strike.offsets[i] = binary.BigEndian.Uint32(data[int(off)+4+i*4:])
	}
	return nil
}

// NumStrikes returns the strike count.
func (s *Sbix) NumStrikes() int {
	return len(s.strikes)
}

// StrikePPEM returns the pixel size of a strike, 0 when out of range.
func (s *Sbix) StrikePPEM(index int) uint16 {
	if index < 0 || index >= len(s.strikes) {
		return 0
	}
	return s.strikes[index].ppem
}

// StrikeGlyphs lists the glyph ids with bitmap data in a strike.
func (s *Sbix) StrikeGlyphs(index int) []uint16 {
	if index < 0 || index >= len(s.strikes) {
		return nil
	}
	strike := &s.strikes[index]
	var gids []uint16
	for gid := 0; gid < s.numGlyphs; gid++ {
		if strike.offsets[gid+1] > strike.offsets[gid] {
			gids = append(gids, uint16(gid))
		}
	}
	return gids
}

// Glyph extracts the bitmap for one glyph of one strike.
func (s *Sbix) Glyph(gid uint16, strikeIndex int) (*Glyph, error) {
	if strikeIndex < 0 || strikeIndex >= len(s.strikes) {
		return nil, ErrGlyphNotFound
	}
	if int(gid) >= s.numGlyphs {
		return nil, ErrGlyphNotFound
	}
	strike := &s.strikes[strikeIndex]
	start := strike.offsets[gid]
	end := strike.offsets[gid+1]
	if end <= start {
		return nil, ErrGlyphNotFound
	}

	// Glyph record: originOffsetX i16, originOffsetY i16, graphicType
	// tag, then the image bytes.
	dataOff := uint64(strike.offset) + uint64(start)
	dataEnd := uint64(strike.offset) + uint64(end)
	if dataOff+8 > uint64(len(s.data)) || dataEnd > uint64(len(s.data)) {
		return nil, ErrInvalidData
	}

	g := &Glyph{
		GID:     gid,
		PPEM:    strike.ppem,
		OriginX: int16(binary.BigEndian.Uint16(s.data[dataOff:])),
		OriginY: int16(binary.BigEndian.Uint16(s.data[dataOff+2:])),
		Data:    s.data[dataOff+8 : dataEnd],
	}

	switch string(s.data[dataOff+4 : dataOff+8]) {
	case "png ":
		g.Format = PNG
	case "jpg ":
		g.Format = JPEG
	case "tiff":
		g.Format = TIFF
	case "dupe":
		g.Format = Dupe
	default:
		return nil, ErrUnsupportedFormat
	}

	if g.Format == PNG {
		if img, err := png.Decode(bytes.NewReader(g.Data)); err == nil {
			b := img.Bounds()
			g.Width = b.Dx()
			g.Height = b.Dy()
		}
	}
	return g, nil
}
