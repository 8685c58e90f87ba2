package bitmap

import (
	"encoding/binary"
	"fmt"
)

// CBLC index subtable formats.
const (
	indexFormat1 = 1 // variable metrics, 32-bit offsets
	indexFormat2 = 2 // constant metrics, no offset array
	indexFormat3 = 3 // variable metrics, 16-bit offsets
	indexFormat4 = 4 // variable metrics, sparse glyph ids
	indexFormat5 = 5 // constant metrics, sparse glyph ids
)

// CBDT image formats carrying PNG payloads.
const (
	imageFormat17 = 17 // small metrics + data
	imageFormat18 = 18 // big metrics + data
	imageFormat19 = 19 // metrics in CBLC, data only
)

// ColorTable reads paired CBDT/CBLC (or EBDT/EBLC) tables. The location
// table is parsed up front; image data is sliced out of the data table
// on demand.
type ColorTable struct {
	glyphData []byte // CBDT
	strikes   []colorStrike
}

type colorStrike struct {
	subtableListOffset uint32
	numSubtables       uint32

	startGlyph uint16
	endGlyph   uint16
	ppemX      uint8
	ppemY      uint8
	bitDepth   uint8

	subtables []colorSubtable
}

// colorSubtable is one parsed index subtable covering a glyph range.
type colorSubtable struct {
	firstGlyph  uint16
	lastGlyph   uint16
	indexFormat uint16
	imageFormat uint16
	dataOffset  uint32

	offsets32 []uint32 // format 1
	offsets16 []uint16 // format 3
	imageSize uint32   // formats 2 and 5
	bigBearX  int8     // formats 2 and 5
	bigBearY  int8
	bigWidth  uint8
	bigHeight uint8
	sparse    []sparseEntry // format 4
	glyphIDs  []uint16      // format 5
}

type sparseEntry struct {
	gid    uint16
	offset uint16
}

// NewColorTable parses a CBLC location table and pairs it with its CBDT
// data table.
func NewColorTable(glyphData, locData []byte) (*ColorTable, error) {
	if len(locData) < 8 {
		return nil, ErrInvalidData
	}

	major := binary.BigEndian.Uint16(locData)
	// CBLC is version 3, EBLC version 2; both share the record layout.
	if major != 2 && major != 3 {
		return nil, fmt.Errorf("bitmap: unsupported location table version %d: %w", major, ErrUnsupportedFormat)
	}

	numSizes := binary.BigEndian.Uint32(locData[4:])
	const recordSize = 48
	if 8+int(numSizes)*recordSize > len(locData) {
		return nil, ErrInvalidData
	}

	t := &ColorTable{glyphData: glyphData, strikes: make([]colorStrike, numSizes)}
	for i := range t.strikes {
		rec := locData[8+i*recordSize:]
		s := &t.strikes[i]
		s.subtableListOffset = binary.BigEndian.Uint32(rec)
		s.numSubtables = binary.BigEndian.Uint32(rec[8:])
		s.startGlyph = binary.BigEndian.Uint16(rec[40:])
		s.endGlyph = binary.BigEndian.Uint16(rec[42:])
		s.ppemX = rec[44]
		s.ppemY = rec[45]
		s.bitDepth = rec[46]
		if err := s.parseSubtables(locData); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (s *colorStrike) parseSubtables(loc []byte) error {
	listOff := int(s.subtableListOffset)
	if listOff+int(s.numSubtables)*8 > len(loc) {
		return ErrInvalidData
	}

	s.subtables = make([]colorSubtable, s.numSubtables)
	for i := range s.subtables {
		rec := loc[listOff+i*8:]
		st := &s.subtables[i]
		st.firstGlyph = binary.BigEndian.Uint16(rec)
		st.lastGlyph = binary.BigEndian.Uint16(rec[2:])
		additional := binary.BigEndian.Uint32(rec[4:])
		if err := st.parse(loc, listOff+int(additional)); err != nil {
			return err
		}
	}
	return nil
}

func (st *colorSubtable) parse(loc []byte, off int) error {
	if off+8 > len(loc) {
		return ErrInvalidData
	}
	st.indexFormat = binary.BigEndian.Uint16(loc[off:])
	st.imageFormat = binary.BigEndian.Uint16(loc[off+2:])
	st.dataOffset = binary.BigEndian.Uint32(loc[off+4:])

	body := off + 8
	rangeLen := int(st.lastGlyph) - int(st.firstGlyph) + 1

	switch st.indexFormat {
	case indexFormat1:
		n := rangeLen + 1
		if body+n*4 > len(loc) {
			return ErrInvalidData
		}
		st.offsets32 = make([]uint32, n)
		for i := range st.offsets32 {
			st.offsets32[i] = binary.BigEndian.Uint32(loc[body+i*4:])
		}

	case indexFormat2:
		if body+12 > len(loc) {
			return ErrInvalidData
		}
		st.imageSize = binary.BigEndian.Uint32(loc[body:])
		st.parseBigMetrics(loc[body+4:])

	case indexFormat3:
		n := rangeLen + 1
		if body+n*2 > len(loc) {
			return ErrInvalidData
		}
		st.offsets16 = make([]uint16, n)
		for i := range st.offsets16 {
			st.offsets16[i] = binary.BigEndian.Uint16(loc[body+i*2:])
		}

	case indexFormat4:
		if body+4 > len(loc) {
			return ErrInvalidData
		}
		numGlyphs := int(binary.BigEndian.Uint32(loc[body:]))
		pairs := numGlyphs + 1 // trailing sentinel carries the end offset
		if body+4+pairs*4 > len(loc) {
			return ErrInvalidData
		}
		st.sparse = make([]sparseEntry, pairs)
		for i := range st.sparse {
			rec := loc[body+4+i*4:]
			st.sparse[i] = sparseEntry{
				gid:    binary.BigEndian.Uint16(rec),
				offset: binary.BigEndian.Uint16(rec[2:]),
			}
		}

	case indexFormat5:
		if body+16 > len(loc) {
			return ErrInvalidData
		}
		st.imageSize = binary.BigEndian.Uint32(loc[body:])
		st.parseBigMetrics(loc[body+4:])
		numGlyphs := int(binary.BigEndian.Uint32(loc[body+12:]))
		ids := body + 16
		if ids+numGlyphs*2 > len(loc) {
			return ErrInvalidData
		}
		st.glyphIDs = make([]uint16, numGlyphs)
		for i := range st.glyphIDs {
			st.glyphIDs[i] = binary.BigEndian.Uint16(loc[ids+i*2:])
		}

	default:
		return fmt.Errorf("bitmap: index format %d: %w", st.indexFormat, ErrUnsupportedFormat)
	}
	return nil
}

func (st *colorSubtable) parseBigMetrics(rec []byte) {
	st.bigHeight = rec[0]
	st.bigWidth = rec[1]
	st.bigBearX = int8(rec[2])
	st.bigBearY = int8(rec[3])
}

// NumStrikes returns the strike count.
func (t *ColorTable) NumStrikes() int {
	return len(t.strikes)
}

// StrikePPEM returns the pixel size of a strike, 0 when out of range.
func (t *ColorTable) StrikePPEM(index int) uint16 {
	if index < 0 || index >= len(t.strikes) {
		return 0
	}
	return uint16(t.strikes[index].ppemX)
}

// StrikeSize returns the horizontal and vertical pixel sizes of a
// strike. They differ for fonts with non-square strikes.
func (t *ColorTable) StrikeSize(index int) (ppemX, ppemY uint8) {
	if index < 0 || index >= len(t.strikes) {
		return 0, 0
	}
	return t.strikes[index].ppemX, t.strikes[index].ppemY
}

// StrikeBitDepth returns the bit depth of a strike, 32 for BGRA color.
func (t *ColorTable) StrikeBitDepth(index int) uint8 {
	if index < 0 || index >= len(t.strikes) {
		return 0
	}
	return t.strikes[index].bitDepth
}

// StrikeGlyphs lists the glyph ids that have bitmaps in a strike, in
// ascending order.
func (t *ColorTable) StrikeGlyphs(index int) []uint16 {
	if index < 0 || index >= len(t.strikes) {
		return nil
	}
	var gids []uint16
	for i := range t.strikes[index].subtables {
		st := &t.strikes[index].subtables[i]
		switch st.indexFormat {
		case indexFormat4:
			for _, e := range st.sparse[:max(len(st.sparse)-1, 0)] {
				gids = append(gids, e.gid)
			}
		case indexFormat5:
			gids = append(gids, st.glyphIDs...)
		default:
			for gid := st.firstGlyph; ; gid++ {
				if _, size, ok := st.locate(gid); ok && size > 0 {
					gids = append(gids, gid)
				}
				if gid == st.lastGlyph {
					break
				}
			}
		}
	}
	return gids
}

// Glyph extracts the bitmap for one glyph of one strike.
func (t *ColorTable) Glyph(gid uint16, strikeIndex int) (*Glyph, error) {
	if strikeIndex < 0 || strikeIndex >= len(t.strikes) {
		return nil, ErrGlyphNotFound
	}
	strike := &t.strikes[strikeIndex]
	if gid < strike.startGlyph || gid > strike.endGlyph {
		return nil, ErrGlyphNotFound
	}

	for i := range strike.subtables {
		st := &strike.subtables[i]
		if gid < st.firstGlyph || gid > st.lastGlyph {
			continue
		}
		off, size, ok := st.locate(gid)
		if !ok || size == 0 {
			return nil, ErrGlyphNotFound
		}
		return t.extract(gid, st, strike, off, size)
	}
	return nil, ErrGlyphNotFound
}

// locate finds a glyph's byte range within the data table. The offset
// is relative to the start of the data table.
func (st *colorSubtable) locate(gid uint16) (offset, size uint32, ok bool) {
	idx := int(gid) - int(st.firstGlyph)

	switch st.indexFormat {
	case indexFormat1:
		if idx < 0 || idx+1 >= len(st.offsets32) {
			return 0, 0, false
		}
		return st.dataOffset + st.offsets32[idx], st.offsets32[idx+1] - st.offsets32[idx], true

	case indexFormat2:
		if idx < 0 || gid > st.lastGlyph {
			return 0, 0, false
		}
		return st.dataOffset + uint32(idx)*st.imageSize, st.imageSize, true

	case indexFormat3:
		if idx < 0 || idx+1 >= len(st.offsets16) {
			return 0, 0, false
		}
		return st.dataOffset + uint32(st.offsets16[idx]), uint32(st.offsets16[idx+1] - st.offsets16[idx]), true

	case indexFormat4:
		for i := 0; i+1 < len(st.sparse); i++ {
			if st.sparse[i].gid == gid {
				return st.dataOffset + uint32(st.sparse[i].offset),
					uint32(st.sparse[i+1].offset - st.sparse[i].offset), true
			}
		}
		return 0, 0, false

	case indexFormat5:
		for i, id := range st.glyphIDs {
			if id == gid {
				return st.dataOffset + uint32(i)*st.imageSize, st.imageSize, true
			}
		}
		return 0, 0, false
	}
	return 0, 0, false
}

func (t *ColorTable) extract(gid uint16, st *colorSubtable, strike *colorStrike, off, size uint32) (*Glyph, error) {
	end := uint64(off) + uint64(size)
	if end > uint64(len(t.glyphData)) {
		return nil, ErrInvalidData
	}
	img := t.glyphData[off:end]

	g := &Glyph{GID: gid, PPEM: uint16(strike.ppemX), Format: PNG}

	switch st.imageFormat {
	case imageFormat17:
		// smallGlyphMetrics (5) + dataLen (4) + data
		if len(img) < 9 {
			return nil, ErrInvalidData
		}
		dataLen := binary.BigEndian.Uint32(img[5:])
		if 9+int(dataLen) > len(img) {
			return nil, ErrInvalidData
		}
		g.Height = int(img[0])
		g.Width = int(img[1])
		g.OriginX = int16(int8(img[2]))
		g.OriginY = int16(int8(img[3]))
		g.Data = img[9 : 9+dataLen]

	case imageFormat18:
		// bigGlyphMetrics (8) + dataLen (4) + data
		if len(img) < 12 {
			return nil, ErrInvalidData
		}
		dataLen := binary.BigEndian.Uint32(img[8:])
		if 12+int(dataLen) > len(img) {
			return nil, ErrInvalidData
		}
		g.Height = int(img[0])
		g.Width = int(img[1])
		g.OriginX = int16(int8(img[2]))
		g.OriginY = int16(int8(img[3]))
		g.Data = img[12 : 12+dataLen]

	case imageFormat19:
		// metrics live in the index subtable, data is dataLen (4) + data
		if len(img) < 4 {
			return nil, ErrInvalidData
		}
		dataLen := binary.BigEndian.Uint32(img)
		if 4+int(dataLen) > len(img) {
			return nil, ErrInvalidData
		}
		g.Height = int(st.bigHeight)
		g.Width = int(st.bigWidth)
		g.OriginX = int16(st.bigBearX)
		g.OriginY = int16(st.bigBearY)
		g.Data = img[4 : 4+dataLen]

	default:
		return nil, fmt.Errorf("bitmap: image format %d: %w", st.imageFormat, ErrUnsupportedFormat)
	}
	return g, nil
}
