package otfont

import "github.com/boxesandglue/textshape/ot"

// vmtx holds per-glyph vertical advances. Neither engine in the module
// exposes vertical metrics, so the two small tables involved are read
// here directly.
type vmtx struct {
	advances []uint16 // one per long metric
	ascender int16    // vertTypoAscender from vhea
	descent  int16    // vertTypoDescender from vhea
}

// parseVhea returns the long-metric count and the typographic extents
// from a raw vhea table.
func parseVhea(data []byte) (numLong int, ascender, descender int16, err error) {
	p := ot.NewParser(data)
	if _, err = p.U32(); err != nil { // version
		return 0, 0, 0, err
	}
	if ascender, err = p.I16(); err != nil {
		return 0, 0, 0, err
	}
	if descender, err = p.I16(); err != nil {
		return 0, 0, 0, err
	}
	n, err := p.U16At(34)
	if err != nil {
		return 0, 0, 0, err
	}
	return int(n), ascender, descender, nil
}

// parseVmtx reads a vmtx table. Entries beyond numLong share the last
// long metric's advance, so only the long metrics are stored.
func parseVmtx(data []byte, numLong, numGlyphs int) (*vmtx, error) {
	if numLong > numGlyphs {
		numLong = numGlyphs
	}
	p := ot.NewParser(data)
	advances := make([]uint16, 0, numLong)
	for i := 0; i < numLong; i++ {
		adv, err := p.U16()
		if err != nil {
			return nil, err
		}
		if err := p.Skip(2); err != nil { // topSideBearing
			return nil, err
		}
		advances = append(advances, adv)
	}
	return &vmtx{advances: advances}, nil
}

// advance returns the vertical advance for a glyph, or false when the
// table holds no metrics at all.
func (v *vmtx) advance(gid uint16) (uint16, bool) {
	if v == nil || len(v.advances) == 0 {
		return 0, false
	}
	if int(gid) < len(v.advances) {
		return v.advances[gid], true
	}
	return v.advances[len(v.advances)-1], true
}
