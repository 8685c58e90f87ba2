package otfont

import (
	"math"

	"github.com/boxesandglue/textshape/ot"

	"github.com/typefort/otkit"
	"github.com/typefort/otkit/layout"
)

// Metrics adapts a Source to layout.Metrics. Horizontal advances come
// from the textshape face; vertical advances come from vhea/vmtx when
// the font carries them.
type Metrics struct {
	face      *ot.Face
	numGlyphs int
	vert      *vmtx
}

var _ layout.Metrics = (*Metrics)(nil)

// NewMetrics builds a Metrics over src.
func NewMetrics(src *Source) (*Metrics, error) {
	face, err := src.Face()
	if err != nil {
		return nil, err
	}
	font, err := src.Font()
	if err != nil {
		return nil, err
	}

	m := &Metrics{face: face, numGlyphs: font.NumGlyphs()}

	vheaData, haveVhea := src.TableData("vhea")
	vmtxData, haveVmtx := src.TableData("vmtx")
	if haveVhea && haveVmtx {
		numLong, _, _, err := parseVhea(vheaData)
		if err != nil {
			return nil, err
		}
		vert, err := parseVmtx(vmtxData, numLong, m.numGlyphs)
		if err != nil {
			return nil, err
		}
		m.vert = vert
	} else if haveVhea || haveVmtx {
		otkit.Logger().Warn("font has only one of vhea/vmtx, ignoring vertical metrics")
	}

	return m, nil
}

// HorizontalAdvance implements layout.Metrics.
func (m *Metrics) HorizontalAdvance(gid layout.GlyphID) (int32, bool) {
	if int(gid) >= m.numGlyphs {
		return 0, false
	}
	return int32(math.Round(float64(m.face.HorizontalAdvance(ot.GlyphID(gid))))), true
}

// VerticalAdvance implements layout.Metrics.
func (m *Metrics) VerticalAdvance(gid layout.GlyphID) (int32, bool) {
	if int(gid) >= m.numGlyphs {
		return 0, false
	}
	adv, ok := m.vert.advance(uint16(gid))
	if !ok {
		return 0, false
	}
	return int32(adv), true
}

// Ascender implements layout.Metrics.
func (m *Metrics) Ascender() int32 {
	return int32(m.face.Ascender())
}

// Descender implements layout.Metrics.
func (m *Metrics) Descender() int32 {
	return int32(m.face.Descender())
}

// Upem returns the design units per em.
func (m *Metrics) Upem() uint16 {
	return m.face.Upem()
}
