package layout

// Metrics supplies glyph advances and global vertical extents for one
// font. Implementations are expected to be cheap to call repeatedly.
type Metrics interface {
	// HorizontalAdvance returns the advance width of a glyph in design
	// units. ok is false when the font carries no metric for the glyph.
	HorizontalAdvance(gid GlyphID) (advance int32, ok bool)
	// VerticalAdvance returns the advance height of a glyph in design
	// units. ok is false when the font has no vertical metrics.
	VerticalAdvance(gid GlyphID) (advance int32, ok bool)
	// Ascender returns the typographic ascender in design units.
	Ascender() int32
	// Descender returns the typographic descender in design units,
	// typically negative.
	Descender() int32
}

// Position is the resolved placement of one shaped glyph. Advances move
// the pen after the glyph is drawn; offsets displace the glyph relative
// to the pen position without moving it.
type Position struct {
	HoriAdvance int32
	VertAdvance int32
	XOffset     int32
	YOffset     int32

	// cursive links to the glyph whose entry anchor joins this glyph's
	// exit anchor, -1 when none. Used to propagate offsets along
	// cursive chains, never exposed to consumers.
	cursive int
}

// Layout resolves positions for shaped glyph sequences against one
// font's metrics.
type Layout struct {
	metrics   Metrics
	direction Direction
	vertical  bool
}

// NewLayout builds a Layout. direction must match the script the
// sequence was shaped with; vertical selects vertical advance
// accumulation for upright glyphs.
func NewLayout(m Metrics, direction Direction, vertical bool) *Layout {
	return &Layout{metrics: m, direction: direction, vertical: vertical}
}

// Positions resolves one position per input glyph, index-aligned with
// infos. Resolution runs in three passes: a forward pass computing
// advances and provisional offsets, a cursive pass aligning entry and
// exit anchors along connected chains, and a mark pass placing combining
// marks relative to their finalized base glyphs.
//
// Attachment indices are bounds-checked; an index outside infos or a
// cursive chain that loops back on itself returns a BadIndexError.
func (l *Layout) Positions(infos []Info) ([]Position, error) {
	n := len(infos)
	pos := make([]Position, n)
	for i := range pos {
		pos[i].cursive = -1
	}

	hasMarks := false
	hasCursive := false

	for i := range infos {
		info := &infos[i]
		hori, vert, err := l.advance(info)
		if err != nil {
			return nil, err
		}
		p := &pos[i]
		p.HoriAdvance = hori
		p.VertAdvance = vert

		att := &info.Attachment
		switch att.Kind {
		case AttachNone:
			p.XOffset, p.YOffset = info.Placement.offset()

		case AttachMarkAnchor:
			if att.Base < 0 || att.Base >= n {
				return nil, &BadIndexError{Index: att.Base, Len: n}
			}
			// Provisional offset: the anchor difference plus any
			// distance already applied to the base. The base's own
			// resolved offset is added in the mark pass, once cursive
			// adjustments are final.
			bdx, bdy := infos[att.Base].Placement.offset()
			p.XOffset = int32(att.BaseAnchor.X) - int32(att.MarkAnchor.X) + bdx
			p.YOffset = int32(att.BaseAnchor.Y) - int32(att.MarkAnchor.Y) + bdy
			l.zeroLineAdvance(p)
			hasMarks = true

		case AttachMarkOverprint:
			if att.Base < 0 || att.Base >= n {
				return nil, &BadIndexError{Index: att.Base, Len: n}
			}
			l.zeroLineAdvance(p)
			hasMarks = true

		case AttachCursiveAnchor:
			if att.Exit < 0 || att.Exit >= n {
				return nil, &BadIndexError{Index: att.Exit, Len: n}
			}
			// Forward link from the exit glyph, so later cursive
			// corrections reach every glyph hanging off it.
			pos[att.Exit].cursive = i
			p.XOffset, p.YOffset = info.Placement.offset()
			hasCursive = true
		}
	}

	if hasCursive {
		if err := l.resolveCursive(infos, pos); err != nil {
			return nil, err
		}
	}
	if hasMarks {
		l.resolveMarks(infos, pos)
	}
	return pos, nil
}

// advance computes the line-axis advance for one glyph, including any
// kerning accumulated during shaping. Upright glyphs in vertical text
// use the vertical advance, falling back to ascender minus descender
// when the font has no vertical metrics.
func (l *Layout) advance(info *Info) (hori, vert int32, err error) {
	gid := info.Glyph.GID
	if l.vertical && isUprightGlyph(&info.Glyph) {
		adv, ok := l.metrics.VerticalAdvance(gid)
		if !ok {
			adv = l.metrics.Ascender() - l.metrics.Descender()
		}
		return 0, adv + int32(info.Kerning), nil
	}
	adv, ok := l.metrics.HorizontalAdvance(gid)
	if !ok {
		// hmtx is a required table so this is unlikely in practice.
		return 0, 0, &MissingMetricError{GID: gid}
	}
	return adv + int32(info.Kerning), 0, nil
}

// zeroLineAdvance stops a mark from moving the pen along the line axis.
func (l *Layout) zeroLineAdvance(p *Position) {
	if l.vertical {
		p.VertAdvance = 0
	} else {
		p.HoriAdvance = 0
	}
}

// resolveCursive aligns entry and exit anchors for every cursive
// attachment. The line-axis advance of the earlier glyph of each pair is
// set so the later glyph's anchor lands on the earlier glyph's anchor;
// the cross-axis shift targets the earlier or later glyph depending on
// the lookup's RIGHT_TO_LEFT flag and is propagated along the whole
// chain of connected glyphs.
func (l *Layout) resolveCursive(infos []Info, pos []Position) error {
	for i := range infos {
		att := &infos[i].Attachment
		if att.Kind != AttachCursiveAnchor {
			continue
		}

		first, firstAnchor := i, att.EntryAnchor
		second, secondAnchor := att.Exit, att.ExitAnchor
		if att.Exit < i {
			first, firstAnchor = att.Exit, att.ExitAnchor
			second, secondAnchor = i, att.EntryAnchor
		}

		if l.vertical {
			pos[first].VertAdvance = int32(firstAnchor.Y) - int32(secondAnchor.Y)
		} else {
			pos[first].HoriAdvance = int32(firstAnchor.X) - int32(secondAnchor.X)
		}

		target := second
		if att.RightToLeft {
			target = first
		}
		var dx, dy int32
		if l.vertical {
			dx = int32(att.ExitAnchor.X) - int32(att.EntryAnchor.X)
		} else {
			dy = int32(att.ExitAnchor.Y) - int32(att.EntryAnchor.Y)
		}
		if err := adjustCursiveChain(pos, target, dx, dy); err != nil {
			return err
		}
	}
	return nil
}

// adjustCursiveChain shifts a glyph and every glyph reachable from it
// through cursive links by the same delta. Well-formed input links form
// a DAG; a link that revisits a glyph is reported as a BadIndexError
// instead of looping forever.
func adjustCursiveChain(pos []Position, index int, dx, dy int32) error {
	visited := make([]bool, len(pos))
	for index >= 0 {
		if visited[index] {
			return &BadIndexError{Index: index, Len: len(pos), Cycle: true}
		}
		visited[index] = true
		pos[index].XOffset += dx
		pos[index].YOffset += dy
		index = pos[index].cursive
	}
	return nil
}

// resolveMarks computes final offsets for combining marks now that their
// bases carry final positions. A mark's offset is its base's resolved
// offset plus the provisional anchor offset from the forward pass,
// corrected along the line axis for the advances of the glyphs the pen
// crosses between base and mark.
func (l *Layout) resolveMarks(infos []Info, pos []Position) {
	for i := range infos {
		att := &infos[i].Attachment
		switch att.Kind {
		case AttachMarkAnchor:
			p := &pos[i]
			p.XOffset += pos[att.Base].XOffset
			p.YOffset += pos[att.Base].YOffset
			adj := l.spanAdjust(pos, att.Base, i)
			if l.vertical {
				p.YOffset += adj
			} else {
				p.XOffset += adj
			}

		case AttachMarkOverprint:
			pos[i].XOffset = pos[att.Base].XOffset
			pos[i].YOffset = pos[att.Base].YOffset
		}
	}
}

// spanAdjust sums the line-axis advances the pen accumulates between a
// base glyph's origin and its mark's origin. Left-to-right pens move
// forward over [base, mark), so the mark walks back by that sum;
// right-to-left rendering iterates the sequence reversed, so the span is
// [mark, base) and the sign flips.
func (l *Layout) spanAdjust(pos []Position, base, mark int) int32 {
	var sum int32
	if l.direction == LeftToRight {
		for j := base; j < mark; j++ {
			sum -= l.lineAdvance(&pos[j])
		}
	} else {
		for j := mark; j < base; j++ {
			sum += l.lineAdvance(&pos[j])
		}
	}
	return sum
}

func (l *Layout) lineAdvance(p *Position) int32 {
	if l.vertical {
		return p.VertAdvance
	}
	return p.HoriAdvance
}
