package layout

import (
	"errors"
	"testing"
)

// fakeMetrics is a Metrics stub with fixed advances per glyph.
type fakeMetrics struct {
	hori map[GlyphID]int32
	vert map[GlyphID]int32
	asc  int32
	desc int32
}

func (m *fakeMetrics) HorizontalAdvance(gid GlyphID) (int32, bool) {
	adv, ok := m.hori[gid]
	return adv, ok
}

func (m *fakeMetrics) VerticalAdvance(gid GlyphID) (int32, bool) {
	adv, ok := m.vert[gid]
	return adv, ok
}

func (m *fakeMetrics) Ascender() int32  { return m.asc }
func (m *fakeMetrics) Descender() int32 { return m.desc }

// uniformMetrics returns metrics where every glyph up to gid 99 has a
// horizontal advance of 500.
func uniformMetrics() *fakeMetrics {
	m := &fakeMetrics{
		hori: make(map[GlyphID]int32),
		vert: make(map[GlyphID]int32),
		asc:  800,
		desc: -200,
	}
	for gid := GlyphID(0); gid < 100; gid++ {
		m.hori[gid] = 500
	}
	return m
}

func charInfo(ch rune, gid GlyphID) Info {
	return Info{Glyph: CharGlyph(ch, gid)}
}

func TestPositionsIndexCorrespondence(t *testing.T) {
	l := NewLayout(uniformMetrics(), LeftToRight, false)
	for _, n := range []int{0, 1, 2, 7} {
		infos := make([]Info, n)
		for i := range infos {
			infos[i] = charInfo('a', GlyphID(i))
		}
		pos, err := l.Positions(infos)
		if err != nil {
			t.Fatalf("Positions(%d glyphs) error: %v", n, err)
		}
		if len(pos) != n {
			t.Errorf("Positions(%d glyphs) returned %d positions", n, len(pos))
		}
	}
}

func TestPositionsSimpleAdvance(t *testing.T) {
	l := NewLayout(uniformMetrics(), LeftToRight, false)
	infos := []Info{charInfo('a', 1)}
	infos[0].Kerning = -30

	pos, err := l.Positions(infos)
	if err != nil {
		t.Fatal(err)
	}
	got := pos[0]
	if got.HoriAdvance != 470 {
		t.Errorf("HoriAdvance = %d, want 470", got.HoriAdvance)
	}
	if got.VertAdvance != 0 || got.XOffset != 0 || got.YOffset != 0 {
		t.Errorf("unexpected vert/offset values: %+v", got)
	}
}

func TestPositionsDistancePlacement(t *testing.T) {
	l := NewLayout(uniformMetrics(), LeftToRight, false)
	infos := []Info{charInfo('a', 1)}
	infos[0].Placement = Distance(12, -34)

	pos, err := l.Positions(infos)
	if err != nil {
		t.Fatal(err)
	}
	if pos[0].XOffset != 12 || pos[0].YOffset != -34 {
		t.Errorf("offset = (%d, %d), want (12, -34)", pos[0].XOffset, pos[0].YOffset)
	}
}

func TestPositionsMarkAnchor(t *testing.T) {
	l := NewLayout(uniformMetrics(), LeftToRight, false)
	infos := []Info{
		charInfo('a', 1),
		charInfo(0x0301, 2),
	}
	infos[0].Placement = Distance(10, 20)
	infos[1].Attachment = MarkAttachment(0, Anchor{X: 300, Y: 400}, Anchor{X: 50, Y: 60})

	pos, err := l.Positions(infos)
	if err != nil {
		t.Fatal(err)
	}
	// Anchor difference (250, 340) plus the base's distance applied both
	// provisionally and through the base's resolved offset, minus the
	// base's advance crossed by the pen.
	wantX := int32(250 + 10 + 10 - 500)
	wantY := int32(340 + 20 + 20)
	if pos[1].XOffset != wantX || pos[1].YOffset != wantY {
		t.Errorf("mark offset = (%d, %d), want (%d, %d)",
			pos[1].XOffset, pos[1].YOffset, wantX, wantY)
	}
	if pos[1].HoriAdvance != 0 {
		t.Errorf("mark HoriAdvance = %d, want 0", pos[1].HoriAdvance)
	}
}

func TestPositionsMarkAnchorRTL(t *testing.T) {
	l := NewLayout(uniformMetrics(), RightToLeft, false)
	infos := []Info{
		charInfo(0x0627, 1),
		charInfo(0x064E, 2),
	}
	infos[1].Attachment = MarkAttachment(0, Anchor{X: 120, Y: 600}, Anchor{X: 40, Y: 0})

	pos, err := l.Positions(infos)
	if err != nil {
		t.Fatal(err)
	}
	// With the mark directly after its base, a right-to-left pen crosses
	// no advances between the two origins.
	if pos[1].XOffset != 80 || pos[1].YOffset != 600 {
		t.Errorf("mark offset = (%d, %d), want (80, 600)", pos[1].XOffset, pos[1].YOffset)
	}
}

func TestPositionsMarkOverprint(t *testing.T) {
	tests := []struct {
		name      string
		placement Placement
	}{
		{"no placement", Placement{}},
		{"distance placement", Distance(-15, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(uniformMetrics(), LeftToRight, false)
			infos := []Info{
				charInfo('a', 1),
				charInfo(0x3099, 2),
			}
			infos[0].Placement = tt.placement
			infos[1].Attachment = OverprintAttachment(0)

			pos, err := l.Positions(infos)
			if err != nil {
				t.Fatal(err)
			}
			if pos[1].XOffset != pos[0].XOffset || pos[1].YOffset != pos[0].YOffset {
				t.Errorf("overprint offset = (%d, %d), base = (%d, %d)",
					pos[1].XOffset, pos[1].YOffset, pos[0].XOffset, pos[0].YOffset)
			}
		})
	}
}

func TestPositionsCursiveAlignment(t *testing.T) {
	l := NewLayout(uniformMetrics(), LeftToRight, false)
	infos := []Info{
		charInfo('x', 1),
		charInfo('y', 2),
	}
	infos[0].Attachment = CursiveAttachment(1, false,
		Anchor{X: 100, Y: 50}, Anchor{X: 0, Y: 0})

	pos, err := l.Positions(infos)
	if err != nil {
		t.Fatal(err)
	}
	// The flag is clear, so the later glyph takes the cross-axis shift
	// and the forward link carries it back through the chain.
	if pos[0].YOffset != 50 {
		t.Errorf("pos[0].YOffset = %d, want 50", pos[0].YOffset)
	}
	if pos[1].HoriAdvance != 500 {
		t.Errorf("pos[1].HoriAdvance = %d, want 500 (unaffected)", pos[1].HoriAdvance)
	}
	// Entry anchor of the earlier glyph aligned against the later
	// glyph's exit anchor.
	if pos[0].HoriAdvance != -100 {
		t.Errorf("pos[0].HoriAdvance = %d, want -100", pos[0].HoriAdvance)
	}
}

func TestPositionsCursiveRTLFlag(t *testing.T) {
	l := NewLayout(uniformMetrics(), RightToLeft, false)
	infos := []Info{
		charInfo(0x0644, 1),
		charInfo(0x0627, 2),
	}
	// Arabic-style connection: the later glyph joins the earlier one.
	infos[1].Attachment = CursiveAttachment(0, true,
		Anchor{X: 20, Y: 80}, Anchor{X: 480, Y: 30})

	pos, err := l.Positions(infos)
	if err != nil {
		t.Fatal(err)
	}
	// The flag is set, so the earlier glyph takes the cross-axis shift,
	// and the forward link carries the same delta to the later glyph.
	if pos[0].YOffset != 50 {
		t.Errorf("pos[0].YOffset = %d, want 50", pos[0].YOffset)
	}
	if pos[1].YOffset != 50 {
		t.Errorf("pos[1].YOffset = %d, want 50", pos[1].YOffset)
	}
	// Exit anchor of the earlier glyph aligned against the later
	// glyph's entry anchor.
	if pos[0].HoriAdvance != 20-480 {
		t.Errorf("pos[0].HoriAdvance = %d, want %d", pos[0].HoriAdvance, 20-480)
	}
}

func TestPositionsCursiveChainPropagation(t *testing.T) {
	l := NewLayout(uniformMetrics(), RightToLeft, false)
	infos := []Info{
		charInfo(0x0633, 1),
		charInfo(0x0644, 2),
		charInfo(0x0627, 3),
	}
	// Two links: 1 joins 0, 2 joins 1. Both lookups carry the
	// right-to-left flag, so each shift lands on the earlier glyph and
	// propagates forward through the chain.
	infos[1].Attachment = CursiveAttachment(0, true, Anchor{X: 0, Y: 100}, Anchor{X: 0, Y: 0})
	infos[2].Attachment = CursiveAttachment(1, true, Anchor{X: 0, Y: 40}, Anchor{X: 0, Y: 0})

	pos, err := l.Positions(infos)
	if err != nil {
		t.Fatal(err)
	}
	// First link shifts glyph 0 by 100, reaching glyphs 1 and 2 through
	// the forward links. Second link shifts glyph 1 by a further 40,
	// reaching glyph 2 but not glyph 0.
	wantY := []int32{100, 100 + 40, 100 + 40}
	for i, want := range wantY {
		if pos[i].YOffset != want {
			t.Errorf("pos[%d].YOffset = %d, want %d", i, pos[i].YOffset, want)
		}
	}
}

func TestPositionsCursiveCycle(t *testing.T) {
	l := NewLayout(uniformMetrics(), LeftToRight, false)
	infos := []Info{
		charInfo('x', 1),
		charInfo('y', 2),
	}
	infos[0].Attachment = CursiveAttachment(1, false, Anchor{}, Anchor{})
	infos[1].Attachment = CursiveAttachment(0, false, Anchor{}, Anchor{})

	_, err := l.Positions(infos)
	var badIndex *BadIndexError
	if !errors.As(err, &badIndex) {
		t.Fatalf("Positions() error = %v, want BadIndexError", err)
	}
	if !badIndex.Cycle {
		t.Errorf("BadIndexError.Cycle = false, want true")
	}
}

func TestPositionsBadIndex(t *testing.T) {
	tests := []struct {
		name       string
		attachment Attachment
	}{
		{"mark anchor out of range", MarkAttachment(5, Anchor{}, Anchor{})},
		{"mark anchor negative", MarkAttachment(-1, Anchor{}, Anchor{})},
		{"overprint out of range", OverprintAttachment(2)},
		{"cursive out of range", CursiveAttachment(9, false, Anchor{}, Anchor{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(uniformMetrics(), LeftToRight, false)
			infos := []Info{
				charInfo('a', 1),
				charInfo('b', 2),
			}
			infos[1].Attachment = tt.attachment

			_, err := l.Positions(infos)
			var badIndex *BadIndexError
			if !errors.As(err, &badIndex) {
				t.Fatalf("Positions() error = %v, want BadIndexError", err)
			}
		})
	}
}

func TestPositionsMissingMetric(t *testing.T) {
	m := &fakeMetrics{hori: map[GlyphID]int32{}, vert: map[GlyphID]int32{}}
	l := NewLayout(m, LeftToRight, false)

	_, err := l.Positions([]Info{charInfo('a', 7)})
	var missing *MissingMetricError
	if !errors.As(err, &missing) {
		t.Fatalf("Positions() error = %v, want MissingMetricError", err)
	}
	if missing.GID != 7 {
		t.Errorf("MissingMetricError.GID = %d, want 7", missing.GID)
	}
}

func TestPositionsVerticalUpright(t *testing.T) {
	m := uniformMetrics()
	m.vert[1] = 1000
	l := NewLayout(m, LeftToRight, true)

	infos := []Info{
		charInfo(0x6C38, 1), // ideograph with a vertical metric
		charInfo(0x3042, 2), // kana without one, falls back to asc-desc
		charInfo('a', 3),    // rotated, keeps its horizontal advance
	}
	pos, err := l.Positions(infos)
	if err != nil {
		t.Fatal(err)
	}
	if pos[0].VertAdvance != 1000 || pos[0].HoriAdvance != 0 {
		t.Errorf("pos[0] = %+v, want VertAdvance 1000", pos[0])
	}
	if pos[1].VertAdvance != 1000 { // 800 - (-200)
		t.Errorf("pos[1].VertAdvance = %d, want 1000 (ascender - descender)", pos[1].VertAdvance)
	}
	if pos[2].HoriAdvance != 500 || pos[2].VertAdvance != 0 {
		t.Errorf("pos[2] = %+v, want HoriAdvance 500", pos[2])
	}
}

func TestPositionsVerticalAlternate(t *testing.T) {
	m := uniformMetrics()
	m.vert[4] = 900
	l := NewLayout(m, LeftToRight, true)

	glyph := CharGlyph('a', 4)
	glyph.VertAlternate = true
	pos, err := l.Positions([]Info{{Glyph: glyph}})
	if err != nil {
		t.Fatal(err)
	}
	if pos[0].VertAdvance != 900 {
		t.Errorf("VertAdvance = %d, want 900", pos[0].VertAdvance)
	}
}

func TestPositionsRepeatedResolutionIsStable(t *testing.T) {
	l := NewLayout(uniformMetrics(), LeftToRight, false)
	infos := []Info{
		charInfo('a', 1),
		charInfo(0x0301, 2),
		charInfo('x', 3),
	}
	infos[1].Attachment = MarkAttachment(0, Anchor{X: 250, Y: 700}, Anchor{X: 30, Y: 0})
	infos[2].Attachment = CursiveAttachment(0, false, Anchor{X: 90, Y: 10}, Anchor{X: 5, Y: 5})

	first, err := l.Positions(infos)
	if err != nil {
		t.Fatal(err)
	}
	second, err := l.Positions(infos)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("position %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
