package layout

// GlyphID identifies a glyph within a font.
type GlyphID uint16

// Anchor is a point in font design units used to align two glyphs.
type Anchor struct {
	X, Y int16
}

// Origin records how a glyph entered the shaped sequence: mapped from a
// character through cmap, or inserted directly by a substitution.
type Origin struct {
	// Char is the originating character. Only meaningful when Direct is false.
	Char rune
	// Direct marks glyphs that were inserted by glyph index with no
	// originating character.
	Direct bool
}

// Glyph is one shaped glyph as produced by a shaping backend.
type Glyph struct {
	GID GlyphID
	// Unicodes holds the Unicode scalar values this glyph represents.
	// Ligatures carry several, substituted glyphs may carry none.
	Unicodes []rune
	// LigComponent is the position of this glyph within a ligature.
	LigComponent uint16
	Origin       Origin

	SmallCaps     bool
	MultiSubstDup bool
	VertAlternate bool
	FakeBold      bool
	FakeItalic    bool
}

// CharGlyph builds a Glyph for a character mapped through cmap.
func CharGlyph(ch rune, gid GlyphID) Glyph {
	return Glyph{
		GID:      gid,
		Unicodes: []rune{ch},
		Origin:   Origin{Char: ch},
	}
}

// DirectGlyph builds a Glyph addressed by glyph index with no
// originating character.
func DirectGlyph(gid GlyphID) Glyph {
	return Glyph{
		GID:    gid,
		Origin: Origin{Direct: true},
	}
}

// PlacementKind classifies a Placement.
type PlacementKind int

const (
	// PlaceNone leaves the glyph where the pen put it.
	PlaceNone PlacementKind = iota
	// PlaceDistance shifts the glyph by a fixed design-unit distance.
	PlaceDistance
)

// Placement carries a positional adjustment applied during shaping, such
// as a pair-positioning shift, independent of any attachment.
type Placement struct {
	Kind   PlacementKind
	DX, DY int32
}

// Distance builds a Placement shifting the glyph by (dx, dy).
func Distance(dx, dy int32) Placement {
	return Placement{Kind: PlaceDistance, DX: dx, DY: dy}
}

// offset returns the shift this placement applies, (0, 0) for PlaceNone.
func (p Placement) offset() (int32, int32) {
	if p.Kind == PlaceDistance {
		return p.DX, p.DY
	}
	return 0, 0
}

// AttachmentKind classifies how a glyph's position depends on another
// glyph in the sequence.
type AttachmentKind int

const (
	// AttachNone is an independently placed glyph.
	AttachNone AttachmentKind = iota
	// AttachMarkAnchor aligns a combining mark's anchor with an anchor
	// on its base glyph.
	AttachMarkAnchor
	// AttachMarkOverprint stacks a mark exactly on its base glyph's
	// final position.
	AttachMarkOverprint
	// AttachCursiveAnchor joins this glyph's entry anchor to another
	// glyph's exit anchor.
	AttachCursiveAnchor
)

// String returns the string representation of the attachment kind.
func (k AttachmentKind) String() string {
	switch k {
	case AttachNone:
		return "None"
	case AttachMarkAnchor:
		return "MarkAnchor"
	case AttachMarkOverprint:
		return "MarkOverprint"
	case AttachCursiveAnchor:
		return "CursiveAnchor"
	default:
		return "Unknown"
	}
}

// Attachment describes the dependency of one glyph's position on another
// glyph in the same sequence. Base and Exit are plain indices into the
// sequence; they are bounds-checked during resolution rather than
// trusted from the shaper.
type Attachment struct {
	Kind AttachmentKind

	// Base indexes the glyph a mark attaches to.
	// Valid for AttachMarkAnchor and AttachMarkOverprint.
	Base int
	// BaseAnchor and MarkAnchor are the anchor pair aligned by
	// AttachMarkAnchor.
	BaseAnchor Anchor
	MarkAnchor Anchor

	// Exit indexes the glyph whose exit anchor this glyph's entry
	// anchor joins. Valid for AttachCursiveAnchor.
	Exit int
	// RightToLeft mirrors the RIGHT_TO_LEFT flag of the owning lookup.
	RightToLeft bool
	ExitAnchor  Anchor
	EntryAnchor Anchor
}

// MarkAttachment builds an anchor-aligned mark attachment.
func MarkAttachment(base int, baseAnchor, markAnchor Anchor) Attachment {
	return Attachment{
		Kind:       AttachMarkAnchor,
		Base:       base,
		BaseAnchor: baseAnchor,
		MarkAnchor: markAnchor,
	}
}

// OverprintAttachment builds a mark attachment stacking on base.
func OverprintAttachment(base int) Attachment {
	return Attachment{Kind: AttachMarkOverprint, Base: base}
}

// CursiveAttachment builds a cursive connection to the glyph at exit.
func CursiveAttachment(exit int, rightToLeft bool, exitAnchor, entryAnchor Anchor) Attachment {
	return Attachment{
		Kind:        AttachCursiveAnchor,
		Exit:        exit,
		RightToLeft: rightToLeft,
		ExitAnchor:  exitAnchor,
		EntryAnchor: entryAnchor,
	}
}

// IsMark reports whether the attachment marks this glyph as a combining
// mark.
func (a Attachment) IsMark() bool {
	return a.Kind == AttachMarkAnchor || a.Kind == AttachMarkOverprint
}

// Info pairs a shaped glyph with the adjustments shaping produced for it.
type Info struct {
	Glyph      Glyph
	Kerning    int16
	Placement  Placement
	Attachment Attachment
}
