package otfont

import (
	"fmt"
	"os"
	"sync"

	"github.com/boxesandglue/textshape/ot"
	"golang.org/x/image/font/sfnt"

	"github.com/typefort/otkit"
	"github.com/typefort/otkit/internal/sfntdir"
)

// Source is one font loaded into memory. It owns a private copy of the
// font bytes and hands out parsed views of them on demand. A Source is
// heavyweight and meant to be shared; the cached views make repeated
// metric and table lookups cheap.
//
// The cached views are parsed at most once each. Source itself is safe
// for concurrent use, but the sfnt view's glyph loading is not; see
// Outlines.
type Source struct {
	data  []byte
	index int
	dir   *sfntdir.Directory

	otOnce sync.Once
	otFont *ot.Font
	otErr  error

	faceOnce sync.Once
	otFace   *ot.Face
	faceErr  error

	sfntOnce sync.Once
	sfntFont *sfnt.Font
	sfntErr  error
}

// New creates a Source from raw font data. index selects a member of a
// TrueType collection and must be 0 for plain TTF/OTF files. The data
// slice is copied and can be reused by the caller.
func New(data []byte, index int) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dir, err := sfntdir.Parse(data, index)
	if err != nil {
		return nil, err
	}

	cp := make([]byte, len(data))
	copy(cp, data)

	otkit.Logger().Debug("font loaded",
		"flavor", dir.FlavorString(),
		"tables", len(dir.Entries),
		"index", index)

	return &Source{data: cp, index: index, dir: dir}, nil
}

// Open loads a Source from a font file path.
func Open(path string, index int) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("otfont: read font file: %w", err)
	}
	src, err := New(data, index)
	if err != nil {
		return nil, fmt.Errorf("otfont: %s: %w", path, err)
	}
	return src, nil
}

// Data returns the font bytes. Callers must not modify the slice.
func (s *Source) Data() []byte {
	return s.data
}

// Index returns the collection member index the Source was created with.
func (s *Source) Index() int {
	return s.index
}

// Directory returns the parsed table directory.
func (s *Source) Directory() *sfntdir.Directory {
	return s.dir
}

// Font returns the textshape view of the font.
func (s *Source) Font() (*ot.Font, error) {
	s.otOnce.Do(func() {
		s.otFont, s.otErr = ot.ParseFont(s.data, s.index)
	})
	return s.otFont, s.otErr
}

// Face returns the textshape metrics view of the font.
func (s *Source) Face() (*ot.Face, error) {
	s.faceOnce.Do(func() {
		font, err := s.Font()
		if err != nil {
			s.faceErr = err
			return
		}
		s.otFace, s.faceErr = ot.NewFace(font)
	})
	return s.otFace, s.faceErr
}

// SFNT returns the x/image view of the font, used for outline extraction
// and glyph names.
func (s *Source) SFNT() (*sfnt.Font, error) {
	s.sfntOnce.Do(func() {
		if s.dir.Collection {
			coll, err := sfnt.ParseCollection(s.data)
			if err != nil {
				s.sfntErr = fmt.Errorf("otfont: parse collection: %w", err)
				return
			}
			s.sfntFont, s.sfntErr = coll.Font(s.index)
			return
		}
		s.sfntFont, s.sfntErr = sfnt.Parse(s.data)
	})
	return s.sfntFont, s.sfntErr
}

// NumGlyphs returns the glyph count from maxp.
func (s *Source) NumGlyphs() (int, error) {
	font, err := s.Font()
	if err != nil {
		return 0, err
	}
	return font.NumGlyphs(), nil
}

// Upem returns the design units per em.
func (s *Source) Upem() (uint16, error) {
	face, err := s.Face()
	if err != nil {
		return 0, err
	}
	return face.Upem(), nil
}

// HasTable reports whether the font carries the named table.
func (s *Source) HasTable(tag string) bool {
	_, ok := s.dir.Find(tag)
	return ok
}

// TableData returns the raw bytes of the named table.
func (s *Source) TableData(tag string) ([]byte, bool) {
	return s.dir.Table(s.data, tag)
}
