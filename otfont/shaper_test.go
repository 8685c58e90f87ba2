package otfont

import (
	"errors"
	"testing"

	"github.com/typefort/otkit/layout"
)

func TestGetShaperDefault(t *testing.T) {
	s, err := GetShaper("")
	if err != nil {
		t.Fatalf("GetShaper(\"\"): %v", err)
	}
	if _, ok := s.(*textshapeShaper); !ok {
		t.Errorf("default shaper = %T, want *textshapeShaper", s)
	}
}

func TestGetShaperByName(t *testing.T) {
	for _, name := range []string{"textshape", "gotext"} {
		if _, err := GetShaper(name); err != nil {
			t.Errorf("GetShaper(%q): %v", name, err)
		}
	}
}

func TestGetShaperUnknown(t *testing.T) {
	_, err := GetShaper("nosuch")
	if !errors.Is(err, ErrUnknownShaper) {
		t.Errorf("GetShaper(nosuch) error = %v, want ErrUnknownShaper", err)
	}
}

func TestShaperNames(t *testing.T) {
	names := ShaperNames()
	have := map[string]bool{}
	for _, n := range names {
		have[n] = true
	}
	if !have["textshape"] || !have["gotext"] {
		t.Errorf("ShaperNames() = %v, want textshape and gotext present", names)
	}
}

type stubShaper struct {
	calls int
}

func (s *stubShaper) Shape(src *Source, text string, opts ShapeOptions) ([]layout.Info, error) {
	s.calls++
	return nil, nil
}

func TestRegisterShaper(t *testing.T) {
	fake := &stubShaper{}
	RegisterShaper("fake", fake)
	defer func() {
		shaperMu.Lock()
		delete(shapers, "fake")
		shaperMu.Unlock()
	}()

	s, err := GetShaper("fake")
	if err != nil {
		t.Fatalf("GetShaper(fake): %v", err)
	}
	if s != fake {
		t.Error("GetShaper(fake) returned a different shaper")
	}
}
