package otfont

import (
	"sync"

	"github.com/typefort/otkit/layout"
)

// ShapeOptions selects script, language and layout features for one
// shaping call.
type ShapeOptions struct {
	// Script is an OpenType script tag such as "arab". Zero means guess
	// from the text.
	Script layout.Tag
	// Language is an OpenType language tag such as "URD ". Zero means
	// default language system.
	Language layout.Tag
	// Direction is the inline direction the run was segmented with.
	Direction layout.Direction
	// Vertical requests vertical layout for upright glyphs.
	Vertical bool
	// Features holds user feature settings in CSS font-feature-settings
	// syntax, comma separated ("smcp", "-liga", "aalt=2").
	Features string
}

// Shaper turns text into shaped glyph infos ready for position
// resolution. Implementations map engine-specific shaping output onto
// layout.Info values.
type Shaper interface {
	Shape(src *Source, text string, opts ShapeOptions) ([]layout.Info, error)
}

// DefaultShaper is the registry name of the default shaping backend.
const DefaultShaper = "textshape"

var (
	shaperMu sync.RWMutex
	shapers  = map[string]Shaper{}
)

// RegisterShaper makes a shaping backend available under name.
// Backends in this package register themselves at init time.
func RegisterShaper(name string, s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	shapers[name] = s
}

// GetShaper returns the backend registered under name. The empty string
// selects the default backend.
func GetShaper(name string) (Shaper, error) {
	if name == "" {
		name = DefaultShaper
	}
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	s, ok := shapers[name]
	if !ok {
		return nil, ErrUnknownShaper
	}
	return s, nil
}

// ShaperNames lists the registered backend names.
func ShaperNames() []string {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	names := make([]string, 0, len(shapers))
	for name := range shapers {
		names = append(names, name)
	}
	return names
}
