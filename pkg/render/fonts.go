package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontCache builds text faces from the embedded Go fonts and caches them per size.
type FontCache struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[string]*text.GoTextFace
}

// NewFontCache parses the regular and bold font sources.
//
// Returns a *LoadError with Kind LoadFont if either source cannot be parsed.
func NewFontCache() (*FontCache, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, &LoadError{Kind: LoadFont, Name: "goregular", Err: err}
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, &LoadError{Kind: LoadFont, Name: "gobold", Err: err}
	}
	return &FontCache{
		regular: regular,
		bold:    bold,
		faces:   make(map[string]*text.GoTextFace),
	}, nil
}

// Face returns the cached face for the given size and weight.
func (fc *FontCache) Face(size float64, bold bool) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%v:%.1f", bold, size)
	if face, ok := fc.faces[cacheKey]; ok {
		return face
	}

	source := fc.regular
	if bold {
		source = fc.bold
	}
	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	fc.faces[cacheKey] = face
	return face
}
