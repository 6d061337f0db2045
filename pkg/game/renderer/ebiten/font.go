package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

const baseFontSize = 14.0

// loadFonts parses the embedded Go fonts into text face sources.
func (e *EbitenRenderer) loadFonts() error {
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load sans font: %w", err)
	}

	e.monoFontSource = mono
	e.sansFontSource = sans
	return nil
}

// tileFontSize returns the font size for map tile glyphs, scaled to the
// fitted tile size.
func (e *EbitenRenderer) tileFontSize() float64 {
	size := baseFontSize * float64(e.tileSize) / 24.0 * e.fontScale
	if size < 6 {
		size = 6
	}
	return size
}

// uiFontSize returns the font size for HUD text.
func (e *EbitenRenderer) uiFontSize() float64 {
	size := baseFontSize * e.fontScale
	if size < 8 {
		size = 8
	}
	return size
}

// tileFace returns a cached monospace face for map tiles.
func (e *EbitenRenderer) tileFace() *text.GoTextFace {
	size := e.tileFontSize()
	if e.cachedTileFace == nil || e.cachedTileFaceSize != size {
		e.cachedTileFaceSize = size
		e.cachedTileFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
	}
	return e.cachedTileFace
}

// uiFace returns a cached sans-serif face for HUD text.
func (e *EbitenRenderer) uiFace() *text.GoTextFace {
	size := e.uiFontSize()
	if e.cachedUIFace == nil || e.cachedUIFaceSize != size {
		e.cachedUIFaceSize = size
		e.cachedUIFace = &text.GoTextFace{
			Source: e.sansFontSource,
			Size:   size,
		}
	}
	return e.cachedUIFace
}

// invalidateFontCache clears cached font faces (call when zoom changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedTileFace = nil
	e.cachedUIFace = nil
}
