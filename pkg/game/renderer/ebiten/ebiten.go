// Package ebiten is the Ebitengine-based graphical renderer: a real-time
// window with the trail map on the left and a HUD panel on the right.
// Ebitengine is a 2D game library for Go: https://ebitengine.org/
package ebiten

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"wanderer/pkg/game/gameplay"
	"wanderer/pkg/game/view"
)

// errQuit ends ebiten.RunGame cleanly when the player quits.
var errQuit = errors.New("player quit")

// EbitenRenderer is the Ebitengine-based graphical renderer. It implements
// ebiten.Game; Update drives the session and Draw paints the frame.
type EbitenRenderer struct {
	session *gameplay.Session

	windowWidth  int
	windowHeight int
	hudWidth     int

	// Fitted viewport state, recomputed every Update.
	bounds   view.Bounds
	tileSize int

	monoFontSource *text.GoTextFaceSource
	sansFontSource *text.GoTextFaceSource

	// fontScale is adjusted by the zoom keys.
	fontScale float64

	cachedTileFace     *text.GoTextFace
	cachedTileFaceSize float64
	cachedUIFace       *text.GoTextFace
	cachedUIFaceSize   float64
}

// New creates a new Ebitengine renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  800,
		windowHeight: 600,
		hudWidth:     200,
		fontScale:    1.0,
	}
}

// Init loads the font sources. The window itself is created by Run.
func (e *EbitenRenderer) Init() error {
	return e.loadFonts()
}

// Run opens the window and blocks in the Ebitengine game loop until the
// player quits.
func (e *EbitenRenderer) Run(s *gameplay.Session) error {
	e.session = s
	e.windowWidth = s.Cfg.ScreenWidth
	e.windowHeight = s.Cfg.ScreenHeight
	e.hudWidth = s.Cfg.HUDWidth

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Wanderer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, errQuit) {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// Layout implements ebiten.Game. The logical size tracks the window size so
// the map area grows with the window.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
	}
	return e.windowWidth, e.windowHeight
}

// gameAreaSize returns the pixel size of the map area (window minus HUD).
func (e *EbitenRenderer) gameAreaSize() (width, height int) {
	width = e.windowWidth - e.hudWidth
	if width < 1 {
		width = 1
	}
	return width, e.windowHeight
}
