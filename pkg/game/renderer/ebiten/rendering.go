package ebiten

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"wanderer/pkg/game/renderer"
	"wanderer/pkg/game/trail"
)

// Draw renders the frame: map area, trail cells, player and HUD panel
// (Ebiten interface).
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if e.session == nil || e.monoFontSource == nil || e.sansFontSource == nil {
		return
	}

	mapWidth, mapHeight := e.gameAreaSize()
	vector.DrawFilledRect(screen, 0, 0, float32(mapWidth), float32(mapHeight), colorMapBackground, false)

	e.drawGrid(screen)
	e.drawTrail(screen)
	e.drawPlayer(screen)
	e.drawHUD(screen)
}

// cellOrigin returns the top-left pixel of the given cell.
func (e *EbitenRenderer) cellOrigin(x, y int) (float32, float32) {
	cam := e.session.Game.Camera
	px := float32(cam.OffsetX) + float32((x-e.bounds.MinX)*e.tileSize)
	py := float32(cam.OffsetY) + float32((y-e.bounds.MinY)*e.tileSize)
	return px, py
}

// drawGrid paints faint cell borders over the fitted bounds.
func (e *EbitenRenderer) drawGrid(screen *ebiten.Image) {
	for x := e.bounds.MinX; x <= e.bounds.MaxX+1; x++ {
		px, py := e.cellOrigin(x, e.bounds.MinY)
		_, pyEnd := e.cellOrigin(x, e.bounds.MaxY+1)
		vector.StrokeLine(screen, px, py, px, pyEnd, 1, colorGridLine, false)
	}
	for y := e.bounds.MinY; y <= e.bounds.MaxY+1; y++ {
		px, py := e.cellOrigin(e.bounds.MinX, y)
		pxEnd, _ := e.cellOrigin(e.bounds.MaxX+1, y)
		vector.StrokeLine(screen, px, py, pxEnd, py, 1, colorGridLine, false)
	}
}

// drawTrail paints every remembered cell, oldest first so fresher cells
// cover any overlap. Older cells fade toward the background and shrink
// inward, reading as the memory crumbling at the edges.
func (e *EbitenRenderer) drawTrail(screen *ebiten.Image) {
	type aged struct {
		entry *trail.Entry
		age   int
	}

	cells := []aged{}
	e.session.Game.Trail.Each(func(age int, entry *trail.Entry) {
		cells = append(cells, aged{entry: entry, age: age})
	})

	limit := e.session.Game.Trail.Limit()
	for i := len(cells) - 1; i >= 0; i-- {
		e.drawCell(screen, cells[i].entry, cells[i].age, limit)
	}
}

// drawCell paints one trail cell with its room color faded by age.
func (e *EbitenRenderer) drawCell(screen *ebiten.Image, entry *trail.Entry, age, limit int) {
	px, py := e.cellOrigin(entry.Pos.X, entry.Pos.Y)

	fade := float64(age) / float64(limit)
	inset := float32(0)
	if e.tileSize >= 8 {
		// Up to a quarter of the tile creeps inward on the oldest cells.
		inset = float32(fade * float64(e.tileSize) / 4)
	}

	roomColor := fadeToward(ParseColor(entry.Room.Color), colorMapBackground, fade*0.7)
	size := float32(e.tileSize) - 2*inset
	vector.DrawFilledRect(screen, px+inset+1, py+inset+1, size-2, size-2, roomColor, false)

	if e.tileSize < 12 || entry.Room.Type == "" {
		return
	}

	// Room type initial, centered in the cell.
	glyph := strings.ToUpper(entry.Room.Type[:1])
	face := e.tileFace()
	gw, gh := text.Measure(glyph, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(px)+(float64(e.tileSize)-gw)/2, float64(py)+(float64(e.tileSize)-gh)/2)
	op.ColorScale.ScaleWithColor(colorText)
	text.Draw(screen, glyph, face, op)
}

// drawPlayer paints the player marker as a filled circle in the current cell.
func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image) {
	pos := e.session.Game.PlayerPos
	px, py := e.cellOrigin(pos.X, pos.Y)

	half := float32(e.tileSize) / 2
	radius := float32(e.tileSize) / 3
	if radius < 2 {
		radius = 2
	}
	vector.DrawFilledCircle(screen, px+half, py+half, radius, colorPlayer, true)
}

// drawHUD paints the right-hand panel: room info, actions, backpack, the
// transient action message and the message log.
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image) {
	mapWidth, _ := e.gameAreaSize()
	vector.DrawFilledRect(screen, float32(mapWidth), 0, float32(e.hudWidth), float32(e.windowHeight), colorPanelBackground, false)

	face := e.uiFace()
	lineHeight := e.uiFontSize() + 6
	x := float64(mapWidth) + 10
	y := lineHeight

	// Roughly 2 characters per line per 13px of panel width.
	wrapWidth := (e.hudWidth - 20) / int(e.uiFontSize()/2)
	if wrapWidth < 10 {
		wrapWidth = 10
	}

	entry := e.session.Game.Trail.Current()
	if entry != nil {
		y = e.drawTextLine(screen, entry.Room.Name, face, x, y, lineHeight, colorText)
		for _, line := range renderer.WrapText(entry.Room.Flavor, wrapWidth) {
			y = e.drawTextLine(screen, line, face, x, y, lineHeight, colorSubtle)
		}
		y += lineHeight / 2

		for i, action := range entry.Room.Actions {
			if action == "" {
				continue
			}
			y = e.drawTextLine(screen, fmt.Sprintf("%d) %s", i+1, action), face, x, y, lineHeight, colorAction)
		}
		if n := len(entry.Loot); n > 0 && !entry.Looted {
			y = e.drawTextLine(screen, gotext.Get("%d items on the ground", n), face, x, y, lineHeight, colorItem)
		}
		y += lineHeight / 2
	}

	pack := e.session.Game.Backpack
	y = e.drawTextLine(screen, gotext.Get("Backpack %d/%d", pack.Count(), pack.Capacity()), face, x, y, lineHeight, colorText)
	pack.Each(func(name string, count int) {
		line := name
		if count > 1 {
			line = fmt.Sprintf("%s x%d", name, count)
		}
		y = e.drawTextLine(screen, line, face, x, y, lineHeight, colorItem)
	})
	y += lineHeight / 2

	if msg := e.session.Game.ActionMessage; msg != "" {
		for _, line := range renderer.WrapText(msg, wrapWidth) {
			y = e.drawTextLine(screen, line, face, x, y, lineHeight, colorMessage)
		}
		y += lineHeight / 2
	}

	for _, msg := range e.session.Game.Messages {
		for _, line := range renderer.WrapText(msg, wrapWidth) {
			y = e.drawTextLine(screen, line, face, x, y, lineHeight, colorSubtle)
		}
	}

	// Controls reminder pinned to the bottom of the panel.
	controls := gotext.Get("move: wasd/arrows  act: 1-5  quit: q")
	for i, line := range renderer.WrapText(controls, wrapWidth) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, float64(e.windowHeight)-lineHeight*float64(2-i)-6)
		op.ColorScale.ScaleWithColor(colorSubtle)
		text.Draw(screen, line, face, op)
	}
}

// drawTextLine draws one line of HUD text and returns the next baseline.
func (e *EbitenRenderer) drawTextLine(screen *ebiten.Image, str string, face *text.GoTextFace, x, y, lineHeight float64, clr color.Color) float64 {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
	return y + lineHeight
}

// fadeToward linearly blends c toward bg by t in [0,1].
func fadeToward(c, bg color.RGBA, t float64) color.RGBA {
	blend := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{
		R: blend(c.R, bg.R),
		G: blend(c.G, bg.G),
		B: blend(c.B, bg.B),
		A: 255,
	}
}
