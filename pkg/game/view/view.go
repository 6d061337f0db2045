// Package view derives the camera framing from the trail's spatial extent:
// the buffered bounding box of remembered positions, the largest tile size
// that fits it into the display area, and a smoothed pan offset that chases
// the centering target.
package view

import "wanderer/pkg/engine/world"

// Bounds is an inclusive axis-aligned cell rectangle.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// BoundsOf returns the bounding box of the given positions expanded by
// buffer cells on every side. An empty position list yields the buffered
// box around the origin.
func BoundsOf(positions []world.Position, buffer int) Bounds {
	b := Bounds{}
	for i, p := range positions {
		if i == 0 {
			b = Bounds{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
			continue
		}
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	b.MinX -= buffer
	b.MaxX += buffer
	b.MinY -= buffer
	b.MaxY += buffer
	return b
}

// Width returns the inclusive cell count along x.
func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

// Height returns the inclusive cell count along y.
func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// FitTileSize returns the largest integer tile size such that the bounded
// cell grid fits the display area on both axes. Degenerate display sizes can
// legitimately return 0; callers decide whether to clamp for drawing.
func FitTileSize(b Bounds, displayWidth, displayHeight int) int {
	tx := displayWidth / b.Width()
	ty := displayHeight / b.Height()
	if ty < tx {
		return ty
	}
	return tx
}

// Camera is the smoothed pan state. Offsets are in pixels; the target is
// recomputed every frame and the displayed offset eases toward it, never
// teleporting.
type Camera struct {
	OffsetX, OffsetY float64
	TargetX, TargetY float64
}

// Retarget centers the pixel-space grid within the display area, discarding
// the integer centering remainder.
func (c *Camera) Retarget(b Bounds, tileSize, displayWidth, displayHeight int) {
	c.TargetX = float64((displayWidth - b.Width()*tileSize) / 2)
	c.TargetY = float64((displayHeight - b.Height()*tileSize) / 2)
}

// Step advances the offset toward the target by one tick of first-order
// exponential smoothing. With a static target the residual distance decays
// geometrically by the smoothing factor each tick.
func (c *Camera) Step(smoothing float64) {
	c.OffsetX += (c.TargetX - c.OffsetX) * (1 - smoothing)
	c.OffsetY += (c.TargetY - c.OffsetY) * (1 - smoothing)
}

// Snap moves the offset directly onto the target. Used once at session
// start so the first frame does not pan in from (0,0).
func (c *Camera) Snap() {
	c.OffsetX = c.TargetX
	c.OffsetY = c.TargetY
}
