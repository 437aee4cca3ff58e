package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const debugStroke = 1

var (
	debugStaticColor    = color.NRGBA{R: 0x40, G: 0xe0, B: 0x40, A: 0xe0}
	debugKinematicColor = color.NRGBA{R: 0x40, G: 0xa0, B: 0xff, A: 0xe0}
	debugPlayerColor    = color.NRGBA{R: 0xff, G: 0xd0, B: 0x20, A: 0xff}
	debugContactColor   = color.NRGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xff}
)

// DrawPhysicsDebug outlines every Chipmunk shape. Static platforms are green,
// moving platforms blue and the player yellow.
func DrawPhysicsDebug(space *cp.Space, w *ecs.World, screen *ebiten.Image) {
	if space == nil || w == nil || screen == nil {
		return
	}
	camX, camY, zoom := cameraTransform(w)
	cp.DrawSpace(space, &shapeOutliner{screen: screen, camX: camX, camY: camY, zoom: zoom})
}

// DrawRunDebug prints the player's run and support state below the HUD.
func DrawRunDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, run, ok := playerRun(w)
	if !ok {
		return
	}
	grounded := false
	if pc, ok := ecs.Get(w, player, component.PlayerContactComponent.Kind()); ok {
		grounded = pc.Grounded
	}
	var tick uint64
	if clock, ok := clockOf(w); ok {
		tick = clock.Tick
	}
	checkpoint := "none"
	if run.CurrentCheckpoint != nil {
		checkpoint = fmt.Sprintf("(%.0f, %.0f)", run.CurrentCheckpoint.X, run.CurrentCheckpoint.Y)
	}
	text := fmt.Sprintf("Support: %s\nGrounded: %v\nCheckpoint: %s\nDeaths: %d\nTick: %d",
		run.Support.Kind, grounded, checkpoint, run.Deaths, tick)
	ebitenutil.DebugPrintAt(screen, text, 10, 48)
}

// shapeOutliner implements cp.Drawer on top of ebiten's vector package.
type shapeOutliner struct {
	screen *ebiten.Image
	camX   float64
	camY   float64
	zoom   float64
}

func (d *shapeOutliner) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	x, y := d.toScreen(pos)
	vector.StrokeCircle(d.screen, x, y, float32(radius*d.zoom), debugStroke, fcolor(fill), true)
}

func (d *shapeOutliner) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolor(fill))
}

func (d *shapeOutliner) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolor(fill))
}

func (d *shapeOutliner) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count > len(verts) {
		count = len(verts)
	}
	c := fcolor(fill)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], c)
	}
}

func (d *shapeOutliner) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.toScreen(pos)
	vector.FillCircle(d.screen, x, y, float32(size/2+1), debugContactColor, true)
}

func (d *shapeOutliner) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *shapeOutliner) OutlineColor() cp.FColor {
	return nrgbaToF(debugStaticColor)
}

// ShapeColor picks the stroke color by body type; DrawSpace passes it back as fill.
func (d *shapeOutliner) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape == nil || shape.Body() == nil {
		return nrgbaToF(debugStaticColor)
	}
	switch shape.Body().GetType() {
	case cp.BODY_DYNAMIC:
		return nrgbaToF(debugPlayerColor)
	case cp.BODY_KINEMATIC:
		return nrgbaToF(debugKinematicColor)
	}
	return nrgbaToF(debugStaticColor)
}

func (d *shapeOutliner) ConstraintColor() cp.FColor {
	return nrgbaToF(debugKinematicColor)
}

func (d *shapeOutliner) CollisionPointColor() cp.FColor {
	return nrgbaToF(debugContactColor)
}

func (d *shapeOutliner) Data() interface{} {
	return nil
}

func (d *shapeOutliner) line(a, b cp.Vector, c color.Color) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, x1, y1, x2, y2, debugStroke, c, true)
}

func (d *shapeOutliner) toScreen(v cp.Vector) (float32, float32) {
	return float32((v.X - d.camX) * d.zoom), float32((v.Y - d.camY) * d.zoom)
}

func fcolor(c cp.FColor) color.NRGBA {
	to8 := func(v float32) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 0xff
		}
		return uint8(v * 0xff)
	}
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func nrgbaToF(c color.NRGBA) cp.FColor {
	return cp.FColor{
		R: float32(c.R) / 0xff,
		G: float32(c.G) / 0xff,
		B: float32(c.B) / 0xff,
		A: float32(c.A) / 0xff,
	}
}
