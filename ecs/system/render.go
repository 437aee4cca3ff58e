package system

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// RenderSystem draws every visible entity as a flat colored shape.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	camX, camY, zoom := cameraTransform(w)

	entities := w.Query(component.TransformComponent.Kind(), component.ShapeComponent.Kind(), component.AppearanceComponent.Kind())
	// player last, everything else in creation order
	sort.SliceStable(entities, func(i, j int) bool {
		pi := ecs.Has(w, entities[i], component.PlayerTagComponent.Kind())
		pj := ecs.Has(w, entities[j], component.PlayerTagComponent.Kind())
		if pi != pj {
			return pj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		app, _ := ecs.Get(w, e, component.AppearanceComponent.Kind())
		if app.Hidden {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.ShapeComponent.Kind())
		cx, cy := s.Center(t)
		toScreen := func(x, y float64) (float32, float32) {
			return float32((x - camX) * zoom), float32((y - camY) * zoom)
		}

		if strip, ok := ecs.Get(w, e, component.SpikeStripComponent.Kind()); ok {
			drawSpikes(screen, strip, cx, cy, s.Width, s.Height, t.Rotation, app.Color, toScreen)
			continue
		}
		hw, hh := s.Width/2, s.Height/2
		corners := [][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
		fillPolygon(screen, rotateAll(corners, cx, cy, t.Rotation), app.Color, toScreen)
	}
}

func drawSpikes(screen *ebiten.Image, strip *component.SpikeStrip, cx, cy, width, height, rot float64, c color.RGBA, toScreen func(x, y float64) (float32, float32)) {
	left, top := -width/2, -height/2
	for i := 0; i < strip.Count; i++ {
		sx := left + float64(i)*strip.Size
		tri := [][2]float64{
			{sx, top + height},
			{sx + strip.Size/2, top},
			{sx + strip.Size, top + height},
		}
		fillPolygon(screen, rotateAll(tri, cx, cy, rot), c, toScreen)
	}
}

func rotateAll(local [][2]float64, cx, cy, rot float64) [][2]float64 {
	out := make([][2]float64, len(local))
	for i, p := range local {
		x, y := common.RotatePoint(cx+p[0], cy+p[1], cx, cy, rot)
		out[i] = [2]float64{x, y}
	}
	return out
}

// fillPolygon draws a convex polygon as a triangle fan.
func fillPolygon(screen *ebiten.Image, pts [][2]float64, c color.RGBA, toScreen func(x, y float64) (float32, float32)) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	vertices := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		x, y := toScreen(p[0], p[1])
		vertices[i] = ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	indices := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	screen.DrawTriangles(vertices, indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawHazardDebug renders hazard broad-phase bounds and the exact rotated
// outline used by the second stage.
func DrawHazardDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	camX, camY, zoom := cameraTransform(w)
	ecs.ForEach3(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), component.ShapeComponent.Kind(), func(e ecs.Entity, _ *component.Hazard, t *component.Transform, s *component.Shape) {
		b := s.RotatedBounds(t)
		x := (b.X - camX) * zoom
		y := (b.Y - camY) * zoom
		wdt := b.W * zoom
		hgt := b.H * zoom
		// semi-transparent fill + outline
		vector.FillRect(screen, float32(x), float32(y), float32(wdt), float32(hgt), color.RGBA{R: 255, G: 0, B: 0, A: 48}, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(wdt), float32(hgt), 1.0, color.RGBA{R: 255, G: 0, B: 0, A: 200}, false)

		if math.Abs(common.RadToDeg(t.Rotation)) < common.NearZeroRotationDeg {
			return
		}
		cx, cy := s.Center(t)
		hw, hh := s.Width/2, s.Height/2
		pts := rotateAll([][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}, cx, cy, t.Rotation)
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			vector.StrokeLine(screen,
				float32((a[0]-camX)*zoom), float32((a[1]-camY)*zoom),
				float32((b[0]-camX)*zoom), float32((b[1]-camY)*zoom),
				1.0, color.RGBA{R: 255, G: 255, B: 0, A: 200}, false)
		}
	})
}
