package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD draws the overlay text: lives, banners and the end-of-run message.
type HUD struct {
	face ebtext.Face
}

func NewHUD() *HUD {
	return &HUD{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) DrawStatus(screen *ebiten.Image, lines ...string) {
	y := 10.0
	for _, line := range lines {
		h.draw(screen, line, 10, y, color.White)
		y += 16
	}
}

func (h *HUD) DrawBanner(screen *ebiten.Image, msg string) {
	w, _ := ebtext.Measure(msg, h.face, 0)
	x := (baseWidth - w) / 2
	h.draw(screen, msg, x, 40, color.RGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff})
}

// DrawCentered dims the screen and prints msg in the middle.
func (h *HUD) DrawCentered(screen *ebiten.Image, msg string) {
	vector.FillRect(screen, 0, 0, baseWidth, baseHeight, color.RGBA{A: 0x90}, false)
	w, lh := ebtext.Measure(msg, h.face, 0)
	h.draw(screen, msg, (baseWidth-w)/2, (baseHeight-lh)/2, color.White)
}

func (h *HUD) draw(screen *ebiten.Image, msg string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, msg, h.face, op)
}
