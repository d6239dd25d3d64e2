// internal/ui/hud.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMarginX = 6
	hudMarginY = 14
)

// HUD рисует текстовый оверлей с номером тика и координатами акторов
type HUD struct {
	face       font.Face
	color      color.Color
	lineHeight int
}

// NewHUD создаёт HUD со шрифтом face, при nil берётся растровый 7x13
func NewHUD(face font.Face, clr color.Color) *HUD {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &HUD{
		face:       face,
		color:      clr,
		lineHeight: face.Metrics().Height.Ceil(),
	}
}

// Draw рисует строки в левом верхнем углу screen
func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	for i, line := range lines {
		text.Draw(screen, line, h.face, hudMarginX, hudMarginY+i*h.lineHeight, h.color)
	}
}
