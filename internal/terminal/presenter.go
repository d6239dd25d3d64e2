// internal/terminal/presenter.go
package terminal

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// upperHalf закрывает верхнюю половину ячейки: цвет символа — верхний
// пиксель, фон — нижний
const upperHalf = '▀'

// Presenter выводит буфер пикселей в терминал, две строки пикселей на
// ячейку, масштаб по ближайшему соседу
type Presenter struct {
	screen tcell.Screen
}

func NewPresenter(screen tcell.Screen) *Presenter {
	return &Presenter{screen: screen}
}

// Present копирует img на экран и показывает его
func (p *Presenter) Present(img *image.RGBA) {
	cols, rows := p.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	for cy := 0; cy < rows; cy++ {
		top := b.Min.Y + (2*cy)*h/(2*rows)
		bottom := b.Min.Y + (2*cy+1)*h/(2*rows)
		for cx := 0; cx < cols; cx++ {
			x := b.Min.X + cx*w/cols
			style := tcell.StyleDefault.
				Foreground(toColor(img, x, top)).
				Background(toColor(img, x, bottom))
			p.screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
	p.screen.Show()
}

func toColor(img *image.RGBA, x, y int) tcell.Color {
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// QuitRequested — true, если ev означает выход (Escape, Ctrl-C)
func QuitRequested(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q'
	}
	return false
}
