// internal/host/game.go
package host

import (
	"go-bouncing-ball/internal/app"
	"go-bouncing-ball/internal/config"
	"go-bouncing-ball/internal/loop"
	"go-bouncing-ball/internal/ui"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game — хост приложения в окне ebiten и одновременно планировщик цикла:
// каждый тик ebiten отдаёт ожидающий кадр, кадры идут за обновлением экрана
type Game struct {
	app     *app.App
	loop    *loop.Loop
	pending loop.FrameFunc
	start   time.Time

	frame *ebiten.Image
	hud   *ui.HUD
}

// NewGame подключает a к ebiten и запускает цикл анимации. hud может быть nil
func NewGame(a *app.App, hud *ui.HUD) *Game {
	g := &Game{app: a, hud: hud, start: time.Now()}
	g.loop = loop.Run(g, a.Tick)
	return g
}

func (g *Game) RequestFrame(f loop.FrameFunc) { g.pending = f }

func (g *Game) Update() error {
	f := g.pending
	if f == nil {
		// Цикл остановлен: закрываем окно
		if err := g.loop.Err(); err != nil {
			return err
		}
		return ebiten.Termination
	}
	g.pending = nil
	f(time.Since(g.start))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	canvas := g.app.Display()
	w, h := canvas.Size()
	if g.frame == nil {
		g.frame = ebiten.NewImage(w, h)
	}
	g.frame.WritePixels(canvas.Pix())
	screen.DrawImage(g.frame, nil)

	if g.hud != nil {
		g.hud.Draw(screen, g.app.Overlay())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.app.Display().Size()
}

// Run открывает окно и блокируется до остановки цикла или закрытия окна
func Run(a *app.App, showHUD bool, title string) error {
	var hud *ui.HUD
	if showHUD {
		hud = ui.NewHUD(nil, color.Color(config.HUDTextColor))
	}
	w, h := a.Display().Size()
	ebiten.SetWindowSize(w*config.WindowScale, h*config.WindowScale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(config.RefreshRate)
	return ebiten.RunGame(NewGame(a, hud))
}
