// cmd/bounce-raylib/main.go
package main

import (
	"flag"
	"go-bouncing-ball/internal/app"
	"go-bouncing-ball/internal/config"
	"go-bouncing-ball/internal/loop"
	"image/color"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// rlScheduler отдаёт ожидающий кадр главному циклу raylib, который идёт с
// целевым FPS
type rlScheduler struct {
	pending loop.FrameFunc
}

func (s *rlScheduler) RequestFrame(f loop.FrameFunc) { s.pending = f }

// toRGBA перекладывает байты холста в срез для загрузки в raylib
func toRGBA(dst []color.RGBA, pix []byte) []color.RGBA {
	dst = dst[:0]
	for i := 0; i+3 < len(pix); i += 4 {
		dst = append(dst, color.RGBA{pix[i], pix[i+1], pix[i+2], pix[i+3]})
	}
	return dst
}

func main() {
	cfg := config.Default()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "display width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "display height")
	flag.Float64Var(&cfg.FadeAlpha, "fade", cfg.FadeAlpha, "opacity of the per-frame clear")
	flag.IntVar(&cfg.MaxTicks, "frames", 0, "stop after this many frames")
	flag.BoolVar(&cfg.HUD, "hud", false, "show tick and actor overlay")
	flag.Parse()

	a := app.New(cfg, nil)
	a.LogSkippedActors()
	w, h := a.Display().Size()

	rl.InitWindow(int32(w), int32(h), config.WindowTitle+" (raylib)")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.RefreshRate)

	img := rl.NewImageFromImage(a.Display().Image())
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(tex)

	sched := &rlScheduler{}
	l := loop.Run(sched, a.Tick)
	var pixels []color.RGBA

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		f := sched.pending
		if f == nil {
			break
		}
		sched.pending = nil
		f(time.Duration(rl.GetTime() * float64(time.Second)))

		pixels = toRGBA(pixels, a.Display().Pix())
		rl.UpdateTexture(tex, pixels)

		rl.BeginDrawing()
		rl.DrawTexture(tex, 0, 0, rl.White)
		if cfg.HUD {
			for i, line := range a.Overlay() {
				rl.DrawText(line, 6, int32(4+i*14), 12, config.HUDTextColor)
			}
		}
		rl.EndDrawing()
	}

	if err := l.Err(); err != nil {
		log.Fatal(err)
	}
	log.Printf("stopped after %d frames", a.Ticks())
}
