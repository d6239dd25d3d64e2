package host

import (
	"errors"
	"go-bouncing-ball/internal/app"
	"go-bouncing-ball/internal/config"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestUpdateDrivesLoopUntilTermination(t *testing.T) {
	cfg := config.Default()
	cfg.MaxTicks = 2
	a := app.New(cfg, nil)
	g := NewGame(a, nil)

	// первый Update только запускает цикл
	for i := 0; i < 3; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}
	if a.Ticks() != 2 {
		t.Fatalf("ticks = %d, want 2", a.Ticks())
	}
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update after stop = %v, want ebiten.Termination", err)
	}
}

func TestLayoutMatchesCanvas(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 320, 200
	g := NewGame(app.New(cfg, nil), nil)
	if w, h := g.Layout(1000, 1000); w != 320 || h != 200 {
		t.Fatalf("Layout = %dx%d", w, h)
	}
}
