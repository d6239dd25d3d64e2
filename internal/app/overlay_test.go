package app

import (
	"go-bouncing-ball/internal/actor"
	"go-bouncing-ball/internal/config"
	"go-bouncing-ball/pkg/vmath"
	"testing"
)

func TestOverlay(t *testing.T) {
	a := New(config.Default(), []actor.Actor{
		actor.NewBall(),
		actor.NewBall(actor.WithKind("square"), actor.WithPosition(vmath.V(1, 2)), actor.WithVelocity(vmath.V(-1, 0))),
	})
	if err := a.Tick(0.016); err != nil {
		t.Fatal(err)
	}

	got := a.Overlay()

	want := []string{
		"tick 1  dt 0.016s",
		"#0 circle (25, 23) v(5, 3)",
		"#1 square (0, 2) v(-1, 0)",
	}
	if len(got) != len(want) {
		t.Fatalf("lines = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}
