package actor

import (
	"go-bouncing-ball/pkg/vmath"
	"image/color"
	"testing"
)

type fakeWorld struct {
	w, h   int
	actors []Actor
}

func (f fakeWorld) Size() (int, int) { return f.w, f.h }
func (f fakeWorld) Actors() []Actor { return f.actors }

func TestNewBallDefaults(t *testing.T) {
	b := NewBall()
	if b.Kind() != KindCircle {
		t.Errorf("kind = %q", b.Kind())
	}
	if b.Position() != vmath.V(20, 20) {
		t.Errorf("position = %v", b.Position())
	}
	if b.Velocity() != vmath.V(5, 3) {
		t.Errorf("velocity = %v", b.Velocity())
	}
	if b.Radius() != 10 {
		t.Errorf("radius = %f", b.Radius())
	}
	if b.Color() != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("color = %v", b.Color())
	}
}

func TestNewBallOverridesSubset(t *testing.T) {
	b := NewBall(WithRadius(4), WithPosition(vmath.V(1, 2)))
	if b.Radius() != 4 || b.Position() != vmath.V(1, 2) {
		t.Fatalf("overrides not applied: %+v", b)
	}
	if b.Velocity() != vmath.V(5, 3) || b.Kind() != KindCircle {
		t.Fatalf("unspecified fields lost their defaults: %+v", b)
	}
}

func TestBallBouncesOffRightWall(t *testing.T) {
	w := fakeWorld{w: 400, h: 400}
	b := NewBall(WithPosition(vmath.V(405, 200)), WithVelocity(vmath.V(5, 3)))

	next := b.Update(w, 0.016, 1).(Ball)

	if next.Velocity().X != -5 {
		t.Errorf("velocity.x = %f, want -5", next.Velocity().X)
	}
	if next.Position().X != 400 {
		t.Errorf("position.x = %f, want 400", next.Position().X)
	}
	if next.Velocity().Y != 3 {
		t.Errorf("velocity.y changed: %f", next.Velocity().Y)
	}
}

func TestBallBouncesOffTopAndLeft(t *testing.T) {
	w := fakeWorld{w: 400, h: 400}
	b := NewBall(WithPosition(vmath.V(0, -1)), WithVelocity(vmath.V(-5, -3)))

	next := b.Update(w, 0.016, 1).(Ball)

	if next.Velocity() != vmath.V(5, 3) {
		t.Fatalf("velocity = %v, want (5,3)", next.Velocity())
	}
	if next.Position() != vmath.V(5, 2) {
		t.Fatalf("position = %v, want (5,2)", next.Position())
	}
}

func TestBallInsideBounds(t *testing.T) {
	w := fakeWorld{w: 400, h: 400}
	b := NewBall(WithPosition(vmath.V(200, 200)))

	next := b.Update(w, 0.016, 7).(Ball)

	if next.Position() != vmath.V(205, 203) {
		t.Errorf("position = %v, want (205,203)", next.Position())
	}
	if next.Velocity() != vmath.V(5, 3) {
		t.Errorf("velocity = %v, want unchanged", next.Velocity())
	}
	if next.Radius() != b.Radius() || next.Color() != b.Color() || next.Kind() != b.Kind() {
		t.Errorf("other fields not copied: %+v", next)
	}
}

func TestBallUpdateDoesNotMutate(t *testing.T) {
	w := fakeWorld{w: 400, h: 400}
	b := NewBall(WithPosition(vmath.V(400, 400)))
	_ = b.Update(w, 0.016, 1)
	if b.Position() != vmath.V(400, 400) || b.Velocity() != vmath.V(5, 3) {
		t.Fatalf("receiver mutated: %+v", b)
	}
}

func TestElapsedDoesNotScaleVelocity(t *testing.T) {
	w := fakeWorld{w: 400, h: 400}
	b := NewBall()
	a := b.Update(w, 0.001, 1).Position()
	c := b.Update(w, 0.1, 1).Position()
	if a != c {
		t.Fatalf("elapsed changed the step: %v vs %v", a, c)
	}
}

func TestWallHits(t *testing.T) {
	w := fakeWorld{w: 400, h: 400}
	b := NewBall(WithPosition(vmath.V(400, 100)))
	x, y := WallHits(b, b.Update(w, 0, 0))
	if !x || y {
		t.Errorf("WallHits = %v, %v; want true, false", x, y)
	}

	inside := NewBall(WithPosition(vmath.V(100, 100)))
	if x, y := WallHits(inside, inside.Update(w, 0, 0)); x || y {
		t.Errorf("inside ball reported a hit")
	}
}
