package state

import (
	"go-bouncing-ball/internal/actor"
	"go-bouncing-ball/pkg/vmath"
	"testing"
)

type fixedSize struct{ w, h int }

func (f fixedSize) Size() (int, int) { return f.w, f.h }

type seqIDs struct{ next int }

func (s *seqIDs) UpdateID() int {
	s.next++
	return s.next
}

// recorder remembers the update ID and world it was updated with.
type recorder struct {
	seen *[]int
	pos  vmath.Vector
}

func (r recorder) Kind() actor.Kind { return "recorder" }
func (r recorder) Position() vmath.Vector { return r.pos }
func (r recorder) Update(w actor.World, elapsed float64, id int) actor.Actor {
	*r.seen = append(*r.seen, id)
	return recorder{seen: r.seen, pos: r.pos.Add(vmath.V(1, 0))}
}

func TestUpdateSharesIDAcrossTick(t *testing.T) {
	var seen []int
	actors := []actor.Actor{recorder{seen: &seen}, recorder{seen: &seen}, recorder{seen: &seen}}
	s := New(fixedSize{400, 400}, actors, WithIDSource(&seqIDs{}))

	next := s.Update(0.016)

	if next.Len() != 3 {
		t.Fatalf("len = %d, want 3", next.Len())
	}
	if len(seen) != 3 {
		t.Fatalf("update called %d times, want 3", len(seen))
	}
	for _, id := range seen {
		if id != seen[0] {
			t.Fatalf("ids differ within one tick: %v", seen)
		}
	}

	seen = seen[:0]
	next.Update(0.016)
	if seen[0] == 1 {
		t.Fatalf("second tick reused id %d", seen[0])
	}
}

func TestUpdateDoesNotMutateReceiver(t *testing.T) {
	var seen []int
	s := New(fixedSize{400, 400}, []actor.Actor{recorder{seen: &seen}}, WithIDSource(&seqIDs{}))

	next := s.Update(0.016)

	if s.At(0).Position() != vmath.V(0, 0) {
		t.Errorf("old state changed: %v", s.At(0).Position())
	}
	if next.At(0).Position() != vmath.V(1, 0) {
		t.Errorf("new state position = %v", next.At(0).Position())
	}
	if next.Display() != s.Display() {
		t.Error("display reference not shared")
	}
}

func TestActorsReturnsCopy(t *testing.T) {
	s := New(fixedSize{400, 400}, []actor.Actor{actor.NewBall()})
	list := s.Actors()
	list[0] = actor.NewBall(actor.WithRadius(99))
	if s.At(0).(actor.Ball).Radius() != 10 {
		t.Fatal("Actors() exposed the internal slice")
	}
}

func TestDefaultBallOneFrame(t *testing.T) {
	s := New(fixedSize{400, 400}, []actor.Actor{actor.NewBall()})
	before := s.At(0).(actor.Ball)

	next := s.Update(0.016)

	after := next.At(0).(actor.Ball)
	want := before.Position().Add(before.Velocity())
	if after.Position() != want {
		t.Fatalf("position = %v, want %v", after.Position(), want)
	}
	if after.Position() != vmath.V(25, 23) {
		t.Fatalf("position = %v, want (25,23)", after.Position())
	}
}

func TestSizeComesFromDisplay(t *testing.T) {
	s := New(fixedSize{320, 240}, nil)
	if w, h := s.Size(); w != 320 || h != 240 {
		t.Fatalf("Size() = %d,%d", w, h)
	}
	if s.Update(0).Len() != 0 {
		t.Fatal("empty state grew")
	}
}
