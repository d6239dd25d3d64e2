// internal/event/types.go
package event

import "go-bouncing-ball/internal/actor"

const (
	WallHit      EventType = "WallHit"      // Актор отразился от края дисплея
	ActorSkipped EventType = "ActorSkipped" // Рендерер не знает, как рисовать актор
)

// Axis — ось, по которой развернулась скорость
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// WallHitData — данные события WallHit
type WallHitData struct {
	Index int // позиция актора в State
	Axis  Axis
	Actor actor.Actor
}

// ActorSkippedData — данные события ActorSkipped
type ActorSkippedData struct {
	Kind actor.Kind
}
