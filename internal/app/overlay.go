// internal/app/overlay.go
package app

import (
	"fmt"
	"go-bouncing-ball/pkg/vmath"
)

type mover interface {
	Velocity() vmath.Vector
}

// Overlay — строки HUD для текущего кадра: номер тика, последний elapsed
// и позиция со скоростью каждого актора
func (a *App) Overlay() []string {
	lines := []string{fmt.Sprintf("tick %d  dt %.3fs", a.ticks, a.lastElapsed)}
	for i, act := range a.state.Actors() {
		p := act.Position()
		line := fmt.Sprintf("#%d %s (%.0f, %.0f)", i, act.Kind(), p.X, p.Y)
		if m, ok := act.(mover); ok {
			v := m.Velocity()
			line += fmt.Sprintf(" v(%.0f, %.0f)", v.X, v.Y)
		}
		lines = append(lines, line)
	}
	return lines
}
