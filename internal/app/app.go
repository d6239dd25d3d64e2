// internal/app/app.go
package app

import (
	"go-bouncing-ball/internal/actor"
	"go-bouncing-ball/internal/config"
	"go-bouncing-ball/internal/display"
	"go-bouncing-ball/internal/event"
	"go-bouncing-ball/internal/loop"
	"go-bouncing-ball/internal/state"
	"go-bouncing-ball/internal/utils"
	"log"
)

// App — контекст приложения, собирается один раз при старте: дисплей,
// текущее состояние и шина событий. Замыкание цикла держит его вместо
// глобальных переменных пакета
type App struct {
	display    *display.Canvas
	state      state.State
	dispatcher *event.Dispatcher

	ticks       int
	maxTicks    int
	lastElapsed float64
}

// New создаёт дисплей и начальное состояние. Без акторов берётся один шар
// по умолчанию
func New(cfg config.Settings, actors []actor.Actor) *App {
	if len(actors) == 0 {
		actors = []actor.Actor{actor.NewBall()}
	}
	dispatcher := event.NewDispatcher()
	canvas := display.New(cfg.Width, cfg.Height,
		display.WithFadeAlpha(cfg.FadeAlpha),
		display.WithDispatcher(dispatcher),
	)

	return &App{
		display:    canvas,
		state:      state.New(canvas, actors, state.WithIDSource(utils.NewPRNGService(cfg.Seed))),
		dispatcher: dispatcher,
		maxTicks:   cfg.MaxTicks,
	}
}

// Tick — loop.Animation приложения: шаг состояния, события отскоков, перерисовка
func (a *App) Tick(elapsed float64) error {
	next := a.state.Update(elapsed)
	a.reportWallHits(a.state, next)
	a.state = next
	a.display.Sync(a.state)

	a.ticks++
	a.lastElapsed = elapsed
	if a.maxTicks > 0 && a.ticks >= a.maxTicks {
		return loop.ErrStop
	}
	return nil
}

func (a *App) reportWallHits(prev, next state.State) {
	if !a.dispatcher.HasListeners(event.WallHit) {
		return
	}
	for i := 0; i < next.Len(); i++ {
		x, y := actor.WallHits(prev.At(i), next.At(i))
		if x {
			a.dispatcher.Publish(event.WallHit, event.WallHitData{Index: i, Axis: event.AxisX, Actor: next.At(i)})
		}
		if y {
			a.dispatcher.Publish(event.WallHit, event.WallHitData{Index: i, Axis: event.AxisY, Actor: next.At(i)})
		}
	}
}

// LogSkippedActors пишет в лог первый пропуск каждого неизвестного Kind
func (a *App) LogSkippedActors() {
	seen := make(map[actor.Kind]bool)
	a.dispatcher.Subscribe(event.ActorSkipped, event.ListenerFunc(func(e event.Event) {
		data, ok := e.Data.(event.ActorSkippedData)
		if !ok || seen[data.Kind] {
			return
		}
		seen[data.Kind] = true
		log.Printf("skipping actor of unknown kind %q", data.Kind)
	}))
}

func (a *App) Bus() *event.Dispatcher { return a.dispatcher }
func (a *App) State() state.State { return a.state }
func (a *App) Display() *display.Canvas { return a.display }
func (a *App) Ticks() int { return a.ticks }
func (a *App) LastElapsed() float64 { return a.lastElapsed }
