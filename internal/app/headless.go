// internal/app/headless.go
package app

import (
	"errors"
	"go-bouncing-ball/internal/config"
	"go-bouncing-ball/internal/loop"
	"time"
)

// ErrUnbounded — RunHeadless без лимита тиков никогда бы не завершился
var ErrUnbounded = errors.New("headless run needs a tick limit")

// RunHeadless крутит приложение с синтетическими метками времени на частоте
// обновления, пока Tick не остановит цикл. Нужен лимит тиков.
func (a *App) RunHeadless() error {
	if a.maxTicks <= 0 {
		return ErrUnbounded
	}
	frame := time.Second / config.RefreshRate
	sched := &loop.ManualScheduler{}
	l := loop.Run(sched, a.Tick)

	for now := time.Duration(0); sched.Pending(); now += frame {
		sched.Step(now)
	}
	return l.Err()
}
