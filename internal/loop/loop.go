// internal/loop/loop.go
package loop

import (
	"errors"
	"go-bouncing-ball/internal/config"
	"sync/atomic"
	"time"
)

// ErrStop — Animation возвращает его, чтобы остановить цикл без ошибки
var ErrStop = errors.New("loop: stop")

// FrameFunc — колбэк кадра, now монотонное время хоста
type FrameFunc func(now time.Duration)

// Scheduler — источник кадров: ровно один вызов на каждый RequestFrame по
// сигналу обновления хоста. Вызовы никогда не идут параллельно
type Scheduler interface {
	RequestFrame(f FrameFunc)
}

// Animation — один тик анимации, elapsed в секундах
type Animation func(elapsed float64) error

// Phase — состояние цикла анимации
type Phase int32

const (
	Idle Phase = iota
	Running
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Loop — цикл анимации поверх Scheduler
type Loop struct {
	sched    Scheduler
	anim     Animation
	lastTime time.Duration
	phase    atomic.Int32
	err      error
	done     chan struct{}
}

// Run запрашивает первый кадр и сразу возвращается
func Run(s Scheduler, anim Animation) *Loop {
	l := &Loop{
		sched: s,
		anim:  anim,
		done:  make(chan struct{}),
	}
	s.RequestFrame(l.frame)
	return l
}

func (l *Loop) frame(now time.Duration) {
	if Phase(l.phase.Load()) == Running {
		delta := now - l.lastTime
		if delta > config.MaxFrameDelta {
			delta = config.MaxFrameDelta
		}
		if err := l.anim(delta.Seconds()); err != nil {
			l.stop(err)
			return
		}
	} else {
		// Первый кадр только запоминает время
		l.phase.Store(int32(Running))
	}
	l.lastTime = now
	l.sched.RequestFrame(l.frame)
}

func (l *Loop) stop(err error) {
	if !errors.Is(err, ErrStop) {
		l.err = err
	}
	l.phase.Store(int32(Stopped))
	close(l.done)
}

func (l *Loop) Phase() Phase { return Phase(l.phase.Load()) }

// Done закрывается после остановки цикла
func (l *Loop) Done() <-chan struct{} { return l.done }

// Err — ошибка, остановившая цикл (nil для ErrStop). Читать только после Done
func (l *Loop) Err() error { return l.err }
