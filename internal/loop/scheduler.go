// internal/loop/scheduler.go
package loop

import (
	"context"
	"sync"
	"time"
)

// ManualScheduler выдаёт кадр только по вызову Step. Его крутят headless-режим
// и тесты с синтетическими метками времени.
type ManualScheduler struct {
	pending FrameFunc
}

func (m *ManualScheduler) RequestFrame(f FrameFunc) { m.pending = f }

// Pending сообщает, запрошен ли следующий кадр.
func (m *ManualScheduler) Pending() bool { return m.pending != nil }

// Step выполняет ожидающий кадр с меткой now. Возвращает false, если кадра
// не было, то есть цикл остановлен.
func (m *ManualScheduler) Step(now time.Duration) bool {
	f := m.pending
	if f == nil {
		return false
	}
	m.pending = nil
	f(now)
	return true
}

// TickerScheduler выдаёт кадры по time.Ticker из собственной горутины,
// пока не отменён ctx.
type TickerScheduler struct {
	mu      sync.Mutex
	pending FrameFunc
	start   time.Time
	done    chan struct{}
}

// NewTickerScheduler запускает тикер с заданным интервалом.
func NewTickerScheduler(ctx context.Context, interval time.Duration) *TickerScheduler {
	s := &TickerScheduler{start: time.Now(), done: make(chan struct{})}
	go s.run(ctx, interval)
	return s
}

// Wait блокируется, пока горутина тикера не завершится. После возврата ни
// один кадр уже не выполняется, поэтому ctx должен быть отменён.
func (s *TickerScheduler) Wait() {
	<-s.done
}

func (s *TickerScheduler) RequestFrame(f FrameFunc) {
	s.mu.Lock()
	s.pending = f
	s.mu.Unlock()
}

func (s *TickerScheduler) run(ctx context.Context, interval time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			f := s.pending
			s.pending = nil
			s.mu.Unlock()
			if f != nil {
				f(time.Since(s.start))
			}
		}
	}
}
