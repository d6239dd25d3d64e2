// internal/audio/blip.go
package audio

import (
	"fmt"
	"go-bouncing-ball/internal/event"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Blip — короткий синусоидальный тон
func Blip(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}
	return beep.Take(sr.N(d), sine), nil
}

// Output проигрывает стримеры, подходит speaker.Play
type Output func(s ...beep.Streamer)

// WallHitPlayer играет блип на каждый WallHit. Высота тона зависит от оси,
// чтобы отскоки по горизонтали и вертикали звучали по-разному
type WallHitPlayer struct {
	out      Output
	sr       beep.SampleRate
	freq     float64
	duration time.Duration
}

func NewWallHitPlayer(out Output, sr beep.SampleRate, freq float64, d time.Duration) *WallHitPlayer {
	return &WallHitPlayer{out: out, sr: sr, freq: freq, duration: d}
}

func (p *WallHitPlayer) OnEvent(e event.Event) {
	data, ok := e.Data.(event.WallHitData)
	if !ok {
		return
	}
	freq := p.freq
	if data.Axis == event.AxisY {
		freq *= 1.5
	}
	s, err := Blip(p.sr, freq, p.duration)
	if err != nil {
		return
	}
	p.out(s)
}
