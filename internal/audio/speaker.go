// internal/audio/speaker.go
package audio

import (
	"fmt"
	"go-bouncing-ball/internal/config"
	"go-bouncing-ball/internal/event"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Attach открывает аудиоустройство по умолчанию и подписывает WallHitPlayer на d
func Attach(d *event.Dispatcher) error {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	d.Subscribe(event.WallHit, NewWallHitPlayer(speaker.Play, sr, config.BlipFrequency, config.BlipDuration))
	return nil
}
