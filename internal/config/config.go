// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 400
	ScreenHeight = 400
	WindowScale  = 2
	WindowTitle  = "Bouncing Ball"

	MaxFrameDelta = 100 * time.Millisecond // больше не даём за один кадр (вкладка в фоне, медленный кадр)
	RefreshRate   = 60                     // кадров в секунду для ticker-планировщика и ebiten TPS
	FadeAlpha     = 0.5                    // 1 без шлейфа, чем меньше, тем длиннее шлейф

	UpdateIDRange = 1000000

	BallStartX    = 20.0
	BallStartY    = 20.0
	BallVelocityX = 5.0
	BallVelocityY = 3.0
	BallRadius    = 10.0

	AssetPort = 3000
	AssetDir  = "web"

	BlipFrequency = 880.0
	BlipDuration  = 40 * time.Millisecond
	SampleRate    = 44100
)

var (
	BallColor       = color.RGBA{255, 0, 0, 255}
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	HUDTextColor    = color.RGBA{20, 20, 30, 255}
)

// Settings хранит параметры запуска, собранные из флагов командной строки
type Settings struct {
	Width     int
	Height    int
	FadeAlpha float64
	Seed      int64
	MaxTicks  int // 0 без ограничения
	ScenePath string
	HUD       bool
	Sound     bool
}

// Default — настройки запуска без флагов
func Default() Settings {
	return Settings{
		Width:     ScreenWidth,
		Height:    ScreenHeight,
		FadeAlpha: FadeAlpha,
	}
}
