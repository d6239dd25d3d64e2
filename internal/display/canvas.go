// internal/display/canvas.go
package display

import (
	"go-bouncing-ball/internal/actor"
	"go-bouncing-ball/internal/config"
	"go-bouncing-ball/internal/event"
	"go-bouncing-ball/internal/state"
	"go-bouncing-ball/pkg/render"
	"image"

	"golang.org/x/image/vector"
)

// Canvas — поверхность отрисовки, единственная изменяемая часть кадра:
// Sync перерисовывает буфер пикселей и больше ничего не трогает
type Canvas struct {
	img        *image.RGBA
	rasterizer *vector.Rasterizer
	fadeAlpha  float64
	dispatcher *event.Dispatcher
}

type Option func(*Canvas)

// WithFadeAlpha задаёт непрозрачность очистки кадра
func WithFadeAlpha(alpha float64) Option {
	return func(c *Canvas) { c.fadeAlpha = alpha }
}

// WithDispatcher включает ActorSkipped для акторов, которые нечем рисовать
func WithDispatcher(d *event.Dispatcher) Option {
	return func(c *Canvas) { c.dispatcher = d }
}

// New создаёт холст width×height цвета фона. Неположительные размеры
// заменяются размером экрана по умолчанию
func New(width, height int, opts ...Option) *Canvas {
	if width <= 0 || height <= 0 {
		width, height = config.ScreenWidth, config.ScreenHeight
	}
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		rasterizer: vector.NewRasterizer(width, height),
		fadeAlpha:  config.FadeAlpha,
	}
	for _, opt := range opts {
		opt(c)
	}
	render.Fill(c.img, config.BackgroundColor)
	return c
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image — буфер пикселей, презентеры читают его между кадрами
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Pix() []byte { return c.img.Pix }

// Sync гасит прошлый кадр и рисует всех акторов s
func (c *Canvas) Sync(s state.State) {
	c.ClearDisplay()
	c.DrawActors(s.Actors())
}

// ClearDisplay заливает поверхность полупрозрачным белым вместо полной
// очистки, за акторами остаётся след
func (c *Canvas) ClearDisplay() {
	render.Fill(c.img, render.FadeColor(c.fadeAlpha))
}

// DrawActors рисует акторов по Kind, неизвестные пропускаются
func (c *Canvas) DrawActors(actors []actor.Actor) {
	for _, a := range actors {
		switch a.Kind() {
		case actor.KindCircle:
			if circle, ok := a.(actor.Circle); ok {
				c.drawCircle(circle)
				continue
			}
		}
		c.skipped(a)
	}
}

func (c *Canvas) drawCircle(a actor.Circle) {
	p := a.Position()
	render.FillCircle(c.rasterizer, c.img, float32(p.X), float32(p.Y), float32(a.Radius()), a.Color())
}

func (c *Canvas) skipped(a actor.Actor) {
	c.dispatcher.Publish(event.ActorSkipped, event.ActorSkippedData{Kind: a.Kind()})
}
