// internal/actor/ball.go
package actor

import (
	"go-bouncing-ball/internal/config"
	"go-bouncing-ball/pkg/vmath"
	"image/color"
)

// Ball — шар, отражающийся от краёв дисплея
type Ball struct {
	kind     Kind
	position vmath.Vector
	velocity vmath.Vector
	radius   float64
	color    color.RGBA
}

// Option переопределяет одно поле нового Ball
type Option func(*Ball)

func WithKind(k Kind) Option { return func(b *Ball) { b.kind = k } }
func WithPosition(p vmath.Vector) Option { return func(b *Ball) { b.position = p } }
func WithVelocity(v vmath.Vector) Option { return func(b *Ball) { b.velocity = v } }
func WithRadius(r float64) Option { return func(b *Ball) { b.radius = r } }
func WithColor(c color.RGBA) Option { return func(b *Ball) { b.color = c } }

// NewBall создаёт шар с настройками по умолчанию, opts их переопределяют
func NewBall(opts ...Option) Ball {
	b := Ball{
		kind:     KindCircle,
		position: vmath.V(config.BallStartX, config.BallStartY),
		velocity: vmath.V(config.BallVelocityX, config.BallVelocityY),
		radius:   config.BallRadius,
		color:    config.BallColor,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b Ball) Kind() Kind { return b.kind }
func (b Ball) Position() vmath.Vector { return b.position }
func (b Ball) Velocity() vmath.Vector { return b.velocity }
func (b Ball) Radius() float64 { return b.radius }
func (b Ball) Color() color.RGBA { return b.color }

// WithPosition — копия b в точке p
func (b Ball) WithPosition(p vmath.Vector) Ball {
	b.position = p
	return b
}

// WithVelocity — копия b со скоростью v
func (b Ball) WithVelocity(v vmath.Vector) Ball {
	b.velocity = v
	return b
}

// Update отражает скорость от краёв, которых касается текущая позиция, и
// делает один шаг. Края проверяются по старой позиции, поэтому шар может
// один кадр стоять на краю или за ним. Скорость прибавляется за тик,
// elapsed её не масштабирует
func (b Ball) Update(w World, elapsed float64, updateID int) Actor {
	width, height := w.Size()
	v := b.velocity

	// Левый или правый край
	if b.position.X >= float64(width) || b.position.X <= 0 {
		v = vmath.V(-v.X, v.Y)
	}
	// Верхний или нижний край
	if b.position.Y >= float64(height) || b.position.Y <= 0 {
		v = vmath.V(v.X, -v.Y)
	}

	return b.WithVelocity(v).WithPosition(b.position.Add(v))
}

// WallHits сообщает, какие компоненты скорости сменили знак между двумя
// снимками одного шара. Для других акторов всегда false
func WallHits(prev, next Actor) (x, y bool) {
	p, ok := prev.(Ball)
	if !ok {
		return false, false
	}
	n, ok := next.(Ball)
	if !ok {
		return false, false
	}
	return p.velocity.X*n.velocity.X < 0, p.velocity.Y*n.velocity.Y < 0
}
