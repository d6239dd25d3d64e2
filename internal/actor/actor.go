// internal/actor/actor.go
package actor

import (
	"go-bouncing-ball/pkg/vmath"
	"image/color"
)

// Kind — дискриминатор формы, по которому рендерер выбирает способ отрисовки
type Kind string

const (
	KindCircle Kind = "circle"
)

// World — то, что актор видит при обновлении: размер дисплея и акторов тика
type World interface {
	Size() (width, height int)
	Actors() []Actor
}

// Actor — обновляемая и отрисовываемая сущность. Update не меняет получателя,
// а возвращает следующее значение актора. updateID общий для всех акторов
// одного тика: по нему соседи узнают, обновлён ли уже другой актор
type Actor interface {
	Kind() Kind
	Position() vmath.Vector
	Update(w World, elapsed float64, updateID int) Actor
}

// Circle — контракт отрисовки для KindCircle
type Circle interface {
	Actor
	Radius() float64
	Color() color.RGBA
}
