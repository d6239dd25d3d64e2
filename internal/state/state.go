// internal/state/state.go
package state

import (
	"go-bouncing-ball/internal/actor"
	"go-bouncing-ball/internal/utils"
)

// Display — цель отрисовки глазами State: только размер. State держит
// ссылку на дисплей и не владеет им
type Display interface {
	Size() (width, height int)
}

// IDSource — источник идентификатора тика
type IDSource interface {
	UpdateID() int
}

// State — неизменяемый снимок: ссылка на дисплей и акторы в один момент.
// Update возвращает следующий снимок, не трогая текущий
type State struct {
	display Display
	actors  []actor.Actor
	ids     IDSource
}

type Option func(*State)

// WithIDSource подменяет PRNG, засеянный временем
func WithIDSource(ids IDSource) Option {
	return func(s *State) { s.ids = ids }
}

func New(display Display, actors []actor.Actor, opts ...Option) State {
	s := State{
		display: display,
		actors:  append([]actor.Actor(nil), actors...),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.ids == nil {
		s.ids = utils.NewPRNGService(0)
	}
	return s
}

// Update продвигает всех акторов на один тик. Все получают один updateID
// и видят текущее (ещё не обновлённое) состояние
func (s State) Update(elapsed float64) State {
	updateID := s.ids.UpdateID()
	next := make([]actor.Actor, len(s.actors))
	for i, a := range s.actors {
		next[i] = a.Update(s, elapsed, updateID)
	}
	return State{display: s.display, actors: next, ids: s.ids}
}

func (s State) Display() Display { return s.display }

func (s State) Size() (int, int) {
	return s.display.Size()
}

// Actors возвращает копию среза акторов
func (s State) Actors() []actor.Actor {
	return append([]actor.Actor(nil), s.actors...)
}

func (s State) Len() int { return len(s.actors) }

// At — i-й актор без копирования среза
func (s State) At(i int) actor.Actor { return s.actors[i] }
