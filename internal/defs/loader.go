// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"go-bouncing-ball/internal/actor"
	"go-bouncing-ball/pkg/render"
	"os"
)

// LoadScene reads a scene file.
func LoadScene(path string) (*SceneDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var scene SceneDefinition
	if err := json.Unmarshal(file, &scene); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scene: %w", err)
	}
	if scene.Width < 0 || scene.Height < 0 {
		return nil, fmt.Errorf("scene size %dx%d is negative", scene.Width, scene.Height)
	}
	return &scene, nil
}

// BuildActors turns the definitions into actors, in file order.
func (s *SceneDefinition) BuildActors() ([]actor.Actor, error) {
	actors := make([]actor.Actor, 0, len(s.Actors))
	for i, def := range s.Actors {
		ball, err := def.Ball()
		if err != nil {
			return nil, fmt.Errorf("actor %d: %w", i, err)
		}
		actors = append(actors, ball)
	}
	return actors, nil
}

// Ball builds a ball from the definition.
func (d ActorDefinition) Ball() (actor.Ball, error) {
	var opts []actor.Option
	if d.Type != nil {
		opts = append(opts, actor.WithKind(actor.Kind(*d.Type)))
	}
	if d.Position != nil {
		opts = append(opts, actor.WithPosition(*d.Position))
	}
	if d.Velocity != nil {
		opts = append(opts, actor.WithVelocity(*d.Velocity))
	}
	if d.Radius != nil {
		if *d.Radius <= 0 {
			return actor.Ball{}, fmt.Errorf("radius must be positive, got %v", *d.Radius)
		}
		opts = append(opts, actor.WithRadius(*d.Radius))
	}
	if d.Color != nil {
		c, err := render.ParseColor(*d.Color)
		if err != nil {
			return actor.Ball{}, err
		}
		opts = append(opts, actor.WithColor(c))
	}
	return actor.NewBall(opts...), nil
}
