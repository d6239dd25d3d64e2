// internal/defs/types.go
package defs

import "go-bouncing-ball/pkg/vmath"

// ActorDefinition describes one actor of a scene. Every field is optional;
// missing ones take the ball defaults.
type ActorDefinition struct {
	Type     *string       `json:"type,omitempty"`
	Position *vmath.Vector `json:"position,omitempty"`
	Velocity *vmath.Vector `json:"velocity,omitempty"`
	Radius   *float64      `json:"radius,omitempty"`
	Color    *string       `json:"color,omitempty"`
}

// SceneDefinition is the top level of a scene file.
type SceneDefinition struct {
	Width  int               `json:"width,omitempty"`
	Height int               `json:"height,omitempty"`
	Actors []ActorDefinition `json:"actors"`
}
