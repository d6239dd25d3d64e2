// pkg/vmath/vector.go
package vmath

import "math"

// Vector is an immutable 2D vector. Every operation returns a new value.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V creates a vector from its components.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the componentwise sum v + other.
func (v Vector) Add(other Vector) Vector {
	return V(v.X+other.X, v.Y+other.Y)
}

// Subtract returns the componentwise difference v - other.
func (v Vector) Subtract(other Vector) Vector {
	return V(v.X-other.X, v.Y-other.Y)
}

// Multiply scales both components by scalar.
func (v Vector) Multiply(scalar float64) Vector {
	return V(v.X*scalar, v.Y*scalar)
}

// DotProduct returns x1*x2 + y1*y2.
func (v Vector) DotProduct(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Magnitude returns the Euclidean norm of v.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Direction returns atan2(x, y): the angle is measured from the +Y axis,
// not from +X. Callers depend on this order, keep it.
func (v Vector) Direction() float64 {
	return math.Atan2(v.X, v.Y)
}
