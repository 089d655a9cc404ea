// Package geom holds the planar primitives used by the growth simulation:
// vectors, infinite lines and bounded segments.
package geom

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
	tau      = 2 * math.Pi
)

// Vector is a 2D point or direction. It shares its layout with vec.Vec2,
// which supplies the Cartesian arithmetic; the polar views are added here.
type Vector vec.Vec2

// Vec2 returns v as a vec.Vec2.
func (v Vector) Vec2() vec.Vec2 { return vec.Vec2(v) }

// New returns the vector (x, y).
func New(x, y float64) Vector { return Vector{X: x, Y: y} }

// Polar returns a vector with the given magnitude pointing at degs degrees.
func Polar(mag, degs float64) Vector {
	v := Vector{X: mag}
	v.SetDegs(degs)
	return v
}

// Add returns a+b.
func Add(a, b Vector) Vector { return Vector(a.Vec2().Add(b.Vec2())) }

// Sub returns a-b.
func Sub(a, b Vector) Vector { return Vector(a.Vec2().Sub(b.Vec2())) }

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector { return Vector(v.Vec2().Mul(s)) }

// Mag returns the Euclidean length of v.
func (v Vector) Mag() float64 { return v.Vec2().Length() }

// Rads returns the angle of v in [0, 2π).
func (v Vector) Rads() float64 {
	return math.Mod(tau+math.Atan2(v.Y, v.X), tau)
}

// Degs returns the angle of v in degrees, in [0, 360).
func (v Vector) Degs() float64 { return v.Rads() * radToDeg }

// SetMag rescales v to length m keeping its direction. A zero vector has no
// direction and ends up with non-finite components.
func (v *Vector) SetMag(m float64) {
	mag := v.Mag()
	v.X = v.X / mag * m
	v.Y = v.Y / mag * m
}

// SetRads rotates v to angle r keeping its magnitude.
func (v *Vector) SetRads(r float64) {
	mag := v.Mag()
	v.X = math.Cos(r) * mag
	v.Y = math.Sin(r) * mag
}

// SetDegs rotates v to angle d (degrees) keeping its magnitude.
func (v *Vector) SetDegs(d float64) { v.SetRads(d * degToRad) }

// Finite reports whether both components are finite numbers.
func (v Vector) Finite() bool {
	return !math.IsInf(v.X, 0) && !math.IsNaN(v.X) && !math.IsInf(v.Y, 0) && !math.IsNaN(v.Y)
}

// Dist returns the distance between a and b.
func Dist(a, b Vector) float64 { return b.Vec2().Sub(a.Vec2()).Length() }
