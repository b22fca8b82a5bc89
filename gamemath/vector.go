// Package gamemath holds the small vector helpers shared by the gameplay
// systems. Y is up; the ground plane is XZ.
package gamemath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var Up = r3.Vec{Y: 1}

// Horizontal drops the vertical component of v.
func Horizontal(v r3.Vec) r3.Vec {
	return r3.Vec{X: v.X, Z: v.Z}
}

// HorizontalDistance is the XZ-plane distance between a and b.
func HorizontalDistance(a, b r3.Vec) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}

// SafeUnit returns the unit vector of v, or false when v has no length.
// r3.Unit yields NaNs for the zero vector.
func SafeUnit(v r3.Vec) (r3.Vec, bool) {
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}, false
	}
	return r3.Scale(1/n, v), true
}

// ClampLength scales v down so its length does not exceed max.
func ClampLength(v r3.Vec, max float64) r3.Vec {
	n := r3.Norm(v)
	if n <= max || n == 0 {
		return v
	}
	return r3.Scale(max/n, v)
}

// YawForward is the +Z axis rotated about Y by yaw.
func YawForward(yaw float64) r3.Vec {
	return r3.Vec{X: math.Sin(yaw), Z: math.Cos(yaw)}
}

// YawRight is the screen-right direction for a camera looking along
// YawForward(yaw).
func YawRight(yaw float64) r3.Vec {
	return r3.Vec{X: -math.Cos(yaw), Z: math.Sin(yaw)}
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampToBounds clamps X and Z of v to [-half, half].
func ClampToBounds(v r3.Vec, half float64) r3.Vec {
	v.X = ClampFloat(v.X, -half, half)
	v.Z = ClampFloat(v.Z, -half, half)
	return v
}

// DistanceFade is the opacity of something dist away when everything past
// limit is hidden and the last span units before it fade out linearly.
// A non-positive limit disables the fade.
func DistanceFade(dist, limit, span float64) float64 {
	if limit <= 0 {
		return 1
	}
	if dist >= limit {
		return 0
	}
	if span <= 0 || dist <= limit-span {
		return 1
	}
	return (limit - dist) / span
}
