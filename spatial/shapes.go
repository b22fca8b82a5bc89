// Package spatial answers collision queries against static level geometry.
package spatial

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Capsule is a swept sphere between Start and End.
type Capsule struct {
	Start  r3.Vec
	End    r3.Vec
	Radius float64
}

func (c *Capsule) Translate(v r3.Vec) {
	c.Start = r3.Add(c.Start, v)
	c.End = r3.Add(c.End, v)
}

func (c Capsule) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(c.Start, c.End))
}

// Bounds is the axis-aligned box enclosing the capsule.
func (c Capsule) Bounds() r3.Box {
	r := r3.Vec{X: c.Radius, Y: c.Radius, Z: c.Radius}
	return r3.Box{
		Min: r3.Sub(minVec(c.Start, c.End), r),
		Max: r3.Add(maxVec(c.Start, c.End), r),
	}
}

type Sphere struct {
	Center r3.Vec
	Radius float64
}

func (s Sphere) Bounds() r3.Box {
	r := r3.Vec{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return r3.Box{Min: r3.Sub(s.Center, r), Max: r3.Add(s.Center, r)}
}

// Hit describes how to separate a volume from the geometry: move it along
// Normal by Depth.
type Hit struct {
	Normal r3.Vec
	Depth  float64
}

func minVec(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func maxVec(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

func boxesOverlap(a, b r3.Box) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}
