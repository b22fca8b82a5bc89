package spatial

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const parallelEpsilon = 1e-10

// face is a triangle with its plane and bounds precomputed.
type face struct {
	a, b, c  r3.Vec
	normal   r3.Vec
	constant float64 // plane offset: dot(normal, p) + constant is the signed distance
	bounds   r3.Box
}

func newFace(t r3.Triangle) (face, bool) {
	a, b, c := t[0], t[1], t[2]
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	l := r3.Norm(n)
	if l < parallelEpsilon {
		return face{}, false
	}
	n = r3.Scale(1/l, n)
	return face{
		a:        a,
		b:        b,
		c:        c,
		normal:   n,
		constant: -r3.Dot(n, a),
		bounds:   r3.Box{Min: minVec(a, minVec(b, c)), Max: maxVec(a, maxVec(b, c))},
	}, true
}

func (f *face) distance(p r3.Vec) float64 {
	return r3.Dot(f.normal, p) + f.constant
}

// contains reports whether p, assumed on the plane, lies inside the triangle.
func (f *face) contains(p r3.Vec) bool {
	v0 := r3.Sub(f.c, f.a)
	v1 := r3.Sub(f.b, f.a)
	v2 := r3.Sub(p, f.a)

	dot00 := r3.Dot(v0, v0)
	dot01 := r3.Dot(v0, v1)
	dot02 := r3.Dot(v0, v2)
	dot11 := r3.Dot(v1, v1)
	dot12 := r3.Dot(v1, v2)

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return false
	}
	inv := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * inv
	v := (dot00*dot12 - dot01*dot02) * inv
	return u >= 0 && v >= 0 && u+v <= 1
}

// closestPoint returns the point of the triangle nearest to p.
func (f *face) closestPoint(p r3.Vec) r3.Vec {
	a, b, c := f.a, f.b, f.c
	ab := r3.Sub(b, a)
	ac := r3.Sub(c, a)
	ap := r3.Sub(p, a)

	d1 := r3.Dot(ab, ap)
	d2 := r3.Dot(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := r3.Sub(p, b)
	d3 := r3.Dot(ab, bp)
	d4 := r3.Dot(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return r3.Add(a, r3.Scale(v, ab))
	}

	cp := r3.Sub(p, c)
	d5 := r3.Dot(ab, cp)
	d6 := r3.Dot(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return r3.Add(a, r3.Scale(w, ac))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return r3.Add(b, r3.Scale(w, r3.Sub(c, b)))
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return r3.Add(a, r3.Add(r3.Scale(v, ab), r3.Scale(w, ac)))
}

// sphereHit tests s against the triangle. With interiorOnly set, contacts
// whose closest point lies on an edge or vertex are ignored.
func (f *face) sphereHit(s Sphere, interiorOnly bool) (Hit, bool) {
	dist := f.distance(s.Center)
	if math.Abs(dist) > s.Radius {
		return Hit{}, false
	}
	if interiorOnly && !f.contains(r3.Sub(s.Center, r3.Scale(dist, f.normal))) {
		return Hit{}, false
	}
	closest := f.closestPoint(s.Center)
	delta := r3.Sub(s.Center, closest)
	d2 := r3.Norm2(delta)
	if d2 >= s.Radius*s.Radius {
		return Hit{}, false
	}
	d := math.Sqrt(d2)
	normal := f.normal
	if d > 0 {
		normal = r3.Scale(1/d, delta)
	}
	return Hit{Normal: normal, Depth: s.Radius - d}, true
}

// capsuleHit tests c against the triangle. With interiorOnly set, edge
// contacts are ignored.
func (f *face) capsuleHit(c Capsule, interiorOnly bool) (Hit, bool) {
	d1 := f.distance(c.Start) - c.Radius
	d2 := f.distance(c.End) - c.Radius

	if (d1 > 0 && d2 > 0) || (d1 < -c.Radius && d2 < -c.Radius) {
		return Hit{}, false
	}

	span := math.Abs(d1) + math.Abs(d2)
	t := 0.0
	if span > 0 {
		t = math.Abs(d1 / span)
	}
	point := r3.Add(c.Start, r3.Scale(t, r3.Sub(c.End, c.Start)))
	if f.contains(r3.Sub(point, r3.Scale(f.distance(point), f.normal))) {
		return Hit{Normal: f.normal, Depth: math.Abs(math.Min(d1, d2))}, true
	}
	if interiorOnly {
		return Hit{}, false
	}

	r2 := c.Radius * c.Radius
	edges := [3][2]r3.Vec{{f.a, f.b}, {f.b, f.c}, {f.c, f.a}}
	for _, e := range edges {
		p1, p2 := closestSegmentPoints(c.Start, c.End, e[0], e[1])
		delta := r3.Sub(p1, p2)
		d2 := r3.Norm2(delta)
		if d2 < r2 {
			d := math.Sqrt(d2)
			normal := f.normal
			if d > 0 {
				normal = r3.Scale(1/d, delta)
			}
			return Hit{Normal: normal, Depth: c.Radius - d}, true
		}
	}
	return Hit{}, false
}

// closestSegmentPoints returns the closest points between segments p0-p1
// and q0-q1.
func closestSegmentPoints(p0, p1, q0, q1 r3.Vec) (r3.Vec, r3.Vec) {
	r := r3.Sub(p1, p0)
	s := r3.Sub(q1, q0)
	w := r3.Sub(q0, p0)

	a := r3.Dot(r, s)
	b := r3.Dot(r, r)
	c := r3.Dot(s, s)
	d := r3.Dot(s, w)
	e := r3.Dot(r, w)

	var t1, t2 float64
	divisor := b*c - a*a
	switch {
	case c < parallelEpsilon:
		// Degenerate second segment.
		t2 = 0
		if b > parallelEpsilon {
			t1 = e / b
		}
	case math.Abs(divisor) < parallelEpsilon:
		s1 := -d / c
		s2 := (a - d) / c
		if math.Abs(s1-0.5) < math.Abs(s2-0.5) {
			t1, t2 = 0, s1
		} else {
			t1, t2 = 1, s2
		}
	default:
		t1 = (d*a + e*c) / divisor
		t2 = (t1*a - d) / c
	}

	t1 = clamp01(t1)
	t2 = clamp01(t2)
	return r3.Add(p0, r3.Scale(t1, r)), r3.Add(q0, r3.Scale(t2, s))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// rayHit returns the distance along dir at which the ray from origin meets
// the triangle, from either side.
func (f *face) rayHit(origin, dir r3.Vec) (float64, bool) {
	e1 := r3.Sub(f.b, f.a)
	e2 := r3.Sub(f.c, f.a)
	p := r3.Cross(dir, e2)
	det := r3.Dot(e1, p)
	if math.Abs(det) < parallelEpsilon {
		return 0, false
	}
	inv := 1 / det
	tv := r3.Sub(origin, f.a)
	u := r3.Dot(tv, p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := r3.Cross(tv, e1)
	v := r3.Dot(dir, q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := r3.Dot(e2, q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}
