package spatial

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	maxDepth         = 12
	trianglesPerLeaf = 8
	boundsPadding    = 0.01
)

type node struct {
	bounds   r3.Box
	faces    []int
	children []*node
}

// Octree indexes static triangles for capsule, sphere and ray queries. It is
// immutable once built and safe for concurrent readers.
type Octree struct {
	faces []face
	root  *node
}

// NewOctree builds an index over tris. Degenerate triangles are dropped.
func NewOctree(tris []r3.Triangle) *Octree {
	o := &Octree{}
	for _, t := range tris {
		if f, ok := newFace(t); ok {
			o.faces = append(o.faces, f)
		}
	}

	if len(o.faces) == 0 {
		o.root = &node{}
		return o
	}

	// Faces are often flat boxes, so grow the bounds per axis.
	bounds := o.faces[0].bounds
	all := make([]int, len(o.faces))
	for i := range o.faces {
		bounds.Min = minVec(bounds.Min, o.faces[i].bounds.Min)
		bounds.Max = maxVec(bounds.Max, o.faces[i].bounds.Max)
		all[i] = i
	}
	pad := r3.Vec{X: boundsPadding, Y: boundsPadding, Z: boundsPadding}
	bounds.Min = r3.Sub(bounds.Min, pad)
	bounds.Max = r3.Add(bounds.Max, pad)

	o.root = &node{bounds: cube(bounds), faces: all}
	o.split(o.root, 0)
	return o
}

// cube grows b into a cube around its center so children stay uniform.
func cube(b r3.Box) r3.Box {
	size := b.Size()
	half := math.Max(size.X, math.Max(size.Y, size.Z)) / 2
	c := b.Center()
	h := r3.Vec{X: half, Y: half, Z: half}
	return r3.Box{Min: r3.Sub(c, h), Max: r3.Add(c, h)}
}

func (o *Octree) split(n *node, depth int) {
	if len(n.faces) <= trianglesPerLeaf || depth >= maxDepth {
		return
	}

	half := r3.Scale(0.5, n.bounds.Size())
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				min := r3.Add(n.bounds.Min, r3.Vec{
					X: float64(x) * half.X,
					Y: float64(y) * half.Y,
					Z: float64(z) * half.Z,
				})
				child := &node{bounds: r3.Box{Min: min, Max: r3.Add(min, half)}}
				for _, fi := range n.faces {
					if boxesOverlap(child.bounds, o.faces[fi].bounds) {
						child.faces = append(child.faces, fi)
					}
				}
				if len(child.faces) > 0 {
					n.children = append(n.children, child)
				}
			}
		}
	}

	// A split that cannot separate anything only duplicates work.
	for _, c := range n.children {
		if len(c.faces) == len(n.faces) {
			n.children = nil
			return
		}
	}

	n.faces = nil
	for _, c := range n.children {
		o.split(c, depth+1)
	}
}

// Len is the number of indexed triangles.
func (o *Octree) Len() int {
	return len(o.faces)
}

// Bounds is the region covered by the index.
func (o *Octree) Bounds() r3.Box {
	return o.root.bounds
}

// candidates returns the sorted, unique face indices whose leaves overlap b.
func (o *Octree) candidates(b r3.Box) []int {
	var out []int
	var walk func(n *node)
	walk = func(n *node) {
		if !boxesOverlap(n.bounds, b) {
			return
		}
		if n.children == nil {
			for _, fi := range n.faces {
				if boxesOverlap(o.faces[fi].bounds, b) {
					out = append(out, fi)
				}
			}
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(o.root)

	if len(out) < 2 {
		return out
	}
	sort.Ints(out)
	uniq := out[:1]
	for _, fi := range out[1:] {
		if fi != uniq[len(uniq)-1] {
			uniq = append(uniq, fi)
		}
	}
	return uniq
}

// CapsuleIntersect returns the combined correction that separates c from
// the geometry, or false when c touches nothing. Face interior contacts are
// resolved before edge contacts so a shared edge of a flat surface cannot
// tilt the correction.
func (o *Octree) CapsuleIntersect(c Capsule) (Hit, bool) {
	probe := c
	hit := false
	candidates := o.candidates(c.Bounds())
	for _, interiorOnly := range []bool{true, false} {
		for _, fi := range candidates {
			if h, ok := o.faces[fi].capsuleHit(probe, interiorOnly); ok {
				hit = true
				probe.Translate(r3.Scale(h.Depth, h.Normal))
			}
		}
	}
	if !hit {
		return Hit{}, false
	}
	return correction(c.Center(), probe.Center())
}

// SphereIntersect returns the combined correction that separates s from
// the geometry, or false when s touches nothing. Like CapsuleIntersect it
// resolves face interiors first.
func (o *Octree) SphereIntersect(s Sphere) (Hit, bool) {
	probe := s
	hit := false
	candidates := o.candidates(s.Bounds())
	for _, interiorOnly := range []bool{true, false} {
		for _, fi := range candidates {
			if h, ok := o.faces[fi].sphereHit(probe, interiorOnly); ok {
				hit = true
				probe.Center = r3.Add(probe.Center, r3.Scale(h.Depth, h.Normal))
			}
		}
	}
	if !hit {
		return Hit{}, false
	}
	return correction(s.Center, probe.Center)
}

// RayIntersect returns the distance to the nearest triangle hit by the ray
// within far. dir must be a unit vector.
func (o *Octree) RayIntersect(origin, dir r3.Vec, far float64) (float64, bool) {
	end := r3.Add(origin, r3.Scale(far, dir))
	b := r3.Box{Min: minVec(origin, end), Max: maxVec(origin, end)}

	best := math.Inf(1)
	for _, fi := range o.candidates(b) {
		if t, ok := o.faces[fi].rayHit(origin, dir); ok && t <= far && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

func correction(from, to r3.Vec) (Hit, bool) {
	delta := r3.Sub(to, from)
	depth := r3.Norm(delta)
	if depth == 0 {
		return Hit{}, false
	}
	return Hit{Normal: r3.Scale(1/depth, delta), Depth: depth}, true
}

// RayBox returns the entry distance of the ray into box, or false when the
// ray misses it within far. A ray starting inside the box hits at 0.
func RayBox(origin, dir r3.Vec, box r3.Box, far float64) (float64, bool) {
	tmin, tmax := 0.0, far
	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	lo := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < parallelEpsilon {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / d[i]
		t1 := (lo[i] - o[i]) * inv
		t2 := (hi[i] - o[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
