package leveldata

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

type cell struct{ x, z int }

// buildMesh triangulates the floor and every block. Side faces hidden by an
// equally tall neighbour are skipped.
func buildMesh(a *Arena) []r3.Triangle {
	halfW, halfD := a.Width/2, a.Depth/2

	heights := make(map[cell]float64, len(a.Blocks))
	for _, b := range a.Blocks {
		heights[cellOf(b)] = b.Height
	}

	tris := quad(
		r3.Vec{X: -halfW, Z: -halfD},
		r3.Vec{X: -halfW, Z: halfD},
		r3.Vec{X: halfW, Z: halfD},
		r3.Vec{X: halfW, Z: -halfD},
		r3.Vec{Y: 1},
	)

	for _, b := range a.Blocks {
		c := cellOf(b)
		h := b.Height
		x0, x1, z0, z1 := b.MinX, b.MaxX, b.MinZ, b.MaxZ

		tris = append(tris, quad(
			r3.Vec{X: x0, Y: h, Z: z0},
			r3.Vec{X: x0, Y: h, Z: z1},
			r3.Vec{X: x1, Y: h, Z: z1},
			r3.Vec{X: x1, Y: h, Z: z0},
			r3.Vec{Y: 1},
		)...)

		sides := []struct {
			neighbour cell
			p0, p1    r3.Vec // bottom edge of the face
			out       r3.Vec
		}{
			{cell{c.x - 1, c.z}, r3.Vec{X: x0, Z: z0}, r3.Vec{X: x0, Z: z1}, r3.Vec{X: -1}},
			{cell{c.x + 1, c.z}, r3.Vec{X: x1, Z: z0}, r3.Vec{X: x1, Z: z1}, r3.Vec{X: 1}},
			{cell{c.x, c.z - 1}, r3.Vec{X: x0, Z: z0}, r3.Vec{X: x1, Z: z0}, r3.Vec{Z: -1}},
			{cell{c.x, c.z + 1}, r3.Vec{X: x0, Z: z1}, r3.Vec{X: x1, Z: z1}, r3.Vec{Z: 1}},
		}
		for _, s := range sides {
			if nh, ok := heights[s.neighbour]; ok && nh >= h {
				continue
			}
			up := r3.Vec{Y: h}
			tris = append(tris, quad(s.p0, s.p1, r3.Add(s.p1, up), r3.Add(s.p0, up), s.out)...)
		}
	}
	return tris
}

func cellOf(b Block) cell {
	return cell{int(math.Floor(b.MinX)), int(math.Floor(b.MinZ))}
}

// quad splits the planar quad p0..p3 into two triangles wound so their
// normals face out.
func quad(p0, p1, p2, p3, out r3.Vec) []r3.Triangle {
	return []r3.Triangle{
		facing(r3.Triangle{p0, p1, p2}, out),
		facing(r3.Triangle{p0, p2, p3}, out),
	}
}

func facing(t r3.Triangle, out r3.Vec) r3.Triangle {
	n := r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
	if r3.Dot(n, out) < 0 {
		t[1], t[2] = t[2], t[1]
	}
	return t
}
