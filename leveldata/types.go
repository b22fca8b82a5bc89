// Package leveldata turns a TMX arena into collision triangles and spawn
// data. It does not import ebitengine, donburi or resolv.
package leveldata

import "gonum.org/v1/gonum/spatial/r3"

// Arena holds everything gameplay needs from a loaded level file.
type Arena struct {
	Width  float64 // world units along X
	Depth  float64 // world units along Z
	Blocks []Block
	// Triangles is the static collision mesh: floor plus extruded blocks.
	Triangles  []r3.Triangle
	TokenSpots map[int][]r3.Vec // keyed by level number, in file order
	Spawn      r3.Vec
}

// Block is a solid tile extruded to Height, in world coordinates.
type Block struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
	Height     float64
	Kind       string // "wall", "column"
}

// Spots returns the fixed token positions for level, or nil.
func (a *Arena) Spots(level int) []r3.Vec {
	return a.TokenSpots[level]
}

// Bounds is the XZ extent of the arena with Y spanning the tallest block.
func (a *Arena) Bounds() r3.Box {
	top := 0.0
	for _, b := range a.Blocks {
		if b.Height > top {
			top = b.Height
		}
	}
	return r3.Box{
		Min: r3.Vec{X: -a.Width / 2, Z: -a.Depth / 2},
		Max: r3.Vec{X: a.Width / 2, Y: top, Z: a.Depth / 2},
	}
}
