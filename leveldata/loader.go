package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	blockLayer  = "walls"
	tokenGroup  = "Tokens"
	spawnGroup  = "Spawn"
	defaultKind = "wall"
)

// LoadArena parses a TMX file into an Arena. One tile is one world unit and
// the map is centered on the origin; tile rows run along +Z.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width == 0 || levelMap.Height == 0 || levelMap.TileWidth == 0 || levelMap.TileHeight == 0 {
		return nil, fmt.Errorf("load TMX %s: empty map", tmxPath)
	}

	arena := &Arena{
		Width:      float64(levelMap.Width),
		Depth:      float64(levelMap.Height),
		TokenSpots: map[int][]r3.Vec{},
	}
	halfW := arena.Width / 2
	halfD := arena.Depth / 2

	// Parse solid tiles from the block layer
	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != blockLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				height := 1
				kind := defaultKind
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if h := tilesetTile.Properties.GetInt("height"); h > 0 {
						height = h
					}
					if k := tilesetTile.Properties.GetString("kind"); k != "" {
						kind = k
					}
				}

				arena.Blocks = append(arena.Blocks, Block{
					MinX:   float64(x) - halfW,
					MinZ:   float64(y) - halfD,
					MaxX:   float64(x+1) - halfW,
					MaxZ:   float64(y+1) - halfD,
					Height: float64(height),
					Kind:   kind,
				})
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, blockLayer)
	}

	// Object positions are in pixels; convert to world XZ.
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	toWorld := func(px, py float64) r3.Vec {
		return r3.Vec{X: px/tileW - halfW, Z: py/tileH - halfD}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case tokenGroup:
			for _, o := range og.Objects {
				level := o.Properties.GetInt("level")
				if level <= 0 {
					continue
				}
				arena.TokenSpots[level] = append(arena.TokenSpots[level], toWorld(o.X, o.Y))
			}
		case spawnGroup:
			for _, o := range og.Objects {
				if o.Name == "player" {
					arena.Spawn = toWorld(o.X, o.Y)
				}
			}
		}
	}

	arena.Triangles = buildMesh(arena)
	return arena, nil
}
