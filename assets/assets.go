package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LoadArena parses the embedded arena map.
func LoadArena() (*leveldata.Arena, error) {
	arena, err := leveldata.LoadArena(assetFS, config.C.ArenaPath)
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	return arena, nil
}
