// Package game holds the aggregate every gameplay system operates on: the
// entity world plus the collaborators the core calls out to.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/yohamta/donburi"
)

// Game is owned by a single update pass. Systems read and write the world
// and call collaborators; nothing else mutates it.
type Game struct {
	World  donburi.World
	Input  InputSource
	UI     Presenter
	Audio  Audio
	Scores ScoreBoard
	Rand   *rand.Rand
	Now    func() time.Time

	// LoadErr is set when the arena failed to load; sessions refuse to start.
	LoadErr error
}

// New returns a Game with a fresh world, a PCG source seeded from seed and
// no-op collaborators. Callers replace the collaborators they provide.
func New(seed uint64) *Game {
	return &Game{
		World:  donburi.NewWorld(),
		Input:  nopInput{},
		UI:     nopPresenter{},
		Audio:  nopAudio{},
		Scores: nopScores{},
		Rand:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Now:    time.Now,
	}
}
