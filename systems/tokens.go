package systems

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
	"github.com/automoto/lostpath/gamemath"
	"github.com/automoto/lostpath/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

// UpdateTokens animates tokens for one display frame, pulls tokens in the
// magnet ring toward the player and collects those within reach.
func UpdateTokens(g *game.Game, dt float64) {
	session := sessionOf(g)
	entry, ok := playerEntry(g)
	if session == nil || !ok {
		return
	}
	player := components.Player.Get(entry).Position
	diff := cfg.DifficultyFor(session.Level)

	var faded []donburi.Entity
	var reached []*donburi.Entry
	components.Token.Each(g.World, func(e *donburi.Entry) {
		t := components.Token.Get(e)
		if t.Collected {
			if fadeCollected(t, dt) {
				faded = append(faded, e.Entity())
			}
			return
		}

		t.Spin += cfg.Token.SpinScale * diff.TokenSpin * dt
		t.Position.Y = t.RestHeight + math.Sin(cfg.Token.BobFrequency*session.Clock+t.Phase)*diff.TokenFloat

		d := gamemath.HorizontalDistance(t.Position, player)
		switch {
		case d < cfg.Token.CollectRadius:
			reached = append(reached, e)
		case d < cfg.Token.MagnetRadius:
			pull := gamemath.Horizontal(r3.Sub(player, t.Position))
			t.Position = r3.Add(t.Position, r3.Scale(cfg.Token.MagnetRate*dt, pull))
		}
	})
	for _, ent := range faded {
		g.World.Remove(ent)
	}

	level := session.Level
	for _, e := range reached {
		// A level change or finish replaces the token set, so stop there.
		if session.State != cfg.SessionPlaying || session.Level != level || !e.Valid() {
			break
		}
		CollectToken(g, e)
	}

	if session.State == cfg.SessionPlaying && session.Level == level {
		backfillTokens(g, session.Level)
	}
}

// CollectToken scores an uncollected token and starts its fade. Calling it
// again on the same token does nothing.
func CollectToken(g *game.Game, e *donburi.Entry) {
	session := sessionOf(g)
	t := components.Token.Get(e)
	if session == nil || t.Collected {
		return
	}
	t.Collected = true
	t.FadeTween = gween.New(float32(t.Fade), 0, float32(t.Fade/cfg.Token.FadeRate), ease.Linear)
	t.GlowTween = gween.New(float32(t.Glow), 1, float32(cfg.Token.GlowDuration), ease.OutQuad)

	session.Score += cfg.Token.Points[t.Type]
	session.Collected[t.Type]++
	g.UI.SetScore(session.Score)
	g.UI.SetTokenCount(t.Type, session.Collected[t.Type])
	PlaySFX(g, cfg.SoundTake)

	if cam := cameraOf(g); cam != nil {
		cam.Bump = 1
	}
	if pe, ok := playerEntry(g); ok {
		components.Animation.Get(pe).Machine.PlayOnce(cfg.ClipTake)
	}

	CheckThresholds(g)
}

// fadeCollected advances a collected token's flourish and reports whether
// it has fully faded.
func fadeCollected(t *components.TokenData, dt float64) bool {
	if t.FadeTween == nil {
		t.FadeTween = gween.New(float32(t.Fade), 0, float32(t.Fade/cfg.Token.FadeRate), ease.Linear)
	}
	fade, done := t.FadeTween.Update(float32(dt))
	t.Fade = math.Max(0, math.Min(t.Fade, float64(fade)))
	if t.GlowTween != nil {
		glow, _ := t.GlowTween.Update(float32(dt))
		t.Glow = float64(glow)
	}
	t.Position.Y += cfg.Token.RiseSpeed * dt
	return done || t.Fade <= 0
}

// SpawnTokens replaces the token set with the fixed positions for level,
// padded with random positions up to the level's target count.
func SpawnTokens(g *game.Game, level int) {
	ClearTokens(g)
	lvl := levelOf(g)
	target := cfg.DifficultyFor(level).TokenTarget

	var spots []r3.Vec
	if lvl != nil {
		spots = lvl.Arena.Spots(level)
	}
	for i := 0; i < target; i++ {
		var pos r3.Vec
		if i < len(spots) {
			pos = spots[i]
		} else {
			pos = randomXZ(g.Rand, cfg.Token.PadSpread)
		}
		pos = gamemath.ClampToBounds(pos, cfg.Session.PlayBounds)
		pos.Y = cfg.Token.RestHeight
		factory.CreateToken(g.World, pos, RandomTokenType(g.Rand), g.Rand.Float64()*2*math.Pi)
	}
}

// ClearTokens removes every token, collected or not.
func ClearTokens(g *game.Game) {
	var ents []donburi.Entity
	components.Token.Each(g.World, func(e *donburi.Entry) {
		ents = append(ents, e.Entity())
	})
	for _, ent := range ents {
		g.World.Remove(ent)
	}
}

// UncollectedTokens counts tokens still available to collect.
func UncollectedTokens(g *game.Game) int {
	n := 0
	components.Token.Each(g.World, func(e *donburi.Entry) {
		if !components.Token.Get(e).Collected {
			n++
		}
	})
	return n
}

// backfillTokens keeps the hardest tier from running dry: when the
// uncollected count drops below the threshold it is topped back up to the
// target near the center of the arena.
func backfillTokens(g *game.Game, level int) {
	if !cfg.IsHardest(level) {
		return
	}
	left := UncollectedTokens(g)
	if left >= cfg.BackfillThreshold(level) {
		return
	}
	need := cfg.DifficultyFor(level).TokenTarget - left
	for i := 0; i < need; i++ {
		pos := randomXZ(g.Rand, cfg.Token.BackfillSpread)
		pos.Y = cfg.Token.RestHeight
		factory.CreateToken(g.World, pos, backfillType(i), g.Rand.Float64()*2*math.Pi)
	}
}

func backfillType(i int) cfg.TokenType {
	switch {
	case i%3 == 0:
		return cfg.TokenGem
	case i%2 == 0:
		return cfg.TokenBook
	default:
		return cfg.TokenPotion
	}
}

// RandomTokenType picks a type using the configured spawn weights.
func RandomTokenType(r *rand.Rand) cfg.TokenType {
	total := 0.0
	for t := cfg.TokenType(0); t < cfg.TokenTypeCount; t++ {
		total += cfg.Token.SpawnWeights[t]
	}
	if total <= 0 {
		return cfg.TokenPotion
	}
	pick := r.Float64() * total
	for t := cfg.TokenType(0); t < cfg.TokenTypeCount; t++ {
		pick -= cfg.Token.SpawnWeights[t]
		if pick < 0 {
			return t
		}
	}
	return cfg.TokenTypeCount - 1
}

func randomXZ(r *rand.Rand, half float64) r3.Vec {
	return r3.Vec{
		X: (r.Float64()*2 - 1) * half,
		Z: (r.Float64()*2 - 1) * half,
	}
}
