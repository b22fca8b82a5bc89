package systems

import (
	"os"
	"testing"
	"time"

	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
	"github.com/automoto/lostpath/leveldata"
	"github.com/automoto/lostpath/systems/factory"
	"github.com/yohamta/donburi"
	"gonum.org/v1/gonum/spatial/r3"
)

type fakeUI struct {
	score    int
	level    int
	timer    string
	urgent   bool
	counts   [cfg.TokenTypeCount]int
	victory  []string
	final    int
	menus    int
	pauses   int
	hud      bool
	banner   string
	distance float64
}

func (f *fakeUI) SetScore(n int)                       { f.score = n }
func (f *fakeUI) SetLevel(n int)                       { f.level = n }
func (f *fakeUI) SetTimer(s string, urgent bool)       { f.timer, f.urgent = s, urgent }
func (f *fakeUI) SetTokenCount(t cfg.TokenType, n int) { f.counts[t] = n }
func (f *fakeUI) ShowMenu()                            { f.menus++ }
func (f *fakeUI) ShowPause()                           { f.pauses++ }
func (f *fakeUI) ShowVictory(text string, score int) {
	f.victory = append(f.victory, text)
	f.final = score
}
func (f *fakeUI) HideAll()                  {}
func (f *fakeUI) SetHUDVisible(v bool)      { f.hud = v }
func (f *fakeUI) SetLevelBanner(s string)   { f.banner = s }
func (f *fakeUI) SetDrawDistance(d float64) { f.distance = d }

type fakeAudio struct {
	background int
	take       int
	levelUp    int
	push       int
	gameOver   int
	muted      bool
	paused     bool
	ducked     bool
}

func (f *fakeAudio) PlayBackground()        { f.background++ }
func (f *fakeAudio) PlayTake()              { f.take++ }
func (f *fakeAudio) PlayLevelUp()           { f.levelUp++ }
func (f *fakeAudio) PlayPush()              { f.push++ }
func (f *fakeAudio) PlayGameOver()          { f.gameOver++ }
func (f *fakeAudio) SetMuted(m bool)        { f.muted = m }
func (f *fakeAudio) PauseBackground(p bool) { f.paused = p }
func (f *fakeAudio) DuckBackground()        { f.ducked = true }

type fakeScores struct {
	recorded []game.ScoreEntry
}

func (f *fakeScores) RecordScore(score, level int, at time.Time) error {
	f.recorded = append(f.recorded, game.ScoreEntry{Score: score, Level: level, At: at})
	return nil
}

func (f *fakeScores) ListScores() ([]game.ScoreEntry, error) { return f.recorded, nil }

type fakeInput struct {
	held   map[cfg.ActionID]bool
	dx, dy float64
}

func (f *fakeInput) Pressed(id cfg.ActionID) bool     { return f.held[id] }
func (f *fakeInput) PointerDelta() (float64, float64) { return f.dx, f.dy }

type memItems map[string][]byte

func (m memItems) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memItems) SaveItem(key string, data []byte) error {
	m[key] = append([]byte(nil), data...)
	return nil
}

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type harness struct {
	g      *game.Game
	ui     *fakeUI
	audio  *fakeAudio
	scores *fakeScores
	input  *fakeInput
}

var shippedArena *leveldata.Arena

func loadArena(t *testing.T) *leveldata.Arena {
	t.Helper()
	if shippedArena == nil {
		a, err := leveldata.LoadArena(os.DirFS("../assets"), cfg.C.ArenaPath)
		if err != nil {
			t.Fatalf("LoadArena: %v", err)
		}
		shippedArena = a
	}
	return shippedArena
}

// newHarness builds a game on the shipped arena with recording
// collaborators. The session is still in the menu.
func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		g:      game.New(1),
		ui:     &fakeUI{},
		audio:  &fakeAudio{},
		scores: &fakeScores{},
		input:  &fakeInput{held: map[cfg.ActionID]bool{}},
	}
	h.g.UI = h.ui
	h.g.Audio = h.audio
	h.g.Scores = h.scores
	h.g.Input = h.input
	h.g.Now = func() time.Time { return testNow }
	factory.CreateWorld(h.g.World, loadArena(t))
	return h
}

// started returns a harness with a running session and no tokens, so tests
// place exactly the tokens they need.
func started(t *testing.T) *harness {
	t.Helper()
	h := newHarness(t)
	if err := StartSession(h.g); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	ClearTokens(h.g)
	return h
}

func (h *harness) session() *components.SessionData { return sessionOf(h.g) }

func (h *harness) player() *components.PlayerData {
	e, _ := playerEntry(h.g)
	return components.Player.Get(e)
}

func (h *harness) machineClip() cfg.ClipID {
	e, _ := playerEntry(h.g)
	return components.Animation.Get(e).Machine.Current()
}

// placePlayer moves the player's visual position and probe to pos.
func (h *harness) placePlayer(pos r3.Vec) {
	e, _ := playerEntry(h.g)
	p := components.Player.Get(e)
	p.Capsule.Translate(r3.Sub(pos, p.Position))
	factory.SyncVisual(p)
	factory.SyncProbe(h.g.World, p, components.Object.Get(e).Object)
}

func (h *harness) token(pos r3.Vec, t cfg.TokenType) *donburi.Entry {
	return factory.CreateToken(h.g.World, pos, t, 0)
}

func (h *harness) box(pos, vel r3.Vec) *components.BoxData {
	return components.Box.Get(factory.CreateBox(h.g.World, pos, vel))
}

// frame runs one full frame in scene order.
func (h *harness) frame(dt float64) {
	UpdateInput(h.g)
	UpdateControls(h.g)
	UpdateSession(h.g, dt)
	UpdateAnimation(h.g, dt)
	UpdateCamera(h.g, dt)
	UpdateAudio(h.g)
}
