package animations

import (
	cfg "github.com/automoto/lostpath/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// State is the lock state of a Machine.
type State int

const (
	// Free accepts looping clip changes.
	Free State = iota
	// Locked is held by a one-shot clip until it completes.
	Locked
)

func (s State) String() string {
	if s == Locked {
		return "locked"
	}
	return "free"
}

// Machine selects the character clip. Looping clips follow the movement
// intent while Free; a one-shot holds the machine Locked until it finishes
// and then hands back to whatever the intent is at that moment.
type Machine struct {
	state    State
	intent   cfg.ClipID
	current  *Animation
	previous *Animation
	blend    *gween.Tween
	weight   float32
}

// NewMachine starts Free, fully blended into clip.
func NewMachine(clip cfg.ClipID) *Machine {
	m := &Machine{}
	m.Reset(clip)
	return m
}

// Reset jumps to clip with no crossfade and drops any lock.
func (m *Machine) Reset(clip cfg.ClipID) {
	m.state = Free
	m.intent = clip
	m.current = NewAnimation(clip)
	m.previous = nil
	m.blend = nil
	m.weight = 1
}

func (m *Machine) State() State { return m.state }

// Current is the clip being blended in.
func (m *Machine) Current() cfg.ClipID { return m.current.Clip }

// Intent is the most recently requested looping clip.
func (m *Machine) Intent() cfg.ClipID { return m.intent }

// Request records clip as the movement intent and crossfades to it when the
// machine is Free. It reports whether the active clip changed.
func (m *Machine) Request(clip cfg.ClipID) bool {
	m.intent = clip
	if m.state == Locked || m.current.Clip == clip {
		return false
	}
	m.crossfade(clip, cfg.Clips[clip].FadeIn)
	return true
}

// PlayOnce starts a one-shot clip and locks the machine. A one-shot started
// while another is playing replaces it.
func (m *Machine) PlayOnce(clip cfg.ClipID) {
	m.state = Locked
	m.crossfade(clip, cfg.Clips[clip].FadeIn)
}

// Update advances playback and the crossfade. When a one-shot completes it
// releases the lock, falls back to the intent and returns the finished clip.
func (m *Machine) Update(dt float64) (cfg.ClipID, bool) {
	m.current.Update(dt)
	if m.previous != nil {
		m.previous.Update(dt)
	}
	if m.blend != nil {
		w, done := m.blend.Update(float32(dt))
		m.weight = w
		if done {
			m.blend = nil
			m.previous = nil
			m.weight = 1
		}
	}

	if m.state != Locked || !m.current.Looped {
		return cfg.ClipNone, false
	}

	finished := m.current.Clip
	m.state = Free
	m.crossfade(m.intent, cfg.Clips[finished].FadeBack)
	return finished, true
}

// Weights returns the incoming clip, the outgoing clip (ClipNone when no
// crossfade is running) and the incoming clip's blend weight.
func (m *Machine) Weights() (current, previous cfg.ClipID, weight float32) {
	if m.previous == nil {
		return m.current.Clip, cfg.ClipNone, 1
	}
	return m.current.Clip, m.previous.Clip, m.weight
}

// Progress is the normalized play position of the current clip.
func (m *Machine) Progress() float64 {
	return m.current.Progress()
}

func (m *Machine) crossfade(clip cfg.ClipID, fade float64) {
	m.previous = m.current
	m.current = NewAnimation(clip)
	if fade <= 0 {
		m.previous = nil
		m.blend = nil
		m.weight = 1
		return
	}
	m.blend = gween.New(0, 1, float32(fade), ease.Linear)
	m.weight = 0
}
