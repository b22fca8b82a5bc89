package animations

import cfg "github.com/automoto/lostpath/config"

// Animation tracks playback of one clip in seconds.
type Animation struct {
	Clip             cfg.ClipID
	Duration         float64
	elapsed          float64
	Looped           bool // set once the clip has reached its end at least once
	FreezeOnComplete bool // If true, hold the last pose instead of looping
}

func (a *Animation) Update(dt float64) {
	if a.Duration <= 0 {
		a.Looped = true
		return
	}
	a.elapsed += dt
	if a.elapsed >= a.Duration {
		a.Looped = true
		if a.FreezeOnComplete {
			a.elapsed = a.Duration
		} else {
			for a.elapsed >= a.Duration {
				a.elapsed -= a.Duration
			}
		}
	}
}

// Progress is the normalized play position in [0, 1].
func (a *Animation) Progress() float64 {
	if a.Duration <= 0 {
		return 1
	}
	return a.elapsed / a.Duration
}

func (a *Animation) Restart() {
	a.elapsed = 0
	a.Looped = false
}

// NewAnimation creates playback for clip using its table definition.
// One-shot clips freeze on their last pose.
func NewAnimation(clip cfg.ClipID) *Animation {
	def := cfg.Clips[clip]
	return &Animation{
		Clip:             clip,
		Duration:         def.Duration,
		FreezeOnComplete: !def.Loop,
	}
}
