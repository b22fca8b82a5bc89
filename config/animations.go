package config

// ClipID identifies a character animation clip.
type ClipID int

const (
	ClipNone ClipID = iota
	ClipIdle
	ClipJog
	ClipWalkLeft
	ClipWalkRight
	ClipPush
	ClipJump
	ClipTake
	ClipStrong
	ClipCelebrate
)

func (c ClipID) String() string {
	switch c {
	case ClipIdle:
		return "idle"
	case ClipJog:
		return "jog"
	case ClipWalkLeft:
		return "walk-left"
	case ClipWalkRight:
		return "walk-right"
	case ClipPush:
		return "push"
	case ClipJump:
		return "jump"
	case ClipTake:
		return "take"
	case ClipStrong:
		return "strong"
	case ClipCelebrate:
		return "celebrate"
	}
	return "none"
}

type ClipDef struct {
	Duration float64 // seconds for one pass
	Loop     bool
	FadeIn   float64 // crossfade seconds when this clip becomes active
	FadeBack float64 // one-shots: crossfade seconds back to the movement clip
}

var Clips = map[ClipID]ClipDef{
	ClipIdle:      {Duration: 3.2, Loop: true, FadeIn: 0.18},
	ClipJog:       {Duration: 0.8, Loop: true, FadeIn: 0.12},
	ClipWalkLeft:  {Duration: 1.1, Loop: true, FadeIn: 0.12},
	ClipWalkRight: {Duration: 1.1, Loop: true, FadeIn: 0.12},
	ClipPush:      {Duration: 1.4, Loop: true, FadeIn: 0.1},
	ClipJump:      {Duration: 0.9, FadeIn: 0.12, FadeBack: 0.14},
	ClipTake:      {Duration: 1.2, FadeIn: 0.15, FadeBack: 0.16},
	ClipStrong:    {Duration: 1.8, FadeIn: 0.2, FadeBack: 0.2},
	ClipCelebrate: {Duration: 2.6, FadeIn: 0.22, FadeBack: 0.2},
}
