package config

// SessionState is the top-level game session state.
type SessionState int

const (
	SessionMenu SessionState = iota
	SessionPlaying
	SessionPaused
	SessionFinished
)

func (s SessionState) String() string {
	switch s {
	case SessionMenu:
		return "menu"
	case SessionPlaying:
		return "playing"
	case SessionPaused:
		return "paused"
	case SessionFinished:
		return "finished"
	}
	return "unknown"
}

// Outcome records how a finished session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

// TokenType identifies a collectible kind. Point values live in Token.Points.
type TokenType int

const (
	TokenPotion TokenType = iota
	TokenBook
	TokenGem
	TokenTypeCount // Must be last - used for array sizing
)

func (t TokenType) String() string {
	switch t {
	case TokenPotion:
		return "potion"
	case TokenBook:
		return "book"
	case TokenGem:
		return "gem"
	}
	return "unknown"
}
