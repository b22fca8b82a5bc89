package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPush
	ActionPause
	ActionMenuSelect
	ActionMenuBack
	ActionMute
	ActionCount // Must be last - used for array sizing
)
