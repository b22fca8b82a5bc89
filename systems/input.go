package systems

import (
	"github.com/automoto/lostpath/components"
	cfg "github.com/automoto/lostpath/config"
	"github.com/automoto/lostpath/game"
)

// UpdateInput polls the input source and updates the InputComponent.
// Must run BEFORE UpdateSession in the system order.
func UpdateInput(g *game.Game) {
	input := getOrCreateInput(g)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Consumed = [cfg.ActionCount]bool{}

	for id := cfg.ActionID(1); id < cfg.ActionCount; id++ {
		input.Current[id] = g.Input.Pressed(id)
	}
	input.PointerX, input.PointerY = g.Input.PointerDelta()
}

func getOrCreateInput(g *game.Game) *components.InputData {
	entry, ok := components.Input.First(g.World)
	if !ok {
		entry = g.World.Entry(g.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// ConsumeAction reports a fresh press of id at most once per frame, so
// substeps within the same frame cannot act on the same press twice.
func ConsumeAction(input *components.InputData, id cfg.ActionID) bool {
	if input.Consumed[id] || !GetAction(input, id).JustPressed {
		return false
	}
	input.Consumed[id] = true
	return true
}
