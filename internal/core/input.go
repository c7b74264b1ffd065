package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the game to work with high-level intents rather than
// raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - move paddle left
	ActionRight           // D, Right arrow - move paddle right
	ActionLaunch          // Space - launch the ball off the paddle
	ActionPause           // P - pause/unpause
	ActionForfeit         // F - give up the current run
	ActionRestart         // R - restart after game over / win
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionSlot1           // 1 - select first palette element for the paddle
	ActionSlot2           // 2
	ActionSlot3           // 3
	ActionSlot4           // 4
	ActionSlot5           // 5
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionForfeit:
		return "Forfeit"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionSlot1:
		return "Slot1"
	case ActionSlot2:
		return "Slot2"
	case ActionSlot3:
		return "Slot3"
	case ActionSlot4:
		return "Slot4"
	case ActionSlot5:
		return "Slot5"
	default:
		return "Unknown"
	}
}

// SlotIndex returns the palette index for an element-select action,
// or -1 for any other action.
func (a Action) SlotIndex() int {
	if a >= ActionSlot1 && a <= ActionSlot5 {
		return int(a - ActionSlot1)
	}
	return -1
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Slot returns the palette index of the first element-select action
// triggered this frame, or -1 if none was.
func (f InputFrame) Slot() int {
	for a := ActionSlot1; a <= ActionSlot5; a++ {
		if f.Has(a) {
			return a.SlotIndex()
		}
	}
	return -1
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
