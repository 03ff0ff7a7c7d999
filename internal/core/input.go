package core

// Action represents a semantic game action, abstracted from physical key presses.
// The simulation reads intents, never raw keys.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move or hold up
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionUseItem          // Space - use the selected inventory item
	ActionPrevItem         // Z - select the previous item
	ActionNextItem         // X - select the next item
	ActionToggleHUD        // H - cycle the HUD mode
	ActionConfirm          // Enter - dismiss a message, confirm a selection
	ActionBack             // Escape - go back to the menu
	ActionRestart          // R - restart the level
	ActionQuit             // Q, Ctrl+C - leave the level
)

var actionNames = [...]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionUseItem:   "UseItem",
	ActionPrevItem:  "PrevItem",
	ActionNextItem:  "NextItem",
	ActionToggleHUD: "ToggleHUD",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Directional reports whether the action is one of the four movement actions.
// Movement actions are held; the rest fire once.
func (a Action) Directional() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered or held during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds an input frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
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

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
