package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionMelee
	ActionFire
	ActionStart
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

// ActionKeys maps each movement and one-shot action to the key rune the
// simulation understands. Mouse actions have no rune.
var ActionKeys = map[ActionID]rune{
	ActionMoveLeft:  'a',
	ActionMoveRight: 'd',
	ActionMoveUp:    'w',
	ActionMoveDown:  's',
	ActionStart:     '\r',
	ActionRestart:   'r',
}
