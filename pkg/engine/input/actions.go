package input

import "sort"

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveForward
	ActionMoveBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight

	// Dream choices
	ActionAnswerYes
	ActionAnswerNo

	// Meta / UI
	ActionSummary
	ActionToggleMinimap
	ActionDumpMap
	ActionQuit
)

// bindings maps raw key codes to actions. Multiple codes may point to
// the same Action.
var bindings = map[string]Action{
	// Movement (WASD plus arrows; arrows turn rather than strafe)
	"w":           ActionMoveForward,
	"arrow_up":    ActionMoveForward,
	"s":           ActionMoveBackward,
	"arrow_down":  ActionMoveBackward,
	"a":           ActionStrafeLeft,
	"d":           ActionStrafeRight,
	"q":           ActionTurnLeft,
	"arrow_left":  ActionTurnLeft,
	"e":           ActionTurnRight,
	"arrow_right": ActionTurnRight,

	// Dream choices
	"y": ActionAnswerYes,
	"n": ActionAnswerNo,

	// Meta
	"j":      ActionSummary,
	"m":      ActionToggleMinimap,
	"p":      ActionDumpMap,
	"x":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToIntent applies the current bindings to a key code.
func MapToIntent(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveForward:
		return "Move Forward"
	case ActionMoveBackward:
		return "Move Backward"
	case ActionStrafeLeft:
		return "Strafe Left"
	case ActionStrafeRight:
		return "Strafe Right"
	case ActionTurnLeft:
		return "Turn Left"
	case ActionTurnRight:
		return "Turn Right"
	case ActionAnswerYes:
		return "Answer Yes"
	case ActionAnswerNo:
		return "Answer No"
	case ActionSummary:
		return "Dream Summary"
	case ActionToggleMinimap:
		return "Toggle Minimap"
	case ActionDumpMap:
		return "Dump Map"
	case ActionQuit:
		return "Wake Up"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action,
// with codes sorted so UI listings are stable.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
