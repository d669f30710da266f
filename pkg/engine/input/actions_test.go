package input

import "testing"

func TestMapToIntent_KnownBindings(t *testing.T) {
	cases := []struct {
		code string
		want Action
	}{
		{"w", ActionMoveForward},
		{"arrow_up", ActionMoveForward},
		{"s", ActionMoveBackward},
		{"a", ActionStrafeLeft},
		{"d", ActionStrafeRight},
		{"q", ActionTurnLeft},
		{"arrow_left", ActionTurnLeft},
		{"e", ActionTurnRight},
		{"arrow_right", ActionTurnRight},
		{"y", ActionAnswerYes},
		{"n", ActionAnswerNo},
		{"m", ActionToggleMinimap},
		{"escape", ActionQuit},
		{"ctrl_c", ActionQuit},
	}

	for _, c := range cases {
		if got := MapToIntent(c.code); got != c.want {
			t.Errorf("MapToIntent(%q) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestMapToIntent_UnknownCode(t *testing.T) {
	if got := MapToIntent("f12"); got != ActionNone {
		t.Errorf("MapToIntent(\"f12\") = %v, want ActionNone", got)
	}
	if got := MapToIntent(""); got != ActionNone {
		t.Errorf("MapToIntent(\"\") = %v, want ActionNone", got)
	}
}

func TestGetBindingsByAction_SortedAndComplete(t *testing.T) {
	byAction := GetBindingsByAction()

	quit := byAction[ActionQuit]
	if len(quit) != 3 {
		t.Fatalf("ActionQuit has %d bindings, want 3: %v", len(quit), quit)
	}
	for i := 1; i < len(quit); i++ {
		if quit[i-1] >= quit[i] {
			t.Errorf("bindings not sorted: %v", quit)
		}
	}

	total := 0
	for _, codes := range byAction {
		total += len(codes)
	}
	if total != len(bindings) {
		t.Errorf("grouped bindings count %d != bindings map size %d", total, len(bindings))
	}
}

func TestActionName(t *testing.T) {
	if got := ActionName(ActionMoveForward); got != "Move Forward" {
		t.Errorf("ActionName(ActionMoveForward) = %q", got)
	}
	if got := ActionName(ActionNone); got != "None" {
		t.Errorf("ActionName(ActionNone) = %q", got)
	}
}
