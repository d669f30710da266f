package tui

import (
	"strings"
	"testing"

	"somnium/pkg/engine/input"
)

func TestActionHints_BuiltFromBindings(t *testing.T) {
	line := actionHints(false)

	for _, want := range []string{
		"ACTION{w}/ACTION{s} move",
		"ACTION{a}/ACTION{d} strafe",
		"ACTION{q}/ACTION{e} turn",
	} {
		if !strings.Contains(line, want) {
			t.Errorf("hints %q missing %q", line, want)
		}
	}

	// Meta actions are labelled with their action names.
	for _, a := range []input.Action{input.ActionSummary, input.ActionToggleMinimap, input.ActionQuit} {
		if want := strings.ToLower(input.ActionName(a)); !strings.Contains(line, want) {
			t.Errorf("hints %q missing label %q", line, want)
		}
	}
}

func TestActionHints_PendingQuestion(t *testing.T) {
	line := actionHints(true)
	if want := "ACTION{y} / ACTION{n}: answer the entity"; line != want {
		t.Errorf("pending hints = %q, want %q", line, want)
	}
}

func TestPrimaryKey_PrefersShortestCode(t *testing.T) {
	by := input.GetBindingsByAction()
	if got := primaryKey(by, input.ActionMoveForward); got != "w" {
		t.Errorf("primaryKey(forward) = %q, want \"w\" over \"arrow_up\"", got)
	}
	if got := primaryKey(by, input.ActionQuit); got != "x" {
		t.Errorf("primaryKey(quit) = %q, want \"x\"", got)
	}
	if got := primaryKey(by, input.ActionNone); got != "?" {
		t.Errorf("primaryKey(none) = %q, want \"?\" for unbound actions", got)
	}
}
