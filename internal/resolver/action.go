package resolver

import (
	"strings"

	"carbon/internal/dedupe"
)

// Action identifies what happens to the secondary members of a group.
type Action string

const (
	// ActionShow reports the members without mutating anything.
	ActionShow Action = "show"
	// ActionDelete removes each secondary from the filesystem.
	ActionDelete Action = "delete"
	// ActionMove relocates each secondary into the target directory.
	ActionMove Action = "move"
	// ActionHardlink creates a link to the primary's data in the target
	// directory, then deletes the secondary's redundant copy.
	ActionHardlink Action = "hardlink"
)

// ParseAction resolves an action identifier. Unknown identifiers are
// rejected as configuration errors before any I/O happens.
func ParseAction(value string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(ActionShow):
		return ActionShow, nil
	case string(ActionDelete):
		return ActionDelete, nil
	case string(ActionMove):
		return ActionMove, nil
	case string(ActionHardlink):
		return ActionHardlink, nil
	default:
		return "", dedupe.Wrap(dedupe.ErrInvalidConfiguration, "resolver", "parse action",
			"unknown action "+strings.TrimSpace(value)+" (expected show, delete, move, or hardlink)", nil)
	}
}

// String returns the canonical identifier.
func (a Action) String() string {
	return string(a)
}

// RequiresTarget reports whether the action needs a target directory.
func (a Action) RequiresTarget() bool {
	return a == ActionMove || a == ActionHardlink
}

// Mutating reports whether the action changes the filesystem.
func (a Action) Mutating() bool {
	return a != ActionShow
}
