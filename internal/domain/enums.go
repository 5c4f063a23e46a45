package domain

import "fmt"

type ActionKind string

const (
	ActionCheckIn  ActionKind = "CheckIn"
	ActionCheckOut ActionKind = "CheckOut"
)

// ValidActionKinds is the canonical set of accepted action strings.
var ValidActionKinds = map[string]bool{
	string(ActionCheckIn):  true,
	string(ActionCheckOut): true,
}

// ParseActionKind converts a stored or user-supplied string into an ActionKind.
func ParseActionKind(s string) (ActionKind, error) {
	if !ValidActionKinds[s] {
		return "", fmt.Errorf("unknown action kind %q (expected CheckIn or CheckOut)", s)
	}
	return ActionKind(s), nil
}
