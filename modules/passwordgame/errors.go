package passwordgame

import "errors"

var (
	ErrUnknownPhase = errors.New("unknown phase")
	ErrNoGroups     = errors.New("no groups to validate")
)
