package phase

import "errors"

var (
	ErrInvalidCatalog       = errors.New("invalid phase catalog")
	ErrEmptyCatalog         = errors.New("phase catalog has no phases")
	ErrInvalidPhaseNumber   = errors.New("phase number must be positive")
	ErrUnknownRefinement    = errors.New("unknown refinement")
	ErrInvalidRefinementArg = errors.New("invalid refinement argument")
)
