package core

import "errors"

var (
	ErrNotAdjacent        = errors.New("target not adjacent to source")
	ErrInvalidOwnership   = errors.New("invalid ownership for attack")
	ErrInsufficientTroops = errors.New("not enough troops to attack")
	ErrUnknownTerritory   = errors.New("unknown territory")
	ErrInvalidPlayerCount = errors.New("invalid player count")
)
