package core

// AttackAction is a single attack attempt from one territory into an
// adjacent territory held by another player.
type AttackAction struct {
	Player int
	From   Territory
	To     Territory
}

// Validate checks the attack against the board graph and the per-game
// ownership and troop tables. Checks run in a fixed order: adjacency,
// ownership, troop margin. A failed check never mutates state.
func (a *AttackAction) Validate(b *Board, owner, troops []int) error {
	if !b.Valid(a.From) || !b.Valid(a.To) {
		return ErrUnknownTerritory
	}
	if !b.Adjacent(a.From, a.To) {
		return ErrNotAdjacent
	}
	// The source must be the attacker's and the target must not be; any
	// other player's territory is a legal target, not just a designated
	// enemy's.
	if owner[a.From] != a.Player || owner[a.To] == a.Player {
		return ErrInvalidOwnership
	}
	// Attacking force must exceed the defenders by more than one troop.
	if troops[a.From] <= troops[a.To]+1 {
		return ErrInsufficientTroops
	}
	return nil
}

// AttackResult describes a resolved capture.
type AttackResult struct {
	// Moved is the number of troops transferred onto the target.
	Moved int
	// PreviousOwner is the player who actually held the target before the
	// capture.
	PreviousOwner int
}

// ApplyAttack validates the action and, on success, applies it to the
// ownership and troop tables in place. Combat is deterministic: the target
// flips to the attacker and max(1, troops(from)/2) troops move onto it.
// There is exactly one transfer per call, no dice, no partial captures.
func ApplyAttack(b *Board, owner, troops []int, a *AttackAction) (*AttackResult, error) {
	if err := a.Validate(b, owner, troops); err != nil {
		return nil, err
	}

	moved := troops[a.From] / 2
	if moved < 1 {
		moved = 1
	}

	res := &AttackResult{Moved: moved, PreviousOwner: owner[a.To]}
	owner[a.To] = a.Player
	troops[a.From] -= moved
	troops[a.To] = moved
	return res, nil
}
