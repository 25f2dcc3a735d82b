package rules

import "github.com/andrewref/pyrisk/internal/game/core"

// ActionSpace maps (source, target) adjacency pairs onto a flat index range
// so an agent can emit a single integer in [0, Size()). The layout follows
// the board's canonical order: all of territory 0's neighbors first, then
// territory 1's, and so on.
type ActionSpace struct {
	board   *core.Board
	offsets []int
	size    int
}

// NewActionSpace precomputes the index layout for a board.
func NewActionSpace(b *core.Board) *ActionSpace {
	offsets := make([]int, b.NumTerritories())
	size := 0
	for t := 0; t < b.NumTerritories(); t++ {
		offsets[t] = size
		size += len(b.Neighbors(core.Territory(t)))
	}
	return &ActionSpace{board: b, offsets: offsets, size: size}
}

// Size returns the total number of (source, target) pairs. It equals the
// board's NumActions and bounds the action space an agent must choose from.
func (as *ActionSpace) Size() int { return as.size }

// Index returns the flat index for attacking from src into its ord-th
// neighbor (in the board's sorted neighbor order).
func (as *ActionSpace) Index(src core.Territory, ord int) int {
	return as.offsets[src] + ord
}

// Decode returns the (source, target) pair for a flat action index. ok is
// false if idx is outside [0, Size()).
func (as *ActionSpace) Decode(idx int) (src, tgt core.Territory, ok bool) {
	if idx < 0 || idx >= as.size {
		return core.NoTerritory, core.NoTerritory, false
	}
	// offsets is sorted; scan back from the last territory whose offset is
	// <= idx. Linear is fine at this scale, the table has 42 entries.
	src = core.Territory(len(as.offsets) - 1)
	for int(src) > 0 && as.offsets[src] > idx {
		src--
	}
	tgt = as.board.Neighbors(src)[idx-as.offsets[src]]
	return src, tgt, true
}

// LegalAttackCalculator computes legal attacks for players.
type LegalAttackCalculator struct{}

// NewLegalAttackCalculator creates a new legal attack calculator
func NewLegalAttackCalculator() *LegalAttackCalculator {
	return &LegalAttackCalculator{}
}

// Mask returns a boolean mask over the flat action space; true marks attacks
// that would pass validation for the given player against the supplied
// ownership and troop tables.
func (c *LegalAttackCalculator) Mask(b *core.Board, space *ActionSpace, owner, troops []int, player int) []bool {
	mask := make([]bool, space.Size())

	for t := 0; t < b.NumTerritories(); t++ {
		src := core.Territory(t)
		// Cheap pre-filters before full validation.
		if owner[src] != player || troops[src] <= 2 {
			continue
		}
		for ord, tgt := range b.Neighbors(src) {
			action := &core.AttackAction{Player: player, From: src, To: tgt}
			if err := action.Validate(b, owner, troops); err == nil {
				mask[space.Index(src, ord)] = true
			}
		}
	}
	return mask
}
