package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTables returns owner/troops tables where player 0 holds from with
// fromTroops and player 1 holds everything else with one troop each.
func testTables(b *Board, from Territory, fromTroops int) (owner, troops []int) {
	owner = make([]int, b.NumTerritories())
	troops = make([]int, b.NumTerritories())
	for i := range owner {
		owner[i] = 1
		troops[i] = 1
	}
	owner[from] = 0
	troops[from] = fromTroops
	return owner, troops
}

func mustTerritory(t *testing.T, b *Board, name string) Territory {
	t.Helper()
	id, err := b.TerritoryByName(name)
	require.NoError(t, err)
	return id
}

func TestAttackAction_ValidateNotAdjacent_ReturnsError(t *testing.T) {
	b := NewBoard()
	alaska := mustTerritory(t, b, "Alaska")
	brazil := mustTerritory(t, b, "Brazil")
	owner, troops := testTables(b, alaska, 10)

	action := &AttackAction{Player: 0, From: alaska, To: brazil}

	err := action.Validate(b, owner, troops)

	assert.ErrorIs(t, err, ErrNotAdjacent)
}

func TestAttackAction_ValidateOwnership_ReturnsError(t *testing.T) {
	b := NewBoard()
	alaska := mustTerritory(t, b, "Alaska")
	kamchatka := mustTerritory(t, b, "Kamchatka")
	owner, troops := testTables(b, alaska, 10)

	t.Run("source not owned by attacker", func(t *testing.T) {
		action := &AttackAction{Player: 1, From: alaska, To: kamchatka}
		// Player 1 holds kamchatka already, so flip the target too to hit
		// the source check alone.
		owner[kamchatka] = 0
		defer func() { owner[kamchatka] = 1 }()

		assert.ErrorIs(t, action.Validate(b, owner, troops), ErrInvalidOwnership)
	})

	t.Run("target already owned by attacker", func(t *testing.T) {
		owner[kamchatka] = 0
		defer func() { owner[kamchatka] = 1 }()
		action := &AttackAction{Player: 0, From: alaska, To: kamchatka}

		assert.ErrorIs(t, action.Validate(b, owner, troops), ErrInvalidOwnership)
	})
}

func TestAttackAction_ValidateUnknownTerritory_ReturnsError(t *testing.T) {
	b := NewBoard()
	alaska := mustTerritory(t, b, "Alaska")
	owner, troops := testTables(b, alaska, 10)

	action := &AttackAction{Player: 0, From: alaska, To: Territory(999)}

	assert.ErrorIs(t, action.Validate(b, owner, troops), ErrUnknownTerritory)
}

// Validation order is fixed: a non-adjacent pair reports adjacency even when
// ownership would fail too.
func TestAttackAction_ValidationOrder_AdjacencyFirst(t *testing.T) {
	b := NewBoard()
	alaska := mustTerritory(t, b, "Alaska")
	brazil := mustTerritory(t, b, "Brazil")
	owner, troops := testTables(b, alaska, 1) // insufficient troops as well

	action := &AttackAction{Player: 1, From: alaska, To: brazil}

	assert.ErrorIs(t, action.Validate(b, owner, troops), ErrNotAdjacent)
}

func TestAttackAction_TroopMargin(t *testing.T) {
	b := NewBoard()
	alaska := mustTerritory(t, b, "Alaska")
	kamchatka := mustTerritory(t, b, "Kamchatka")

	tests := []struct {
		name       string
		fromTroops int
		wantErr    error
	}{
		{"equal forces fail", 1, ErrInsufficientTroops},
		{"margin of one fails", 2, ErrInsufficientTroops},
		{"margin of two succeeds", 3, nil},
		{"overwhelming force succeeds", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, troops := testTables(b, alaska, tt.fromTroops)
			action := &AttackAction{Player: 0, From: alaska, To: kamchatka}

			err := action.Validate(b, owner, troops)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyAttack_TransfersHalfTheForce(t *testing.T) {
	b := NewBoard()
	alaska := mustTerritory(t, b, "Alaska")
	kamchatka := mustTerritory(t, b, "Kamchatka")
	owner, troops := testTables(b, alaska, 10)

	res, err := ApplyAttack(b, owner, troops, &AttackAction{Player: 0, From: alaska, To: kamchatka})

	require.NoError(t, err)
	assert.Equal(t, 5, res.Moved)
	assert.Equal(t, 1, res.PreviousOwner)
	assert.Equal(t, 0, owner[kamchatka], "target flips to attacker")
	assert.Equal(t, 5, troops[kamchatka], "target holds exactly the moved troops")
	assert.Equal(t, 5, troops[alaska], "attacker keeps the remainder")
}

func TestApplyAttack_MinimumMarginMovesAtLeastOne(t *testing.T) {
	b := NewBoard()
	alaska := mustTerritory(t, b, "Alaska")
	kamchatka := mustTerritory(t, b, "Kamchatka")
	owner, troops := testTables(b, alaska, 3)

	res, err := ApplyAttack(b, owner, troops, &AttackAction{Player: 0, From: alaska, To: kamchatka})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Moved)
	assert.Equal(t, 2, troops[alaska])
	assert.Equal(t, 1, troops[kamchatka])
}

func TestApplyAttack_FailureDoesNotMutate(t *testing.T) {
	b := NewBoard()
	alaska := mustTerritory(t, b, "Alaska")
	kamchatka := mustTerritory(t, b, "Kamchatka")
	owner, troops := testTables(b, alaska, 2) // one troop short

	ownerBefore := append([]int(nil), owner...)
	troopsBefore := append([]int(nil), troops...)

	res, err := ApplyAttack(b, owner, troops, &AttackAction{Player: 0, From: alaska, To: kamchatka})

	assert.ErrorIs(t, err, ErrInsufficientTroops)
	assert.Nil(t, res)
	assert.Equal(t, ownerBefore, owner)
	assert.Equal(t, troopsBefore, troops)
}
