package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewref/pyrisk/internal/game/core"
)

func TestActionSpace_SizeMatchesBoard(t *testing.T) {
	b := core.NewBoard()
	space := NewActionSpace(b)

	assert.Equal(t, b.NumActions(), space.Size())
}

func TestActionSpace_IndexDecodeRoundTrip(t *testing.T) {
	b := core.NewBoard()
	space := NewActionSpace(b)

	seen := make(map[int]bool, space.Size())
	for i := 0; i < b.NumTerritories(); i++ {
		src := core.Territory(i)
		for ord, want := range b.Neighbors(src) {
			idx := space.Index(src, ord)
			require.False(t, seen[idx], "index %d assigned twice", idx)
			seen[idx] = true

			gotSrc, gotTgt, ok := space.Decode(idx)
			require.True(t, ok)
			assert.Equal(t, src, gotSrc)
			assert.Equal(t, want, gotTgt)
		}
	}
	assert.Len(t, seen, space.Size(), "every index in [0, Size) is reachable")
}

func TestActionSpace_DecodeOutOfRange(t *testing.T) {
	space := NewActionSpace(core.NewBoard())

	_, _, ok := space.Decode(-1)
	assert.False(t, ok)
	_, _, ok = space.Decode(space.Size())
	assert.False(t, ok)
}

func TestLegalAttackCalculator_Mask(t *testing.T) {
	b := core.NewBoard()
	space := NewActionSpace(b)
	calc := NewLegalAttackCalculator()

	alaska, err := b.TerritoryByName("Alaska")
	require.NoError(t, err)

	// Player 1 holds the whole board with one troop per territory; player 0
	// holds only Alaska.
	owner := make([]int, b.NumTerritories())
	troops := make([]int, b.NumTerritories())
	for i := range owner {
		owner[i] = 1
		troops[i] = 1
	}
	owner[alaska] = 0

	t.Run("no legal attacks without a troop margin", func(t *testing.T) {
		troops[alaska] = 2
		mask := calc.Mask(b, space, owner, troops, 0)
		assert.NotContains(t, mask, true)
	})

	t.Run("each neighbor becomes attackable", func(t *testing.T) {
		troops[alaska] = 10
		mask := calc.Mask(b, space, owner, troops, 0)

		legal := 0
		for idx, ok := range mask {
			if !ok {
				continue
			}
			legal++
			src, tgt, decoded := space.Decode(idx)
			require.True(t, decoded)
			assert.Equal(t, alaska, src)
			assert.True(t, b.Adjacent(alaska, tgt))
		}
		assert.Equal(t, len(b.Neighbors(alaska)), legal)
	})

	t.Run("other players see no attacks from it", func(t *testing.T) {
		troops[alaska] = 10
		mask := calc.Mask(b, space, owner, troops, 2)
		assert.NotContains(t, mask, true, "player 2 owns nothing")
	})
}
