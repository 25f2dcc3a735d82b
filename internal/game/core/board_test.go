package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestNewBoard_TerritoryTable(t *testing.T) {
	b := NewBoard()

	require.Equal(t, 42, b.NumTerritories(), "Standard map should have 42 territories")
	assert.True(t, slices.IsSorted(b.Names()), "Names should be in canonical sorted order")
	assert.Equal(t, "Afghanistan", b.Names()[0], "Afghanistan sorts first")

	for i, name := range b.Names() {
		id, err := b.TerritoryByName(name)
		require.NoError(t, err)
		assert.Equal(t, Territory(i), id)
		assert.Equal(t, name, b.Name(id))
	}
}

func TestNewBoard_AdjacencyIsSymmetricAndNonReflexive(t *testing.T) {
	b := NewBoard()

	for i := 0; i < b.NumTerritories(); i++ {
		src := Territory(i)
		require.NotEmpty(t, b.Neighbors(src), "%s should have at least one neighbor", b.Name(src))
		for _, tgt := range b.Neighbors(src) {
			assert.NotEqual(t, src, tgt, "%s must not be adjacent to itself", b.Name(src))
			assert.True(t, b.Adjacent(tgt, src),
				"adjacency must be symmetric: %s -> %s", b.Name(tgt), b.Name(src))
		}
	}
}

func TestNewBoard_DuplicateEdgesCollapse(t *testing.T) {
	b := NewBoard()

	// Several chains repeat the same pair (e.g. Peru--Brazil appears twice);
	// adjacency lists must behave as sets.
	for i := 0; i < b.NumTerritories(); i++ {
		neighbors := b.Neighbors(Territory(i))
		seen := make(map[Territory]bool, len(neighbors))
		for _, n := range neighbors {
			assert.False(t, seen[n], "%s lists %s twice", b.Name(Territory(i)), b.Name(n))
			seen[n] = true
		}
	}
}

func TestNewBoard_KnownBorders(t *testing.T) {
	b := NewBoard()

	mustID := func(name string) Territory {
		id, err := b.TerritoryByName(name)
		require.NoError(t, err)
		return id
	}

	alaska := mustID("Alaska")
	kamchatka := mustID("Kamchatka")
	brazil := mustID("Brazil")

	assert.True(t, b.Adjacent(alaska, kamchatka), "Alaska borders Kamchatka")
	assert.False(t, b.Adjacent(alaska, brazil), "Alaska does not border Brazil")
	assert.Len(t, b.Neighbors(alaska), 3, "Alaska borders NWT, Alberta and Kamchatka")
}

func TestNewBoard_NumActions(t *testing.T) {
	b := NewBoard()

	sum := 0
	for i := 0; i < b.NumTerritories(); i++ {
		sum += len(b.Neighbors(Territory(i)))
	}
	assert.Equal(t, sum, b.NumActions())
	// Every undirected edge contributes twice.
	assert.Zero(t, b.NumActions()%2)
}

func TestNewBoard_Deterministic(t *testing.T) {
	a, b := NewBoard(), NewBoard()

	require.Equal(t, a.Names(), b.Names())
	for i := 0; i < a.NumTerritories(); i++ {
		assert.Equal(t, a.Neighbors(Territory(i)), b.Neighbors(Territory(i)))
	}
}

func TestTerritoryByName_Unknown(t *testing.T) {
	b := NewBoard()

	id, err := b.TerritoryByName("Atlantis")
	assert.ErrorIs(t, err, ErrUnknownTerritory)
	assert.Equal(t, NoTerritory, id)
}

func TestAreas_CoverBoardExactlyOnce(t *testing.T) {
	b := NewBoard()

	seen := make(map[string]bool)
	total := 0
	for _, area := range b.Areas() {
		assert.Positive(t, area.Bonus, "area %s should carry a bonus", area.Name)
		for _, name := range area.Territories {
			_, err := b.TerritoryByName(name)
			require.NoError(t, err, "area %s names unknown territory %s", area.Name, name)
			assert.False(t, seen[name], "territory %s in more than one area", name)
			seen[name] = true
			total++
		}
	}
	assert.Equal(t, b.NumTerritories(), total, "areas should partition the board")
}
