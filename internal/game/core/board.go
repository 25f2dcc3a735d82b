package core

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// connectData defines the board as territory chains: adjacent names on a
// line are connected. Blank lines separate regions and are ignored.
// Spellings are kept as-is for compatibility with existing map dumps.
const connectData = `
Alaska--Northwest Territories--Alberta--Alaska
Alberta--Ontario--Greenland--Northwest Territories
Greenland--Quebec--Ontario--Eastern United States--Quebec
Alberta--Western United States--Ontario--Northwest Territories
Western United States--Eastern United States--Mexico--Western United States

Venezuala--Peru--Argentina--Brazil
Peru--Brazil--Venezuala

North Africa--Egypt--East Africa--North Africa
North Africa--Congo--East Africa--South Africa--Congo
East Africa--Madagascar--South Africa

Indonesia--Western Australia--Eastern Australia--New Guinea--Indonesia
Western Australia--New Guinea

Iceland--Great Britain--Western Europe--Southern Europe--Northern Europe--Western Europe
Northern Europe--Great Britain--Scandanavia--Northern Europe--Ukraine--Scandanavia--Iceland
Southern Europe--Ukraine

Middle East--India--South East Asia--China--Mongolia--Japan--Kamchatka--Yakutsk--Irkutsk--Kamchatka--Mongolia--Irkutsk
Yakutsk--Siberia--Irkutsk
China--Siberia--Mongolia
Siberia--Ural--China--Afghanistan--Ural
Middle East--Afghanistan--India--China

Mexico--Venezuala
Brazil--North Africa
Western Europe--North Africa--Southern Europe--Egypt--Middle East--East Africa
Southern Europe--Middle East--Ukraine--Afghanistan--Ural
Ukraine--Ural
Greenland--Iceland
Alaska--Kamchatka
South East Asia--Indonesia
`

// chainSep joins territory names within a connection chain.
const chainSep = "--"

// Territory is an index into the board's canonical (sorted) territory table.
// Indices are assigned by NewBoard and are stable for a given board layout;
// string names only appear at the boundary (TerritoryByName, Name).
type Territory int

// NoTerritory is returned by lookups that fail to resolve a name.
const NoTerritory Territory = -1

// Board is the static adjacency structure of the game map. It is built once
// from connectData, is immutable afterwards, and is safe to share read-only
// across any number of concurrent games.
type Board struct {
	names      []string
	index      map[string]Territory
	adj        [][]Territory
	numActions int
}

// NewBoard parses the embedded connection chains into a symmetric adjacency
// graph. Duplicate edges collapse into a single entry and a territory is
// never adjacent to itself. Construction is deterministic: the same input
// always yields the same graph.
func NewBoard() *Board {
	edges := make(map[string]map[string]bool)
	touch := func(name string) map[string]bool {
		set, ok := edges[name]
		if !ok {
			set = make(map[string]bool)
			edges[name] = set
		}
		return set
	}

	for _, line := range strings.Split(connectData, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		chain := strings.Split(line, chainSep)
		for i := range chain {
			chain[i] = strings.TrimSpace(chain[i])
		}
		for i := 0; i+1 < len(chain); i++ {
			a, b := chain[i], chain[i+1]
			if a == b {
				continue
			}
			touch(a)[b] = true
			touch(b)[a] = true
		}
	}

	names := maps.Keys(edges)
	slices.Sort(names)

	b := &Board{
		names: names,
		index: make(map[string]Territory, len(names)),
		adj:   make([][]Territory, len(names)),
	}
	for i, name := range names {
		b.index[name] = Territory(i)
	}
	for i, name := range names {
		neighbors := maps.Keys(edges[name])
		slices.Sort(neighbors)
		ids := make([]Territory, len(neighbors))
		for j, n := range neighbors {
			ids[j] = b.index[n]
		}
		b.adj[i] = ids
		b.numActions += len(ids)
	}
	return b
}

// NumTerritories returns the number of territories on the board.
func (b *Board) NumTerritories() int { return len(b.names) }

// NumActions is the size of the flat (source, target) adjacency-pair action
// space: the sum over all territories of their neighbor counts. It is an
// upper bound on the number of distinct attack actions an agent can emit.
func (b *Board) NumActions() int { return b.numActions }

// Names returns all territory names in canonical sorted order. The returned
// slice is shared and must not be modified.
func (b *Board) Names() []string { return b.names }

// Valid reports whether t indexes a territory on this board.
func (b *Board) Valid(t Territory) bool {
	return t >= 0 && int(t) < len(b.names)
}

// Name returns the territory's name. Panics on an out-of-range index; indices
// should only be produced by this board.
func (b *Board) Name(t Territory) string { return b.names[t] }

// TerritoryByName resolves a territory name to its index.
func (b *Board) TerritoryByName(name string) (Territory, error) {
	t, ok := b.index[name]
	if !ok {
		return NoTerritory, fmt.Errorf("%w: %q", ErrUnknownTerritory, name)
	}
	return t, nil
}

// Neighbors returns the territories adjacent to t, sorted by index. The
// returned slice is shared and must not be modified.
func (b *Board) Neighbors(t Territory) []Territory { return b.adj[t] }

// Adjacent reports whether a and b share a border.
func (b *Board) Adjacent(from, to Territory) bool {
	return slices.Contains(b.adj[from], to)
}
