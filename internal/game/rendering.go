package game

import (
	"fmt"
	"strings"
)

// Map returns a fixed-width textual dump of the board, one line per
// territory in canonical sorted order. The column layout is a compatibility
// surface for downstream text parsers:
//
//	<name padded to 24 columns> troops=<2-digit-padded int> owner=AI<int>
func (e *Engine) Map() string {
	lines := make([]string, e.board.NumTerritories())
	for t, name := range e.board.Names() {
		lines[t] = fmt.Sprintf("%-24s troops=%2d owner=AI%d", name, e.troops[t], e.owner[t])
	}
	return strings.Join(lines, "\n")
}
