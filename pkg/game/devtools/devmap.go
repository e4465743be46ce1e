package devtools

import (
	"worldofbits/pkg/engine/world"
	"worldofbits/pkg/game/generator"
	"worldofbits/pkg/game/token"
)

// DevLayout returns a hand-placed layout around origin for testing crafting
// without hunting for tokens. Every cell not listed is empty.
//
// Row north of origin: a matching pair of each level, so a win needs only
// a few clicks.
//
//	2 2 . 4 4 . 8 8
//	@
//	16 sits two cells south, already at the target value.
func DevLayout(origin world.Cell) generator.Table {
	t := generator.Table{}
	pairs := []token.Value{2, 4, 8}
	for k, v := range pairs {
		t[origin.Offset(1, 3*k)] = v
		t[origin.Offset(1, 3*k+1)] = v
	}
	t[origin.Offset(-2, 0)] = token.FromLevel(4)
	return t
}
