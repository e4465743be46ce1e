// Package token defines the power-of-two values that occupy cells and the
// player's inventory.
package token

import (
	"math/bits"
	"strconv"
)

// Value is a token value. Zero means empty; any other valid value is a
// positive power of two.
type Value int

// Empty is the absence of a token
const Empty Value = 0

// FromLevel returns 2^level. Levels below 1 return Empty.
func FromLevel(level int) Value {
	if level < 1 || level >= bits.UintSize-1 {
		return Empty
	}
	return Value(1) << level
}

// IsEmpty reports whether v holds no token
func (v Value) IsEmpty() bool {
	return v == Empty
}

// Valid reports whether v is Empty or a power of two of at least 2
func (v Value) Valid() bool {
	if v == Empty {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Level returns log2(v), or 0 for Empty
func (v Value) Level() int {
	if v <= 0 {
		return 0
	}
	return bits.Len(uint(v)) - 1
}

// Double returns the result of crafting two tokens of value v
func (v Value) Double() Value {
	return v * 2
}

// String renders the value, or an empty string for Empty
func (v Value) String() string {
	if v.IsEmpty() {
		return ""
	}
	return strconv.Itoa(int(v))
}
