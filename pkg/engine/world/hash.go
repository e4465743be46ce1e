package world

import "hash/fnv"

func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func tagHash(tag string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(tag))
	return h.Sum64()
}

// Hash returns a stable 64-bit hash of (seed, i, j, tag). It is a pure
// function: the same inputs give the same output in every process.
func Hash(seed int64, i, j int, tag string) uint64 {
	ui := uint64(int64(i))
	uj := uint64(int64(j))
	v := uint64(seed) ^ (ui * 0x9e3779b97f4a7c15) ^ (uj * 0xbf58476d1ce4e5b9) ^ (tagHash(tag) * 0xc2b2ae3d27d4eb4f)
	return mix64(v)
}

// Unit maps Hash onto [0, 1) using the top 53 bits
func Unit(seed int64, i, j int, tag string) float64 {
	return float64(Hash(seed, i, j, tag)>>11) / (1 << 53)
}
