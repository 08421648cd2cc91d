package seed

import (
	"hash/fnv"
	"strconv"
)

// ParseDigits parses the leading decimal-digit prefix of s
// Slices with no leading digit, or that overflow uint64, parse to 0 so that a
// malformed identity still produces a renderable room
func ParseDigits(s string) uint64 {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseUint(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// digitCount returns the printed width of v, with digitCount(0) == 1
func digitCount(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// Seed64 folds an identity into a 64-bit seed for noise and PCG sources (FNV-1a)
func Seed64(id string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return h.Sum64()
}
