package room

import (
	"strconv"
	"strings"
)

// Odd multipliers that keep the y and z steps of the mixing chain apart
const (
	mixY = 0x9e3779b97f4a7c15
	mixZ = 0xc2b2ae3d27d4eb4f
)

// Multiplicative offsets, each contributes one fixed-width block of digits
var offsets = [...]uint64{123456789, 987654321, 112233445, 2654435761}

const (
	blockDigits = 6
	blockMod    = 1_000_000
)

// IDLength is the length of every room identity
const IDLength = len(offsets) * blockDigits

// DefaultID is the identity reported before any room is loaded.
// It equals UniqueID(0, 0, 0): the origin room hashes to all zeros.
var DefaultID = strings.Repeat("0", IDLength)

// UniqueID derives the room identity from a coordinate using integer arithmetic only
func UniqueID(x, y, z int) string {
	h := seedHash(x, y, z)

	var sb strings.Builder
	sb.Grow(IDLength)
	for _, off := range offsets {
		block := fmix64(h*off) % blockMod
		s := strconv.FormatUint(block, 10)
		for i := len(s); i < blockDigits; i++ {
			sb.WriteByte('0')
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// seedHash chains each axis through the finalizer so components never cancel
// The origin stays at zero since every step maps zero to zero
func seedHash(x, y, z int) uint64 {
	h := fmix64(uint64(x))
	h = fmix64(h ^ uint64(y)*mixY)
	return fmix64(h ^ uint64(z)*mixZ)
}

// fmix64 is the MurmurHash3 finalizer, fmix64(0) == 0
func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}
