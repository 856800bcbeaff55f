// Package errlevel models the QR Code error-correction level and the
// per-version data capacity and format-bit tables that depend on it. Only
// level L is implemented; M, Q, and H are recognized constants that report
// ErrNotSupported wherever a table lookup would otherwise need them.
package errlevel

import "errors"

// ErrNotSupported is returned by any operation on a Level this package does
// not carry tables for.
var ErrNotSupported = errors.New("errlevel: level not supported")

// Level is a QR Code error-correction level.
type Level uint8

const (
	L Level = iota
	M
	Q
	H
)

// String returns the level's single-letter name.
func (l Level) String() string {
	switch l {
	case L:
		return "L"
	case M:
		return "M"
	case Q:
		return "Q"
	case H:
		return "H"
	default:
		return "?"
	}
}

// Capacity describes how a version's codewords split between data and
// error-correction for a given level, assuming a single Reed-Solomon block
// (spec.md's scope excludes multi-block interleaving).
type Capacity struct {
	ECWordsPerBlock int
	DataWords       int
}

// TotalWords is the codeword count a symbol of this capacity occupies.
func (c Capacity) TotalWords() int {
	return c.DataWords + c.ECWordsPerBlock
}

// capacityL holds level-L capacities indexed by version (capacityL[0] is
// unused; versions run 1..5 per spec.md's scope). Values match
// original_source/src/error_cc.rs's DATA_CAPACITY_L table for the versions
// in scope.
var capacityL = [6]Capacity{
	{},
	{ECWordsPerBlock: 7, DataWords: 19},
	{ECWordsPerBlock: 10, DataWords: 34},
	{ECWordsPerBlock: 15, DataWords: 55},
	{ECWordsPerBlock: 20, DataWords: 80},
	{ECWordsPerBlock: 26, DataWords: 108},
}

// CapacityFor returns the data/ECC split for this level and version.
// version must be in 1..5; only L is implemented.
func (l Level) CapacityFor(version int) (Capacity, error) {
	if l != L {
		return Capacity{}, ErrNotSupported
	}
	if version < 1 || version > 5 {
		panic("errlevel: version out of range")
	}
	return capacityL[version], nil
}

// formatBitsL holds the 15-bit format word for level L, indexed by mask
// pattern 0..7, matching original_source/src/error_cc.rs's
// l_mask_pattern and spec.md §4.E.
var formatBitsL = [8]uint32{
	0b111011111000100,
	0b111001011110011,
	0b111110110101010,
	0b111100010011101,
	0b110011000101111,
	0b110001100011000,
	0b110110001000001,
	0b110100101110110,
}

// FormatBits returns the 15-bit format word for this level and mask
// pattern (0..7). Only L is implemented.
func (l Level) FormatBits(mask int) (uint32, error) {
	if l != L {
		return 0, ErrNotSupported
	}
	if mask < 0 || mask > 7 {
		panic("errlevel: mask out of range")
	}
	return formatBitsL[mask], nil
}
