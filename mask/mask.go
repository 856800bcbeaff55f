// Package mask implements the QR Code data-masking predicates. Patterns 0-3
// are implemented; 4-7 are recognized constants that report
// ErrNotSupported, per spec.md's Design Notes on exhaustive dispatch.
package mask

import "errors"

// ErrNotSupported is returned for mask patterns this package has no
// predicate for.
var ErrNotSupported = errors.New("mask: pattern not supported")

// Pattern is one of the 8 QR Code mask patterns.
type Pattern uint8

const (
	Pattern0 Pattern = iota
	Pattern1
	Pattern2
	Pattern3
	Pattern4
	Pattern5
	Pattern6
	Pattern7
)

// Predicate reports, for a module at (x, y), whether that module should be
// flipped by this mask pattern. Matches original_source/src/codec.rs's
// MASK_FN table.
type Predicate func(x, y int) bool

func predicate0(x, y int) bool { return (x+y)%2 == 0 }
func predicate1(x, y int) bool { return y%2 == 0 }
func predicate2(x, y int) bool { return x%3 == 0 }
func predicate3(x, y int) bool { return (x+y)%3 == 0 }

// Predicate returns the flip predicate for this pattern, or
// ErrNotSupported for patterns 4-7.
func (p Pattern) Predicate() (Predicate, error) {
	switch p {
	case Pattern0:
		return predicate0, nil
	case Pattern1:
		return predicate1, nil
	case Pattern2:
		return predicate2, nil
	case Pattern3:
		return predicate3, nil
	case Pattern4, Pattern5, Pattern6, Pattern7:
		return nil, ErrNotSupported
	default:
		panic("mask: pattern out of range")
	}
}

// Apply reports whether the module at (x, y) should be flipped under this
// pattern.
func (p Pattern) Apply(x, y int) (bool, error) {
	predicate, err := p.Predicate()
	if err != nil {
		return false, err
	}
	return predicate(x, y), nil
}
