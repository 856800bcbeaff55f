package qrsymbol

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kodeshop/qrsymbol/errlevel"
	"github.com/kodeshop/qrsymbol/mask"
	"github.com/kodeshop/qrsymbol/version"
)

func TestEncodePicksSmallestFittingVersion(t *testing.T) {
	sym, err := Encode("isaiah", 1)
	assert.NoError(t, err)
	assert.Equal(t, version.Version(1), sym.Version())
	assert.Equal(t, 21, sym.Size())
}

func TestEncodeRespectsMinVersion(t *testing.T) {
	sym, err := Encode("isaiah", 3)
	assert.NoError(t, err)
	assert.Equal(t, version.Version(3), sym.Version())
}

func TestEncodeGrowsVersionWhenTextDoesNotFit(t *testing.T) {
	longText := ""
	for i := 0; i < 30; i++ {
		longText += "ab"
	}
	sym, err := Encode(longText, 1)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, int(sym.Version()), 2)
}

func TestEncodeDataTooLongForAnyVersion(t *testing.T) {
	longText := make([]byte, 300)
	for i := range longText {
		longText[i] = 'x'
	}
	_, err := Encode(string(longText), 1)
	assert.ErrorIs(t, err, ErrDataTooLong)
}

func TestEncodeRejectsNonAscii(t *testing.T) {
	_, err := Encode("caf\xe9", 1)
	assert.ErrorIs(t, err, ErrNotAscii)
}

func TestEncodeRejectsUnsupportedVersion(t *testing.T) {
	_, err := Encode("hi", 6)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = Encode("hi", 0)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestEncodeWithMaskRejectsUnsupportedMask(t *testing.T) {
	_, err := EncodeWithMask("hi", 1, mask.Pattern4)
	assert.ErrorIs(t, err, mask.ErrNotSupported)
}

func TestSymbolFunctionPatternsAreMarked(t *testing.T) {
	sym, err := Encode("isaiah", 1)
	assert.NoError(t, err)

	topLeftFinder := sym.ModuleAt(0, 0)
	assert.True(t, topLeftFinder.Dark)
	assert.False(t, topLeftFinder.IsData)

	center := sym.ModuleAt(3, 3)
	assert.True(t, center.Dark)
	assert.False(t, center.IsData)

	darkModule := sym.ModuleAt(8, 13)
	assert.True(t, darkModule.Dark)
	assert.False(t, darkModule.IsData)
}

func TestSymbolCodeWordsLength(t *testing.T) {
	sym, err := Encode("isaiah", 1)
	assert.NoError(t, err)
	assert.Len(t, sym.CodeWords(), 26)
}

func TestEncodeDifferentMasksProduceDifferentDataModules(t *testing.T) {
	symA, err := EncodeWithMask("isaiah-perumalla", 1, mask.Pattern0)
	assert.NoError(t, err)
	symB, err := EncodeWithMask("isaiah-perumalla", 1, mask.Pattern1)
	assert.NoError(t, err)

	differs := false
	for y := 0; y < symA.Size(); y++ {
		for x := 0; x < symA.Size(); x++ {
			ma := symA.ModuleAt(x, y)
			mb := symB.ModuleAt(x, y)
			if ma.IsData && mb.IsData && ma.Dark != mb.Dark {
				differs = true
			}
		}
	}
	assert.True(t, differs, "different masks should flip at least one data module")
}

func TestDataRegionCardinalityMatchesCodewordsPlusRemainder(t *testing.T) {
	// spec property 2: the data region holds exactly total_code_words*8 + 7
	// cells (7 trailing remainder bits, always zero) for every version 1-5.
	for v := 1; v <= 5; v++ {
		capacity, err := errlevel.L.CapacityFor(v)
		assert.NoError(t, err)

		size := version.Version(v).Size()
		walker := version.NewZigzagWalker(size)
		dataCells := 0
		for {
			x, y, ok := walker.Next()
			if !ok {
				break
			}
			if !version.Version(v).IsFunctionModule(x, y) {
				dataCells++
			}
		}
		assert.Equal(t, capacity.TotalWords()*8+7, dataCells, "version %d", v)
	}
}

func TestEncodeLeavesTrailingRemainderBitsClear(t *testing.T) {
	// Data-region cells past the end of the codeword stream get no codeword
	// bit: encoding must not panic, and those cells stay unset before
	// masking, so after mask 0 each is dark exactly where the mask flips it.
	// A version-2 symbol has 7 such cells.
	sym, err := Encode("isaiah", 1)
	assert.NoError(t, err)
	assert.Equal(t, 26, len(sym.CodeWords()))

	sym2, err := Encode("isaiah", 2)
	assert.NoError(t, err)
	var dataCells [][2]int
	walker := version.NewZigzagWalker(sym2.Size())
	for {
		x, y, ok := walker.Next()
		if !ok {
			break
		}
		if sym2.ModuleAt(x, y).IsData {
			dataCells = append(dataCells, [2]int{x, y})
		}
	}
	codewordBits := len(sym2.CodeWords()) * 8
	assert.Equal(t, codewordBits+7, len(dataCells))
	flip, _ := mask.Pattern0.Predicate()
	for _, c := range dataCells[codewordBits:] {
		assert.Equal(t, flip(c[0], c[1]), sym2.ModuleAt(c[0], c[1]).Dark)
	}
}

func TestFormatBitsPlacedLsbFirstAtCopy1Origin(t *testing.T) {
	// Mask 0's level-L format word is 0b111011111000100: bit 0 (LSB) is 0.
	// Copy 1's bit 0 lands at (8,0) (spec.md §4.E / original_source's
	// set_format), so that module must come out light, not dark.
	sym, err := EncodeWithMask("isaiah", 1, mask.Pattern0)
	assert.NoError(t, err)
	assert.False(t, sym.ModuleAt(8, 0).Dark)
	assert.False(t, sym.ModuleAt(8, 0).IsData)
}

func TestIterModulesYieldsEveryModuleInRowMajorOrder(t *testing.T) {
	sym, err := Encode("isaiah", 1)
	assert.NoError(t, err)

	var seen []Module
	for it := sym.IterModules(); ; {
		m, ok := it.Next()
		if !ok {
			break
		}
		seen = append(seen, m)
	}

	assert.Len(t, seen, sym.Size()*sym.Size())
	for i, m := range seen {
		wantX, wantY := i%sym.Size(), i/sym.Size()
		assert.Equal(t, wantX, m.X)
		assert.Equal(t, wantY, m.Y)
		assert.Equal(t, sym.ModuleAt(m.X, m.Y), m)
	}

	_, ok := sym.IterModules().Next()
	assert.True(t, ok, "a fresh iterator must restart from the first module")
}

func TestModuleAtOutOfRangePanics(t *testing.T) {
	sym, _ := Encode("isaiah", 1)
	assert.Panics(t, func() {
		sym.ModuleAt(-1, 0)
	})
	assert.Panics(t, func() {
		sym.ModuleAt(sym.Size(), 0)
	})
}
