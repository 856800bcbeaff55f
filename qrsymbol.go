// Package qrsymbol assembles a QR Code symbol (version 1-5, error
// correction level L, byte mode only) from an ASCII payload: it wires
// together segment encoding, Reed-Solomon error correction, and the
// version geometry into a finished module matrix, then applies a mask
// pattern and writes the format information. This is the root package
// the teacher's qrcodegen.go plays the equivalent role for.
package qrsymbol

import (
	"errors"

	"github.com/kodeshop/qrsymbol/errlevel"
	"github.com/kodeshop/qrsymbol/internal/bitio"
	"github.com/kodeshop/qrsymbol/internal/rsec"
	"github.com/kodeshop/qrsymbol/mask"
	"github.com/kodeshop/qrsymbol/segment"
	"github.com/kodeshop/qrsymbol/version"
)

// ErrDataTooLong is returned when no version from minVersion through 5 has
// enough byte-mode capacity for the given text.
var ErrDataTooLong = errors.New("qrsymbol: data too long for any supported version")

// ErrUnsupportedVersion is returned when minVersion falls outside 1-5.
var ErrUnsupportedVersion = errors.New("qrsymbol: version must be between 1 and 5")

// ErrNotAscii is returned when text contains a byte above 0x7F; byte mode
// here only accepts ASCII.
var ErrNotAscii = segment.ErrNotAscii

// Module is a single symbol cell: its position, whether it's dark, and
// whether it belongs to the data region (as opposed to a reserved function
// pattern). IsData is false exactly for the modules IsFunctionModule
// reserves. Matches original_source/src/lib.rs's Module type.
type Module struct {
	X, Y   int
	Dark   bool
	IsData bool
}

// Symbol is a finished QR Code symbol: a square grid of modules plus the
// version/level/mask it was built with.
type Symbol struct {
	version version.Version
	level   errlevel.Level
	pattern mask.Pattern
	size    int
	dark    [][]bool
	isData  [][]bool
	words   []byte
}

// Version returns the symbol's version.
func (s *Symbol) Version() version.Version { return s.version }

// Level returns the symbol's error-correction level.
func (s *Symbol) Level() errlevel.Level { return s.level }

// Mask returns the symbol's mask pattern.
func (s *Symbol) Mask() mask.Pattern { return s.pattern }

// Size returns the symbol's width and height in modules.
func (s *Symbol) Size() int { return s.size }

// CodeWords returns the full codeword stream (data followed by error
// correction) this symbol encodes.
func (s *Symbol) CodeWords() []byte { return s.words }

// ModuleAt returns the module at (x, y). Panics if out of bounds.
func (s *Symbol) ModuleAt(x, y int) Module {
	if x < 0 || y < 0 || x >= s.size || y >= s.size {
		panic("qrsymbol: module position out of range")
	}
	return Module{X: x, Y: y, Dark: s.dark[y][x], IsData: s.isData[y][x]}
}

// ModuleIter is a stateful cursor over every module of a Symbol, row by
// row, left to right, top to bottom: the lazy finite sequence spec.md §4.G
// names as iter_modules(). Renderers depend only on ModuleAt/IterModules,
// never on Symbol's internal matrices.
type ModuleIter struct {
	sym  *Symbol
	x, y int
	done bool
}

// IterModules returns a cursor over all Size()*Size() modules of s.
func (s *Symbol) IterModules() *ModuleIter {
	return &ModuleIter{sym: s}
}

// Next returns the next module in row-major order, or ok=false once every
// module has been yielded.
func (it *ModuleIter) Next() (m Module, ok bool) {
	if it.done {
		return Module{}, false
	}
	m = it.sym.ModuleAt(it.x, it.y)
	it.x++
	if it.x >= it.sym.size {
		it.x = 0
		it.y++
		if it.y >= it.sym.size {
			it.done = true
		}
	}
	return m, true
}

// Encode builds a symbol for text at the smallest version from minVersion
// through 5 (inclusive) whose byte-mode capacity holds it, using error
// level L and mask pattern 0. Mask selection is fixed rather than
// automatic (spec.md's Non-goals exclude automatic mask selection); callers
// wanting a different mask should use EncodeWithMask.
func Encode(text string, minVersion int) (*Symbol, error) {
	return EncodeWithMask(text, minVersion, mask.Pattern0)
}

// EncodeWithMask is Encode with an explicit mask pattern.
func EncodeWithMask(text string, minVersion int, pattern mask.Pattern) (*Symbol, error) {
	if minVersion < 1 || minVersion > 5 {
		return nil, ErrUnsupportedVersion
	}
	if _, err := pattern.Predicate(); err != nil {
		return nil, err
	}

	for v := minVersion; v <= 5; v++ {
		sym, err := buildSymbol(text, version.Version(v), pattern)
		if errors.Is(err, ErrDataTooLong) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return sym, nil
	}
	return nil, ErrDataTooLong
}

func buildSymbol(text string, v version.Version, pattern mask.Pattern) (*Symbol, error) {
	capacity, err := errlevel.L.CapacityFor(int(v))
	if err != nil {
		return nil, err
	}

	w := bitio.NewWriter()
	if err := segment.EncodeByte(text, w); err != nil {
		if errors.Is(err, segment.ErrDataTooLong) {
			return nil, ErrDataTooLong
		}
		return nil, err
	}
	if w.BitsWritten()/8 > capacity.DataWords {
		return nil, ErrDataTooLong
	}

	data := segment.PadToCapacity(w.Bytes(), capacity.DataWords)
	ecc := rsec.Compute(data, capacity.ECWordsPerBlock)
	words := append(append([]byte{}, data...), ecc...)

	sym := &Symbol{
		version: v,
		level:   errlevel.L,
		pattern: pattern,
		size:    v.Size(),
		words:   words,
	}
	sym.dark = make([][]bool, sym.size)
	sym.isData = make([][]bool, sym.size)
	for y := range sym.dark {
		sym.dark[y] = make([]bool, sym.size)
		sym.isData[y] = make([]bool, sym.size)
		for x := range sym.isData[y] {
			sym.isData[y][x] = !v.IsFunctionModule(x, y)
		}
	}

	sym.drawFunctionPatterns()
	if err := sym.drawCodewords(); err != nil {
		return nil, err
	}
	sym.applyMask(pattern)
	if err := sym.drawFormatBits(pattern); err != nil {
		return nil, err
	}
	return sym, nil
}

func (s *Symbol) drawFunctionPatterns() {
	for _, sq := range s.version.FinderSquares() {
		for _, cell := range sq.Cells() {
			s.dark[cell.Y][cell.X] = cell.Dark
		}
	}
	for _, sq := range s.version.AlignmentSquares() {
		for _, cell := range sq.Cells() {
			s.dark[cell.Y][cell.X] = cell.Dark
		}
	}
	for _, cell := range s.version.TimingCells() {
		s.dark[cell.Y][cell.X] = cell.Dark
	}
	dx, dy := s.version.DarkModulePosition()
	s.dark[dy][dx] = true
}

// drawCodewords threads the codeword bitstream through the data region in
// zig-zag order, matching original_source/src/qr.rs's set_code_words. Once
// the codeword stream is exhausted, the remaining data cells (the trailing
// "remainder bits" the symbology requires, always 7 for versions 1-5) are
// left clear. It panics (an internal invariant violation, not a reportable
// error) if the codeword stream still has unread bits once the data region
// runs out of cells.
func (s *Symbol) drawCodewords() error {
	reader := bitio.NewMsbReader(s.words)
	walker := version.NewZigzagWalker(s.size)
	for {
		x, y, ok := walker.Next()
		if !ok {
			break
		}
		if !s.isData[y][x] {
			continue
		}
		bit, ok := reader.Next()
		if !ok {
			continue
		}
		s.dark[y][x] = bit
	}
	if reader.Remaining() != 0 {
		panic("qrsymbol: codeword stream outlasted the data region")
	}
	return nil
}

func (s *Symbol) applyMask(pattern mask.Pattern) {
	predicate, _ := pattern.Predicate()
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			if s.isData[y][x] && predicate(x, y) {
				s.dark[y][x] = !s.dark[y][x]
			}
		}
	}
}

func (s *Symbol) drawFormatBits(pattern mask.Pattern) error {
	formatWord, err := s.level.FormatBits(int(pattern))
	if err != nil {
		return err
	}
	copy1, copy2 := s.version.FormatBitPositions()
	for i := 0; i < 15; i++ {
		bit := (formatWord>>uint(i))&1 != 0
		p1, p2 := copy1[i], copy2[i]
		s.dark[p1[1]][p1[0]] = bit
		s.dark[p2[1]][p2[0]] = bit
	}
	return nil
}
