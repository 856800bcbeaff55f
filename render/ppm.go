// Package render writes a Symbol out as a PPM (P6) image: a minimal,
// header-plus-raw-triplets format that needs nothing beyond the standard
// library, following the same approach every QR renderer in the retrieval
// pack uses (a hand-rolled writer rather than a third-party canvas
// library).
package render

import (
	"fmt"
	"io"

	"github.com/kodeshop/qrsymbol"
)

const (
	lightValue byte = 255
	darkValue  byte = 0
)

// WritePPM writes sym to w as a binary PPM image. Each module becomes a
// moduleSize x moduleSize block of pixels, surrounded by a quietZone-module
// border of light pixels. Matches original_source/src/lib.rs's
// Canvas/init_ppm: a "P6 <w> <h> 255 " header followed by raw RGB triplets,
// row-major, top to bottom.
func WritePPM(w io.Writer, sym *qrsymbol.Symbol, moduleSize, quietZone int) error {
	if moduleSize < 1 {
		panic("render: moduleSize must be positive")
	}
	if quietZone < 0 {
		panic("render: quietZone must not be negative")
	}

	modules := sym.Size() + 2*quietZone
	side := modules * moduleSize
	if _, err := fmt.Fprintf(w, "P6 %d %d 255 ", side, side); err != nil {
		return err
	}

	dark := make([][]bool, sym.Size())
	for i := range dark {
		dark[i] = make([]bool, sym.Size())
	}
	for it := sym.IterModules(); ; {
		m, ok := it.Next()
		if !ok {
			break
		}
		dark[m.Y][m.X] = m.Dark
	}

	row := make([]byte, side*3)
	for my := 0; my < modules; my++ {
		for mx := 0; mx < modules; mx++ {
			value := lightValue
			inSymbol := mx >= quietZone && mx < quietZone+sym.Size() &&
				my >= quietZone && my < quietZone+sym.Size()
			if inSymbol && dark[my-quietZone][mx-quietZone] {
				value = darkValue
			}
			for px := 0; px < moduleSize; px++ {
				base := (mx*moduleSize + px) * 3
				row[base] = value
				row[base+1] = value
				row[base+2] = value
			}
		}
		for line := 0; line < moduleSize; line++ {
			if _, err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}
