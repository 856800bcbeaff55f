// Package segment implements the byte-mode data segment: the mode
// indicator, character count, payload, and terminator that make up a QR
// Code's encoded data before error correction is applied. Numeric,
// alphanumeric, and kanji modes are out of scope (spec.md's Non-goals).
package segment

import (
	"errors"

	"github.com/kodeshop/qrsymbol/internal/bitio"
)

// ErrNotAscii is returned when the input text contains a byte above 0x7F.
// Byte mode in this implementation only accepts ASCII payloads, matching
// spec.md §7's error taxonomy.
var ErrNotAscii = errors.New("segment: text is not ASCII")

// ErrDataTooLong is returned when the payload's character count would not
// fit in the 8-bit character-count field byte mode uses at versions 1-5.
var ErrDataTooLong = errors.New("segment: data too long for an 8-bit character count field")

const (
	byteModeIndicator = 0b0100
	modeIndicatorBits = 4
	charCountBits     = 8
	terminatorBits    = 4
)

// EncodeByte writes the byte-mode segment for text into w: a 4-bit mode
// indicator, an 8-bit character count, the payload one byte per character,
// and a 4-bit terminator, then pads to a byte boundary. Matches
// original_source/src/qr.rs's encode::encode_byte_segment.
func EncodeByte(text string, w *bitio.Writer) error {
	for i := 0; i < len(text); i++ {
		if text[i] > 0x7F {
			return ErrNotAscii
		}
	}
	if len(text) > 0xFF {
		return ErrDataTooLong
	}

	w.AppendBits(byteModeIndicator, modeIndicatorBits)
	w.AppendBits(uint32(len(text)), charCountBits)
	for i := 0; i < len(text); i++ {
		w.AppendBits(uint32(text[i]), 8)
	}
	w.AppendBits(0, terminatorBits)
	w.PadToByteBoundary()
	return nil
}

// padBytes is the cyclic pad codeword pair QR Code uses to fill a data
// block out to its capacity once the terminator and byte-alignment padding
// are in place. Matches original_source/src/qr.rs's add_padding.
var padBytes = [2]byte{0xEC, 0x11}

// PadToCapacity appends the cyclic 0xEC/0x11 pad pattern to data until it
// reaches capacity bytes. data must already be at most capacity bytes long.
func PadToCapacity(data []byte, capacity int) []byte {
	if len(data) > capacity {
		panic("segment: data already exceeds capacity")
	}
	out := make([]byte, capacity)
	copy(out, data)
	for i := len(data); i < capacity; i++ {
		out[i] = padBytes[(i-len(data))%2]
	}
	return out
}
