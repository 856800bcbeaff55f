package rsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeVersion1Codeword(t *testing.T) {
	data := []byte{0x40, 0xD4, 0xA4, 0x55, 0x35, 0x55, 0x32, 0x06, 0x96, 0xE2, 0x04, 0xB4, 0x94, 0xE4, 0x70, 0xEC, 0x11, 0xEC, 0x11}
	ecc := Compute(data, 7)
	expected := []byte{0x31, 0xCA, 0xA6, 0x14, 0x0E, 0x5E, 0xEC}
	assert.Equal(t, expected, ecc)
}

func TestComputeShortMessage(t *testing.T) {
	data := []byte{0x40, 0x86, 0x97, 0x36, 0x16, 0x96, 0x16, 0x82, 0xD7, 0x00, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC}
	ecc := Compute(data, 7)
	expected := []byte{0x5C, 0x5A, 0x9A, 0x55, 0xCB, 0x35, 0x7F}
	assert.Equal(t, expected, ecc)
}

func TestComputeLengthMatchesRequest(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	ecc := Compute(data, 10)
	assert.Len(t, ecc, 10)
}
