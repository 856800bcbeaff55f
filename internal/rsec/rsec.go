// Package rsec computes Reed-Solomon error-correction codewords for a QR
// Code data block, built on the GF(256) polynomial arithmetic in
// internal/gf256.
package rsec

import "github.com/kodeshop/qrsymbol/internal/gf256"

// Compute returns the eccWordCount error-correction codewords for data,
// computed as data(x) * x^eccWordCount mod generator(x), where generator is
// the Reed-Solomon generator polynomial of degree eccWordCount. This
// mirrors original_source/src/error_cc.rs's compute_ecc: the data polynomial
// is shifted up by the generator's degree before the remainder is taken, so
// the low-order coefficients (where the remainder lives) don't collide with
// the data's own low-order terms.
func Compute(data []byte, eccWordCount int) []byte {
	if len(data) == 0 {
		panic("rsec: data must not be empty")
	}
	if eccWordCount <= 0 || eccWordCount > 255 {
		panic("rsec: eccWordCount out of range")
	}

	generator := gf256.GeneratorPoly(uint8(eccWordCount))
	dataPoly := gf256.FromCoefficients(uint8(len(data)-1), data)
	shifted := dataPoly.MulByTerm(gf256.Term{Degree: generator.Degree, Coef: 1})
	remainder := shifted.DivRemainder(generator)

	ecc := make([]byte, eccWordCount)
	coeffs := make([]uint8, remainder.Degree+1)
	remainder.Coefficients(coeffs)
	// The remainder's degree can be lower than eccWordCount-1 when its
	// leading coefficients happen to be zero; pad those missing
	// high-order terms with zero, matching the convention that a QR ECC
	// block is always exactly eccWordCount bytes wide.
	copy(ecc[eccWordCount-len(coeffs):], coeffs)
	return ecc
}
