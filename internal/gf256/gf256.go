// Package gf256 implements arithmetic over GF(256) with the QR Code
// primitive polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11D) and generator
// alpha = 2, plus a small sparse-capable polynomial type used by the
// Reed-Solomon engine in internal/rsec.
package gf256

// MaxDegree bounds the largest polynomial degree the encoder needs: the
// generator and message polynomials for version 5 never exceed this.
const MaxDegree = 256

// Add returns x + y in GF(256), which is XOR.
func Add(x, y uint8) uint8 {
	return x ^ y
}

// Mul returns x * y in GF(256) using Russian-peasant multiplication,
// reducing by the primitive polynomial 0x11D whenever the running product
// would exceed 8 bits.
func Mul(x, y uint8) uint8 {
	var a, result uint16
	a = uint16(y)
	for b := x; b != 0; b >>= 1 {
		if b&1 == 1 {
			result ^= a
		}
		a <<= 1
		if a&0x100 != 0 {
			a ^= 0x11d
		}
	}
	return uint8(result)
}

// inverse is a precomputed multiplicative-inverse table: inverse[x] * x == 1
// in GF(256) for every x in 1..255. inverse[0] is unused by this package
// (Term.Div never divides by a zero coefficient in a well-formed
// generator/message polynomial) and is defined as 0.
var inverse = computeInverseTable()

func computeInverseTable() [256]uint8 {
	var inv [256]uint8
	for x := 1; x < 256; x++ {
		for y := 1; y < 256; y++ {
			if Mul(uint8(x), uint8(y)) == 1 {
				inv[x] = uint8(y)
				break
			}
		}
	}
	return inv
}

// Inverse returns the multiplicative inverse of x. Inverse(0) is 0 and is
// never meaningful; callers must not rely on it.
func Inverse(x uint8) uint8 {
	return inverse[x]
}

// Term is a single polynomial term: coefficient * x^degree.
type Term struct {
	Degree uint8
	Coef   uint8
}

// ZeroTerm is the additive identity term.
var ZeroTerm = Term{}

// Div returns t / divisor. If divisor's degree exceeds t's, the quotient
// term is zero (division does not apply).
func (t Term) Div(divisor Term) Term {
	if divisor.Degree > t.Degree {
		return ZeroTerm
	}
	return Term{
		Degree: t.Degree - divisor.Degree,
		Coef:   Mul(t.Coef, Inverse(divisor.Coef)),
	}
}

// Poly is a polynomial over GF(256), stored as an indexable coefficient
// array with an explicit degree. Coefficients are indexed by degree: index 0
// is the constant term. For a non-zero polynomial the coefficient at Degree
// is non-zero; the zero polynomial has Degree 0 and an all-zero array.
type Poly struct {
	Degree uint8
	cof    [MaxDegree]uint8
}

// FromCoefficients builds a polynomial of the given degree from coefficients
// listed highest-degree first (coefficients[0] is the x^degree term).
func FromCoefficients(degree uint8, coefficients []uint8) Poly {
	if len(coefficients) != int(degree)+1 {
		panic("gf256: degree must match len(coefficients)-1")
	}
	var p Poly
	p.Degree = degree
	for i, c := range coefficients {
		p.cof[int(degree)-i] = c
	}
	return p
}

// LeadingTerm returns the term with the highest degree in p.
func (p Poly) LeadingTerm() Term {
	return Term{Degree: p.Degree, Coef: p.cof[p.Degree]}
}

// Coefficients writes p's coefficients into out, highest-degree first, and
// returns p.Degree. out must have capacity for at least Degree+1 entries.
func (p Poly) Coefficients(out []uint8) uint8 {
	for i := int(p.Degree); i >= 0; i-- {
		out[int(p.Degree)-i] = p.cof[i]
	}
	return p.Degree
}

func (p Poly) isZero() bool {
	for _, c := range p.cof[:p.Degree+1] {
		if c != 0 {
			return false
		}
	}
	return true
}

// MulByTerm returns p * t. A zero-coefficient term annihilates p.
func (p Poly) MulByTerm(t Term) Poly {
	if t.Coef == 0 {
		return Poly{}
	}
	result := p
	for i := 0; i <= int(p.Degree); i++ {
		result.cof[i] = Mul(p.cof[i], t.Coef)
	}
	newDegree := p.Degree + t.Degree
	if shift := newDegree - p.Degree; shift > 0 {
		for i := int(p.Degree); i >= 0; i-- {
			result.cof[i+int(shift)] = result.cof[i]
		}
		for i := 0; i < int(shift); i++ {
			result.cof[i] = 0
		}
	}
	result.Degree = newDegree
	return result
}

// MulByScalar returns p with every coefficient multiplied by s.
func (p Poly) MulByScalar(s uint8) Poly {
	result := p
	for i := 0; i <= int(p.Degree); i++ {
		result.cof[i] = Mul(p.cof[i], s)
	}
	return result
}

// AddTerm XORs t's coefficient into p at t's degree, growing or shrinking
// p.Degree as needed, and returns the result.
func (p Poly) AddTerm(t Term) Poly {
	result := p
	if t.Degree > result.Degree {
		result.cof[t.Degree] = t.Coef
		for i := result.Degree + 1; i < t.Degree; i++ {
			result.cof[i] = 0
		}
		result.Degree = t.Degree
	} else {
		result.cof[t.Degree] = Add(result.cof[t.Degree], t.Coef)
	}
	for result.Degree > 0 && result.cof[result.Degree] == 0 {
		result.Degree--
	}
	return result
}

// Add returns the term-wise XOR of p and other.
func (p Poly) Add(other Poly) Poly {
	result := p
	for d := 0; d <= int(other.Degree); d++ {
		result = result.AddTerm(Term{Degree: uint8(d), Coef: other.cof[d]})
	}
	return result
}

// DivRemainder returns p mod divisor via repeated subtract-multiples. It
// terminates because each iteration zeroes the current leading term: the
// quotient term chosen always cancels p's current leading coefficient.
func (p Poly) DivRemainder(divisor Poly) Poly {
	result := p
	divisorTerm := divisor.LeadingTerm()
	for !result.isZero() && result.Degree >= divisor.Degree {
		q := result.LeadingTerm().Div(divisorTerm)
		result = result.Add(divisor.MulByTerm(q))
	}
	return result
}

// GeneratorPoly returns G_n = product_{i=0..n-1} (x + alpha^i), the
// Reed-Solomon generator polynomial of degree n, built iteratively:
// starting from p = x + 1, each step folds in the next root alpha^i.
func GeneratorPoly(n uint8) Poly {
	p := FromCoefficients(1, []uint8{1, 1})
	x := Term{Degree: 1, Coef: 1}
	alphaI := uint8(1)
	for i := uint8(1); i < n; i++ {
		shifted := p.MulByTerm(x)
		alphaI = Mul(alphaI, 2)
		p = p.MulByScalar(alphaI).Add(shifted)
	}
	return p
}
