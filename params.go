// SPDX-License-Identifier: MIT

package umash

// ToeplitzShift is the offset, in PH key words, between the key
// stream used for Hash/Fingerprint slot 0 and slot 1. Reusing a
// single key stream shifted by ToeplitzShift words realises a second,
// nearly independent hash at the cost of ToeplitzShift extra key
// words rather than a whole second key. This value must match across
// any two implementations that share a persisted ParamSet.
const ToeplitzShift = 4

// ParamSet is a UMASH key schedule: two polynomial multiplier pairs
// and the PH key words, covering both the unshifted and
// Toeplitz-shifted key streams. Its layout is part of UMASH's wire
// contract — Poly and PH are little-endian, row-major, and must be
// laid out exactly this way by anything that persists or transmits a
// ParamSet.
//
// A ParamSet is built once by Prepare, then immutable and safe to
// share across any number of goroutines: every exported function in
// this package only ever reads it.
type ParamSet struct {
	// Poly holds two (f^2, f) pairs. Poly[i][0] is f^2 mod fieldP,
	// held in the ring R; Poly[i][1] is f itself.
	Poly [2][2]uint64

	// PH holds the PH key words for both key streams: PH[0:PHParamCount]
	// is the unshifted stream, PH[ToeplitzShift:ToeplitzShift+PHParamCount]
	// is the Toeplitz-shifted one.
	PH [PHParamCount + ToeplitzShift]uint64
}

// Prepare repairs a ParamSet filled with arbitrary (e.g. random)
// bytes in place, so that it satisfies UMASH's validity invariants:
// each polynomial multiplier lies in (0, 2**61-1), and the PH key
// words are pairwise distinct. Pairwise distinctness is a structural
// requirement, not a statistical nicety — two identical key words
// within a PH pair would cancel under XOR and destroy the avalanche
// property.
//
// Prepare treats the two pre-squared poly cells (Poly[0][0] and
// Poly[1][0]) as a small entropy reservoir: they are consumed, in
// order, whenever a multiplier or PH word needs replacing, and are
// overwritten with derived values (f^2 mod fieldP) once each
// multiplier is accepted, so a successful Prepare always replaces
// them.
// If repair demands more entropy than those two words provide,
// Prepare returns false and p must be treated as unusable.
//
// Calling Prepare again on an already-prepared ParamSet is a no-op:
// every field it would touch is already valid.
func (p *ParamSet) Prepare() bool {
	reservoir := [2]uint64{p.Poly[0][0], p.Poly[1][0]}
	next := 0

	getRandom := func() (uint64, bool) {
		if next >= len(reservoir) {
			return 0, false
		}
		v := reservoir[next]
		next++
		return v, true
	}

	for i := range p.Poly {
		f := p.Poly[i][1]
		for {
			f &= fieldP
			if f != 0 && f < fieldP {
				break
			}
			v, ok := getRandom()
			if !ok {
				return false
			}
			f = v
		}

		p.Poly[i][0] = mulModFast(f, f) % fieldP
		p.Poly[i][1] = f
	}

	for i := range p.PH {
		for isRepeatedAmong(p.PH[:i], p.PH[i]) {
			v, ok := getRandom()
			if !ok {
				return false
			}
			p.PH[i] = v
		}
	}

	return true
}

func isRepeatedAmong(values []uint64, needle uint64) bool {
	for _, v := range values {
		if v == needle {
			return true
		}
	}
	return false
}
