// SPDX-License-Identifier: MIT

package umash

// Fp is a UMASH fingerprint: two 64-bit digests computed from the
// same input under the same seed, using the two Toeplitz-shifted key
// streams of a ParamSet. Fp.Hash[0] is the digest Hash(params, seed,
// 0, data) would return; Fp.Hash[1] is Hash(params, seed, 1, data).
type Fp struct {
	Hash [2]uint64
}

// Hash returns the 64-bit UMASH digest of data under params and
// seed. which selects one of the two independent key streams a
// ParamSet carries: 0 selects the unshifted stream, any other value
// selects the Toeplitz-shifted stream (normalised to 1).
//
// Hash allocates nothing and runs in time linear in len(data). data
// may be empty; it does not need to be aligned in any way.
func Hash(params *ParamSet, seed uint64, which int, data []byte) uint64 {
	shift, idx := 0, 0
	if which != 0 {
		shift, idx = ToeplitzShift, 1
	}
	return hashDispatch(params.PH[shift:], params.Poly[idx], seed, data)
}

// Fingerprint returns both of UMASH's independent digests for data
// under params and seed, at the cost of roughly double the work of a
// single Hash call. Fingerprint(params, seed, data).Hash[i] always
// equals Hash(params, seed, i, data).
func Fingerprint(params *ParamSet, seed uint64, data []byte) Fp {
	var fp Fp
	shift := 0
	for i := range fp.Hash {
		fp.Hash[i] = hashDispatch(params.PH[shift:], params.Poly[i], seed, data)
		shift = ToeplitzShift
	}
	return fp
}

// hashDispatch chooses the length-class routine for data and runs
// it against the given (already shifted/selected) key material.
func hashDispatch(ph []uint64, poly [2]uint64, seed uint64, data []byte) uint64 {
	switch n := len(data); {
	case n <= 8:
		return umashShort(ph, seed, data)
	case n <= 16:
		return umashMedium(poly, ph, seed, data)
	default:
		return umashLong(poly, ph, seed, data)
	}
}
