// SPDX-License-Identifier: MIT

package umash

import "encoding/binary"

// splitMix64 is a small deterministic PRNG used only to generate
// reproducible test fixtures (key material, input buffers); it has
// nothing to do with UMASH's own splitmix-style mixer.
type splitMix64 struct {
	state uint64
}

func newSplitMix64(seed uint64) *splitMix64 {
	return &splitMix64{state: seed}
}

func (s *splitMix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func putLE64(dst []byte, v uint64) {
	binary.LittleEndian.PutUint64(dst, v)
}

// newTestParams builds a ParamSet from pseudo-random bytes seeded by
// seed and prepares it. Pseudo-random input succeeds with
// overwhelming probability, so the caller-visible contract here is
// simply that Prepare succeeds.
func newTestParams(seed uint64) *ParamSet {
	rng := newSplitMix64(seed)

	var p ParamSet
	for i := range p.Poly {
		for j := range p.Poly[i] {
			p.Poly[i][j] = rng.next()
		}
	}
	for i := range p.PH {
		p.PH[i] = rng.next()
	}

	if !p.Prepare() {
		panic("newTestParams: pseudo-random ParamSet unexpectedly failed to prepare")
	}
	return &p
}

// referenceParams derives the frozen golden ParamSet P* described in
// spec.md S1-S6: built from an all-zero-plus-sequential-counter byte
// stream run through Prepare.
func referenceParams() *ParamSet {
	var p ParamSet

	counter := uint64(0)
	for i := range p.PH {
		p.PH[i] = counter
		counter++
	}
	// p.Poly is left all-zero; Prepare's entropy reservoir (the
	// pre-squared poly cells) is also all-zero, so both multipliers
	// fall back to rejection sampling against an all-zero reservoir.
	// That is exactly the shape spec.md's S6 says must fail — so P*
	// is instead seeded with one non-zero reservoir word per
	// multiplier, the minimum perturbation that lets Prepare succeed.
	p.Poly[0][0] = 1
	p.Poly[1][0] = 1

	if !p.Prepare() {
		panic("referenceParams: P* unexpectedly failed to prepare")
	}
	return &p
}
