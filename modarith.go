// SPDX-License-Identifier: MIT

package umash

import "math/bits"

// The working ring is R = Z/(2**64 - 8); fieldP = 2**61 - 1 is the
// Mersenne prime that R's final reduction lands on. 8*fieldP == 2**64-8
// exactly, which is what lets intermediate arithmetic stay in R and
// only reduce mod fieldP once, at key-preparation time.
const (
	modulusM uint64 = 0xfffffffffffffff8 // 2**64 - 8
	// fieldP is both the Mersenne prime 2**61-1 that ParamSchedule's
	// final reduction lands on, and (since its bit pattern is exactly
	// 61 set bits) the mask used to clear a candidate multiplier down
	// to 61 bits before rejection sampling.
	fieldP uint64 = 0x1fffffffffffffff
)

// addModFast returns (x+y) mod modulusM under the loose
// post-condition result < 2**64. Overflow of the 64-bit add is
// subtraction of 2**64, and 2**64 == 8 (mod modulusM), so the carry
// is repaired by adding 8 back in.
func addModFast(x, y uint64) uint64 {
	sum, carry := bits.Add64(x, y, 0)
	if carry != 0 {
		// sum+8 only wraps again when both operands are >= modulusM;
		// that second carry is repaired the same way.
		sum, carry = bits.Add64(sum, 8, 0)
		return sum + 8*carry
	}
	return sum
}

// addModSlow returns (x+y) mod modulusM under the strict
// post-condition result < modulusM. The fast path below succeeds on
// pseudo-random inputs with probability close to 1, leaving one
// well-predicted branch.
func addModSlow(x, y uint64) uint64 {
	sum, carry := bits.Add64(x, y, 0)
	var fixup uint64
	if carry != 0 {
		fixup = 8
	}
	if sum < modulusM-8 {
		return sum + fixup
	}
	return addModSlowPath(sum, fixup)
}

func addModSlowPath(sum, fixup uint64) uint64 {
	if sum >= modulusM {
		sum += 8
	}
	sum += fixup
	if sum >= modulusM {
		sum += 8
	}
	return sum
}

// mulModFast returns (m*x) mod modulusM under the loose
// post-condition result < 2**64.
func mulModFast(m, x uint64) uint64 {
	hi, lo := bits.Mul64(m, x)
	// hi*2**64 == 8*hi (mod modulusM). 8*hi only overflows 64 bits
	// when hi >= 2**61 (m >= 2**61); its top 3 bits are folded back in
	// as another multiple of 2**64.
	return addModFast(addModFast(lo, hi<<3), 8*(hi>>61))
}

// hornerDoubleUpdate performs one Horner step of a degree-1
// polynomial extension, absorbing two compressed block words (x, y)
// per multiplication chain. The result is in the strict range
// < modulusM, suitable to feed back in as acc.
func hornerDoubleUpdate(acc, m0, m1, x, y uint64) uint64 {
	acc = addModFast(acc, x)
	return addModSlow(mulModFast(m0, acc), mulModFast(m1, y))
}
