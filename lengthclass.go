// SPDX-License-Identifier: MIT

package umash

import "encoding/binary"

// vecToU64 packs the n (<= 8) bytes of data into a single 64-bit
// value, reading each input byte at least once and no byte outside
// the input. For 4 <= n <= 8 the first and last 4 bytes are read, and
// overlap when n < 8. For n < 4 the length is decoded bit by bit, and
// each byte is read exactly once.
func vecToU64(data []byte, n int) uint64 {
	var lo, hi uint32

	if n >= 4 {
		lo = binary.LittleEndian.Uint32(data[0:4])
		hi = binary.LittleEndian.Uint32(data[n-4 : n])
	} else {
		var b byte
		if n&1 != 0 {
			b = data[0]
		}
		lo = uint32(b)

		var w uint16
		if n&2 != 0 {
			w = binary.LittleEndian.Uint16(data[n-2 : n])
		}
		hi = uint32(w)
	}

	return (uint64(hi) << 32) | uint64(lo+hi)
}

// umashShort hashes data of at most 8 bytes. ph must have at least
// n+1 entries (ph[n] bumps the seed by a length-indexed key word).
func umashShort(ph []uint64, seed uint64, data []byte) uint64 {
	n := len(data)
	seed += ph[n]

	v := vecToU64(data, n)
	v ^= v >> 30
	v *= mixC1
	v = (v ^ seed) ^ (v >> 27)
	v *= mixC2
	v ^= v >> 31
	return v
}

// umashMedium hashes data of 9 to 16 bytes. ph must have at least 2
// entries.
func umashMedium(poly [2]uint64, ph []uint64, seed uint64, data []byte) uint64 {
	n := len(data)

	accLo := seed ^ uint64(n)

	x := binary.LittleEndian.Uint64(data[0:8]) ^ ph[0]
	y := binary.LittleEndian.Uint64(data[n-8:n]) ^ ph[1]
	lo, hi := clmul64(x, y)
	accLo ^= lo
	accHi := hi

	return finalize(hornerDoubleUpdate(0, poly[0], poly[1], accLo, accHi))
}

// umashLong hashes data of more than 16 bytes. ph must have at
// least PHParamCount entries.
func umashLong(poly [2]uint64, ph []uint64, seed uint64, data []byte) uint64 {
	var acc uint64

	n := len(data)
	off := 0
	for n > BlockSize {
		c := phOneBlock(ph, seed, data[off:off+BlockSize])
		acc = hornerDoubleUpdate(acc, poly[0], poly[1], c.bits[0], c.bits[1])

		off += BlockSize
		n -= BlockSize
	}

	// 1 <= n <= BlockSize remains; mix the tail length into the seed.
	// The tail is read from the original, un-advanced buffer (data[:off+n])
	// rather than a re-sliced one, since phLastBlock may need to read
	// backward into the previously-processed block when n < 16.
	seed ^= uint64(byte(n))
	c := phLastBlock(ph, seed, data[:off+n], off, n)
	acc = hornerDoubleUpdate(acc, poly[0], poly[1], c.bits[0], c.bits[1])

	return finalize(acc)
}
