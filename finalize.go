// SPDX-License-Identifier: MIT

package umash

// Fixed splitmix-style mixing constants shared by the short-input
// mixer and the finalizer.
const (
	mixC1 uint64 = 0xbf58476d1ce4e5b9
	mixC2 uint64 = 0x94d049bb133111eb
)

// finalize mixes the medium/long-path accumulator before emission.
// It is simpler than the short-input mixer because the accumulator
// already has well-distributed high and low bits.
func finalize(x uint64) uint64 {
	x ^= x >> 27
	x *= mixC2
	return x
}
