// SPDX-License-Identifier: MIT

// Package umash implements UMASH, a keyed, almost-universal string
// hash with a 64-bit digest and an optional 128-bit fingerprint.
//
// UMASH maps a key schedule (a ParamSet) and a caller-supplied seed
// to a digest of an arbitrary byte string. For any two distinct
// inputs of length at most L bytes, the collision probability is
// bounded by roughly ceil(L/4096) * 2**-55; the fingerprint squares
// that bound by evaluating two nearly-independent hashes from one
// Toeplitz-shifted key schedule.
//
// Every function in this package is a pure function of its
// arguments and a read-only ParamSet: there is no hidden state, no
// I/O, and no heap allocation on the hash path. A ParamSet must be
// built once with Prepare and is then safe to share across any
// number of concurrent callers.
package umash
