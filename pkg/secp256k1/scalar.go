package secp256k1

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// Scalars are 32-byte big-endian unsigned integers. Whether a scalar lives
// modulo the group order N (secret keys, nonces, tweaks) or modulo the field
// prime P (coordinates) is determined by the operation applied to it; the
// two universes must not be mixed and each parameter below documents which
// modulus it belongs to.

// pad32 returns v as a 32-byte big-endian value, left-padded with zeros.
// v must be non-negative and fit in 256 bits.
func pad32(v *big.Int) [32]byte {
	var out [32]byte
	v.FillBytes(out[:])
	return out
}

// AddModN returns (a + b) mod N.
func AddModN(a, b *[32]byte) [32]byte {
	x := new(big.Int).SetBytes(a[:])
	y := new(big.Int).SetBytes(b[:])
	x.Add(x, y).Mod(x, nInt)
	return pad32(x)
}

// MulModN returns (a * b) mod N. Typically used to normalize a nonce or
// secret key scalar.
func MulModN(a, b *[32]byte) [32]byte {
	x := new(big.Int).SetBytes(a[:])
	y := new(big.Int).SetBytes(b[:])
	x.Mul(x, y).Mod(x, nInt)
	return pad32(x)
}

// AddModP returns (a + b) mod P.
func AddModP(a, b *[32]byte) [32]byte {
	x := new(big.Int).SetBytes(a[:])
	y := new(big.Int).SetBytes(b[:])
	x.Add(x, y).Mod(x, pInt)
	return pad32(x)
}

// MulModP returns (a * b) mod P.
func MulModP(a, b *[32]byte) [32]byte {
	x := new(big.Int).SetBytes(a[:])
	y := new(big.Int).SetBytes(b[:])
	x.Mul(x, y).Mod(x, pInt)
	return pad32(x)
}

// NegateN returns (2N - k) mod N, the additive inverse of k modulo the
// group order. k may be any 256-bit value; 2N exceeds 2^256 so the
// subtraction never goes negative.
func NegateN(k *[32]byte) [32]byte {
	x := new(big.Int).SetBytes(k[:])
	x.Sub(twoNInt, x).Mod(x, nInt)
	return pad32(x)
}

// NegateNAssign replaces k with its additive inverse modulo N in place.
func NegateNAssign(k *[32]byte) {
	*k = NegateN(k)
}

// NegateP returns (2P - k) mod P, the additive inverse of k modulo the
// field prime.
func NegateP(k *[32]byte) [32]byte {
	x := new(big.Int).SetBytes(k[:])
	x.Sub(twoPInt, x).Mod(x, pInt)
	return pad32(x)
}

// NegatePAssign replaces k with its additive inverse modulo P in place.
func NegatePAssign(k *[32]byte) {
	*k = NegateP(k)
}

// ModInvN returns the multiplicative inverse of k modulo the group order,
// computed as k^(N-2) mod N per Fermat's little theorem. It returns
// ErrArithmeticOverflow when k is congruent to zero and has no inverse.
func ModInvN(k []byte) ([32]byte, error) {
	x := new(big.Int).SetBytes(k)
	x.Mod(x, nInt)
	if x.Sign() == 0 {
		return [32]byte{}, makeError(ErrArithmeticOverflow,
			"no modular inverse exists for 0 mod N")
	}
	x.Exp(x, nSub2Int, nInt)
	return pad32(x), nil
}

// ModInvP returns the multiplicative inverse of k modulo the field prime,
// computed as k^(P-2) mod P per Fermat's little theorem. It returns
// ErrArithmeticOverflow when k is congruent to zero and has no inverse.
func ModInvP(k []byte) ([32]byte, error) {
	x := new(big.Int).SetBytes(k)
	x.Mod(x, pInt)
	if x.Sign() == 0 {
		return [32]byte{}, makeError(ErrArithmeticOverflow,
			"no modular inverse exists for 0 mod P")
	}
	x.Exp(x, pSub2Int, pInt)
	return pad32(x), nil
}

// Modulus limbs for the fast reduction paths, most significant first.
const (
	pLimb3 = 0xfffffffefffffc2f

	nLimb1 = 0xfffffffffffffffe
	nLimb2 = 0xbaaedce6af48a03b
	nLimb3 = 0xbfd25e8cd0364141
)

// FastModP reduces a modulo P in place. P is so close to 2^256 that a
// uniformly random 256-bit value almost never needs reduction, so the value
// is vetoed limb by limb and only the saturated branch pays for a
// subtraction. A single subtraction is always sufficient because 2P > 2^256.
// The result is bit-identical to a general modular reduction for every
// input, including values equal to or exceeding P.
func FastModP(a *[32]byte) {
	a0 := binary.BigEndian.Uint64(a[0:8])
	a1 := binary.BigEndian.Uint64(a[8:16])
	a2 := binary.BigEndian.Uint64(a[16:24])
	a3 := binary.BigEndian.Uint64(a[24:32])

	// a >= P requires the three high limbs saturated and the low limb at
	// or above P's low limb.
	if a0 != ^uint64(0) || a1 != ^uint64(0) || a2 != ^uint64(0) || a3 < pLimb3 {
		return
	}

	r3, borrow := bits.Sub64(a3, pLimb3, 0)
	r2, borrow := bits.Sub64(a2, ^uint64(0), borrow)
	r1, borrow := bits.Sub64(a1, ^uint64(0), borrow)
	r0, _ := bits.Sub64(a0, ^uint64(0), borrow)

	binary.BigEndian.PutUint64(a[0:8], r0)
	binary.BigEndian.PutUint64(a[8:16], r1)
	binary.BigEndian.PutUint64(a[16:24], r2)
	binary.BigEndian.PutUint64(a[24:32], r3)
}

// FastModN reduces a modulo N in place. As with FastModP, the common case
// is vetoed by the first limb alone and a single subtraction handles the
// rest because 2N > 2^256. The result is bit-identical to a general modular
// reduction for every input, including values equal to or exceeding N.
func FastModN(a *[32]byte) {
	a0 := binary.BigEndian.Uint64(a[0:8])

	// N's top limb is all ones, so any value below that is already reduced.
	if a0 != ^uint64(0) {
		return
	}

	a1 := binary.BigEndian.Uint64(a[8:16])
	a2 := binary.BigEndian.Uint64(a[16:24])
	a3 := binary.BigEndian.Uint64(a[24:32])

	// Lexicographic compare of the remaining limbs against N's.
	switch {
	case a1 != nLimb1:
		if a1 < nLimb1 {
			return
		}
	case a2 != nLimb2:
		if a2 < nLimb2 {
			return
		}
	case a3 < nLimb3:
		return
	}

	r3, borrow := bits.Sub64(a3, nLimb3, 0)
	r2, borrow := bits.Sub64(a2, nLimb2, borrow)
	r1, borrow := bits.Sub64(a1, nLimb1, borrow)
	r0, _ := bits.Sub64(a0, ^uint64(0), borrow)

	binary.BigEndian.PutUint64(a[0:8], r0)
	binary.BigEndian.PutUint64(a[8:16], r1)
	binary.BigEndian.PutUint64(a[16:24], r2)
	binary.BigEndian.PutUint64(a[24:32], r3)
}
