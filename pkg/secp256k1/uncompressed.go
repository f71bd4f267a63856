package secp256k1

import (
	"encoding/hex"
	"math/big"
)

// UncompressedPointSize is the size of the raw uncompressed representation:
// the 32-byte X coordinate followed by the 32-byte Y coordinate. The SEC1
// wire form adds a leading TagUncompressed byte on top of this.
const UncompressedPointSize = 64

// UncompressedPoint is a point in raw 64-byte affine form, X followed by Y,
// both big-endian. It is a plain value type; copying it copies the point.
type UncompressedPoint [UncompressedPointSize]byte

// IsOdd reports whether the Y coordinate of the point is odd.
func (p UncompressedPoint) IsOdd() bool {
	return p[63]&1 == 1
}

// IsEven reports whether the Y coordinate of the point is even.
func (p UncompressedPoint) IsEven() bool {
	return p[63]&1 == 0
}

// X returns the 32-byte big-endian X coordinate of the point.
func (p UncompressedPoint) X() [32]byte {
	var x [32]byte
	copy(x[:], p[:32])
	return x
}

// Y returns the 32-byte big-endian Y coordinate of the point.
func (p UncompressedPoint) Y() [32]byte {
	var y [32]byte
	copy(y[:], p[32:])
	return y
}

// Invert reflects the point across the X axis in place by replacing Y with
// P - Y via a byte-wise subtract with borrow.
func (p *UncompressedPoint) Invert() {
	borrow := 0
	for i := 31; i >= 0; i-- {
		v := int(P[i]) - int(p[32+i]) - borrow
		if v < 0 {
			v += 256
			borrow = 1
		} else {
			borrow = 0
		}
		p[32+i] = byte(v)
	}
}

// Compress returns the point in 33-byte SEC1 compressed form.
func (p UncompressedPoint) Compress() CompressedPoint {
	var c CompressedPoint
	if p.IsOdd() {
		c[0] = TagCompressedOdd
	} else {
		c[0] = TagCompressedEven
	}
	copy(c[1:], p[:32])
	return c
}

// OnCurve reports whether the point satisfies the curve equation
// Y² ≡ X³ + 7 (mod P).
func (p UncompressedPoint) OnCurve() bool {
	x := new(big.Int).SetBytes(p[:32])
	y := new(big.Int).SetBytes(p[32:])
	if x.Cmp(pInt) >= 0 || y.Cmp(pInt) >= 0 {
		return false
	}
	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, pInt)
	rhs := rhsCurveEquation(x)
	return lhs.Cmp(rhs) == 0
}

// SEC1Bytes returns the 65-byte tagged SEC1 wire encoding of the point.
func (p UncompressedPoint) SEC1Bytes() [65]byte {
	var b [65]byte
	b[0] = TagUncompressed
	copy(b[1:], p[:])
	return b
}

// Bytes returns the raw 64-byte encoding of the point.
func (p UncompressedPoint) Bytes() []byte {
	b := make([]byte, UncompressedPointSize)
	copy(b, p[:])
	return b
}

// String returns the point as a hex string.
func (p UncompressedPoint) String() string {
	var buf [2 * UncompressedPointSize]byte
	hex.Encode(buf[:], p[:])
	return string(buf[:])
}

// rhsCurveEquation returns (x³ + 7) mod P.
func rhsCurveEquation(x *big.Int) *big.Int {
	rhs := new(big.Int).Mul(x, x)
	rhs.Mod(rhs, pInt)
	rhs.Mul(rhs, x)
	rhs.Add(rhs, sevenInt)
	rhs.Mod(rhs, pInt)
	return rhs
}

// LiftXUnchecked finds a candidate point for the given X coordinate by
// computing Y = (X³+7)^((P+1)/4) mod P, a valid square-root exponent since
// P ≡ 3 (mod 4). The parity of the resulting Y is not specified; callers
// that need a particular parity invert as needed. It does not verify
// that the result is on the curve; when no point with this X exists the
// returned bytes are undefined. Use LiftX when the X coordinate comes from
// an external source.
func LiftXUnchecked(x *[32]byte) UncompressedPoint {
	xi := new(big.Int).SetBytes(x[:])
	y := new(big.Int).Exp(rhsCurveEquation(xi), p14Int, pInt)

	var p UncompressedPoint
	copy(p[:32], x[:])
	y.FillBytes(p[32:])
	return p
}

// LiftX works like LiftXUnchecked but additionally verifies that the
// candidate Y satisfies the curve equation, returning ErrInvalidYCoordinate
// when it does not. Use this when decoding an externally supplied X that
// must be proven on-curve.
func LiftX(x *[32]byte) (UncompressedPoint, error) {
	xi := new(big.Int).SetBytes(x[:])
	rhs := rhsCurveEquation(xi)
	y := new(big.Int).Exp(rhs, p14Int, pInt)

	chk := new(big.Int).Mul(y, y)
	chk.Mod(chk, pInt)
	if chk.Cmp(rhs) != 0 {
		return UncompressedPoint{}, makeError(ErrInvalidYCoordinate,
			"no curve point exists for the given x coordinate")
	}

	var p UncompressedPoint
	copy(p[:32], x[:])
	y.FillBytes(p[32:])
	return p, nil
}
