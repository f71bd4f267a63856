package secp256k1

import "encoding/hex"

// CompressedPointSize is the serialized size of a compressed point: one
// parity tag byte followed by the 32-byte X coordinate.
const CompressedPointSize = 33

// CompressedPoint is a point in 33-byte SEC1 compressed form. The first
// byte holds the parity tag and the remainder holds the big-endian X
// coordinate. It is a plain value type; copying it copies the point.
type CompressedPoint [CompressedPointSize]byte

// IsOdd reports whether the Y coordinate of the point is odd.
func (p CompressedPoint) IsOdd() bool {
	return p[0] == TagCompressedOdd
}

// IsEven reports whether the Y coordinate of the point is even.
func (p CompressedPoint) IsEven() bool {
	return p[0] == TagCompressedEven
}

// X returns the 32-byte big-endian X coordinate of the point.
func (p CompressedPoint) X() [32]byte {
	var x [32]byte
	copy(x[:], p[1:])
	return x
}

// Y recovers the 32-byte Y coordinate by lifting X and flipping the result
// to match the stored parity. The lift is unchecked; for a compressed point
// whose X is not on the curve the result is undefined.
func (p CompressedPoint) Y() [32]byte {
	x := p.X()
	u := LiftXUnchecked(&x)
	if u.IsEven() != p.IsEven() {
		u.Invert()
	}
	return u.Y()
}

// Invert reflects the point across the X axis in place by rewriting the
// parity tag.
func (p *CompressedPoint) Invert() {
	if p.IsEven() {
		p[0] = TagCompressedOdd
	} else {
		p[0] = TagCompressedEven
	}
}

// Decompress converts the point to uncompressed form, proving in the
// process that its X coordinate is on the curve. It returns
// ErrInvalidYCoordinate when no curve point with this X exists.
func (p CompressedPoint) Decompress() (UncompressedPoint, error) {
	x := p.X()
	u, err := LiftX(&x)
	if err != nil {
		return UncompressedPoint{}, err
	}
	if u.IsOdd() != p.IsOdd() {
		u.Invert()
	}
	return u, nil
}

// DecompressUnchecked converts the point to uncompressed form without
// verifying the curve equation. Only use this with a point already known to
// be valid; for an off-curve X the result is undefined.
func (p CompressedPoint) DecompressUnchecked() UncompressedPoint {
	x := p.X()
	u := LiftXUnchecked(&x)
	if u.IsOdd() != p.IsOdd() {
		u.Invert()
	}
	return u
}

// Bytes returns the 33-byte SEC1 wire encoding of the point.
func (p CompressedPoint) Bytes() []byte {
	b := make([]byte, CompressedPointSize)
	copy(b, p[:])
	return b
}

// String returns the point as a hex string.
func (p CompressedPoint) String() string {
	var buf [2 * CompressedPointSize]byte
	hex.Encode(buf[:], p[:])
	return string(buf[:])
}
