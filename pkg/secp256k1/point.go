package secp256k1

import "fmt"

// SEC1 tag bytes identifying a point encoding on the wire.
const (
	// TagCompressedEven prefixes a compressed point whose Y is even.
	TagCompressedEven = 0x02

	// TagCompressedOdd prefixes a compressed point whose Y is odd.
	TagCompressedOdd = 0x03

	// TagUncompressed prefixes a 65-byte uncompressed point on the wire.
	// The internal UncompressedPoint representation carries the raw 64
	// coordinate bytes; the tag exists only at the encoding boundary.
	TagUncompressed = 0x04
)

// Point is the capability set shared by the two point encodings. Operations
// that accept either encoding, such as Curve.ECMul and Curve.Tweak, take a
// Point; conversions between the encodings remain explicit.
type Point interface {
	// X returns the 32-byte big-endian X coordinate of the point.
	X() [32]byte

	// Y returns the 32-byte big-endian Y coordinate of the point. For a
	// compressed point this lifts X and corrects parity, so it is not a
	// simple accessor.
	Y() [32]byte

	// IsOdd reports whether the Y coordinate of the point is odd.
	IsOdd() bool

	// IsEven reports whether the Y coordinate of the point is even.
	IsEven() bool
}

// ParsePoint parses SEC1-encoded point bytes into the matching encoding.
// It accepts 33-byte compressed and 65-byte tagged uncompressed inputs and
// proves the result is on the curve: compressed inputs go through the
// checked lift, uncompressed inputs are checked against the curve equation.
func ParsePoint(b []byte) (Point, error) {
	switch len(b) {
	case CompressedPointSize:
		if b[0] != TagCompressedEven && b[0] != TagCompressedOdd {
			return nil, makeError(ErrInvalidPointEncoding,
				fmt.Sprintf("invalid compressed point tag %#02x", b[0]))
		}
		var p CompressedPoint
		copy(p[:], b)
		x := p.X()
		if _, err := LiftX(&x); err != nil {
			return nil, err
		}
		return p, nil

	case UncompressedPointSize + 1:
		if b[0] != TagUncompressed {
			return nil, makeError(ErrInvalidPointEncoding,
				fmt.Sprintf("invalid uncompressed point tag %#02x", b[0]))
		}
		var p UncompressedPoint
		copy(p[:], b[1:])
		if !p.OnCurve() {
			return nil, makeError(ErrInvalidPublicKey,
				"uncompressed point is not on the curve")
		}
		return p, nil

	default:
		return nil, makeError(ErrInvalidPointEncoding,
			fmt.Sprintf("invalid point length %d", len(b)))
	}
}
