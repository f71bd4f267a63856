// Package reference implements textbook affine double-and-add arithmetic
// over secp256k1 using math/big only.
//
// It exists as an implementation of scalar multiplication that shares no
// code with either the recovery-oracle constructions or the decred backend,
// so tests can cross-check all three against each other. It is not
// constant-time and must never be used outside tests.
package reference

import "math/big"

var (
	// Curve parameters.
	p  = mustHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	n  = mustHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	gx = mustHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	gy = mustHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
)

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("reference: bad hex constant")
	}
	return v
}

// N returns the group order.
func N() *big.Int {
	return new(big.Int).Set(n)
}

// Point is an affine point or the group identity.
type Point struct {
	X, Y *big.Int
	Inf  bool
}

// Infinity returns the group identity.
func Infinity() *Point {
	return &Point{Inf: true}
}

// Generator returns the base point G.
func Generator() *Point {
	return &Point{X: new(big.Int).Set(gx), Y: new(big.Int).Set(gy)}
}

// FromBytes builds a point from raw 64-byte X||Y coordinates.
func FromBytes(b [64]byte) *Point {
	return &Point{
		X: new(big.Int).SetBytes(b[:32]),
		Y: new(big.Int).SetBytes(b[32:]),
	}
}

// Bytes64 returns the point as raw 64-byte X||Y coordinates. It panics on
// the identity, which has no affine encoding.
func (pt *Point) Bytes64() [64]byte {
	if pt.Inf {
		panic("reference: identity has no affine encoding")
	}
	var out [64]byte
	pt.X.FillBytes(out[:32])
	pt.Y.FillBytes(out[32:])
	return out
}

// Equal reports whether two points are the same group element.
func (pt *Point) Equal(q *Point) bool {
	if pt.Inf || q.Inf {
		return pt.Inf == q.Inf
	}
	return pt.X.Cmp(q.X) == 0 && pt.Y.Cmp(q.Y) == 0
}

// Add returns a + b.
func Add(a, b *Point) *Point {
	if a.Inf {
		return &Point{X: new(big.Int).Set(b.X), Y: new(big.Int).Set(b.Y), Inf: b.Inf}
	}
	if b.Inf {
		return &Point{X: new(big.Int).Set(a.X), Y: new(big.Int).Set(a.Y)}
	}
	if a.X.Cmp(b.X) == 0 {
		if a.Y.Cmp(b.Y) != 0 {
			return Infinity()
		}
		return Double(a)
	}

	// m = (by - ay) / (bx - ax)
	den := new(big.Int).Sub(b.X, a.X)
	den.Mod(den, p)
	den.ModInverse(den, p)
	m := new(big.Int).Sub(b.Y, a.Y)
	m.Mul(m, den)
	m.Mod(m, p)
	return complete(a, b, m)
}

// Double returns 2a.
func Double(a *Point) *Point {
	if a.Inf || a.Y.Sign() == 0 {
		return Infinity()
	}

	// m = 3ax² / 2ay
	den := new(big.Int).Add(a.Y, a.Y)
	den.Mod(den, p)
	den.ModInverse(den, p)
	m := new(big.Int).Mul(a.X, a.X)
	m.Mul(m, big.NewInt(3))
	m.Mul(m, den)
	m.Mod(m, p)
	return complete(a, a, m)
}

func complete(a, b *Point, m *big.Int) *Point {
	x := new(big.Int).Mul(m, m)
	x.Sub(x, a.X)
	x.Sub(x, b.X)
	x.Mod(x, p)

	y := new(big.Int).Sub(a.X, x)
	y.Mul(y, m)
	y.Sub(y, a.Y)
	y.Mod(y, p)
	return &Point{X: x, Y: y}
}

// ScalarMult returns k*pt by double-and-add over the bits of k mod N.
func ScalarMult(pt *Point, k *big.Int) *Point {
	kk := new(big.Int).Mod(k, n)
	acc := Infinity()
	for i := kk.BitLen() - 1; i >= 0; i-- {
		acc = Double(acc)
		if kk.Bit(i) == 1 {
			acc = Add(acc, pt)
		}
	}
	return acc
}

// ScalarBaseMult returns k*G.
func ScalarBaseMult(k *big.Int) *Point {
	return ScalarMult(Generator(), k)
}
