package secp256k1

import "fmt"

// Oracle is the external public-key-recovery primitive the accelerated
// operations are built on. Given a 32-byte digest, the parity of the
// ephemeral point, and a 64-byte signature r||s, it either fails or returns
// the unique uncompressed point Q consistent with the ECDSA recovery
// equation
//
//	Q = r⁻¹ * (s*R - digest*G)
//
// where R is the point with X coordinate r and the given parity. The oracle
// is assumed synchronous, side-effect free, and of bounded fixed cost; any
// retry or timeout policy belongs to the integration layer that supplies it.
type Oracle interface {
	Recover(digest [32]byte, odd bool, sig [64]byte) ([64]byte, error)
}

// Curve binds the accelerated operations to a recovery oracle. A Curve is
// immutable after New and safe for concurrent use.
type Curve struct {
	oracle Oracle
}

// New returns a Curve that performs scalar multiplication and tweaking
// through the given recovery oracle.
func New(o Oracle) *Curve {
	return &Curve{oracle: o}
}

// MulG returns k*G for a scalar k (mod N) in one oracle call instead of the
// ~256 point doublings a native multiply would take. The construction sets
// r = G.X, parity = even, digest = 0, and s = k*r mod N, which collapses
// the recovery equation to r⁻¹*(k*r)*G = k*G.
//
// A scalar congruent to zero has no corresponding point and is rejected
// with ErrInvalidSecretKey.
func (c *Curve) MulG(k *[32]byte) (UncompressedPoint, error) {
	return c.ECMul(G, k)
}

// ECMul returns k*point for any curve point in one oracle call, using the
// same construction as MulG with r = point.X and the point's own parity.
// This generalizes scalar multiplication to arbitrary points and enables
// Diffie-Hellman style shared-secret derivation.
//
// A scalar congruent to zero mod N is rejected with ErrInvalidSecretKey.
// In the astronomically rare case that point.X is not less than N the
// recovery equation cannot encode it as an r value and the oracle's
// rejection surfaces as ErrInvalidPublicKey.
func (c *Curve) ECMul(point Point, k *[32]byte) (UncompressedPoint, error) {
	kr := *k
	FastModN(&kr)
	if kr == ([32]byte{}) {
		return UncompressedPoint{}, makeError(ErrInvalidSecretKey,
			"scalar is congruent to zero mod N")
	}

	x := point.X()
	s := MulModN(&x, &kr)

	var sig [64]byte
	copy(sig[:32], x[:])
	copy(sig[32:], s[:])

	return c.recover([32]byte{}, point.IsOdd(), sig)
}

// Tweak returns point + t*G in one oracle call, without a general
// multi-scalar multiply. Solving the recovery equation for the digest that
// yields that sum gives digest = (-r*t) mod N with r = point.X, while the
// signature duplicates point.X across both halves so that s = r and the
// recovered point becomes R + t*G. The duplication is a derived constant of
// the recovery-equation algebra and must hold exactly.
//
// Tweaking by t = 0 is well-defined and returns the point itself.
func (c *Curve) Tweak(point Point, t *[32]byte) (UncompressedPoint, error) {
	x := point.X()
	negR := NegateN(&x)
	z := MulModN(&negR, t)

	var sig [64]byte
	copy(sig[:32], x[:])
	copy(sig[32:], x[:])

	return c.recover(z, point.IsOdd(), sig)
}

// Decompress recovers the uncompressed form of a compressed point in one
// oracle call: with a zero digest and the X coordinate duplicated across
// both signature halves, the recovery equation returns the point itself.
// This is the oracle-priced alternative to CompressedPoint.Decompress,
// which pays for a field exponentiation instead. An X coordinate not on
// the curve is rejected by the oracle as ErrInvalidPublicKey.
func (c *Curve) Decompress(point CompressedPoint) (UncompressedPoint, error) {
	x := point.X()

	var sig [64]byte
	copy(sig[:32], x[:])
	copy(sig[32:], x[:])

	return c.recover([32]byte{}, point.IsOdd(), sig)
}

// recover invokes the oracle and maps its rejection onto the shared error
// vocabulary. The oracle cannot detect caller intent, so an error here
// means the inputs were malformed or impossible, never that a well-formed
// operation produced a wrong point.
func (c *Curve) recover(digest [32]byte, odd bool, sig [64]byte) (UncompressedPoint, error) {
	out, err := c.oracle.Recover(digest, odd, sig)
	if err != nil {
		return UncompressedPoint{}, makeError(ErrInvalidPublicKey,
			fmt.Sprintf("recovery oracle rejected input: %v", err))
	}
	return UncompressedPoint(out), nil
}
