/*
Package secp256k1 implements affine secp256k1 elliptic curve arithmetic for
execution environments where native scalar multiplication is prohibitively
expensive but an ECDSA public-key-recovery primitive is cheap.

The package provides:

  - Curve constants (group order N, field prime P, generator G) and modular
    add/multiply/negate/inverse over both moduli, operating on 32-byte
    big-endian values.
  - The two SEC1 point encodings (CompressedPoint, UncompressedPoint) with
    parity, coordinate extraction, inversion, and X-to-point lifting.
  - Generic affine point addition and doubling as a fallback path.
  - Oracle-accelerated scalar multiplication and tweaking (Curve.MulG,
    Curve.ECMul, Curve.Tweak): these construct degenerate ECDSA recovery
    inputs whose recovered public key equals the desired curve point,
    replacing a multi-hundred-step double-and-add with a single call to a
    host recovery primitive.

The recovery primitive itself is an injected dependency (the Oracle
interface). A pure-software implementation suitable for tests and hosts
without a native primitive is provided in the sibling recovery package.

All operations are pure and allocate only transient values; every exported
function and a Curve value are safe for concurrent use.
*/
package secp256k1
