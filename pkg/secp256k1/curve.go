package secp256k1

import "math/big"

// N is the order of the secp256k1 curve:
//
//	0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141
//
// It is the size of the cyclic group generated by the base point G. All
// valid secret keys, nonces, and tweaks are scalars in [1, N).
var N = [32]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xfe, 0xba, 0xae, 0xdc, 0xe6, 0xaf, 0x48, 0xa0, 0x3b,
	0xbf, 0xd2, 0x5e, 0x8c, 0xd0, 0x36, 0x41, 0x41,
}

// NSub2 is the precomputed value N-2, the Fermat exponent used by ModInvN.
var NSub2 = [32]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xfe, 0xba, 0xae, 0xdc, 0xe6, 0xaf, 0x48, 0xa0, 0x3b,
	0xbf, 0xd2, 0x5e, 0x8c, 0xd0, 0x36, 0x41, 0x3f,
}

// NDiv2 is the precomputed value N/2. Integrators performing ECDSA low-S
// normalization compare an S value against it.
var NDiv2 = [32]byte{
	0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0x5d, 0x57, 0x6e, 0x73, 0x57, 0xa4, 0x50, 0x1d,
	0xdf, 0xe9, 0x2f, 0x46, 0x68, 0x1b, 0x20, 0xa0,
}

// P is the prime defining the finite field over which secp256k1 is defined:
//
//	0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f
//
// All point coordinates are elements of this field.
var P = [32]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xfe, 0xff, 0xff, 0xfc, 0x2f,
}

// PSub2 is the precomputed value P-2, the Fermat exponent used by ModInvP.
var PSub2 = [32]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xfe, 0xff, 0xff, 0xfc, 0x2d,
}

// P14 is the precomputed value (P+1)/4. Because P ≡ 3 (mod 4), raising a
// quadratic residue to this exponent yields one of its square roots, which
// is how an X coordinate is lifted to a candidate Y.
var P14 = [32]byte{
	0x3f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xbf, 0xff, 0xff, 0x0c,
}

// G is the generator point of the curve in uncompressed form:
//
//	G.X: 0x79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798
//	G.Y: 0x483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8
//
// Its Y coordinate is even.
var G = UncompressedPoint{
	0x79, 0xbe, 0x66, 0x7e, 0xf9, 0xdc, 0xbb, 0xac, 0x55, 0xa0, 0x62, 0x95,
	0xce, 0x87, 0x0b, 0x07, 0x02, 0x9b, 0xfc, 0xdb, 0x2d, 0xce, 0x28, 0xd9,
	0x59, 0xf2, 0x81, 0x5b, 0x16, 0xf8, 0x17, 0x98, 0x48, 0x3a, 0xda, 0x77,
	0x26, 0xa3, 0xc4, 0x65, 0x5d, 0xa4, 0xfb, 0xfc, 0x0e, 0x11, 0x08, 0xa8,
	0xfd, 0x17, 0xb4, 0x48, 0xa6, 0x85, 0x54, 0x19, 0x9c, 0x47, 0xd0, 0x8f,
	0xfb, 0x10, 0xd4, 0xb8,
}

// Big-integer mirrors of the byte constants, used internally by the modular
// arithmetic. Read-only after initialization.
var (
	nInt     = new(big.Int).SetBytes(N[:])
	nSub2Int = new(big.Int).SetBytes(NSub2[:])
	pInt     = new(big.Int).SetBytes(P[:])
	pSub2Int = new(big.Int).SetBytes(PSub2[:])
	p14Int   = new(big.Int).SetBytes(P14[:])
	twoNInt  = new(big.Int).Add(nInt, nInt)
	twoPInt  = new(big.Int).Add(pInt, pInt)
	sevenInt = big.NewInt(7)
)
