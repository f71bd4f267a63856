package secp256k1

import (
	crand "crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-secp256k1-oracle/internal/reference"
)

// randPoint returns a random valid curve point via the reference
// multiplier.
func randPoint(t *testing.T) UncompressedPoint {
	t.Helper()
	k, err := crand.Int(crand.Reader, reference.N())
	require.NoError(t, err)
	if k.Sign() == 0 {
		k.SetInt64(1)
	}
	return UncompressedPoint(reference.ScalarBaseMult(k).Bytes64())
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	for i := 0; i < 16; i++ {
		p := randPoint(t)

		c := p.Compress()
		u, err := c.Decompress()
		require.NoError(t, err)
		require.Equal(t, p, u, "decompress(compress(p)) must equal p")
		require.Equal(t, c, u.Compress(), "compress(decompress(c)) must equal c")

		require.Equal(t, p, c.DecompressUnchecked())
	}
}

func TestPointAccessors(t *testing.T) {
	p := randPoint(t)
	c := p.Compress()

	require.Equal(t, p.X(), c.X())
	require.Equal(t, p.Y(), c.Y(), "compressed Y must lift to the stored parity")
	require.Equal(t, p.IsOdd(), c.IsOdd())
	require.Equal(t, p.IsEven(), c.IsEven())
	require.NotEqual(t, p.IsOdd(), p.IsEven())
}

func TestInvert(t *testing.T) {
	p := randPoint(t)

	inv := p
	inv.Invert()
	require.Equal(t, p.X(), inv.X(), "inversion preserves X")
	require.NotEqual(t, p.Y(), inv.Y())
	require.Equal(t, p.IsOdd(), inv.IsEven(), "inversion flips parity")
	require.True(t, inv.OnCurve())

	// Y + (P - Y) ≡ 0 (mod P).
	y := p.Y()
	yInv := inv.Y()
	require.Equal(t, [32]byte{}, AddModP(&y, &yInv))

	inv.Invert()
	require.Equal(t, p, inv, "inverting twice must be the identity")

	c := p.Compress()
	cInv := c
	cInv.Invert()
	require.Equal(t, c.IsOdd(), cInv.IsEven())
	require.Equal(t, c.X(), cInv.X())
	cInv.Invert()
	require.Equal(t, c, cInv)
}

func TestLiftX(t *testing.T) {
	p := randPoint(t)
	x := p.X()

	u, err := LiftX(&x)
	require.NoError(t, err)
	require.True(t, u.OnCurve())
	require.Equal(t, x, u.X())

	if u.IsOdd() != p.IsOdd() {
		u.Invert()
	}
	require.Equal(t, p, u)
}

// TestLiftXInvalid exercises an X with no curve solution. About half of all
// field elements are in this class; x = 5 is a known member.
func TestLiftXInvalid(t *testing.T) {
	x := pad32(big.NewInt(5))
	_, err := LiftX(&x)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidYCoordinate))

	var e Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, ErrInvalidYCoordinate, e.Err)
}

func TestParsePoint(t *testing.T) {
	p := randPoint(t)

	t.Run("compressed", func(t *testing.T) {
		got, err := ParsePoint(p.Compress().Bytes())
		require.NoError(t, err)
		require.Equal(t, p.Compress(), got)
	})

	t.Run("uncompressed", func(t *testing.T) {
		sec1 := p.SEC1Bytes()
		got, err := ParsePoint(sec1[:])
		require.NoError(t, err)
		require.Equal(t, p, got)
	})

	t.Run("bad length", func(t *testing.T) {
		_, err := ParsePoint(p[:17])
		require.True(t, errors.Is(err, ErrInvalidPointEncoding))
	})

	t.Run("bad compressed tag", func(t *testing.T) {
		b := p.Compress().Bytes()
		b[0] = 0x05
		_, err := ParsePoint(b)
		require.True(t, errors.Is(err, ErrInvalidPointEncoding))
	})

	t.Run("bad uncompressed tag", func(t *testing.T) {
		sec1 := p.SEC1Bytes()
		sec1[0] = TagCompressedEven
		_, err := ParsePoint(sec1[:])
		require.True(t, errors.Is(err, ErrInvalidPointEncoding))
	})

	t.Run("compressed x off curve", func(t *testing.T) {
		b := make([]byte, CompressedPointSize)
		b[0] = TagCompressedEven
		b[32] = 5 // x = 5 has no curve solution
		_, err := ParsePoint(b)
		require.True(t, errors.Is(err, ErrInvalidYCoordinate))
	})

	t.Run("uncompressed off curve", func(t *testing.T) {
		sec1 := p.SEC1Bytes()
		sec1[64] ^= 1 // break the curve equation
		_, err := ParsePoint(sec1[:])
		require.True(t, errors.Is(err, ErrInvalidPublicKey))
	})
}

func TestSEC1Bytes(t *testing.T) {
	p := randPoint(t)
	sec1 := p.SEC1Bytes()
	require.Equal(t, byte(TagUncompressed), sec1[0])
	require.Equal(t, p.Bytes(), sec1[1:])
}
