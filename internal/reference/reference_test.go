package reference

import (
	crand "crypto/rand"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"
)

// TestScalarBaseMultAgainstDecred validates the reference multiplier
// against the decred implementation so the cross-checks built on it are
// trustworthy.
func TestScalarBaseMultAgainstDecred(t *testing.T) {
	for i := 0; i < 16; i++ {
		k, err := crand.Int(crand.Reader, n)
		require.NoError(t, err)
		if k.Sign() == 0 {
			continue
		}

		got := ScalarBaseMult(k)

		var ks secp256k1.ModNScalar
		ks.SetByteSlice(k.Bytes())
		var jp secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(&ks, &jp)
		jp.ToAffine()

		require.Equal(t, jp.X.Bytes()[:], got.X.FillBytes(make([]byte, 32)))
		require.Equal(t, jp.Y.Bytes()[:], got.Y.FillBytes(make([]byte, 32)))
	}
}

func TestIdentityLaws(t *testing.T) {
	g := Generator()

	require.True(t, Add(g, Infinity()).Equal(g))
	require.True(t, Add(Infinity(), g).Equal(g))

	neg := &Point{X: new(big.Int).Set(g.X), Y: new(big.Int).Sub(p, g.Y)}
	require.True(t, Add(g, neg).Equal(Infinity()))

	require.True(t, ScalarMult(g, big.NewInt(0)).Equal(Infinity()))
	require.True(t, ScalarMult(g, big.NewInt(1)).Equal(g))
	require.True(t, ScalarMult(g, N()).Equal(Infinity()))
}

func TestAddMatchesDouble(t *testing.T) {
	g := Generator()
	require.True(t, Add(g, g).Equal(Double(g)))

	// 2G + G == 3G.
	g3 := ScalarMult(g, big.NewInt(3))
	require.True(t, Add(Double(g), g).Equal(g3))
}
