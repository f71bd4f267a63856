package secp256k1

import "math/big"

// Generic affine point algebra. This is the fallback path for combining two
// points in general position; whenever one operand is a known scalar
// multiple, the oracle-accelerated operations on Curve are far cheaper.

// Add returns p + q using the affine chord formula:
//
//	m  = (Yq - Yp) * (Xq - Xp)⁻¹ mod P
//	Xr = m² - Xp - Xq            mod P
//	Yr = m*(Xp - Xr) - Yp        mod P
//
// When q equals p the tangent formula is used instead (see Double). When q
// is the additive inverse of p the chord is vertical and the sum is the
// group identity, which the affine encodings cannot represent; Add reports
// this as ErrPointAtInfinity. Points constructed through unchecked paths
// may additionally surface ErrArithmeticOverflow when a slope denominator
// turns out to be zero modulo P.
func (p UncompressedPoint) Add(q Point) (UncompressedPoint, error) {
	xp := new(big.Int).SetBytes(p[:32])
	yp := new(big.Int).SetBytes(p[32:])

	qx, qy := q.X(), q.Y()
	xq := new(big.Int).SetBytes(qx[:])
	yq := new(big.Int).SetBytes(qy[:])

	if xp.Cmp(xq) == 0 {
		if yp.Cmp(yq) == 0 {
			return p.Double()
		}
		return UncompressedPoint{}, makeError(ErrPointAtInfinity,
			"sum of a point and its additive inverse is the group identity")
	}

	// m = (yq - yp) / (xq - xp)
	den := new(big.Int).Sub(xq, xp)
	den.Mod(den, pInt)
	num := new(big.Int).Sub(yq, yp)
	num.Mod(num, pInt)
	return chord(xp, yp, xq, num, den)
}

// Double returns 2p using the affine tangent formula with slope
// m = 3Xp² * (2Yp)⁻¹ mod P. Valid curve points never have Y = 0 on
// secp256k1, but a point built through an unchecked path might; doubling
// such a point fails with ErrArithmeticOverflow from the tangent
// denominator.
func (p UncompressedPoint) Double() (UncompressedPoint, error) {
	xp := new(big.Int).SetBytes(p[:32])
	yp := new(big.Int).SetBytes(p[32:])

	// m = 3xp² / 2yp
	num := new(big.Int).Mul(xp, xp)
	num.Mod(num, pInt)
	num.Mul(num, big.NewInt(3))
	num.Mod(num, pInt)
	den := new(big.Int).Add(yp, yp)
	den.Mod(den, pInt)
	return chord(xp, yp, xp, num, den)
}

// chord completes the shared tail of the addition formulas: it inverts the
// slope denominator, then derives the result coordinates from the slope
// m = num/den and the operand coordinates xp, yp, xq.
func chord(xp, yp, xq, num, den *big.Int) (UncompressedPoint, error) {
	denBytes := pad32(den)
	inv, err := ModInvP(denBytes[:])
	if err != nil {
		return UncompressedPoint{}, err
	}

	m := new(big.Int).SetBytes(inv[:])
	m.Mul(m, num)
	m.Mod(m, pInt)

	// xr = m² - xp - xq
	xr := new(big.Int).Mul(m, m)
	xr.Sub(xr, xp)
	xr.Sub(xr, xq)
	xr.Mod(xr, pInt)

	// yr = m*(xp - xr) - yp
	yr := new(big.Int).Sub(xp, xr)
	yr.Mul(yr, m)
	yr.Sub(yr, yp)
	yr.Mod(yr, pInt)

	var out UncompressedPoint
	xr.FillBytes(out[:32])
	yr.FillBytes(out[32:])
	return out, nil
}
