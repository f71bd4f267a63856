package secp256k1

// SharedSecret derives a Diffie-Hellman shared secret from a remote party's
// public point and a local secret scalar (mod N), returning only the X
// coordinate of secret*point per RFC 5903 section 9. Both sides of an
// exchange arrive at the same value since a*(b*G) = b*(a*G).
//
// It is recommended to hash the result before using it as a key.
func (c *Curve) SharedSecret(point Point, secret *[32]byte) ([32]byte, error) {
	shared, err := c.ECMul(point, secret)
	if err != nil {
		return [32]byte{}, err
	}
	return shared.X(), nil
}
