// Package recovery provides a pure-software implementation of the
// secp256k1.Oracle recovery contract, backed by the decred ECDSA
// compact-signature recovery routine.
//
// Hosts that expose a native recovery primitive should adapt it to the
// Oracle interface instead; this implementation exists for unit testing the
// algebraic constructions and for environments without such a primitive,
// where the acceleration argument does not apply but the API should still
// function.
package recovery

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/smallyu/go-secp256k1-oracle/logger"
)

// compactSigMagicOffset is added to the recovery code in the header byte of
// a compact signature, a convention inherited from Bitcoin message signing.
const compactSigMagicOffset = 27

// Recoverer implements the secp256k1.Oracle contract in software. The zero
// value is ready to use and safe for concurrent use.
type Recoverer struct{}

// Recover maps the (digest, parity, r||s) oracle contract onto the decred
// 65-byte compact signature format and returns the recovered point as raw
// 64 coordinate bytes. Malformed or impossible inputs (r or s zero or not
// in [1, N), no curve point for r with the requested parity) are rejected
// with the backend's error.
func (Recoverer) Recover(digest [32]byte, odd bool, sig [64]byte) ([64]byte, error) {
	var compact [65]byte
	compact[0] = compactSigMagicOffset
	if odd {
		compact[0]++
	}
	copy(compact[1:33], sig[:32])
	copy(compact[33:], sig[32:])

	pub, _, err := ecdsa.RecoverCompact(compact[:], digest[:])
	if err != nil {
		log := logger.Logger()
		log.Debug().Err(err).Msg("compact recovery rejected synthetic signature")
		return [64]byte{}, err
	}

	var out [64]byte
	copy(out[:], pub.SerializeUncompressed()[1:])
	return out, nil
}
