//go:build js && wasm

package main

import (
	"encoding/hex"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-secp256k1-oracle/pkg/recovery"
	"github.com/smallyu/go-secp256k1-oracle/pkg/secp256k1"
)

// The library is stateless, so the bindings are plain hex-in/hex-out
// function calls around a single Curve backed by the software oracle.
var curve = secp256k1.New(recovery.Recoverer{})

func main() {
	c := make(chan struct{})

	fmt.Println("Go secp256k1-oracle WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoSecp256k1", map[string]interface{}{
		"MulG":         js.FuncOf(MulG),
		"ECMul":        js.FuncOf(ECMul),
		"Tweak":        js.FuncOf(Tweak),
		"SharedSecret": js.FuncOf(SharedSecret),
		"Compress":     js.FuncOf(Compress),
		"Decompress":   js.FuncOf(Decompress),
	})

	<-c
}

// parseScalar decodes a 64-character hex string into a 32-byte scalar.
func parseScalar(s string) (*[32]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid scalar hex: %w", err)
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("scalar must be 32 bytes, got %d", len(b))
	}
	var out [32]byte
	copy(out[:], b)
	return &out, nil
}

// parsePoint decodes SEC1 hex (compressed or tagged uncompressed).
func parsePoint(s string) (secp256k1.Point, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid point hex: %w", err)
	}
	return secp256k1.ParsePoint(b)
}

// MulG computes k*G.
// Arguments:
// 0: scalar hex (64 chars)
// Returns: uncompressed point hex (128 chars) or an "error: ..." string.
func MulG(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (scalarHex)"
	}

	k, err := parseScalar(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	p, err := curve.MulG(k)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return p.String()
}

// ECMul computes k*point.
// Arguments:
// 0: SEC1 point hex
// 1: scalar hex
// Returns: uncompressed point hex or an "error: ..." string.
func ECMul(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (pointHex, scalarHex)"
	}

	p, err := parsePoint(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	k, err := parseScalar(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	out, err := curve.ECMul(p, k)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return out.String()
}

// Tweak computes point + t*G.
// Arguments:
// 0: SEC1 point hex
// 1: tweak scalar hex
// Returns: uncompressed point hex or an "error: ..." string.
func Tweak(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (pointHex, tweakHex)"
	}

	p, err := parsePoint(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	t, err := parseScalar(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	out, err := curve.Tweak(p, t)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return out.String()
}

// SharedSecret derives the ECDH shared secret X coordinate.
// Arguments:
// 0: remote SEC1 point hex
// 1: local secret scalar hex
// Returns: 32-byte hex or an "error: ..." string.
func SharedSecret(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (pointHex, secretHex)"
	}

	p, err := parsePoint(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	k, err := parseScalar(args[1].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	secret, err := curve.SharedSecret(p, k)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return hex.EncodeToString(secret[:])
}

// Compress converts a point to 33-byte compressed hex.
// Arguments:
// 0: SEC1 point hex
func Compress(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (pointHex)"
	}

	p, err := parsePoint(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	switch pt := p.(type) {
	case secp256k1.CompressedPoint:
		return pt.String()
	case secp256k1.UncompressedPoint:
		return pt.Compress().String()
	default:
		return "error: unknown point type"
	}
}

// Decompress converts a point to raw 64-byte uncompressed hex.
// Arguments:
// 0: SEC1 point hex
func Decompress(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (pointHex)"
	}

	p, err := parsePoint(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	switch pt := p.(type) {
	case secp256k1.CompressedPoint:
		u, err := pt.Decompress()
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return u.String()
	case secp256k1.UncompressedPoint:
		return pt.String()
	default:
		return "error: unknown point type"
	}
}
