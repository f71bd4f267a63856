package secp256k1

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrInvalidSecretKey, "ErrInvalidSecretKey"},
		{ErrInvalidPublicKey, "ErrInvalidPublicKey"},
		{ErrInvalidYCoordinate, "ErrInvalidYCoordinate"},
		{ErrArithmeticOverflow, "ErrArithmeticOverflow"},
		{ErrPointAtInfinity, "ErrPointAtInfinity"},
		{ErrInvalidPointEncoding, "ErrInvalidPointEncoding"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output and unwrapping for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{
		{makeError(ErrInvalidSecretKey, "some error"), "some error"},
		{makeError(ErrArithmeticOverflow, "human-readable error"), "human-readable error"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}

	err := makeError(ErrPointAtInfinity, "test description")
	if !errors.Is(err, ErrPointAtInfinity) {
		t.Fatal("errors.Is must match the wrapped kind")
	}
	if errors.Is(err, ErrInvalidPublicKey) {
		t.Fatal("errors.Is must not match a different kind")
	}

	var kind ErrorKind
	if !errors.As(err, &kind) || kind != ErrPointAtInfinity {
		t.Fatal("errors.As must extract the wrapped kind")
	}
}
