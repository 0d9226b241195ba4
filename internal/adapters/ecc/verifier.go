package ecc

import (
	"crypto/sha256"

	"github.com/bnema/cloudwallet-cli/internal/ports"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Verifier checks K1 signatures over the SHA-256 digest of a message.
type Verifier struct{}

var _ ports.SignatureVerifier = Verifier{}

// Verify reports whether signature was produced over message by the holder of
// publicKey. Malformed inputs are errors; a well-formed signature by another
// key is false.
func (Verifier) Verify(signature string, message []byte, publicKey string) (bool, error) {
	expected, err := ParsePublicKey(publicKey)
	if err != nil {
		return false, err
	}
	compact, err := ParseSignature(signature)
	if err != nil {
		return false, err
	}

	digest := sha256.Sum256(message)
	recovered, _, err := ecdsa.RecoverCompact(compact, digest[:])
	if err != nil {
		return false, nil
	}
	return recovered.IsEqual(expected), nil
}
