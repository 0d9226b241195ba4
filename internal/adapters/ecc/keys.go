package ecc

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // K1 checksums are defined over RIPEMD-160.
)

const (
	PublicKeyPrefix       = "PUB_K1_"
	LegacyPublicKeyPrefix = "EOS"
	SignaturePrefix       = "SIG_K1_"

	k1Suffix          = "K1"
	checksumSize      = 4
	compressedKeySize = 33
	compactSigSize    = 65
)

var (
	ErrInvalidPublicKey = errors.New("invalid public key")
	ErrInvalidSignature = errors.New("invalid signature")
)

// ParsePublicKey decodes a PUB_K1_ or legacy EOS public key.
func ParsePublicKey(encoded string) (*secp256k1.PublicKey, error) {
	var (
		payload []byte
		err     error
	)
	switch {
	case strings.HasPrefix(encoded, PublicKeyPrefix):
		payload, err = decodeChecked(strings.TrimPrefix(encoded, PublicKeyPrefix), compressedKeySize, k1Suffix)
	case strings.HasPrefix(encoded, LegacyPublicKeyPrefix):
		payload, err = decodeChecked(strings.TrimPrefix(encoded, LegacyPublicKeyPrefix), compressedKeySize, "")
	default:
		return nil, fmt.Errorf("%w: unknown prefix", ErrInvalidPublicKey)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	key, err := secp256k1.ParsePubKey(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return key, nil
}

func EncodePublicKey(key *secp256k1.PublicKey) string {
	return PublicKeyPrefix + encodeChecked(key.SerializeCompressed(), k1Suffix)
}

func EncodeLegacyPublicKey(key *secp256k1.PublicKey) string {
	return LegacyPublicKeyPrefix + encodeChecked(key.SerializeCompressed(), "")
}

// ParseSignature decodes a SIG_K1_ signature into its 65-byte compact form.
func ParseSignature(encoded string) ([]byte, error) {
	if !strings.HasPrefix(encoded, SignaturePrefix) {
		return nil, fmt.Errorf("%w: unknown prefix", ErrInvalidSignature)
	}
	payload, err := decodeChecked(strings.TrimPrefix(encoded, SignaturePrefix), compactSigSize, k1Suffix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return payload, nil
}

func EncodeSignature(compact []byte) string {
	return SignaturePrefix + encodeChecked(compact, k1Suffix)
}

func decodeChecked(encoded string, size int, suffix string) ([]byte, error) {
	raw, err := base58.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode base58: %w", err)
	}
	if len(raw) != size+checksumSize {
		return nil, fmt.Errorf("unexpected length %d", len(raw))
	}

	payload, sum := raw[:size], raw[size:]
	if !bytes.Equal(checksum(payload, suffix), sum) {
		return nil, errors.New("checksum mismatch")
	}
	return payload, nil
}

func encodeChecked(payload []byte, suffix string) string {
	raw := make([]byte, 0, len(payload)+checksumSize)
	raw = append(raw, payload...)
	raw = append(raw, checksum(payload, suffix)...)
	return base58.Encode(raw)
}

func checksum(payload []byte, suffix string) []byte {
	h := ripemd160.New()
	_, _ = h.Write(payload)
	_, _ = h.Write([]byte(suffix))
	return h.Sum(nil)[:checksumSize]
}
