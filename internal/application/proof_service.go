package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/bnema/cloudwallet-cli/internal/ports"
)

type ProofService struct {
	chain    ports.ChainReader
	verifier ports.SignatureVerifier
}

func NewProofService(chain ports.ChainReader, verifier ports.SignatureVerifier) *ProofService {
	return &ProofService{chain: chain, verifier: verifier}
}

// VerifyUserProof checks that publicKey signed nonce.
func (s *ProofService) VerifyUserProof(signature, nonce, publicKey string) (bool, error) {
	return s.verifier.Verify(signature, []byte(nonce), publicKey)
}

// VerifyPlatformProof checks the platform's attestation that account logged
// in from referer in answer to nonce. A failed key lookup is an error, never
// an unverified proof.
func (s *ProofService) VerifyPlatformProof(ctx context.Context, signature, referer, nonce string, account domain.AccountName) (bool, error) {
	key, err := s.chain.ActivePermissionKey(ctx, domain.ProofAccount)
	if err != nil {
		if errors.Is(err, domain.ErrKeyLookup) {
			return false, err
		}
		return false, fmt.Errorf("%w: %w", domain.ErrKeyLookup, err)
	}

	return s.verifier.Verify(signature, []byte(domain.PlatformProofMessage(referer, nonce, account)), key)
}
