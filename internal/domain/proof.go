package domain

import "fmt"

// ProofAccount owns the active key that signs platform proofs.
const ProofAccount AccountName = "proof.wax"

// PlatformProofMessage is the message signed by the platform when it attests
// that account logged in from referer in answer to nonce.
func PlatformProofMessage(referer, nonce string, account AccountName) string {
	return fmt.Sprintf("cloudwallet-verification-%s-%s-%s", referer, nonce, account)
}
