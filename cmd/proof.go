package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type proofOutput struct {
	Type        string `json:"type"`
	Signature   string `json:"signature"`
	Referer     string `json:"referer,omitempty"`
	AccountName string `json:"accountName,omitempty"`
	Verified    *bool  `json:"verified,omitempty"`
}

func newProofCmd(app *app) *cobra.Command {
	var (
		nonce       string
		proofType   int
		description string
		publicKey   string
	)

	cmd := &cobra.Command{
		Use:   "proof",
		Short: "Ask the wallet to sign a nonce",
		Long:  "Ask the wallet to sign --nonce for the user. With --public-key the signature is checked against that key before it is printed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.resolveProfile(cmd.Context())
			if err != nil {
				return err
			}

			session, err := app.openSession(profile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = session.Close() }()

			var desc *string
			if cmd.Flags().Changed("description") {
				desc = &description
			}

			proof, err := session.signing.RequestProof(cmd.Context(), nonce, proofType, desc)
			if err != nil {
				return fmt.Errorf("request proof: %w", err)
			}

			out := proofOutput{
				Type:        proof.Type,
				Signature:   proof.Signature,
				Referer:     proof.Referer,
				AccountName: string(proof.AccountName),
			}
			if publicKey != "" {
				verified, err := session.proofs.VerifyUserProof(proof.Signature, nonce, publicKey)
				if err != nil {
					return fmt.Errorf("verify proof: %w", err)
				}
				out.Verified = &verified
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&nonce, "nonce", "", "Nonce the wallet signs")
	cmd.Flags().IntVar(&proofType, "type", 0, "Proof type forwarded to the wallet")
	cmd.Flags().StringVar(&description, "description", "", "Text the wallet shows next to the request")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "Verify the signature against this public key")
	_ = cmd.MarkFlagRequired("nonce")

	return cmd
}
