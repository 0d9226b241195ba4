package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSignCmd(app *app) *cobra.Command {
	var (
		file          string
		noModify      bool
		noFeeFallback bool
		noAuto        bool
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a transaction with the cloud wallet",
		Long:  "Sign the JSON transaction in --file. Transactions covered by the account's whitelist are signed silently; everything else opens the wallet. The signed transaction is checked against the original before it is printed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tx, err := readTransaction(file)
			if err != nil {
				return err
			}

			profile, err := app.resolveProfile(cmd.Context())
			if err != nil {
				return err
			}

			session, err := app.openSession(profile, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = session.Close() }()

			if _, err := session.login(cmd.Context(), "", !noAuto); err != nil {
				return fmt.Errorf("login: %w", err)
			}
			if err := session.signing.PrepareTransaction(cmd.Context(), tx); err != nil {
				return fmt.Errorf("prepare transaction: %w", err)
			}

			opts := domain.DefaultSignOptions()
			opts.NoModify = noModify
			opts.FeeFallback = !noFeeFallback

			signed, err := session.signing.Sign(cmd.Context(), tx, nil, opts)
			if err != nil {
				if domain.IsUserRefusal(err) {
					return fmt.Errorf("signing refused: %w", err)
				}
				if domain.IsRetryable(err) {
					return fmt.Errorf("sign transaction (safe to retry): %w", err)
				}
				return fmt.Errorf("sign transaction: %w", err)
			}

			status := session.signing.Status(profile)
			status.Signed = &signed
			return writeSessionOutput(cmd, app, status, asJSON)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to the JSON transaction to sign")
	cmd.Flags().BoolVar(&noModify, "no-modify", false, "Forbid the wallet from adding actions that pay for resources")
	cmd.Flags().BoolVar(&noFeeFallback, "no-fee-fallback", false, "Forbid the wallet from charging a fee when it cannot pay for resources")
	cmd.Flags().BoolVar(&noAuto, "no-auto", false, "Skip the silent login endpoint")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the session and signed transaction as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readTransaction(path string) (domain.Transaction, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("read transaction file: %w", err)
	}

	// Unknown fields are rejected rather than dropped: the wallet must sign
	// exactly what the file describes.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var tx domain.Transaction
	if err := dec.Decode(&tx); err != nil {
		return domain.Transaction{}, fmt.Errorf("decode transaction file: %w", err)
	}
	if len(tx.Actions) == 0 {
		return domain.Transaction{}, fmt.Errorf("transaction file %s has no actions", path)
	}
	return tx, nil
}
