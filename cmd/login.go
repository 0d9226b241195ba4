package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/cloudwallet-cli/internal/application"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var (
		nonce  string
		auto   bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with the cloud wallet",
		Long:  "Log in with the cloud wallet. With --auto the silent endpoint is asked first and the wallet is only opened when it cannot answer. A --nonce asks the wallet for a proof of the login, verified against the chain.",
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

			if _, err := session.login(cmd.Context(), nonce, auto); err != nil {
				return fmt.Errorf("login: %w", err)
			}

			return writeSessionOutput(cmd, app, session.signing.Status(profile), asJSON)
		},
	}

	cmd.Flags().StringVar(&nonce, "nonce", "", "Nonce the wallet signs as proof of the login")
	cmd.Flags().BoolVar(&auto, "auto", false, "Try the silent login endpoint before opening the wallet")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the session as JSON")

	return cmd
}

func newRequisitionCmd(app *app) *cobra.Command {
	var (
		nonce  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "requisition",
		Short: "Log in through the wallet's activate-requisition page",
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

			if _, err := session.signing.ActivateRequisition(cmd.Context(), nonce); err != nil {
				return fmt.Errorf("activate requisition: %w", err)
			}

			return writeSessionOutput(cmd, app, session.signing.Status(profile), asJSON)
		},
	}

	cmd.Flags().StringVar(&nonce, "nonce", "", "Nonce the wallet signs as proof of the login")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the session as JSON")

	return cmd
}

func writeSessionOutput(cmd *cobra.Command, app *app, status application.SessionStatus, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	rendered, err := app.sessionRenderer(status)
	if err != nil {
		return fmt.Errorf("render session: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
