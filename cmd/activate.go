package cmd

import (
	"context"
	"fmt"

	statusadapter "github.com/bnema/cloudwallet-cli/internal/adapters/render/status"
	"github.com/bnema/cloudwallet-cli/internal/application"
	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newActivateCmd(app *app) *cobra.Command {
	var (
		revoke bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "activate",
		Short: "Link this client to a wallet account with an activation code",
		Long:  "Request an activation code for the profile's dapp origin and wait until it is approved in the wallet. The activation token is kept in the secret store and sent to the silent endpoints. --revoke forgets it.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := app.resolveProfile(cmd.Context())
			if err != nil {
				return err
			}
			activation := app.activationService(profile)

			if revoke {
				if err := activation.Deactivate(cmd.Context(), profile.ID); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed activation for profile %s\n", profile.ID)
				return err
			}
			if profile.ActivationURL == "" {
				return fmt.Errorf("profile %q has no activation url", profile.ID)
			}

			var user domain.User
			err = waitWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Waiting for approval in the wallet...", func(ctx context.Context, printLine func(string)) error {
				var activateErr error
				user, activateErr = activation.Activate(ctx, profile, func(info domain.RequisitionInfo) error {
					rendered, err := app.activationRenderer(info, statusadapter.RenderOptions{Now: app.now()})
					if err != nil {
						return err
					}
					printLine(rendered)
					return nil
				})
				return activateErr
			})
			if err != nil {
				return fmt.Errorf("activate: %w", err)
			}

			return writeSessionOutput(cmd, app, application.SessionStatus{
				Profile: profile,
				State:   domain.StateAuthenticated,
				User:    &user,
			}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&revoke, "revoke", false, "Forget the stored activation token")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the activated account as JSON")

	return cmd
}
