package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/cloudwallet-cli/internal/application"
	"github.com/bnema/cloudwallet-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage wallet endpoint profiles",
	}

	cmd.AddCommand(
		newProfileAddCmd(app),
		newProfileListCmd(app),
		newProfileUseCmd(app),
	)

	return cmd
}

func newProfileAddCmd(app *app) *cobra.Command {
	var (
		profile   domain.Profile
		from      string
		overwrite bool
		use       bool
	)

	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add or update a wallet profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile.ID = domain.ProfileID(args[0])

			saved, err := app.profiles.Add(cmd.Context(), application.AddProfileCommand{
				Profile:   profile,
				From:      domain.ProfileID(from),
				Overwrite: overwrite,
			})
			if err != nil {
				return err
			}
			if use {
				if err := app.profiles.Use(cmd.Context(), saved.ID); err != nil {
					return err
				}
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %s\n", saved.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&profile.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&profile.ChainID, "chain-id", "", "Chain id the wallet signs for")
	cmd.Flags().StringVar(&profile.SigningURL, "signing-url", "", "Wallet signing site")
	cmd.Flags().StringVar(&profile.AutoSigningURL, "auto-signing-url", "", "Silent login and signing endpoint")
	cmd.Flags().StringVar(&profile.RPCURL, "rpc-url", "", "Chain RPC endpoint")
	cmd.Flags().StringVar(&profile.MetricURL, "metric-url", "", "Metric endpoint")
	cmd.Flags().StringVar(&profile.ActivationURL, "activation-url", "", "Dapp activation endpoint")
	cmd.Flags().StringVar(&profile.DappOrigin, "dapp-origin", "", "Dapp origin used for activation codes")
	cmd.Flags().BoolVar(&profile.ReturnTempAccount, "return-temp", false, "Accept temporary accounts on login")
	cmd.Flags().StringVar(&from, "from", "", "Start from an existing profile")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing profile with the same id")
	cmd.Flags().BoolVar(&use, "use", false, "Make the profile active")

	return cmd
}

func newProfileListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List wallet profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app.profiles.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(profiles)
			}

			rendered, err := app.profilesRenderer(profiles)
			if err != nil {
				return fmt.Errorf("render profiles: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print profiles as JSON")

	return cmd
}

func newProfileUseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use <id>",
		Short: "Make a profile the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ProfileID(args[0])
			if err := app.profiles.Use(cmd.Context(), id); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Active profile: %s\n", id)
			return err
		},
	}
}
