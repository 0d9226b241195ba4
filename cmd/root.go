package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cw",
		Short:         "Cloud Wallet CLI (cw): log in and sign transactions with a cloud wallet",
		Long:          "cw (Cloud Wallet CLI) talks to a cloud-hosted wallet from the terminal: it logs users in, signs whitelisted transactions silently, opens the wallet for everything else and verifies what comes back.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().String("profile", "", "Wallet profile to use (defaults to the active profile)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	cfg, err := newConfig()
	if err == nil {
		err = bindFlags(rootCmd, cfg)
	}
	var app *app
	if err == nil {
		app, err = wireApp(cfg)
	}
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return app.start()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newSignCmd(app),
		newProofCmd(app),
		newRequisitionCmd(app),
		newActivateCmd(app),
		newProfileCmd(app),
	)

	return rootCmd
}

func bindFlags(rootCmd *cobra.Command, cfg *viper.Viper) error {
	flags := rootCmd.PersistentFlags()
	return errors.Join(
		cfg.BindPFlag(keyProfile, flags.Lookup("profile")),
		cfg.BindPFlag(keyLogLevel, flags.Lookup("log-level")),
	)
}
