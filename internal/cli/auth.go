package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check credentials against the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.login(a.context(cmd))
			if err != nil {
				return err
			}
			a.printf("logged in as %s (%s)\n", s.Email, s.Role)
			return nil
		},
	}
}

func (a *app) registerCommand() *cobra.Command {
	var confirm string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account with --email and --password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if confirm == "" {
				confirm = a.opts.password
			}
			if err := a.client.Register(a.context(cmd), a.opts.email, a.opts.password, confirm, a.role()); err != nil {
				return err
			}
			a.printf("Registration successful! You can now log in.\n")
			return nil
		},
	}
	cmd.Flags().StringVar(&confirm, "confirm", "", "password confirmation (defaults to --password)")
	return cmd
}
