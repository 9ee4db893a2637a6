package cli

import (
	"github.com/spf13/cobra"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/workflow"
)

func newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE:  runRegister,
	}

	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("phone", "", "10-digit phone number")
	cmd.Flags().String("password", "", "Password")
	cmd.Flags().String("confirm-password", "", "Password again (defaults to --password)")
	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	form := workflow.RegistrationForm{}
	form.Name, _ = cmd.Flags().GetString("name")
	form.Email, _ = cmd.Flags().GetString("email")
	form.Phone, _ = cmd.Flags().GetString("phone")
	form.Password, _ = cmd.Flags().GetString("password")
	form.ConfirmPassword, _ = cmd.Flags().GetString("confirm-password")
	if !cmd.Flags().Changed("confirm-password") {
		form.ConfirmPassword = form.Password
	}

	return withEnv(cmd, func(e *env) error {
		acc, err := e.session().Register(cmd.Context(), form)
		if err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "Registration successful! Please log in, %s.\n", acc.Name)
		return nil
	})
}
