package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/workflow"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login [email-or-phone]",
		Short: "Log in with email or phone",
		Long: `Log in with email or phone and password.

With no arguments the credentials saved by an earlier "login --remember" are used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLogin,
	}

	cmd.Flags().String("password", "", "Password")
	cmd.Flags().Bool("remember", false, "Remember these credentials for next time")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the logged in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(e *env) error {
				if err := e.session().Logout(cmd.Context()); err != nil {
					return err
				}
				printf(cmd.OutOrStdout(), "Logged out.\n")
				return nil
			})
		},
	}
}

func runLogin(cmd *cobra.Command, args []string) error {
	password, _ := cmd.Flags().GetString("password")
	remember, _ := cmd.Flags().GetBool("remember")

	return withEnv(cmd, func(e *env) error {
		var login string
		if len(args) > 0 {
			login = args[0]
		}
		session := e.session()
		user, err := logIn(cmd, session, login, password, remember)
		if err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "Welcome, %s!\n", user.Name)
		return nil
	})
}

// errNoCredentials means neither flags nor remembered credentials were given.
var errNoCredentials = errors.New("no credentials given and none remembered; pass email-or-phone and --password")

// logIn logs session in with the given credentials, falling back to the
// remembered ones when login or password is empty. Remembered credentials
// stay remembered.
func logIn(cmd *cobra.Command, session *workflow.Session, login, password string, remember bool) (domain.UserAccount, error) {
	if login == "" || password == "" {
		saved, err := session.RememberedCredentials(cmd.Context())
		if err != nil {
			return domain.UserAccount{}, err
		}
		if saved == nil || (login != "" && login != saved.EmailOrPhone) {
			return domain.UserAccount{}, errNoCredentials
		}
		login, password, remember = saved.EmailOrPhone, saved.Password, true
	}

	return session.Login(cmd.Context(), domain.Credentials{EmailOrPhone: login, Password: password}, remember)
}
