package cli

import (
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
)

func newAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List registered accounts",
		Args:  cobra.NoArgs,
		RunE:  runAccounts,
	}
}

func newServicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List the services on offer",
		Args:  cobra.NoArgs,
		RunE:  runServices,
	}
}

func runAccounts(cmd *cobra.Command, args []string) error {
	return withEnv(cmd, func(e *env) error {
		accounts, err := e.accounts.LoadAccounts(cmd.Context())
		if err != nil {
			return err
		}
		current, err := e.accounts.LoadLoggedInUser(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(accounts) == 0 {
			printf(out, "No accounts registered.\n")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		printf(w, "\tNAME\tEMAIL\tPHONE\n")
		for _, acc := range accounts {
			marker := ""
			if current != nil && current.Email == acc.Email {
				marker = "*"
			}
			printf(w, "%s\t%s\t%s\t%s\n", marker, acc.Name, acc.Email, acc.Phone)
		}
		return w.Flush()
	})
}

func runServices(cmd *cobra.Command, args []string) error {
	return withEnv(cmd, func(e *env) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		printf(w, "ID\tSERVICE\tAMOUNT\tDESCRIPTION\n")
		for _, offer := range e.cfg.Catalog.Offers() {
			amount := domain.Rupees(offer.Price).String()
			if offer.Editable {
				amount = "min " + domain.Rupees(offer.MinAmount).String()
			}
			printf(w, "%s\t%s\t%s\t%s\n", offer.Type, offer.Name, amount, offer.Description)
		}
		return w.Flush()
	})
}
