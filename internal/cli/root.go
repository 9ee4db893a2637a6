// Package cli is the payctl command line: the same checkout workflow as the
// HTTP API, one step per invocation, with login state kept in the store.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/adapter/storage"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/config"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/payment"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/workflow"
)

// Execute runs the root command
func Execute(version string) error {
	root := NewRootCmd()
	root.Version = version
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// NewRootCmd builds the payctl command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "payctl",
		Short: "payctl - demo payment checkout",
		Long: `payctl walks through the demo checkout from the terminal:
register, log in, pay for a FasTag, Education or Ferry service and print the receipt.

No real money moves. Payments are simulated.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelError
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	root.AddCommand(newRegisterCmd())
	root.AddCommand(newLoginCmd())
	root.AddCommand(newLogoutCmd())
	root.AddCommand(newAccountsCmd())
	root.AddCommand(newServicesCmd())
	root.AddCommand(newPayCmd())
	return root
}

// env is what one command invocation works against.
type env struct {
	cfg      *config.Config
	kv       storage.KV
	accounts *storage.AccountRepository
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	kv, err := storage.Open(ctx, storage.Options{
		Driver:      cfg.StoreDriver,
		DataFile:    cfg.DataFile,
		DatabaseURL: cfg.DatabaseURL,
		SQLitePath:  cfg.SQLitePath,
		RedisAddr:   cfg.RedisAddr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreDriver, err)
	}

	return &env{cfg: cfg, kv: kv, accounts: storage.NewAccountRepository(kv)}, nil
}

func (e *env) session() *workflow.Session {
	return workflow.NewSession(e.accounts, e.cfg.Catalog, payment.NewSimulator(e.cfg.PaymentDelay, e.cfg.Location))
}

func (e *env) Close() error {
	return e.kv.Close()
}

// withEnv opens the store for the length of fn.
func withEnv(cmd *cobra.Command, fn func(e *env) error) error {
	e, err := openEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if err := e.Close(); err != nil {
			slog.Error("Store close failed", "error", err)
		}
	}()
	return fn(e)
}

func printf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, format, a...)
}
