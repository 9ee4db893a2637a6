package workflow

import (
	"context"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
)

// Store is the durable side of a session.
type Store interface {
	LoadAccounts(ctx context.Context) ([]domain.UserAccount, error)
	AppendAccount(ctx context.Context, acc domain.UserAccount) error
	FindAccount(ctx context.Context, match func(domain.UserAccount) bool) (*domain.UserAccount, error)
	SetLoggedInUser(ctx context.Context, user *domain.UserAccount) error
	SetRememberedCredentials(ctx context.Context, creds *domain.Credentials) error
	LoadRememberedCredentials(ctx context.Context) (*domain.Credentials, error)
}

// Payer turns a chosen method and amount into a completed payment.
type Payer interface {
	Submit(method domain.PaymentMethod, amount int64) domain.PaymentRecord
}
