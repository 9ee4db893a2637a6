package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
)

// fakeStore is an in-memory Store with failure injection.
type fakeStore struct {
	mu         sync.Mutex
	accounts   []domain.UserAccount
	loggedIn   *domain.UserAccount
	remembered *domain.Credentials
	failWith   error
}

func (f *fakeStore) LoadAccounts(context.Context) ([]domain.UserAccount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	return append([]domain.UserAccount(nil), f.accounts...), nil
}

func (f *fakeStore) AppendAccount(_ context.Context, acc domain.UserAccount) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	for _, u := range f.accounts {
		if u.Email == acc.Email || u.Phone == acc.Phone {
			return domain.ErrDuplicateAccount
		}
	}
	f.accounts = append(f.accounts, acc)
	return nil
}

func (f *fakeStore) FindAccount(ctx context.Context, match func(domain.UserAccount) bool) (*domain.UserAccount, error) {
	accounts, err := f.LoadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range accounts {
		if match(u) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) SetLoggedInUser(_ context.Context, user *domain.UserAccount) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loggedIn = user
	return nil
}

func (f *fakeStore) SetRememberedCredentials(_ context.Context, creds *domain.Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.remembered = creds
	return nil
}

func (f *fakeStore) LoadRememberedCredentials(context.Context) (*domain.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.remembered, nil
}

// countingPayer approves instantly with sequential ids.
type countingPayer struct {
	mu    sync.Mutex
	calls int
}

func (p *countingPayer) Submit(method domain.PaymentMethod, amount int64) domain.PaymentRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return domain.PaymentRecord{
		Method:        method,
		TransactionID: fmt.Sprintf("TXN%d", p.calls),
		Timestamp:     "16 October 2026, 03:04:05 pm",
	}
}

// blockingPayer waits on release before approving.
type blockingPayer struct {
	started chan struct{}
	release chan struct{}
}

func newBlockingPayer() *blockingPayer {
	return &blockingPayer{started: make(chan struct{}), release: make(chan struct{})}
}

func (p *blockingPayer) Submit(method domain.PaymentMethod, amount int64) domain.PaymentRecord {
	close(p.started)
	<-p.release
	return domain.PaymentRecord{Method: method, TransactionID: "TXN-blocking", Timestamp: "now"}
}

var errStoreDown = errors.New("store down")
