package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
)

// Keys of the persisted layout.
const (
	KeyRegisteredUsers       = "registeredUsers"
	KeyLoggedInUser          = "loggedInUser"
	KeyRememberedCredentials = "rememberedCredentials"
)

// AccountRepository is the durable record of registered users, the current
// login and remembered credentials. Every read decodes fresh values, so
// callers can never reach the stored data through a returned value.
//
// Registered users are shared by everyone. The login and remembered
// credentials belong to one client; see Scoped.
type AccountRepository struct {
	kv    KV
	scope string

	// appendMu makes the duplicate check and the write one step. Scoped
	// views share it.
	appendMu *sync.Mutex
}

func NewAccountRepository(kv KV) *AccountRepository {
	return &AccountRepository{kv: kv, appendMu: &sync.Mutex{}}
}

// Scoped returns a view that shares the registered users but keeps its own
// loggedInUser and rememberedCredentials under "session:<scope>:".
func (r *AccountRepository) Scoped(scope string) *AccountRepository {
	return &AccountRepository{kv: r.kv, scope: scope, appendMu: r.appendMu}
}

func (r *AccountRepository) clientKey(key string) string {
	if r.scope == "" {
		return key
	}
	return "session:" + r.scope + ":" + key
}

// LoadAccounts returns all registered accounts in registration order.
func (r *AccountRepository) LoadAccounts(ctx context.Context) ([]domain.UserAccount, error) {
	accounts := []domain.UserAccount{}
	if _, err := r.read(ctx, KeyRegisteredUsers, &accounts); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.UserAccount{}
	}
	return accounts, nil
}

// AppendAccount adds acc unless its email or phone is already taken.
func (r *AccountRepository) AppendAccount(ctx context.Context, acc domain.UserAccount) error {
	r.appendMu.Lock()
	defer r.appendMu.Unlock()

	accounts, err := r.LoadAccounts(ctx)
	if err != nil {
		return err
	}
	for _, existing := range accounts {
		if existing.Email == acc.Email || existing.Phone == acc.Phone {
			return domain.ErrDuplicateAccount
		}
	}
	return r.write(ctx, KeyRegisteredUsers, append(accounts, acc))
}

// FindAccount returns the first account matching match.
func (r *AccountRepository) FindAccount(ctx context.Context, match func(domain.UserAccount) bool) (*domain.UserAccount, error) {
	accounts, err := r.LoadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if match(accounts[i]) {
			acc := accounts[i]
			return &acc, nil
		}
	}
	return nil, nil
}

// SetLoggedInUser records the current login; nil removes it.
func (r *AccountRepository) SetLoggedInUser(ctx context.Context, user *domain.UserAccount) error {
	if user == nil {
		return r.remove(ctx, r.clientKey(KeyLoggedInUser))
	}
	return r.write(ctx, r.clientKey(KeyLoggedInUser), user)
}

func (r *AccountRepository) LoadLoggedInUser(ctx context.Context) (*domain.UserAccount, error) {
	var user *domain.UserAccount
	if _, err := r.read(ctx, r.clientKey(KeyLoggedInUser), &user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetRememberedCredentials stores creds for autofill; nil forgets them.
func (r *AccountRepository) SetRememberedCredentials(ctx context.Context, creds *domain.Credentials) error {
	if creds == nil {
		return r.remove(ctx, r.clientKey(KeyRememberedCredentials))
	}
	return r.write(ctx, r.clientKey(KeyRememberedCredentials), creds)
}

func (r *AccountRepository) LoadRememberedCredentials(ctx context.Context) (*domain.Credentials, error) {
	var creds *domain.Credentials
	if _, err := r.read(ctx, r.clientKey(KeyRememberedCredentials), &creds); err != nil {
		return nil, err
	}
	return creds, nil
}

func (r *AccountRepository) read(ctx context.Context, key string, dst any) (bool, error) {
	raw, found, err := r.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (r *AccountRepository) write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (r *AccountRepository) remove(ctx context.Context, key string) error {
	if err := r.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
