// Package workflow holds the checkout state machine: register, log in,
// choose a service, choose a payment method, pay, and print a receipt.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/receipt"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/security"
)

// ErrPaymentInFlight rejects any action while a payment is being processed.
var ErrPaymentInFlight = errors.New("a payment is already being processed")

// State is the in-memory state of one checkout session.
type State struct {
	User    *domain.UserAccount     `json:"user"`
	Service domain.ServiceSelection `json:"service"`
	Method  domain.PaymentMethod    `json:"method,omitempty"`
	Payment *domain.PaymentRecord   `json:"payment"`
}

func (s State) clone() State {
	out := s
	if s.User != nil {
		user := *s.User
		out.User = &user
	}
	if s.Payment != nil {
		rec := *s.Payment
		out.Payment = &rec
	}
	return out
}

// Session owns one user's walk through the checkout. Its methods are safe
// for concurrent use, but only one action runs at a time.
type Session struct {
	store   Store
	catalog domain.Catalog
	payer   Payer

	mu     sync.Mutex
	state  State
	paying bool
}

func NewSession(store Store, catalog domain.Catalog, payer Payer) *Session {
	return &Session{store: store, catalog: catalog, payer: payer}
}

// State returns a copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Step is the furthest step the session has reached.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CurrentStep(s.state)
}

// Guard applies the step guard to the current state.
func (s *Session) Guard(target Step) (Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Guard(s.state, target)
}

// Busy reports whether a payment is being processed.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paying
}

// Catalog lists the services this session can buy.
func (s *Session) Catalog() domain.Catalog {
	return s.catalog
}

// Register validates form and appends the new account. All field problems
// come back together in a domain.ValidationError; an email or phone that is
// already taken is reported on the email field.
func (s *Session) Register(ctx context.Context, form RegistrationForm) (domain.UserAccount, error) {
	errs := form.validate()

	existing, err := s.store.FindAccount(ctx, func(u domain.UserAccount) bool {
		return u.Email == form.Email || u.Phone == form.Phone
	})
	if err != nil {
		return domain.UserAccount{}, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		errs[FieldEmail] = "Email or phone already registered"
	}
	if err := errs.Err(); err != nil {
		return domain.UserAccount{}, err
	}

	acc := form.account()
	if err := s.store.AppendAccount(ctx, acc); err != nil {
		if errors.Is(err, domain.ErrDuplicateAccount) {
			return domain.UserAccount{}, domain.ValidationError{FieldEmail: "Email or phone already registered"}
		}
		return domain.UserAccount{}, fmt.Errorf("register: %w", err)
	}
	return acc, nil
}

// Login authenticates by email or phone plus password. On failure the state
// is left untouched and domain.ErrInvalidCredentials is returned whichever
// half was wrong. On success any previous checkout data is discarded.
func (s *Session) Login(ctx context.Context, creds domain.Credentials, remember bool) (domain.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paying {
		return domain.UserAccount{}, ErrPaymentInFlight
	}

	errs := domain.ValidationError{}
	if strings.TrimSpace(creds.EmailOrPhone) == "" {
		errs.Add(FieldEmailOrPhone, "Please fill in all fields")
	}
	if creds.Password == "" {
		errs.Add(FieldPassword, "Please fill in all fields")
	}
	if err := errs.Err(); err != nil {
		return domain.UserAccount{}, err
	}

	user, err := s.store.FindAccount(ctx, func(u domain.UserAccount) bool {
		return (u.Email == creds.EmailOrPhone || u.Phone == creds.EmailOrPhone) &&
			security.MatchPassword(u.Password, creds.Password)
	})
	if err != nil {
		return domain.UserAccount{}, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return domain.UserAccount{}, domain.ErrInvalidCredentials
	}

	if err := s.store.SetLoggedInUser(ctx, user); err != nil {
		return domain.UserAccount{}, fmt.Errorf("login: %w", err)
	}
	var remembered *domain.Credentials
	if remember {
		remembered = &creds
	}
	if err := s.store.SetRememberedCredentials(ctx, remembered); err != nil {
		return domain.UserAccount{}, fmt.Errorf("login: %w", err)
	}

	s.state = State{User: user}
	return *user, nil
}

// RememberedCredentials returns the autofill credentials saved by an earlier
// login, if any.
func (s *Session) RememberedCredentials(ctx context.Context) (*domain.Credentials, error) {
	return s.store.LoadRememberedCredentials(ctx)
}

// SelectService validates fields for t and, when they are all valid, makes
// it the current selection. Choosing a service always starts a fresh
// checkout, so any chosen method or earlier payment is dropped.
func (s *Session) SelectService(t domain.ServiceType, fields map[string]string) (domain.ServiceSelection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StepAuthenticated); err != nil {
		return domain.ServiceSelection{}, err
	}

	sel, errs := buildSelection(s.catalog, t, fields)
	if err := errs.Err(); err != nil {
		return domain.ServiceSelection{}, err
	}

	s.state.Service = sel
	s.state.Method = ""
	s.state.Payment = nil
	return sel, nil
}

// ChoosePaymentMethod records the method for the current checkout. It can be
// changed until the payment is submitted.
func (s *Session) ChoosePaymentMethod(method domain.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireOpenCheckout(StepServiceChosen); err != nil {
		return err
	}
	if !method.Valid() {
		return domain.ValidationError{FieldMethod: "Please select a payment method"}
	}
	s.state.Method = method
	return nil
}

// SubmitPayment runs the simulated payment for the current checkout and
// completes it. The session lock is not held while the payer works, but
// every other action is refused with ErrPaymentInFlight until it finishes.
func (s *Session) SubmitPayment() (domain.PaymentRecord, error) {
	s.mu.Lock()
	if err := s.requireOpenCheckout(StepPaymentChosen); err != nil {
		s.mu.Unlock()
		return domain.PaymentRecord{}, err
	}
	method, amount := s.state.Method, s.state.Service.Amount
	s.paying = true
	s.mu.Unlock()

	rec := s.payer.Submit(method, amount)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.paying = false
	s.state.Payment = &rec
	return rec, nil
}

// Receipt renders the receipt of the completed checkout.
func (s *Session) Receipt() (text string, fileName string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.require(StepCompleted); err != nil {
		return "", "", err
	}
	return receipt.Format(*s.state.User, s.state.Service, *s.state.Payment), receipt.FileName(*s.state.Payment), nil
}

// Logout clears the session and the persisted login. Remembered credentials
// are kept for the next login.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paying {
		return ErrPaymentInFlight
	}
	s.state = State{}
	if err := s.store.SetLoggedInUser(ctx, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// require must be called with s.mu held.
func (s *Session) require(step Step) error {
	if s.paying {
		return ErrPaymentInFlight
	}
	if _, redirect := Guard(s.state, step); redirect {
		return &StepGuardViolation{Required: step, Redirect: CurrentStep(s.state)}
	}
	return nil
}

// requireOpenCheckout is require plus a check that the checkout has not been
// paid yet; a completed checkout stays on its confirmation.
func (s *Session) requireOpenCheckout(step Step) error {
	if err := s.require(step); err != nil {
		return err
	}
	if s.state.Payment != nil {
		return &StepGuardViolation{Required: step, Redirect: StepCompleted}
	}
	return nil
}
