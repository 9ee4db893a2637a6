package payment

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
)

// DefaultDelay is how long the fake gateway "thinks" before approving.
const DefaultDelay = 2 * time.Second

// TimestampLayout renders e.g. "16 October 2026, 03:04:05 pm".
const TimestampLayout = "2 January 2006, 03:04:05 pm"

// Simulator stands in for a payment gateway. It never talks to the network
// and never declines a payment.
type Simulator struct {
	Delay    time.Duration
	Location *time.Location

	now   func() time.Time
	sleep func(time.Duration)
	randN func(int64) int64
}

// NewSimulator creates a simulator that waits delay before every payment.
func NewSimulator(delay time.Duration, loc *time.Location) *Simulator {
	if loc == nil {
		loc = time.Local
	}
	return &Simulator{
		Delay:    delay,
		Location: loc,
		now:      time.Now,
		sleep:    time.Sleep,
		randN:    rand.Int63n,
	}
}

// Submit blocks for the configured delay and then approves the payment.
// Every call produces a new transaction; callers must not submit the same
// checkout twice.
func (s *Simulator) Submit(method domain.PaymentMethod, amount int64) domain.PaymentRecord {
	if s.Delay > 0 {
		s.sleep(s.Delay)
	}

	now := s.now()
	return domain.PaymentRecord{
		Method:        method,
		TransactionID: fmt.Sprintf("TXN%d%d", now.UnixMilli(), s.randN(1000000)),
		Timestamp:     now.In(s.Location).Format(TimestampLayout),
	}
}
