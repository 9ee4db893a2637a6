package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
)

type recordingSender struct {
	mu       sync.Mutex
	calls    int
	failures int
	done     chan struct{}
	doneAt   int
}

func (r *recordingSender) send(url string, payload interface{}, secret string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.calls == r.doneAt {
		close(r.done)
	}
	if r.calls <= r.failures {
		return errors.New("receiver down")
	}
	return nil
}

func testEvent() PaymentEvent {
	return NewPaymentSucceeded(
		domain.UserAccount{Name: "Asha", Email: "a@x.com"},
		domain.ServiceSelection{Type: domain.Ferry, BookingNumber: "FB-1", Amount: 350},
		domain.PaymentRecord{Method: domain.UPI, TransactionID: "TXN1", Timestamp: "now"},
	)
}

func TestNewPaymentSucceeded(t *testing.T) {
	event := testEvent()
	assert.Equal(t, "payment.succeeded", event.Event)
	assert.Equal(t, int64(350), event.Data.Amount)
	assert.Equal(t, "upi", event.Data.Method)
	assert.Equal(t, domain.INR, event.Data.Currency)
}

func TestWebhookWorker_RetriesUntilDelivered(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &recordingSender{failures: 2, done: make(chan struct{}), doneAt: 3}
	w := NewWebhookWorker("http://example.invalid/hook", "")
	w.send = sender.send
	w.backoff = func(int) time.Duration { return time.Millisecond }
	w.Start(ctx)

	w.Enqueue(testEvent())

	select {
	case <-sender.done:
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was not retried")
	}
	sender.mu.Lock()
	defer sender.mu.Unlock()
	assert.Equal(t, 3, sender.calls)
}

func TestWebhookWorker_GivesUpAfterMaxAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &recordingSender{failures: 100, done: make(chan struct{}), doneAt: MaxAttempts}
	w := NewWebhookWorker("http://example.invalid/hook", "")
	w.send = sender.send
	w.backoff = func(int) time.Duration { return time.Millisecond }
	w.Start(ctx)

	w.Enqueue(testEvent())

	select {
	case <-sender.done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected MaxAttempts deliveries")
	}
	time.Sleep(50 * time.Millisecond)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	require.Equal(t, MaxAttempts, sender.calls)
}
