package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/notifications"
)

// MaxAttempts is how many deliveries are tried before a job is dropped.
const MaxAttempts = 5

// PaymentEvent is the payload sent to the webhook receiver.
type PaymentEvent struct {
	Event string           `json:"event"`
	Data  PaymentEventData `json:"data"`
}

type PaymentEventData struct {
	TransactionID string             `json:"transaction_id"`
	Method        string             `json:"method"`
	Amount        int64              `json:"amount"`
	Currency      domain.Currency    `json:"currency"`
	Service       domain.ServiceType `json:"service"`
	CustomerEmail string             `json:"customer_email"`
	Timestamp     string             `json:"timestamp"`
	Status        string             `json:"status"`
}

// NewPaymentSucceeded builds the event for a completed checkout.
func NewPaymentSucceeded(user domain.UserAccount, sel domain.ServiceSelection, rec domain.PaymentRecord) PaymentEvent {
	return PaymentEvent{
		Event: "payment.succeeded",
		Data: PaymentEventData{
			TransactionID: rec.TransactionID,
			Method:        string(rec.Method),
			Amount:        sel.Amount,
			Currency:      domain.INR,
			Service:       sel.Type,
			CustomerEmail: user.Email,
			Timestamp:     rec.Timestamp,
			Status:        "COMPLETED",
		},
	}
}

type job struct {
	event    PaymentEvent
	attempts int
}

// WebhookWorker delivers payment events in the background and retries
// failures with a growing delay.
type WebhookWorker struct {
	url    string
	secret string
	queue  chan job

	send    func(url string, payload interface{}, secret string) error
	backoff func(attempts int) time.Duration
}

func NewWebhookWorker(url, secret string) *WebhookWorker {
	return &WebhookWorker{
		url:     url,
		secret:  secret,
		queue:   make(chan job, 100),
		send:    notifications.SendWebhook,
		backoff: func(attempts int) time.Duration { return time.Duration(attempts*10+10) * time.Second },
	}
}

// Enqueue schedules delivery. It never blocks; when the queue is full the
// event is dropped and logged.
func (w *WebhookWorker) Enqueue(event PaymentEvent) {
	select {
	case w.queue <- job{event: event}:
	default:
		slog.Error("Worker: queue full, dropping event", "transaction_id", event.Data.TransactionID)
	}
}

// Start runs the delivery loop until ctx is cancelled.
func (w *WebhookWorker) Start(ctx context.Context) {
	go func() {
		slog.Info("👷 Webhook Worker started", "url", w.url)
		for {
			select {
			case <-ctx.Done():
				slog.Info("Webhook Worker stopped")
				return
			case j := <-w.queue:
				w.process(ctx, j)
			}
		}
	}()
}

func (w *WebhookWorker) process(ctx context.Context, j job) {
	txID := j.event.Data.TransactionID
	slog.Info("Worker: Processing job", "url", w.url, "transaction_id", txID)

	err := w.send(w.url, j.event, w.secret)
	if err == nil {
		slog.Info("✅ Worker: Webhook Sent Successfully!", "transaction_id", txID)
		return
	}

	j.attempts++
	slog.Error("Worker: Webhook failed", "error", err, "attempts", j.attempts)
	if j.attempts >= MaxAttempts {
		slog.Error("Worker: Job marked as FAILED (Max attempts reached)", "transaction_id", txID)
		return
	}

	delay := w.backoff(j.attempts)
	slog.Info("Worker: Scheduled retry", "next_run", time.Now().Add(delay))
	time.AfterFunc(delay, func() {
		if ctx.Err() != nil {
			return
		}
		select {
		case w.queue <- j:
		case <-ctx.Done():
		}
	})
}
