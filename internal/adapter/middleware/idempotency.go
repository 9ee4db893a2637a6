package middleware

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/adapter/storage"
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Idempotency replays the first successful response for a repeated
// Idempotency-Key within the same session.
func Idempotency(kv storage.KV) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("Idempotency-Key")
		if key == "" {
			return c.Next()
		}
		storeKey := "idempotency:" + SessionID(c) + ":" + key

		raw, found, err := kv.Get(c.Context(), storeKey)
		if err != nil {
			slog.Error("❌ Failed to read Idempotency Key", "error", err, "key", key)
		}
		if found {
			var cached cachedResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				slog.Info("🛑 Idempotency Hit! Returning cached response", "key", key)
				c.Set("X-Idempotency-Hit", "true")
				c.Set(fiber.HeaderContentType, cached.ContentType)
				return c.Status(cached.Status).Send(cached.Body)
			}
		}

		if err := c.Next(); err != nil {
			return err
		}

		status := c.Response().StatusCode()
		if status < 200 || status >= 300 {
			return nil
		}

		payload, err := json.Marshal(cachedResponse{
			Status:      status,
			ContentType: string(c.Response().Header.ContentType()),
			Body:        append([]byte(nil), c.Response().Body()...),
		})
		if err != nil {
			slog.Error("❌ Failed to encode Idempotency Key", "error", err, "key", key)
			return nil
		}
		if err := kv.Put(c.Context(), storeKey, payload); err != nil {
			slog.Error("❌ Failed to save Idempotency Key", "error", err, "key", key)
		} else {
			slog.Info("💾 Idempotency Key Saved", "key", key)
		}
		return nil
	}
}
