package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_DRIVER", "PAYMENT_DELAY", "SESSION_TTL", "PRICING_FILE", "TIMEZONE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "file", cfg.StoreDriver)
	assert.Equal(t, 2*time.Second, cfg.PaymentDelay)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, domain.DefaultCatalog(), cfg.Catalog)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("PAYMENT_DELAY", "150ms")
	t.Setenv("SESSION_TTL", "0s")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("PRICING_FILE", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, 150*time.Millisecond, cfg.PaymentDelay)
	assert.Zero(t, cfg.SessionTTL)
	assert.Equal(t, time.UTC, cfg.Location)
}

func TestFromEnv_BadDelay(t *testing.T) {
	t.Setenv("PAYMENT_DELAY", "soon")
	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnv_BadSessionTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "-5m")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "SESSION_TTL")
}

func TestLoadPricing_EditableFasTagOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
services:
  fastag:
    editable: true
    min_amount: 50
  education:
    enabled: false
  ferry:
    enabled: false
`), 0o644))

	catalog, err := LoadPricing(path)
	require.NoError(t, err)

	offers := catalog.Offers()
	require.Len(t, offers, 1)
	assert.Equal(t, domain.FasTag, offers[0].Type)
	assert.True(t, offers[0].Editable)
	assert.Equal(t, int64(50), offers[0].MinAmount)
}

func TestParsePricing_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown service": "services:\n  parking:\n    price: 10\n",
		"zero price":      "services:\n  ferry:\n    price: 0\n",
		"editable no min": "services:\n  fastag:\n    editable: true\n    min_amount: 0\n",
		"everything off":  "services:\n  fastag: {enabled: false}\n  education: {enabled: false}\n  ferry: {enabled: false}\n",
		"not yaml at all": "services: [",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePricing([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestParsePricing_PriceChange(t *testing.T) {
	catalog, err := ParsePricing([]byte("services:\n  ferry:\n    price: 400\n    title: Ferry Ticket\n"))
	require.NoError(t, err)

	offer, ok := catalog.Offer(domain.Ferry)
	require.True(t, ok)
	assert.Equal(t, int64(400), offer.Price)
	assert.Equal(t, "Ferry Ticket", offer.Name)
}
