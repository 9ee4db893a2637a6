package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakesh-patoju/Payment-Platform-Design-New/internal/core/domain"
)

// testRegistry builds sessions over one shared store and records the ids
// they were created for.
func testRegistry(ttl time.Duration) (*Registry, *[]string) {
	store := &fakeStore{}
	var created []string
	r := NewRegistry(func(id string) *Session {
		created = append(created, id)
		return NewSession(store, domain.DefaultCatalog(), &countingPayer{})
	}, ttl)
	return r, &created
}

func TestRegistry_AcquireCreatesAndReuses(t *testing.T) {
	r, created := testRegistry(0)

	id, first := r.Acquire("")
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	sameID, same := r.Acquire(id)
	assert.Equal(t, id, sameID)
	assert.Same(t, first, same)

	otherID, other := r.Acquire("forged-id")
	assert.NotEqual(t, "forged-id", otherID)
	assert.NotSame(t, first, other)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{id, otherID}, *created)

	got, ok := r.Get(otherID)
	assert.True(t, ok)
	assert.Same(t, other, got)
	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_ReleaseDropsSessionButKeepsID(t *testing.T) {
	r, created := testRegistry(0)

	id, first := r.Acquire("")
	r.Release(id)
	assert.Equal(t, 0, r.Len())
	_, ok := r.Get(id)
	assert.False(t, ok)

	againID, again := r.Acquire(id)
	assert.Equal(t, id, againID)
	assert.NotSame(t, first, again)
	assert.Equal(t, []string{id, id}, *created)

	r.Release("never-existed")
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_SweepExpiresIdleSessions(t *testing.T) {
	r, _ := testRegistry(30 * time.Minute)
	clock := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	idle, _ := r.Acquire("")
	active, _ := r.Acquire("")

	clock = clock.Add(20 * time.Minute)
	r.Acquire(active)
	assert.Equal(t, 0, r.Sweep())

	clock = clock.Add(15 * time.Minute)
	assert.Equal(t, 1, r.Sweep())
	_, ok := r.Get(idle)
	assert.False(t, ok)
	_, ok = r.Get(active)
	assert.True(t, ok)
}

func TestRegistry_SweepKeepsPaymentInFlight(t *testing.T) {
	ctx := context.Background()
	payer := newBlockingPayer()
	r := NewRegistry(func(string) *Session {
		return NewSession(&fakeStore{}, domain.DefaultCatalog(), payer)
	}, time.Minute)
	clock := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	id, s := r.Acquire("")
	_, err := s.Register(ctx, ashaForm)
	require.NoError(t, err)
	_, err = s.Login(ctx, domain.Credentials{EmailOrPhone: "a@x.com", Password: "p1"}, false)
	require.NoError(t, err)
	_, err = s.SelectService(domain.FasTag, fastagFields)
	require.NoError(t, err)
	require.NoError(t, s.ChoosePaymentMethod(domain.UPI))

	done := make(chan error, 1)
	go func() {
		_, err := s.SubmitPayment()
		done <- err
	}()
	<-payer.started

	clock = clock.Add(time.Hour)
	assert.Equal(t, 0, r.Sweep())
	_, ok := r.Get(id)
	assert.True(t, ok)

	close(payer.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, r.Sweep())
}

func TestRegistry_ZeroTTLNeverExpires(t *testing.T) {
	r, _ := testRegistry(0)
	r.now = func() time.Time { return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) }
	r.Acquire("")

	r.now = time.Now
	assert.Equal(t, 0, r.Sweep())
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_IdleSessionsDoNotAccumulate(t *testing.T) {
	r, _ := testRegistry(time.Minute)
	clock := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	for i := 0; i < 100; i++ {
		r.Acquire("")
	}
	assert.Equal(t, 100, r.Len())

	clock = clock.Add(2 * time.Minute)
	r.Sweep()
	assert.Equal(t, 0, r.Len())
}
