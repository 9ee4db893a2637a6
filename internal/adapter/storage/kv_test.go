package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]KV {
	t.Helper()
	dir := t.TempDir()

	fileKV, err := NewFileKV(filepath.Join(dir, "data", "payflow.json"))
	require.NoError(t, err)

	sqliteKV, err := NewSQLiteKV(filepath.Join(dir, "payflow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteKV.Close() })

	mr := miniredis.RunT(t)
	redisKV, err := NewRedisKV(context.Background(), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { redisKV.Close() })

	kvs := map[string]KV{
		DriverMemory: NewMemoryKV(),
		DriverFile:   fileKV,
		DriverSQLite: sqliteKV,
		DriverRedis:  redisKV,
	}

	// Postgres runs only against a database set aside for tests.
	if url := os.Getenv("TEST_DATABASE_URL"); url != "" {
		pgKV, err := Open(context.Background(), Options{Driver: DriverPostgres, DatabaseURL: url})
		require.NoError(t, err)
		t.Cleanup(func() { pgKV.Close() })
		kvs[DriverPostgres] = pgKV
	} else {
		t.Log("TEST_DATABASE_URL not set, skipping postgres backend")
	}
	return kvs
}

func TestKV_Contract(t *testing.T) {
	ctx := context.Background()

	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, found, err := kv.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, kv.Put(ctx, "k", []byte(`{"a":1}`)))
			v, found, err := kv.Get(ctx, "k")
			require.NoError(t, err)
			require.True(t, found)
			assert.JSONEq(t, `{"a":1}`, string(v))

			require.NoError(t, kv.Put(ctx, "k", []byte(`[1,2]`)))
			v, _, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.JSONEq(t, `[1,2]`, string(v))

			require.NoError(t, kv.Delete(ctx, "k"))
			require.NoError(t, kv.Delete(ctx, "k"))
			_, found, err = kv.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestMemoryKV_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	value := []byte(`"abc"`)
	require.NoError(t, kv.Put(ctx, "k", value))
	value[1] = 'z'

	got, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	got[2] = 'z'

	again, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(again))
}

func TestFileKV_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "payflow.json")

	first, err := NewFileKV(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "loggedInUser", []byte(`null`)))
	require.NoError(t, first.Put(ctx, "registeredUsers", []byte(`[{"name":"Asha"}]`)))

	second, err := NewFileKV(path)
	require.NoError(t, err)
	v, found, err := second.Get(ctx, "registeredUsers")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"name":"Asha"}]`, string(v))
}

func TestFileKV_RejectsNonJSON(t *testing.T) {
	kv, err := NewFileKV(filepath.Join(t.TempDir(), "payflow.json"))
	require.NoError(t, err)

	assert.Error(t, kv.Put(context.Background(), "k", []byte("not json")))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: "etcd"})
	assert.ErrorContains(t, err, `unknown store driver "etcd"`)
}

func TestOpen_FileRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), Options{Driver: DriverFile})
	assert.Error(t, err)
}

func TestRedisKV_UsesKeyPrefix(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	kv, err := NewRedisKV(ctx, mr.Addr())
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Put(ctx, KeyLoggedInUser, []byte(`{"name":"Asha"}`)))

	raw, err := mr.Get("payflow:" + KeyLoggedInUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Asha"}`, raw)
	assert.Zero(t, mr.TTL("payflow:"+KeyLoggedInUser))
}

func TestRedisKV_UnreachableServer(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisKV(context.Background(), addr)
	assert.ErrorContains(t, err, "unable to connect to redis")
}
