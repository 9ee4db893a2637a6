package storage

import (
	"context"
	"fmt"
)

// KV is the durable key-value backend behind the account repository.
// Get returns found=false (and no error) for a missing key.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
)

// Options selects and configures a KV backend.
type Options struct {
	Driver      string
	DataFile    string
	DatabaseURL string
	SQLitePath  string
	RedisAddr   string
}

// Open connects the backend named by opts.Driver.
func Open(ctx context.Context, opts Options) (KV, error) {
	switch opts.Driver {
	case DriverMemory:
		return NewMemoryKV(), nil
	case DriverFile, "":
		return NewFileKV(opts.DataFile)
	case DriverPostgres:
		pool, err := ConnectDB(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return NewPostgresKV(ctx, pool)
	case DriverSQLite:
		return NewSQLiteKV(opts.SQLitePath)
	case DriverRedis:
		return NewRedisKV(ctx, opts.RedisAddr)
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
