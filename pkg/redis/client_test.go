package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pedrolima/coffee-delivery-backend/pkg/config"
)

func configRedis(url string) config.RedisConfig {
	return config.RedisConfig{URL: url}
}

func TestFetchReportsAbsenceWithoutError(t *testing.T) {
	ctx := context.Background()
	client := &Client{store: newMockCmdable()}

	_, found, err := client.Fetch(ctx, client.CartKey())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected missing key to report found=false")
	}

	if err := client.Set(ctx, client.CartKey(), `[{"id":1,"quantity":2}]`, 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	value, found, err := client.Fetch(ctx, client.CartKey())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatal("expected key to be found after set")
	}
	if value != `[{"id":1,"quantity":2}]` {
		t.Fatalf("unexpected value %q", value)
	}
}

func TestDelRemovesKey(t *testing.T) {
	ctx := context.Background()
	client := &Client{store: newMockCmdable()}

	if err := client.Set(ctx, client.LastOrderKey(), "{}", 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := client.Del(ctx, client.LastOrderKey()); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	if _, found, _ := client.Fetch(ctx, client.LastOrderKey()); found {
		t.Fatal("expected key to be gone after del")
	}
}

func TestStorefrontKeysAreNamespaced(t *testing.T) {
	client := &Client{}
	if got := client.CartKey(); got != "coffee:cart" {
		t.Fatalf("unexpected cart key %q", got)
	}
	if got := client.LastOrderKey(); got != "coffee:last_order" {
		t.Fatalf("unexpected order key %q", got)
	}
	if got := client.SelectedCityKey(); got != "coffee:selected_city" {
		t.Fatalf("unexpected city key %q", got)
	}
}

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(configRedis("")); err == nil {
		t.Fatal("expected error when neither url nor address is set")
	}
	opts, err := optionsFromConfig(configRedis("redis://localhost:6379/2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.DB != 2 {
		t.Fatalf("expected db 2 from url, got %d", opts.DB)
	}
}

type mockCmdable struct {
	data map[string]string
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{data: make(map[string]string)}
}

func (m *mockCmdable) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(m.data, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
