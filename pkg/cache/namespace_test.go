package cache_test

import (
	"context"
	"testing"
	"time"

	"mcal/pkg/cache"
)

func TestNamespace(t *testing.T) {
	ctx := context.Background()
	ns := cache.NewNamespace(cache.NewMemory(100, time.Minute), "occurrences", time.Minute)

	key, err := ns.Key(ctx, "2024-01-01", "2024-01-31", "all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "occurrences:0:2024-01-01:2024-01-31:all" {
		t.Errorf("unexpected key %q", key)
	}

	if err := ns.Set(ctx, key, []byte("payload")); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	got, ok, err := ns.Get(ctx, key)
	if err != nil || !ok || string(got) != "payload" {
		t.Fatalf("expected hit, got %q ok=%v err=%v", got, ok, err)
	}

	if err := ns.Bump(ctx); err != nil {
		t.Fatalf("unexpected bump error: %v", err)
	}

	next, err := ns.Key(ctx, "2024-01-01", "2024-01-31", "all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next == key {
		t.Fatalf("expected a new key after Bump, got %q", next)
	}
	if _, ok, _ := ns.Get(ctx, next); ok {
		t.Errorf("expected miss after Bump")
	}
}

func TestNilNamespace(t *testing.T) {
	ctx := context.Background()
	ns := cache.NewNamespace(nil, "occurrences", time.Minute)
	if ns != nil {
		t.Fatalf("expected nil namespace for nil cache")
	}

	if _, ok, err := ns.Get(ctx, "k"); ok || err != nil {
		t.Errorf("nil namespace must miss without error")
	}
	if err := ns.Set(ctx, "k", []byte("v")); err != nil {
		t.Errorf("nil namespace Set must be a no-op, got %v", err)
	}
	if err := ns.Bump(ctx); err != nil {
		t.Errorf("nil namespace Bump must be a no-op, got %v", err)
	}
}

func TestNamespaceGenerationOutlivesEntryTTL(t *testing.T) {
	ctx := context.Background()
	ttl := 100 * time.Millisecond
	ns := cache.NewNamespace(cache.NewMemory(16, ttl), "expanded", ttl)
	parts := []string{"2024-01-01", "2024-01-31", "all"}

	if err := ns.Bump(ctx); err != nil {
		t.Fatalf("unexpected bump error: %v", err)
	}
	time.Sleep(70 * time.Millisecond)

	before, err := ns.Key(ctx, parts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ns.Set(ctx, before, []byte("before-write")); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}

	// The generation was written more than one TTL ago, the entry was not.
	time.Sleep(50 * time.Millisecond)
	if err := ns.Bump(ctx); err != nil {
		t.Fatalf("unexpected bump error: %v", err)
	}

	after, err := ns.Key(ctx, parts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after == before {
		t.Fatalf("expected a new key after Bump, both are %q", after)
	}
	if got, ok, _ := ns.Get(ctx, after); ok {
		t.Errorf("expected miss after Bump, got %q", got)
	}
}
