package cache

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Namespace groups keys under a generation counter so that every key of the
// namespace can be invalidated with a single Bump.
type Namespace struct {
	c    Cache
	name string
	ttl  time.Duration
}

// NewNamespace returns a Namespace over c. A nil c yields a nil Namespace,
// whose methods are no-ops.
func NewNamespace(c Cache, name string, ttl time.Duration) *Namespace {
	if c == nil {
		return nil
	}
	return &Namespace{c: c, name: name, ttl: ttl}
}

func (n *Namespace) generationKey() string {
	return n.name + ":generation"
}

// Key builds the current-generation key for parts.
func (n *Namespace) Key(ctx context.Context, parts ...string) (string, error) {
	raw, ok, err := n.c.Get(ctx, n.generationKey())
	if err != nil {
		return "", fmt.Errorf("cache: read generation: %w", err)
	}

	gen := int64(0)
	if ok {
		if gen, err = strconv.ParseInt(string(raw), 10, 64); err != nil {
			return "", fmt.Errorf("cache: parse generation: %w", err)
		}
	}
	return fmt.Sprintf("%s:%d:%s", n.name, gen, strings.Join(parts, ":")), nil
}

// Get reads key. A nil Namespace always misses.
func (n *Namespace) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if n == nil {
		return nil, false, nil
	}
	return n.c.Get(ctx, key)
}

// Set stores value under key with the namespace TTL.
func (n *Namespace) Set(ctx context.Context, key string, value []byte) error {
	if n == nil {
		return nil
	}
	return n.c.Set(ctx, key, value, n.ttl)
}

// Bump invalidates every key built before the call.
func (n *Namespace) Bump(ctx context.Context) error {
	if n == nil {
		return nil
	}
	_, err := n.c.Incr(ctx, n.generationKey())
	return err
}
