package kycapi

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// tokenFetcher obtains a fresh access token and how long it stays valid.
type tokenFetcher func(ctx context.Context) (string, time.Duration, error)

// tokenCache holds the provider access token. Concurrent callers that find
// the token missing or expired share a single refresh. The refresh is not
// bound to any one caller's context, so a caller that gives up does not fail
// the others waiting on it.
type tokenCache struct {
	mu     sync.Mutex
	token  string
	expiry time.Time

	group   singleflight.Group
	fetch   tokenFetcher
	now     func() time.Time
	margin  time.Duration
	timeout time.Duration
}

func newTokenCache(fetch tokenFetcher, now func() time.Time, timeout time.Duration) *tokenCache {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &tokenCache{fetch: fetch, now: now, margin: time.Minute, timeout: timeout}
}

func (c *tokenCache) cached() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && c.now().Add(c.margin).Before(c.expiry) {
		return c.token, true
	}
	return "", false
}

// Get returns a token that is valid for at least the safety margin.
func (c *tokenCache) Get(ctx context.Context) (string, error) {
	if tok, ok := c.cached(); ok {
		return tok, nil
	}

	ch := c.group.DoChan("token", func() (any, error) {
		// a flight that finished after our check may already have refreshed
		if tok, ok := c.cached(); ok {
			return tok, nil
		}
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		tok, ttl, err := c.fetch(fetchCtx)
		if err != nil {
			return "", err
		}
		c.mu.Lock()
		c.token = tok
		c.expiry = c.now().Add(ttl)
		c.mu.Unlock()
		return tok, nil
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Invalidate drops the cached token if it is still the stale one. A token
// refreshed by another caller in the meantime is kept.
func (c *tokenCache) Invalidate(stale string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == stale {
		c.token = ""
		c.expiry = time.Time{}
	}
}
