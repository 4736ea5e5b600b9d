// Package ratelimiter keeps one token bucket per identity (IP, user id).
package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// UserRateLimiter manages rate limiting for multiple identities. Buckets
// idle for longer than the expiration are dropped.
type UserRateLimiter struct {
	mu         sync.Mutex
	limiters   map[string]*entry
	limit      rate.Limit
	burst      int
	expiration time.Duration
	now        func() time.Time
	stopCh     chan struct{}
	stopOnce   sync.Once
}

// New creates a limiter allowing rps events per second with the given burst.
func New(rps float64, burst int, expiration time.Duration) *UserRateLimiter {
	if burst < 1 {
		burst = 1
	}
	url := &UserRateLimiter{
		limiters:   make(map[string]*entry),
		limit:      rate.Limit(rps),
		burst:      burst,
		expiration: expiration,
		now:        time.Now,
		stopCh:     make(chan struct{}),
	}
	go url.cleanupLoop()
	return url
}

func OnceInSecond() *UserRateLimiter { return New(1, 1, time.Hour) }
func Rps10() *UserRateLimiter        { return New(10, 10, time.Hour) }
func Rps100() *UserRateLimiter       { return New(100, 100, time.Hour) }

// Allow checks if a request should be allowed for a given identity
func (url *UserRateLimiter) Allow(identity string) bool {
	return url.getLimiter(identity).Allow()
}

func (url *UserRateLimiter) getLimiter(identity string) *rate.Limiter {
	url.mu.Lock()
	defer url.mu.Unlock()

	now := url.now()
	if e, ok := url.limiters[identity]; ok && now.Sub(e.lastSeen) <= url.expiration {
		e.lastSeen = now
		return e.limiter
	}

	e := &entry{limiter: rate.NewLimiter(url.limit, url.burst), lastSeen: now}
	url.limiters[identity] = e
	return e.limiter
}

func (url *UserRateLimiter) cleanupLoop() {
	interval := url.expiration
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			url.evictIdle()
		case <-url.stopCh:
			return
		}
	}
}

func (url *UserRateLimiter) evictIdle() {
	url.mu.Lock()
	defer url.mu.Unlock()

	cutoff := url.now().Add(-url.expiration)
	for k, e := range url.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(url.limiters, k)
		}
	}
}

// Len is the number of tracked identities.
func (url *UserRateLimiter) Len() int {
	url.mu.Lock()
	defer url.mu.Unlock()
	return len(url.limiters)
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (url *UserRateLimiter) Stop() {
	url.stopOnce.Do(func() { close(url.stopCh) })
}
