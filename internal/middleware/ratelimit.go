// Copyright (c) 2025-2026 BM Buzz
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// limiterCache caches one token bucket per key with double-check locking.
type limiterCache[K comparable] struct {
	limiters map[K]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

func newLimiterCache[K comparable](rps float64, burst int) *limiterCache[K] {
	return &limiterCache[K]{
		limiters: make(map[K]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

func (lc *limiterCache[K]) get(key K) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()

	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// clearIfExceeds resets the cache once it grows past maxSize, bounding
// memory against clients that rotate addresses.
func (lc *limiterCache[K]) clearIfExceeds(maxSize int) bool {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if len(lc.limiters) > maxSize {
		lc.limiters = make(map[K]*rate.Limiter)
		return true
	}
	return false
}

// Login attempt budget per client address. The shared admin password is
// all that guards the newsroom, so guessing has to stay slow.
const (
	loginRatePerSecond = 0.2 // one attempt per 5s sustained
	loginBurst         = 5
	loginCacheMax      = 10000
)

// LoginRateLimit returns middleware that throttles requests per client IP.
// Meant for the login POST route only.
func LoginRateLimit() func(http.Handler) http.Handler {
	cache := newLimiterCache[string](loginRatePerSecond, loginBurst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !cache.get(ip).Allow() {
				http.Error(w, "Too many login attempts. Try again shortly.", http.StatusTooManyRequests)
				return
			}

			cache.clearIfExceeds(loginCacheMax)
			next.ServeHTTP(w, r)
		})
	}
}
