// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"math"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/devkit-vault/internal/logger"
)

// pluginLimiter keeps one token bucket per plugin ID.
type pluginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// newPluginLimiter returns nil when perSecond is not positive, which
// disables limiting.
func newPluginLimiter(perSecond float64, burst int) *pluginLimiter {
	if perSecond <= 0 {
		return nil
	}
	return &pluginLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(perSecond),
		burst:    max(burst, 1),
	}
}

func (l *pluginLimiter) get(pluginID string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[pluginID]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[pluginID] = lim
	}
	return lim
}

func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		lim := h.limiter.get(chi.URLParam(r, pluginIDParam))
		if !lim.Allow() {
			retryAfter := math.Ceil(1 / float64(lim.Limit()))
			w.Header().Set("Retry-After", strconv.Itoa(int(max(retryAfter, 1))))
			writeError(w, logger.FromRequest(r), "*Handler.withRateLimit", ErrTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
