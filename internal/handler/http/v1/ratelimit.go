package v1

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiter - ограничитель частоты запросов по ключу
type RateLimiter struct {
	limiters map[string]*limiterEntry
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

// NewRateLimiter создает ограничитель; rps <= 0 снимает ограничение
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     limit,
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := time.Now().UnixNano()

	rl.mu.RLock()
	entry, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if exists {
		entry.lastSeen.Store(now)
		return entry.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Повторная проверка после захвата блокировки на запись
	if entry, exists = rl.limiters[key]; exists {
		entry.lastSeen.Store(now)
		return entry.limiter
	}

	entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
	entry.lastSeen.Store(now)
	rl.limiters[key] = entry
	return entry.limiter
}

// Allow проверяет, можно ли пропустить запрос с данным ключом
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// Cleanup удаляет ограничители, которые не использовались дольше maxAge
func (rl *RateLimiter) Cleanup(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge).UnixNano()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for key, entry := range rl.limiters {
		if entry.lastSeen.Load() < cutoff {
			delete(rl.limiters, key)
			removed++
		}
	}
	return removed
}

// Run периодически чистит ограничители до отмены ctx
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.Cleanup(interval)
		}
	}
}

// RateLimitMiddleware ограничивает запросы по ключу, который возвращает keyFn
func RateLimitMiddleware(limiter *RateLimiter, keyFn func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(keyFn(c)) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// audioKey ограничивает поток аудио каждой сессии отдельно;
// запросы к неизвестным сессиям делят общий лимит IP
func (h *Handler) audioKey(c *gin.Context) string {
	sessionID := c.Param("session_id")
	if !h.voiceService.HasSession(sessionID) {
		return c.ClientIP()
	}
	return c.ClientIP() + "/" + sessionID
}
