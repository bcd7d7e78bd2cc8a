package middleware

import (
	"net"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// DefaultRateLimitClients es cuántos buckets por IP se mantienen en memoria.
const DefaultRateLimitClients = 10000

// RateLimiter limita requests por IP de cliente (token bucket por IP).
// Se usa en POST /adoptions; no hay reintentos del lado del servidor.
//
// La IP sale de RemoteAddr: solo refleja X-Forwarded-For si el router
// montó chimw.RealIP (trust_proxy).
type RateLimiter struct {
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// NewRateLimiter crea un limitador de perMinute requests por minuto por IP.
// perMinute <= 0 desactiva el límite.
func NewRateLimiter(perMinute int, burst int) *RateLimiter {
	return newRateLimiter(perMinute, burst, DefaultRateLimitClients)
}

func newRateLimiter(perMinute, burst, maxClients int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	if maxClients <= 0 {
		maxClients = DefaultRateLimitClients
	}
	lim := rate.Inf
	if perMinute > 0 {
		lim = rate.Every(time.Minute / time.Duration(perMinute))
	}
	// lru.New solo falla con tamaño <= 0
	cache, _ := lru.New[string, *rate.Limiter](maxClients)
	return &RateLimiter{
		limiters: cache,
		limit:    lim,
		burst:    burst,
	}
}

// limiterFor devuelve el bucket de key. Al llenarse se expulsa el cliente
// menos reciente, no se reinician los demás.
func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	if l, ok := rl.limiters.Get(key); ok {
		return l
	}
	l := rate.NewLimiter(rl.limit, rl.burst)
	if prev, ok, _ := rl.limiters.PeekOrAdd(key, l); ok {
		return prev
	}
	return l
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.limiterFor(key).Allow()
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", "60")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
