package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// IPRateLimiter stores a rate limiter for each client IP.
type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  *sync.RWMutex
	r   rate.Limit
	b   int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		mu:  &sync.RWMutex{},
		r:   r,
		b:   b,
	}
}

func (i *IPRateLimiter) AddIP(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter := rate.NewLimiter(i.r, i.b)
	i.ips[ip] = limiter
	return limiter
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.ips[ip]
	i.mu.RUnlock()

	if !exists {
		return i.AddIP(ip)
	}
	return limiter
}

// RateLimiter rejects clients that exceed r requests/second (burst b).
func RateLimiter(r rate.Limit, b int) fiber.Handler {
	limiter := NewIPRateLimiter(r, b)
	return func(c *fiber.Ctx) error {
		if !limiter.GetLimiter(c.IP()).Allow() {
			return c.SendStatus(fiber.StatusTooManyRequests)
		}
		return c.Next()
	}
}

type cachedResponse struct {
	status      int
	contentType []byte
	body        []byte
}

// Cache serves successful GET responses from memory for the given duration.
func Cache(store *gocache.Cache, duration time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := c.OriginalURL()
		if resp, found := store.Get(key); found {
			cached := resp.(cachedResponse)
			c.Response().Header.SetContentTypeBytes(cached.contentType)
			return c.Status(cached.status).Send(cached.body)
		}

		if err := c.Next(); err != nil {
			return err
		}

		status := c.Response().StatusCode()
		if status >= 200 && status < 300 {
			store.Set(key, cachedResponse{
				status:      status,
				contentType: append([]byte(nil), c.Response().Header.ContentType()...),
				body:        append([]byte(nil), c.Response().Body()...),
			}, duration)
		}
		return nil
	}
}
