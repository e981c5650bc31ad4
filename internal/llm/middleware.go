package llm

import (
	"context"
	"log"
	"time"
)

// Middleware decorates a Client to inject cross-cutting concerns
// (rate limiting, logging) without touching call semantics.
type Middleware func(Client) Client

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner Client, mws ...Middleware) Client {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// RateLimit throttles calls with a token bucket. If rps <= 0 the limiter is
// disabled and calls pass through untouched.
func RateLimit(rps float64, burst int) Middleware {
	return func(next Client) Client {
		return &rateLimited{next: next, rl: newRPSLimiter(rps, burst)}
	}
}

type rateLimited struct {
	next Client
	rl   *rpsLimiter
}

func (c *rateLimited) Name() string { return c.next.Name() }
func (c *rateLimited) Close() error {
	c.rl.Stop()
	return c.next.Close()
}

func (c *rateLimited) Generate(ctx context.Context, prompt string) (string, error) {
	if err := c.rl.Acquire(ctx); err != nil {
		return "", err
	}
	return c.next.Generate(ctx, prompt)
}

// Logging records call duration and outcome for each generation.
func Logging() Middleware {
	return func(next Client) Client {
		return &logged{next: next}
	}
}

type logged struct {
	next Client
}

func (c *logged) Name() string { return c.next.Name() }
func (c *logged) Close() error { return c.next.Close() }

func (c *logged) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	out, err := c.next.Generate(ctx, prompt)
	if err != nil {
		log.Printf("LLM call failed (%s) after %s: %v", c.next.Name(), time.Since(start).Round(time.Millisecond), err)
		return "", err
	}
	log.Printf("LLM call ok (%s) in %s, %d bytes", c.next.Name(), time.Since(start).Round(time.Millisecond), len(out))
	return out, nil
}
