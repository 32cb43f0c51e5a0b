package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type limitedClient struct {
	next    Client
	limiter *rate.Limiter
}

// WithRateLimit paces calls to next at rps per second with a burst of one.
// The limiter is shared by every goroutine using the returned client.
func WithRateLimit(next Client, rps float64) Client {
	return &limitedClient{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

func (c *limitedClient) Query(ctx context.Context, prompt, model string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}
	return c.next.Query(ctx, prompt, model)
}
