package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// PingChecker periodically pings a component and caches the result.
type PingChecker struct {
	name    string
	pinger  HealthPinger
	healthy atomic.Int32
	timeout time.Duration
	log     zerolog.Logger
}

func NewPingChecker(name string, p HealthPinger, log zerolog.Logger) *PingChecker {
	return &PingChecker{name: name, pinger: p, timeout: 5 * time.Second, log: log}
}

func (c *PingChecker) Name() string { return c.name }

// IsHealthy returns the cached health flag.
func (c *PingChecker) IsHealthy() bool { return c.healthy.Load() == 1 }

// Start evaluates the component immediately and then on every tick until the
// context is cancelled.
func (c *PingChecker) Start(ctx context.Context, interval time.Duration) {
	eval := func() {
		pctx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		err := c.pinger.HealthPing(pctx)
		prev := c.healthy.Load()
		if err != nil {
			c.healthy.Store(0)
			if prev == 1 {
				c.log.Error().Err(err).Str("component", c.name).Msg("health check failed")
			}
			return
		}
		c.healthy.Store(1)
		if prev == 0 {
			c.log.Info().Str("component", c.name).Msg("component healthy")
		}
	}

	eval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			eval()
		}
	}
}
