package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type flakyPinger struct{ fail atomic.Bool }

func (p *flakyPinger) HealthPing(context.Context) error {
	if p.fail.Load() {
		return errors.New("down")
	}
	return nil
}

func TestPingCheckerTracksComponentHealth(t *testing.T) {
	p := &flakyPinger{}
	c := NewPingChecker("store", p, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Start(ctx, 10*time.Millisecond)

	waitFor(t, func() bool { return c.IsHealthy() }, "checker should report healthy")

	p.fail.Store(true)
	waitFor(t, func() bool { return !c.IsHealthy() }, "checker should report unhealthy after failures")

	p.fail.Store(false)
	waitFor(t, func() bool { return c.IsHealthy() }, "checker should recover")
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}
