package registry

import (
	"context"
	"sync"
	"time"

	"go.chromium.org/luci/common/clock"
	"go.chromium.org/luci/common/logging"

	"github.com/voletra/cachetrack/types"
)

// Monitor watches host heartbeats and purges hosts that go silent.
//
// Workers heartbeat the master periodically; a host that has not been heard
// from for failAfter is considered lost and its cached locations are removed
// via the registry's host-lost path. The registry remains advisory: a purge
// of a live-but-slow host costs a recompute, never a wrong answer.
type Monitor struct {
	registry  *Registry
	failAfter time.Duration

	mu       sync.Mutex
	lastSeen map[types.Host]time.Time
}

// NewMonitor creates a monitor that declares a host lost after failAfter of
// silence. Call Run to start sweeping.
func NewMonitor(r *Registry, failAfter time.Duration) *Monitor {
	return &Monitor{
		registry:  r,
		failAfter: failAfter,
		lastSeen:  make(map[types.Host]time.Time),
	}
}

// Heartbeat records that a host was heard from just now.
func (m *Monitor) Heartbeat(ctx context.Context, host types.Host) {
	now := clock.Now(ctx)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSeen[host] = now
}

// Sweep purges every host whose last heartbeat is older than failAfter and
// returns how many were purged. Exported for tests and Run.
func (m *Monitor) Sweep(ctx context.Context) int {
	now := clock.Now(ctx)

	m.mu.Lock()
	var lost []types.Host
	for host, seen := range m.lastSeen {
		if now.Sub(seen) >= m.failAfter {
			lost = append(lost, host)
			delete(m.lastSeen, host)
		}
	}
	m.mu.Unlock()

	for _, host := range lost {
		logging.Warningf(ctx, "host %s silent for %s, reporting lost", host, m.failAfter)
		m.registry.ReportHostLost(host)
	}
	return len(lost)
}

// Run sweeps at half the failure timeout until the context is canceled or
// the registry shuts down.
func (m *Monitor) Run(ctx context.Context) {
	interval := m.failAfter / 2
	for {
		if tr := clock.Sleep(ctx, interval); tr.Incomplete() {
			return
		}
		select {
		case <-m.registry.Stopped():
			return
		default:
		}
		m.Sweep(ctx)
	}
}
