package server_test

import (
	"context"
	"net"
	"testing"
	"time"

	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"github.com/voletra/cachetrack/client"
	"github.com/voletra/cachetrack/registry"
	"github.com/voletra/cachetrack/server"
	"github.com/voletra/cachetrack/types"
)

// startServer brings up a registry behind a real TCP listener and returns a
// client dialed at it. Everything is torn down when the test finishes.
func startServer(t *ftt.Test, ctx context.Context) (*registry.Registry, *client.Client) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	assert.Loosely(t, err, should.BeNil)

	r := registry.New(ctx)
	srv := server.New(r, nil)
	go srv.Start(ctx, lis)
	t.Cleanup(srv.Stop)

	cl, err := client.Dial(types.Config{
		Host:         "worker-a:7000",
		RegistryAddr: lis.Addr().String(),
	})
	assert.Loosely(t, err, should.BeNil)
	t.Cleanup(func() { cl.Close() })
	return r, cl
}

// waitFor polls cond until it holds or the deadline passes. Used to observe
// the effects of fire-and-forget reports.
func waitFor(t *ftt.Test, cond func() bool) {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not reached in time")
}

func TestServer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ftt.Run(`register, report, snapshot round trip`, t, func(t *ftt.Test) {
		_, cl := startServer(t, ctx)

		assert.Loosely(t, cl.RegisterDataset(ctx, 1, 3), should.BeNil)
		assert.Loosely(t, cl.ReportAdded(ctx, 1, 0), should.BeNil)
		assert.Loosely(t, cl.ReportAdded(ctx, 1, 2), should.BeNil)

		snap, err := cl.Snapshot(ctx)
		assert.Loosely(t, err, should.BeNil)
		assert.Loosely(t, snap, should.HaveLength(1))
		assert.Loosely(t, snap[1], should.HaveLength(3))
		assert.Loosely(t, snap[1][0].Has("worker-a:7000"), should.BeTrue)
		assert.Loosely(t, snap[1][1].Len(), should.BeZero)
		assert.Loosely(t, snap[1][2].Has("worker-a:7000"), should.BeTrue)
	})

	ftt.Run(`negative partition counts are rejected at the wire`, t, func(t *ftt.Test) {
		_, cl := startServer(t, ctx)
		assert.Loosely(t, cl.RegisterDataset(ctx, 1, -1), should.ErrLike("negative partition count"))
	})

	ftt.Run(`dropped reports land without blocking the caller`, t, func(t *ftt.Test) {
		_, cl := startServer(t, ctx)

		assert.Loosely(t, cl.RegisterDataset(ctx, 1, 2), should.BeNil)
		assert.Loosely(t, cl.ReportAdded(ctx, 1, 0), should.BeNil)

		cl.ReportDropped(ctx, 1, 0)
		waitFor(t, func() bool {
			snap, err := cl.Snapshot(ctx)
			return err == nil && snap[1][0].Len() == 0
		})
	})

	ftt.Run(`host loss purges every dataset`, t, func(t *ftt.Test) {
		_, cl := startServer(t, ctx)

		assert.Loosely(t, cl.RegisterDataset(ctx, 1, 2), should.BeNil)
		assert.Loosely(t, cl.RegisterDataset(ctx, 2, 1), should.BeNil)
		assert.Loosely(t, cl.ReportAdded(ctx, 1, 1), should.BeNil)
		assert.Loosely(t, cl.ReportAdded(ctx, 2, 0), should.BeNil)

		cl.ReportHostLost(ctx, "worker-a:7000")
		waitFor(t, func() bool {
			snap, err := cl.Snapshot(ctx)
			return err == nil && snap[1][1].Len() == 0 && snap[2][0].Len() == 0
		})
	})

	ftt.Run(`shutdown makes the service unavailable`, t, func(t *ftt.Test) {
		r, cl := startServer(t, ctx)

		assert.Loosely(t, cl.Shutdown(ctx), should.BeNil)
		<-r.Stopped()

		assert.Loosely(t, cl.RegisterDataset(ctx, 1, 2), should.ErrLike("location registry is stopped"))
		_, err := cl.Snapshot(ctx)
		assert.Loosely(t, err, should.ErrLike("location registry is stopped"))
	})
}
