// Package client is the worker-side handle to the master's location
// registry.
package client

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"go.chromium.org/luci/common/clock"
	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"

	pb "github.com/voletra/cachetrack/proto"
	"github.com/voletra/cachetrack/types"
)

// fire-and-forget reports still need to finish eventually; this bounds how
// long the background send may linger.
const fireAndForgetTimeout = 10 * time.Second

// Client wraps one connection to the registry. Request/reply methods block
// for the registry's acknowledgment with no timeout of their own: a caller
// wanting a bound passes a context with one.
type Client struct {
	host types.Host
	conn *grpc.ClientConn
	stub pb.LocationRegistryClient
}

// Dial connects to the registry endpoint named by cfg. The connection is lazy
// (gRPC connects on first use), so Dial does not verify the master is up.
func Dial(cfg types.Config) (*Client, error) {
	conn, err := grpc.NewClient(cfg.RegistryAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, errors.Annotate(err, "dialing registry at %s", cfg.RegistryAddr).Err()
	}
	return &Client{host: cfg.Host, conn: conn, stub: pb.NewLocationRegistryClient(conn)}, nil
}

// Close releases the connection. Pending fire-and-forget sends may fail.
func (c *Client) Close() error {
	return c.conn.Close()
}

// RegisterDataset blocks until the registry has allocated the dataset's
// location slots.
func (c *Client) RegisterDataset(ctx context.Context, id types.DatasetID, numPartitions int) error {
	_, err := c.stub.RegisterDataset(ctx, &pb.RegisterDatasetRequest{
		DatasetId:     int64(id),
		NumPartitions: int32(numPartitions),
	})
	return errors.Annotate(err, "registering dataset %d", id).Err()
}

// ReportAdded records this host as a location for the partition and blocks
// for the registry's acknowledgment.
func (c *Client) ReportAdded(ctx context.Context, id types.DatasetID, partition int) error {
	_, err := c.stub.ReportAdded(ctx, &pb.ReportAddedRequest{
		DatasetId: int64(id),
		Partition: int32(partition),
		Host:      string(c.host),
	})
	return errors.Annotate(err, "reporting dataset %d partition %d added", id, partition).Err()
}

// ReportDropped tells the registry this host no longer caches the partition.
// Fire-and-forget: the RPC runs on a background goroutine and failures are
// only logged, since eviction must never block on the network.
func (c *Client) ReportDropped(ctx context.Context, id types.DatasetID, partition int) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(ctx, fireAndForgetTimeout)
		defer cancel()
		_, err := c.stub.ReportDropped(ctx, &pb.ReportDroppedRequest{
			DatasetId: int64(id),
			Partition: int32(partition),
			Host:      string(c.host),
		})
		if err != nil {
			logging.Warningf(ctx, "dropped-location report for dataset %d partition %d failed: %s", id, partition, err)
		}
	}()
}

// ReportHostLost tells the registry to purge a host everywhere.
// Fire-and-forget, like ReportDropped.
func (c *Client) ReportHostLost(ctx context.Context, host types.Host) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(ctx, fireAndForgetTimeout)
		defer cancel()
		if _, err := c.stub.ReportHostLost(ctx, &pb.ReportHostLostRequest{Host: string(host)}); err != nil {
			logging.Warningf(ctx, "host-lost report for %s failed: %s", host, err)
		}
	}()
}

// Snapshot fetches a copy of the whole location table.
func (c *Client) Snapshot(ctx context.Context) (types.LocationMap, error) {
	resp, err := c.stub.Snapshot(ctx, &pb.SnapshotRequest{})
	if err != nil {
		return nil, errors.Annotate(err, "fetching locations snapshot").Err()
	}
	return fromProtoSnapshot(resp), nil
}

// Shutdown stops the registry permanently and blocks for its final ack.
func (c *Client) Shutdown(ctx context.Context) error {
	_, err := c.stub.Shutdown(ctx, &pb.ShutdownRequest{})
	return errors.Annotate(err, "shutting down registry").Err()
}

// RunHeartbeats announces this host to the master every interval until the
// context is canceled. Run it on workers whose master tracks liveness.
func (c *Client) RunHeartbeats(ctx context.Context, interval time.Duration) {
	for {
		if tr := clock.Sleep(ctx, interval); tr.Incomplete() {
			return
		}
		rctx, cancel := context.WithTimeout(ctx, interval)
		_, err := c.stub.Heartbeat(rctx, &pb.HeartbeatRequest{Host: string(c.host)})
		cancel()
		if err != nil {
			logging.Warningf(ctx, "heartbeat to registry failed: %s", err)
		}
	}
}

// --- proto <-> types conversion helpers ---

func fromProtoSnapshot(resp *pb.SnapshotResponse) types.LocationMap {
	m := make(types.LocationMap, len(resp.Datasets))
	for _, dl := range resp.Datasets {
		locs := make(types.Locations, len(dl.Partitions))
		for i, ph := range dl.Partitions {
			locs[i] = stringset.NewFromSlice(ph.Hosts...)
		}
		m[types.DatasetID(dl.DatasetId)] = locs
	}
	return m
}
