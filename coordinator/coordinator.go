// Package coordinator is the per-process facade over the partition cache and
// the cluster's location registry.
//
// A process creates exactly one Coordinator. Callers ask it for partitions;
// it serves local cache hits directly, arbitrates concurrent misses so each
// partition is computed at most once per process, and keeps the master's
// location table informed of what this process caches.
package coordinator

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"

	"github.com/voletra/cachetrack/store"
	"github.com/voletra/cachetrack/types"
)

// ErrStopped is returned by operations issued after Stop.
var ErrStopped = errors.New("cache coordinator is stopped")

// RegistryClient is the coordinator's handle to the master's registry.
// Implemented by client.Client over gRPC; tests substitute fakes.
type RegistryClient interface {
	RegisterDataset(ctx context.Context, id types.DatasetID, numPartitions int) error
	ReportAdded(ctx context.Context, id types.DatasetID, partition int) error
	ReportDropped(ctx context.Context, id types.DatasetID, partition int)
	Snapshot(ctx context.Context) (types.LocationMap, error)
	Shutdown(ctx context.Context) error
}

// Dataset is the compute contract the surrounding evaluation engine
// implements. Compute may be arbitrarily expensive and may itself recurse
// into GetOrCompute for upstream datasets, so the coordinator never assumes
// it is cheap or side-effect free.
type Dataset interface {
	ID() types.DatasetID
	NumPartitions() int
	Compute(ctx context.Context, partition int) ([]types.Record, error)
}

// Coordinator mediates between local computation, the local partition store
// and the remote location registry.
type Coordinator struct {
	cfg    types.Config
	client RegistryClient
	store  *store.Store

	// deduplicates concurrent local computations per partition key; waiters
	// observe the winner's value or failure directly
	inflight singleflight.Group

	// guards registered and stopped, independent of the in-flight guard
	mu         sync.Mutex
	registered map[types.DatasetID]struct{}
	stopped    bool
}

// New builds the process's coordinator. The store it creates is wired so
// evictions report dropped locations; ctx is retained for callbacks that
// have no caller context of their own.
func New(ctx context.Context, cfg types.Config, cl RegistryClient, storeCapacity int) *Coordinator {
	c := &Coordinator{
		cfg:        cfg,
		client:     cl,
		registered: make(map[types.DatasetID]struct{}),
	}
	c.store = store.New(storeCapacity, func(key types.Key) {
		c.DropEntry(ctx, key)
	})
	return c
}

// Store exposes the partition store, mainly so the surrounding engine can
// inspect or pre-warm it.
func (c *Coordinator) Store() *store.Store {
	return c.store
}

// Host returns the address this process reports as its cache location.
func (c *Coordinator) Host() types.Host {
	return c.cfg.Host
}

// RegisterDataset registers the dataset with the registry once per process.
// Re-registration is a local no-op; the mutex is held across the round trip
// so concurrent callers cannot double-send.
func (c *Coordinator) RegisterDataset(ctx context.Context, id types.DatasetID, numPartitions int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return ErrStopped
	}
	if _, ok := c.registered[id]; ok {
		return nil
	}
	if err := c.client.RegisterDataset(ctx, id, numPartitions); err != nil {
		return err
	}
	c.registered[id] = struct{}{}
	return nil
}

// GetOrCompute returns the materialized partition, computing it if this
// process does not cache it yet.
//
// Concurrent calls for the same partition piggyback on a single computation:
// one caller computes, stores the result, and reports the new location to
// the registry; everyone blocked on that key receives the same records, or
// the same error if the computation failed. Calls for distinct keys never
// block each other.
func (c *Coordinator) GetOrCompute(ctx context.Context, ds Dataset, partition int) ([]types.Record, error) {
	if partition < 0 || partition >= ds.NumPartitions() {
		return nil, errors.Reason("dataset %d: partition %d out of range [0,%d)", ds.ID(), partition, ds.NumPartitions()).Err()
	}
	if c.isStopped() {
		return nil, ErrStopped
	}

	key := types.MakeKey(ds.ID(), partition)
	if records, ok := c.store.Get(key); ok {
		return records, nil
	}

	v, err, _ := c.inflight.Do(string(key), func() (any, error) {
		// the store may have been filled between the miss above and winning
		// the flight
		if records, ok := c.store.Get(key); ok {
			return records, nil
		}

		logging.Debugf(ctx, "computing %s", key)
		records, err := ds.Compute(ctx, partition)
		if err != nil {
			return nil, errors.Annotate(err, "computing dataset %d partition %d", ds.ID(), partition).Err()
		}
		c.store.Put(key, records)

		// Synchronize on the registry ack before releasing anyone: this
		// bounds how far local cache state and the location table diverge,
		// at the cost of one round trip per newly computed partition.
		if err := c.client.ReportAdded(ctx, ds.ID(), partition); err != nil {
			return nil, err
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]types.Record), nil
}

// LocationsSnapshot fetches a private, mutable copy of the cluster's
// location table.
func (c *Coordinator) LocationsSnapshot(ctx context.Context) (types.LocationMap, error) {
	if c.isStopped() {
		return nil, ErrStopped
	}
	return c.client.Snapshot(ctx)
}

// DropEntry reports that a store key was evicted. Wired as the store's
// eviction callback; keys in an unrecognized shape are logged and ignored.
func (c *Coordinator) DropEntry(ctx context.Context, key types.Key) {
	if c.isStopped() {
		return
	}
	id, partition, err := types.ParseKey(key)
	if err != nil {
		logging.Warningf(ctx, "ignoring drop notification for unrecognized store key: %s", err)
		return
	}
	c.client.ReportDropped(ctx, id, partition)
}

// Stop shuts the registry down, blocks for its final ack and retires this
// coordinator. Terminal: every later operation returns ErrStopped.
func (c *Coordinator) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return ErrStopped
	}
	c.stopped = true
	c.registered = nil
	return c.client.Shutdown(ctx)
}

func (c *Coordinator) isStopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}
