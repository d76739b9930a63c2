package coordinator

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/testing/ftt"
	"go.chromium.org/luci/common/testing/truth/assert"
	"go.chromium.org/luci/common/testing/truth/should"

	"github.com/voletra/cachetrack/types"
)

// fakeRegistry records everything the coordinator sends and never talks to a
// network. Error fields, when set, are returned to the corresponding call.
type fakeRegistry struct {
	mu          sync.Mutex
	registered  []types.DatasetID
	added       []types.Key
	dropped     []types.Key
	shutdowns   int
	registerErr error
	addedErr    error
	snapshot    types.LocationMap
}

func (f *fakeRegistry) RegisterDataset(ctx context.Context, id types.DatasetID, numPartitions int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.registerErr != nil {
		return f.registerErr
	}
	f.registered = append(f.registered, id)
	return nil
}

func (f *fakeRegistry) ReportAdded(ctx context.Context, id types.DatasetID, partition int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addedErr != nil {
		return f.addedErr
	}
	f.added = append(f.added, types.MakeKey(id, partition))
	return nil
}

func (f *fakeRegistry) ReportDropped(ctx context.Context, id types.DatasetID, partition int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dropped = append(f.dropped, types.MakeKey(id, partition))
}

func (f *fakeRegistry) Snapshot(ctx context.Context) (types.LocationMap, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot, nil
}

func (f *fakeRegistry) Shutdown(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shutdowns++
	return nil
}

func (f *fakeRegistry) addedKeys() []types.Key {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.Key(nil), f.added...)
}

func (f *fakeRegistry) droppedKeys() []types.Key {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.Key(nil), f.dropped...)
}

// countingDataset counts Compute invocations per partition. When block is
// non-nil, Compute signals started once and then waits for block before
// returning, letting tests pile up concurrent callers deterministically.
type countingDataset struct {
	id         types.DatasetID
	partitions int
	computes   []atomic.Int64
	failWith   error

	started chan struct{}
	block   chan struct{}
	once    sync.Once
}

func newCountingDataset(id types.DatasetID, partitions int) *countingDataset {
	return &countingDataset{
		id:         id,
		partitions: partitions,
		computes:   make([]atomic.Int64, partitions),
	}
}

func (d *countingDataset) ID() types.DatasetID { return d.id }
func (d *countingDataset) NumPartitions() int  { return d.partitions }

func (d *countingDataset) Compute(ctx context.Context, partition int) ([]types.Record, error) {
	d.computes[partition].Add(1)
	if d.started != nil {
		d.once.Do(func() { close(d.started) })
	}
	if d.block != nil {
		<-d.block
	}
	if d.failWith != nil {
		return nil, d.failWith
	}
	return []types.Record{d.id, partition}, nil
}

func TestCoordinator(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := types.Config{Host: "worker-1:7000", RegistryAddr: "master:7077"}

	ftt.Run(`GetOrCompute`, t, func(t *ftt.Test) {
		reg := &fakeRegistry{}
		c := New(ctx, cfg, reg, 0)

		t.Run(`computes once and reports the location`, func(t *ftt.Test) {
			ds := newCountingDataset(1, 4)
			records, err := c.GetOrCompute(ctx, ds, 2)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, records, should.Match([]types.Record{types.DatasetID(1), 2}))
			assert.Loosely(t, reg.addedKeys(), should.Match([]types.Key{"part_1_2"}))

			// second call is a pure cache hit
			_, err = c.GetOrCompute(ctx, ds, 2)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, ds.computes[2].Load(), should.Equal(int64(1)))
			assert.Loosely(t, reg.addedKeys(), should.HaveLength(1))
		})

		t.Run(`out of range partitions are rejected`, func(t *ftt.Test) {
			ds := newCountingDataset(1, 4)
			_, err := c.GetOrCompute(ctx, ds, -1)
			assert.Loosely(t, err, should.ErrLike("out of range"))
			_, err = c.GetOrCompute(ctx, ds, 4)
			assert.Loosely(t, err, should.ErrLike("out of range"))
			assert.Loosely(t, ds.computes[0].Load(), should.BeZero)
		})

		t.Run(`concurrent callers share one computation`, func(t *ftt.Test) {
			ds := newCountingDataset(1, 4)
			ds.started = make(chan struct{})
			ds.block = make(chan struct{})

			const callers = 20
			results := make(chan []types.Record, callers)
			var wg sync.WaitGroup
			for i := 0; i < callers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					records, err := c.GetOrCompute(ctx, ds, 0)
					if err == nil {
						results <- records
					}
				}()
			}

			<-ds.started
			close(ds.block)
			wg.Wait()
			close(results)

			n := 0
			for records := range results {
				n++
				assert.Loosely(t, records, should.Match([]types.Record{types.DatasetID(1), 0}))
			}
			assert.Loosely(t, n, should.Equal(callers))
			assert.Loosely(t, ds.computes[0].Load(), should.Equal(int64(1)))
			assert.Loosely(t, reg.addedKeys(), should.HaveLength(1))
		})

		t.Run(`distinct keys do not block each other`, func(t *ftt.Test) {
			blocked := newCountingDataset(1, 4)
			blocked.started = make(chan struct{})
			blocked.block = make(chan struct{})

			done := make(chan struct{})
			go func() {
				defer close(done)
				c.GetOrCompute(ctx, blocked, 0)
			}()
			<-blocked.started

			// partition 1 completes while partition 0 is still in flight
			other := newCountingDataset(1, 4)
			records, err := c.GetOrCompute(ctx, other, 1)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, records, should.Match([]types.Record{types.DatasetID(1), 1}))

			close(blocked.block)
			<-done
		})

		t.Run(`a failed computation reaches every waiter, then clears`, func(t *ftt.Test) {
			ds := newCountingDataset(1, 4)
			ds.started = make(chan struct{})
			ds.block = make(chan struct{})
			ds.failWith = errors.New("shard disk gone")

			const callers = 5
			errs := make(chan error, callers)
			var wg sync.WaitGroup
			for i := 0; i < callers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := c.GetOrCompute(ctx, ds, 0)
					errs <- err
				}()
			}
			<-ds.started
			close(ds.block)
			wg.Wait()
			close(errs)

			for err := range errs {
				assert.Loosely(t, err, should.ErrLike("shard disk gone"))
			}
			assert.Loosely(t, reg.addedKeys(), should.BeEmpty)

			// the failure is not cached; a later call retries and succeeds
			ds.failWith = nil
			ds.block = nil
			records, err := c.GetOrCompute(ctx, ds, 0)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, records, should.Match([]types.Record{types.DatasetID(1), 0}))
			assert.Loosely(t, c.Store().Contains("part_1_0"), should.BeTrue)
			assert.Loosely(t, reg.addedKeys(), should.Match([]types.Key{"part_1_0"}))
		})

		t.Run(`registry ack failure surfaces but the store keeps the records`, func(t *ftt.Test) {
			ds := newCountingDataset(1, 4)
			reg.addedErr = errors.New("registry unreachable")

			_, err := c.GetOrCompute(ctx, ds, 0)
			assert.Loosely(t, err, should.ErrLike("registry unreachable"))
			assert.Loosely(t, c.Store().Contains("part_1_0"), should.BeTrue)

			// the cached records serve the next call without recomputing
			reg.addedErr = nil
			records, err := c.GetOrCompute(ctx, ds, 0)
			assert.Loosely(t, err, should.BeNil)
			assert.Loosely(t, records, should.Match([]types.Record{types.DatasetID(1), 0}))
			assert.Loosely(t, ds.computes[0].Load(), should.Equal(int64(1)))
		})
	})

	ftt.Run(`RegisterDataset`, t, func(t *ftt.Test) {
		reg := &fakeRegistry{}
		c := New(ctx, cfg, reg, 0)

		t.Run(`sends exactly one message per dataset`, func(t *ftt.Test) {
			assert.Loosely(t, c.RegisterDataset(ctx, 5, 8), should.BeNil)
			assert.Loosely(t, c.RegisterDataset(ctx, 5, 8), should.BeNil)
			assert.Loosely(t, reg.registered, should.Match([]types.DatasetID{5}))
		})

		t.Run(`concurrent callers cannot double-send`, func(t *ftt.Test) {
			var wg sync.WaitGroup
			for i := 0; i < 16; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					c.RegisterDataset(ctx, 5, 8)
				}()
			}
			wg.Wait()
			assert.Loosely(t, reg.registered, should.HaveLength(1))
		})

		t.Run(`a failed registration may be retried`, func(t *ftt.Test) {
			reg.registerErr = errors.New("registry unreachable")
			assert.Loosely(t, c.RegisterDataset(ctx, 5, 8), should.ErrLike("registry unreachable"))

			reg.registerErr = nil
			assert.Loosely(t, c.RegisterDataset(ctx, 5, 8), should.BeNil)
			assert.Loosely(t, reg.registered, should.Match([]types.DatasetID{5}))
		})
	})

	ftt.Run(`DropEntry`, t, func(t *ftt.Test) {
		reg := &fakeRegistry{}
		c := New(ctx, cfg, reg, 0)

		t.Run(`well formed keys are reported`, func(t *ftt.Test) {
			c.DropEntry(ctx, "part_3_1")
			assert.Loosely(t, reg.droppedKeys(), should.Match([]types.Key{"part_3_1"}))
		})

		t.Run(`malformed keys are ignored`, func(t *ftt.Test) {
			c.DropEntry(ctx, "whatever")
			assert.Loosely(t, reg.droppedKeys(), should.BeEmpty)
		})
	})

	ftt.Run(`eviction reports dropped locations`, t, func(t *ftt.Test) {
		reg := &fakeRegistry{}
		c := New(ctx, cfg, reg, 1)
		ds := newCountingDataset(2, 4)

		_, err := c.GetOrCompute(ctx, ds, 0)
		assert.Loosely(t, err, should.BeNil)
		_, err = c.GetOrCompute(ctx, ds, 1)
		assert.Loosely(t, err, should.BeNil)

		// capacity 1: the second computation pushed the first out
		assert.Loosely(t, reg.droppedKeys(), should.Match([]types.Key{"part_2_0"}))
		assert.Loosely(t, c.Store().Contains("part_2_1"), should.BeTrue)
	})

	ftt.Run(`LocationsSnapshot passes the table through`, t, func(t *ftt.Test) {
		reg := &fakeRegistry{snapshot: types.LocationMap{
			9: make(types.Locations, 3),
		}}
		c := New(ctx, cfg, reg, 0)

		snap, err := c.LocationsSnapshot(ctx)
		assert.Loosely(t, err, should.BeNil)
		assert.Loosely(t, snap, should.HaveLength(1))
		assert.Loosely(t, snap[9], should.HaveLength(3))
	})

	ftt.Run(`Stop is terminal`, t, func(t *ftt.Test) {
		reg := &fakeRegistry{}
		c := New(ctx, cfg, reg, 0)
		ds := newCountingDataset(1, 4)

		assert.Loosely(t, c.Stop(ctx), should.BeNil)
		assert.Loosely(t, reg.shutdowns, should.Equal(1))

		_, err := c.GetOrCompute(ctx, ds, 0)
		assert.Loosely(t, err, should.ErrLike(ErrStopped))
		assert.Loosely(t, c.RegisterDataset(ctx, 1, 4), should.ErrLike(ErrStopped))
		_, err = c.LocationsSnapshot(ctx)
		assert.Loosely(t, err, should.ErrLike(ErrStopped))

		// second Stop neither panics nor sends another shutdown
		assert.Loosely(t, c.Stop(ctx), should.ErrLike(ErrStopped))
		assert.Loosely(t, reg.shutdowns, should.Equal(1))

		// eviction callbacks after stop are swallowed
		c.DropEntry(ctx, "part_1_0")
		assert.Loosely(t, reg.droppedKeys(), should.BeEmpty)
	})
}
