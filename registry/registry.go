// Package registry implements the authoritative location table: which hosts
// hold a cached copy of which partition of which dataset.
//
// The registry is a mailbox: a single goroutine drains an ordered channel of
// commands and is the only writer of the table, so handlers need no locking.
// Handlers must stay fast and non-blocking; a slow handler stalls every
// caller in the cluster.
package registry

import (
	"context"

	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"
	"go.chromium.org/luci/common/logging"

	"github.com/voletra/cachetrack/types"
)

// ErrStopped is returned by every operation issued after Shutdown completed.
var ErrStopped = errors.New("location registry is stopped")

// DefaultQueueSize bounds the command mailbox. Fire-and-forget senders block
// once the mailbox is full rather than dropping reports.
const DefaultQueueSize = 256

// Stats is a cheap summary of the table, for logs and tests.
type Stats struct {
	Datasets  int // datasets registered
	Locations int // total (partition, host) location facts
}

type command interface{ isCommand() }

type registerDatasetCmd struct {
	id            types.DatasetID
	numPartitions int
	reply         chan struct{}
}

type reportAddedCmd struct {
	id        types.DatasetID
	partition int
	host      types.Host
	reply     chan struct{}
}

type reportDroppedCmd struct {
	id        types.DatasetID
	partition int
	host      types.Host
}

type reportHostLostCmd struct {
	host types.Host
}

type snapshotCmd struct {
	reply chan types.LocationMap
}

type statsCmd struct {
	reply chan Stats
}

type shutdownCmd struct {
	reply chan struct{}
}

func (registerDatasetCmd) isCommand() {}
func (reportAddedCmd) isCommand()     {}
func (reportDroppedCmd) isCommand()   {}
func (reportHostLostCmd) isCommand()  {}
func (snapshotCmd) isCommand()        {}
func (statsCmd) isCommand()           {}
func (shutdownCmd) isCommand()        {}

// Registry is the location table plus its mailbox. Create one per cluster,
// on the master process, with New.
type Registry struct {
	commands chan command
	stopped  chan struct{} // closed when the loop exits

	// owned by the mailbox goroutine, never touched from outside it
	table map[types.DatasetID]types.Locations
}

// New starts the mailbox goroutine and returns the running registry.
// The context is used for the loop's logging only.
func New(ctx context.Context) *Registry {
	r := &Registry{
		commands: make(chan command, DefaultQueueSize),
		stopped:  make(chan struct{}),
		table:    make(map[types.DatasetID]types.Locations),
	}
	go r.loop(ctx)
	return r
}

func (r *Registry) loop(ctx context.Context) {
	defer close(r.stopped)
	for cmd := range r.commands {
		switch c := cmd.(type) {
		case registerDatasetCmd:
			r.handleRegister(ctx, c)
		case reportAddedCmd:
			r.handleAdded(ctx, c)
		case reportDroppedCmd:
			r.handleDropped(c)
		case reportHostLostCmd:
			r.handleHostLost(ctx, c)
		case snapshotCmd:
			c.reply <- r.snapshotLocked()
		case statsCmd:
			c.reply <- r.statsLocked()
		case shutdownCmd:
			logging.Infof(ctx, "location registry shutting down")
			close(c.reply)
			return
		}
	}
}

func (r *Registry) handleRegister(ctx context.Context, c registerDatasetCmd) {
	// Re-registration overwrites; idempotence is the caller's job.
	locs := make(types.Locations, c.numPartitions)
	for i := range locs {
		locs[i] = stringset.New(0)
	}
	r.table[c.id] = locs
	logging.Debugf(ctx, "registered dataset %d with %d partitions", c.id, c.numPartitions)
	close(c.reply)
}

func (r *Registry) handleAdded(ctx context.Context, c reportAddedCmd) {
	// An unknown dataset or out-of-range partition is caller misuse. The
	// table must survive it, so the report is logged and discarded.
	locs, ok := r.table[c.id]
	switch {
	case !ok:
		logging.Errorf(ctx, "added-location report for unregistered dataset %d (partition %d, host %s)", c.id, c.partition, c.host)
	case c.partition < 0 || c.partition >= len(locs):
		logging.Errorf(ctx, "added-location report for dataset %d partition %d out of range [0,%d)", c.id, c.partition, len(locs))
	default:
		locs[c.partition].Add(string(c.host))
	}
	close(c.reply)
}

func (r *Registry) handleDropped(c reportDroppedCmd) {
	// No-op if the dataset, partition or host is unknown.
	if locs, ok := r.table[c.id]; ok && c.partition >= 0 && c.partition < len(locs) {
		locs[c.partition].Del(string(c.host))
	}
}

func (r *Registry) handleHostLost(ctx context.Context, c reportHostLostCmd) {
	purged := 0
	for _, locs := range r.table {
		for _, hosts := range locs {
			if hosts.Del(string(c.host)) {
				purged++
			}
		}
	}
	logging.Infof(ctx, "host %s lost, purged %d cached locations", c.host, purged)
}

func (r *Registry) snapshotLocked() types.LocationMap {
	out := make(types.LocationMap, len(r.table))
	for id, locs := range r.table {
		cp := make(types.Locations, len(locs))
		for i, hosts := range locs {
			cp[i] = hosts.Dup()
		}
		out[id] = cp
	}
	return out
}

func (r *Registry) statsLocked() Stats {
	s := Stats{Datasets: len(r.table)}
	for _, locs := range r.table {
		for _, hosts := range locs {
			s.Locations += hosts.Len()
		}
	}
	return s
}

// send enqueues a command, honoring cancellation and shutdown.
func (r *Registry) send(ctx context.Context, cmd command) error {
	select {
	case r.commands <- cmd:
		return nil
	case <-r.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// await blocks for a request/reply command's acknowledgment. When shutdown
// races with the reply, the reply wins: the command was applied.
func (r *Registry) await(ctx context.Context, reply chan struct{}) error {
	select {
	case <-reply:
		return nil
	case <-r.stopped:
		select {
		case <-reply:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RegisterDataset allocates a fresh, empty location slot array for the
// dataset, replacing any prior registration for the same id.
func (r *Registry) RegisterDataset(ctx context.Context, id types.DatasetID, numPartitions int) error {
	c := registerDatasetCmd{id: id, numPartitions: numPartitions, reply: make(chan struct{})}
	if err := r.send(ctx, c); err != nil {
		return err
	}
	return r.await(ctx, c.reply)
}

// ReportAdded records that host now caches the given partition. Duplicate
// reports collapse: location slots are sets, not lists.
func (r *Registry) ReportAdded(ctx context.Context, id types.DatasetID, partition int, host types.Host) error {
	c := reportAddedCmd{id: id, partition: partition, host: host, reply: make(chan struct{})}
	if err := r.send(ctx, c); err != nil {
		return err
	}
	return r.await(ctx, c.reply)
}

// ReportDropped removes host from the partition's location set if present.
// Fire-and-forget: the command is enqueued and the caller does not wait for
// it to be processed. Dropped silently once the registry is stopped.
func (r *Registry) ReportDropped(id types.DatasetID, partition int, host types.Host) {
	select {
	case r.commands <- reportDroppedCmd{id: id, partition: partition, host: host}:
	case <-r.stopped:
	}
}

// ReportHostLost purges the host from every partition set of every dataset.
// Fire-and-forget, like ReportDropped.
func (r *Registry) ReportHostLost(host types.Host) {
	select {
	case r.commands <- reportHostLostCmd{host: host}:
	case <-r.stopped:
	}
}

// Snapshot returns a deep copy of the whole table. The copy reflects every
// command processed before this one and none after; the caller may mutate it.
func (r *Registry) Snapshot(ctx context.Context) (types.LocationMap, error) {
	c := snapshotCmd{reply: make(chan types.LocationMap, 1)}
	if err := r.send(ctx, c); err != nil {
		return nil, err
	}
	select {
	case m := <-c.reply:
		return m, nil
	case <-r.stopped:
		select {
		case m := <-c.reply:
			return m, nil
		default:
			return nil, ErrStopped
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Stats returns summary counters for the table.
func (r *Registry) Stats(ctx context.Context) (Stats, error) {
	c := statsCmd{reply: make(chan Stats, 1)}
	if err := r.send(ctx, c); err != nil {
		return Stats{}, err
	}
	select {
	case s := <-c.reply:
		return s, nil
	case <-r.stopped:
		select {
		case s := <-c.reply:
			return s, nil
		default:
			return Stats{}, ErrStopped
		}
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
}

// Shutdown stops the mailbox permanently. Commands still queued behind the
// shutdown are discarded; every later operation returns ErrStopped.
func (r *Registry) Shutdown(ctx context.Context) error {
	c := shutdownCmd{reply: make(chan struct{})}
	if err := r.send(ctx, c); err != nil {
		return err
	}
	select {
	case <-c.reply:
		return nil
	case <-r.stopped:
		// A concurrent Shutdown won the race; ours was never processed.
		select {
		case <-c.reply:
			return nil
		default:
			return ErrStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stopped is closed once the mailbox has exited.
func (r *Registry) Stopped() <-chan struct{} {
	return r.stopped
}
