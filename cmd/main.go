// Demo: one master registry plus three worker coordinators in a single
// process, computing overlapping partitions concurrently.
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"go.chromium.org/luci/common/logging"
	"go.chromium.org/luci/common/logging/gologger"

	"github.com/voletra/cachetrack/client"
	"github.com/voletra/cachetrack/coordinator"
	"github.com/voletra/cachetrack/registry"
	"github.com/voletra/cachetrack/server"
	"github.com/voletra/cachetrack/types"
)

// squares is a toy dataset: partition p holds the squares of
// [p*width, (p+1)*width). Compute is deliberately slow so concurrent
// requests pile up on the in-flight guard.
type squares struct {
	id         types.DatasetID
	partitions int
	width      int
}

func (d squares) ID() types.DatasetID { return d.id }
func (d squares) NumPartitions() int  { return d.partitions }

func (d squares) Compute(_ context.Context, partition int) ([]types.Record, error) {
	time.Sleep(50 * time.Millisecond)
	records := make([]types.Record, d.width)
	for i := range records {
		n := int64(partition*d.width + i)
		records[i] = n * n
	}
	return records, nil
}

func main() {
	ctx := gologger.StdConfig.Use(context.Background())
	ctx = logging.SetLevel(ctx, logging.Info)

	// master: registry mailbox + liveness monitor + gRPC endpoint
	reg := registry.New(ctx)
	mon := registry.NewMonitor(reg, 10*time.Second)
	srv := server.New(reg, mon)

	lis, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		log.Fatal(err)
	}
	go srv.Start(ctx, lis)
	addr := lis.Addr().String()
	fmt.Printf("[BOOT] registry listening on %s\n", addr)

	// workers: one coordinator per simulated process, tiny store capacity so
	// evictions and drop reports show up
	const numWorkers = 3
	coords := make([]*coordinator.Coordinator, numWorkers)
	for i := range coords {
		cfg := types.Config{
			Host:         types.Host(fmt.Sprintf("worker-%d", i+1)),
			RegistryAddr: addr,
		}
		cl, err := client.Dial(cfg)
		if err != nil {
			log.Fatal(err)
		}
		defer cl.Close()
		go cl.RunHeartbeats(ctx, 2*time.Second)
		coords[i] = coordinator.New(ctx, cfg, cl, 4)
	}

	ds := squares{id: 7, partitions: 6, width: 4}

	// the first worker plays driver and registers the dataset
	if err := coords[0].RegisterDataset(ctx, ds.ID(), ds.NumPartitions()); err != nil {
		log.Fatal(err)
	}

	// every worker asks for every partition, three callers per key per
	// worker; each partition computes once per worker
	g, gctx := errgroup.WithContext(ctx)
	for _, coord := range coords {
		for p := 0; p < ds.NumPartitions(); p++ {
			for caller := 0; caller < 3; caller++ {
				g.Go(func() error {
					records, err := coord.GetOrCompute(gctx, ds, p)
					if err != nil {
						return err
					}
					fmt.Printf("[GET] host=%s partition=%d first=%v len=%d\n", coord.Host(), p, records[0], len(records))
					return nil
				})
			}
		}
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	// give fire-and-forget drop reports from evictions a moment to land
	time.Sleep(200 * time.Millisecond)

	snap, err := coords[0].LocationsSnapshot(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for id, locs := range snap {
		for p, hosts := range locs {
			fmt.Printf("[LOC] dataset=%d partition=%d hosts=%v\n", id, p, hosts.ToSlice())
		}
	}

	stats, err := reg.Stats(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[STATS] datasets=%d locations=%d\n", stats.Datasets, stats.Locations)

	if err := coords[0].Stop(ctx); err != nil {
		log.Fatal(err)
	}
	srv.Stop()
	fmt.Println("[DONE] registry stopped")
}
