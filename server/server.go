// Package server exposes a Registry over gRPC on the master process.
package server

import (
	"context"
	"net"
	"sort"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go.chromium.org/luci/common/errors"

	pb "github.com/voletra/cachetrack/proto"
	"github.com/voletra/cachetrack/registry"
	"github.com/voletra/cachetrack/types"
)

// Server adapts the registry mailbox to the LocationRegistry gRPC service.
//
// Request/reply RPCs block on the mailbox; the fire-and-forget ones enqueue
// and ack immediately, so a worker's eviction path never waits on the table.
type Server struct {
	pb.UnimplementedLocationRegistryServer

	registry *registry.Registry

	// liveness tracking for connected workers; nil when disabled
	monitor *registry.Monitor

	grpcServer *grpc.Server
}

// New wraps a running registry. The monitor may be nil to disable host
// liveness tracking.
func New(r *registry.Registry, m *registry.Monitor) *Server {
	return &Server{registry: r, monitor: m}
}

// Start registers the gRPC service and serves on lis. Blocks until Stop.
func (s *Server) Start(ctx context.Context, lis net.Listener) error {
	s.grpcServer = grpc.NewServer()
	pb.RegisterLocationRegistryServer(s.grpcServer, s)
	if s.monitor != nil {
		go s.monitor.Run(ctx)
	}
	return s.grpcServer.Serve(lis)
}

// Stop gracefully stops the gRPC server.
func (s *Server) Stop() {
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
}

func (s *Server) RegisterDataset(ctx context.Context, req *pb.RegisterDatasetRequest) (*pb.Ack, error) {
	if req.NumPartitions < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "dataset %d: negative partition count %d", req.DatasetId, req.NumPartitions)
	}
	err := s.registry.RegisterDataset(ctx, types.DatasetID(req.DatasetId), int(req.NumPartitions))
	if err != nil {
		return nil, rpcErr(err)
	}
	return &pb.Ack{}, nil
}

func (s *Server) ReportAdded(ctx context.Context, req *pb.ReportAddedRequest) (*pb.Ack, error) {
	s.touch(ctx, types.Host(req.Host))
	err := s.registry.ReportAdded(ctx, types.DatasetID(req.DatasetId), int(req.Partition), types.Host(req.Host))
	if err != nil {
		return nil, rpcErr(err)
	}
	return &pb.Ack{}, nil
}

func (s *Server) ReportDropped(ctx context.Context, req *pb.ReportDroppedRequest) (*pb.Ack, error) {
	s.touch(ctx, types.Host(req.Host))
	s.registry.ReportDropped(types.DatasetID(req.DatasetId), int(req.Partition), types.Host(req.Host))
	return &pb.Ack{}, nil
}

func (s *Server) ReportHostLost(ctx context.Context, req *pb.ReportHostLostRequest) (*pb.Ack, error) {
	s.registry.ReportHostLost(types.Host(req.Host))
	return &pb.Ack{}, nil
}

func (s *Server) Heartbeat(ctx context.Context, req *pb.HeartbeatRequest) (*pb.Ack, error) {
	s.touch(ctx, types.Host(req.Host))
	return &pb.Ack{}, nil
}

func (s *Server) Snapshot(ctx context.Context, _ *pb.SnapshotRequest) (*pb.SnapshotResponse, error) {
	m, err := s.registry.Snapshot(ctx)
	if err != nil {
		return nil, rpcErr(err)
	}
	return toProtoSnapshot(m), nil
}

func (s *Server) Shutdown(ctx context.Context, _ *pb.ShutdownRequest) (*pb.Ack, error) {
	if err := s.registry.Shutdown(ctx); err != nil {
		return nil, rpcErr(err)
	}
	return &pb.Ack{}, nil
}

// touch records host activity with the liveness monitor. Any report from a
// host counts as a heartbeat.
func (s *Server) touch(ctx context.Context, host types.Host) {
	if s.monitor != nil && host != "" {
		s.monitor.Heartbeat(ctx, host)
	}
}

func rpcErr(err error) error {
	if errors.Is(err, registry.ErrStopped) {
		return status.Error(codes.Unavailable, err.Error())
	}
	return err
}

// --- proto <-> types conversion helpers ---

func toProtoSnapshot(m types.LocationMap) *pb.SnapshotResponse {
	resp := &pb.SnapshotResponse{Datasets: make([]*pb.DatasetLocations, 0, len(m))}
	for id, locs := range m {
		dl := &pb.DatasetLocations{
			DatasetId:  int64(id),
			Partitions: make([]*pb.PartitionHosts, len(locs)),
		}
		for i, hosts := range locs {
			hs := hosts.ToSlice()
			sort.Strings(hs)
			dl.Partitions[i] = &pb.PartitionHosts{Hosts: hs}
		}
		resp.Datasets = append(resp.Datasets, dl)
	}
	sort.Slice(resp.Datasets, func(i, j int) bool {
		return resp.Datasets[i].DatasetId < resp.Datasets[j].DatasetId
	})
	return resp
}
