package types

import (
	"strconv"
	"strings"

	"go.chromium.org/luci/common/data/stringset"
	"go.chromium.org/luci/common/errors"
)

// DatasetID identifies a partitioned dataset cluster-wide. IDs are assigned
// by whoever defines datasets (conventionally the driver) and are opaque here.
type DatasetID int64

// Host is the address under which a process's cache is known to the cluster.
type Host string

// Key names one materialized partition in a PartitionStore.
type Key string

const keyPrefix = "part"

// MakeKey builds the store key for a (dataset, partition) pair.
func MakeKey(id DatasetID, partition int) Key {
	return Key(keyPrefix + "_" + strconv.FormatInt(int64(id), 10) + "_" + strconv.Itoa(partition))
}

// ParseKey inverts MakeKey. Keys in any other shape are an error, never a
// panic: eviction callbacks feed arbitrary store keys through here.
func ParseKey(k Key) (DatasetID, int, error) {
	parts := strings.Split(string(k), "_")
	if len(parts) != 3 || parts[0] != keyPrefix {
		return 0, 0, errors.Reason("malformed partition key %q", k).Err()
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, errors.Annotate(err, "partition key %q: dataset id", k).Err()
	}
	partition, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, errors.Annotate(err, "partition key %q: partition index", k).Err()
	}
	return DatasetID(id), partition, nil
}

// Record is one element of a materialized partition. The coordinator never
// looks inside records; it only moves slices of them around.
type Record any

// Locations holds the host sets for every partition of one dataset,
// indexed by partition.
type Locations []stringset.Set

// LocationMap is a point-in-time copy of the registry's whole table. It is
// always a deep copy: callers may mutate it freely.
type LocationMap map[DatasetID]Locations

// Config carries the per-process identity and wiring the coordinator needs.
// Passed explicitly at construction; there is no ambient process state.
type Config struct {
	// Host is this process's address, reported to the registry as the
	// location of everything this process caches.
	Host Host

	// RegistryAddr is the master's registry endpoint.
	RegistryAddr string
}
