// Package hmc defines the management-client collaborator the partition
// usecases are written against. Session handling, retries and pagination
// are the client implementation's concern; the usecases only see this
// surface and the uniform Error type.
package hmc

import (
	"context"
	"io"

	"github.com/zhmc-toolkit/zhmc/internal/entity"
)

// Client is the operation surface of the management appliance.
//
//go:generate mockgen -destination=../../../mocks/hmc_mocks.go -package=mocks -source=client.go
type Client interface {
	// FindCPC resolves a CPC by name.
	FindCPC(ctx context.Context, name string) (*entity.CPC, error)

	// ListPartitions enumerates the partitions of a CPC with their summary
	// properties.
	ListPartitions(ctx context.Context, cpcURI string) ([]entity.Partition, error)

	// FindPartition resolves a partition by name within a CPC.
	FindPartition(ctx context.Context, cpcURI, name string) (*entity.Partition, error)

	// GetPartitionProperties pulls the full property set of a partition.
	GetPartitionProperties(ctx context.Context, partitionURI string) (*entity.Partition, error)

	// CreatePartition creates a partition from a property set and returns
	// the new resource with its server-assigned URI.
	CreatePartition(ctx context.Context, cpcURI string, properties map[string]any) (*entity.Partition, error)

	// UpdatePartition merges the supplied properties into a partition.
	UpdatePartition(ctx context.Context, partitionURI string, properties map[string]any) error

	// DeletePartition removes a partition permanently.
	DeletePartition(ctx context.Context, partitionURI string) error

	// StartPartition requests a start and blocks until the server-side job
	// reaches a terminal state.
	StartPartition(ctx context.Context, partitionURI string) error

	// StopPartition requests a stop and blocks until the server-side job
	// reaches a terminal state.
	StopPartition(ctx context.Context, partitionURI string) error

	// FindHBA resolves a storage adapter by name within a partition.
	FindHBA(ctx context.Context, partitionURI, name string) (*entity.HBA, error)

	// FindNIC resolves a network adapter by name within a partition.
	FindNIC(ctx context.Context, partitionURI, name string) (*entity.NIC, error)

	// MountISOImage uploads an ISO image stream together with the INS file
	// path inside the image.
	MountISOImage(ctx context.Context, partitionURI string, image io.Reader, imageName, insFile string) error

	// UnmountISOImage detaches the currently mounted image.
	UnmountISOImage(ctx context.Context, partitionURI string) error

	// PartitionUsageMetrics fetches the current partition-usage samples for
	// all active partitions of a CPC.
	PartitionUsageMetrics(ctx context.Context, cpcName string) ([]entity.MetricSample, error)
}
