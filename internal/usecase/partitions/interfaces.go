package partitions

import (
	"context"

	dto "github.com/zhmc-toolkit/zhmc/internal/entity/dto/v1"
)

// Feature is the partition command surface consumed by the controllers.
type (
	Feature interface {
		List(ctx context.Context, cpcName string, opts dto.ListOptions) ([]dto.PartitionRow, error)
		Show(ctx context.Context, cpcName, partitionName string) (dto.PartitionDetail, error)
		Create(ctx context.Context, cpcName string, opts *dto.OptionSet) (dto.OperationResult, error)
		Update(ctx context.Context, cpcName, partitionName string, opts *dto.OptionSet) (dto.OperationResult, error)
		Delete(ctx context.Context, cpcName, partitionName string) (dto.OperationResult, error)
		Start(ctx context.Context, cpcName, partitionName string) (dto.OperationResult, error)
		Stop(ctx context.Context, cpcName, partitionName string) (dto.OperationResult, error)
		MountISO(ctx context.Context, cpcName, partitionName string, opts dto.MountISOOptions) (dto.OperationResult, error)
		UnmountISO(ctx context.Context, cpcName, partitionName string) (dto.OperationResult, error)
	}
)

var _ Feature = (*UseCase)(nil)
