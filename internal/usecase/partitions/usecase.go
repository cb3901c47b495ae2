// Package partitions implements the partition lifecycle commands: property
// mapping, boot-configuration resolution, capacity estimation and the
// orchestration of management-client calls.
package partitions

import (
	"context"

	"github.com/zhmc-toolkit/zhmc/internal/cache"
	"github.com/zhmc-toolkit/zhmc/internal/entity"
	"github.com/zhmc-toolkit/zhmc/internal/usecase/partitions/hmc"
	"github.com/zhmc-toolkit/zhmc/pkg/logger"
)

// Defaults applied for partition creation, matching the appliance docs.
const (
	DefaultIFLProcessors    = 1
	DefaultInitialMemoryMB  = 1024
	DefaultMaximumMemoryMB  = 1024
	DefaultProcessorMode    = entity.ProcessorModeShared
	DefaultPartitionType    = "linux"
	DefaultProcessingWeight = 100

	MinProcessingWeight = 1
	MaxProcessingWeight = 999
)

// PartitionTypes are the valid values of the type option.
var PartitionTypes = []string{"ssc", "linux", "zvm"}

// UseCase -.
type UseCase struct {
	client hmc.Client
	log    logger.Interface
	cache  *cache.Cache
}

// New -.
func New(client hmc.Client, log logger.Interface, c *cache.Cache) *UseCase {
	return &UseCase{
		client: client,
		log:    log,
		cache:  c,
	}
}

// findCPC resolves a CPC by name, memoizing the result for the duration of
// the invocation tree.
func (uc *UseCase) findCPC(ctx context.Context, name string) (*entity.CPC, error) {
	key := cache.MakeCPCKey(name)
	if v, ok := uc.cache.Get(key); ok {
		if cpc, ok := v.(*entity.CPC); ok {
			return cpc, nil
		}
	}

	cpc, err := uc.client.FindCPC(ctx, name)
	if err != nil {
		return nil, uc.remoteErr("findCPC", "client.FindCPC", err)
	}

	uc.cache.Set(key, cpc, 0)

	return cpc, nil
}

// findPartition resolves a partition by name within a CPC, memoizing the
// result like findCPC does.
func (uc *UseCase) findPartition(ctx context.Context, cpcName, partitionName string) (*entity.CPC, *entity.Partition, error) {
	cpc, err := uc.findCPC(ctx, cpcName)
	if err != nil {
		return nil, nil, err
	}

	key := cache.MakePartitionKey(cpcName, partitionName)
	if v, ok := uc.cache.Get(key); ok {
		if partition, ok := v.(*entity.Partition); ok {
			return cpc, partition, nil
		}
	}

	partition, err := uc.client.FindPartition(ctx, cpc.URI, partitionName)
	if err != nil {
		return nil, nil, uc.remoteErr("findPartition", "client.FindPartition", err)
	}

	uc.cache.Set(key, partition, 0)

	return cpc, partition, nil
}

// forgetPartition drops a memoized partition after a mutating operation.
func (uc *UseCase) forgetPartition(cpcName, partitionName string) {
	uc.cache.Delete(cache.MakePartitionKey(cpcName, partitionName))
}
