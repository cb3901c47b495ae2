package partitions

import (
	"context"
	"fmt"

	dto "github.com/zhmc-toolkit/zhmc/internal/entity/dto/v1"
)

// Show returns the full property set of a partition.
func (uc *UseCase) Show(ctx context.Context, cpcName, partitionName string) (dto.PartitionDetail, error) {
	_, partition, err := uc.findPartition(ctx, cpcName, partitionName)
	if err != nil {
		return dto.PartitionDetail{}, err
	}

	full, err := uc.client.GetPartitionProperties(ctx, partition.URI)
	if err != nil {
		return dto.PartitionDetail{}, uc.remoteErr("Show", "client.GetPartitionProperties", err)
	}

	return dto.PartitionDetail{
		Name:       full.Name,
		Properties: full.Properties,
	}, nil
}

// Create creates a partition in a CPC from the supplied options. Only the
// FTP and removable-media boot groups apply at creation time; when neither
// processor count is given the partition gets one IFL.
func (uc *UseCase) Create(ctx context.Context, cpcName string, opts *dto.OptionSet) (dto.OperationResult, error) {
	if err := validateOptions(opts); err != nil {
		return dto.OperationResult{}, err
	}

	cpc, err := uc.findCPC(ctx, cpcName)
	if err != nil {
		return dto.OperationResult{}, err
	}

	props := optionProperties(opts, createExcluded)

	bootCfg, err := uc.resolveBootConfig(ctx, bootScope{cpcName: cpcName}, opts)
	if err != nil {
		return dto.OperationResult{}, err
	}

	bootCfg.apply(props)

	if _, ok := props["ifl-processors"]; !ok {
		if _, ok := props["cp-processors"]; !ok {
			props["ifl-processors"] = DefaultIFLProcessors
		}
	}

	applySSCDNSServers(opts, props)

	created, err := uc.client.CreatePartition(ctx, cpc.URI, props)
	if err != nil {
		return dto.OperationResult{}, uc.remoteErr("Create", "client.CreatePartition", err)
	}

	return dto.OperationResult{
		Partition: created.Name,
		URI:       created.URI,
		Message:   fmt.Sprintf("new partition %s has been created", created.Name),
		Changed:   true,
	}, nil
}

// Update merges the supplied options into a partition. All five boot
// groups apply. An empty resolved property set is reported as a no-op
// without a remote call.
func (uc *UseCase) Update(ctx context.Context, cpcName, partitionName string, opts *dto.OptionSet) (dto.OperationResult, error) {
	if err := validateOptions(opts); err != nil {
		return dto.OperationResult{}, err
	}

	_, partition, err := uc.findPartition(ctx, cpcName, partitionName)
	if err != nil {
		return dto.OperationResult{}, err
	}

	props := optionProperties(opts, updateExcluded)

	scope := bootScope{
		cpcName:       cpcName,
		partitionName: partitionName,
		partitionURI:  partition.URI,
		forUpdate:     true,
	}

	bootCfg, err := uc.resolveBootConfig(ctx, scope, opts)
	if err != nil {
		return dto.OperationResult{}, err
	}

	bootCfg.apply(props)
	applySSCDNSServers(opts, props)

	if len(props) == 0 {
		return dto.OperationResult{
			Partition: partitionName,
			Message:   fmt.Sprintf("no properties specified for updating partition %s", partitionName),
			Changed:   false,
		}, nil
	}

	if err := uc.client.UpdatePartition(ctx, partition.URI, props); err != nil {
		return dto.OperationResult{}, uc.remoteErr("Update", "client.UpdatePartition", err)
	}

	uc.forgetPartition(cpcName, partitionName)

	message := fmt.Sprintf("partition %s has been updated", partitionName)
	if newName, ok := props["name"].(string); ok && newName != partitionName {
		message = fmt.Sprintf("partition %s has been renamed to %s and was updated", partitionName, newName)
	}

	return dto.OperationResult{
		Partition: partitionName,
		URI:       partition.URI,
		Message:   message,
		Changed:   true,
	}, nil
}

// Delete removes a partition permanently.
func (uc *UseCase) Delete(ctx context.Context, cpcName, partitionName string) (dto.OperationResult, error) {
	_, partition, err := uc.findPartition(ctx, cpcName, partitionName)
	if err != nil {
		return dto.OperationResult{}, err
	}

	if err := uc.client.DeletePartition(ctx, partition.URI); err != nil {
		return dto.OperationResult{}, uc.remoteErr("Delete", "client.DeletePartition", err)
	}

	uc.forgetPartition(cpcName, partitionName)

	return dto.OperationResult{
		Partition: partitionName,
		Message:   fmt.Sprintf("partition %s has been deleted", partitionName),
		Changed:   true,
	}, nil
}

// Start requests a partition start and blocks until the server-side job
// completes.
func (uc *UseCase) Start(ctx context.Context, cpcName, partitionName string) (dto.OperationResult, error) {
	_, partition, err := uc.findPartition(ctx, cpcName, partitionName)
	if err != nil {
		return dto.OperationResult{}, err
	}

	if err := uc.client.StartPartition(ctx, partition.URI); err != nil {
		return dto.OperationResult{}, uc.remoteErr("Start", "client.StartPartition", err)
	}

	uc.forgetPartition(cpcName, partitionName)

	return dto.OperationResult{
		Partition: partitionName,
		Message:   fmt.Sprintf("partition %s has been started", partitionName),
		Changed:   true,
	}, nil
}

// Stop requests a partition stop and blocks until the server-side job
// completes.
func (uc *UseCase) Stop(ctx context.Context, cpcName, partitionName string) (dto.OperationResult, error) {
	_, partition, err := uc.findPartition(ctx, cpcName, partitionName)
	if err != nil {
		return dto.OperationResult{}, err
	}

	if err := uc.client.StopPartition(ctx, partition.URI); err != nil {
		return dto.OperationResult{}, uc.remoteErr("Stop", "client.StopPartition", err)
	}

	uc.forgetPartition(cpcName, partitionName)

	return dto.OperationResult{
		Partition: partitionName,
		Message:   fmt.Sprintf("partition %s has been stopped", partitionName),
		Changed:   true,
	}, nil
}
