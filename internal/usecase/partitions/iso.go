package partitions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	dto "github.com/zhmc-toolkit/zhmc/internal/entity/dto/v1"
)

// MountISO uploads an ISO image file to a partition as its removable boot
// source. The image file handle is closed once the upload finished or
// failed. With SetBoot the partition's boot device is switched to the
// mounted image afterwards.
func (uc *UseCase) MountISO(ctx context.Context, cpcName, partitionName string, opts dto.MountISOOptions) (dto.OperationResult, error) {
	if err := validate.Struct(opts); err != nil {
		return dto.OperationResult{}, invalidOptionError("mount-iso requires an image file and an INS file path")
	}

	_, partition, err := uc.findPartition(ctx, cpcName, partitionName)
	if err != nil {
		return dto.OperationResult{}, err
	}

	image, err := os.Open(opts.ImageFile)
	if err != nil {
		return dto.OperationResult{}, invalidOptionError(fmt.Sprintf("cannot open image file: %v", err))
	}
	defer image.Close()

	imageName := filepath.Base(opts.ImageFile)

	if err := uc.client.MountISOImage(ctx, partition.URI, image, imageName, opts.InsFile); err != nil {
		return dto.OperationResult{}, uc.remoteErr("MountISO", "client.MountISOImage", err)
	}

	if opts.SetBoot {
		props := map[string]any{"boot-device": string(bootISOImage)}
		if err := uc.client.UpdatePartition(ctx, partition.URI, props); err != nil {
			return dto.OperationResult{}, uc.remoteErr("MountISO", "client.UpdatePartition", err)
		}
	}

	return dto.OperationResult{
		Partition: partitionName,
		Message:   fmt.Sprintf("ISO image %s has been mounted to partition %s", imageName, partitionName),
		Changed:   true,
	}, nil
}

// UnmountISO detaches the currently mounted ISO image. A partition without
// a mounted image yields a no-op result, not an error. When the image is
// the active boot device, the boot device is reset to none first.
func (uc *UseCase) UnmountISO(ctx context.Context, cpcName, partitionName string) (dto.OperationResult, error) {
	_, partition, err := uc.findPartition(ctx, cpcName, partitionName)
	if err != nil {
		return dto.OperationResult{}, err
	}

	full, err := uc.client.GetPartitionProperties(ctx, partition.URI)
	if err != nil {
		return dto.OperationResult{}, uc.remoteErr("UnmountISO", "client.GetPartitionProperties", err)
	}

	if full.BootISOImageName == "" {
		return dto.OperationResult{
			Partition: partitionName,
			Message:   fmt.Sprintf("no ISO image is mounted to partition %s", partitionName),
			Changed:   false,
		}, nil
	}

	if full.BootDevice == string(bootISOImage) {
		props := map[string]any{"boot-device": string(bootNone)}
		if err := uc.client.UpdatePartition(ctx, partition.URI, props); err != nil {
			return dto.OperationResult{}, uc.remoteErr("UnmountISO", "client.UpdatePartition", err)
		}
	}

	if err := uc.client.UnmountISOImage(ctx, partition.URI); err != nil {
		return dto.OperationResult{}, uc.remoteErr("UnmountISO", "client.UnmountISOImage", err)
	}

	return dto.OperationResult{
		Partition: partitionName,
		Message:   fmt.Sprintf("ISO image %s has been unmounted from partition %s", full.BootISOImageName, partitionName),
		Changed:   true,
	}, nil
}
