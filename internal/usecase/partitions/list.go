package partitions

import (
	"context"

	"github.com/zhmc-toolkit/zhmc/internal/entity"
	dto "github.com/zhmc-toolkit/zhmc/internal/entity/dto/v1"
)

// List enumerates the partitions of a CPC. The display extensions append
// columns independently; the usage extensions additionally pull full
// properties, run the capacity estimation and join the current usage
// metrics.
func (uc *UseCase) List(ctx context.Context, cpcName string, opts dto.ListOptions) ([]dto.PartitionRow, error) {
	cpc, err := uc.findCPC(ctx, cpcName)
	if err != nil {
		return nil, err
	}

	parts, err := uc.client.ListPartitions(ctx, cpc.URI)
	if err != nil {
		return nil, uc.remoteErr("List", "client.ListPartitions", err)
	}

	wantUsage := opts.IFLUsage || opts.CPUsage

	var figures map[string]capacityFigures

	if wantUsage {
		// Summary listings do not carry the capacity properties; pull the
		// full set for every partition before estimating.
		for i := range parts {
			full, err := uc.client.GetPartitionProperties(ctx, parts[i].URI)
			if err != nil {
				return nil, uc.remoteErr("List", "client.GetPartitionProperties", err)
			}

			parts[i] = *full
		}

		samples, err := uc.client.PartitionUsageMetrics(ctx, cpcName)
		if err != nil {
			return nil, uc.remoteErr("List", "client.PartitionUsageMetrics", err)
		}

		usage := make(map[string]float64, len(samples))
		for _, s := range samples {
			usage[s.PartitionName] = s.ProcessorUsage
		}

		figures = estimateCapacity(cpc, parts, usage)
	}

	rows := make([]dto.PartitionRow, len(parts))
	for i := range parts {
		rows[i] = buildRow(&parts[i], opts, figures)
	}

	return rows, nil
}

func buildRow(p *entity.Partition, opts dto.ListOptions, figures map[string]capacityFigures) dto.PartitionRow {
	row := dto.PartitionRow{
		Name:   p.Name,
		Status: p.Status,
	}

	if opts.Type {
		row.Type = stringPtr(p.Type)
		row.OSType = stringPtr(p.OSType)
	}

	if opts.URI {
		row.URI = stringPtr(p.URI)
	}

	if opts.MemoryUsage {
		row.InitialMemory = intPtr(p.InitialMemory)
	}

	if opts.IFLUsage || opts.CPUsage {
		row.ProcessorMode = stringPtr(p.ProcessorMode)

		f := figures[p.Name]

		if opts.IFLUsage {
			row.IFLs = intPtr(p.IFLProcessors)
			row.IFLWeight = intPtr(p.InitialIFLProcessingWeight)
			row.IFLCapacity = f.IFLCapacity
		}

		if opts.CPUsage {
			row.CPs = intPtr(p.CPProcessors)
			row.CPWeight = intPtr(p.InitialCPProcessingWeight)
			row.CPCapacity = f.CPCapacity
		}

		row.ProcessorUsage = f.ProcessorUsage
		row.ProcessorsUsed = f.ProcessorsUsed
	}

	return row
}

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
