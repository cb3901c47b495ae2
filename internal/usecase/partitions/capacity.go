package partitions

import (
	"github.com/zhmc-toolkit/zhmc/internal/entity"
)

// capacityFigures holds the derived processor figures for one partition.
// Nil means the figure is undefined for that partition (not active, or no
// usage sample).
type capacityFigures struct {
	IFLCapacity    *float64
	CPCapacity     *float64
	ProcessorUsage *float64
	ProcessorsUsed *float64
}

// processorKind selects which processor pool a pass computes over.
type processorKind struct {
	total      func(*entity.CPC) int
	weight     func(*entity.Partition) int
	processors func(*entity.Partition) int
}

var (
	iflKind = processorKind{
		total:      func(c *entity.CPC) int { return c.ProcessorCountIFL },
		weight:     func(p *entity.Partition) int { return p.InitialIFLProcessingWeight },
		processors: func(p *entity.Partition) int { return p.IFLProcessors },
	}
	cpKind = processorKind{
		total:      func(c *entity.CPC) int { return c.ProcessorCountGeneralPurpose },
		weight:     func(p *entity.Partition) int { return p.InitialCPProcessingWeight },
		processors: func(p *entity.Partition) int { return p.CPProcessors },
	}
)

// estimateCapacity computes the effective processor capacity and current
// consumption for every partition of a CPC. Pure function of the partition
// snapshots, the CPC totals and the usage samples; running it twice on the
// same inputs yields identical results.
func estimateCapacity(cpc *entity.CPC, parts []entity.Partition, usage map[string]float64) map[string]capacityFigures {
	figures := make(map[string]capacityFigures, len(parts))

	iflCapacity := capacityByKind(cpc, parts, iflKind)
	cpCapacity := capacityByKind(cpc, parts, cpKind)

	for i := range parts {
		p := &parts[i]

		f := capacityFigures{
			IFLCapacity: iflCapacity[p.Name],
			CPCapacity:  cpCapacity[p.Name],
		}

		// Partitions without a sample (typically not active) have no usage
		// figures at all.
		if sample, ok := usage[p.Name]; ok {
			f.ProcessorUsage = float64Ptr(sample)
			f.ProcessorsUsed = processorsUsed(sample, f.IFLCapacity, f.CPCapacity)
		}

		figures[p.Name] = f
	}

	return figures
}

// capacityByKind is one pass over a single processor kind. The shared
// weight sum must be fully accumulated before any capacity is computed,
// because the denominator spans all active shared-mode partitions of the
// kind.
func capacityByKind(cpc *entity.CPC, parts []entity.Partition, kind processorKind) map[string]*float64 {
	totalWeight := 0

	for i := range parts {
		p := &parts[i]
		if p.ProcessorMode == entity.ProcessorModeShared && p.Status == entity.StatusActive {
			totalWeight += kind.weight(p)
		}
	}

	capacities := make(map[string]*float64, len(parts))

	for i := range parts {
		p := &parts[i]

		switch {
		case p.Status != entity.StatusActive:
			capacities[p.Name] = nil
		case p.ProcessorMode == entity.ProcessorModeShared:
			// A zero weight sum cannot be apportioned; the figure is
			// reported as absent rather than dividing by zero.
			if totalWeight == 0 {
				capacities[p.Name] = nil

				continue
			}

			capacities[p.Name] = float64Ptr(float64(kind.total(cpc)) * float64(kind.weight(p)) / float64(totalWeight))
		default:
			capacities[p.Name] = float64Ptr(float64(kind.processors(p)))
		}
	}

	return capacities
}

// processorsUsed converts a usage percentage into consumed physical
// processors, summing both capacity kinds regardless of processor mode.
func processorsUsed(usagePct float64, iflCapacity, cpCapacity *float64) *float64 {
	if iflCapacity == nil && cpCapacity == nil {
		return nil
	}

	total := 0.0
	if iflCapacity != nil {
		total += *iflCapacity
	}

	if cpCapacity != nil {
		total += *cpCapacity
	}

	return float64Ptr(usagePct / 100 * total)
}

func float64Ptr(f float64) *float64 {
	return &f
}
