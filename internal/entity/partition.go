// Package entity mirrors the HMC resources this tool manages. The typed
// fields cover the properties the commands act on; Properties carries the
// full bag as returned by the appliance.
package entity

// Partition status values owned by the server.
const (
	StatusActive  = "active"
	StatusStopped = "stopped"
)

// Processor sharing modes.
const (
	ProcessorModeShared    = "shared"
	ProcessorModeDedicated = "dedicated"
)

// Partition is a DPM-mode compute instance within a CPC.
type Partition struct {
	Name   string
	URI    string
	Status string

	Type   string
	OSType string

	ProcessorMode              string
	IFLProcessors              int
	CPProcessors               int
	InitialIFLProcessingWeight int
	InitialCPProcessingWeight  int
	InitialMemory              int
	MaximumMemory              int

	BootDevice       string
	BootISOImageName string

	Description string

	// Properties is the full property bag when pulled; nil for list results
	// that only carry the summary fields above.
	Properties map[string]any
}

// CPC is a Central Processor Complex owning zero or more partitions.
type CPC struct {
	Name                         string
	URI                          string
	ProcessorCountIFL            int
	ProcessorCountGeneralPurpose int
}

// HBA is a virtual storage adapter attached to a partition.
type HBA struct {
	Name string
	URI  string
}

// NIC is a virtual network adapter attached to a partition.
type NIC struct {
	Name string
	URI  string
}

// MetricSample is one current partition-usage measurement. Partitions that
// are not active have no sample.
type MetricSample struct {
	PartitionName  string
	ProcessorUsage float64
}
