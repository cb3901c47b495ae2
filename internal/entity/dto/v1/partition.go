package dto

// ListOptions are the independent display extensions of the list command.
// Each flag appends columns without changing the underlying query.
type ListOptions struct {
	Type        bool
	URI         bool
	IFLUsage    bool
	CPUsage     bool
	MemoryUsage bool
}

// PartitionRow is one record of the list output. Pointer fields are only
// populated when the corresponding display extension was requested; derived
// capacity figures stay nil for partitions where they are undefined.
type PartitionRow struct {
	Name   string `json:"name"`
	Status string `json:"status"`

	Type   *string `json:"partition-type,omitempty"`
	OSType *string `json:"os-type,omitempty"`
	URI    *string `json:"object-uri,omitempty"`

	InitialMemory *int `json:"initial-memory,omitempty"`

	ProcessorMode *string `json:"processor-mode,omitempty"`

	IFLs        *int     `json:"ifls,omitempty"`
	IFLWeight   *int     `json:"ifl-weight,omitempty"`
	IFLCapacity *float64 `json:"ifl-capacity,omitempty"`

	CPs        *int     `json:"cps,omitempty"`
	CPWeight   *int     `json:"cp-weight,omitempty"`
	CPCapacity *float64 `json:"cp-capacity,omitempty"`

	ProcessorUsage *float64 `json:"processor-usage,omitempty"`
	ProcessorsUsed *float64 `json:"processors-used,omitempty"`
}

// PartitionDetail is the full property set of one partition.
type PartitionDetail struct {
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties"`
}

// OperationResult reports the outcome of a mutating command.
type OperationResult struct {
	Partition string `json:"partition"`
	URI       string `json:"uri,omitempty"`
	Message   string `json:"message"`
	// Changed is false for the documented no-ops (nothing to update,
	// nothing to unmount).
	Changed bool `json:"changed"`
}

// MountISOOptions are the inputs of the mount-iso command.
type MountISOOptions struct {
	ImageFile string `validate:"required"`
	InsFile   string `validate:"required"`
	// SetBoot also switches the partition's boot device to the mounted
	// image after the upload.
	SetBoot bool
}
