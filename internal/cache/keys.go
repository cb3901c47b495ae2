package cache

import "fmt"

// Cache key prefixes.
const (
	PrefixCPC       = "cpc:"
	PrefixPartition = "partition:"
)

// MakeCPCKey creates a cache key for a resolved CPC.
func MakeCPCKey(name string) string {
	return fmt.Sprintf("%s%s", PrefixCPC, name)
}

// MakePartitionKey creates a cache key for a resolved partition within a CPC.
func MakePartitionKey(cpcName, partitionName string) string {
	return fmt.Sprintf("%s%s/%s", PrefixPartition, cpcName, partitionName)
}
