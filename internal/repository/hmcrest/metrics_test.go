package hmcrest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metricsResponse = `"partition-usage"
"/api/partitions/1"
1756500000000
10,20.5,30

"/api/partitions/2"
1756500000000
40,3.25,99


`

func TestParseUsageSamples(t *testing.T) {
	t.Parallel()

	nameByURI := map[string]string{
		"/api/partitions/1": "P1",
		"/api/partitions/2": "P2",
	}

	samples, err := parseUsageSamples(metricsResponse, 1, nameByURI)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, "P1", samples[0].PartitionName)
	assert.InDelta(t, 20.5, samples[0].ProcessorUsage, 1e-9)
	assert.Equal(t, "P2", samples[1].PartitionName)
	assert.InDelta(t, 3.25, samples[1].ProcessorUsage, 1e-9)
}

func TestParseUsageSamplesSkipsUnknownResources(t *testing.T) {
	t.Parallel()

	samples, err := parseUsageSamples(metricsResponse, 1, map[string]string{"/api/partitions/2": "P2"})
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "P2", samples[0].PartitionName)
}

func TestParseUsageSamplesStopsAtGroupBoundary(t *testing.T) {
	t.Parallel()

	raw := `"partition-usage"
"/api/partitions/1"
1756500000000
10,20.5,30


"adapter-usage"
"/api/adapters/1"
1756500000000
1,2,3


`

	nameByURI := map[string]string{
		"/api/partitions/1": "P1",
		"/api/adapters/1":   "A1",
	}

	samples, err := parseUsageSamples(raw, 1, nameByURI)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "P1", samples[0].PartitionName)
}

func TestParseUsageSamplesEmptyResponse(t *testing.T) {
	t.Parallel()

	samples, err := parseUsageSamples("\n", 0, map[string]string{})
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestParseUsageSamplesIndexOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := parseUsageSamples(metricsResponse, 5, map[string]string{"/api/partitions/1": "P1"})
	require.Error(t, err)
}
