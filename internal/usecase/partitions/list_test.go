package partitions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zhmc-toolkit/zhmc/internal/entity"
	dto "github.com/zhmc-toolkit/zhmc/internal/entity/dto/v1"
)

func TestListPlain(t *testing.T) {
	t.Parallel()

	uc, client := newTestUseCase(t)

	client.EXPECT().FindCPC(gomock.Any(), "CPC1").Return(testCPC(), nil)
	client.EXPECT().
		ListPartitions(gomock.Any(), "/api/cpcs/1").
		Return([]entity.Partition{
			{Name: "P1", Status: entity.StatusActive, URI: "/api/partitions/1"},
			{Name: "P2", Status: entity.StatusStopped, URI: "/api/partitions/2"},
		}, nil)

	rows, err := uc.List(context.Background(), "CPC1", dto.ListOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "P1", rows[0].Name)
	assert.Equal(t, "active", rows[0].Status)
	assert.Nil(t, rows[0].Type)
	assert.Nil(t, rows[0].URI)
	assert.Nil(t, rows[0].IFLCapacity)
}

func TestListTypeAndURIColumns(t *testing.T) {
	t.Parallel()

	uc, client := newTestUseCase(t)

	client.EXPECT().FindCPC(gomock.Any(), "CPC1").Return(testCPC(), nil)
	client.EXPECT().
		ListPartitions(gomock.Any(), "/api/cpcs/1").
		Return([]entity.Partition{
			{Name: "P1", Status: entity.StatusActive, URI: "/api/partitions/1", Type: "linux", OSType: "Linux"},
		}, nil)

	rows, err := uc.List(context.Background(), "CPC1", dto.ListOptions{Type: true, URI: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NotNil(t, rows[0].Type)
	require.NotNil(t, rows[0].OSType)
	require.NotNil(t, rows[0].URI)
	assert.Equal(t, "linux", *rows[0].Type)
	assert.Equal(t, "Linux", *rows[0].OSType)
	assert.Equal(t, "/api/partitions/1", *rows[0].URI)
}

func TestListIFLUsage(t *testing.T) {
	t.Parallel()

	uc, client := newTestUseCase(t)

	summary := []entity.Partition{
		{Name: "P1", URI: "/api/partitions/1"},
		{Name: "P2", URI: "/api/partitions/2"},
	}

	full := []entity.Partition{
		{
			Name:                       "P1",
			URI:                        "/api/partitions/1",
			Status:                     entity.StatusActive,
			ProcessorMode:              entity.ProcessorModeShared,
			IFLProcessors:              2,
			InitialIFLProcessingWeight: 100,
		},
		{
			Name:                       "P2",
			URI:                        "/api/partitions/2",
			Status:                     entity.StatusActive,
			ProcessorMode:              entity.ProcessorModeShared,
			IFLProcessors:              4,
			InitialIFLProcessingWeight: 300,
		},
	}

	client.EXPECT().FindCPC(gomock.Any(), "CPC1").Return(testCPC(), nil)
	client.EXPECT().ListPartitions(gomock.Any(), "/api/cpcs/1").Return(summary, nil)
	client.EXPECT().GetPartitionProperties(gomock.Any(), "/api/partitions/1").Return(&full[0], nil)
	client.EXPECT().GetPartitionProperties(gomock.Any(), "/api/partitions/2").Return(&full[1], nil)
	client.EXPECT().
		PartitionUsageMetrics(gomock.Any(), "CPC1").
		Return([]entity.MetricSample{{PartitionName: "P1", ProcessorUsage: 20}}, nil)

	rows, err := uc.List(context.Background(), "CPC1", dto.ListOptions{IFLUsage: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// CPC has 10 IFLs; weights 100 and 300 split them 2.5 / 7.5.
	require.NotNil(t, rows[0].IFLCapacity)
	require.NotNil(t, rows[1].IFLCapacity)
	assert.InDelta(t, 2.5, *rows[0].IFLCapacity, 1e-9)
	assert.InDelta(t, 7.5, *rows[1].IFLCapacity, 1e-9)

	require.NotNil(t, rows[0].ProcessorUsage)
	require.NotNil(t, rows[0].ProcessorsUsed)
	assert.InDelta(t, 20.0, *rows[0].ProcessorUsage, 1e-9)
	assert.InDelta(t, 0.5, *rows[0].ProcessorsUsed, 1e-9)

	// P2 had no usage sample.
	assert.Nil(t, rows[1].ProcessorUsage)
	assert.Nil(t, rows[1].ProcessorsUsed)

	require.NotNil(t, rows[0].IFLs)
	require.NotNil(t, rows[0].IFLWeight)
	assert.Equal(t, 2, *rows[0].IFLs)
	assert.Equal(t, 100, *rows[0].IFLWeight)
}

func TestListMemoryUsage(t *testing.T) {
	t.Parallel()

	uc, client := newTestUseCase(t)

	client.EXPECT().FindCPC(gomock.Any(), "CPC1").Return(testCPC(), nil)
	client.EXPECT().
		ListPartitions(gomock.Any(), "/api/cpcs/1").
		Return([]entity.Partition{
			{Name: "P1", Status: entity.StatusActive, InitialMemory: 4096},
		}, nil)

	rows, err := uc.List(context.Background(), "CPC1", dto.ListOptions{MemoryUsage: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NotNil(t, rows[0].InitialMemory)
	assert.Equal(t, 4096, *rows[0].InitialMemory)
}
