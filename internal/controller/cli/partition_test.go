package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "github.com/zhmc-toolkit/zhmc/internal/entity/dto/v1"
)

// fakeFeature records calls so command wiring can be asserted without a
// live session.
type fakeFeature struct {
	listRows   []dto.PartitionRow
	listCPC    string
	listOpts   dto.ListOptions
	createOpts *dto.OptionSet
	updateOpts *dto.OptionSet
	deleted    bool
	result     dto.OperationResult
	err        error
}

func (f *fakeFeature) List(_ context.Context, cpcName string, opts dto.ListOptions) ([]dto.PartitionRow, error) {
	f.listCPC = cpcName
	f.listOpts = opts

	return f.listRows, f.err
}

func (f *fakeFeature) Show(_ context.Context, _, partitionName string) (dto.PartitionDetail, error) {
	return dto.PartitionDetail{Name: partitionName, Properties: map[string]any{"status": "active"}}, f.err
}

func (f *fakeFeature) Create(_ context.Context, _ string, opts *dto.OptionSet) (dto.OperationResult, error) {
	f.createOpts = opts

	return f.result, f.err
}

func (f *fakeFeature) Update(_ context.Context, _, _ string, opts *dto.OptionSet) (dto.OperationResult, error) {
	f.updateOpts = opts

	return f.result, f.err
}

func (f *fakeFeature) Delete(_ context.Context, _, _ string) (dto.OperationResult, error) {
	f.deleted = true

	return f.result, f.err
}

func (f *fakeFeature) Start(_ context.Context, _, _ string) (dto.OperationResult, error) {
	return f.result, f.err
}

func (f *fakeFeature) Stop(_ context.Context, _, _ string) (dto.OperationResult, error) {
	return f.result, f.err
}

func (f *fakeFeature) MountISO(_ context.Context, _, _ string, _ dto.MountISOOptions) (dto.OperationResult, error) {
	return f.result, f.err
}

func (f *fakeFeature) UnmountISO(_ context.Context, _, _ string) (dto.OperationResult, error) {
	return f.result, f.err
}

func runCommand(t *testing.T, feature *fakeFeature, stdin string, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	a := &App{parts: feature, out: out, in: strings.NewReader(stdin)}

	root := NewRootCmd(a, "test")
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	err := root.Execute()

	return out.String(), err
}

func TestListCommand(t *testing.T) {
	t.Parallel()

	feature := &fakeFeature{
		listRows: []dto.PartitionRow{
			{Name: "P1", Status: "active"},
			{Name: "P2", Status: "stopped"},
		},
	}

	out, err := runCommand(t, feature, "", "partition", "list", "CPC1", "--type")
	require.NoError(t, err)

	assert.Equal(t, "CPC1", feature.listCPC)
	assert.True(t, feature.listOpts.Type)
	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "stopped")
}

func TestListCommandHelpUsage(t *testing.T) {
	t.Parallel()

	feature := &fakeFeature{}

	out, err := runCommand(t, feature, "", "partition", "list", "--help-usage")
	require.NoError(t, err)

	assert.Contains(t, out, "ifl-capacity")
	assert.Empty(t, feature.listCPC)
}

func TestCreateCommandAppliesDefaults(t *testing.T) {
	t.Parallel()

	feature := &fakeFeature{result: dto.OperationResult{Message: "new partition P1 has been created"}}

	out, err := runCommand(t, feature, "", "partition", "create", "CPC1", "--name", "P1")
	require.NoError(t, err)
	require.NotNil(t, feature.createOpts)

	opts := feature.createOpts
	assert.Equal(t, "P1", opts.String(dto.OptName))
	assert.Equal(t, "linux", opts.String(dto.OptType))
	assert.Equal(t, "shared", opts.String(dto.OptProcessorMode))

	memory, ok := opts.Get(dto.OptInitialMemory)
	require.True(t, ok)
	assert.Equal(t, 1024, memory)

	weights := map[dto.OptionName]int{
		dto.OptInitialIFLProcessingWeight: 100,
		dto.OptInitialCPProcessingWeight:  100,
		dto.OptMinimumIFLProcessingWeight: 1,
		dto.OptMinimumCPProcessingWeight:  1,
		dto.OptMaximumIFLProcessingWeight: 999,
		dto.OptMaximumCPProcessingWeight:  999,
	}
	for name, want := range weights {
		got, ok := opts.Get(name)
		require.True(t, ok, "missing default for %s", name)
		assert.Equal(t, want, got, string(name))
	}

	// Processor counts are not defaulted at the flag layer.
	assert.False(t, opts.Present(dto.OptIFLProcessors))

	assert.Contains(t, out, "has been created")
}

func TestUpdateCommandOnlyCollectsChangedFlags(t *testing.T) {
	t.Parallel()

	feature := &fakeFeature{result: dto.OperationResult{Message: "partition P1 has been updated"}}

	_, err := runCommand(t, feature, "", "partition", "update", "CPC1", "P1", "--description", "new text")
	require.NoError(t, err)
	require.NotNil(t, feature.updateOpts)

	assert.Equal(t, 1, feature.updateOpts.Len())
	assert.Equal(t, "new text", feature.updateOpts.String(dto.OptDescription))
}

func TestDeleteCommandAbortsWithoutConfirmation(t *testing.T) {
	t.Parallel()

	feature := &fakeFeature{}

	out, err := runCommand(t, feature, "n\n", "partition", "delete", "CPC1", "P1")
	require.NoError(t, err)

	assert.False(t, feature.deleted)
	assert.Contains(t, out, "Aborted.")
}

func TestDeleteCommandConfirmed(t *testing.T) {
	t.Parallel()

	feature := &fakeFeature{result: dto.OperationResult{Message: "partition P1 has been deleted"}}

	out, err := runCommand(t, feature, "y\n", "partition", "delete", "CPC1", "P1")
	require.NoError(t, err)

	assert.True(t, feature.deleted)
	assert.Contains(t, out, "has been deleted")
}

func TestDeleteCommandYesFlagSkipsPrompt(t *testing.T) {
	t.Parallel()

	feature := &fakeFeature{result: dto.OperationResult{Message: "partition P1 has been deleted"}}

	_, err := runCommand(t, feature, "", "partition", "delete", "CPC1", "P1", "--yes")
	require.NoError(t, err)

	assert.True(t, feature.deleted)
}

func TestCollectOptionsBooleans(t *testing.T) {
	t.Parallel()

	flags := updateOptionFlags()

	cmd := &cobra.Command{}
	registerOptionFlags(cmd, flags)

	require.NoError(t, cmd.Flags().Set(string(dto.OptAccessBasicSampling), "true"))
	require.NoError(t, cmd.Flags().Set(string(dto.OptIFLProcessors), "2"))

	opts := collectOptions(cmd, flags)

	v, ok := opts.Get(dto.OptAccessBasicSampling)
	require.True(t, ok)
	assert.Equal(t, true, v)

	n, ok := opts.Get(dto.OptIFLProcessors)
	require.True(t, ok)
	assert.Equal(t, 2, n)

	assert.Equal(t, 2, opts.Len())
}
