package partitions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zhmc-toolkit/zhmc/internal/cache"
	"github.com/zhmc-toolkit/zhmc/internal/entity"
	dto "github.com/zhmc-toolkit/zhmc/internal/entity/dto/v1"
	"github.com/zhmc-toolkit/zhmc/internal/mocks"
	"github.com/zhmc-toolkit/zhmc/internal/usecase/partitions/hmc"
	"github.com/zhmc-toolkit/zhmc/pkg/logger"
)

func bootTestUseCase(t *testing.T) (*UseCase, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	return New(client, logger.New("error"), cache.New(0)), client
}

func TestResolveBootConfigIncompleteGroups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        *dto.OptionSet
		wantMissing []string
	}{
		{
			name:        "storage group without lun and wwpn",
			opts:        dto.NewOptionSet().Set(dto.OptBootStorageHBA, "hba1"),
			wantMissing: []string{"boot-storage-lun", "boot-storage-wwpn"},
		},
		{
			name: "storage group without wwpn",
			opts: dto.NewOptionSet().
				Set(dto.OptBootStorageHBA, "hba1").
				Set(dto.OptBootStorageLUN, "0001"),
			wantMissing: []string{"boot-storage-wwpn"},
		},
		{
			name: "ftp group without insfile",
			opts: dto.NewOptionSet().
				Set(dto.OptBootFTPHost, "ftp.example.com").
				Set(dto.OptBootFTPUsername, "user").
				Set(dto.OptBootFTPPassword, "pw"),
			wantMissing: []string{"boot-ftp-insfile"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc, _ := bootTestUseCase(t)

			scope := bootScope{cpcName: "CPC1", partitionName: "P1", forUpdate: true}

			_, err := uc.resolveBootConfig(context.Background(), scope, tt.opts)
			require.Error(t, err)

			var invalid InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.wantMissing, invalid.Missing)

			for _, name := range tt.wantMissing {
				assert.Contains(t, invalid.Console.FriendlyMessage(), name)
			}
		})
	}
}

func TestResolveBootConfigPriorityOrder(t *testing.T) {
	t.Parallel()

	uc, client := bootTestUseCase(t)

	// Both a complete storage group and a complete FTP group: storage wins
	// and the FTP options are ignored.
	opts := dto.NewOptionSet().
		Set(dto.OptBootFTPHost, "ftp.example.com").
		Set(dto.OptBootFTPUsername, "user").
		Set(dto.OptBootFTPPassword, "pw").
		Set(dto.OptBootFTPInsfile, "/images/boot.ins").
		Set(dto.OptBootStorageHBA, "hba1").
		Set(dto.OptBootStorageLUN, "0001").
		Set(dto.OptBootStorageWWPN, "5005076802100c1b")

	client.EXPECT().
		FindHBA(gomock.Any(), "/api/partitions/1", "hba1").
		Return(&entity.HBA{Name: "hba1", URI: "/api/partitions/1/hbas/1"}, nil)

	scope := bootScope{cpcName: "CPC1", partitionName: "P1", partitionURI: "/api/partitions/1", forUpdate: true}

	cfg, err := uc.resolveBootConfig(context.Background(), scope, opts)
	require.NoError(t, err)
	assert.Equal(t, bootStorageAdapter, cfg.device)

	props := map[string]any{}
	cfg.apply(props)

	assert.Equal(t, "storage-adapter", props["boot-device"])
	assert.Equal(t, "/api/partitions/1/hbas/1", props["boot-storage-device"])
	assert.Equal(t, "0001", props["boot-logical-unit-number"])
	assert.Equal(t, "5005076802100c1b", props["boot-world-wide-port-name"])
	assert.NotContains(t, props, "boot-ftp-host")
}

func TestResolveBootConfigCreateSkipsUpdateOnlyGroups(t *testing.T) {
	t.Parallel()

	uc, _ := bootTestUseCase(t)

	// At creation time the storage options cannot trigger their group; with
	// no other boot options the result is no override at all.
	opts := dto.NewOptionSet().
		Set(dto.OptBootStorageHBA, "hba1").
		Set(dto.OptBootStorageLUN, "0001").
		Set(dto.OptBootStorageWWPN, "5005076802100c1b")

	cfg, err := uc.resolveBootConfig(context.Background(), bootScope{cpcName: "CPC1"}, opts)
	require.NoError(t, err)
	assert.Equal(t, bootNone, cfg.device)

	props := map[string]any{}
	cfg.apply(props)
	assert.Empty(t, props)
}

func TestResolveBootConfigFTPOnCreate(t *testing.T) {
	t.Parallel()

	uc, _ := bootTestUseCase(t)

	opts := dto.NewOptionSet().
		Set(dto.OptBootFTPHost, "ftp.example.com").
		Set(dto.OptBootFTPUsername, "user").
		Set(dto.OptBootFTPPassword, "pw").
		Set(dto.OptBootFTPInsfile, "/images/boot.ins")

	cfg, err := uc.resolveBootConfig(context.Background(), bootScope{cpcName: "CPC1"}, opts)
	require.NoError(t, err)
	assert.Equal(t, bootFTP, cfg.device)

	props := map[string]any{}
	cfg.apply(props)

	assert.Equal(t, "ftp", props["boot-device"])
	assert.Equal(t, "ftp.example.com", props["boot-ftp-host"])
	assert.Equal(t, "user", props["boot-ftp-username"])
	assert.Equal(t, "pw", props["boot-ftp-password"])
	assert.Equal(t, "/images/boot.ins", props["boot-ftp-insfile"])
}

func TestResolveBootConfigNetworkAdapter(t *testing.T) {
	t.Parallel()

	uc, client := bootTestUseCase(t)

	opts := dto.NewOptionSet().Set(dto.OptBootNetworkNIC, "nic1")

	client.EXPECT().
		FindNIC(gomock.Any(), "/api/partitions/1", "nic1").
		Return(&entity.NIC{Name: "nic1", URI: "/api/partitions/1/nics/1"}, nil)

	scope := bootScope{cpcName: "CPC1", partitionName: "P1", partitionURI: "/api/partitions/1", forUpdate: true}

	cfg, err := uc.resolveBootConfig(context.Background(), scope, opts)
	require.NoError(t, err)
	assert.Equal(t, bootNetworkAdapter, cfg.device)

	props := map[string]any{}
	cfg.apply(props)
	assert.Equal(t, "/api/partitions/1/nics/1", props["boot-network-device"])
}

func TestResolveBootConfigHBANotFound(t *testing.T) {
	t.Parallel()

	uc, client := bootTestUseCase(t)

	opts := dto.NewOptionSet().
		Set(dto.OptBootStorageHBA, "missing").
		Set(dto.OptBootStorageLUN, "0001").
		Set(dto.OptBootStorageWWPN, "5005076802100c1b")

	client.EXPECT().
		FindHBA(gomock.Any(), "/api/partitions/1", "missing").
		Return(nil, &hmc.Error{Kind: hmc.KindNotFound, Message: "no such HBA"})

	scope := bootScope{cpcName: "CPC1", partitionName: "P1", partitionURI: "/api/partitions/1", forUpdate: true}

	_, err := uc.resolveBootConfig(context.Background(), scope, opts)
	require.Error(t, err)

	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Console.FriendlyMessage(), "could not find HBA missing in partition P1 in CPC CPC1")
}

func TestResolveBootConfigTransportErrorPassesThrough(t *testing.T) {
	t.Parallel()

	uc, client := bootTestUseCase(t)

	opts := dto.NewOptionSet().Set(dto.OptBootNetworkNIC, "nic1")

	client.EXPECT().
		FindNIC(gomock.Any(), gomock.Any(), "nic1").
		Return(nil, errors.New("connection reset"))

	scope := bootScope{cpcName: "CPC1", partitionName: "P1", partitionURI: "/api/partitions/1", forUpdate: true}

	_, err := uc.resolveBootConfig(context.Background(), scope, opts)
	require.Error(t, err)

	var remote RemoteError
	assert.ErrorAs(t, err, &remote)
}

func TestApplySSCDNSServers(t *testing.T) {
	t.Parallel()

	opts := dto.NewOptionSet().Set(dto.OptSSCDNSServers, "9.9.9.9,8.8.8.8")
	props := map[string]any{}

	applySSCDNSServers(opts, props)

	assert.Equal(t, []string{"9.9.9.9", "8.8.8.8"}, props["ssc-dns-servers"])
}
