package partitions

import (
	"context"
	"strings"

	dto "github.com/zhmc-toolkit/zhmc/internal/entity/dto/v1"
	"github.com/zhmc-toolkit/zhmc/internal/usecase/partitions/hmc"
)

// bootDevice is the effective boot source of a partition. bootNone is an
// explicit variant so the resolver's output is total: it means no override
// is produced and the server default applies.
type bootDevice string

const (
	bootNone           bootDevice = "none"
	bootStorageAdapter bootDevice = "storage-adapter"
	bootNetworkAdapter bootDevice = "network-adapter"
	bootFTP            bootDevice = "ftp"
	bootRemovableMedia bootDevice = "removable-media"
	bootISOImage       bootDevice = "iso-image"
)

// bootConfig is the resolved boot-device overlay.
type bootConfig struct {
	device bootDevice
	props  map[string]any
}

// apply merges the overlay into a property set. A bootNone config merges
// nothing.
func (b bootConfig) apply(props map[string]any) {
	if b.device == bootNone {
		return
	}

	props["boot-device"] = string(b.device)
	for k, v := range b.props {
		props[k] = v
	}
}

// bootScope is the context a resolver run operates in.
type bootScope struct {
	cpcName       string
	partitionName string
	partitionURI  string
	forUpdate     bool
}

// bootGroup is one mutually exclusive set of boot options. If any trigger
// option is supplied, every required option must be supplied too.
type bootGroup struct {
	name       string
	updateOnly bool
	trigger    []dto.OptionName
	required   []dto.OptionName
	resolve    func(ctx context.Context, uc *UseCase, scope bootScope, opts *dto.OptionSet) (bootConfig, error)
}

// bootGroups in priority order; the first matched group wins and later
// groups are not evaluated.
var bootGroups = []bootGroup{
	{
		name:       "FCP LUN",
		updateOnly: true,
		trigger:    []dto.OptionName{dto.OptBootStorageHBA, dto.OptBootStorageLUN, dto.OptBootStorageWWPN},
		required:   []dto.OptionName{dto.OptBootStorageHBA, dto.OptBootStorageLUN, dto.OptBootStorageWWPN},
		resolve:    resolveStorageBoot,
	},
	{
		name:       "network adapter",
		updateOnly: true,
		trigger:    []dto.OptionName{dto.OptBootNetworkNIC},
		required:   []dto.OptionName{dto.OptBootNetworkNIC},
		resolve:    resolveNetworkBoot,
	},
	{
		name:     "FTP server",
		trigger:  []dto.OptionName{dto.OptBootFTPHost, dto.OptBootFTPUsername, dto.OptBootFTPPassword, dto.OptBootFTPInsfile},
		required: []dto.OptionName{dto.OptBootFTPHost, dto.OptBootFTPUsername, dto.OptBootFTPPassword, dto.OptBootFTPInsfile},
		resolve:  resolveFTPBoot,
	},
	{
		name:     "removable media",
		trigger:  []dto.OptionName{dto.OptBootMediaFile},
		required: []dto.OptionName{dto.OptBootMediaFile},
		resolve:  resolveMediaBoot,
	},
	{
		name:       "ISO image",
		updateOnly: true,
		trigger:    []dto.OptionName{dto.OptBootISO},
		required:   []dto.OptionName{dto.OptBootISO},
		resolve:    resolveISOBoot,
	},
}

// resolveBootConfig picks the effective boot configuration from the
// supplied options. First complete group wins; options of lower-priority
// groups are ignored once a group matched.
func (uc *UseCase) resolveBootConfig(ctx context.Context, scope bootScope, opts *dto.OptionSet) (bootConfig, error) {
	for i, group := range bootGroups {
		if group.updateOnly && !scope.forUpdate {
			continue
		}

		if !anyPresent(opts, group.trigger) {
			continue
		}

		if missing := missingOf(opts, group.required); len(missing) > 0 {
			return bootConfig{}, incompleteBootGroupError(group.name, missing)
		}

		cfg, err := group.resolve(ctx, uc, scope, opts)
		if err != nil {
			return bootConfig{}, err
		}

		uc.logIgnoredBootOptions(scope, opts, group.name, bootGroups[i+1:])

		return cfg, nil
	}

	return bootConfig{device: bootNone}, nil
}

func resolveStorageBoot(ctx context.Context, uc *UseCase, scope bootScope, opts *dto.OptionSet) (bootConfig, error) {
	hbaName := opts.String(dto.OptBootStorageHBA)

	hba, err := uc.client.FindHBA(ctx, scope.partitionURI, hbaName)
	if err != nil {
		if hmc.IsNotFound(err) {
			return bootConfig{}, adapterNotFoundError("HBA", hbaName, scope.partitionName, scope.cpcName)
		}

		return bootConfig{}, uc.remoteErr("resolveBootConfig", "client.FindHBA", err)
	}

	return bootConfig{
		device: bootStorageAdapter,
		props: map[string]any{
			"boot-storage-device":       hba.URI,
			"boot-logical-unit-number":  opts.String(dto.OptBootStorageLUN),
			"boot-world-wide-port-name": opts.String(dto.OptBootStorageWWPN),
		},
	}, nil
}

func resolveNetworkBoot(ctx context.Context, uc *UseCase, scope bootScope, opts *dto.OptionSet) (bootConfig, error) {
	nicName := opts.String(dto.OptBootNetworkNIC)

	nic, err := uc.client.FindNIC(ctx, scope.partitionURI, nicName)
	if err != nil {
		if hmc.IsNotFound(err) {
			return bootConfig{}, adapterNotFoundError("NIC", nicName, scope.partitionName, scope.cpcName)
		}

		return bootConfig{}, uc.remoteErr("resolveBootConfig", "client.FindNIC", err)
	}

	return bootConfig{
		device: bootNetworkAdapter,
		props: map[string]any{
			"boot-network-device": nic.URI,
		},
	}, nil
}

func resolveFTPBoot(_ context.Context, _ *UseCase, _ bootScope, opts *dto.OptionSet) (bootConfig, error) {
	return bootConfig{
		device: bootFTP,
		props: map[string]any{
			"boot-ftp-host":     opts.String(dto.OptBootFTPHost),
			"boot-ftp-username": opts.String(dto.OptBootFTPUsername),
			"boot-ftp-password": opts.String(dto.OptBootFTPPassword),
			"boot-ftp-insfile":  opts.String(dto.OptBootFTPInsfile),
		},
	}, nil
}

func resolveMediaBoot(_ context.Context, _ *UseCase, _ bootScope, opts *dto.OptionSet) (bootConfig, error) {
	return bootConfig{
		device: bootRemovableMedia,
		props: map[string]any{
			"boot-removable-media": opts.String(dto.OptBootMediaFile),
		},
	}, nil
}

// The ISO itself is mounted through the mount-iso command; selecting it as
// boot source only flips the device.
func resolveISOBoot(_ context.Context, _ *UseCase, _ bootScope, _ *dto.OptionSet) (bootConfig, error) {
	return bootConfig{device: bootISOImage}, nil
}

// logIgnoredBootOptions makes the first-match-wins behavior visible when
// options of a lower-priority group were supplied alongside the winner.
func (uc *UseCase) logIgnoredBootOptions(scope bootScope, opts *dto.OptionSet, winner string, rest []bootGroup) {
	var ignored []string

	for _, group := range rest {
		if group.updateOnly && !scope.forUpdate {
			continue
		}

		for _, name := range group.trigger {
			if opts.Present(name) {
				ignored = append(ignored, string(name))
			}
		}
	}

	if len(ignored) > 0 {
		uc.log.Debug("boot from " + winner + " selected; ignoring options: " + strings.Join(ignored, ", "))
	}
}

func anyPresent(opts *dto.OptionSet, names []dto.OptionName) bool {
	for _, n := range names {
		if opts.Present(n) {
			return true
		}
	}

	return false
}

func missingOf(opts *dto.OptionSet, names []dto.OptionName) []dto.OptionName {
	var missing []dto.OptionName

	for _, n := range names {
		if !opts.Present(n) {
			missing = append(missing, n)
		}
	}

	return missing
}

// applySSCDNSServers splits the comma-separated DNS option into an ordered
// list property.
func applySSCDNSServers(opts *dto.OptionSet, props map[string]any) {
	v, ok := opts.Get(dto.OptSSCDNSServers)
	if !ok {
		return
	}

	if s, ok := v.(string); ok {
		props["ssc-dns-servers"] = strings.Split(s, ",")
	}
}
