package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	dto "github.com/zhmc-toolkit/zhmc/internal/entity/dto/v1"
	"github.com/zhmc-toolkit/zhmc/internal/usecase/partitions"
)

type flagKind int

const (
	flagString flagKind = iota
	flagInt
	flagBool
)

// optionFlag ties a command flag to its canonical option name. Flags with
// always set contribute their default value even when not given, which is
// how creation defaults are applied.
type optionFlag struct {
	name      dto.OptionName
	kind      flagKind
	usage     string
	defString string
	defInt    int
	always    bool
}

func sharedOptionFlags() []optionFlag {
	return []optionFlag{
		{name: dto.OptDescription, kind: flagString, usage: "description of the partition"},
		{name: dto.OptCPProcessors, kind: flagInt, usage: "number of general purpose (CP) processors"},
		{name: dto.OptIFLProcessors, kind: flagInt, usage: "number of IFL processors"},
		{name: dto.OptProcessorMode, kind: flagString, usage: "sharing mode of the processors (shared, dedicated)"},
		{name: dto.OptInitialMemory, kind: flagInt, usage: "initial amount of memory (in MiB)"},
		{name: dto.OptMaximumMemory, kind: flagInt, usage: "maximum amount of memory (in MiB)"},
		{name: dto.OptBootFTPHost, kind: flagString, usage: "boot from an FTP server: host name or IP address"},
		{name: dto.OptBootFTPUsername, kind: flagString, usage: "boot from an FTP server: user name"},
		{name: dto.OptBootFTPPassword, kind: flagString, usage: "boot from an FTP server: password"},
		{name: dto.OptBootFTPInsfile, kind: flagString, usage: "boot from an FTP server: path of the INS file"},
		{name: dto.OptBootMediaFile, kind: flagString, usage: "boot from removable media: path of the image file"},
		{name: dto.OptAccessGlobalPerformanceData, kind: flagBool, usage: "allow access to global performance data"},
		{name: dto.OptPermitCrossPartitionCommands, kind: flagBool, usage: "permit commands to other partitions"},
		{name: dto.OptAccessBasicCounterSet, kind: flagBool, usage: "allow access to the basic counter set"},
		{name: dto.OptAccessProblemStateCounterSet, kind: flagBool, usage: "allow access to the problem state counter set"},
		{name: dto.OptAccessCryptoActivityCounterSet, kind: flagBool, usage: "allow access to the crypto activity counter set"},
		{name: dto.OptAccessExtendedCounterSet, kind: flagBool, usage: "allow access to the extended counter set"},
		{name: dto.OptAccessCoprocessorGroupSet, kind: flagBool, usage: "allow access to the coprocessor group set"},
		{name: dto.OptAccessBasicSampling, kind: flagBool, usage: "allow access to basic sampling"},
		{name: dto.OptAccessDiagnosticSampling, kind: flagBool, usage: "allow access to diagnostic sampling"},
		{name: dto.OptSSCHostName, kind: flagString, usage: "host name of the SSC appliance"},
		{name: dto.OptSSCBootSelection, kind: flagString, usage: "boot selection of the SSC appliance (installer)"},
		{name: dto.OptSSCIPv4Gateway, kind: flagString, usage: "IPv4 default gateway of the SSC appliance"},
		{name: dto.OptSSCDNSServers, kind: flagString, usage: "comma-separated DNS servers of the SSC appliance"},
		{name: dto.OptSSCMasterUserid, kind: flagString, usage: "master user ID of the SSC appliance"},
		{name: dto.OptSSCMasterPW, kind: flagString, usage: "master password of the SSC appliance"},
		{name: dto.OptInitialIFLProcessingWeight, kind: flagInt, usage: "initial IFL processing weight (1-999)"},
		{name: dto.OptInitialCPProcessingWeight, kind: flagInt, usage: "initial CP processing weight (1-999)"},
		{name: dto.OptMinimumIFLProcessingWeight, kind: flagInt, usage: "minimum IFL processing weight (1-999)"},
		{name: dto.OptMinimumCPProcessingWeight, kind: flagInt, usage: "minimum CP processing weight (1-999)"},
		{name: dto.OptMaximumIFLProcessingWeight, kind: flagInt, usage: "maximum IFL processing weight (1-999)"},
		{name: dto.OptMaximumCPProcessingWeight, kind: flagInt, usage: "maximum CP processing weight (1-999)"},
	}
}

// createOptionFlags carries the creation defaults on the flags themselves.
func createOptionFlags() []optionFlag {
	flags := []optionFlag{
		{name: dto.OptName, kind: flagString, usage: "name of the new partition"},
		{name: dto.OptType, kind: flagString, usage: "type of the partition (ssc, linux, zvm)", defString: partitions.DefaultPartitionType, always: true},
	}

	for _, f := range sharedOptionFlags() {
		switch f.name {
		case dto.OptProcessorMode:
			f.defString = partitions.DefaultProcessorMode
			f.always = true
		case dto.OptInitialMemory:
			f.defInt = partitions.DefaultInitialMemoryMB
			f.always = true
		case dto.OptMaximumMemory:
			f.defInt = partitions.DefaultMaximumMemoryMB
			f.always = true
		case dto.OptInitialIFLProcessingWeight, dto.OptInitialCPProcessingWeight:
			f.defInt = partitions.DefaultProcessingWeight
			f.always = true
		case dto.OptMinimumIFLProcessingWeight, dto.OptMinimumCPProcessingWeight:
			f.defInt = partitions.MinProcessingWeight
			f.always = true
		case dto.OptMaximumIFLProcessingWeight, dto.OptMaximumCPProcessingWeight:
			f.defInt = partitions.MaxProcessingWeight
			f.always = true
		}

		flags = append(flags, f)
	}

	return flags
}

func updateOptionFlags() []optionFlag {
	flags := []optionFlag{
		{name: dto.OptName, kind: flagString, usage: "new name of the partition"},
		{name: dto.OptBootStorageHBA, kind: flagString, usage: "boot from an FCP LUN: name of the HBA to boot from"},
		{name: dto.OptBootStorageLUN, kind: flagString, usage: "boot from an FCP LUN: logical unit number"},
		{name: dto.OptBootStorageWWPN, kind: flagString, usage: "boot from an FCP LUN: world wide port name"},
		{name: dto.OptBootNetworkNIC, kind: flagString, usage: "boot from a PXE server: name of the NIC to boot from"},
		{name: dto.OptBootISO, kind: flagBool, usage: "boot from the mounted ISO image"},
	}

	return append(flags, sharedOptionFlags()...)
}

func registerOptionFlags(cmd *cobra.Command, flags []optionFlag) {
	for _, f := range flags {
		switch f.kind {
		case flagString:
			cmd.Flags().String(string(f.name), f.defString, f.usage)
		case flagInt:
			cmd.Flags().Int(string(f.name), f.defInt, f.usage)
		case flagBool:
			cmd.Flags().Bool(string(f.name), false, f.usage)
		}
	}
}

// collectOptions builds the option set from the flags the user actually
// supplied, plus the defaults of always flags.
func collectOptions(cmd *cobra.Command, flags []optionFlag) *dto.OptionSet {
	opts := dto.NewOptionSet()

	for _, f := range flags {
		if !cmd.Flags().Changed(string(f.name)) && !f.always {
			continue
		}

		switch f.kind {
		case flagString:
			v, _ := cmd.Flags().GetString(string(f.name))
			opts.Set(f.name, v)
		case flagInt:
			v, _ := cmd.Flags().GetInt(string(f.name))
			opts.Set(f.name, v)
		case flagBool:
			v, _ := cmd.Flags().GetBool(string(f.name))
			opts.Set(f.name, v)
		}
	}

	return opts
}

func newPartitionCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "partition",
		Aliases: []string{"part"},
		Short:   "Manage the partitions of a CPC in DPM mode",
	}

	cmd.AddCommand(
		newPartitionListCmd(a),
		newPartitionShowCmd(a),
		newPartitionCreateCmd(a),
		newPartitionUpdateCmd(a),
		newPartitionDeleteCmd(a),
		newPartitionStartCmd(a),
		newPartitionStopCmd(a),
		newPartitionMountISOCmd(a),
		newPartitionUnmountISOCmd(a),
	)

	return cmd
}

const listUsageHelp = `The --ifl-usage and --cp-usage options add columns about the allocation
and usage of IFL and CP processors:

  processor-mode   Sharing mode of the partition's processors.
  ifls / cps       Number of processors allocated to the partition.
  ifl-weight / cp-weight
                   Initial processing weight of the partition.
  ifl-capacity / cp-capacity
                   Estimated processor capacity available to the partition,
                   in units of processors. For dedicated partitions this is
                   the allocated processor count. For shared partitions it
                   is the total processor count of the CPC, apportioned by
                   the processing weights of all active shared partitions.
                   The column is empty for partitions that are not active.
  processor-usage  Current processor usage in percent of the partition's
                   capacity.
  processors-used  Current number of processors used, derived from
                   processor-usage and the capacity figures.

The capacity figures are estimates: weights of stopped partitions do not
participate, so the figures shift as partitions start and stop.`

func newPartitionListCmd(a *App) *cobra.Command {
	var (
		opts      dto.ListOptions
		helpUsage bool
	)

	cmd := &cobra.Command{
		Use:   "list CPC",
		Short: "List the partitions in a CPC",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpUsage {
				fmt.Fprintln(a.out, listUsageHelp)

				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
			}

			rows, err := a.parts.List(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			return renderPartitionRows(a.out, a.format, opts, rows)
		},
	}

	cmd.Flags().BoolVar(&opts.Type, "type", false, "show additional partition type columns")
	cmd.Flags().BoolVar(&opts.URI, "uri", false, "show the resource URI column")
	cmd.Flags().BoolVar(&opts.IFLUsage, "ifl-usage", false, "show IFL usage and capacity columns")
	cmd.Flags().BoolVar(&opts.CPUsage, "cp-usage", false, "show CP usage and capacity columns")
	cmd.Flags().BoolVar(&opts.MemoryUsage, "memory-usage", false, "show memory allocation columns")
	cmd.Flags().BoolVar(&helpUsage, "help-usage", false, "explain the usage-related columns and exit")

	return cmd
}

func newPartitionShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show CPC PARTITION",
		Short: "Show the properties of a partition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.parts.Show(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return renderPartitionDetail(a.out, a.format, detail)
		},
	}
}

func newPartitionCreateCmd(a *App) *cobra.Command {
	flags := createOptionFlags()

	cmd := &cobra.Command{
		Use:   "create CPC",
		Short: "Create a partition in a CPC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.parts.Create(cmd.Context(), args[0], collectOptions(cmd, flags))
			if err != nil {
				return err
			}

			return renderResult(a.out, a.format, result)
		},
	}

	registerOptionFlags(cmd, flags)
	_ = cmd.MarkFlagRequired(string(dto.OptName))

	return cmd
}

func newPartitionUpdateCmd(a *App) *cobra.Command {
	flags := updateOptionFlags()

	cmd := &cobra.Command{
		Use:   "update CPC PARTITION",
		Short: "Update the properties of a partition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.parts.Update(cmd.Context(), args[0], args[1], collectOptions(cmd, flags))
			if err != nil {
				return err
			}

			return renderResult(a.out, a.format, result)
		},
	}

	registerOptionFlags(cmd, flags)

	return cmd
}

func newPartitionDeleteCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete CPC PARTITION",
		Short: "Delete a partition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !a.confirm(fmt.Sprintf("Are you sure you want to delete partition %s in CPC %s?", args[1], args[0])) {
				fmt.Fprintln(a.out, "Aborted.")

				return nil
			}

			result, err := a.parts.Delete(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return renderResult(a.out, a.format, result)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func newPartitionStartCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start CPC PARTITION",
		Short: "Start a partition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.parts.Start(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return renderResult(a.out, a.format, result)
		},
	}
}

func newPartitionStopCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop CPC PARTITION",
		Short: "Stop a partition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.parts.Stop(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return renderResult(a.out, a.format, result)
		},
	}
}

func newPartitionMountISOCmd(a *App) *cobra.Command {
	var opts dto.MountISOOptions

	cmd := &cobra.Command{
		Use:   "mountiso CPC PARTITION",
		Short: "Mount an ISO image to a partition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.parts.MountISO(cmd.Context(), args[0], args[1], opts)
			if err != nil {
				return err
			}

			return renderResult(a.out, a.format, result)
		},
	}

	cmd.Flags().StringVar(&opts.ImageFile, "imagefile", "", "path of the ISO image file")
	cmd.Flags().StringVar(&opts.InsFile, "imageinsfile", "", "path of the INS file within the ISO image")
	cmd.Flags().BoolVar(&opts.SetBoot, "boot", false, "set the partition to boot from the mounted image")
	_ = cmd.MarkFlagRequired("imagefile")
	_ = cmd.MarkFlagRequired("imageinsfile")

	return cmd
}

func newPartitionUnmountISOCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unmountiso CPC PARTITION",
		Short: "Unmount the ISO image from a partition",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.parts.UnmountISO(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return renderResult(a.out, a.format, result)
		},
	}
}

// confirm asks a yes/no question on the command's input stream.
func (a *App) confirm(question string) bool {
	fmt.Fprintf(a.out, "%s [y/N]: ", question)

	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes"
}
