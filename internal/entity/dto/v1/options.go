package dto

// OptionName is the canonical, hyphenated name of a command option. The
// same names double as partition property names unless the translation
// table in the usecase says otherwise.
type OptionName string

// Options accepted by partition create and update.
const (
	OptName          OptionName = "name"
	OptDescription   OptionName = "description"
	OptCPProcessors  OptionName = "cp-processors"
	OptIFLProcessors OptionName = "ifl-processors"
	OptProcessorMode OptionName = "processor-mode"
	OptInitialMemory OptionName = "initial-memory"
	OptMaximumMemory OptionName = "maximum-memory"
	OptType          OptionName = "type"

	OptBootFTPHost     OptionName = "boot-ftp-host"
	OptBootFTPUsername OptionName = "boot-ftp-username"
	OptBootFTPPassword OptionName = "boot-ftp-password"
	OptBootFTPInsfile  OptionName = "boot-ftp-insfile"
	OptBootMediaFile   OptionName = "boot-media-file"
	OptBootStorageHBA  OptionName = "boot-storage-hba"
	OptBootStorageLUN  OptionName = "boot-storage-lun"
	OptBootStorageWWPN OptionName = "boot-storage-wwpn"
	OptBootNetworkNIC  OptionName = "boot-network-nic"
	OptBootISO         OptionName = "boot-iso"

	OptAccessGlobalPerformanceData      OptionName = "access-global-performance-data"
	OptPermitCrossPartitionCommands     OptionName = "permit-cross-partition-commands"
	OptAccessBasicCounterSet            OptionName = "access-basic-counter-set"
	OptAccessProblemStateCounterSet     OptionName = "access-problem-state-counter-set"
	OptAccessCryptoActivityCounterSet   OptionName = "access-crypto-activity-counter-set"
	OptAccessExtendedCounterSet         OptionName = "access-extended-counter-set"
	OptAccessCoprocessorGroupSet        OptionName = "access-coprocessor-group-set"
	OptAccessBasicSampling              OptionName = "access-basic-sampling"
	OptAccessDiagnosticSampling         OptionName = "access-diagnostic-sampling"
	OptSSCHostName                      OptionName = "ssc-host-name"
	OptSSCBootSelection                 OptionName = "ssc-boot-selection"
	OptSSCIPv4Gateway                   OptionName = "ssc-ipv4-gateway"
	OptSSCDNSServers                    OptionName = "ssc-dns-servers"
	OptSSCMasterUserid                  OptionName = "ssc-master-userid"
	OptSSCMasterPW                      OptionName = "ssc-master-pw"
	OptInitialCPProcessingWeight        OptionName = "initial-cp-processing-weight"
	OptInitialIFLProcessingWeight       OptionName = "initial-ifl-processing-weight"
	OptMinimumIFLProcessingWeight       OptionName = "minimum-ifl-processing-weight"
	OptMinimumCPProcessingWeight        OptionName = "minimum-cp-processing-weight"
	OptMaximumIFLProcessingWeight       OptionName = "maximum-ifl-processing-weight"
	OptMaximumCPProcessingWeight        OptionName = "maximum-cp-processing-weight"
)

// OptionSet is a transient mapping from canonical option name to value,
// assembled once per command invocation. Options never supplied by the user
// are simply absent.
type OptionSet struct {
	values map[OptionName]any
	order  []OptionName
}

// NewOptionSet creates an empty option set.
func NewOptionSet() *OptionSet {
	return &OptionSet{values: make(map[OptionName]any)}
}

// Set records an option value. Setting the same name twice keeps the last
// value and the original position.
func (s *OptionSet) Set(name OptionName, value any) *OptionSet {
	if _, seen := s.values[name]; !seen {
		s.order = append(s.order, name)
	}

	s.values[name] = value

	return s
}

// Present reports whether the option was supplied.
func (s *OptionSet) Present(name OptionName) bool {
	_, ok := s.values[name]

	return ok
}

// Get returns the option value and whether it was supplied.
func (s *OptionSet) Get(name OptionName) (any, bool) {
	v, ok := s.values[name]

	return v, ok
}

// String returns the option value as a string; absent options yield "".
func (s *OptionSet) String(name OptionName) string {
	v, ok := s.values[name]
	if !ok {
		return ""
	}

	str, _ := v.(string)

	return str
}

// Names returns the supplied option names in insertion order.
func (s *OptionSet) Names() []OptionName {
	out := make([]OptionName, len(s.order))
	copy(out, s.order)

	return out
}

// Len returns the number of supplied options.
func (s *OptionSet) Len() int {
	return len(s.values)
}
