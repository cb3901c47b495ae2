package partitions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	dto "github.com/zhmc-toolkit/zhmc/internal/entity/dto/v1"
)

// propertyTarget is one row of the option-to-property translation table.
type propertyTarget struct {
	property string
	// exclude marks options a dedicated resolver handles; the generic
	// mapper skips them.
	exclude bool
}

// translations lists every option whose property name differs from the
// canonical option name. Options not listed map by the identity convention
// (hyphenated option name == property name).
var translations = map[dto.OptionName]propertyTarget{
	dto.OptType: {property: "type"},
}

// bootOptions are handled by the boot-configuration resolver, never by the
// generic mapper. Storage, network and ISO boot only exist for update.
var (
	createExcluded = excludeSet(
		dto.OptBootFTPHost,
		dto.OptBootFTPUsername,
		dto.OptBootFTPPassword,
		dto.OptBootFTPInsfile,
		dto.OptBootMediaFile,
		dto.OptSSCDNSServers,
	)

	updateExcluded = excludeSet(
		dto.OptBootStorageHBA,
		dto.OptBootStorageLUN,
		dto.OptBootStorageWWPN,
		dto.OptBootNetworkNIC,
		dto.OptBootFTPHost,
		dto.OptBootFTPUsername,
		dto.OptBootFTPPassword,
		dto.OptBootFTPInsfile,
		dto.OptBootMediaFile,
		dto.OptBootISO,
		dto.OptSSCDNSServers,
	)
)

func excludeSet(names ...dto.OptionName) map[dto.OptionName]struct{} {
	set := make(map[dto.OptionName]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}

	return set
}

// optionProperties converts an option set into a partition property set:
// one property per supplied, non-excluded option. No validation happens
// here.
func optionProperties(opts *dto.OptionSet, excluded map[dto.OptionName]struct{}) map[string]any {
	props := make(map[string]any, opts.Len())

	for _, name := range opts.Names() {
		if _, skip := excluded[name]; skip {
			continue
		}

		property := string(name)
		if t, ok := translations[name]; ok {
			if t.exclude {
				continue
			}

			property = t.property
		}

		value, _ := opts.Get(name)
		props[property] = value
	}

	return props
}

// optionRules are the value constraints checked before any property
// mapping. Weights share the 1..999 range of the appliance.
var optionRules = map[string]any{
	string(dto.OptProcessorMode):              "omitempty,oneof=shared dedicated",
	string(dto.OptType):                       "omitempty,oneof=ssc linux zvm",
	string(dto.OptSSCBootSelection):           "omitempty,oneof=installer",
	string(dto.OptIFLProcessors):              "omitempty,min=0",
	string(dto.OptCPProcessors):               "omitempty,min=0",
	string(dto.OptInitialMemory):              "omitempty,min=1",
	string(dto.OptMaximumMemory):              "omitempty,min=1",
	string(dto.OptInitialIFLProcessingWeight): "omitempty,min=1,max=999",
	string(dto.OptInitialCPProcessingWeight):  "omitempty,min=1,max=999",
	string(dto.OptMinimumIFLProcessingWeight): "omitempty,min=1,max=999",
	string(dto.OptMinimumCPProcessingWeight):  "omitempty,min=1,max=999",
	string(dto.OptMaximumIFLProcessingWeight): "omitempty,min=1,max=999",
	string(dto.OptMaximumCPProcessingWeight):  "omitempty,min=1,max=999",
}

var validate = validator.New()

// validateOptions checks the supplied options against optionRules and
// reports every violating option by name.
func validateOptions(opts *dto.OptionSet) error {
	data := make(map[string]any)
	rules := make(map[string]any)

	for _, name := range opts.Names() {
		rule, ok := optionRules[string(name)]
		if !ok {
			continue
		}

		value, _ := opts.Get(name)
		data[string(name)] = value
		rules[string(name)] = rule
	}

	if len(data) == 0 {
		return nil
	}

	failures := validate.ValidateMap(data, rules)
	if len(failures) == 0 {
		return nil
	}

	names := make([]string, 0, len(failures))
	for field := range failures {
		names = append(names, field)
	}

	sort.Strings(names)

	return invalidOptionError(fmt.Sprintf("invalid value for option(s): %s", strings.Join(names, ", ")))
}
