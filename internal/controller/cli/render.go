package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	dto "github.com/zhmc-toolkit/zhmc/internal/entity/dto/v1"
)

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// renderPartitionRows writes the list output. The column set tracks the
// requested display extensions; derived figures that are undefined render
// as empty cells.
func renderPartitionRows(w io.Writer, format string, opts dto.ListOptions, rows []dto.PartitionRow) error {
	if format == formatJSON {
		return renderJSON(w, rows)
	}

	usage := opts.IFLUsage || opts.CPUsage

	headers := []string{"name", "status"}
	if opts.Type {
		headers = append(headers, "type", "os-type")
	}

	if opts.URI {
		headers = append(headers, "object-uri")
	}

	if usage {
		headers = append(headers, "processor-mode")
	}

	if opts.IFLUsage {
		headers = append(headers, "ifls", "ifl-weight", "ifl-capacity")
	}

	if opts.CPUsage {
		headers = append(headers, "cps", "cp-weight", "cp-capacity")
	}

	if usage {
		headers = append(headers, "processor-usage", "processors-used")
	}

	if opts.MemoryUsage {
		headers = append(headers, "initial-memory")
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, r := range rows {
		cells := []string{r.Name, r.Status}
		if opts.Type {
			cells = append(cells, strCell(r.Type), strCell(r.OSType))
		}

		if opts.URI {
			cells = append(cells, strCell(r.URI))
		}

		if usage {
			cells = append(cells, strCell(r.ProcessorMode))
		}

		if opts.IFLUsage {
			cells = append(cells, intCell(r.IFLs), intCell(r.IFLWeight), floatCell(r.IFLCapacity))
		}

		if opts.CPUsage {
			cells = append(cells, intCell(r.CPs), intCell(r.CPWeight), floatCell(r.CPCapacity))
		}

		if usage {
			cells = append(cells, floatCell(r.ProcessorUsage), floatCell(r.ProcessorsUsed))
		}

		if opts.MemoryUsage {
			cells = append(cells, intCell(r.InitialMemory))
		}

		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

// renderPartitionDetail writes the full property set, sorted by property
// name in table form.
func renderPartitionDetail(w io.Writer, format string, detail dto.PartitionDetail) error {
	if format == formatJSON {
		return renderJSON(w, detail)
	}

	names := make([]string, 0, len(detail.Properties))
	for name := range detail.Properties {
		names = append(names, name)
	}

	sort.Strings(names)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "property\tvalue")

	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%v\n", name, detail.Properties[name])
	}

	return tw.Flush()
}

func renderResult(w io.Writer, format string, result dto.OperationResult) error {
	if format == formatJSON {
		return renderJSON(w, result)
	}

	_, err := fmt.Fprintln(w, result.Message)

	return err
}

func strCell(v *string) string {
	if v == nil {
		return ""
	}

	return *v
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}

	return strconv.Itoa(*v)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', 2, 64)
}
