package hmcrest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/zhmc-toolkit/zhmc/internal/entity"
	"github.com/zhmc-toolkit/zhmc/internal/usecase/partitions/hmc"
)

const partitionUsageGroup = "partition-usage"

// PartitionUsageMetrics creates a one-shot metrics context for the
// partition-usage group, retrieves the current samples and tears the
// context down again. Only partitions of the named CPC are reported,
// keyed by partition name.
func (c *Client) PartitionUsageMetrics(ctx context.Context, cpcName string) ([]entity.MetricSample, error) {
	cpc, err := c.FindCPC(ctx, cpcName)
	if err != nil {
		return nil, err
	}

	parts, err := c.ListPartitions(ctx, cpc.URI)
	if err != nil {
		return nil, err
	}

	nameByURI := make(map[string]string, len(parts))
	for i := range parts {
		nameByURI[parts[i].URI] = parts[i].Name
	}

	body := map[string]any{
		"anticipated-frequency-seconds": 15,
		"metric-groups":                 []string{partitionUsageGroup},
	}

	var created struct {
		MetricsContextURI string `json:"metrics-context-uri"`
		MetricGroupInfos  []struct {
			GroupName   string `json:"group-name"`
			MetricInfos []struct {
				MetricName string `json:"metric-name"`
			} `json:"metric-infos"`
		} `json:"metric-group-infos"`
	}

	if err := c.post(ctx, "/api/services/metrics/context", body, &created); err != nil {
		return nil, err
	}

	defer func() {
		_ = c.delete(ctx, created.MetricsContextURI)
	}()

	usageIndex := -1

	for _, group := range created.MetricGroupInfos {
		if group.GroupName != partitionUsageGroup {
			continue
		}

		for i, info := range group.MetricInfos {
			if info.MetricName == "processor-usage" {
				usageIndex = i

				break
			}
		}
	}

	if usageIndex < 0 {
		return nil, &hmc.Error{Kind: hmc.KindServerError, Message: "metrics context lacks processor-usage metric"}
	}

	raw, err := c.getText(ctx, created.MetricsContextURI)
	if err != nil {
		return nil, err
	}

	return parseUsageSamples(raw, usageIndex, nameByURI)
}

// getText retrieves a metrics response, which is plain text rather than
// JSON.
func (c *Client) getText(ctx context.Context, path string) (string, error) {
	if err := c.ensureSession(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return "", &hmc.Error{Kind: hmc.KindBadRequest, Message: "building request", Cause: err}
	}

	req.Header.Set(sessionHeader, c.session)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &hmc.Error{Kind: hmc.KindTransport, Message: err.Error(), Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", errorFromResponse(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &hmc.Error{Kind: hmc.KindTransport, Message: err.Error(), Cause: err}
	}

	return string(data), nil
}

// parseUsageSamples walks the metrics response format: a quoted group name
// line, then per resource a quoted URI line, a timestamp line and a
// comma-separated value line, each object closed by a blank line. A blank
// line where the next URI would start closes the group.
func parseUsageSamples(raw string, usageIndex int, nameByURI map[string]string) ([]entity.MetricSample, error) {
	var samples []entity.MetricSample

	lines := strings.Split(raw, "\n")

	inGroup := false

	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")

		if !inGroup {
			if strings.Trim(line, `"`) == partitionUsageGroup && strings.HasPrefix(line, `"`) {
				inGroup = true
			}

			continue
		}

		if line == "" {
			inGroup = false

			continue
		}

		if !strings.HasPrefix(line, `"`) {
			continue
		}

		// Object: URI line, timestamp line, values line, blank line.
		if i+2 >= len(lines) {
			break
		}

		uri := strings.Trim(line, `"`)
		values := strings.Split(strings.TrimRight(lines[i+2], "\r"), ",")
		i += 3

		name, ok := nameByURI[uri]
		if !ok {
			continue
		}

		if usageIndex >= len(values) {
			return nil, &hmc.Error{Kind: hmc.KindServerError, Message: fmt.Sprintf("metrics object for %s has %d values, need index %d", uri, len(values), usageIndex)}
		}

		usage, err := strconv.ParseFloat(strings.TrimSpace(values[usageIndex]), 64)
		if err != nil {
			return nil, &hmc.Error{Kind: hmc.KindServerError, Message: "parsing processor-usage value", Cause: err}
		}

		samples = append(samples, entity.MetricSample{
			PartitionName:  name,
			ProcessorUsage: usage,
		})
	}

	return samples, nil
}
