package hmcrest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/zhmc-toolkit/zhmc/internal/entity"
	"github.com/zhmc-toolkit/zhmc/internal/usecase/partitions/hmc"
)

const jobPollInterval = 2 * time.Second

// FindCPC resolves a CPC by name and pulls its processor counts.
func (c *Client) FindCPC(ctx context.Context, name string) (*entity.CPC, error) {
	var list struct {
		CPCs []struct {
			ObjectURI string `json:"object-uri"`
			Name      string `json:"name"`
		} `json:"cpcs"`
	}

	if err := c.get(ctx, "/api/cpcs?name="+url.QueryEscape(name), &list); err != nil {
		return nil, err
	}

	if len(list.CPCs) == 0 {
		return nil, &hmc.Error{Kind: hmc.KindNotFound, Message: fmt.Sprintf("CPC %s not found", name)}
	}

	var props map[string]any
	if err := c.get(ctx, list.CPCs[0].ObjectURI, &props); err != nil {
		return nil, err
	}

	return &entity.CPC{
		Name:                         list.CPCs[0].Name,
		URI:                          list.CPCs[0].ObjectURI,
		ProcessorCountIFL:            intProp(props, "processor-count-ifl"),
		ProcessorCountGeneralPurpose: intProp(props, "processor-count-general-purpose"),
	}, nil
}

// ListPartitions enumerates the partitions of a CPC with summary
// properties.
func (c *Client) ListPartitions(ctx context.Context, cpcURI string) ([]entity.Partition, error) {
	var list struct {
		Partitions []map[string]any `json:"partitions"`
	}

	if err := c.get(ctx, cpcURI+"/partitions", &list); err != nil {
		return nil, err
	}

	parts := make([]entity.Partition, len(list.Partitions))
	for i, props := range list.Partitions {
		parts[i] = partitionFromProps(props)
	}

	return parts, nil
}

// FindPartition resolves a partition by name within a CPC.
func (c *Client) FindPartition(ctx context.Context, cpcURI, name string) (*entity.Partition, error) {
	var list struct {
		Partitions []map[string]any `json:"partitions"`
	}

	if err := c.get(ctx, cpcURI+"/partitions?name="+url.QueryEscape(name), &list); err != nil {
		return nil, err
	}

	if len(list.Partitions) == 0 {
		return nil, &hmc.Error{Kind: hmc.KindNotFound, Message: fmt.Sprintf("partition %s not found", name)}
	}

	p := partitionFromProps(list.Partitions[0])

	return &p, nil
}

// GetPartitionProperties pulls the full property set of a partition.
func (c *Client) GetPartitionProperties(ctx context.Context, partitionURI string) (*entity.Partition, error) {
	var props map[string]any
	if err := c.get(ctx, partitionURI, &props); err != nil {
		return nil, err
	}

	p := partitionFromProps(props)
	p.Properties = props

	return &p, nil
}

// CreatePartition creates a partition and returns it with the
// server-assigned URI.
func (c *Client) CreatePartition(ctx context.Context, cpcURI string, properties map[string]any) (*entity.Partition, error) {
	var result struct {
		ObjectURI string `json:"object-uri"`
	}

	if err := c.post(ctx, cpcURI+"/partitions", properties, &result); err != nil {
		return nil, err
	}

	name, _ := properties["name"].(string)

	return &entity.Partition{
		Name:   name,
		URI:    result.ObjectURI,
		Status: entity.StatusStopped,
	}, nil
}

// UpdatePartition merges properties into a partition.
func (c *Client) UpdatePartition(ctx context.Context, partitionURI string, properties map[string]any) error {
	return c.post(ctx, partitionURI, properties, nil)
}

// DeletePartition removes a partition.
func (c *Client) DeletePartition(ctx context.Context, partitionURI string) error {
	return c.delete(ctx, partitionURI)
}

// StartPartition requests a start and waits for the asynchronous job.
func (c *Client) StartPartition(ctx context.Context, partitionURI string) error {
	return c.runJob(ctx, partitionURI+"/operations/start")
}

// StopPartition requests a stop and waits for the asynchronous job.
func (c *Client) StopPartition(ctx context.Context, partitionURI string) error {
	return c.runJob(ctx, partitionURI+"/operations/stop")
}

// runJob issues an asynchronous operation and polls the returned job until
// it reaches a terminal state.
func (c *Client) runJob(ctx context.Context, path string) error {
	var accepted struct {
		JobURI string `json:"job-uri"`
	}

	if err := c.post(ctx, path, nil, &accepted); err != nil {
		return err
	}

	if accepted.JobURI == "" {
		// Operation completed synchronously.
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return &hmc.Error{Kind: hmc.KindTransport, Message: "job wait canceled", Cause: ctx.Err()}
		case <-time.After(jobPollInterval):
		}

		var job struct {
			Status        string `json:"status"`
			JobStatusCode int    `json:"job-status-code"`
			JobReasonCode int    `json:"job-reason-code"`
			JobResults    struct {
				Message string `json:"message"`
			} `json:"job-results"`
		}

		if err := c.get(ctx, accepted.JobURI, &job); err != nil {
			return err
		}

		if job.Status != "complete" {
			continue
		}

		// Job records are kept until explicitly deleted.
		_ = c.delete(ctx, accepted.JobURI)

		if job.JobStatusCode >= http.StatusOK && job.JobStatusCode < http.StatusMultipleChoices {
			return nil
		}

		msg := job.JobResults.Message
		if msg == "" {
			msg = fmt.Sprintf("job failed with status code %d", job.JobStatusCode)
		}

		return &hmc.Error{Kind: hmc.KindJobFailed, Message: msg, Reason: job.JobReasonCode}
	}
}

// FindHBA resolves a storage adapter by name within a partition.
func (c *Client) FindHBA(ctx context.Context, partitionURI, name string) (*entity.HBA, error) {
	var props map[string]any
	if err := c.get(ctx, partitionURI, &props); err != nil {
		return nil, err
	}

	for _, uri := range stringSliceProp(props, "hba-uris") {
		var hbaProps map[string]any
		if err := c.get(ctx, uri, &hbaProps); err != nil {
			return nil, err
		}

		if stringProp(hbaProps, "name") == name {
			return &entity.HBA{Name: name, URI: uri}, nil
		}
	}

	return nil, &hmc.Error{Kind: hmc.KindNotFound, Message: fmt.Sprintf("HBA %s not found", name)}
}

// FindNIC resolves a network adapter by name within a partition.
func (c *Client) FindNIC(ctx context.Context, partitionURI, name string) (*entity.NIC, error) {
	var props map[string]any
	if err := c.get(ctx, partitionURI, &props); err != nil {
		return nil, err
	}

	for _, uri := range stringSliceProp(props, "nic-uris") {
		var nicProps map[string]any
		if err := c.get(ctx, uri, &nicProps); err != nil {
			return nil, err
		}

		if stringProp(nicProps, "name") == name {
			return &entity.NIC{Name: name, URI: uri}, nil
		}
	}

	return nil, &hmc.Error{Kind: hmc.KindNotFound, Message: fmt.Sprintf("NIC %s not found", name)}
}

// MountISOImage uploads the image stream. The image name and INS file path
// travel as query parameters; the body is the raw image.
func (c *Client) MountISOImage(ctx context.Context, partitionURI string, image io.Reader, imageName, insFile string) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	query := url.Values{}
	query.Set("image-name", imageName)
	query.Set("ins-file-name", insFile)

	path := partitionURI + "/operations/mount-iso-image?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, image)
	if err != nil {
		return &hmc.Error{Kind: hmc.KindBadRequest, Message: "building request", Cause: err}
	}

	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set(sessionHeader, c.session)

	resp, err := c.http.Do(req)
	if err != nil {
		return &hmc.Error{Kind: hmc.KindTransport, Message: err.Error(), Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}

	io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for keep-alive

	return nil
}

// UnmountISOImage detaches the mounted image.
func (c *Client) UnmountISOImage(ctx context.Context, partitionURI string) error {
	return c.post(ctx, partitionURI+"/operations/unmount-iso-image", nil, nil)
}

// partitionFromProps maps a property bag to the typed mirror. JSON numbers
// arrive as float64.
func partitionFromProps(props map[string]any) entity.Partition {
	return entity.Partition{
		Name:                       stringProp(props, "name"),
		URI:                        stringProp(props, "object-uri"),
		Status:                     stringProp(props, "status"),
		Type:                       stringProp(props, "type"),
		OSType:                     stringProp(props, "os-type"),
		ProcessorMode:              stringProp(props, "processor-mode"),
		IFLProcessors:              intProp(props, "ifl-processors"),
		CPProcessors:               intProp(props, "cp-processors"),
		InitialIFLProcessingWeight: intProp(props, "initial-ifl-processing-weight"),
		InitialCPProcessingWeight:  intProp(props, "initial-cp-processing-weight"),
		InitialMemory:              intProp(props, "initial-memory"),
		MaximumMemory:              intProp(props, "maximum-memory"),
		BootDevice:                 stringProp(props, "boot-device"),
		BootISOImageName:           stringProp(props, "boot-iso-image-name"),
		Description:                stringProp(props, "description"),
	}
}

func stringProp(props map[string]any, key string) string {
	s, _ := props[key].(string)

	return s
}

func intProp(props map[string]any, key string) int {
	switch v := props[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func stringSliceProp(props map[string]any, key string) []string {
	raw, _ := props[key].([]any)

	out := make([]string, 0, len(raw))

	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}

	return out
}
