// Package hmcrest is the REST implementation of the hmc.Client interface
// against the HMC Web Services API. It performs one logon per process and
// does not retry or renew sessions; failed calls surface as hmc.Error with
// a machine-distinguishable kind.
package hmcrest

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/zhmc-toolkit/zhmc/config"
	"github.com/zhmc-toolkit/zhmc/internal/usecase/partitions/hmc"
	"github.com/zhmc-toolkit/zhmc/pkg/logger"
)

const sessionHeader = "X-API-Session"

// Client talks to one HMC. It is safe for sequential use by one command
// invocation; no concurrent calls are made.
type Client struct {
	base    string
	userid  string
	passwd  string
	http    *http.Client
	log     logger.Interface
	session string
	mu      sync.Mutex
}

var _ hmc.Client = (*Client)(nil)

// New builds a client from the HMC configuration. No connection is made
// until the first call.
func New(cfg config.HMC, log logger.Interface) (*Client, error) {
	tlsCfg := &tls.Config{MinVersion: tls.VersionTLS12}

	if !cfg.VerifyCert {
		tlsCfg.InsecureSkipVerify = true
	} else if cfg.CACertFile != "" {
		pem, err := os.ReadFile(cfg.CACertFile)
		if err != nil {
			return nil, fmt.Errorf("reading CA cert file: %w", err)
		}

		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", cfg.CACertFile)
		}

		tlsCfg.RootCAs = pool
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Minute
	}

	return &Client{
		base:   "https://" + cfg.Host + ":" + cfg.Port,
		userid: cfg.Userid,
		passwd: cfg.Password,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{TLSClientConfig: tlsCfg},
		},
		log: log,
	}, nil
}

// ensureSession performs the one logon of this process.
func (c *Client) ensureSession(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != "" {
		return nil
	}

	body := map[string]string{"userid": c.userid, "password": c.passwd}

	var result struct {
		APISession string `json:"api-session"`
	}

	if err := c.call(ctx, http.MethodPost, "/api/sessions", body, &result, false); err != nil {
		return err
	}

	if result.APISession == "" {
		return &hmc.Error{Kind: hmc.KindAuth, Message: "logon returned no session token"}
	}

	c.session = result.APISession

	return nil
}

// call issues one request and decodes the JSON response into out (out may
// be nil). withSession controls whether the session header is attached.
func (c *Client) call(ctx context.Context, method, path string, body, out any, withSession bool) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &hmc.Error{Kind: hmc.KindBadRequest, Message: "encoding request body", Cause: err}
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return &hmc.Error{Kind: hmc.KindBadRequest, Message: "building request", Cause: err}
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if withSession {
		req.Header.Set(sessionHeader, c.session)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &hmc.Error{Kind: hmc.KindTransport, Message: err.Error(), Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for keep-alive

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}

		return &hmc.Error{Kind: hmc.KindServerError, Message: "decoding response", Cause: err}
	}

	return nil
}

// get is call with an implicit session.
func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	return c.call(ctx, http.MethodGet, path, nil, out, true)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	return c.call(ctx, http.MethodPost, path, body, out, true)
}

func (c *Client) delete(ctx context.Context, path string) error {
	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	return c.call(ctx, http.MethodDelete, path, nil, nil, true)
}

// errorFromResponse maps an appliance error body and HTTP status to the
// uniform error type.
func errorFromResponse(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
		Reason  int    `json:"reason"`
	}

	_ = json.NewDecoder(resp.Body).Decode(&body)

	if body.Message == "" {
		body.Message = resp.Status
	}

	kind := hmc.KindServerError

	switch {
	case resp.StatusCode == http.StatusNotFound:
		kind = hmc.KindNotFound
	case resp.StatusCode == http.StatusConflict:
		kind = hmc.KindConflict
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		kind = hmc.KindAuth
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		kind = hmc.KindBadRequest
	}

	return &hmc.Error{Kind: kind, Message: body.Message, Reason: body.Reason}
}
