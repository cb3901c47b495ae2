// Package secrets reads the HMC password from a HashiCorp Vault KV v2
// store, keeping it out of the on-disk configuration file.
package secrets

import (
	"github.com/hashicorp/vault/api"

	"github.com/zhmc-toolkit/zhmc/config"
)

// Default path for secrets if not configured.
const DefaultSecretPath = "secret/data/zhmc"

// Client wraps a Vault API client scoped to one KV base path.
type Client struct {
	client *api.Client
	path   string
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithPath sets a custom path for secrets storage.
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

// WithClient sets a pre-configured Vault API client (useful for testing).
func WithClient(client *api.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a new Vault Client instance. For testing, inject a
// client with the WithClient option; otherwise one is built from config.
func NewClient(cfg config.Secrets, opts ...Option) (*Client, error) {
	c := &Client{
		path: DefaultSecretPath,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		vaultConfig := api.DefaultConfig()
		vaultConfig.Address = cfg.Address

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return nil, err
		}

		client.SetToken(cfg.Token)
		c.client = client
	}

	if cfg.Path != "" && c.path == DefaultSecretPath {
		c.path = cfg.Path
	}

	return c, nil
}
