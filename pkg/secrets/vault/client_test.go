package secrets

import (
	"testing"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"

	"github.com/zhmc-toolkit/zhmc/config"
)

func TestNewClient_WithInjectedClient(t *testing.T) {
	mockVaultClient := &api.Client{}

	client, err := NewClient(config.Secrets{}, WithClient(mockVaultClient))

	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, mockVaultClient, client.client)
	assert.Equal(t, DefaultSecretPath, client.path)
}

func TestNewClient_WithInjectedClientAndPath(t *testing.T) {
	mockVaultClient := &api.Client{}

	client, err := NewClient(config.Secrets{}, WithClient(mockVaultClient), WithPath("secret/data/custom"))

	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, "secret/data/custom", client.path)
}

func TestNewClient_ValidConfig(t *testing.T) {
	cfg := config.Secrets{
		Address: "http://localhost:8200",
		Token:   "test-token",
	}

	client, err := NewClient(cfg)

	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.NotNil(t, client.client)
	assert.Equal(t, DefaultSecretPath, client.path)
}

func TestNewClient_ConfigWithPath(t *testing.T) {
	cfg := config.Secrets{
		Address: "http://localhost:8200",
		Token:   "test-token",
		Path:    "secret/data/myapp",
	}

	client, err := NewClient(cfg)

	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, "secret/data/myapp", client.path)
}

func TestWithPath_EmptyString(t *testing.T) {
	mockVaultClient := &api.Client{}

	// Empty path should not override the default.
	client, err := NewClient(config.Secrets{}, WithClient(mockVaultClient), WithPath(""))

	assert.NoError(t, err)
	assert.Equal(t, DefaultSecretPath, client.path)
}
