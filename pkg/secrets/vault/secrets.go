package secrets

import (
	"context"
	"fmt"
)

// GetKeyValue reads one field from the KV v2 secret at the client's base
// path. The key is the field name inside the secret's data map.
func (c *Client) GetKeyValue(ctx context.Context, key string) (string, error) {
	secret, err := c.client.Logical().ReadWithContext(ctx, c.path)
	if err != nil {
		return "", err
	}

	if secret == nil {
		return "", fmt.Errorf("secret not found at path: %s", c.path)
	}

	// KV v2 nests the payload under a "data" field.
	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected secret data format at %s", c.path)
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("key %s not found in secret at path %s", key, c.path)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("value for key %s is not a string", key)
	}

	return strValue, nil
}
