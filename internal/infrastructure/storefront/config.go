package storefront

import "errors"

// ClientConfig holds configuration for the remote cart service client
type ClientConfig struct {
	// BaseURL is the base URL of the remote cart service API
	BaseURL string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
	// UserAgent is sent on every request (empty = default)
	UserAgent string
}

const defaultUserAgent = "cartsync/1.0"

// Errors for client configuration
var (
	ErrConfigMissingBaseURL = errors.New("storefront: base URL is required")
)

// NewClientConfig creates a client configuration with defaults
func NewClientConfig(baseURL string) *ClientConfig {
	return &ClientConfig{
		BaseURL:        baseURL,
		TimeoutSeconds: 15,
		UserAgent:      defaultUserAgent,
	}
}

// Validate validates the client configuration and fills defaults
func (c *ClientConfig) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 15
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	return nil
}
