package gateway

import "time"

// Config represents the configuration for the backend gateway client
type Config struct {
	// BaseURL is the backend API base URL, e.g. http://localhost:8080
	BaseURL string

	// Timeout bounds every outbound request. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout is applied when Config.Timeout is zero. A hung backend
// request must still surface a user-visible error eventually.
const DefaultTimeout = 15 * time.Second

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrInvalidConfig
	}
	return nil
}
