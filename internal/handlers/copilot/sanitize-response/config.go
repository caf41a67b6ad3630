// internal/handlers/copilot/sanitize-response/config.go
package sanitizeresponse

import "time"

type Config struct {
	Timeout time.Duration
	// MaxTextChars caps the response text accepted for sanitization.
	MaxTextChars int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      5 * time.Second,
		MaxTextChars: 20000,
	}
}
