// internal/handlers/copilot/screen-query/config.go
package screenquery

import "time"

type Config struct {
	Timeout time.Duration
	// MaxQueryChars caps the query length; guardrail regexes are linear
	// but there is no reason to scan unbounded input.
	MaxQueryChars int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:       5 * time.Second,
		MaxQueryChars: 4000,
	}
}
