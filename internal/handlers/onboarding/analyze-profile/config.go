// internal/handlers/onboarding/analyze-profile/config.go
package analyzeprofile

import "time"

type Config struct {
	// Timeout bounds the whole request, PersistTimeout the best-effort
	// background save.
	Timeout        time.Duration
	PersistTimeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout:        10 * time.Second,
		PersistTimeout: 5 * time.Second,
	}
}
