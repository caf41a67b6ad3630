// internal/handlers/upload/preview-import/config.go
package previewimport

import "time"

type Config struct {
	Timeout      time.Duration
	MaxFileBytes int64
	MaxRows      int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      30 * time.Second,
		MaxFileBytes: 10 << 20,
		MaxRows:      5000,
	}
}
