package config

import (
	"fmt"

	"github.com/docker/go-units"
)

// ParseMaxFileSize converts a human-readable size such as "1Mb" or "512Kb"
// into bytes.
func ParseMaxFileSize(size string) (int64, error) {
	parsed, err := units.FromHumanSize(size)
	if err != nil {
		return 0, fmt.Errorf("invalid max file size %q: %w", size, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("max file size %q must be positive", size)
	}
	return parsed, nil
}

// ValidateThreshold rejects non-positive tuning parameters.
func ValidateThreshold(name string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, value)
	}
	return nil
}
