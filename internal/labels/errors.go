package labels

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigError is returned when required options are missing. It is raised
// before any request is made.
type ConfigError struct {
	Missing []string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required parameters: %s", strings.Join(e.Missing, ", "))
}

// IsConfigError reports whether err is a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
