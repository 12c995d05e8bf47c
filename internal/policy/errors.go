package policy

import (
	"errors"
	"fmt"
)

// ErrMissingType is returned when a finding has no diagnostic type
var ErrMissingType = errors.New("finding has no diagnostic type")

// ConfigError reports an inconsistency in the policy configuration
type ConfigError struct {
	// Field is the configuration field at fault (e.g., "root", "module")
	Field string
	// Name is the offending value
	Name string
	// Reason describes the problem
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Name, e.Reason)
}
