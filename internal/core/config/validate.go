package config

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// Validate checks the configuration, returning criterio field errors for
// every invalid value.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if strings.TrimSpace(c.AssetNamespace) == "" {
		errs = errs.Append("asset_namespace", fmt.Errorf("must not be empty"))
	} else if strings.Contains(c.AssetNamespace, "/") {
		errs = errs.Append("asset_namespace", fmt.Errorf("must not contain '/'"))
	}

	if c.Interaction.Delimiter == "" {
		errs = errs.Append("interaction.delimiter", fmt.Errorf("must not be empty"))
	}

	// The tag identifier is read from the third segment, so fewer than
	// three segments can never carry one.
	if c.Interaction.Segments < 3 {
		errs = errs.Append("interaction.segments", fmt.Errorf("must be at least 3, got %d", c.Interaction.Segments))
	}

	for i, ext := range c.AssetExtensions {
		trimmed := strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if trimmed == "" {
			errs = errs.Append(fmt.Sprintf("asset_extensions[%d]", i), fmt.Errorf("must not be empty"))
		}
	}

	if c.Events.MaxEvents < 0 {
		errs = errs.Append("events.max_events", fmt.Errorf("must not be negative"))
	}

	return errs.ToError()
}
