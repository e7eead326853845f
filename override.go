// FILE: lixenwraith/buflog/override.go
package buflog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the configuration.
// Each override should be in the format "key=value".
// The configuration is left untouched if any override fails to parse or the
// result does not validate.
//
// Example:
//
//	cfg := buflog.DefaultConfig()
//	err := cfg.ApplyOverride(
//	    "directory=/var/log/app",
//	    "flush_threshold_bytes=4096",
//	    "sanitize=txt",
//	)
func (c *Config) ApplyOverride(overrides ...string) error {
	cfg := c.Clone()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	*c = *cfg
	return nil
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("buflog: multiple configuration errors:")
	for i, err := range errors {
		// Remove prefix from individual errors to avoid duplication
		errMsg := strings.TrimPrefix(err.Error(), "buflog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "directory":
		cfg.Directory = value

	// Size limits
	case "max_entry_bytes":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for max_entry_bytes '%s': %w", value, err)
		}
		cfg.MaxEntryBytes = intVal
	case "flush_threshold_bytes":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for flush_threshold_bytes '%s': %w", value, err)
		}
		cfg.FlushThresholdBytes = intVal

	case "sanitize":
		cfg.Sanitize = strings.ToLower(value)

	// Internal error handling
	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
