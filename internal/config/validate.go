package config

import (
	"errors"
	"fmt"
	"regexp"
)

var cppVersionPattern = regexp.MustCompile(`^[0-9]+$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateEncoding(); err != nil {
		return err
	}
	if err := c.validateBuild(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.RepoRoot == "" {
		return errors.New("paths.repo_root must be set")
	}
	if c.Paths.EncodingTable == "" {
		return errors.New("paths.encoding_table must be set")
	}
	if c.Paths.EncodingOutput == "" {
		return errors.New("paths.encoding_output must be set")
	}
	if c.Paths.EncodingTable == c.Paths.EncodingOutput {
		return fmt.Errorf("paths.encoding_output must differ from paths.encoding_table (%s)", c.Paths.EncodingTable)
	}
	return nil
}

func (c *Config) validateEncoding() error {
	switch c.Encoding.Layout {
	case "compact", "wide":
	default:
		return fmt.Errorf("encoding.layout must be \"compact\" or \"wide\", got %q", c.Encoding.Layout)
	}
	switch c.Encoding.Dialect {
	case "modern", "legacy":
	default:
		return fmt.Errorf("encoding.dialect must be \"modern\" or \"legacy\", got %q", c.Encoding.Dialect)
	}
	return nil
}

func (c *Config) validateBuild() error {
	if !cppVersionPattern.MatchString(c.Build.CppVersion) {
		return fmt.Errorf("build.cpp_version must be a number such as 17 or 20, got %q", c.Build.CppVersion)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
