package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeEncoding()
	c.normalizeBuild()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	root := strings.TrimSpace(c.Paths.RepoRoot)
	if root == "" || root == defaultRepoRoot {
		if value, ok := os.LookupEnv(repoRootEnv); ok && strings.TrimSpace(value) != "" {
			root = strings.TrimSpace(value)
		}
	}
	if root == "" {
		root = defaultRepoRoot
	}
	var err error
	if c.Paths.RepoRoot, err = expandPath(root); err != nil {
		return fmt.Errorf("paths.repo_root: %w", err)
	}

	if strings.TrimSpace(c.Paths.EncodingTable) == "" {
		c.Paths.EncodingTable = defaultEncodingTable
	}
	if c.Paths.EncodingTable, err = c.Resolve(c.Paths.EncodingTable); err != nil {
		return fmt.Errorf("paths.encoding_table: %w", err)
	}
	if strings.TrimSpace(c.Paths.EncodingOutput) == "" {
		c.Paths.EncodingOutput = defaultEncodingOutput
	}
	if c.Paths.EncodingOutput, err = c.Resolve(c.Paths.EncodingOutput); err != nil {
		return fmt.Errorf("paths.encoding_output: %w", err)
	}
	if c.Paths.EncodingTemplate, err = c.Resolve(c.Paths.EncodingTemplate); err != nil {
		return fmt.Errorf("paths.encoding_template: %w", err)
	}
	if strings.TrimSpace(c.Paths.ScriptDir) == "" {
		c.Paths.ScriptDir = defaultScriptDir
	}
	if c.Paths.ScriptDir, err = c.Resolve(c.Paths.ScriptDir); err != nil {
		return fmt.Errorf("paths.script_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeEncoding() {
	c.Encoding.Layout = strings.ToLower(strings.TrimSpace(c.Encoding.Layout))
	if c.Encoding.Layout == "" {
		c.Encoding.Layout = defaultEncodingLayout
	}
	c.Encoding.Dialect = strings.ToLower(strings.TrimSpace(c.Encoding.Dialect))
	if c.Encoding.Dialect == "" {
		c.Encoding.Dialect = defaultEncodingDialect
	}
}

func (c *Config) normalizeBuild() {
	c.Build.CppVersion = strings.TrimSpace(c.Build.CppVersion)
	if c.Build.CppVersion == "" {
		c.Build.CppVersion = defaultCppVersion
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = c.Resolve(c.Logging.File); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
