package main

import (
	"os"
	"path/filepath"
	"testing"

	"yyccgen/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "  CMake: ")
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateRejectsBadFile(t *testing.T) {
	env := setupCLITestEnv(t)
	path := filepath.Join(env.baseDir, "bad.toml")
	if err := os.WriteFile(path, []byte("[build]\ncpp_version = \"latest\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := runCLI(t, []string{"config", "validate"}, path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLogFlagsOverrideConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	_, stderr, err := runCLI(t, []string{"--log-format", "json", "script"}, env.configPath)
	if err != nil {
		t.Fatalf("script: %v", err)
	}
	requireContains(t, stderr, `"run_id":"`)
	requireContains(t, stderr, `"msg":"build script generated"`)

	if _, _, err := runCLI(t, []string{"--log-level", "chatty", "script"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestLogFileReceivesJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Logging.File = filepath.Join(env.baseDir, "logs", "yyccgen.log")
	configPath := testsupport.WriteConfigFile(t, env.cfg)

	if _, _, err := runCLI(t, []string{"script"}, configPath); err != nil {
		t.Fatalf("script: %v", err)
	}
	data, err := os.ReadFile(env.cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	requireContains(t, string(data), `"component":"buildscript"`)
}
