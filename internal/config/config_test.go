package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"yyccgen/internal/config"
)

func TestLoadDefaultsResolveAgainstRepoRoot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	t.Setenv("YYCC_ROOT", root)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Paths.RepoRoot != root {
		t.Fatalf("unexpected repo root: got %q want %q", cfg.Paths.RepoRoot, root)
	}
	wantTable := filepath.Join(root, "script", "pycodec", "encoding_table.csv")
	if cfg.Paths.EncodingTable != wantTable {
		t.Fatalf("unexpected encoding table: got %q want %q", cfg.Paths.EncodingTable, wantTable)
	}
	wantOutput := filepath.Join(root, "script", "pycodec", "encoding_table.cpp")
	if cfg.Paths.EncodingOutput != wantOutput {
		t.Fatalf("unexpected encoding output: got %q want %q", cfg.Paths.EncodingOutput, wantOutput)
	}
	if cfg.Paths.ScriptDir != filepath.Join(root, "script") {
		t.Fatalf("unexpected script dir: %q", cfg.Paths.ScriptDir)
	}
	if cfg.Paths.EncodingTemplate != "" {
		t.Fatalf("expected no template by default, got %q", cfg.Paths.EncodingTemplate)
	}
	if cfg.Build.CppVersion != "17" {
		t.Fatalf("expected C++17 default, got %q", cfg.Build.CppVersion)
	}
	if cfg.Build.BuildDoc || cfg.Build.PIC {
		t.Fatal("expected documentation and PIC disabled by default")
	}
	if cfg.Encoding.Layout != "compact" || cfg.Encoding.Dialect != "modern" {
		t.Fatalf("unexpected encoding defaults: %+v", cfg.Encoding)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("YYCC_ROOT", "")
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "yyccgen.toml")
	root := filepath.Join(tempDir, "yycc")

	type payload struct {
		Paths struct {
			RepoRoot      string `toml:"repo_root"`
			EncodingTable string `toml:"encoding_table"`
		} `toml:"paths"`
		Encoding struct {
			Layout  string `toml:"layout"`
			Dialect string `toml:"dialect"`
			Strict  bool   `toml:"strict"`
		} `toml:"encoding"`
		Build struct {
			CppVersion string `toml:"cpp_version"`
			PIC        bool   `toml:"pic"`
		} `toml:"build"`
	}
	custom := payload{}
	custom.Paths.RepoRoot = root
	custom.Paths.EncodingTable = "data/table.tsv"
	custom.Encoding.Layout = " WIDE "
	custom.Encoding.Dialect = "legacy"
	custom.Encoding.Strict = true
	custom.Build.CppVersion = "20"
	custom.Build.PIC = true

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.EncodingTable != filepath.Join(root, "data", "table.tsv") {
		t.Fatalf("unexpected encoding table: %q", cfg.Paths.EncodingTable)
	}
	if cfg.Encoding.Layout != "wide" {
		t.Fatalf("expected normalized layout, got %q", cfg.Encoding.Layout)
	}
	if cfg.Encoding.Dialect != "legacy" || !cfg.Encoding.Strict {
		t.Fatalf("unexpected encoding section: %+v", cfg.Encoding)
	}
	if cfg.Build.CppVersion != "20" || !cfg.Build.PIC {
		t.Fatalf("unexpected build section: %+v", cfg.Build)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("YYCC_ROOT", "")
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "cpp version", content: "[build]\ncpp_version = \"c++17\"\n", want: "build.cpp_version"},
		{name: "layout", content: "[encoding]\nlayout = \"csv\"\n", want: "encoding.layout"},
		{name: "dialect", content: "[encoding]\ndialect = \"cxx98\"\n", want: "encoding.dialect"},
		{name: "log format", content: "[logging]\nformat = \"xml\"\n", want: "logging.format"},
		{name: "log level", content: "[logging]\nlevel = \"loud\"\n", want: "logging.level"},
		{name: "same in and out", content: "[paths]\nencoding_table = \"t.cpp\"\nencoding_output = \"t.cpp\"\n", want: "paths.encoding_output"},
		{name: "unknown key", content: "[build]\ncpp = \"17\"\n", want: "cpp"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestResolveKeepsAbsoluteAndHomePaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg := config.Default()
	cfg.Paths.RepoRoot = filepath.Join(home, "yycc")

	abs := filepath.Join(home, "elsewhere", "table.csv")
	got, err := cfg.Resolve(abs)
	if err != nil || got != abs {
		t.Fatalf("Resolve(%q) = %q, %v", abs, got, err)
	}
	got, err = cfg.Resolve("~/tables/enc.csv")
	if err != nil || got != filepath.Join(home, "tables", "enc.csv") {
		t.Fatalf("Resolve(~) = %q, %v", got, err)
	}
	got, err = cfg.Resolve("script/x.csv")
	if err != nil || got != filepath.Join(home, "yycc", "script", "x.csv") {
		t.Fatalf("Resolve(relative) = %q, %v", got, err)
	}
	if got, _ := cfg.Resolve("  "); got != "" {
		t.Fatalf("expected empty path to stay empty, got %q", got)
	}
}

func TestCreateSampleLoadsCleanly(t *testing.T) {
	t.Setenv("YYCC_ROOT", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Encoding.Strict || cfg.Encoding.CheckIconv {
		t.Fatalf("unexpected sample encoding settings: %+v", cfg.Encoding)
	}
}

func TestLoadResolvesLogFile(t *testing.T) {
	t.Setenv("YYCC_ROOT", "")
	root := t.TempDir()
	path := filepath.Join(root, "yyccgen.toml")
	content := "[paths]\nrepo_root = \"" + filepath.ToSlash(root) + "\"\n[logging]\nfile = \"bin/yyccgen.log\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := filepath.Join(root, "bin", "yyccgen.log"); cfg.Logging.File != want {
		t.Fatalf("unexpected log file: got %q want %q", cfg.Logging.File, want)
	}
}
