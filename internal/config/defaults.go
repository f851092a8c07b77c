package config

const (
	defaultConfigPath      = "~/.config/yyccgen/config.toml"
	projectConfigName      = "yyccgen.toml"
	repoRootEnv            = "YYCC_ROOT"
	defaultRepoRoot        = "."
	defaultEncodingTable   = "script/pycodec/encoding_table.csv"
	defaultEncodingOutput  = "script/pycodec/encoding_table.cpp"
	defaultScriptDir       = "script"
	defaultEncodingLayout  = "compact"
	defaultEncodingDialect = "modern"
	defaultCppVersion      = "17"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			RepoRoot:       defaultRepoRoot,
			EncodingTable:  defaultEncodingTable,
			EncodingOutput: defaultEncodingOutput,
			ScriptDir:      defaultScriptDir,
		},
		Encoding: Encoding{
			Layout:  defaultEncodingLayout,
			Dialect: defaultEncodingDialect,
		},
		Build: Build{
			CppVersion: defaultCppVersion,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
