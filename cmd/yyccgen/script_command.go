package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"yyccgen/internal/buildscript"
	"yyccgen/internal/deps"
	"yyccgen/internal/logging"
)

func newScriptCommand(ctx *commandContext) *cobra.Command {
	var cppVersion, outputDir string
	var buildDoc, pic bool

	cmd := &cobra.Command{
		Use:   "script",
		Short: "Generate the Windows and Linux CMake build scripts",
		Long: "Render win_build.bat and linux_build.sh for the configured YYCC checkout.\n" +
			"Flags override the [build] section of the configuration file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.loggerFor(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("cpp") {
				cppVersion = cfg.Build.CppVersion
			}
			if !flags.Changed("build-doc") {
				buildDoc = cfg.Build.BuildDoc
			}
			if !flags.Changed("pic") {
				pic = cfg.Build.PIC
			}
			dir, err := overridePath(outputDir, cfg.Paths.ScriptDir)
			if err != nil {
				return err
			}

			settings, err := buildscript.NewSettings(cppVersion, buildDoc, pic, cfg.Paths.RepoRoot)
			if err != nil {
				return err
			}
			renderer, err := buildscript.NewRenderer(settings)
			if err != nil {
				return err
			}
			written, err := renderer.WriteAll(cmd.Context(), dir, logger)
			if err != nil {
				return err
			}

			for _, status := range deps.Missing(deps.CheckBinaries(deps.BuildRequirements(settings.BuildDoc()))) {
				logger.Warn("build tool not found; the generated scripts will fail until it is installed",
					logging.String("tool", status.Command),
					logging.String("detail", status.Detail),
				)
			}

			out := cmd.OutOrStdout()
			for _, path := range written {
				fmt.Fprintf(out, "Wrote %s\n", path)
			}
			fmt.Fprintf(out, "C++%s, documentation %s, PIC %s\n",
				settings.CppVersion(), yesNo(settings.BuildDoc()), yesNo(settings.PIC()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&cppVersion, "cpp", "c", buildscript.DefaultCppVersion, "C++ standard passed to CMake")
	cmd.Flags().BoolVarP(&buildDoc, "build-doc", "d", false, "Also build the documentation")
	cmd.Flags().BoolVarP(&pic, "pic", "p", false, "Enable position independent code (Linux only)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory receiving the scripts (default from config)")
	return cmd
}
