package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"yyccgen/internal/config"
	"yyccgen/internal/enctable"
)

func newEncodingCommand(ctx *commandContext) *cobra.Command {
	encodingCmd := &cobra.Command{
		Use:   "encoding",
		Short: "Generate and inspect the encoding alias tables",
	}

	encodingCmd.AddCommand(newEncodingGenerateCommand(ctx))
	encodingCmd.AddCommand(newEncodingListCommand(ctx))
	encodingCmd.AddCommand(newEncodingCheckCommand(ctx))

	return encodingCmd
}

// tableFlags are shared by every encoding subcommand that reads the table.
type tableFlags struct {
	input  string
	layout string
}

func (f *tableFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Encoding table to read (default from config)")
	cmd.Flags().StringVar(&f.layout, "layout", "", "Table layout: compact or wide (default from config)")
}

func (f *tableFlags) resolve(cfg *config.Config) (string, enctable.Layout, error) {
	input, err := overridePath(f.input, cfg.Paths.EncodingTable)
	if err != nil {
		return "", "", err
	}
	layout, err := enctable.ParseLayout(firstNonEmpty(f.layout, cfg.Encoding.Layout))
	if err != nil {
		return "", "", err
	}
	return input, layout, nil
}

func newEncodingGenerateCommand(ctx *commandContext) *cobra.Command {
	var table tableFlags
	var output, dialect, templatePath string
	var strict, checkIconv bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the C++ alias, code page and iconv tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.loggerFor(cmd)
			if err != nil {
				return err
			}

			input, layout, err := table.resolve(cfg)
			if err != nil {
				return err
			}
			outPath, err := overridePath(output, cfg.Paths.EncodingOutput)
			if err != nil {
				return err
			}
			tmplPath, err := overridePath(templatePath, cfg.Paths.EncodingTemplate)
			if err != nil {
				return err
			}
			d, err := enctable.ParseDialect(firstNonEmpty(dialect, cfg.Encoding.Dialect))
			if err != nil {
				return err
			}

			opts := enctable.Options{
				InputPath:    input,
				OutputPath:   outPath,
				Layout:       layout,
				Dialect:      d,
				TemplatePath: tmplPath,
				Strict:       strict || cfg.Encoding.Strict,
				CheckIconv:   checkIconv || cfg.Encoding.CheckIconv,
			}
			result, err := enctable.Generate(cmd.Context(), opts, logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d encodings, %d aliases, %d code pages, %d iconv names)\n",
				result.OutputPath, result.Tokens, result.Aliases, result.CodePages, result.Iconv)
			if n := len(result.Collisions); n > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d ambiguous entries; run \"yyccgen encoding check\" for details\n", n)
			}
			return nil
		},
	}

	table.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Generated C++ file (default from config)")
	cmd.Flags().StringVar(&dialect, "dialect", "", "Built-in output dialect: modern or legacy (default from config)")
	cmd.Flags().StringVar(&templatePath, "template", "", "Custom text/template file overriding --dialect")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when an alias resolves to more than one encoding")
	cmd.Flags().BoolVar(&checkIconv, "check-iconv", false, "Log iconv names that are not IANA charsets")
	return cmd
}

type tokenView struct {
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases"`
	CodePage *uint32  `json:"code_page,omitempty"`
	Iconv    string   `json:"iconv,omitempty"`
	Line     int      `json:"line"`
}

func newTokenView(token enctable.LanguageToken) tokenView {
	view := tokenView{
		Name:    token.Name,
		Aliases: append([]string{}, token.Aliases...),
		Iconv:   token.IconvName,
		Line:    token.Line,
	}
	if token.HasCodePage {
		cp := token.CodePage
		view.CodePage = &cp
	}
	return view
}

func newEncodingListCommand(ctx *commandContext) *cobra.Command {
	var table tableFlags
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the parsed encoding table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			input, layout, err := table.resolve(cfg)
			if err != nil {
				return err
			}
			tokens, err := enctable.Load(input, layout)
			if err != nil {
				return err
			}

			if jsonOutput {
				views := make([]tokenView, 0, len(tokens))
				for _, token := range tokens {
					views = append(views, newTokenView(token))
				}
				return writeJSON(cmd, views)
			}

			rows := make([][]string, 0, len(tokens))
			for _, token := range tokens {
				codePage := "-"
				if token.HasCodePage {
					codePage = strconv.FormatUint(uint64(token.CodePage), 10)
				}
				iconv := token.IconvName
				if iconv == "" {
					iconv = "-"
				}
				rows = append(rows, []string{token.Name, strings.Join(token.Aliases, ", "), codePage, iconv})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Name", "Aliases", "Code Page", "Iconv"}, rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft}))
			fmt.Fprintf(out, "%d encodings from %s\n", len(tokens), input)
			return nil
		},
	}

	table.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of a table")
	return cmd
}

func newEncodingCheckCommand(ctx *commandContext) *cobra.Command {
	var table tableFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report ambiguous aliases and unknown iconv names",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			input, layout, err := table.resolve(cfg)
			if err != nil {
				return err
			}
			tokens, err := enctable.Load(input, layout)
			if err != nil {
				return err
			}

			collisions := enctable.FindCollisions(tokens)
			findings := enctable.CheckIconv(tokens)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Checked %d encodings in %s\n", len(tokens), input)
			for _, c := range collisions {
				fmt.Fprintf(out, "collision: %s (generated table resolves %q to %q)\n", c, c.Alias, c.Winner())
			}
			for _, f := range findings {
				fmt.Fprintf(out, "iconv: line %d: %q for %q is not an IANA charset name\n", f.Line, f.IconvName, f.Name)
			}
			if len(collisions) == 0 && len(findings) == 0 {
				fmt.Fprintln(out, "No problems found")
			}
			if len(collisions) > 0 {
				return fmt.Errorf("%w: %d found in %s", enctable.ErrAliasCollision, len(collisions), input)
			}
			return nil
		},
	}

	table.register(cmd)
	return cmd
}

// overridePath prefers a command-line path (resolved against the working
// directory) over the already resolved configuration value.
func overridePath(flagValue, configured string) (string, error) {
	if strings.TrimSpace(flagValue) == "" {
		return configured, nil
	}
	expanded, err := config.ExpandPath(strings.TrimSpace(flagValue))
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", flagValue, err)
	}
	return expanded, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
