package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aidlkit/internal/config"
	"aidlkit/internal/diag"
	"aidlkit/internal/diagfmt"
	"aidlkit/internal/driver"
	"aidlkit/internal/emit"
	"aidlkit/internal/model"
	"aidlkit/internal/source"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] [directory]",
	Short: "Parse every AIDL file under a directory",
	Long:  `Scan a directory tree for *.aidl files, parse and validate them, report diagnostics and optionally export the project model as JSON or YAML`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().BoolP("json", "j", false, "export the project model as JSON")
	scanCmd.Flags().BoolP("yaml", "y", false, "export the project model as YAML")
	scanCmd.Flags().Bool("pretty", false, "indent JSON output")
	scanCmd.Flags().StringP("output", "o", "", "write the model to a file instead of stdout")
	scanCmd.Flags().BoolP("hide-diagnostics", "q", false, "do not print diagnostics")
	scanCmd.Flags().BoolP("items", "i", false, "list the parsed items")
	scanCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	scanCmd.Flags().Int("max-diagnostics", 0, "maximum diagnostics per file (0=default)")
	scanCmd.Flags().Bool("validate", true, "run cross-file type resolution and semantic checks")
	scanCmd.Flags().Bool("parse-only", false, "syntax pass only, shorthand for --validate=false")
}

type scanOptions struct {
	dir        string
	emitJSON   bool
	emitYAML   bool
	pretty     bool
	outputPath string
	hideDiags  bool
	listItems  bool
	jobs       int
	maxDiags   int
	validate   bool
	quiet      bool
	color      bool
}

func scanOptionsFromFlags(cmd *cobra.Command, args []string) (scanOptions, error) {
	opts := scanOptions{dir: "."}
	if len(args) == 1 {
		opts.dir = args[0]
	}

	var err error
	if opts.emitJSON, err = cmd.Flags().GetBool("json"); err != nil {
		return opts, fmt.Errorf("failed to get json flag: %w", err)
	}
	if opts.emitYAML, err = cmd.Flags().GetBool("yaml"); err != nil {
		return opts, fmt.Errorf("failed to get yaml flag: %w", err)
	}
	if opts.pretty, err = cmd.Flags().GetBool("pretty"); err != nil {
		return opts, fmt.Errorf("failed to get pretty flag: %w", err)
	}
	if opts.outputPath, err = cmd.Flags().GetString("output"); err != nil {
		return opts, fmt.Errorf("failed to get output flag: %w", err)
	}
	if opts.hideDiags, err = cmd.Flags().GetBool("hide-diagnostics"); err != nil {
		return opts, fmt.Errorf("failed to get hide-diagnostics flag: %w", err)
	}
	if opts.listItems, err = cmd.Flags().GetBool("items"); err != nil {
		return opts, fmt.Errorf("failed to get items flag: %w", err)
	}
	if opts.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return opts, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if opts.maxDiags, err = cmd.Flags().GetInt("max-diagnostics"); err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	validate, err := cmd.Flags().GetBool("validate")
	if err != nil {
		return opts, fmt.Errorf("failed to get validate flag: %w", err)
	}
	parseOnly, err := cmd.Flags().GetBool("parse-only")
	if err != nil {
		return opts, fmt.Errorf("failed to get parse-only flag: %w", err)
	}
	if parseOnly && cmd.Flags().Changed("validate") && validate {
		return opts, fmt.Errorf("validate and parse-only flags cannot be used together")
	}
	opts.validate = validate && !parseOnly

	if opts.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return opts, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return opts, fmt.Errorf("failed to get color flag: %w", err)
	}
	if opts.color, err = useColor(colorMode, os.Stderr); err != nil {
		return opts, err
	}

	if opts.emitJSON && opts.emitYAML {
		return opts, fmt.Errorf("json and yaml flags cannot be used together")
	}
	return opts, nil
}

// applyManifest fills flag defaults from an aidlkit.toml found above the scan
// directory. Flags the user set explicitly keep their value.
func applyManifest(cmd *cobra.Command, opts *scanOptions) error {
	manifest, ok, err := config.Load(opts.dir)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	cfg := manifest.Config
	if !cmd.Flags().Changed("json") && !cmd.Flags().Changed("yaml") {
		switch cfg.Output.Format {
		case "json":
			opts.emitJSON = true
		case "yaml":
			opts.emitYAML = true
		}
	}
	if !cmd.Flags().Changed("pretty") {
		opts.pretty = cfg.Output.Pretty
	}
	if !cmd.Flags().Changed("output") {
		opts.outputPath = cfg.Output.Path
	}
	if !cmd.Flags().Changed("hide-diagnostics") {
		opts.hideDiags = cfg.Diagnostics.Hide
	}
	if !cmd.Flags().Changed("max-diagnostics") {
		opts.maxDiags = cfg.Diagnostics.Max
	}
	if !cmd.Flags().Changed("jobs") {
		opts.jobs = cfg.Diagnostics.Jobs
	}
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	opts, err := scanOptionsFromFlags(cmd, args)
	if err != nil {
		return err
	}
	if err := applyManifest(cmd, &opts); err != nil {
		return err
	}

	logLevel, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return fmt.Errorf("failed to get log-level flag: %w", err)
	}
	logger, err := setupLogger(logLevel)
	if err != nil {
		return err
	}

	driverOpts := driver.Options{
		MaxDiagnostics: opts.maxDiags,
		Jobs:           opts.jobs,
		Validate:       opts.validate,
		Log:            logger,
	}
	if !opts.quiet {
		driverOpts.Progress = os.Stderr
	}

	res, err := driver.Scan(cmd.Context(), opts.dir, driverOpts)
	if err != nil {
		return err
	}
	logger.Info().Int("files", res.FileSet.Len()).Msg("scan finished")

	if !opts.hideDiags {
		rendered := make(map[source.FileID][]diag.Diagnostic, len(res.Outcomes))
		for id, out := range res.Outcomes {
			if len(out.Diagnostics) > 0 {
				rendered[id] = out.Diagnostics
			}
		}
		if err := diagfmt.Pretty(os.Stderr, res.FileSet, rendered, diagfmt.PrettyOpts{
			Color:    opts.color,
			PathMode: diagfmt.PathModeRelative,
		}); err != nil {
			return err
		}
	}

	if opts.listItems {
		if err := printItems(os.Stdout, res, opts.color); err != nil {
			return err
		}
	}

	if !opts.emitJSON && !opts.emitYAML && opts.outputPath == "" {
		return nil
	}

	root, err := os.Getwd()
	if err != nil {
		root = opts.dir
	}
	project := model.Build(res.FileSet, res.Outcomes, root)

	format := emit.FormatJSON
	if opts.emitYAML {
		format = emit.FormatYAML
	}
	return emit.Write(project, emit.Options{
		Format:     format,
		Pretty:     opts.pretty,
		OutputPath: opts.outputPath,
	}, os.Stdout)
}
