package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/ficalc/internal/calculation"
	"github.com/rgehrsitz/ficalc/internal/compare"
	"github.com/rgehrsitz/ficalc/internal/config"
	"github.com/rgehrsitz/ficalc/internal/domain"
	"github.com/rgehrsitz/ficalc/internal/output"
	"github.com/rgehrsitz/ficalc/internal/transform"
	"github.com/rgehrsitz/ficalc/internal/wizard"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	settings config.Settings
	logger   = log.New(os.Stderr)
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ficalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.Main.Version
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "ficalc",
	Short: "Financial independence calculator CLI",
	Long: `Estimate the portfolio you need to stop working (your FI number), how far along
you are, and when you get there at a 7% annual return.

Inputs come from a YAML file (see "ficalc example") and can be tweaked with --set.
Settings can also be given as FICALC_* environment variables or in a .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.LoadSettings()
		if err != nil {
			return err
		}
		if debugFlag, _ := cmd.Flags().GetBool("debug"); debugFlag {
			s.Debug = true
		}
		settings = s
		logger = newLogger(cmd.ErrOrStderr(), settings)
		if settings.NoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
		return nil
	},
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate your FI number and timeline",
	Long: `Calculate your FI number and timeline.

Without an input file the default inputs are used.

Examples:
  ficalc calculate plan.yaml
  ficalc calculate plan.yaml --format json
  ficalc calculate --set age=40 --set portfolio_value=350000 --set strategy=guardrails`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := loadInput(args)
		if err != nil {
			return err
		}

		sets, _ := cmd.Flags().GetStringArray("set")
		input, err = applySets(input, sets)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		if format == "" {
			format = settings.Format
		}

		data, err := output.GenerateReport(output.NewReport(newEngine(), input), format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an input file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.NewInputParser().LoadFromFile(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Input file %s is valid\n", args[0])
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare your plan against every withdrawal strategy",
	Long: `Compare the FI number and timeline of your plan against each catalog
withdrawal strategy.

Examples:
  ficalc compare plan.yaml
  ficalc compare plan.yaml --format csv
  ficalc compare --set withdrawal_rate=3.8 --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := loadInput(args)
		if err != nil {
			return err
		}

		sets, _ := cmd.Flags().GetStringArray("set")
		input, err = applySets(input, sets)
		if err != nil {
			return err
		}

		compSet := compare.NewCompareEngine(newEngine()).Compare(input)
		if len(args) > 0 {
			compSet.ConfigPath = args[0]
		}

		format, _ := cmd.Flags().GetString("format")
		var out string
		switch format {
		case "table", "":
			out = (&compare.TableFormatter{}).Format(compSet)
		case "compact":
			out = (&compare.TableFormatter{}).FormatCompact(compSet)
		case "json":
			out, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
		case "csv":
			out, err = (&compare.CSVFormatter{}).Format(compSet)
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List health factors, withdrawal strategies and editable fields",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()

		fmt.Fprintln(w, "HEALTH FACTORS")
		for _, hf := range domain.HealthFactors() {
			fmt.Fprintf(w, "  %-20s +%d years  %s\n", hf.ID, hf.Adjustment, hf.Label)
		}

		fmt.Fprintln(w, "\nWITHDRAWAL STRATEGIES")
		for _, s := range domain.WithdrawalStrategies() {
			fmt.Fprintf(w, "  %-12s %5s%%  %s\n", s.ID, s.Rate.StringFixed(2), s.Name)
		}

		fmt.Fprintln(w, "\nFIELDS FOR --set")
		for _, key := range transform.NewEditRegistry().List() {
			fmt.Fprintf(w, "  %s\n", key)
		}

		fmt.Fprintln(w, "\nOUTPUT FORMATS")
		for _, name := range output.AvailableFormatterNames() {
			fmt.Fprintf(w, "  %s\n", name)
		}
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example [output-file]",
	Short: "Write an example input file with the default inputs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(domain.DefaultInput())
		if err != nil {
			return fmt.Errorf("failed to marshal example: %w", err)
		}

		if len(args) == 0 {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("failed to write example: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example input written to %s\n", args[0])
		return nil
	},
}

// loadInput reads the optional input file, falling back to the default inputs
func loadInput(args []string) (domain.CalculatorInput, error) {
	if len(args) == 0 {
		logger.Debugf("no input file given, using defaults")
		return domain.DefaultInput(), nil
	}
	logger.Debugf("loading input from %s", args[0])
	return config.NewInputParser().LoadFromFile(args[0])
}

// applySets runs key=value edits through a wizard seeded with input
func applySets(input domain.CalculatorInput, sets []string) (domain.CalculatorInput, error) {
	if len(sets) == 0 {
		return input, nil
	}

	edits, err := transform.NewEditRegistry().ParseEditSpecs(sets)
	if err != nil {
		return domain.CalculatorInput{}, err
	}

	w := wizard.NewWithInput(input)
	w.SetLogger(logger)
	if err := transform.ApplyEdits(w, edits); err != nil {
		return domain.CalculatorInput{}, err
	}
	for _, e := range edits {
		logger.Debugf("applied edit: %s", e.Description())
	}
	return w.Input(), nil
}

func newEngine() *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(logger)
	engine.Debug = settings.Debug
	return engine
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Log each calculation step")

	calculateCmd.Flags().StringP("format", "f", "", "Output format (console, console-lite, json, csv, share, html); defaults to FICALC_FORMAT or console")
	calculateCmd.Flags().StringArray("set", nil, "Override an input field as key=value (repeatable, see 'ficalc catalog')")

	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, compact, json, csv)")
	compareCmd.Flags().StringArray("set", nil, "Override an input field as key=value (repeatable)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
