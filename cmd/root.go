package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"ulidgen/internal/generator"
	"ulidgen/internal/timeparse"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

var (
	version = "dev"

	// Flags.
	color   = colorAuto
	timeArg string
	count   int
)

var rootCmd = &cobra.Command{
	Use:   "ulidgen",
	Short: "Generate ULIDs, optionally pinned to a point in time",
	Long: `ulidgen generates ULIDs (Universally Unique Lexicographically
Sortable Identifiers).

Without --time, the ULID is stamped with the current time. With --time,
TIME must be in one of the following formats:

  Unix timestamp   Digits only. Up to 10 digits are seconds since the Unix
                   epoch, 11 to 13 digits are milliseconds.
  RFC 3339         2026-01-01T12:34:56Z. Timezone offsets and fractional
                   seconds are supported.
  Date only        YYYY-MM-DD, interpreted as midnight UTC.

Examples:
  ulidgen
  ulidgen -t 1767270896
  ulidgen -t 1767270896000
  ulidgen -t 2026-01-01T12:34:56Z
  ulidgen -t 2026-01-01T12:34:56.789-03:00
  ulidgen -t 2026-01-01
  ulidgen -n 5`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if count < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", count)
		}
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&timeArg, "time", "t", "",
		"generate for this time instead of now (unix timestamp, RFC 3339, or date)")
	rootCmd.Flags().IntVarP(&count, "count", "n", 1,
		"number of ULIDs to generate")
	rootCmd.Flags().Var(&color, "color",
		"colorize output: auto, always, never")
}

func Execute() error {
	return rootCmd.Execute()
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// formatULID renders id, coloring the 10-character time component and the
// 16-character entropy component separately.
func formatULID(id ulid.ULID, colorize bool) string {
	color := func(name string) func(string) string {
		if colorize {
			return ansi.ColorFunc(name)
		}
		return ansi.ColorFunc("")
	}

	s := id.String()
	return color("cyan")(s[:10]) + color("green+b")(s[10:])
}

func run(cmd *cobra.Command, args []string) error {
	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		colorize = isTerminal(cmd.OutOrStdout())
	}

	gen := generator.New()

	// With no --time, each ULID is stamped as it is generated. With --time,
	// the whole batch shares the resolved instant and the monotonic entropy
	// source keeps it strictly ordered.
	generate := gen.Now
	if timeArg != "" {
		instant, err := timeparse.Parse(timeArg)
		if err != nil {
			return err
		}
		generate = func() (ulid.ULID, error) {
			return gen.At(instant)
		}
	}

	for i := 0; i < count; i++ {
		id, err := generate()
		if err != nil {
			return fmt.Errorf("generating ulid: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatULID(id, colorize))
	}

	return nil
}
