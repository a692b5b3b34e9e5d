package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/martinemde/sfc/sfcparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var lintCmd = &cobra.Command{
	Use:   "lint <file.vue>...",
	Short: "Check components for common mistakes",
	Long:  "Parse each component and run the built-in checks. Exits non-zero when any file fails to parse or has error-level findings.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().Bool("strict", false, "Treat warnings as errors")

	_ = viper.BindPFlag("strict", lintCmd.Flags().Lookup("strict"))

	rootCmd.AddCommand(lintCmd)
}

// lintStyles colors severity labels.
type lintStyles struct {
	err, warning, info, path lipgloss.Style
}

func newLintStyles(r *lipgloss.Renderer) lintStyles {
	return lintStyles{
		err:     r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		info:    r.NewStyle().Foreground(lipgloss.Color("12")),
		path:    r.NewStyle().Faint(true),
	}
}

func (s lintStyles) label(sev sfcparser.Severity) string {
	switch sev {
	case sfcparser.Error:
		return s.err.Render(sev.String())
	case sfcparser.Warning:
		return s.warning.Render(sev.String())
	default:
		return s.info.Render(sev.String())
	}
}

func runLint(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	styles := newLintStyles(newRenderer(out))
	strict := viper.GetBool("strict")

	failed := 0
	for _, path := range args {
		src, err := readSource(cmd, path)
		if err != nil {
			return err
		}
		n := lintSource(out, styles, path, src, strict)
		logger.Info().Str("file", path).Int("failures", n).Msg("linted component")
		failed += n
	}

	if failed > 0 {
		return fmt.Errorf("%d problem(s) found", failed)
	}
	return nil
}

// lintSource parses and checks one component, writes its findings to w and
// returns how many of them count as failures.
func lintSource(w io.Writer, styles lintStyles, path string, src []byte, strict bool) int {
	doc, err := sfcparser.Parse(src)
	if err != nil {
		var pe *sfcparser.ParseError
		line, col := 0, 0
		if errors.As(err, &pe) {
			line, col = pe.Pos.Line, pe.Pos.Column
		}
		fmt.Fprintf(w, "%s %s parse: %v\n",
			styles.path.Render(fmt.Sprintf("%s:%d:%d:", path, line, col)), styles.label(sfcparser.Error), err)
		return 1
	}

	failed := 0
	for _, d := range sfcparser.Validate(doc) {
		fmt.Fprintf(w, "%s %s %s: %s\n",
			styles.path.Render(fmt.Sprintf("%s:%d:%d:", path, d.Pos.Line, d.Pos.Column)),
			styles.label(d.Severity), d.Rule, d.Message)
		if d.Fix != "" {
			fmt.Fprintf(w, "    fix: %s\n", d.Fix)
		}
		if d.Severity == sfcparser.Error || (strict && d.Severity == sfcparser.Warning) {
			failed++
		}
	}
	return failed
}
