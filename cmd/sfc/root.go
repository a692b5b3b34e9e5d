package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// logger is set up before every command runs.
var logger = zerolog.Nop()

var rootCmd = &cobra.Command{
	Use:          "sfc",
	Short:        "Vue single-file component scanner",
	Long:         "sfc splits Vue single-file components into blocks and raw text, prints them back, and checks them for common mistakes.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr(), viper.GetBool("verbose"), viper.GetBool("debug"))
		logger.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("starting")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("style", "dracula", "Syntax highlighting style")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindPFlag("style", rootCmd.PersistentFlags().Lookup("style"))
}

func initConfig() {
	viper.SetEnvPrefix("SFC")
	viper.AutomaticEnv()
}

// newLogger returns a console logger on w. Every line carries the run_id of
// this invocation.
func newLogger(w io.Writer, verbose, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case debug:
		level = zerolog.DebugLevel
	case verbose:
		level = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    viper.GetBool("no_color"),
	}
	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

// newRenderer returns a lipgloss renderer for w, without colors when
// --no-color is set.
func newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if viper.GetBool("no_color") {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// readSource reads a component from path, or from stdin when path is "-".
func readSource(cmd *cobra.Command, path string) ([]byte, error) {
	var (
		src []byte
		err error
	)
	if path == "-" {
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading component: %w", err)
	}
	logger.Debug().Str("file", path).Int("bytes", len(src)).Msg("read component")
	return src, nil
}
