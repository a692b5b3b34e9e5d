package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/martinemde/sfc/sfcparser"
	"github.com/spf13/cobra"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file.vue>",
	Short: "Print a component in canonical form",
	Long:  "Parse a component and print it back: attribute values double-quoted, comments removed, trailing blank lines trimmed. --write and --check refuse files with comments, since formatting would delete them.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().BoolP("write", "w", false, "Write the result back to the file instead of stdout")
	fmtCmd.Flags().Bool("check", false, "Exit non-zero if the file is not already formatted")

	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]
	write, _ := cmd.Flags().GetBool("write")
	check, _ := cmd.Flags().GetBool("check")

	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}
	formatted, comments, err := formatSource(src)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if (write || check) && len(comments) > 0 {
		first := comments[0]
		return fmt.Errorf("%s:%d:%d: file has %d comment(s) that formatting would remove; not rewriting",
			path, first.Line, first.Column, len(comments))
	}
	changed := !bytes.Equal(src, formatted)
	logger.Info().Str("file", path).Bool("changed", changed).Msg("formatted component")

	switch {
	case check:
		if changed {
			return fmt.Errorf("%s is not formatted", path)
		}
		return nil
	case write && path != "-":
		if !changed {
			return nil
		}
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return os.WriteFile(path, formatted, info.Mode().Perm())
	default:
		_, err := io.Copy(cmd.OutOrStdout(), bytes.NewReader(formatted))
		return err
	}
}

// formatSource re-prints src through the parser. The result ends with a
// single newline. It also returns the positions of the comments the
// printed form leaves out.
func formatSource(src []byte) ([]byte, []sfcparser.Position, error) {
	doc, err := sfcparser.Parse(src)
	if err != nil {
		return nil, nil, err
	}
	var buf bytes.Buffer
	if err := sfcparser.Print(&buf, doc); err != nil {
		return nil, nil, err
	}
	if buf.Len() > 0 {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), doc.Comments, nil
}
