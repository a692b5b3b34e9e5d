package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/martinemde/sfc/sfcparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.vue> <block>",
	Short: "Print the content of a block",
	Long:  "Print the body of a top-level block, such as the script or style of a component. Raw bodies print verbatim; nested bodies are printed back as markup.",
	Args:  cobra.ExactArgs(2),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().Int("index", 0, "Which block to print when several share the name (0-based)")
	extractCmd.Flags().Bool("highlight", false, "Syntax-highlight the output")

	_ = viper.BindPFlag("highlight", extractCmd.Flags().Lookup("highlight"))

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	path, name := args[0], args[1]
	index, _ := cmd.Flags().GetInt("index")

	src, err := readSource(cmd, path)
	if err != nil {
		return err
	}
	doc, err := sfcparser.Parse(src)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	block, err := selectBlock(doc, name, index)
	if err != nil {
		return err
	}
	body, err := blockBody(block)
	if err != nil {
		return err
	}
	logger.Info().
		Str("block", name).
		Str("lang", block.Lang()).
		Int("bytes", len(body)).
		Msg("extracted block")

	out := cmd.OutOrStdout()
	if viper.GetBool("highlight") {
		lexer := lexerFor(block)
		logger.Debug().Str("lexer", lexer.Config().Name).Msg("highlighting")
		body, err = highlight(newRenderer(out), lexer, chromaStyle(viper.GetString("style")), body)
		if err != nil {
			return fmt.Errorf("highlighting <%s>: %w", name, err)
		}
	}
	return writeBody(out, body)
}

// selectBlock returns the index-th top-level block called name.
func selectBlock(doc *sfcparser.Document, name string, index int) (*sfcparser.Block, error) {
	blocks := doc.BlocksNamed(name)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("no <%s> block found", name)
	}
	if index < 0 || index >= len(blocks) {
		return nil, fmt.Errorf("block index %d out of range: found %d <%s> block(s)", index, len(blocks), name)
	}
	return blocks[index], nil
}

// blockBody returns the text between a block's tags.
func blockBody(b *sfcparser.Block) (string, error) {
	switch b.Kind {
	case sfcparser.BodyRaw:
		return b.Text(), nil
	case sfcparser.BodyNested:
		var sb strings.Builder
		if err := (&sfcparser.Printer{}).Print(&sb, b.Children); err != nil {
			return "", err
		}
		return sb.String(), nil
	default:
		return "", nil
	}
}

func writeBody(w io.Writer, body string) error {
	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	_, err := io.WriteString(w, body)
	return err
}
