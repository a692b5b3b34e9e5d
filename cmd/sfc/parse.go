package main

import (
	"encoding/json"
	"fmt"

	"github.com/martinemde/sfc/sfcparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.vue>",
	Short: "Parse a component and print its sections",
	Long:  "Parse a single-file component and print the block tree as an outline, YAML or JSON. Use - to read from stdin.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringP("format", "f", "text", "Output format: text, yaml or json")

	_ = viper.BindPFlag("format", parseCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	doc, err := sfcparser.Parse(src)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}
	logger.Info().
		Str("file", args[0]).
		Int("sections", len(doc.Sections)).
		Int("blocks", len(doc.Blocks())).
		Msg("parsed component")

	out := cmd.OutOrStdout()
	switch format := viper.GetString("format"); format {
	case "text":
		writeTree(out, doc.Sections, 0)
		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(toNodes(doc.Sections)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toNodes(doc.Sections)); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, yaml or json)", format)
	}
}
