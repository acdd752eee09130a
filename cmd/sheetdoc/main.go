// Package main provides the CLI entry point for sheetdoc.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheetdoc/sheetdoc-go/pkg/sheetdoc"
	"github.com/sheetdoc/sheetdoc-go/pkg/sheetdoc/document"
	"github.com/sheetdoc/sheetdoc-go/pkg/sheetdoc/output"
)

var (
	outputPath string
	pretty     bool
	format     string
	provider   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetdoc [input file]",
		Short: "Convert spreadsheets to a normalized document model",
		Long: `sheetdoc converts spreadsheet files (xlsx, csv) into a normalized
document model of tables, paragraphs, and inline text, serialized as
JSON or YAML.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml")
	rootCmd.Flags().StringVar(&provider, "provider", "", "Force a provider instead of detecting by extension")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	pipe := sheetdoc.New(sheetdoc.Config{})

	doc, err := convert(pipe, inputPath)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	var data []byte
	switch format {
	case "json":
		data, err = output.ToJSON(doc, pretty)
	case "yaml":
		data, err = output.ToYAML(doc)
	default:
		return fmt.Errorf("invalid format: %s (must be json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}

func convert(pipe *sheetdoc.Pipeline, path string) (*document.Document, error) {
	if provider != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return pipe.Convert(provider, data)
	}
	return pipe.ConvertFile(context.Background(), path)
}
