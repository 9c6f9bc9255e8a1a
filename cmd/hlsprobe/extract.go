package main

import (
	"encoding/json"
	"io"

	"github.com/aleister1102/hlsprobe/internal/extractor"
	"github.com/aleister1102/hlsprobe/internal/models"
	"github.com/spf13/cobra"
)

// NewExtractCmd creates the extract command.
func NewExtractCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <url>",
		Short: "Extract manifest links from one page and print them as JSON",
		Long: `Render the page once and print the extraction result as JSON.
Exits with status 2 when the page contains no manifest links.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadRuntime(opts)
			if err != nil {
				return err
			}

			ext := extractor.NewExtractor(
				extractor.NewRodLauncher(env.cfg.BrowserConfig, env.logger),
				env.cfg.BrowserConfig,
				env.cfg.ExtractorConfig,
				env.logger,
			)

			result, err := ext.Extract(cmd.Context(), models.ExtractionRequest{URL: args[0]})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), result)
		},
	}
}

// printResult writes the result as indented JSON and reports errNoLinks for
// an empty one.
func printResult(w io.Writer, result *models.ExtractionResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return err
	}
	if result.IsEmpty() {
		return errNoLinks
	}
	return nil
}
