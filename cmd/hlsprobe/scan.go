package main

import (
	"time"

	"github.com/aleister1102/hlsprobe/internal/common"
	"github.com/aleister1102/hlsprobe/internal/extractor"
	"github.com/aleister1102/hlsprobe/internal/models"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd(opts *rootOptions) *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "scan <file.html>",
		Short: "Scan a saved HTML file for manifest links without a browser",
		Long: `Run the content passes over a saved page. Player globals and network
traffic are unavailable offline, so only scripts, attributes and markup are read.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadRuntime(opts)
			if err != nil {
				return err
			}
			started := time.Now()

			data, err := common.NewFileManager(env.logger).ReadFile(args[0], common.DefaultFileReadOptions())
			if err != nil {
				return err
			}

			snapshot, err := extractor.SnapshotFromHTML(string(data), env.cfg.ExtractorConfig.StreamAttributes)
			if err != nil {
				return err
			}

			links := extractor.NewLinkSet()
			for _, candidate := range extractor.NewContentScanner(env.cfg.ExtractorConfig, env.logger).Scan(snapshot, baseURL) {
				links.Add(candidate.Link, candidate.Source)
			}

			filtered := extractor.FilterManifestLinks(links.Links())
			sources := make(map[string]models.LinkSource, len(filtered))
			for _, link := range filtered {
				sources[link], _ = links.Source(link)
			}

			return printResult(cmd.OutOrStdout(), models.NewExtractionResult(args[0], filtered, sources, started))
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Page URL used to resolve relative script literals")
	return cmd
}
