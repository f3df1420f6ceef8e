package docs

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var outputDir string

// NewDocsCmd returns a hidden command that generates the markdown CLI
// reference for the given root command.
func NewDocsCmd(rootCmd *cobra.Command) *cobra.Command {
	docsCmd := &cobra.Command{
		Use:    "docs",
		Short:  "Generate markdown documentation for all commands",
		Hidden: true,
		Run: func(cmd *cobra.Command, args []string) {
			if err := os.MkdirAll(outputDir, 0o750); err != nil {
				log.Fatal().Err(err).Str("dir", outputDir).Msg("Failed creating docs output directory")
			}
			if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
				log.Fatal().Err(err).Msg("Failed generating markdown docs")
			}
			log.Info().Str("dir", outputDir).Msg("Generated CLI documentation")
		},
	}

	docsCmd.Flags().StringVarP(&outputDir, "out", "o", "docs/cli", "Output directory for generated markdown")

	return docsCmd
}
