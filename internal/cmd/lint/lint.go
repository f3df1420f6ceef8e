package lint

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/CompassSecurity/imagelint/pkg/config"
	"github.com/CompassSecurity/imagelint/pkg/dockerfile"
	"github.com/CompassSecurity/imagelint/pkg/ignore"
	"github.com/CompassSecurity/imagelint/pkg/report"
	"github.com/CompassSecurity/imagelint/pkg/rules"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// LintOptions holds the lint command's flag values before config resolution.
type LintOptions struct {
	DockerignorePath string
	MaxRunDirectives int
	MinIgnoreRules   int
	MaxFileSize      string
	NoColor          bool
	Quiet            bool
}

var options LintOptions

// osExit is swapped out in tests to observe the exit code contract.
var osExit = os.Exit

func NewLintCmd() *cobra.Command {
	lintCmd := &cobra.Command{
		Use:   "lint [dockerfile]",
		Short: "Analyze a Dockerfile and its .dockerignore",
		Long: `Analyze a Dockerfile and its sibling .dockerignore for practices that
inflate image size, weaken security, or waste build cache. The image is never
built or run; the analysis reasons only over the instruction sequence and
exclusion patterns.

### Exit codes
0 - no errors and no warnings
1 - at least one error finding (or the Dockerfile cannot be read)
2 - no errors, but at least one warning finding

Informational findings never change the exit code.
		`,
		Example: `
# Lint the Dockerfile in the current directory
imagelint lint

# Lint a specific Dockerfile with a non-sibling .dockerignore
imagelint lint build/Dockerfile --dockerignore .dockerignore

# Tighten the RUN directive threshold
imagelint lint --max-run-directives 3
		`,
		Args: cobra.MaximumNArgs(1),
		Run:  Lint,
	}

	lintCmd.Flags().StringVarP(&options.DockerignorePath, "dockerignore", "i", "", "Path to the .dockerignore file (default: sibling of the Dockerfile)")
	lintCmd.Flags().IntVarP(&options.MaxRunDirectives, "max-run-directives", "", 5, "RUN directive count above which layer sprawl is flagged")
	lintCmd.Flags().IntVarP(&options.MinIgnoreRules, "min-ignore-rules", "", 3, "Minimum effective .dockerignore rules considered sufficient")
	lintCmd.Flags().StringVarP(&options.MaxFileSize, "max-file-size", "", "1Mb", "Maximum Dockerfile size to analyze. Larger files are refused. Format: https://pkg.go.dev/github.com/docker/go-units#FromHumanSize")
	lintCmd.Flags().BoolVarP(&options.NoColor, "no-color", "", false, "Disable colored report output")
	lintCmd.Flags().BoolVarP(&options.Quiet, "quiet", "q", false, "Hide success findings in the report")

	return lintCmd
}

func Lint(cmd *cobra.Command, args []string) {
	if err := config.BindFlags(cmd, map[string]string{
		"max-run-directives": "lint.max_run_directives",
		"min-ignore-rules":   "lint.min_ignore_rules",
		"max-file-size":      "lint.max_file_size",
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to bind command flags to configuration keys")
	}

	options.MaxRunDirectives = config.GetInt("lint.max_run_directives")
	options.MinIgnoreRules = config.GetInt("lint.min_ignore_rules")
	options.MaxFileSize = config.GetString("lint.max_file_size")

	if err := config.ValidateThreshold("max-run-directives", options.MaxRunDirectives); err != nil {
		log.Fatal().Err(err).Msg("Invalid RUN directive threshold")
	}
	if err := config.ValidateThreshold("min-ignore-rules", options.MinIgnoreRules); err != nil {
		log.Fatal().Err(err).Msg("Invalid minimum ignore rule count")
	}
	maxSize, err := config.ParseMaxFileSize(options.MaxFileSize)
	if err != nil {
		log.Fatal().Err(err).Str("size", options.MaxFileSize).Msg("Failed parsing max-file-size flag")
	}

	dockerfilePath := "Dockerfile"
	if len(args) > 0 {
		dockerfilePath = args[0]
	}

	content := readDockerfile(dockerfilePath, maxSize)
	script := dockerfile.Parse(content)

	ignorePath := options.DockerignorePath
	if ignorePath == "" {
		ignorePath = filepath.Join(filepath.Dir(dockerfilePath), ".dockerignore")
	}
	ignoreContent, ignorePresent := readDockerignore(ignorePath)

	classification := ignore.Classify(ignoreContent, ignorePresent, ignore.Options{
		MinRules: options.MinIgnoreRules,
		Critical: patternsFromConfig(config.GetStringMapString("lint.critical_ignores")),
		Advisory: patternsFromConfig(config.GetStringMapString("lint.advisory_ignores")),
	})

	ruleCfg := rules.DefaultConfig()
	ruleCfg.MaxRunDirectives = options.MaxRunDirectives
	ruleCfg.HeavyImages = config.GetStringSlice("lint.heavy_images")
	ruleCfg.LightMarkers = config.GetStringSlice("lint.light_markers")

	findings := rules.NewEngine(ruleCfg).Run(script, classification)
	summary := report.Summarize(findings)

	reporter := &report.Reporter{
		Out:   cmd.OutOrStdout(),
		Color: !options.NoColor && term.IsTerminal(int(os.Stdout.Fd())),
		Quiet: options.Quiet,
	}
	reporter.Render(dockerfilePath, findings, summary)

	log.Debug().
		Int("errors", summary.Errors).
		Int("warnings", summary.Warnings).
		Int("exitStatus", summary.ExitStatus()).
		Msg("Analysis complete")

	if code := summary.ExitStatus(); code != 0 {
		osExit(code)
	}
}

// readDockerfile reads the build script. A missing or oversized Dockerfile is
// a hard failure before any rule runs.
func readDockerfile(path string, maxSize int64) string {
	info, err := os.Stat(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Dockerfile not found")
	}
	if info.Size() > maxSize {
		log.Fatal().Str("path", path).Int64("size", info.Size()).Int64("max", maxSize).Msg("Dockerfile exceeds the maximum file size")
	}

	// #nosec G304 - User-provided Dockerfile path, linting it is the tool's purpose
	content, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed reading Dockerfile")
	}
	return string(content)
}

// readDockerignore distinguishes a missing exclusion file (not fatal, Absent
// classification) from a present one.
func readDockerignore(path string) (string, bool) {
	// #nosec G304 - User-provided .dockerignore path, linting it is the tool's purpose
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Failed reading .dockerignore, treating as absent")
		}
		return "", false
	}
	return string(content), true
}

func patternsFromConfig(entries map[string]string) []ignore.Pattern {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	patterns := make([]ignore.Pattern, 0, len(names))
	for _, name := range names {
		patterns = append(patterns, ignore.Pattern{Name: name, Match: entries[name]})
	}
	return patterns
}
