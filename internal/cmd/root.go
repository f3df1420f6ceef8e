package cmd

import (
	"os"
	"time"

	"github.com/CompassSecurity/imagelint/internal/cmd/docs"
	"github.com/CompassSecurity/imagelint/internal/cmd/lint"
	"github.com/CompassSecurity/imagelint/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version information - set via ldflags during build
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var (
	rootCmd = &cobra.Command{
		Use:     "imagelint",
		Short:   "Lint Dockerfiles and .dockerignore files",
		Long:    "Imagelint statically analyzes a Dockerfile and its .dockerignore for practices that inflate image size, weaken security, or waste build cache.",
		Example: "imagelint lint ./Dockerfile",
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			loadConfigFile(cmd)
			initLogger(cmd)
			setGlobalLogLevel(cmd)
		},
	}
	JsonLogoutput bool
	LogFile       string
	LogColor      bool
	LogDebug      bool
	LogLevel      string
	ConfigFile    string
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(lint.NewLintCmd())
	rootCmd.AddCommand(docs.NewDocsCmd(rootCmd))
	rootCmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file path (YAML, JSON, or TOML). Example: ~/.config/imagelint/config.yaml")
	rootCmd.PersistentFlags().BoolVarP(&JsonLogoutput, "json", "", false, "Use JSON as log output format")
	rootCmd.PersistentFlags().StringVarP(&LogFile, "logfile", "l", "", "Log output to a file")
	rootCmd.PersistentFlags().BoolVarP(&LogDebug, "verbose", "v", false, "Enable debug logging (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().StringVar(&LogLevel, "log-level", "", "Set log level globally (debug, info, warn, error). Example: --log-level=warn")
	rootCmd.PersistentFlags().BoolVar(&LogColor, "color", true, "Enable colored log output (auto-disabled when using --logfile or piping)")

	rootCmd.SetVersionTemplate(`{{.Version}}
`)
}

func initLogger(cmd *cobra.Command) {
	out := os.Stderr
	colorEnabled := LogColor && term.IsTerminal(int(os.Stderr.Fd()))

	if LogFile != "" {
		// #nosec G304 - User-provided log file path via --logfile flag, user controls their own filesystem
		runLogFile, err := os.OpenFile(LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			panic(err)
		}
		out = runLogFile

		rootFlags := cmd.Root().PersistentFlags()
		if !rootFlags.Changed("color") {
			colorEnabled = false
		}
	}

	if JsonLogoutput {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !colorEnabled,
	}).With().Timestamp().Logger()
}

func setGlobalLogLevel(cmd *cobra.Command) {
	if LogLevel != "" {
		switch LogLevel {
		case "trace":
			zerolog.SetGlobalLevel(zerolog.TraceLevel)
		case "debug":
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		case "info":
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		case "warn":
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		case "error":
			zerolog.SetGlobalLevel(zerolog.ErrorLevel)
		default:
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
			log.Warn().Str("logLevelSpecified", LogLevel).Msg("Invalid log level, defaulting to warn")
		}
		return
	}

	if LogDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("Log level set to debug (-v)")
		return
	}

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

// loadConfigFile loads the configuration from a file if specified
func loadConfigFile(cmd *cobra.Command) {
	if err := config.InitializeViper(ConfigFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration file")
	}
}
