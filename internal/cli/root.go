package cli

import (
	"github.com/spf13/cobra"

	"github.com/harun/toolrouter/internal/config"
	"github.com/harun/toolrouter/internal/logger"
)

const version = "0.1.0"

var (
	cfgFile  string
	logLevel string

	cfg    *config.Config
	appLog *logger.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "toolrouter",
	Short: "Toolrouter - name-dispatch tool calling for language models",
	Long: `Toolrouter routes a language model's tool-call decisions to registered
implementations: it renders a tool catalog for the prompt, parses the model's
chosen tool and arguments out of raw output, validates them and dispatches.`,
	Version:           version,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.toolrouter/toolrouter.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
}

// setup loads configuration and installs the global logger before any
// subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Logging.Level = logLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	appLog, err = logger.New(logger.Config{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: true,
		Pretty:  cfg.Logging.Pretty,
	})
	if err != nil {
		return err
	}

	appLog.Debug().Str("config", cfg.String()).Msg("Configuration loaded")
	return nil
}

// GetRootCmd returns the root command for testing
func GetRootCmd() *cobra.Command {
	return rootCmd
}
