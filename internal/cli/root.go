package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/rpsgame/internal/factory"
)

// GreetingMessage opens every game
const GreetingMessage = "Let's play rock, paper, scissors"

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(factory.Config{})
}

// newRootCmd creates the root command with the given factory config; tests
// use it to inject a random source.
func newRootCmd(appCfg factory.Config) *cobra.Command {
	cfg, cfgErr := LoadConfig()
	if cfg == nil {
		cfg = &Config{Output: FormatText, LogFormat: FormatText}
	}
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "rps",
		Short: "Play rock, paper, scissors against the computer",
		Long: `rps plays a single round of rock, paper, scissors on the console.

Type your choice when prompted. Case does not matter and extra characters
around the word are ignored. The computer picks at random.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			if cmd.Flags().Changed("log-level") {
				if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
					return fmt.Errorf("invalid log level %q: %w", logLevel, err)
				}
			}
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			appCfg.Logger = cfg.NewLogger(cmd.ErrOrStderr())
			app := factory.New(appCfg)

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			term := NewTerminal(cmd.InOrStdin(), out)

			out.PrintMessage(GreetingMessage)

			result, err := app.GameController.Play(cmd.Context(), term)
			if err != nil {
				return err
			}

			out.Print(*result)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: RPS_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Debug logging (env: RPS_VERBOSE)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel.String(), "Log level: debug, info, warn, error (env: RPS_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text, json (env: RPS_LOG_FORMAT)")

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
