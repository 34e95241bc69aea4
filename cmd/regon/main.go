// Command regon queries the Polish REGON registry from the command line.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"

	"github.com/sirosfoundation/go-regon/internal/config"
	"github.com/sirosfoundation/go-regon/pkg/regon"
)

var (
	// Global flags
	configPath string
	production bool
	clientKey  string
	output     string
	verbose    bool
	timeout    time.Duration

	// Logger
	logger *zap.Logger

	// Loaded configuration
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "regon",
	Short: "Query the REGON business registry (GUS BIR 1.1)",
	Long: `regon looks up Polish business entities by REGON or NIP and fetches
full registry reports through the GUS BIR 1.1 SOAP service.

Without --production the public test installation and its well-known key
are used. Production requires a key, from --key, REGON_CLIENT_KEY or the
config file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig(cmd)
		if err != nil {
			return err
		}

		logger, err = newLogger(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		switch output {
		case "json", "yaml":
		default:
			return fmt.Errorf("output must be 'json' or 'yaml', got '%s'", output)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&production, "production", false, "Use the production environment")
	rootCmd.PersistentFlags().StringVar(&clientKey, "key", "", "Client key (or set REGON_CLIENT_KEY env)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "json", "Output format: json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Operation timeout")

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(reportTypesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes bad input and missing entities from failed calls
func exitCode(err error) int {
	switch {
	case errors.Is(err, regon.ErrInvalidArgument):
		return 2
	case errors.Is(err, regon.ErrEntityNotFound):
		return 3
	default:
		return 1
	}
}

// loadConfig reads the config file, if any, applies flag and environment
// overrides and validates the result
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.Default()
	if configPath != "" {
		var err error
		c, err = config.Read(configPath)
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("production") && production {
		c.Environment = "production"
	}

	key := clientKey
	if key == "" {
		key = os.Getenv("REGON_CLIENT_KEY")
	}
	if key != "" {
		c.ClientKey = key
	}

	if verbose {
		c.Log.Level = "debug"
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// newLogger builds a zap production logger at the given level
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// newClient creates the registry client, logging through zap
func newClient() (*regon.Client, error) {
	opts := append(cfg.ClientOptions(), regon.WithLogger(slog.New(zapslog.NewHandler(logger.Core()))))
	return regon.NewClient(cfg.Production(), cfg.ClientKey, opts...)
}

// commandContext bounds a command by --timeout
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}
