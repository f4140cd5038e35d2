package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/valksor/go-relwatch/internal/config"
	"github.com/valksor/go-relwatch/internal/display"
	"github.com/valksor/go-relwatch/internal/log"
)

var (
	cfg      *config.Config
	settings *config.Settings

	// Global flags.
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "relwatch",
	Short: "Check repositories for new releases",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Long: `Relwatch queries a hosting provider's release API for a repository and
reports whether a newer release exists relative to a given version.

Repositories can be identified by web URL, owner/repo pair, or git remote URL:

  relwatch check valksor/go-relwatch --current v1.2.0
  relwatch check https://github.com/valksor/go-relwatch --current v1.2.0
  relwatch check git@github.com:valksor/go-relwatch.git --current v1.2.0`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env file FIRST so env vars are available for everything else
		if err := config.LoadDotEnvFromCwd(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load .relwatch/.env: %v\n", err)
		}

		// Configure logging from CLI flag
		log.Configure(log.Options{
			Verbose: verbose,
		})

		// Initialize color output from CLI flag (also respects NO_COLOR env)
		display.InitColors(noColor)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		settings, err = config.LoadSettings()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		log.Debug("initialized", "verbose", verbose)

		return nil
	},
}

// Execute runs the root command with signal handling.
func Execute() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", display.Error("✗"), err)
		return err
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output")
}
