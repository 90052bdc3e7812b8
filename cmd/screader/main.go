package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chenwei791129/screader/internal/config"
	"github.com/chenwei791129/screader/internal/gui"
	"github.com/chenwei791129/screader/pkg/superchat"
)

// timeLayout matches the console format of earlier releases, e.g. 10/18 14:03:07.512
const timeLayout = "01/02 15:04:05.000"

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:     "screader",
	Short:   "Superchat Reader",
	Long:    `Superchat Reader shows paid live-stream chat messages next to a window for managing streaming accounts and video sources.`,
	Version: superchat.Version(),
	Args:    cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer func() {
			_ = logger.Sync()
		}()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		ctx, stop := interruptContext(cmd.Context())
		defer stop()

		logger.Info(superchat.WindowTitle())
		gui.NewApp(logger, cfg).Run(ctx)
		return nil
	},
}

// interruptContext is cancelled by the first SIGINT or SIGTERM.
// The handler is removed right away so a second signal kills the process even if shutdown hangs.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	context.AfterFunc(ctx, stop)
	return ctx, stop
}

// newLogger builds the console logger. Verbose mode adds debug output and caller info.
func newLogger(verbose bool) (*zap.Logger, error) {
	var zapConfig zap.Config
	if verbose {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.DisableCaller = true
		zapConfig.DisableStacktrace = true
		zapConfig.Encoding = "console"
	}
	zapConfig.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapConfig.Build()
}

func init() {
	// Launching from Explorer on Windows is the normal way to start a GUI app
	cobra.MousetrapHelpText = ""
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
