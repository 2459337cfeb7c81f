package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/offlinefirst/dragscroll/pkg/config"
	"github.com/offlinefirst/dragscroll/pkg/permissions"
	"github.com/offlinefirst/dragscroll/pkg/scroll"
	"github.com/offlinefirst/dragscroll/pkg/tap"
)

func newRunCommand() command {
	return command{
		name:        "run",
		description: "Intercept pointer input and translate held-trigger movement into scrolling",
		configure: func(fs *flag.FlagSet) {
			fs.Bool("plan-only", false, "Print the resolved configuration without installing the event tap")
		},
		run: runDragScroll,
	}
}

var (
	newSessionID  = uuid.NewString
	notifyContext = func(parent context.Context) (context.Context, context.CancelFunc) {
		return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	}
	waitForAccess = func(ctx context.Context, logger *slog.Logger) error {
		return permissions.NewGate(permissions.GateOptions{Logger: logger}).Wait(ctx)
	}
	startTap = func(ctx context.Context, cfg scroll.Config, logger *slog.Logger) error {
		t, err := tap.New(tap.Options{Config: cfg, Logger: logger})
		if err != nil {
			return err
		}
		return t.Run(ctx)
	}
	watchConfig   = config.Watch
	displayNotice = tap.DisplayNotice
)

func runDragScroll(fs *flag.FlagSet, args []string, ctx *AppContext, stdout io.Writer, stderr io.Writer) error {
	if ctx == nil {
		return fmt.Errorf("application context unavailable")
	}

	if boolFlag(fs, "plan-only") {
		printConfig(ctx, stdout)
		return nil
	}

	logger := ctx.Logger.With("session", newSessionID())
	activation := ctx.Config.Activation
	logger.Info("run command invoked",
		"button", activation.Button,
		"keys", activation.Keys.Names(),
		"speed", activation.Speed,
		"legacy", activation.Legacy,
		"config_source", ctx.Config.Source,
	)

	sigCtx, stop := notifyContext(context.Background())
	defer stop()

	if err := waitForAccess(sigCtx, logger); err != nil {
		if sigCtx.Err() != nil {
			logger.Info("interrupted while waiting for accessibility trust")
			return nil
		}
		return fmt.Errorf("wait for accessibility trust: %w", err)
	}

	group, groupCtx := errgroup.WithContext(sigCtx)
	group.Go(func() error {
		return startTap(groupCtx, activation, logger)
	})
	if ctx.Config.Path != "" {
		path := ctx.Config.Path
		group.Go(func() error {
			err := watchConfig(groupCtx, path, func(op fsnotify.Op) {
				logger.Warn("configuration file changed; restart dragscroll to apply it", "path", path, "op", op.String())
			})
			if err != nil {
				logger.Warn("configuration watcher stopped", "path", path, "error", err)
			}
			return nil
		})
	}

	err := group.Wait()
	switch {
	case err == nil:
		logger.Info("event tap stopped")
		return nil
	case errors.Is(err, context.Canceled) && sigCtx.Err() != nil:
		logger.Info("shutdown requested")
		return nil
	case tap.IsFatal(err):
		logger.Error("event tap failed", "error", err)
		displayNotice(tap.NoticeFor(err))
		return fmt.Errorf("run event tap: %w", err)
	default:
		logger.Error("event tap failed", "error", err)
		return fmt.Errorf("run event tap: %w", err)
	}
}

func printConfig(ctx *AppContext, stdout io.Writer) {
	activation := ctx.Config.Activation
	fmt.Fprintf(stdout, "Resolved configuration (source: %s)\n", ctx.Config.Source)
	fmt.Fprintf(stdout, "  button: %d\n", activation.Button)
	fmt.Fprintf(stdout, "  keys: %v\n", activation.Keys.Names())
	fmt.Fprintf(stdout, "  speed: %d\n", activation.Speed)
	fmt.Fprintf(stdout, "  legacy_button_hold_behaviour: %t\n", activation.Legacy)
	fmt.Fprintf(stdout, "  logging.level: %s\n", ctx.Config.Logging.Level)
	fmt.Fprintf(stdout, "  logging.format: %s\n", ctx.Config.Logging.Format)
	for _, warning := range ctx.Config.Warnings {
		fmt.Fprintf(stdout, "  warning: %s\n", warning)
	}
}

func boolFlag(fs *flag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	value, err := strconv.ParseBool(f.Value.String())
	if err != nil {
		return false
	}
	return value
}
