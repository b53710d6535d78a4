package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"

	"hyprdrop/internal/app"
	"hyprdrop/internal/ledger"
	"hyprdrop/internal/wm"
	"hyprdrop/pkg/config"
	"hyprdrop/pkg/core"
	"hyprdrop/pkg/logger"
	"hyprdrop/pkg/notify"
)

const version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(run).ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// run wires one invocation: logging, configuration, compositor port and ledger.
func run(ctx context.Context, opts options) error {
	logLevel := zerolog.InfoLevel
	if opts.debug {
		logLevel = zerolog.DebugLevel
	}

	// Console only until the configuration names a log file.
	log, err := logger.NewLogger(
		logger.WithConsole(),
		logger.WithLevel(logLevel),
	)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	log.Debug("Starting Hyprdrop",
		"version", version,
		"pid", os.Getpid(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"debug", opts.debug)

	cfg, err := config.FindConfig(opts.configPath, log)
	if err != nil {
		log.Error("Failed to load configuration", err, "provided_path", opts.configPath)
		log.Close()
		return err
	}

	if logFile := cfg.GetLogFile(); logFile != "" {
		fileLog, err := logger.NewLogger(
			logger.WithConsole(),
			logger.WithFile(logFile),
			logger.WithLevel(logLevel),
		)
		if err != nil {
			log.Warn("File logging disabled", "log_file", logFile, "error", err.Error())
		} else {
			log.Close()
			log = fileLog
		}
	}
	defer log.Close()

	log.Debug("Configuration loaded",
		"config_path", cfg.Path(),
		"special_workspace", cfg.GetSpecialWorkspace(),
		"dispatch_strategy", cfg.GetDispatchStrategy(),
		"ledger_path", cfg.GetLedgerPath())

	notifier := notify.NewNotifyService(cfg.GetNotifyCommand(), log)

	port, err := wm.NewPort(cfg.GetDispatchStrategy(), log)
	if err != nil {
		log.Error("Failed to connect to compositor", err)
		if opts.debug {
			_ = notifier.Show(err.Error(), notify.Error)
		}
		return fmt.Errorf("%w: %v", app.ErrBoundaryUnavailable, err)
	}
	log.Debug("Compositor port ready", "transport", port.Name())

	addresses := openLedger(cfg.GetLedgerPath(), log)

	toggler := app.NewToggler(port, addresses, notifier, log, app.Options{
		SpecialWorkspace: cfg.GetSpecialWorkspace(),
		FocusAfterShow:   cfg.FocusAfterShow(),
		DiscoveryDelay:   cfg.GetDiscoveryDelay(),
	})

	out, err := toggler.Toggle(ctx, app.Request{
		Command:    opts.command,
		Identifier: opts.identifier,
		Args:       opts.args,
		Background: opts.background,
		Debug:      opts.debug,
	})
	if err != nil {
		if errors.Is(err, app.ErrBoundaryUnavailable) {
			log.Error("Compositor unavailable", err)
			if opts.debug {
				_ = notifier.Show(err.Error(), notify.Error)
			}
		} else {
			log.Warn("Toggle finished with failed steps", "state", out.State.String(), "error", err.Error())
		}
		return err
	}

	log.Debug("Toggle complete", "state", out.State.String(), "steps", len(out.Result.Ops))
	return nil
}

// openLedger loads the address ledger. An unreadable file only costs the
// remembered addresses, so the toggle continues with an in-memory ledger that
// leaves the file untouched.
func openLedger(path string, log core.Logger) *ledger.Ledger {
	addresses, err := ledger.Open(ledger.NewFileStore(path, log), log)
	if err == nil {
		return addresses
	}
	log.Warn("Address ledger unreadable, continuing without it", "path", path, "error", err.Error())
	addresses, _ = ledger.Open(ledger.NewMemoryStore(), log)
	return addresses
}
