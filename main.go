package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tcpwait/config"
	"tcpwait/internal/execer"
	"tcpwait/internal/logger"
	"tcpwait/internal/pinger"
	"tcpwait/internal/prober"
)

// Exit codes: 0 target became available, 1 wait failed or arguments were
// unusable, 2 invalid port/timeout value or the child command cannot be
// executed at all.
const (
	exitOK          = 0
	exitWaitFailed  = 1
	exitInvalid     = 2
	diagnoseTimeout = time.Second
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "tcpwait: %v\n", err)
		var uerr *config.UsageError
		if errors.As(err, &uerr) {
			fmt.Fprint(os.Stderr, config.Usage())
			os.Exit(exitWaitFailed)
		}
		os.Exit(exitInvalid)
	}

	appLogger := logger.New(cfg.Quiet)
	slog.SetDefault(appLogger)

	// Resolve the child binary before polling, so a command that could
	// never run does not burn the whole wait budget first.
	childPath := ""
	if len(cfg.ChildCommand) > 0 {
		childPath, err = execer.Resolve(cfg.ChildCommand)
		if err != nil {
			appLogger.Error("child command is not executable", "error", err)
			os.Exit(exitInvalid)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := prober.New(appLogger)
	if cfg.Diagnose {
		p.FirstFailure = func(host string) {
			pinger.Diagnose(host, diagnoseTimeout, appLogger)
		}
	}

	res := p.Wait(ctx, cfg.Host, cfg.Port, cfg.Timeout)
	available := res.Status == prober.StatusAvailable

	// An interrupted wait terminates the program; only a genuine timeout
	// may still hand off to the child in non-strict mode.
	if res.Status == prober.StatusCanceled {
		os.Exit(exitWaitFailed)
	}

	if len(cfg.ChildCommand) == 0 {
		if available {
			os.Exit(exitOK)
		}
		os.Exit(exitWaitFailed)
	}

	if !available && cfg.Strict {
		appLogger.Error("strict mode, refusing to run child command after failed wait",
			"command", strings.Join(cfg.ChildCommand, " "),
		)
		os.Exit(exitWaitFailed)
	}

	// Restore default signal handling before the handoff; the child owns
	// the process from here.
	stop()
	if err := execer.Handoff(childPath, cfg.ChildCommand, os.Environ()); err != nil {
		appLogger.Error("failed to run child command", "error", err)
		os.Exit(exitInvalid)
	}
}
