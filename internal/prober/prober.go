package prober

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"
)

// Status is the outcome of a wait.
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusTimeout   Status = "TIMEOUT"
	StatusCanceled  Status = "CANCELED"
)

// Result holds the outcome of a wait together with its timing.
type Result struct {
	Status   Status
	Elapsed  time.Duration
	Attempts int
}

// Prober polls a single TCP target until it accepts a connection or the
// wait budget runs out. Each attempt is a fresh connect that is closed as
// soon as the handshake succeeds.
type Prober struct {
	// Interval is the pause between attempts. A single in-flight connect
	// is also bounded by it, so the retry cadence stays predictable on
	// targets that drop packets instead of refusing them.
	Interval time.Duration
	Logger   *slog.Logger

	// FirstFailure, if set, runs once after the first failed attempt.
	FirstFailure func(host string)
}

// New creates a Prober with the standard 1-second cadence.
func New(logger *slog.Logger) *Prober {
	return &Prober{Interval: time.Second, Logger: logger}
}

// Wait polls host:port until it is reachable. A timeoutSeconds of 0 waits
// without a deadline; cancel the context to stop it. The overall deadline
// is authoritative: a wait never outlives it, whether it lands mid-connect
// or mid-sleep.
func (p *Prober) Wait(ctx context.Context, host, port string, timeoutSeconds int) Result {
	addr := net.JoinHostPort(host, port)

	if timeoutSeconds > 0 {
		p.Logger.Info("waiting for target", "address", addr, "timeout_seconds", timeoutSeconds)
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSeconds)*time.Second)
		defer cancel()
	} else {
		p.Logger.Info("waiting for target without a timeout", "address", addr)
	}

	dialer := net.Dialer{Timeout: p.Interval}
	start := time.Now()
	attempts := 0

	for {
		attempts++
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err == nil {
			conn.Close()
			elapsed := time.Since(start)
			p.Logger.Info("target is available",
				"address", addr,
				"seconds", int(elapsed.Seconds()),
				"attempts", attempts,
			)
			return Result{Status: StatusAvailable, Elapsed: elapsed, Attempts: attempts}
		}

		p.Logger.Debug("connect attempt failed", "address", addr, "attempt", attempts, "error", err)
		if attempts == 1 && p.FirstFailure != nil {
			p.FirstFailure(host)
		}

		if ctx.Err() != nil {
			return p.outcome(ctx, addr, timeoutSeconds, start, attempts)
		}
		select {
		case <-ctx.Done():
			return p.outcome(ctx, addr, timeoutSeconds, start, attempts)
		case <-time.After(p.Interval):
		}
	}
}

func (p *Prober) outcome(ctx context.Context, addr string, timeoutSeconds int, start time.Time, attempts int) Result {
	elapsed := time.Since(start)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		p.Logger.Error("timeout occurred after waiting",
			"seconds", timeoutSeconds,
			"address", addr,
			"attempts", attempts,
		)
		return Result{Status: StatusTimeout, Elapsed: elapsed, Attempts: attempts}
	}
	p.Logger.Error("wait canceled", "address", addr, "attempts", attempts)
	return Result{Status: StatusCanceled, Elapsed: elapsed, Attempts: attempts}
}
