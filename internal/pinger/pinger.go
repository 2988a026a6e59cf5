package pinger

import (
	"log/slog"
	"time"

	"github.com/go-ping/ping"
)

// echoHostFunc is a package-level variable so tests can substitute the
// actual ICMP probe.
var echoHostFunc = icmpEcho

// Diagnose sends a single ICMP echo to the host and logs whether it
// answered at all. It runs after the first failed TCP attempt and helps
// tell a down host apart from a host whose port is simply not open yet.
// It never influences the wait outcome.
func Diagnose(host string, timeout time.Duration, logger *slog.Logger) {
	reachable, err := echoHostFunc(host, timeout)
	if err != nil {
		// Unprivileged ICMP may be disallowed by the kernel; the hint is
		// best-effort.
		logger.Debug("host diagnosis unavailable", "host", host, "error", err)
		return
	}
	if reachable {
		logger.Info("host answers ICMP echo; the port is not open yet", "host", host)
	} else {
		logger.Info("host does not answer ICMP echo", "host", host)
	}
}

func icmpEcho(host string, timeout time.Duration) (bool, error) {
	pinger, err := ping.NewPinger(host)
	if err != nil {
		return false, err
	}
	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.SetPrivileged(false)
	if err := pinger.Run(); err != nil {
		return false, err
	}
	return pinger.Statistics().PacketsRecv > 0, nil
}
