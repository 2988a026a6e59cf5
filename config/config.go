package config

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultTimeout is the wait budget in seconds used when -t is not given.
const DefaultTimeout = 15

// Config holds all settings for a single wait. It is built once by Parse
// and never mutated afterwards.
type Config struct {
	Host         string
	Port         string
	Timeout      int // seconds; 0 means wait without a deadline
	Quiet        bool
	Strict       bool
	Diagnose     bool
	ChildCommand []string
}

// UsageError reports missing or malformed arguments. Callers should print
// the usage text and exit with code 1.
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}

// ValidationError reports a port or timeout value that is not a valid
// number. Callers should exit with code 2.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be a non-negative integer, got %q", e.Field, e.Value)
}

// Usage returns the full usage text.
func Usage() string {
	return `Usage:
  tcpwait HOST:PORT [options] [-- COMMAND ARGS...]
  tcpwait -h HOST -p PORT [options] [-- COMMAND ARGS...]

Options:
  -h HOST | --host=HOST       Host or IP to probe
  -p PORT | --port=PORT       TCP port to probe
  -t N    | --timeout=N       Seconds to wait; 0 waits forever (default 15)
  -s      | --strict          Do not run COMMAND if the wait failed
  -q      | --quiet           Suppress status output (errors still print)
  -d      | --diagnose        Ping the host once after the first failed attempt
  --                          End of options; the rest is COMMAND
`
}

// value tracks whether an option was supplied at all, so an explicitly
// empty value still reaches validation instead of looking unset.
type value struct {
	s   string
	set bool
}

// setFirst records s unless the option was already supplied; repeated
// occurrences keep the first value.
func (v *value) setFirst(s string) {
	if !v.set {
		v.s = s
		v.set = true
	}
}

// Parse consumes an argument list (os.Args[1:]) left to right and returns
// the resulting Config. Option recognition stops at "--" or at the first
// bare token that is not the HOST:PORT form; everything from there on is
// the child command, passed through untouched. Repeated options keep their
// first value.
func Parse(args []string) (*Config, error) {
	cfg := &Config{Timeout: DefaultTimeout}
	var host, port, timeout value
	hostportSeen := false

	i := 0
	for i < len(args) {
		arg := args[i]
		switch {
		case arg == "--":
			cfg.ChildCommand = args[i+1:]
			i = len(args)
		case arg == "-s" || arg == "--strict":
			cfg.Strict = true
			i++
		case arg == "-q" || arg == "--quiet":
			cfg.Quiet = true
			i++
		case arg == "-d" || arg == "--diagnose":
			cfg.Diagnose = true
			i++
		case arg == "-h":
			val, err := optionValue(args, i, "-h")
			if err != nil {
				return nil, err
			}
			host.setFirst(val)
			i += 2
		case strings.HasPrefix(arg, "--host="):
			host.setFirst(strings.TrimPrefix(arg, "--host="))
			i++
		case arg == "-p":
			val, err := optionValue(args, i, "-p")
			if err != nil {
				return nil, err
			}
			port.setFirst(val)
			i += 2
		case strings.HasPrefix(arg, "--port="):
			port.setFirst(strings.TrimPrefix(arg, "--port="))
			i++
		case arg == "-t":
			val, err := optionValue(args, i, "-t")
			if err != nil {
				return nil, err
			}
			timeout.setFirst(val)
			i += 2
		case strings.HasPrefix(arg, "--timeout="):
			timeout.setFirst(strings.TrimPrefix(arg, "--timeout="))
			i++
		case strings.HasPrefix(arg, "-"):
			return nil, &UsageError{Reason: fmt.Sprintf("unknown option %q", arg)}
		case !hostportSeen && strings.Contains(arg, ":"):
			h, p, _ := strings.Cut(arg, ":")
			host.setFirst(h)
			port.setFirst(p)
			hostportSeen = true
			i++
		default:
			// First bare token starts the child command, no "--" needed.
			cfg.ChildCommand = args[i:]
			i = len(args)
		}
	}

	// A value that was never supplied is a usage problem; a supplied value
	// that fails the digit check, including an explicitly empty one, is a
	// validation problem.
	if host.s == "" || !port.set {
		return nil, &UsageError{Reason: "a host and port to probe are required"}
	}
	cfg.Host = host.s
	if !isDigits(port.s) {
		return nil, &ValidationError{Field: "port", Value: port.s}
	}
	cfg.Port = port.s
	if timeout.set {
		if !isDigits(timeout.s) {
			return nil, &ValidationError{Field: "timeout", Value: timeout.s}
		}
		n, err := strconv.Atoi(timeout.s)
		if err != nil {
			return nil, &ValidationError{Field: "timeout", Value: timeout.s}
		}
		cfg.Timeout = n
	}
	return cfg, nil
}

// optionValue returns the token following a value-taking option.
func optionValue(args []string, i int, opt string) (string, error) {
	if i+1 >= len(args) {
		return "", &UsageError{Reason: fmt.Sprintf("option %s requires an argument", opt)}
	}
	return args[i+1], nil
}

// isDigits reports whether s is a non-empty run of ASCII digits. Range is
// deliberately unchecked, so an out-of-range port passes here and simply
// never connects.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
