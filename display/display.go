// Package display routes leveled messages to standard output, a log
// sink, both, or neither, based on a per-category route setting.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Category classifies a relayed message.
type Category int

const (
	Debug Category = iota
	Info
	Warning
	Error
)

func (c Category) String() string {
	switch c {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory converts a string to a Category, case-insensitively.
// Unrecognized strings map to Info.
func ParseCategory(s string) Category {
	switch strings.ToLower(s) {
	case "debug":
		return Debug
	case "info":
		return Info
	case "warning", "warn":
		return Warning
	case "error":
		return Error
	default:
		return Info
	}
}

// Route selects the destinations for one category.
type Route int

const (
	RouteIgnore Route = iota
	RouteStdout
	RouteLog
	RouteBoth
)

func (r Route) String() string {
	switch r {
	case RouteIgnore:
		return "ignore"
	case RouteStdout:
		return "stdout"
	case RouteLog:
		return "log"
	case RouteBoth:
		return "stdout+log"
	default:
		return "unknown"
	}
}

// ParseRoute converts a string to a Route, case-insensitively.
// Unrecognized strings map to RouteIgnore.
func ParseRoute(s string) Route {
	switch strings.ToLower(s) {
	case "stdout":
		return RouteStdout
	case "log":
		return RouteLog
	case "stdout+log", "both":
		return RouteBoth
	default:
		return RouteIgnore
	}
}

// Mode controls how an interactive session's Display starts relative to
// its parent.
type Mode int

const (
	// ModeIgnore starts the session with every category routed nowhere.
	ModeIgnore Mode = iota
	// ModeInherit copies the parent's current routes into the session.
	ModeInherit
)

// Display relays categorized messages to its configured destinations.
// The log sink is an externally opened append-mode text destination;
// Display only ever appends whole lines to it.
type Display struct {
	mu     sync.Mutex
	stdout io.Writer
	sink   io.Writer
	routes map[Category]Route
}

// Option configures a Display.
type Option func(*Display)

// WithStdout replaces the standard-output destination.
func WithStdout(w io.Writer) Option {
	return func(d *Display) {
		d.stdout = w
	}
}

// WithSink sets the log sink.
func WithSink(w io.Writer) Option {
	return func(d *Display) {
		d.sink = w
	}
}

// WithRoute sets the route for one category.
func WithRoute(c Category, r Route) Option {
	return func(d *Display) {
		d.routes[c] = r
	}
}

// New creates a Display. Default routes: Debug is ignored, everything
// else goes to stdout.
func New(opts ...Option) *Display {
	d := &Display{
		stdout: os.Stdout,
		routes: map[Category]Route{
			Debug:   RouteIgnore,
			Info:    RouteStdout,
			Warning: RouteStdout,
			Error:   RouteStdout,
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetRoute changes the route for one category.
func (d *Display) SetRoute(c Category, r Route) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.routes[c] = r
}

// Route returns the current route for a category.
func (d *Display) Route(c Category) Route {
	if d == nil {
		return RouteIgnore
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.routes[c]
}

// SetSink replaces the log sink.
func (d *Display) SetSink(w io.Writer) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sink = w
}

// Relay formats a message and writes it to the destinations configured
// for its category. Stdout receives the bare line; the log sink
// receives a timestamped line in the usual log-file shape.
func (d *Display) Relay(c Category, format string, args ...any) {
	if d == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	route := d.routes[c]
	if route == RouteIgnore {
		return
	}

	message := fmt.Sprintf(format, args...)

	if (route == RouteStdout || route == RouteBoth) && d.stdout != nil {
		fmt.Fprintln(d.stdout, message)
	}

	if (route == RouteLog || route == RouteBoth) && d.sink != nil {
		timestamp := time.Now().Format("2006-01-02 15:04:05")
		logLine := fmt.Sprintf("[%s] %s: %s\n", timestamp, c.String(), message)
		if _, err := d.sink.Write([]byte(logLine)); err != nil && c >= Error {
			fmt.Fprintf(os.Stderr, "display: sink write failed: %v (message: %s)\n", err, message)
		}
	}
}

// Debugf relays a debug message.
func (d *Display) Debugf(format string, args ...any) {
	d.Relay(Debug, format, args...)
}

// Infof relays an informational message.
func (d *Display) Infof(format string, args ...any) {
	d.Relay(Info, format, args...)
}

// Warningf relays a warning.
func (d *Display) Warningf(format string, args ...any) {
	d.Relay(Warning, format, args...)
}

// Errorf relays an error message.
func (d *Display) Errorf(format string, args ...any) {
	d.Relay(Error, format, args...)
}

// Clone builds the Display for an interactive session. Both modes keep
// the parent's destinations so the session can be reconfigured onto
// them; ModeIgnore starts with every route off, ModeInherit with a copy
// of the parent's current routes.
func (d *Display) Clone(mode Mode) *Display {
	if d == nil {
		return New()
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	clone := &Display{
		stdout: d.stdout,
		sink:   d.sink,
		routes: make(map[Category]Route, len(d.routes)),
	}
	for c, r := range d.routes {
		if mode == ModeInherit {
			clone.routes[c] = r
		} else {
			clone.routes[c] = RouteIgnore
		}
	}
	return clone
}
