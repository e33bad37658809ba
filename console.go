// Package console is a base layer for command-line programs: typed
// startup flags with defaults and per-flag handlers, an interactive
// in-program command loop driven by the same dispatch machinery, and a
// leveled display router for program output.
package console

import (
	"github.com/console-tools/console/config"
	"github.com/console-tools/console/dispatch"
	"github.com/console-tools/console/display"
	"github.com/console-tools/console/usage"
)

// Console owns a program's flag registry and display. Build one at
// startup, register flags, then hand it os.Args[1:].
type Console struct {
	name   string
	flags  *dispatch.Registry
	disp   *display.Display
	cfg    config.Config
	cfgSet bool
}

// Option configures a Console.
type Option func(*Console)

// WithDisplay replaces the default display.
func WithDisplay(d *display.Display) Option {
	return func(c *Console) {
		c.disp = d
	}
}

// WithConfig applies a loaded configuration: display routes take effect
// immediately, console settings apply to sessions started later.
func WithConfig(cfg config.Config) Option {
	return func(c *Console) {
		c.cfg = cfg
		c.cfgSet = true
	}
}

// New creates a Console for the named program.
func New(name string, opts ...Option) *Console {
	c := &Console{
		name:  name,
		flags: dispatch.NewRegistry(),
		cfg:   config.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.disp == nil {
		c.disp = display.New()
	}
	if c.cfgSet {
		for cat, route := range c.cfg.Routes() {
			c.disp.SetRoute(cat, route)
		}
	}
	return c
}

// Name returns the program name.
func (c *Console) Name() string {
	return c.name
}

// Display returns the program-level display.
func (c *Console) Display() *display.Display {
	return c.disp
}

// Flags returns the flag registry, mainly for help listing and tests.
func (c *Console) Flags() *dispatch.Registry {
	return c.flags
}

// SetDefaultHandler installs the handler used for flags registered
// without one of their own.
func (c *Console) SetDefaultHandler(h dispatch.Handler) {
	c.flags.SetFallback(h)
}

// AddFlag registers a startup flag. Names work with or without leading
// dashes: "count" and "--count" register the same flag, and a short
// alias "c" becomes "-c". Duplicate names are rejected.
func (c *Console) AddFlag(spec dispatch.Spec) error {
	spec.Name = normalizeLong(spec.Name)
	spec.Short = normalizeShort(spec.Short)
	_, err := c.flags.Register(spec)
	return err
}

// QuickAddFlags registers several flags at once against the default
// handler. The shorts string supplies one alias rune per name; '?'
// and ' ' mean no alias for that position.
func (c *Console) QuickAddFlags(names []string, shorts string) error {
	runes := []rune(shorts)
	for i, name := range names {
		spec := dispatch.Spec{Name: name}
		if i < len(runes) && runes[i] != '?' && runes[i] != ' ' {
			spec.Short = string(runes[i])
		}
		if err := c.AddFlag(spec); err != nil {
			return err
		}
	}
	return nil
}

// ParseArgs walks argv against the flag registry, firing matched
// handlers. Unmatched tokens are skipped; coercion and missing-argument
// errors abort the walk and are returned for the caller to decide
// whether to exit.
func (c *Console) ParseArgs(argv []string) error {
	return dispatch.ParseArgs(c.flags, argv)
}

// FlagValue returns the current value of a flag: what dispatch last
// coerced for it, or its registered default if it never appeared in
// argv. Accepts the name with or without leading dashes.
func (c *Console) FlagValue(name string) (dispatch.Value, bool) {
	if v, ok := c.flags.Value(name); ok {
		return v, true
	}
	return c.flags.Value(normalizeLong(name))
}

// ErrorFor renders a dispatch error for human display, preserving exit
// codes for usage errors.
func ErrorFor(err error) (message string, exitCode int) {
	if ue, ok := err.(*usage.Error); ok {
		return ue.Error(), ue.ExitCode()
	}
	return err.Error(), 1
}

func normalizeLong(name string) string {
	if name == "" || name[0] == '-' {
		return name
	}
	return "--" + name
}

func normalizeShort(short string) string {
	if short == "" || short[0] == '-' {
		return short
	}
	return "-" + short
}
