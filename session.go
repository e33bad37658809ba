package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/console-tools/console/dispatch"
	"github.com/console-tools/console/display"
	"github.com/console-tools/console/style"
	"github.com/console-tools/console/usage"
)

// Session is one run of the interactive command loop. Commands are
// registered fresh per session; the session's display starts either
// all-ignore or as a copy of the program's current routes, per the
// mode passed to NewSession.
type Session struct {
	id       string
	console  *Console
	commands *dispatch.Registry
	disp     *display.Display

	prompt      string
	historyFile string
	exitName    string

	in  io.Reader // nil means stdin, readline-backed on a terminal
	out io.Writer

	exitRequested bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithInput reads lines from r instead of stdin. Used by tests and by
// hosts that pipe scripted input.
func WithInput(r io.Reader) SessionOption {
	return func(s *Session) {
		s.in = r
	}
}

// WithOutput redirects prompt and error reporting.
func WithOutput(w io.Writer) SessionOption {
	return func(s *Session) {
		s.out = w
	}
}

// WithPrompt overrides the configured prompt.
func WithPrompt(p string) SessionOption {
	return func(s *Session) {
		s.prompt = p
	}
}

// WithExitCommand renames the built-in exit command.
func WithExitCommand(name string) SessionOption {
	return func(s *Session) {
		s.exitName = name
	}
}

// NewSession builds an interactive session. The mode decides whether
// the session's display inherits the program's routes or starts silent.
// Built-in "help" and exit commands are registered first; the caller
// adds its own commands before Run.
func (c *Console) NewSession(mode display.Mode, opts ...SessionOption) (*Session, error) {
	s := &Session{
		id:          uuid.NewString(),
		console:     c,
		commands:    dispatch.NewRegistry(),
		disp:        c.disp.Clone(mode),
		prompt:      c.cfg.Console.Prompt,
		historyFile: c.cfg.Console.HistoryFile,
		exitName:    "exit",
		out:         os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	err := s.AddCommand(dispatch.Spec{
		Name:    "help",
		Summary: "List available commands",
		Handler: func(_ dispatch.Value, _ []string) error {
			fmt.Fprint(s.out, renderCommands(s.commands))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	err = s.AddCommand(dispatch.Spec{
		Name:    s.exitName,
		Summary: "Leave the console",
		Handler: func(_ dispatch.Value, _ []string) error {
			s.exitRequested = true
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Display returns the session's display. Reconfigure routes here to
// turn output on for a session started with ModeIgnore.
func (s *Session) Display() *display.Display {
	return s.disp
}

// Commands returns the session's command registry.
func (s *Session) Commands() *dispatch.Registry {
	return s.commands
}

// SetDefaultHandler installs the handler used for commands registered
// without one of their own.
func (s *Session) SetDefaultHandler(h dispatch.Handler) {
	s.commands.SetFallback(h)
}

// AddCommand registers an interactive command. Command names are taken
// literally: no dash normalization, matching is case-sensitive.
func (s *Session) AddCommand(spec dispatch.Spec) error {
	_, err := s.commands.Register(spec)
	return err
}

// Run blocks reading lines until the exit command fires, input ends, or
// the context is cancelled (checked between lines). Each line is split
// on whitespace and its first token dispatched against the command
// registry; dispatch errors are reported and the loop continues.
func (s *Session) Run(ctx context.Context) error {
	reader := s.newLineReader()
	defer reader.Close()

	s.disp.Debugf("console session %s started", s.id)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := reader.ReadLine(s.prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		if err := dispatch.Dispatch(s.commands, tokens); err != nil {
			s.report(err)
		}

		if s.exitRequested {
			return nil
		}
	}
}

// report prints a dispatch error without terminating the session.
func (s *Session) report(err error) {
	var ue *usage.Error
	if errors.As(err, &ue) {
		fmt.Fprintln(s.out, style.Error(ue.Error()))
		return
	}
	fmt.Fprintln(s.out, style.Error(fmt.Sprintf("%s: %v", s.console.Name(), err)))
}

func (s *Session) newLineReader() lineReader {
	if s.in != nil {
		return newScannerReader(s.in, nil)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return newTermReader(s.historyFile)
	}
	return newScannerReader(os.Stdin, s.out)
}
