// consoledemo shows the intended shape of a program built on the
// console package: typed startup flags, a default flag handler, and an
// interactive session with custom commands.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/console-tools/console"
	"github.com/console-tools/console/config"
	"github.com/console-tools/console/dispatch"
	"github.com/console-tools/console/display"
	"github.com/console-tools/console/style"
)

func main() {
	cfg, err := config.Load("consoledemo.toml")
	if err != nil {
		fatal(err)
	}

	style.Init(term.IsTerminal(int(os.Stdout.Fd())))

	c := console.New("consoledemo", console.WithConfig(cfg))

	c.SetDefaultHandler(func(v dispatch.Value, rest []string) error {
		c.Display().Infof("default flag handler, input %q, remaining %v", v.String(), rest)
		return nil
	})

	fatal(c.AddFlag(dispatch.Spec{
		Name:    "--example",
		Short:   "-e",
		Summary: "An integer-valued example flag",
		Input:   dispatch.InputInt,
		Default: dispatch.IntValue(0),
	}))

	fatal(c.AddFlag(dispatch.Spec{
		Name:    "custom",
		Short:   "c",
		Summary: "This flag supplies its own handler",
		Handler: func(_ dispatch.Value, _ []string) error {
			c.Display().Infof("custom flag handler fired")
			return nil
		},
	}))

	fatal(c.AddFlag(dispatch.Spec{
		Name:    "--log",
		Summary: "Append display output to a file",
		Input:   dispatch.InputString,
		Handler: func(v dispatch.Value, _ []string) error {
			f, err := os.OpenFile(v.Str(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
			if err != nil {
				return fmt.Errorf("open log sink: %w", err)
			}
			c.Display().SetSink(f)
			c.Display().SetRoute(display.Info, display.RouteBoth)
			c.Display().SetRoute(display.Error, display.RouteBoth)
			return nil
		},
	}))

	fatal(c.AddFlag(dispatch.Spec{
		Name:    "--help",
		Short:   "-h",
		Summary: "Show registered flags",
		Handler: func(_ dispatch.Value, _ []string) error {
			fmt.Print(c.Help())
			os.Exit(0)
			return nil
		},
	}))

	fatal(c.QuickAddFlags([]string{"test", "more"}, "?m"))

	if err := c.ParseArgs(os.Args[1:]); err != nil {
		msg, code := console.ErrorFor(err)
		fmt.Fprintln(os.Stderr, style.Error(msg))
		os.Exit(code)
	}

	if v, ok := c.FlagValue("example"); ok && v.Int() != 0 {
		c.Display().Infof("example flag set to %d", v.Int())
	}

	session, err := c.NewSession(display.ModeInherit)
	if err != nil {
		fatal(err)
	}

	fatal(session.AddCommand(dispatch.Spec{
		Name:    "example",
		Summary: "Echo a typed argument and the rest of the line",
		Usage:   "<input> [more...]",
		Input:   dispatch.InputString,
		Handler: func(v dispatch.Value, rest []string) error {
			session.Display().Infof("example command, input %q, remaining %v", v.Str(), rest)
			return nil
		},
	}))

	if err := session.Run(context.Background()); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
