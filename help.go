package console

import (
	"bytes"
	"strings"

	"github.com/console-tools/console/dispatch"
	"github.com/console-tools/console/style"
)

// Help renders the registered startup flags in registration order, with
// each flag's expected input type and default value.
func (c *Console) Help() string {
	return renderListing("FLAGS", c.flags.All(), true)
}

// renderCommands renders a session's command listing in registration
// order.
func renderCommands(r *dispatch.Registry) string {
	return renderListing("COMMANDS", r.All(), false)
}

func renderListing(title string, specs []*dispatch.Spec, showDefaults bool) string {
	var out bytes.Buffer
	out.WriteString(style.Header(title))
	out.WriteString("\n")

	left := make([]string, len(specs))
	width := 0
	for i, s := range specs {
		l := s.Name
		if s.Short != "" {
			l += ", " + s.Short
		}
		if s.Usage != "" {
			l += " " + s.Usage
		}
		left[i] = l
		if len(l) > width {
			width = len(l)
		}
	}

	for i, s := range specs {
		out.WriteString("   ")
		out.WriteString(style.Info(left[i]))
		out.WriteString(strings.Repeat(" ", width-len(left[i])+3))
		out.WriteString(s.Summary)

		if meta := specMeta(s, showDefaults); meta != "" {
			if s.Summary != "" {
				out.WriteString("  ")
			}
			out.WriteString(style.Muted(meta))
		}
		out.WriteString("\n")
	}

	return out.String()
}

// specMeta renders the type-and-default annotation, e.g. "(int, default 0)".
func specMeta(s *dispatch.Spec, showDefault bool) string {
	if s.Input == dispatch.InputIgnore {
		return ""
	}
	meta := "(" + s.Input.String()
	if showDefault {
		meta += ", default " + defaultString(s.Default)
	}
	return meta + ")"
}

func defaultString(v dispatch.Value) string {
	if v.IsZero() {
		return "none"
	}
	if s := v.String(); s != "" {
		return s
	}
	return `""`
}
