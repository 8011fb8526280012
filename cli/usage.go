package cli

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/saylorsolutions/cmdsig/input"
	flag "github.com/spf13/pflag"
)

// UsageString renders the usage information for this [Command].
func (c *Command) UsageString() string {
	var buf strings.Builder
	if len(c.shortUsage) > 0 {
		buf.WriteString(c.shortUsage + "\n\n")
	}
	buf.WriteString("USAGE:\n")
	if len(c.usage) > 0 {
		text := c.usage
		if len(c.parent) > 0 {
			text = c.parent + " " + text
		}
		buf.WriteString(strings.TrimSuffix(text, "\n") + "\n")
	} else {
		buf.WriteString(strings.TrimSpace(c.CommandPath()+" "+c.def.Synopsis()) + "\n")
	}
	if args := c.def.Arguments(); len(args) > 0 {
		buf.WriteString("\nARGUMENTS\n")
		buf.WriteString(argumentUsages(args))
	}
	if flags := flagUsages(c.key, c.def.Options()); len(flags) > 0 {
		buf.WriteString("\nFLAGS\n")
		buf.WriteString(flags)
	}
	if len(c.CommandSet.commands) > 0 {
		buf.WriteString("\nCOMMANDS\n")
		buf.WriteString(c.CommandUsages())
	}
	return buf.String()
}

// PrintUsage prints usage information for this [Command] with its [Printer].
func (c *Command) PrintUsage() {
	c.Printer().Print(c.UsageString())
}

func argumentUsages(args []input.ArgumentSpec) string {
	tw := table.NewWriter()
	style := table.StyleDefault
	style.Options = table.OptionsNoBordersAndSeparators
	tw.SetStyle(style)
	for _, arg := range args {
		var def string
		if arg.Default.IsSet() {
			def = "(default " + strings.Join(arg.Default.Values(), ",") + ")"
		}
		tw.AppendRow(table.Row{arg.Name, arg.Mode.String(), arg.Description, def})
	}
	var buf strings.Builder
	for _, line := range strings.Split(tw.Render(), "\n") {
		buf.WriteString(" " + strings.TrimRight(line, " ") + "\n")
	}
	return buf.String()
}

// flagUsages mirrors the options into a [flag.FlagSet] to render them the same way as posix style flags.
func flagUsages(name string, opts []input.OptionSpec) string {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	for _, opt := range opts {
		var shorthand string
		if len(opt.Shortcut) == 1 {
			shorthand = opt.Shortcut
		}
		switch {
		case !opt.AcceptsValue():
			fs.BoolP(opt.Name, shorthand, false, opt.Description)
		case opt.IsList():
			fs.StringArrayP(opt.Name, shorthand, opt.Default.Values(), opt.Description)
		default:
			fs.StringP(opt.Name, shorthand, strings.Join(opt.Default.Values(), ""), opt.Description)
		}
	}
	return fs.FlagUsages()
}
