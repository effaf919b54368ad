package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/sanjeevprasad/yamp/emit"
)

// MainConfig holds the flags shared by every subcommand.
type MainConfig struct {
	Color   bool `cli:"name=color desc='force colorized output'"`
	NoColor bool `cli:"name=nocolor desc='disable colorized output'"`

	Main *cli.Command
}

// emitOpts decides whether to colorize based on -color/-nocolor, falling
// back to whether w is a terminal, the same precedence the teacher's
// encOpts gives -color against isatty.
func (cfg *MainConfig) emitOpts(w io.Writer) []emit.Option {
	if cfg.NoColor {
		return nil
	}
	if cfg.Color {
		return []emit.Option{emit.WithColors(emit.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []emit.Option{emit.WithColors(emit.NewColors())}
	}
	return nil
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to each file instead of stdout'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig
	List bool `cli:"name=l desc='list only the names of files that would change'"`
	Diff bool `cli:"name=diff desc='show a diff of what would change'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}
