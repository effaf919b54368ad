package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/sanjeevprasad/yamp/emit"
	"github.com/sanjeevprasad/yamp/parse"
)

func runFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmtReader(cfg, cc.Out, cc.In)
	}
	for _, file := range args {
		if err := fmtFile(cfg, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, w io.Writer, file string) error {
	in, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("error reading %q: %w", file, err)
	}
	out, err := formatText(cfg.MainConfig, w, string(in))
	if err != nil {
		return fmt.Errorf("error formatting %q: %w", file, err)
	}
	if !cfg.Write {
		_, err := w.Write([]byte(out))
		return err
	}
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	return os.WriteFile(file, []byte(out), info.Mode())
}

func fmtReader(cfg *FmtConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	out, err := formatText(cfg.MainConfig, w, string(in))
	if err != nil {
		return err
	}
	_, err = w.Write([]byte(out))
	return err
}

// formatText parses and re-emits src; it is shared by fmt and check so
// the two commands agree exactly on what "formatted" means.
func formatText(cfg *MainConfig, w io.Writer, src string) (string, error) {
	root, err := parse.Parse(src)
	if err != nil {
		return "", err
	}
	return emit.Emit(root, cfg.emitOpts(w)...)
}
