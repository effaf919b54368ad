package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func runCheck(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return checkReader(cfg, cc.Out, cc.In, "-")
	}
	changed := false
	for _, file := range args {
		ok, err := checkFile(cfg, cc.Out, file)
		if err != nil {
			return err
		}
		if !ok {
			changed = true
		}
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, w io.Writer, file string) (bool, error) {
	in, err := os.ReadFile(file)
	if err != nil {
		return false, fmt.Errorf("error reading %q: %w", file, err)
	}
	return checkOne(cfg, w, file, string(in))
}

func checkReader(cfg *CheckConfig, w io.Writer, r io.Reader, name string) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	ok, err := checkOne(cfg, w, name, string(in))
	if err != nil {
		return err
	}
	if !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// checkOne reports whether src is already in its formatted shape,
// printing the file name (-l) or a diff (-diff) when it is not. The
// comparison is always against uncolored output.
func checkOne(cfg *CheckConfig, w io.Writer, name, src string) (bool, error) {
	out, err := formatText(&MainConfig{NoColor: true}, w, src)
	if err != nil {
		return false, fmt.Errorf("error formatting %q: %w", name, err)
	}
	if out == src {
		return true, nil
	}
	if cfg.List {
		fmt.Fprintln(w, name)
	}
	if cfg.Diff {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(src, out, false)
		fmt.Fprintf(w, "--- %s\n+++ %s (formatted)\n%s\n", name, name, dmp.DiffPrettyText(diffs))
	}
	if !cfg.List && !cfg.Diff {
		fmt.Fprintf(w, "%s: not formatted\n", name)
	}
	return false, nil
}
