package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/sanjeevprasad/yamp/emit"
	"github.com/sanjeevprasad/yamp/parse"
)

func runGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	path := args[0]
	steps, err := parsePath(path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := args[1:]
	if len(files) == 0 {
		return getReader(cfg, cc.Out, cc.In, steps)
	}
	for i, file := range files {
		if err := getFile(cfg, cc.Out, file, steps); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, path, err)
		}
		if i < len(files)-1 {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}

func getFile(cfg *GetConfig, w io.Writer, file string, steps []pathStep) error {
	in, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	return getOne(cfg, w, string(in), steps)
}

func getReader(cfg *GetConfig, w io.Writer, r io.Reader, steps []pathStep) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	return getOne(cfg, w, string(in), steps)
}

func getOne(cfg *GetConfig, w io.Writer, src string, steps []pathStep) error {
	root, err := parse.Parse(src)
	if err != nil {
		return fmt.Errorf("error decoding: %w", err)
	}
	found, err := walkPath(root, steps)
	if err != nil {
		return err
	}
	if s, ok := found.AsString(); ok {
		fmt.Fprintln(w, s)
		return nil
	}
	out, err := emit.Emit(found, cfg.emitOpts(w)...)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte(out))
	return err
}
