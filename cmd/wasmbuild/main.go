package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/davidmdm/x/xcontext"

	"github.com/sanctify/wasmbuild/internal"
	"github.com/sanctify/wasmbuild/internal/root"
	"github.com/sanctify/wasmbuild/pkg/wasmbuild"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(-1)
	}
}

//go:embed cmd_help.txt
var rootHelp string

func init() {
	rootHelp = strings.TrimSpace(internal.Colorize(rootHelp))
}

func run() error {
	ctx, done := xcontext.WithSignalCancelation(context.Background(), syscall.SIGINT)
	defer done()

	settings, err := getSettings()
	if err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	params, err := GetParams(settings, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if params.Version {
		return Version(ctx)
	}

	ctx = internal.WithDebug(ctx, params.Debug)
	ctx = internal.WithColor(ctx, params.Color)

	return Build(ctx, *params)
}

func Build(ctx context.Context, params Params) error {
	if params.Root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if params.Root, err = root.Find(cwd); err != nil {
			return fmt.Errorf("failed to locate project root (use --root): %w", err)
		}
	}

	layout, err := LoadLayout(params.Root, params.LayoutFile)
	if err != nil {
		return err
	}

	internal.Debug(ctx).Printf("layout: %+v\n", layout)

	summary, err := wasmbuild.New(layout).Run(ctx, params.Config)
	if summary != nil && len(summary.Stages) > 0 {
		fmt.Fprintln(internal.Stdout(ctx), RenderSummary(*summary))
	}
	return err
}
