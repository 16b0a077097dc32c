package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/davidmdm/conf"
	"golang.org/x/term"

	"github.com/sanctify/wasmbuild/internal"
	"github.com/sanctify/wasmbuild/pkg/wasmbuild"
)

// Settings are read from the environment and act as flag defaults.
type Settings struct {
	Root       string
	LayoutFile string
	Debug      bool
}

func getSettings() (settings Settings, err error) {
	conf.Var(conf.Environ, &settings.Root, "WASMBUILD_ROOT")
	conf.Var(conf.Environ, &settings.LayoutFile, "WASMBUILD_LAYOUT")
	conf.Var(conf.Environ, &settings.Debug, "WASMBUILD_DEBUG")
	err = conf.Environ.Parse()
	return
}

type Params struct {
	wasmbuild.Config
	Settings
	Color   bool
	Version bool
}

func GetParams(settings Settings, args []string) (*Params, error) {
	flagset := flag.NewFlagSet("wasmbuild", flag.ContinueOnError)

	flagset.Usage = func() {
		fmt.Fprintln(flagset.Output(), rootHelp)
		flagset.PrintDefaults()
	}

	params := Params{Settings: settings}

	flagset.BoolVar(&params.Release, "release_cxx", false, "build a release C++ binary")
	flagset.BoolVar(&params.SkipToolsBuild, "skip_tools_build", false, "skip building/configuring the tools project (faster startup if tools have not changed)")
	flagset.BoolVar(&params.BuildSingleThreaded, "build_single_threaded", true, "build the single threaded version of the application")
	flagset.BoolVar(&params.BuildMultiThreaded, "build_multi_threaded", true, "build the multi threaded version of the application")
	flagset.BoolVar(&params.VerifyWasm, "verify_wasm", false, "compile the copied wasm binaries to check they are well formed")

	flagset.StringVar(&params.Root, "root", settings.Root, "project root (defaults to the git repository containing the working directory)")
	flagset.StringVar(&params.LayoutFile, "layout", settings.LayoutFile, "yaml file overriding the project layout (defaults to <root>/wasmbuild.yaml if present)")
	flagset.BoolVar(&params.Debug, "debug", settings.Debug, "print debug information and stage timings to stderr")
	flagset.BoolVar(&params.Color, "color", term.IsTerminal(int(os.Stdout.Fd())), "use colored output")
	flagset.BoolVar(&params.Version, "version", false, "print version information and exit")

	if err := flagset.Parse(args); err != nil {
		return nil, err
	}

	if flagset.NArg() > 0 {
		return nil, fmt.Errorf("unexpected positional arguments: %v", flagset.Args())
	}

	return &params, nil
}

const DefaultLayoutFile = "wasmbuild.yaml"

// LoadLayout returns the default layout for root, overridden by the keys present in file.
// When file is empty, <root>/wasmbuild.yaml is used if it exists.
func LoadLayout(root, file string) (wasmbuild.Layout, error) {
	layout := wasmbuild.DefaultLayout(root)

	if file == "" {
		candidate := filepath.Join(root, DefaultLayoutFile)
		if _, err := os.Stat(candidate); errors.Is(err, fs.ErrNotExist) {
			return layout, nil
		}
		file = candidate
	}

	if err := internal.ReadYAML(file, &layout); err != nil {
		return layout, fmt.Errorf("failed to read layout: %w", err)
	}

	return layout, nil
}
