package main

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sanctify/wasmbuild/internal"
)

// runtimeModules do work during a build: resources copying, wasm verification and root
// discovery.
var runtimeModules = []string{
	"github.com/otiai10/copy",
	"github.com/tetratelabs/wazero",
	"github.com/go-git/go-git/v5",
}

func Version(ctx context.Context) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return errors.New("build information is not available: binary was not built with module support")
	}

	_, err := fmt.Fprintln(internal.Stdout(ctx), RenderVersion(info))
	return err
}

func RenderVersion(info *debug.BuildInfo) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleRounded)

	tbl.AppendHeader(table.Row{"module", "version"})
	tbl.AppendRow(table.Row{"wasmbuild", info.Main.Version})
	tbl.AppendRow(table.Row{"go", info.GoVersion})

	for _, mod := range info.Deps {
		if !slices.Contains(runtimeModules, mod.Path) {
			continue
		}
		if mod.Replace != nil {
			mod = mod.Replace
		}
		tbl.AppendRow(table.Row{mod.Path, mod.Version})
	}

	return tbl.Render()
}
