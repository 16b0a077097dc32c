// Package wasmbuild drives the native tools build and the WebAssembly builds of the game
// client, then publishes the resulting artifacts to the web client.
package wasmbuild

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sanctify/wasmbuild/internal"
	"github.com/sanctify/wasmbuild/internal/wasm"
)

// RequiredTools are the Emscripten wrappers that must be on PATH before any work starts.
var RequiredTools = []string{"emcmake", "emmake"}

// Tools subproject targets, built in order.
var ToolTargets = []string{"protoc", "igpack-gen"}

type Config struct {
	Release             bool
	SkipToolsBuild      bool
	BuildSingleThreaded bool
	BuildMultiThreaded  bool
	VerifyWasm          bool
}

type Orchestrator struct {
	Layout Layout
	Runner Runner
	Exists func(name string) bool
	Verify func(ctx context.Context, path string, threads bool) error
}

func New(layout Layout) *Orchestrator {
	return &Orchestrator{
		Layout: layout,
		Runner: ExecRunner{},
		Exists: ProgramExists,
		Verify: wasm.Verify,
	}
}

type StageTiming struct {
	Name     string
	Duration time.Duration
}

type Summary struct {
	Stages []StageTiming
}

func (summary *Summary) Total() (total time.Duration) {
	for _, stage := range summary.Stages {
		total += stage.Duration
	}
	return
}

func (summary *Summary) time(ctx context.Context, name string, fn func() error) error {
	done := internal.DebugTimer(ctx, name)
	err := fn()
	summary.Stages = append(summary.Stages, StageTiming{Name: name, Duration: done()})
	return err
}

// Run executes the tools build and the requested WASM variants in order. The first failure
// ends the run; the returned summary covers the stages attempted so far.
func (orchestrator Orchestrator) Run(ctx context.Context, cfg Config) (*Summary, error) {
	var missing []string
	for _, tool := range RequiredTools {
		if !orchestrator.Exists(tool) {
			missing = append(missing, tool)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingToolError{Names: missing}
	}

	summary := new(Summary)

	toolsDir := ToolsDirName(cfg.Release)
	if !cfg.SkipToolsBuild {
		if err := summary.time(ctx, toolsDir, func() error { return orchestrator.buildTools(ctx, toolsDir, cfg) }); err != nil {
			return summary, err
		}
	}

	var variants []bool
	if cfg.BuildSingleThreaded {
		variants = append(variants, false)
	}
	if cfg.BuildMultiThreaded {
		variants = append(variants, true)
	}

	for _, threaded := range variants {
		name := VariantDirName(threaded, cfg.Release)
		if err := summary.time(ctx, name, func() error { return orchestrator.buildVariant(ctx, name, toolsDir, threaded, cfg) }); err != nil {
			return summary, err
		}
	}

	internal.Progress(ctx, "Finished!")

	return summary, nil
}

func (orchestrator Orchestrator) buildTools(ctx context.Context, name string, cfg Config) error {
	dir, err := orchestrator.buildDir(name)
	if err != nil {
		return err
	}

	opts := CMakeOptions{Logging: true, Release: cfg.Release}

	internal.Progress(ctx, "Configuring CMake tools directory... (this can take a long time!)")
	if err := orchestrator.configure(ctx, Command{
		Name: "cmake",
		Args: append([]string{orchestrator.Layout.SourceFrom(dir), "."}, opts.Args()...),
		Dir:  dir,
	}); err != nil {
		return err
	}

	for _, target := range ToolTargets {
		internal.Progress(ctx, fmt.Sprintf("Building %s...", target))
		if err := orchestrator.call(ctx, Command{
			Name: "cmake",
			Args: []string{"--build", ".", "--config", BuildType(cfg.Release), "--target", target},
			Dir:  dir,
		}); err != nil {
			return err
		}
	}

	internal.Progress(ctx, "Tools build complete!")

	return nil
}

func (orchestrator Orchestrator) buildVariant(ctx context.Context, name, toolsDir string, threaded bool, cfg Config) error {
	dir, err := orchestrator.buildDir(name)
	if err != nil {
		return err
	}

	label := "single threaded"
	if threaded {
		label = "multi threaded"
	}

	opts := CMakeOptions{
		ToolBuildRoot: toolsDir,
		Threads:       threaded,
		Logging:       true,
		Release:       cfg.Release,
	}

	internal.Progress(ctx, fmt.Sprintf("Configuring %s build CMake WASM directory... (this can take a long time!)", label))
	if err := orchestrator.configure(ctx, Command{
		Name: "emcmake",
		Args: append([]string{"cmake", orchestrator.Layout.SourceFrom(dir), "."}, opts.Args()...),
		Dir:  dir,
	}); err != nil {
		return err
	}

	internal.Progress(ctx, fmt.Sprintf("Building %s (%s)...", orchestrator.Layout.Target, label))
	if err := orchestrator.call(ctx, Command{
		Name: "emmake",
		Args: []string{"ninja", orchestrator.Layout.Target},
		Dir:  dir,
	}); err != nil {
		return err
	}

	copier := Copier{Layout: orchestrator.Layout}
	if err := copier.Copy(dir, threaded); err != nil {
		return fmt.Errorf("failed to copy %s artifacts: %w", name, err)
	}

	if cfg.VerifyWasm && orchestrator.Verify != nil {
		binary := filepath.Join(orchestrator.Layout.AssetDir(threaded), orchestrator.Layout.Target+".wasm")
		internal.Progress(ctx, "Verifying "+binary+"...")
		if err := orchestrator.Verify(ctx, binary, threaded); err != nil {
			return err
		}
	}

	return nil
}

func (orchestrator Orchestrator) buildDir(name string) (string, error) {
	dir := orchestrator.Layout.BuildDir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create build directory: %w", err)
	}
	return dir, nil
}

// configure runs a configure command and records it in the build directory once it succeeds.
func (orchestrator Orchestrator) configure(ctx context.Context, command Command) error {
	reportConfigureChange(ctx, command)

	if err := orchestrator.call(ctx, command); err != nil {
		return err
	}

	record := StageRecord{
		Command:      append([]string{command.Name}, command.Args...),
		ConfiguredAt: time.Now().UTC(),
	}
	if err := SaveStageRecord(command.Dir, record); err != nil {
		return fmt.Errorf("failed to save stage record: %w", err)
	}
	return nil
}

func (orchestrator Orchestrator) call(ctx context.Context, command Command) error {
	internal.Echo(ctx, command.String())

	err := orchestrator.Runner.Run(ctx, command)
	if err == nil {
		return nil
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return err
	}
	return &CommandError{Command: command, ExitCode: -1, Err: err}
}
