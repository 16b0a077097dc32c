package wasmbuild

import (
	"path/filepath"
)

// Layout locates the C++ tree, its build directories and the web client's public assets.
// Every path except Root is relative to Root.
type Layout struct {
	Root        string `yaml:"-"`
	SourceDir   string `yaml:"sourceDir"`
	OutDir      string `yaml:"outDir"`
	PublicDir   string `yaml:"publicDir"`
	ArtifactDir string `yaml:"artifactDir"`
	Target      string `yaml:"target"`
}

func DefaultLayout(root string) Layout {
	return Layout{
		Root:        root,
		SourceDir:   "cpp",
		OutDir:      filepath.Join("cpp", "out"),
		PublicDir:   filepath.Join("ts", "packages", "sanctify-web-client", "public"),
		ArtifactDir: filepath.Join("sanctify-game", "client"),
		Target:      "sanctify-game-client",
	}
}

func (layout Layout) BuildDir(name string) string {
	return filepath.Join(layout.Root, layout.OutDir, name)
}

// SourceFrom is the path of the C++ source tree relative to a build directory.
func (layout Layout) SourceFrom(buildDir string) string {
	source := filepath.Join(layout.Root, layout.SourceDir)
	if rel, err := filepath.Rel(buildDir, source); err == nil {
		return rel
	}
	return source
}

func (layout Layout) AssetDir(threaded bool) string {
	if threaded {
		return filepath.Join(layout.Root, layout.PublicDir, "wasm_mt")
	}
	return filepath.Join(layout.Root, layout.PublicDir, "wasm_st")
}

// ResourcesDir is shared by both variants.
func (layout Layout) ResourcesDir() string {
	return filepath.Join(layout.Root, layout.PublicDir, "resources")
}

func ToolsDirName(release bool) string {
	return "tools-" + mode(release)
}

func VariantDirName(threaded, release bool) string {
	if threaded {
		return "wasm-mt-" + mode(release)
	}
	return "wasm-st-" + mode(release)
}

func mode(release bool) string {
	if release {
		return "release"
	}
	return "debug"
}
