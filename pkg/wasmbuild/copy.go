package wasmbuild

import (
	"io"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"

	"github.com/davidmdm/x/xerr"
)

// Copier publishes the artifacts of a WASM build into the web client's public directory.
type Copier struct {
	Layout Layout
}

// Copy overwrites the variant's script and binary in the asset directory, adds the worker
// script for threaded builds and the source map when the build produced one, and replaces
// the shared resources directory with the build's copy. The destination asset directory
// must already exist.
func (copier Copier) Copy(buildDir string, threaded bool) error {
	var (
		target      = copier.Layout.Target
		source      = filepath.Join(buildDir, copier.Layout.ArtifactDir)
		destination = copier.Layout.AssetDir(threaded)
	)

	files := []string{target + ".js", target + ".wasm"}
	if threaded {
		files = append(files, target+".worker.js")
	}
	if _, err := os.Stat(filepath.Join(source, target+".wasm.map")); err == nil {
		files = append(files, target+".wasm.map")
	}

	for _, name := range files {
		if err := copyFile(filepath.Join(source, name), filepath.Join(destination, name)); err != nil {
			return err
		}
	}

	resources := copier.Layout.ResourcesDir()
	if err := os.RemoveAll(resources); err != nil {
		return err
	}

	return copy.Copy(filepath.Join(source, "resources"), resources)
}

func copyFile(src, dst string) (err error) {
	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		err = xerr.MultiErrFrom("", err, destination.Close())
	}()

	_, err = io.Copy(destination, source)
	return err
}
