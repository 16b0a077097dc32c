package wasmbuild

import (
	"os"
	"path/filepath"
	"strings"
)

// ProgramExists reports whether name resolves to an executable file. Names containing a
// path separator are checked directly, anything else is searched for in PATH.
func ProgramExists(name string) bool {
	return programExists(name, os.Getenv("PATH"))
}

func programExists(name, searchPath string) bool {
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return isExecutable(name)
	}
	for _, dir := range filepath.SplitList(searchPath) {
		if isExecutable(filepath.Join(strings.Trim(dir, "'"), name)) {
			return true
		}
	}
	return false
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
