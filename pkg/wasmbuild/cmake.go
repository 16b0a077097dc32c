package wasmbuild

import "path"

const (
	BuildTypeDebug   = "Debug"
	BuildTypeRelease = "MinSizeRel"
)

func BuildType(release bool) string {
	if release {
		return BuildTypeRelease
	}
	return BuildTypeDebug
}

// CMakeOptions are the cache variables passed to every configure step of the C++ tree.
type CMakeOptions struct {
	// ToolBuildRoot is the name of a sibling build directory containing ig-tools.cmake.
	// When empty the configure step generates the tools itself.
	ToolBuildRoot     string
	Threads           bool
	GraphicsDebugging bool
	Logging           bool
	Release           bool
}

func (opts CMakeOptions) Args() []string {
	wranglePath := "ig-tools.cmake"
	if opts.ToolBuildRoot != "" {
		wranglePath = path.Join("..", opts.ToolBuildRoot, "ig-tools.cmake")
	}

	return []string{
		"-DIG_BUILD_TESTS=OFF",
		"-DIG_BUILD_SERVER=OFF",
		"-DIG_ENABLE_THREADS=" + onOff(opts.Threads),
		"-DIG_ENABLE_GRAPHICS_DEBUGGING=" + onOff(opts.GraphicsDebugging),
		"-DIG_ENABLE_LOGGING=" + onOff(opts.Logging),
		"-DIG_TOOL_WRANGLE_PATH=" + wranglePath,
		"-DCMAKE_BUILD_TYPE=" + BuildType(opts.Release),
	}
}

func onOff(value bool) string {
	if value {
		return "ON"
	}
	return "OFF"
}
