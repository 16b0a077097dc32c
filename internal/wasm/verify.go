package wasm

import (
	"context"
	"fmt"
	"os"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/experimental"

	"github.com/davidmdm/x/xerr"
)

// Verify compiles the module at path without instantiating it. Emscripten output imports
// its JavaScript glue, so linking is out of reach; compilation still catches truncated or
// corrupt binaries. Threaded builds need the threads proposal enabled.
func Verify(ctx context.Context, path string, threads bool) (err error) {
	binary, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read wasm: %w", err)
	}

	features := api.CoreFeaturesV2
	if threads {
		features |= experimental.CoreFeaturesThreads
	}

	runtime := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().WithCoreFeatures(features))
	defer func() {
		err = xerr.MultiErrFrom("", err, runtime.Close(ctx))
	}()

	mod, err := runtime.CompileModule(ctx, binary)
	if err != nil {
		return fmt.Errorf("failed to compile module %s: %w", path, err)
	}

	return mod.Close(ctx)
}
