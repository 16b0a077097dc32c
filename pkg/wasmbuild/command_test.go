package wasmbuild

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanctify/wasmbuild/internal"
)

func TestExecRunner(t *testing.T) {
	dir := t.TempDir()

	physicalDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	cases := []struct {
		Name     string
		Command  Command
		Stdout   string
		ExitCode int
		Error    []string
	}{
		{
			Name:    "arguments are not interpreted by a shell",
			Command: Command{Name: "printf", Args: []string{"%s|%s|", "$HOME", "a b;echo hi"}},
			Stdout:  "$HOME|a b;echo hi|",
		},
		{
			Name:     "child exit code is reported",
			Command:  Command{Name: "sh", Args: []string{"-c", "exit 3"}},
			ExitCode: 3,
			Error:    []string{"'sh -c exit 3' failed (3)"},
		},
		{
			Name:     "missing executable",
			Command:  Command{Name: filepath.Join(dir, "emcmake")},
			ExitCode: -1,
			Error:    []string{"emcmake' failed (-1)"},
		},
		{
			Name:    "runs in the command directory",
			Command: Command{Name: "pwd", Args: []string{"-P"}, Dir: dir},
			Stdout:  physicalDir + "\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			cwd, err := os.Getwd()
			require.NoError(t, err)

			var stdout bytes.Buffer
			ctx := internal.WithStdout(context.Background(), &stdout)
			ctx = internal.WithStderr(ctx, new(bytes.Buffer))

			err = ExecRunner{}.Run(ctx, tc.Command)

			after, getwdErr := os.Getwd()
			require.NoError(t, getwdErr)
			require.Equal(t, cwd, after)

			if len(tc.Error) == 0 {
				require.NoError(t, err)
				require.Equal(t, tc.Stdout, stdout.String())
				return
			}

			var cmdErr *CommandError
			require.True(t, errors.As(err, &cmdErr))
			require.Equal(t, tc.ExitCode, cmdErr.ExitCode)
			require.Equal(t, tc.Command.String(), cmdErr.Command.String())
			for _, fragment := range tc.Error {
				require.True(t, strings.Contains(err.Error(), fragment), "%q does not contain %q", err.Error(), fragment)
			}
		})
	}
}
