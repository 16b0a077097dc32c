package wasmbuild

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"time"

	"github.com/sanctify/wasmbuild/internal"
	"github.com/sanctify/wasmbuild/internal/text"
)

const StageRecordFile = "wasmbuild-stage.yaml"

// StageRecord remembers the configure command last applied to a build directory.
type StageRecord struct {
	Command      []string  `yaml:"command"`
	ConfiguredAt time.Time `yaml:"configuredAt"`
}

func LoadStageRecord(dir string) (*StageRecord, error) {
	var record StageRecord
	if err := internal.ReadYAML(filepath.Join(dir, StageRecordFile), &record); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func SaveStageRecord(dir string, record StageRecord) error {
	return internal.WriteYAML(filepath.Join(dir, StageRecordFile), record)
}

// reportConfigureChange prints a diff when command differs from the one recorded in its
// directory. An unreadable record is only worth a debug line: the configure step runs
// regardless.
func reportConfigureChange(ctx context.Context, command Command) {
	previous, err := LoadStageRecord(command.Dir)
	if err != nil {
		internal.Debug(ctx).Printf("ignoring stage record in %s: %v\n", command.Dir, err)
		return
	}

	current := append([]string{command.Name}, command.Args...)
	if previous == nil || slices.Equal(previous.Command, current) {
		return
	}

	var (
		before = text.File{Name: "previous configure", Lines: previous.Command}
		after  = text.File{Name: "current configure", Lines: current}
		diff   string
	)
	if internal.Color(ctx) {
		diff = text.DiffColorized(before, after, 2)
	} else {
		diff = text.Diff(before, after, 2)
	}

	internal.Progress(ctx, fmt.Sprintf("configure arguments changed since %s:", previous.ConfiguredAt.Format(time.RFC3339)))
	fmt.Fprint(internal.Stdout(ctx), diff)
}
