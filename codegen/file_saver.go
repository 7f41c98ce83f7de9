package codegen

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wippyai/gir/errors"
)

// BackupExt is appended to the previous version of a regenerated file
const BackupExt = ".bak"

// SaveToFile writes data to path, creating parent directories. With
// makeBackup set an existing file is first renamed to path+".bak".
func SaveToFile(path string, makeBackup bool, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.PhaseEmit, errors.KindInvalidInput, err, "create directory for "+path)
	}

	if makeBackup {
		if _, err := os.Stat(path); err == nil {
			if err := os.Rename(path, path+BackupExt); err != nil {
				return errors.Wrap(errors.PhaseEmit, errors.KindInvalidInput, err, "back up "+path)
			}
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.PhaseEmit, errors.KindInvalidInput, err, "write "+path)
	}
	Logger().Debug("file saved", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}
