package codegen

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wippyai/gir/analysis"
	"github.com/wippyai/gir/internal/nameutil"
)

// AutoDir is the directory, relative to the target path, holding generated modules
const AutoDir = "src/auto"

// Generate writes one module per emitted class, an enums module, and a
// mod.rs re-exporting them under targetPath. It returns the written paths.
func Generate(env *analysis.Env, res *analysis.Result, targetPath string) ([]string, error) {
	root := filepath.Join(targetPath, AutoDir)
	makeBackup := env.Config.MakeBackup
	var written []string

	mod := NewWriter()
	StartComments(mod, env.Config)

	for _, info := range res.Classes {
		file := nameutil.FileName(info.Name)
		path := filepath.Join(root, file)
		Logger().Info("generating file", zap.String("class", info.FullName), zap.String("path", path))

		w := NewWriter()
		Class(w, env.Config, info)
		if err := SaveToFile(path, makeBackup, w.Bytes()); err != nil {
			return written, err
		}
		written = append(written, path)

		module := nameutil.ToSnake(info.Name)
		VersionCondition(mod, env.Config, info.Version, false, 0)
		mod.Line(0, "mod %s;", module)
		VersionCondition(mod, env.Config, info.Version, false, 0)
		mod.Line(0, "pub use self::%s::%s;", module, info.Name)
		if info.HasChildren {
			VersionCondition(mod, env.Config, info.Version, false, 0)
			mod.Line(0, "pub use self::%s::%sExt;", module, info.Name)
		}
		mod.Blank()
	}

	if len(res.Enums) > 0 {
		path := filepath.Join(root, "enums.rs")
		Logger().Info("generating file", zap.String("path", path), zap.Int("enums", len(res.Enums)))

		w := NewWriter()
		exports := Enums(w, env, res.Enums)
		if err := SaveToFile(path, makeBackup, w.Bytes()); err != nil {
			return written, err
		}
		written = append(written, path)

		mod.Line(0, "mod enums;")
		for _, line := range exports {
			mod.Line(0, "%s", line)
		}
		mod.Blank()
	}

	path := filepath.Join(root, "mod.rs")
	if err := SaveToFile(path, makeBackup, mod.Bytes()); err != nil {
		return written, err
	}
	written = append(written, path)

	Logger().Info("generation finished", zap.Int("files", len(written)))
	return written, nil
}
