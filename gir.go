package gir

import (
	"path/filepath"

	"github.com/wippyai/gir/analysis"
	"github.com/wippyai/gir/codegen"
	"github.com/wippyai/gir/config"
	"github.com/wippyai/gir/errors"
	"github.com/wippyai/gir/library"
	"github.com/wippyai/gir/parser"
)

// Generator is a loaded and analyzed generation run
type Generator struct {
	env    *analysis.Env
	result *analysis.Result
}

// New loads the configured library with its includes, checks that every
// referenced type is declared and analyzes the configured objects.
// An incomplete library fails with *errors.UnresolvedError.
func New(cfg *config.Config) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidInput(errors.PhaseConfig, "no configuration")
	}
	lib, err := LoadLibrary(cfg)
	if err != nil {
		return nil, err
	}
	env := analysis.NewEnv(lib, cfg)
	return &Generator{
		env:    env,
		result: analysis.Run(env),
	}, nil
}

// LoadLibrary reads cfg's introspection file and its includes into a fresh
// library and checks it is complete.
func LoadLibrary(cfg *config.Config) (*library.Library, error) {
	lib := library.New()
	if err := parser.Load(lib, ResolvePath(cfg.Dir, cfg.GirsDir), cfg.GirFileName()); err != nil {
		return nil, err
	}
	if err := lib.CheckResolved(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Env returns the analysis environment
func (g *Generator) Env() *analysis.Env {
	return g.env
}

// Result returns the analysis result
func (g *Generator) Result() *analysis.Result {
	return g.result
}

// Generate writes the bindings under the configured target path and returns
// the written files.
func (g *Generator) Generate() ([]string, error) {
	cfg := g.env.Config
	return codegen.Generate(g.env, g.result, ResolvePath(cfg.Dir, cfg.TargetPath))
}

// ResolvePath makes a relative path relative to dir, usually the directory of
// the configuration file.
func ResolvePath(dir, path string) string {
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}
