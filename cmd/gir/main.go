package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/wippyai/gir"
	"github.com/wippyai/gir/analysis"
	"github.com/wippyai/gir/codegen"
	"github.com/wippyai/gir/config"
	girerrors "github.com/wippyai/gir/errors"
	"github.com/wippyai/gir/library"
	"github.com/wippyai/gir/parser"
)

func main() {
	var (
		configFile  = flag.String("c", config.DefaultFileName, "Config file path")
		girsDir     = flag.String("d", "", "Directory for girs (overrides options.girs_dir)")
		targetPath  = flag.String("o", "", "Target path (overrides options.target_path)")
		show        = flag.Bool("show", false, "Print the loaded library summary and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: gir [-c Gir.toml] [-d girs] [-o target] [library]")
		fmt.Fprintln(os.Stderr, "       gir -show [library]")
		fmt.Fprintln(os.Stderr, "       gir -i [library]  (interactive mode)")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck
	library.SetLogger(logger.Named("library"))
	parser.SetLogger(logger.Named("parser"))
	analysis.SetLogger(logger.Named("analysis"))
	codegen.SetLogger(logger.Named("codegen"))

	cfg, err := config.Load(*configFile, config.Overrides{
		GirsDir:    *girsDir,
		Library:    flag.Arg(0),
		TargetPath: *targetPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *show {
		lib, err := gir.LoadLibrary(cfg)
		if err != nil {
			exitWith(err)
		}
		printSummary(os.Stdout, analysis.NewEnv(lib, cfg))
		return
	}

	g, err := gir.New(cfg)
	if err != nil {
		exitWith(err)
	}

	if *interactive {
		if err := runInteractive(g.Env(), g.Result()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	written, err := g.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res := g.Result()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(renderReport(res, written))
		return
	}
	for _, s := range res.Skipped {
		fmt.Printf("Skipping %s, %s\n", s.Name, s.Reason)
	}
	for _, path := range written {
		fmt.Printf("Generated %s\n", path)
	}
}

// exitWith reports a load failure; unresolved types are listed one per line.
func exitWith(err error) {
	var unresolved *girerrors.UnresolvedError
	if errors.As(err, &unresolved) {
		for _, name := range unresolved.Names() {
			fmt.Fprintf(os.Stderr, "Type %q not resolved\n", name)
		}
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}
