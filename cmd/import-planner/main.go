// Package main provides the CLI entrypoint for import-planner.
//
// import-planner resolves how a project archive would be opened:
//   - Reads the installed presets from a YAML catalog
//   - Reads project info from a YAML manifest standing in for the archive
//   - Applies the configured load behavior from a TOML settings file
//   - Answers the interactive step from a YAML answers file
//
// The resulting load type and pending import settings are printed as YAML.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"import-planner/internal/logging"
	"import-planner/internal/pending"
	"import-planner/internal/plan"
	"import-planner/internal/preset"
	"import-planner/internal/project"
	"import-planner/internal/settings"
)

func main() {
	catalogPath := flag.String("catalog", "catalog.yaml", "preset catalog YAML")
	settingsPath := flag.String("settings", "import-planner.toml", "settings TOML file")
	answersPath := flag.String("answers", "", "answers YAML for the interactive step (empty accepts defaults)")
	mode := flag.String("mode", "", "override load behavior: load_geometry, always_ask, load_all")
	flag.Parse()

	_ = godotenv.Load()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: import-planner [flags] <project manifest>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	log := logging.New(logging.ConfigFromEnv(), os.Stderr)

	opts := options{
		Project:  flag.Arg(0),
		Catalog:  *catalogPath,
		Settings: *settingsPath,
		Answers:  *answersPath,
		Mode:     *mode,
	}

	if err := run(opts, os.Stdout, log); err != nil {
		log.Error("import planning failed", "error", err)
		os.Exit(1)
	}
}

// options are the resolved command-line inputs.
type options struct {
	Project  string
	Catalog  string
	Settings string
	Answers  string
	// Mode overrides the configured behavior when set.
	Mode string
}

func run(opts options, out io.Writer, log *logging.Logger) error {
	catalog, err := preset.LoadCatalogFile(opts.Catalog)
	if err != nil {
		return err
	}

	store, err := settings.OpenFileStore(opts.Settings)
	if err != nil {
		return err
	}

	chooser, err := loadChooser(opts.Answers)
	if err != nil {
		return err
	}

	channel := pending.NewChannel[plan.ImportSettings]()

	resolver, err := plan.NewResolver(plan.Dependencies{
		Parser: project.ManifestParser{OnError: func(path string, err error) {
			log.Warn("failed to read project manifest", "path", path, "error", err)
		}},
		Catalog: catalog,
		Store:   store,
		Chooser: chooser,
		Pending: channel,
		Reporter: newReporter(log),
		Logger: log,
	}, plan.DefaultConfig())
	if err != nil {
		return err
	}

	var override *settings.BehaviorMode
	if opts.Mode != "" {
		m := settings.ParseBehaviorMode(opts.Mode)
		override = &m
	}

	loadType := resolver.Resolve(opts.Project, override)

	return printResult(out, loadType, channel)
}
