package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/jan-herman/autonbsp"
	"github.com/jan-herman/autonbsp/internal/fileutil"
	"github.com/jan-herman/autonbsp/internal/hints"
	"github.com/jan-herman/autonbsp/internal/markdown"
	"github.com/jan-herman/autonbsp/internal/rulefile"
)

// Sentinel errors for invocation modes that make no sense.
var (
	ErrWriteStdin      = errors.New("--write requires file arguments")
	ErrWriteWithOutput = errors.New("--write and --output are mutually exclusive")
	ErrWriteMarkdown   = errors.New("--write cannot rewrite markdown sources")
)

// runMain is the testable entry point: parses flags, dispatches, and
// maps errors to exit codes.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, inputs, err := parseFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	configureMaxProcs(flags.verbose, env.Stderr)

	if flags.version {
		fmt.Fprintf(env.Stdout, "autonbsp %s\n", Version)
		return ExitSuccess
	}
	if flags.languages {
		if err := printLanguages(env.Stdout); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	}

	if err := run(ctx, flags, inputs, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run executes one invocation: build the engine, then process stdin or
// the named files.
func run(ctx context.Context, flags *cliFlags, inputs []string, env *Environment) error {
	warnUnknownEnvVars(env.Stderr)
	envCfg := loadEnvConfig()

	if err := validateMode(flags, inputs); err != nil {
		return err
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	proc, err := buildProcessor(flags, envCfg, env)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		return processStdin(ctx, proc, flags.output, env)
	}

	files, err := discoverFiles(inputs, flags)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files to process in %s", strings.Join(inputs, ", "))
	}

	// Plain stdout mode keeps argument order, so it runs sequentially.
	if !flags.write && flags.output == "" {
		return processToStdout(ctx, proc, files, env)
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	results := processBatch(ctx, proc, files, workers)
	failed := printResults(results, flags.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}

// validateMode rejects flag combinations with no sensible meaning.
func validateMode(flags *cliFlags, inputs []string) error {
	if !flags.write {
		return nil
	}
	if len(inputs) == 0 {
		return ErrWriteStdin
	}
	if flags.output != "" {
		return ErrWriteWithOutput
	}
	if flags.markdown {
		return fmt.Errorf("%w%s", ErrWriteMarkdown, hints.ForInPlaceMarkdown())
	}
	return nil
}

// buildProcessor assembles the engine, and the markdown renderer when
// markdown mode is on, from flags and environment.
func buildProcessor(flags *cliFlags, envCfg *envConfig, env *Environment) (*processor, error) {
	lang := resolveLanguage(flags.lang, envCfg.Lang, env.DetectLocale)

	features, err := parseFeatures(flags.disable)
	if err != nil {
		return nil, err
	}

	opts := []autonbsp.Option{autonbsp.WithFeatures(features)}

	marker := flags.marker
	if marker == "" {
		marker = envCfg.Marker
	}
	if marker != "" {
		opts = append(opts, autonbsp.WithMarker(marker))
	}
	if flags.debug {
		opts = append(opts, autonbsp.WithDebug())
	}
	if flags.nfc {
		opts = append(opts, autonbsp.WithNFC())
	}

	rules := flags.rules
	if rules == "" {
		rules = envCfg.Rules
	}
	var overrides autonbsp.RuleSet
	if rules != "" {
		overrides, err = loadRuleOverrides(rules)
		if err != nil {
			return nil, err
		}
		opts = append(opts, autonbsp.WithRules(overrides))
	}

	engine, err := autonbsp.New(lang, opts...)
	if err != nil {
		return nil, err
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Language: %s\n", engine.Language())
		fmt.Fprintf(env.Stderr, "Marker: %s\n", engine.Marker())
		warnMissingRules(engine, overrides, env.Stderr)
	}

	proc := &processor{engine: engine}
	if flags.markdown {
		proc.renderer = markdown.NewRenderer()
	}
	return proc, nil
}

// loadRuleOverrides reads a rule file and converts it to the library's
// RuleSet shape.
func loadRuleOverrides(nameOrPath string) (autonbsp.RuleSet, error) {
	raw, err := rulefile.Load(nameOrPath)
	if err != nil {
		if errors.Is(err, rulefile.ErrNotFound) && !fileutil.IsFilePath(nameOrPath) {
			return nil, fmt.Errorf("%w%s", err, hints.ForRulesNotFound(rulefile.SearchedPaths(nameOrPath)))
		}
		return nil, err
	}

	rules := make(autonbsp.RuleSet, len(raw))
	for lang, cats := range raw {
		converted := make(map[autonbsp.Category][]string, len(cats))
		for name, tokens := range cats {
			converted[autonbsp.Category(name)] = tokens
		}
		rules[lang] = converted
	}
	return rules, nil
}

// warnMissingRules tells the user when the resolved language carries no
// rules of its own, so only wildcard tokens apply.
func warnMissingRules(engine *autonbsp.Engine, overrides autonbsp.RuleSet, w io.Writer) {
	catalog, err := autonbsp.NewCatalog(overrides)
	if err != nil {
		return
	}
	known := catalog.Languages()
	if slices.Contains(known, engine.Language()) {
		return
	}
	fmt.Fprintf(w, "warning: no rules for language %q, applying wildcard rules only%s\n",
		engine.Language(), hints.ForUnknownLanguage(known))
}

// printLanguages lists the language codes with built-in rules, one per line.
func printLanguages(w io.Writer) error {
	catalog, err := autonbsp.NewCatalog(nil)
	if err != nil {
		return err
	}
	for _, lang := range catalog.Languages() {
		fmt.Fprintln(w, lang)
	}
	return nil
}
