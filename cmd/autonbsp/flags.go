package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/jan-herman/autonbsp"
	"github.com/jan-herman/autonbsp/internal/hints"
)

// ErrUnknownFeature reports a --disable name that matches no pass.
var ErrUnknownFeature = errors.New("unknown feature name")

// cliFlags holds all command-line flags.
type cliFlags struct {
	lang      string
	rules     string
	marker    string
	debug     bool
	disable   string
	nfc       bool
	markdown  bool
	write     bool
	output    string
	workers   int
	verbose   bool
	version   bool
	languages bool
}

// parseFlags parses command-line flags and returns positional args.
// args is the full argument vector including the program name.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("autonbsp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &cliFlags{}

	fs.StringVarP(&f.lang, "lang", "l", "", "language code (default: $AUTONBSP_LANG or OS locale)")
	fs.StringVar(&f.rules, "rules", "", "extra rules YAML, a name or a path")
	fs.StringVar(&f.marker, "marker", "", "replacement marker (default \"&nbsp;\")")
	fs.BoolVar(&f.debug, "debug", false, "highlight replacements with a visible marker")
	fs.StringVar(&f.disable, "disable", "", "comma-separated passes to skip: "+strings.Join(featureNames(), ", "))
	fs.BoolVar(&f.nfc, "nfc", false, "normalize input to Unicode NFC before matching")
	fs.BoolVarP(&f.markdown, "markdown", "m", false, "render input as Markdown to HTML before processing")
	fs.BoolVarP(&f.write, "write", "w", false, "rewrite files in place instead of printing")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVar(&f.workers, "workers", 0, "parallel workers for file processing (0 = auto)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print processing details to stderr")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
	fs.BoolVar(&f.languages, "languages", false, "list languages with built-in rules and exit")

	fs.Usage = func() { printUsage(stderr) }

	rest := args
	if len(rest) > 0 {
		rest = rest[1:]
	}
	if err := fs.Parse(rest); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// featureNames lists the pass names accepted by --disable, in pipeline order.
func featureNames() []string {
	return []string{
		"prepositions",
		"articles",
		"abbreviations",
		"titles",
		"months",
		"after-numbers",
		"between-numbers",
		"units",
	}
}

// parseFeatures applies a comma-separated disable list to the default
// feature set. Names are case-insensitive; underscores work as hyphens.
func parseFeatures(disable string) (autonbsp.Features, error) {
	f := autonbsp.AllFeatures()
	if disable == "" {
		return f, nil
	}

	for _, name := range strings.Split(disable, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		name = strings.ReplaceAll(name, "_", "-")
		switch name {
		case "":
			continue
		case "prepositions":
			f.Prepositions = false
		case "articles":
			f.Articles = false
		case "abbreviations":
			f.Abbreviations = false
		case "titles":
			f.Titles = false
		case "months":
			f.Months = false
		case "after-numbers":
			f.AfterNumbers = false
		case "between-numbers":
			f.BetweenNumbers = false
		case "units":
			f.Units = false
		default:
			return f, fmt.Errorf("%w: %q%s", ErrUnknownFeature, name, hints.ForDisableNames(featureNames()))
		}
	}

	return f, nil
}
