package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: autonbsp [flags] [file|directory ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Insert non-breaking spaces where typography calls for them.")
	fmt.Fprintln(w, "Reads stdin when no files are given and writes the result to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Language and rules:")
	fmt.Fprintln(w, "  -l, --lang <code>      Language code (default: $AUTONBSP_LANG or OS locale)")
	fmt.Fprintln(w, "      --rules <name>     Extra rules YAML, a name or a path")
	fmt.Fprintln(w, "      --disable <list>   Passes to skip: prepositions, articles,")
	fmt.Fprintln(w, "                         abbreviations, titles, months, after-numbers,")
	fmt.Fprintln(w, "                         between-numbers, units")
	fmt.Fprintln(w, "      --languages        List languages with built-in rules and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replacement:")
	fmt.Fprintln(w, "      --marker <s>       Replacement marker (default \"&nbsp;\")")
	fmt.Fprintln(w, "      --debug            Highlight replacements with a visible marker")
	fmt.Fprintln(w, "      --nfc              Normalize input to Unicode NFC before matching")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -m, --markdown         Render input as Markdown to HTML first")
	fmt.Fprintln(w, "  -w, --write            Rewrite files in place instead of printing")
	fmt.Fprintln(w, "  -o, --output <path>    Output file, or directory for multiple inputs")
	fmt.Fprintln(w, "      --workers <n>      Parallel workers for file processing (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -v, --verbose          Print processing details to stderr")
	fmt.Fprintln(w, "      --version          Show version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment: AUTONBSP_LANG, AUTONBSP_MARKER, AUTONBSP_RULES, AUTONBSP_WORKERS")
}
