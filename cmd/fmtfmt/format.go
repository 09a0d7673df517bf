package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/log"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	dot "github.com/loomfmt/core/examples/dotfmt"
	jsonfmt "github.com/loomfmt/core/examples/jsonfmt"
	"github.com/loomfmt/core/intern"
	"github.com/loomfmt/core/printer"
)

func runFormat(cmd *cobra.Command, args []string) error {
	indentStyle, err := parseIndent(indent)
	if err != nil {
		return err
	}

	var src []byte
	if len(args) == 0 {
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	opts := printer.Options{PrintWidth: printWidth, Indent: indentStyle}
	if verbose {
		opts.Debugf = log.Debugf
	}

	var text string
	switch lang {
	case "dot":
		text, err = formatDOT(string(src), opts)
	case "json":
		text, err = formatJSON(string(src), opts)
	default:
		return fmt.Errorf("unknown --lang %q, want \"dot\" or \"json\"", lang)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

func parseIndent(s string) (printer.IndentStyle, error) {
	if s == "tab" || s == "" {
		return printer.Tab(), nil
	}
	n, ok := strings.CutPrefix(s, "space:")
	if !ok {
		return printer.IndentStyle{}, fmt.Errorf(`invalid --indent %q, want "tab" or "space:N"`, s)
	}
	width, err := strconv.Atoi(n)
	if err != nil {
		return printer.IndentStyle{}, fmt.Errorf("invalid --indent %q: %w", s, err)
	}
	return printer.Spaces(width), nil
}

func formatDOT(src string, opts printer.Options) (string, error) {
	p, err := dot.NewParser(strings.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("dot: %w", err)
	}
	tree, err := p.Parse()
	if err != nil {
		return "", fmt.Errorf("dot: %w", err)
	}
	if errs := p.Errors(); len(errs) > 0 {
		var b strings.Builder
		fmt.Fprintln(&b, "dot: parse errors:")
		for _, e := range errs {
			fmt.Fprintf(&b, "  %v\n", e)
		}
		return "", fmt.Errorf("%s", b.String())
	}

	in := intern.New()
	doc := dot.ToFormatIR(in, tree)
	return printer.Format(doc, opts).Text, nil
}

// formatJSON applies every --set path=value pair (sjson's own path syntax, same as its upstream
// CLI tool) before parsing, so edits operate on trusted CLI arguments rather than on paths derived
// from untrusted document keys.
func formatJSON(src string, opts printer.Options) (string, error) {
	for _, kv := range sets {
		path, value, ok := strings.Cut(kv, "=")
		if !ok {
			return "", fmt.Errorf("invalid --set %q, want path=value", kv)
		}
		edited, err := sjson.Set(src, path, value)
		if err != nil {
			return "", fmt.Errorf("json: --set %q: %w", kv, err)
		}
		src = edited
	}

	in := intern.New()
	doc, err := jsonfmt.ToFormatIR(in, src)
	if err != nil {
		return "", fmt.Errorf("json: %w", err)
	}
	return printer.Format(doc, opts).Text, nil
}
