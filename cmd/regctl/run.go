package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mathworld/ansible-regedit/internal/regtext"
	"github.com/mathworld/ansible-regedit/internal/textdiff"
	"github.com/mathworld/ansible-regedit/pkg/regedit"
)

// runOptions carries the file-handling flags shared by all verbs.
type runOptions struct {
	outFile  string
	encoding string
	dryRun   bool
	showDiff bool
}

// optArg converts a flag into an optional request argument, absent unless
// the flag was given on the command line. An empty string passed explicitly
// is still a set argument.
func optArg(cmd *cobra.Command, name string, value string) regedit.Arg {
	if cmd.Flags().Changed(name) {
		return regedit.String(value)
	}
	return regedit.Arg{}
}

// runOp reads the registry file, applies one request and, for a mutation
// that changed the text, writes the result back in the input's encoding.
func runOp(file string, req regedit.Request, opts runOptions) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read registry file: %w", err)
	}
	codec, err := regtext.DetectCodec(data, opts.encoding)
	if err != nil {
		return err
	}
	text, err := codec.Decode(data)
	if err != nil {
		return err
	}
	printVerbose("Read %s (%d bytes, %s)\n", file, len(data), codec.Encoding)

	res, err := regedit.Apply(text, req)
	if err != nil {
		if res.Failed && jsonOut {
			_ = printJSON(res)
		}
		return err
	}

	if opts.showDiff && res.Changed {
		printInfo("%s", textdiff.Format(text, res.Text))
	}

	if res.Changed && !opts.dryRun {
		out := opts.outFile
		if out == "" {
			out = file
		}
		encoded, err := codec.Encode(res.Text)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, encoded, 0o644); err != nil {
			return fmt.Errorf("failed to write registry file: %w", err)
		}
		printVerbose("Wrote %s (%d bytes)\n", out, len(encoded))
	}

	return printResult(res)
}

// printResult renders the engine outcome. Semantic non-matches exit with
// status 0 so repeated automation runs do not fail.
func printResult(res regedit.Result) error {
	if jsonOut {
		return printJSON(res)
	}
	if res.Value != "" {
		printInfo("%s\n", res.Value)
	}
	printInfo("%s (msgcode=%s, changed=%t)\n", res.Message, res.Msgcode, res.Changed)
	return nil
}

// addFileFlags registers the shared file-handling flags on a mutating verb.
func addFileFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().StringVar(&opts.outFile, "out", "", "Write the result to this file instead of the input")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "Input encoding (UTF-8, UTF-16LE, Windows-1252); detected from BOM by default")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Evaluate without writing the output file")
	cmd.Flags().BoolVar(&opts.showDiff, "diff", false, "Show a line diff of the change")
}
