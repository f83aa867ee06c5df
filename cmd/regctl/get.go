package main

import (
	"github.com/spf13/cobra"

	"github.com/mathworld/ansible-regedit/pkg/regedit"
)

var (
	getIgnoreCase bool
	getOpts       runOptions
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getIgnoreCase, "ignore-case", false, "Case-fold paths and names when matching")
	cmd.Flags().StringVar(&getOpts.encoding, "encoding", "", "Input encoding (UTF-8, UTF-16LE, Windows-1252); detected from BOM by default")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <hkey> <key>",
		Short: "Print the stored value literal of an entry",
		Long: `The get command resolves a section and entry and prints the value
literal exactly as stored, quotes and type prefixes included.

Example:
  regctl get MSIReg.reg "HKEY_LOCAL_MACHINE\SOFTWARE\Vendor" Version
  regctl get MSIReg.reg "HKEY_LOCAL_MACHINE\SOFTWARE\Vendor" "@"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := regedit.Request{
				Verb:       regedit.VerbGet,
				HKey:       args[1],
				Key:        regedit.String(args[2]),
				IgnoreCase: getIgnoreCase,
			}
			return runOp(args[0], req, getOpts)
		},
	}
	return cmd
}
