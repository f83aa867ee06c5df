package main

import (
	"github.com/spf13/cobra"

	"github.com/mathworld/ansible-regedit/pkg/regedit"
)

var (
	addKey  string
	addVal  string
	addOpts runOptions
)

func init() {
	cmd := newAddCmd()
	cmd.Flags().StringVar(&addKey, "key", "", "Entry name to add ('@' for the default value)")
	cmd.Flags().StringVar(&addVal, "val", "", "Value literal for the new entry")
	addFileFlags(cmd, &addOpts)
	rootCmd.AddCommand(cmd)
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <file> <hkey>",
		Short: "Add a section or entry",
		Long: `The add command creates a section, and optionally an entry under it.
Matching is always case-sensitive and nothing existing is ever overwritten:
an entry that already exists is left alone even when its value differs
(use upd to overwrite).

Example:
  regctl add MSIReg.reg "HKEY_LOCAL_MACHINE\SOFTWARE\Vendor\New"
  regctl add MSIReg.reg "HKEY_LOCAL_MACHINE\SOFTWARE\Vendor" --key Clustered --val dword:00000001`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := regedit.Request{
				Verb: regedit.VerbAdd,
				HKey: args[1],
				Key:  optArg(cmd, "key", addKey),
				Val:  optArg(cmd, "val", addVal),
			}
			return runOp(args[0], req, addOpts)
		},
	}
	return cmd
}
