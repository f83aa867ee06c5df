package main

import (
	"github.com/spf13/cobra"

	"github.com/mathworld/ansible-regedit/pkg/regedit"
)

var (
	delKey        string
	delVal        string
	delIgnoreCase bool
	delOpts       runOptions
)

func init() {
	cmd := newDelCmd()
	cmd.Flags().StringVar(&delKey, "key", "", "Entry name to delete ('@' for the default value)")
	cmd.Flags().StringVar(&delVal, "val", "", "Only delete when the stored value matches ('*' matches any)")
	cmd.Flags().BoolVar(&delIgnoreCase, "ignore-case", false, "Case-fold paths, names and values when matching")
	addFileFlags(cmd, &delOpts)
	rootCmd.AddCommand(cmd)
}

func newDelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "del <file> <hkey>",
		Short: "Delete a section or entry",
		Long: `The del command removes a whole section, an entry, or - when --val is
given - an entry only if its stored value matches the expectation (safe
delete). Deleting something absent reports ok/changed=false.

Example:
  regctl del MSIReg.reg "HKEY_LOCAL_MACHINE\SOFTWARE\Vendor\Old"
  regctl del MSIReg.reg "HKEY_LOCAL_MACHINE\SOFTWARE\Vendor" --key Clustered
  regctl del MSIReg.reg "HKEY_LOCAL_MACHINE\SOFTWARE\Vendor" --key Clustered --val dword:00000001`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := regedit.Request{
				Verb:       regedit.VerbDel,
				HKey:       args[1],
				Key:        optArg(cmd, "key", delKey),
				Val:        optArg(cmd, "val", delVal),
				IgnoreCase: delIgnoreCase,
			}
			return runOp(args[0], req, delOpts)
		},
	}
	return cmd
}
