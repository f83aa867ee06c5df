package main

import (
	"github.com/spf13/cobra"

	"github.com/mathworld/ansible-regedit/pkg/regedit"
)

var (
	updKey        string
	updVal        string
	updNewHKey    string
	updNewKey     string
	updNewVal     string
	updIgnoreCase bool
	updOpts       runOptions
)

func init() {
	cmd := newUpdCmd()
	cmd.Flags().StringVar(&updKey, "key", "", "Entry name to operate on ('@' for the default value)")
	cmd.Flags().StringVar(&updVal, "val", "", "Only update when the stored value matches (safe update)")
	cmd.Flags().StringVar(&updNewHKey, "new-hkey", "", "Rename the section to this path")
	cmd.Flags().StringVar(&updNewKey, "new-key", "", "Rename the entry to this name")
	cmd.Flags().StringVar(&updNewVal, "new-val", "", "Set the entry to this value literal (creates it if absent)")
	cmd.Flags().BoolVar(&updIgnoreCase, "ignore-case", false, "Case-fold paths, names and values when matching")
	addFileFlags(cmd, &updOpts)
	rootCmd.AddCommand(cmd)
}

func newUpdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upd <file> <hkey>",
		Short: "Rename a section or entry, or update a value",
		Long: `The upd command combines up to three sub-operations, applied in order
against the same section: rename the section (--new-hkey), rename an entry
(--key with --new-key), and update an entry value (--key with --new-val).

A value update without --val creates the entry when absent (upsert). With
--val it only applies when the stored value matches the expectation; a
mismatch leaves the file untouched and reports ok/changed=false.

Example:
  regctl upd MSIReg.reg "HKEY_LOCAL_MACHINE\SOFTWARE\Vendor" --new-hkey "HKEY_LOCAL_MACHINE\SOFTWARE\NewVendor"
  regctl upd MSIReg.reg "HKEY_LOCAL_MACHINE\SOFTWARE\Vendor" --key Version --new-val '"2.0"'
  regctl upd MSIReg.reg "HKEY_LOCAL_MACHINE\SOFTWARE\Vendor" --key Version --val '"1.0"' --new-val '"2.0"'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := regedit.Request{
				Verb:       regedit.VerbUpd,
				HKey:       args[1],
				Key:        optArg(cmd, "key", updKey),
				Val:        optArg(cmd, "val", updVal),
				NewHKey:    optArg(cmd, "new-hkey", updNewHKey),
				NewKey:     optArg(cmd, "new-key", updNewKey),
				NewVal:     optArg(cmd, "new-val", updNewVal),
				IgnoreCase: updIgnoreCase,
			}
			return runOp(args[0], req, updOpts)
		},
	}
	return cmd
}
