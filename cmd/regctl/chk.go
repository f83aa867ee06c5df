package main

import (
	"github.com/spf13/cobra"

	"github.com/mathworld/ansible-regedit/pkg/regedit"
)

var (
	chkKey        string
	chkVal        string
	chkIgnoreCase bool
	chkOpts       runOptions
)

func init() {
	cmd := newChkCmd()
	cmd.Flags().StringVar(&chkKey, "key", "", "Entry name to check ('@' for the default value)")
	cmd.Flags().StringVar(&chkVal, "val", "", "Expected value literal")
	cmd.Flags().BoolVar(&chkIgnoreCase, "ignore-case", false, "Case-fold paths, names and values when matching")
	cmd.Flags().StringVar(&chkOpts.encoding, "encoding", "", "Input encoding (UTF-8, UTF-16LE, Windows-1252); detected from BOM by default")
	rootCmd.AddCommand(cmd)
}

func newChkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chk <file> <hkey>",
		Short: "Check that a section, key or value exists",
		Long: `The chk command verifies existence at section, key or key-value
granularity. It never modifies the file; absence is reported through the
msgcode, not as an error.

Example:
  regctl chk MSIReg.reg "HKEY_LOCAL_MACHINE\SOFTWARE\Vendor"
  regctl chk MSIReg.reg "HKEY_LOCAL_MACHINE\SOFTWARE\Vendor" --key Version
  regctl chk MSIReg.reg "HKEY_LOCAL_MACHINE\SOFTWARE\Vendor" --key Version --val '"1.0"' --ignore-case`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := regedit.Request{
				Verb:       regedit.VerbChk,
				HKey:       args[1],
				Key:        optArg(cmd, "key", chkKey),
				Val:        optArg(cmd, "val", chkVal),
				IgnoreCase: chkIgnoreCase,
			}
			return runOp(args[0], req, chkOpts)
		},
	}
	return cmd
}
