package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shapestone/shape-serve/pkg/http"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report whether a raw HTTP request would be accepted",
	Long: `Read a raw HTTP request from file (or stdin) and report whether the server
would decode it. Invalid requests print the decode error and exit non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

// errCheckFailed is returned after the failure has already been printed.
var errCheckFailed = errors.New("request rejected")

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	out := cmd.OutOrStdout()
	if err := http.ValidateReader(in); err != nil {
		color.New(color.FgRed, color.Bold).Fprint(out, "INVALID")
		fmt.Fprintf(out, " %v\n", err)
		return errCheckFailed
	}
	color.New(color.FgGreen, color.Bold).Fprint(out, "OK")
	fmt.Fprintln(out)
	return nil
}
