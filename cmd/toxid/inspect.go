package main

import (
	"fmt"
	"io"
	"strings"

	toxid "github.com/go-i2p/go-toxid"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <address>",
		Short: "Show the fields of an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := toxid.Parse(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			printAddress(cmd.OutOrStdout(), a)
			return nil
		},
	}
}

func printAddress(w io.Writer, a toxid.Address) {
	fmt.Fprintf(w, "address:    %s\n", a)
	fmt.Fprintf(w, "variant:    %s\n", a.Variant())
	fmt.Fprintf(w, "valid:      %t\n", a.IsValid())
	fmt.Fprintf(w, "public key: %s\n", a.PublicKey())

	if c, ok := a.MLKEMCommitment(); ok {
		fmt.Fprintf(w, "commitment: %s\n", c)
	}

	fmt.Fprintf(w, "nospam:     %s\n", a.NoSpamHex())

	if sum, ok := a.ChecksumBytes(); ok {
		fmt.Fprintf(w, "checksum:   %X\n", sum[:])
	}
}
