package main

import (
	"fmt"
	"strings"

	toxid "github.com/go-i2p/go-toxid"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <address> [<address>...]",
		Short: "Check the shape and checksum of addresses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, arg := range args {
				verdict := validationVerdict(strings.TrimSpace(arg))
				if verdict != "valid" {
					failed++
				}
				fmt.Fprintf(out, "%s\t%s\n", verdict, arg)
			}

			if failed > 0 {
				return oops.
					Code("VALIDATION_FAILED").
					In("toxid").
					With("failed", failed).
					With("total", len(args)).
					Errorf("%d of %d addresses failed validation", failed, len(args))
			}
			return nil
		},
	}
}

// validationVerdict separates malformed text from a checksum mismatch.
func validationVerdict(s string) string {
	a, err := toxid.Parse(s)
	switch {
	case err != nil:
		return "malformed"
	case !a.IsValid():
		return "bad-checksum"
	default:
		return "valid"
	}
}
