package main

import (
	"fmt"
	"io"
	"os"

	toxid "github.com/go-i2p/go-toxid"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

type scanFlags struct {
	classicalOnly    bool
	pqOnly           bool
	allowBadChecksum bool
	max              int
}

func newScanCmd() *cobra.Command {
	var flags scanFlags

	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Extract addresses from free text",
		Long:  "Reads the file, or standard input when no file is given, and prints every address found, one per line.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			config := toxid.NewScanConfig().
				WithClassical(!flags.pqOnly).
				WithPostQuantum(!flags.classicalOnly).
				WithRequireChecksum(!flags.allowBadChecksum).
				WithMaxResults(flags.max)

			found, err := toxid.FindAll(text, config)
			if err != nil {
				return err
			}

			for _, a := range found {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a.Variant(), a)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.classicalOnly, "classical-only", false, "only report classical addresses")
	cmd.Flags().BoolVar(&flags.pqOnly, "pq-only", false, "only report post-quantum addresses")
	cmd.Flags().BoolVar(&flags.allowBadChecksum, "allow-bad-checksum", false, "report well-shaped addresses whose checksum fails")
	cmd.Flags().IntVar(&flags.max, "max", 0, "stop after this many addresses (0 = no limit)")
	cmd.MarkFlagsMutuallyExclusive("classical-only", "pq-only")

	return cmd
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", oops.
				Code("READ_FAILED").
				In("toxid").
				Wrapf(err, "failed to read standard input")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", oops.
			Code("READ_FAILED").
			In("toxid").
			With("path", args[0]).
			Wrapf(err, "failed to read input file")
	}
	return string(data), nil
}
