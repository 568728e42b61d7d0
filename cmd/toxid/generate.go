package main

import (
	"fmt"

	toxid "github.com/go-i2p/go-toxid"
	"github.com/go-i2p/go-toxid/toxpk"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	publicKey  string
	nospam     string
	commitment string
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Assemble an address from its parts",
		Long: `Assembles an address from a public key and computes its checksum.
A random nospam is drawn when --nospam is omitted. Passing --commitment
produces a post-quantum address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := assemble(flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.publicKey, "public-key", "", "public key as 64 hex characters")
	cmd.Flags().StringVar(&flags.nospam, "nospam", "", "nospam as 8 hex characters (random if empty)")
	cmd.Flags().StringVar(&flags.commitment, "commitment", "", "ML-KEM commitment as 16 hex characters")
	_ = cmd.MarkFlagRequired("public-key")

	return cmd
}

func assemble(flags generateFlags) (toxid.Address, error) {
	pk, err := toxpk.FromHex(flags.publicKey)
	if err != nil {
		return toxid.Address{}, err
	}

	var nospam toxid.NoSpam
	if flags.nospam == "" {
		nospam, err = toxid.GenerateNoSpam()
	} else {
		nospam, err = toxid.ParseNoSpam(flags.nospam)
	}
	if err != nil {
		return toxid.Address{}, err
	}

	if flags.commitment == "" {
		return toxid.New(pk, nospam), nil
	}

	commitment, err := toxid.ParseMLKEMCommitment(flags.commitment)
	if err != nil {
		return toxid.Address{}, err
	}
	return toxid.NewPQ(pk, commitment, nospam), nil
}
