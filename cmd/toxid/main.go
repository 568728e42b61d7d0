// Command toxid works with Tox peer addresses from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/go-i2p/logger"
	"github.com/spf13/cobra"
)

var log = logger.GetGoI2PLogger()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Debug("command failed")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. A fresh tree per call keeps flag
// state out of package variables.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "toxid",
		Short: "Inspect and validate Tox addresses",
		Long: `toxid works with Tox peer addresses in both layouts:

  classical     76 hex chars: public key, nospam, checksum
  post-quantum  92 hex chars: public key, ML-KEM commitment, nospam, checksum

Examples:
  toxid inspect <address>
  toxid validate <address> [<address>...]
  toxid scan chat.log
  toxid generate --public-key <64 hex chars> --commitment <16 hex chars>`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newInspectCmd(),
		newValidateCmd(),
		newScanCmd(),
		newGenerateCmd(),
	)
	return root
}
