package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pintable",
		Short:        "Inspect the EEPROM programmer pin/route table.",
		Long:         "Print, look up and check how EEPROM address and data lines map onto the two expander ICs.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Configure log level
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	root.AddCommand(newDumpCmd(), newLookupCmd(), newFrameCmd(), newCheckCmd())
	return root
}

// Get an expected flag, falling back to false if it is not registered.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Debugf("flag %s: %v", flag, err)
		return false
	}
	return r
}
