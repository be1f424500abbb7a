package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"eeprombus-go/pinmap"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "validate the routing tables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pinmap.Validate(); err != nil {
				return err
			}
			for _, ic := range pinmap.ICs {
				if err := pinmap.CheckControlIC(ic); err != nil {
					log.Debugf("control pins cannot use %s: %v", ic, err)
				} else {
					log.Debugf("control pins fit on %s", ic)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
