package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"eeprombus-go/drivers/eeprombus"
	"eeprombus-go/errcode"
	"eeprombus-go/pinmap"
)

func newFrameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frame address",
		Short: "print the expander words that put an address on the bus.",
		Long: `Print, per expander IC, the 16-bit value and mask that drive the
	given EEPROM address. The address may be decimal or 0x-prefixed hex.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return errcode.Wrap(errcode.InvalidParams, "frame", err)
			}
			f, err := eeprombus.PlanAddress(uint32(v))
			if err != nil {
				return err
			}
			log.Debugf("planned address %#05x", v)
			for _, ic := range pinmap.ICs {
				w := f.For(ic)
				fmt.Fprintf(cmd.OutOrStdout(), "%s value=0x%04x mask=0x%04x\n", ic, w.Value, w.Mask)
			}
			return nil
		},
	}
}
