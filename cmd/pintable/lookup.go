package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"eeprombus-go/errcode"
	"eeprombus-go/pinmap"
)

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup role index",
		Short: "print the pin and IC of one bus line.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := pinmap.ParseRole(args[0])
			if err != nil {
				return err
			}
			i, err := strconv.Atoi(args[1])
			if err != nil {
				return errcode.Wrap(errcode.InvalidParams, "lookup", err)
			}
			r, err := pinmap.Lookup(role, i)
			if err != nil {
				return err
			}
			log.Debugf("%s%d -> pin %d on %s", role, i, r.Pin, r.IC)
			addr, _ := r.IC.Address(pinmap.DefaultBase)
			fmt.Fprintf(cmd.OutOrStdout(), "%s%d pin=%d ic=%s addr=0x%02x\n", role, i, r.Pin, r.IC, addr)
			return nil
		},
	}
}
