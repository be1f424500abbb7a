package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"eeprombus-go/pinmap"
)

// entry is one printed row; JSON output is a list of these.
type entry struct {
	Role  string `json:"role"`
	Index int    `json:"index"`
	Pin   uint8  `json:"pin"`
	IC    string `json:"ic"`
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "print the routing tables.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			role, _ := cmd.Flags().GetString("role")
			rows, err := collect(role)
			if err != nil {
				return err
			}
			log.Debugf("dumping %d rows (role=%q)", len(rows), role)
			if getFlag(cmd, "json") {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			return printRows(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().String("role", "", "restrict output to address, data or control")
	cmd.Flags().Bool("json", false, "print JSON instead of a table")
	return cmd
}

// collect gathers the rows for role: "" for everything, "control" for the
// control pins, or any name accepted by pinmap.ParseRole.
func collect(role string) ([]entry, error) {
	all, control := role == "", strings.EqualFold(strings.TrimSpace(role), "control")
	bus := pinmap.Role(0)
	if !all && !control {
		r, err := pinmap.ParseRole(role)
		if err != nil {
			return nil, err
		}
		bus = r
	}
	var rows []entry
	if all || (!control && bus == pinmap.RoleAddress) {
		for i, r := range pinmap.AddressRoutes() {
			rows = append(rows, entry{"address", i, uint8(r.Pin), r.IC.String()})
		}
	}
	if all || (!control && bus == pinmap.RoleData) {
		for i, r := range pinmap.DataRoutes() {
			rows = append(rows, entry{"data", i, uint8(r.Pin), r.IC.String()})
		}
	}
	if all || control {
		c := pinmap.ControlPins()
		for i, s := range []pinmap.Signal{pinmap.ChipEnable, pinmap.OutputEnable, pinmap.WriteEnable} {
			ctl, _ := c.Of(s)
			rows = append(rows, entry{s.String(), i, uint8(ctl.Pin), ctl.IC.String()})
		}
	}
	return rows, nil
}

func printRows(w io.Writer, rows []entry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROLE\tINDEX\tPIN\tIC")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.Role, r.Index, r.Pin, r.IC)
	}
	return tw.Flush()
}
