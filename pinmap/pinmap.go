// Package pinmap holds the bus-routing table of the EEPROM programmer.
//
// The 19 address lines and 8 data lines of the EEPROM are wired to two GPIO
// expander ICs, each with its own pin numbering (0..15). Every logical line
// is therefore described by a pin number together with the IC that owns it:
//
//	r, err := pinmap.Lookup(pinmap.RoleAddress, 9) // {Pin: 9, IC: IC1}
//
// The tables are fixed-size arrays built at package initialisation and are
// never written afterwards; all accessors are safe for concurrent use.
package pinmap

import (
	"strconv"
	"strings"

	"eeprombus-go/errcode"
	"eeprombus-go/x/mathx"
)

// Line counts.
const (
	AddressLines = 19
	DataLines    = 8
)

// PinsPerIC is the size of each expander's pin numbering space.
const PinsPerIC = 16

// DefaultBase is the fixed I²C address prefix of the expanders; the IC tag
// supplies the low three bits (hardware address pins A2..A0).
const DefaultBase = 0x20

// Pin is an expander pin number, meaningful only together with its IC.
type Pin uint8

// IC identifies one controlling expander chip by its opaque tag.
type IC uint8

const (
	// ICNone marks a pin with no recorded owner (the control pins).
	ICNone IC = 0
	IC1    IC = 4
	IC2    IC = 6
)

// ICs lists the controlling ICs in tag order.
var ICs = [...]IC{IC1, IC2}

func (ic IC) Valid() bool { return ic == IC1 || ic == IC2 }

func (ic IC) String() string {
	switch ic {
	case IC1:
		return "IC1"
	case IC2:
		return "IC2"
	case ICNone:
		return "none"
	default:
		return "IC(" + strconv.Itoa(int(ic)) + ")"
	}
}

// Address returns the 7-bit I²C address of the IC: base | tag.
// A zero base selects DefaultBase. ICNone has no address.
func (ic IC) Address(base uint16) (uint16, error) {
	if !ic.Valid() {
		return 0, errcode.New(errcode.UnknownIC, "Address", ic.String())
	}
	if base == 0 {
		base = DefaultBase
	}
	return base | uint16(ic), nil
}

// ParseIC accepts "IC1"/"IC2" (case-insensitive), "1"/"2", or the tags "4"/"6".
func ParseIC(s string) (IC, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ic1", "1", "4":
		return IC1, nil
	case "ic2", "2", "6":
		return IC2, nil
	case "none":
		return ICNone, nil
	}
	return ICNone, errcode.New(errcode.UnknownIC, "ParseIC", s)
}

// Role selects the address or data bus.
type Role uint8

const (
	RoleAddress Role = iota
	RoleData
)

func (r Role) String() string {
	switch r {
	case RoleAddress:
		return "address"
	case RoleData:
		return "data"
	default:
		return "role(" + strconv.Itoa(int(r)) + ")"
	}
}

// Lines returns the number of lines on the bus of this role.
func (r Role) Lines() int {
	switch r {
	case RoleAddress:
		return AddressLines
	case RoleData:
		return DataLines
	default:
		return 0
	}
}

// ParseRole accepts "address"/"addr"/"a" and "data"/"d" (case-insensitive).
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "address", "addr", "a":
		return RoleAddress, nil
	case "data", "d":
		return RoleData, nil
	}
	return 0, errcode.New(errcode.UnknownRole, "ParseRole", s)
}

// Line is one logical bus line.
type Line struct {
	Role  Role
	Index int
}

func (l Line) String() string { return l.Role.String() + strconv.Itoa(l.Index) }

// Route pairs a pin with the IC that owns it.
type Route struct {
	Pin Pin
	IC  IC
}

// Signal names one EEPROM control signal.
type Signal uint8

const (
	ChipEnable Signal = iota
	OutputEnable
	WriteEnable
)

func (s Signal) String() string {
	switch s {
	case ChipEnable:
		return "ce"
	case OutputEnable:
		return "oe"
	case WriteEnable:
		return "we"
	default:
		return "signal(" + strconv.Itoa(int(s)) + ")"
	}
}

// Control is a control-pin assignment. IC is ICNone: the wiring does not
// record which expander, if any, the control pins go through.
type Control struct {
	Pin Pin
	IC  IC
}

// Controls holds the three control-pin assignments.
type Controls struct {
	ChipEnable   Control
	OutputEnable Control
	WriteEnable  Control
}

// Of returns the assignment for one signal.
func (c Controls) Of(s Signal) (Control, error) {
	switch s {
	case ChipEnable:
		return c.ChipEnable, nil
	case OutputEnable:
		return c.OutputEnable, nil
	case WriteEnable:
		return c.WriteEnable, nil
	}
	return Control{}, errcode.New(errcode.InvalidParams, "Controls.Of", s.String())
}

// AddressPin returns the pin of address line i, i in [0,18].
func AddressPin(i int) (Pin, error) {
	if !mathx.InRange(i, AddressLines) {
		return 0, outOfRange("AddressPin", i, AddressLines)
	}
	return addressPins[i], nil
}

// AddressRoute returns the IC owning address line i, i in [0,18].
func AddressRoute(i int) (IC, error) {
	if !mathx.InRange(i, AddressLines) {
		return ICNone, outOfRange("AddressRoute", i, AddressLines)
	}
	return addressRoute[i], nil
}

// DataPin returns the pin of data line i, i in [0,7].
func DataPin(i int) (Pin, error) {
	if !mathx.InRange(i, DataLines) {
		return 0, outOfRange("DataPin", i, DataLines)
	}
	return dataPins[i], nil
}

// DataRoute returns the IC owning data line i, i in [0,7].
func DataRoute(i int) (IC, error) {
	if !mathx.InRange(i, DataLines) {
		return ICNone, outOfRange("DataRoute", i, DataLines)
	}
	return dataRoute[i], nil
}

// ControlPins returns the chip-enable, output-enable and write-enable pins.
func ControlPins() Controls {
	return Controls{
		ChipEnable:   Control{Pin: ChipEnablePin, IC: ICNone},
		OutputEnable: Control{Pin: OutputEnablePin, IC: ICNone},
		WriteEnable:  Control{Pin: WriteEnablePin, IC: ICNone},
	}
}

// Lookup returns pin and IC of one line.
func Lookup(role Role, i int) (Route, error) {
	switch role {
	case RoleAddress:
		if !mathx.InRange(i, AddressLines) {
			return Route{}, outOfRange("Lookup", i, AddressLines)
		}
		return Route{Pin: addressPins[i], IC: addressRoute[i]}, nil
	case RoleData:
		if !mathx.InRange(i, DataLines) {
			return Route{}, outOfRange("Lookup", i, DataLines)
		}
		return Route{Pin: dataPins[i], IC: dataRoute[i]}, nil
	}
	return Route{}, errcode.New(errcode.UnknownRole, "Lookup", role.String())
}

// AddressRoutes returns a copy of the address table.
func AddressRoutes() [AddressLines]Route {
	var out [AddressLines]Route
	for i := range out {
		out[i] = Route{Pin: addressPins[i], IC: addressRoute[i]}
	}
	return out
}

// DataRoutes returns a copy of the data table.
func DataRoutes() [DataLines]Route {
	var out [DataLines]Route
	for i := range out {
		out[i] = Route{Pin: dataPins[i], IC: dataRoute[i]}
	}
	return out
}

// Lines returns the bus lines owned by ic, address lines first, each in
// index order. Unknown ICs own nothing.
func Lines(ic IC) []Line {
	var out []Line
	for i, r := range addressRoute {
		if r == ic {
			out = append(out, Line{Role: RoleAddress, Index: i})
		}
	}
	for i, r := range dataRoute {
		if r == ic {
			out = append(out, Line{Role: RoleData, Index: i})
		}
	}
	return out
}

func outOfRange(op string, i, n int) error {
	return errcode.New(errcode.OutOfRange, op,
		"index "+strconv.Itoa(i)+" not in [0,"+strconv.Itoa(n-1)+"]")
}
