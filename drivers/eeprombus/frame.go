package eeprombus

import (
	"strconv"

	"eeprombus-go/errcode"
	"eeprombus-go/pinmap"
	"eeprombus-go/x/mathx"
)

// Word is the value/mask pair written to one expander's 16 pins.
type Word struct {
	Value uint16
	Mask  uint16
}

// Frame holds one Word per controlling IC.
type Frame struct {
	IC1 Word
	IC2 Word
}

// For returns the word of one IC; the zero Word for anything else.
func (f Frame) For(ic pinmap.IC) Word {
	switch ic {
	case pinmap.IC1:
		return f.IC1
	case pinmap.IC2:
		return f.IC2
	}
	return Word{}
}

func (f *Frame) word(ic pinmap.IC) *Word {
	if ic == pinmap.IC1 {
		return &f.IC1
	}
	return &f.IC2
}

// Per-IC masks of the address and data buses, built once from the table.
var (
	addressMask = planMask(pinmap.RoleAddress)
	dataMask    = planMask(pinmap.RoleData)
)

func planMask(role pinmap.Role) Frame {
	var f Frame
	for i := 0; i < role.Lines(); i++ {
		r, _ := pinmap.Lookup(role, i)
		f.word(r.IC).Mask |= 1 << r.Pin
	}
	return f
}

// AddressMask returns the pins of each IC that carry address lines.
func AddressMask() Frame { return addressMask }

// DataMask returns the pins of each IC that carry data lines.
func DataMask() Frame { return dataMask }

// PlanAddress spreads a 19-bit address over the two expanders. Bit i of addr
// lands on the pin routed for address line i.
func PlanAddress(addr uint32) (Frame, error) {
	if !mathx.FitsBits(addr, pinmap.AddressLines) {
		return Frame{}, errcode.New(errcode.OutOfRange, "PlanAddress",
			"address 0x"+strconv.FormatUint(uint64(addr), 16)+" wider than 19 bits")
	}
	f := addressMask
	for i, r := range pinmap.AddressRoutes() {
		if addr>>i&1 == 1 {
			f.word(r.IC).Value |= 1 << r.Pin
		}
	}
	return f, nil
}

// PlanData spreads a byte over the data pins of both expanders.
func PlanData(b byte) Frame {
	f := dataMask
	for i, r := range pinmap.DataRoutes() {
		if b>>i&1 == 1 {
			f.word(r.IC).Value |= 1 << r.Pin
		}
	}
	return f
}

// gatherData is the inverse of PlanData: it collects the data bits from the
// raw pin states of both expanders.
func gatherData(ic1, ic2 uint16) byte {
	var b byte
	for i, r := range pinmap.DataRoutes() {
		raw := ic1
		if r.IC == pinmap.IC2 {
			raw = ic2
		}
		if raw>>r.Pin&1 == 1 {
			b |= 1 << i
		}
	}
	return b
}
