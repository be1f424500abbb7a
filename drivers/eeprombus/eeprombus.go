// Package eeprombus routes the EEPROM address and data buses onto the two
// MCP23017 expanders described by package pinmap.
//
//	b, _ := eeprombus.New(i2c, eeprombus.Config{})
//	_ = b.Configure(eeprombus.DataIn)
//	_ = b.DriveAddress(0x1234)
//	v, _ := b.SampleData()
//
// The bank only moves pin levels. Chip-enable/output-enable/write-enable
// sequencing and timing belong to the caller.
//
// A Bank is not safe for concurrent use.
package eeprombus

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/mcp23017"

	"eeprombus-go/errcode"
	"eeprombus-go/pinmap"
)

// Direction of the data bus as seen from the programmer.
type Direction uint8

const (
	DataIn Direction = iota // read from the EEPROM
	DataOut                 // write to the EEPROM
)

// Config controls bank construction. All fields are optional.
type Config struct {
	// Base is the expander address prefix; the IC tag is OR-ed in.
	// Defaults to 0x20.
	Base uint16
	// ControlIC names the expander carrying the CE/OE/WE pins. The wiring
	// table does not record it, so the default ICNone leaves the control
	// pins untouched and SetControl unsupported.
	ControlIC pinmap.IC
}

// Bank drives the two expanders as one EEPROM bus.
type Bank struct {
	cfg  Config
	ic1  *mcp23017.Device
	ic2  *mcp23017.Device
	addr map[pinmap.IC]uint16
}

// New creates one mcp23017 device per IC and clears both output latches.
// The I2C bus must already be configured. No modes are written until
// Configure.
func New(bus drivers.I2C, cfg Config) (*Bank, error) {
	if cfg.Base == 0 {
		cfg.Base = pinmap.DefaultBase
	}
	if err := pinmap.CheckControlIC(cfg.ControlIC); err != nil {
		return nil, err
	}
	b := &Bank{cfg: cfg, addr: make(map[pinmap.IC]uint16, len(pinmap.ICs))}
	for _, ic := range pinmap.ICs {
		a, err := ic.Address(cfg.Base)
		if err != nil {
			return nil, err
		}
		dev, err := mcp23017.NewI2C(bus, uint8(a))
		if err != nil {
			return nil, &errcode.E{C: errcode.InvalidParams, Op: "New", Msg: ic.String(), Err: err}
		}
		if err := resetLatch(dev); err != nil {
			return nil, &errcode.E{C: errcode.Error, Op: "New", Msg: ic.String(), Err: err}
		}
		b.addr[ic] = a
		if ic == pinmap.IC1 {
			b.ic1 = dev
		} else {
			b.ic2 = dev
		}
	}
	return b, nil
}

// Address returns the I²C address used for ic (0 if unknown).
func (b *Bank) Address(ic pinmap.IC) uint16 { return b.addr[ic] }

// ControlIC returns the configured control-pin expander.
func (b *Bank) ControlIC() pinmap.IC { return b.cfg.ControlIC }

func (b *Bank) dev(ic pinmap.IC) *mcp23017.Device {
	if ic == pinmap.IC1 {
		return b.ic1
	}
	return b.ic2
}

// Configure sets pin directions: address pins output, data pins per dir,
// control pins output on ControlIC, every other pin input. Switching to
// DataOut drives the data bus low until DriveData.
func (b *Bank) Configure(dir Direction) error {
	outputs := AddressMask()
	switch dir {
	case DataIn:
	case DataOut:
		d := DataMask()
		outputs.IC1.Mask |= d.IC1.Mask
		outputs.IC2.Mask |= d.IC2.Mask
		if err := b.apply("Configure", PlanData(0)); err != nil {
			return err
		}
	default:
		return errcode.New(errcode.InvalidParams, "Configure", "unknown direction")
	}
	if ic := b.cfg.ControlIC; ic != pinmap.ICNone {
		outputs.word(ic).Mask |= controlMask()
	}
	for _, ic := range pinmap.ICs {
		var modes [pinmap.PinsPerIC]mcp23017.PinMode
		out := outputs.For(ic).Mask
		for p := range modes {
			if out>>p&1 == 1 {
				modes[p] = mcp23017.Output
			} else {
				modes[p] = mcp23017.Input
			}
		}
		if err := b.dev(ic).SetModes(modes[:]); err != nil {
			return errcode.Wrap(errcode.Error, "Configure", err)
		}
	}
	return nil
}

// DriveAddress puts addr on the address bus.
func (b *Bank) DriveAddress(addr uint32) error {
	f, err := PlanAddress(addr)
	if err != nil {
		return err
	}
	return b.apply("DriveAddress", f)
}

// DriveData puts v on the data bus. The bank must be configured DataOut.
func (b *Bank) DriveData(v byte) error {
	return b.apply("DriveData", PlanData(v))
}

// SampleData reads the data bus from both expanders.
func (b *Bank) SampleData() (byte, error) {
	p1, err := b.ic1.GetPins()
	if err != nil {
		return 0, errcode.Wrap(errcode.Error, "SampleData", err)
	}
	p2, err := b.ic2.GetPins()
	if err != nil {
		return 0, errcode.Wrap(errcode.Error, "SampleData", err)
	}
	return gatherData(uint16(p1), uint16(p2)), nil
}

// SetControl sets the level of one control pin on ControlIC.
func (b *Bank) SetControl(s pinmap.Signal, level bool) error {
	if b.cfg.ControlIC == pinmap.ICNone {
		return errcode.New(errcode.Unsupported, "SetControl", "no control IC configured")
	}
	ctl, err := pinmap.ControlPins().Of(s)
	if err != nil {
		return err
	}
	mask := uint16(1) << ctl.Pin
	var val uint16
	if level {
		val = mask
	}
	if err := b.dev(b.cfg.ControlIC).SetPins(mcp23017.Pins(val), mcp23017.Pins(mask)); err != nil {
		return errcode.Wrap(errcode.Error, "SetControl", err)
	}
	return nil
}

func (b *Bank) apply(op string, f Frame) error {
	for _, ic := range pinmap.ICs {
		w := f.For(ic)
		if w.Mask == 0 {
			continue
		}
		if err := b.dev(ic).SetPins(mcp23017.Pins(w.Value), mcp23017.Pins(w.Mask)); err != nil {
			return &errcode.E{C: errcode.Error, Op: op, Msg: ic.String(), Err: err}
		}
	}
	return nil
}

// resetLatch brings the driver's cached pin state in line with the output
// latch and then clears it. NewI2C seeds the cache from an input read and
// SetPins skips writes matching the cache, so the two toggles force real
// writes first.
func resetLatch(dev *mcp23017.Device) error {
	for i := 0; i < 2; i++ {
		if err := dev.TogglePins(0xFFFF); err != nil {
			return err
		}
	}
	return dev.SetPins(0, 0xFFFF)
}

func controlMask() uint16 {
	c := pinmap.ControlPins()
	return 1<<c.ChipEnable.Pin | 1<<c.OutputEnable.Pin | 1<<c.WriteEnable.Pin
}
