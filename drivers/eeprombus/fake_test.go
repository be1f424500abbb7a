// drivers/eeprombus/fake_test.go
package eeprombus

import (
	"errors"
	"sync"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeBus)(nil)

var errNack = errors.New("nack")

// MCP23017 register addresses, IOCON.BANK = 0.
const (
	regIODIRA = 0x00
	regIODIRB = 0x01
	regGPIOA  = 0x12
	regGPIOB  = 0x13
	regOLATA  = 0x14
	regOLATB  = 0x15
	regCount  = 0x16
)

// fakeMCP models the register file of one expander. Writes to GPIO land in
// OLAT; reads of GPIO return OLAT for outputs and ext for inputs.
type fakeMCP struct {
	regs [regCount]byte
	ext  uint16
}

func newFakeMCP() *fakeMCP {
	m := &fakeMCP{}
	m.regs[regIODIRA] = 0xFF
	m.regs[regIODIRB] = 0xFF
	return m
}

func (m *fakeMCP) word(lo, hi byte) uint16 {
	return uint16(m.regs[lo]) | uint16(m.regs[hi])<<8
}

func (m *fakeMCP) iodir() uint16 { return m.word(regIODIRA, regIODIRB) }
func (m *fakeMCP) olat() uint16  { return m.word(regOLATA, regOLATB) }

func (m *fakeMCP) read(reg byte) byte {
	reg %= regCount
	switch reg {
	case regGPIOA, regGPIOB:
		v := m.olat()&^m.iodir() | m.ext&m.iodir()
		if reg == regGPIOB {
			return byte(v >> 8)
		}
		return byte(v)
	}
	return m.regs[reg]
}

func (m *fakeMCP) write(reg, v byte) {
	reg %= regCount
	switch reg {
	case regGPIOA:
		reg = regOLATA
	case regGPIOB:
		reg = regOLATB
	}
	m.regs[reg] = v
}

// fakeBus hosts fake expanders by I2C address.
type fakeBus struct {
	mu   sync.Mutex
	devs map[uint16]*fakeMCP
	fail bool
	txs  int
}

func newFakeBus(addrs ...uint16) *fakeBus {
	f := &fakeBus{devs: make(map[uint16]*fakeMCP)}
	for _, a := range addrs {
		f.devs[a] = newFakeMCP()
	}
	return f
}

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.txs++
	m, ok := f.devs[addr]
	if !ok || f.fail {
		return errNack
	}
	var reg byte
	if len(w) > 0 {
		reg = w[0]
		for k, v := range w[1:] {
			m.write(reg+byte(k), v)
		}
	}
	for k := range r {
		r[k] = m.read(reg + byte(k))
	}
	return nil
}

func (f *fakeBus) dev(addr uint16) *fakeMCP {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.devs[addr]
}

func (f *fakeBus) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.txs
}
