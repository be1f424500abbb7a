package pinmap

import (
	"eeprombus-go/errcode"
	"eeprombus-go/x/mathx"
)

// Validate checks the routing tables: every route names IC1 or IC2, every
// pin fits an expander, and no two lines share an (IC, pin) pair.
func Validate() error {
	owner := make(map[Route]Line, AddressLines+DataLines)
	check := func(l Line, r Route) error {
		if !r.IC.Valid() {
			return errcode.New(errcode.UnknownIC, "Validate", l.String()+" routed to "+r.IC.String())
		}
		if !mathx.Between(r.Pin, 0, PinsPerIC-1) {
			return errcode.New(errcode.OutOfRange, "Validate", l.String()+" pin beyond expander")
		}
		if prev, dup := owner[r]; dup {
			return errcode.New(errcode.InvalidParams, "Validate", l.String()+" shares its pin with "+prev.String())
		}
		owner[r] = l
		return nil
	}
	for i, r := range AddressRoutes() {
		if err := check(Line{Role: RoleAddress, Index: i}, r); err != nil {
			return err
		}
	}
	for i, r := range DataRoutes() {
		if err := check(Line{Role: RoleData, Index: i}, r); err != nil {
			return err
		}
	}
	return nil
}

// CheckControlIC reports whether the control pins could be wired through ic
// without colliding with a bus line. ICNone is always accepted.
func CheckControlIC(ic IC) error {
	if ic == ICNone {
		return nil
	}
	if !ic.Valid() {
		return errcode.New(errcode.UnknownIC, "CheckControlIC", ic.String())
	}
	used := make(map[Pin]Line)
	for _, l := range Lines(ic) {
		r, _ := Lookup(l.Role, l.Index)
		used[r.Pin] = l
	}
	c := ControlPins()
	for _, s := range []Signal{ChipEnable, OutputEnable, WriteEnable} {
		ctl, _ := c.Of(s)
		if l, clash := used[ctl.Pin]; clash {
			return errcode.New(errcode.InvalidParams, "CheckControlIC",
				s.String()+" pin collides with "+l.String()+" on "+ic.String())
		}
	}
	return nil
}
