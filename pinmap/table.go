// pinmap/table.go
package pinmap

// Address bus pins.
const (
	AddrPin0  Pin = 11
	AddrPin1  Pin = 10
	AddrPin2  Pin = 9
	AddrPin3  Pin = 8
	AddrPin4  Pin = 7
	AddrPin5  Pin = 6
	AddrPin6  Pin = 5
	AddrPin7  Pin = 4
	AddrPin8  Pin = 10
	AddrPin9  Pin = 9
	AddrPin10 Pin = 6
	AddrPin11 Pin = 8
	AddrPin12 Pin = 3
	AddrPin13 Pin = 11
	AddrPin14 Pin = 12
	AddrPin15 Pin = 2
	AddrPin16 Pin = 1
	AddrPin17 Pin = 13
	AddrPin18 Pin = 0
)

// Data bus pins.
const (
	DataPin0 Pin = 12
	DataPin1 Pin = 13
	DataPin2 Pin = 14
	DataPin3 Pin = 0
	DataPin4 Pin = 1
	DataPin5 Pin = 2
	DataPin6 Pin = 3
	DataPin7 Pin = 4
)

// Control pins.
const (
	ChipEnablePin   Pin = 5
	OutputEnablePin Pin = 7
	WriteEnablePin  Pin = 14
)

// Parallel tables: index i of a pin table pairs with index i of its route
// table. Only read after init.
var (
	addressPins = [AddressLines]Pin{
		AddrPin0, AddrPin1, AddrPin2, AddrPin3,
		AddrPin4, AddrPin5, AddrPin6, AddrPin7,
		AddrPin8, AddrPin9, AddrPin10, AddrPin11,
		AddrPin12, AddrPin13, AddrPin14, AddrPin15,
		AddrPin16, AddrPin17, AddrPin18,
	}
	addressRoute = [AddressLines]IC{
		IC2, IC2, IC2, IC2,
		IC2, IC2, IC2, IC2,
		IC1, IC1, IC1, IC1,
		IC2, IC1, IC1, IC2,
		IC2, IC1, IC2,
	}

	dataPins = [DataLines]Pin{
		DataPin0, DataPin1, DataPin2, DataPin3,
		DataPin4, DataPin5, DataPin6, DataPin7,
	}
	dataRoute = [DataLines]IC{
		IC2, IC2, IC2, IC1,
		IC1, IC1, IC1, IC1,
	}
)
