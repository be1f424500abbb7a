// Command pintable prints and checks the EEPROM programmer's bus routing.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
