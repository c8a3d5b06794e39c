// Package shiftreg drives a 74HC595-style serial-to-parallel shift register
// that fans a synchronous serial link out to the control and data lines of an
// HD44780 character LCD.
//
// The register has no atomic byte write of its own. Bus keeps the authoritative
// image of the 8 output latches in memory and commits it in two phases: the
// byte is shifted into the staging register with the latch line low, then a
// single latch pulse copies it to the outputs. The LCD therefore only ever
// sees complete snapshots, never the bits rippling through during the shift.
//
// Output wiring:
//
//	Q0 → RS
//	Q1 → E
//	Q2 → D4
//	Q3 → D5
//	Q4 → D6
//	Q5 → D7
//	Q6, Q7 unused, always driven low
//
// Two transports are provided: SPI uses a hardware SPI port plus a GPIO for
// the latch, BitBang clocks the data out on three plain GPIOs.
//
// Example usage:
//
//	t := shiftreg.NewSPI(port, latchPin, shiftreg.Div64)
//	bus := shiftreg.New(t, time.Sleep)
//	if err := bus.Configure(); err != nil {
//		// handle error
//	}
//	bus.Set(shiftreg.RS, true)
//	bus.SetNibble(0x4)
//	bus.Commit() // one latch pulse, Q0..Q5 change together
package shiftreg
