// Package hd44780sr controls an HD44780 character LCD through a 74HC595
// shift register.
//
// The LCD runs in 4-bit mode. Its six control and data lines hang off the
// register outputs, so the whole display needs only three wires from the
// host: serial clock, serial data and latch. This driver implements the
// io.Writer interface for text.
//
// # Display Characteristics
//
// - 1 or 2 rows, up to 40 columns (16x2 is the most common)
// - 5x8 dot font, 8 user-defined characters
// - Write-only: the busy flag is never read, fixed delays cover the
// worst-case execution times from the datasheet
//
// # Hardware Connection
//
// Connect the 74HC595 to your system via SPI, and the LCD to the register:
//
//	Register Pin → System Pin
//	GND          → GND
//	VCC          → 3.3V (or 5V depending on display)
//	SHCP         → SPI Clock (SCLK)
//	DS           → SPI Data (MOSI)
//	STCP         → GPIO (any available pin)
//	OE           → GND
//	MR           → VCC
//
//	Register Output → LCD Pin
//	Q0              → RS
//	Q1              → E
//	Q2..Q5          → D4..D7
//	Q6, Q7          → not connected
//
// Tie the LCD's RW pin to GND.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/hd44780sr"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Get the latch GPIO pin
//		latch := gpioreg.ByName("GPIO25")
//
//		// Create device, this runs the power-on sequence
//		dev, _ := hd44780sr.NewSPI(spiBus, latch, &hd44780sr.Opts{
//			Rows: 2,
//			Cols: 16,
//		})
//		defer dev.Halt()
//
//		dev.SetCursor(0, 0)
//		dev.WriteString("Hello")
//	}
//
// # Bit-Banged Clock
//
// Any three GPIOs can replace the SPI port:
//
//	dev, _ := hd44780sr.NewBitBang(clkPin, dataPin, latchPin, nil)
//
// # Initialization
//
// The constructor waits 50ms for the supply to settle, sends the 8-bit
// Function Set nibble three times to resynchronize a controller left in an
// unknown interface width, switches it to 4-bit mode and then configures it:
// 2 lines, 5x8 font, display cleared, cursor auto-increment, display on with
// cursor and blink off.
//
// # Timing
//
// Every register update is shifted in with the latch low and published by
// one latch pulse, so the LCD never sees a half-shifted byte. A nibble takes
// three register updates (E low, high, low) followed by 40µs. Clear and Home
// wait an extra 2ms.
//
// At the default /64 divider of an 8MHz reference (125kHz) a register update
// takes ~70µs on the wire; writing a 16 character line takes ~8ms.
//
// # Custom Characters
//
// Character codes 0-7 show user-defined glyphs:
//
//	dev.SetCustomChar(0, glyph.FromRows([glyph.Height]byte{
//		0x00, 0x0A, 0x1F, 0x1F, 0x0E, 0x04, 0x00, 0x00,
//	}))
//	dev.WriteData(0)
//
// # Datasheet
//
// For the instruction set and timing, see:
// https://www.sparkfun.com/datasheets/LCD/HD44780.pdf
//
// For the shift register:
// https://www.nexperia.com/product/74HC595D
package hd44780sr
