// Package hd44780sr controls an HD44780 character LCD in 4-bit mode through a
// 74HC595 shift register.
//
// See the examples for how to use this package.
package hd44780sr

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/hd44780sr/glyph"
	"periph.io/x/devices/v3/hd44780sr/shiftreg"
)

// Instructions used by the driver.
const (
	cmdClear       byte = 0x01 // Clear display, cursor home
	cmdHome        byte = 0x02 // Cursor home, DDRAM unchanged
	cmdEntryMode   byte = 0x04
	cmdDisplay     byte = 0x08
	cmdFunctionSet byte = 0x20
	cmdSetCGRAM    byte = 0x40
	cmdSetDDRAM    byte = 0x80

	entryIncrement byte = 0x02

	displayOn byte = 0x04
	cursorOn  byte = 0x02
	blinkOn   byte = 0x01

	function4Bit  byte = 0x00
	function2Line byte = 0x08
	function5x8   byte = 0x00

	// Upper nibbles of Function Set sent before the interface width is known.
	nibble8Bit byte = 0x03
	nibble4Bit byte = 0x02
)

// DDRAM base address of each row.
var rowAddr = [...]byte{0x00, 0x40}

// Timings. The busy flag is never read; every wait covers the worst case in
// the datasheet.
const (
	powerSettle = 50 * time.Millisecond
	firstPing   = 5 * time.Millisecond
	nextPing    = 150 * time.Microsecond
	addrSetup   = time.Microsecond
	enablePulse = time.Microsecond
	execShort   = 40 * time.Microsecond
	execLong    = 2 * time.Millisecond
)

// Opts is the configuration for the LCD.
type Opts struct {
	// Display geometry in characters
	Rows int // Default: 2, must be 1 or 2
	Cols int // Default: 16, must be ≤40

	// Serial clock divider, used by NewSPI and NewBitBang (default: Div64)
	Divider shiftreg.ClockDivider

	// Delay blocks for at least the given duration (default: time.Sleep)
	Delay func(time.Duration)

	// Logger receives debug traces of the init sequence (default: logrus standard logger)
	Logger logrus.FieldLogger
}

// Dev is the device handle for the LCD.
//
// Dev is not safe for concurrent use.
type Dev struct {
	bus   *shiftreg.Bus
	delay func(time.Duration)
	log   logrus.FieldLogger

	rows, cols int

	halted bool
}

// NewSPI creates a new LCD driven through a shift register on an SPI port.
//
// The SPI port is configured for Mode0, 8-bit words, at the reference clock
// divided by opts.Divider. latch is the GPIO wired to the register's storage
// clock.
//
// opts can be nil to use defaults (16x2 display).
func NewSPI(p spi.Port, latch gpio.PinOut, opts *Opts) (*Dev, error) {
	opts, err := withDefaults(opts)
	if err != nil {
		return nil, err
	}
	return New(shiftreg.NewSPI(p, latch, opts.Divider), opts)
}

// NewBitBang creates a new LCD driven through a shift register clocked from
// three GPIOs.
func NewBitBang(clk, data, latch gpio.PinOut, opts *Opts) (*Dev, error) {
	opts, err := withDefaults(opts)
	if err != nil {
		return nil, err
	}
	return New(shiftreg.NewBitBang(clk, data, latch, opts.Divider, opts.Delay), opts)
}

// New creates a new LCD on an arbitrary transport and runs the power-on
// initialization sequence.
func New(t shiftreg.Transport, opts *Opts) (*Dev, error) {
	opts, err := withDefaults(opts)
	if err != nil {
		return nil, err
	}

	d := &Dev{
		bus:   shiftreg.New(t, opts.Delay),
		delay: opts.Delay,
		log:   opts.Logger,
		rows:  opts.Rows,
		cols:  opts.Cols,
	}

	if err := d.bus.Configure(); err != nil {
		return nil, fmt.Errorf("hd44780sr: %w", err)
	}
	if err := d.init(); err != nil {
		return nil, fmt.Errorf("hd44780sr: init: %w", err)
	}
	return d, nil
}

func withDefaults(opts *Opts) (*Opts, error) {
	o := Opts{Rows: 2, Cols: 16, Divider: shiftreg.Div64}
	if opts != nil {
		o = *opts
		if o.Rows == 0 {
			o.Rows = 2
		}
		if o.Cols == 0 {
			o.Cols = 16
		}
		if o.Divider == 0 {
			o.Divider = shiftreg.Div64
		}
	}
	if o.Rows < 1 || o.Rows > len(rowAddr) {
		return nil, errors.New("hd44780sr: rows must be 1 or 2")
	}
	if o.Cols < 1 || o.Cols > 40 {
		return nil, errors.New("hd44780sr: cols must be between 1 and 40")
	}
	if !o.Divider.Valid() {
		return nil, fmt.Errorf("hd44780sr: unsupported clock divider %d", uint8(o.Divider))
	}
	if o.Delay == nil {
		o.Delay = time.Sleep
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	return &o, nil
}

// init brings the controller from an unknown interface width to 4-bit mode
// and configures it.
func (d *Dev) init() error {
	d.log.WithField("settle", powerSettle).Debug("hd44780sr: waiting for power to settle")
	d.delay(powerSettle)

	// The controller may be in 8-bit mode or halfway through a 4-bit
	// transfer. Three 8-bit Function Sets resynchronize it either way.
	d.log.Debug("hd44780sr: resetting interface width")
	for _, wait := range []time.Duration{firstPing, nextPing, nextPing} {
		if err := d.writeNibble(nibble8Bit, false); err != nil {
			return err
		}
		d.delay(wait)
	}
	if err := d.writeNibble(nibble4Bit, false); err != nil {
		return err
	}
	d.delay(nextPing)

	cmds := []byte{
		cmdFunctionSet | function4Bit | function2Line | function5x8, // 0x28
		cmdDisplay,                    // Display off
		cmdClear,                      // Clear
		cmdEntryMode | entryIncrement, // Increment, no shift
		cmdDisplay | displayOn,        // Display on, cursor off, blink off
	}
	for _, c := range cmds {
		if err := d.WriteCommand(c); err != nil {
			return err
		}
	}
	d.log.WithField("size", fmt.Sprintf("%dx%d", d.cols, d.rows)).Debug("hd44780sr: ready")
	return nil
}

// writeNibble strobes the low 4 bits of n into the controller.
func (d *Dev) writeNibble(n byte, rs bool) error {
	d.bus.Set(shiftreg.RS, rs)
	d.bus.SetNibble(n)
	d.bus.Set(shiftreg.E, false)
	if err := d.bus.Commit(); err != nil {
		return err
	}
	d.delay(addrSetup)

	d.bus.Set(shiftreg.E, true)
	if err := d.bus.Commit(); err != nil {
		return err
	}
	d.delay(enablePulse)

	// The controller latches on the falling edge of E.
	d.bus.Set(shiftreg.E, false)
	if err := d.bus.Commit(); err != nil {
		return err
	}
	d.delay(execShort)
	return nil
}

// write sends b as two nibbles, high first.
func (d *Dev) write(b byte, rs bool) error {
	if err := d.writeNibble(b>>4, rs); err != nil {
		return err
	}
	return d.writeNibble(b&0x0F, rs)
}

// WriteCommand sends an instruction byte.
//
// Clear and Return Home are followed by an extended wait; every other
// instruction completes within the settle time of the nibble write itself.
func (d *Dev) WriteCommand(cmd byte) error {
	if d.halted {
		return errors.New("hd44780sr: halted")
	}
	if err := d.write(cmd, false); err != nil {
		return err
	}
	if cmd == cmdClear || cmd == cmdHome {
		d.delay(execLong)
	}
	return nil
}

// WriteData writes one character at the cursor, which then advances.
func (d *Dev) WriteData(b byte) error {
	if d.halted {
		return errors.New("hd44780sr: halted")
	}
	return d.write(b, true)
}

// SetCursor moves the cursor to col on row.
func (d *Dev) SetCursor(col, row int) error {
	if row < 0 || row >= d.rows {
		return errors.New("hd44780sr: row out of range")
	}
	if col < 0 || col >= 40 {
		return errors.New("hd44780sr: column out of range")
	}
	return d.WriteCommand(cmdSetDDRAM | (rowAddr[row] + byte(col)))
}

// Write writes raw character codes starting at the cursor.
func (d *Dev) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := d.WriteData(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString writes s starting at the cursor. Bytes are sent as-is, so only
// the controller's character ROM (ASCII for printable characters) applies.
func (d *Dev) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

// SetCustomChar stores g as the user-defined character code (0-7). Writing
// that code with WriteData then shows the glyph.
//
// The address counter is moved back to DDRAM at (0, 0) afterwards.
func (d *Dev) SetCustomChar(code byte, g *glyph.Glyph) error {
	if code > 7 {
		return errors.New("hd44780sr: custom character code must be 0-7")
	}
	if err := d.WriteCommand(cmdSetCGRAM | code<<3); err != nil {
		return err
	}
	if _, err := d.Write(g.Pix[:]); err != nil {
		return err
	}
	return d.WriteCommand(cmdSetDDRAM)
}

// Clear blanks the display and moves the cursor home.
func (d *Dev) Clear() error {
	return d.WriteCommand(cmdClear)
}

// Home moves the cursor to (0, 0) and undoes any display shift.
func (d *Dev) Home() error {
	return d.WriteCommand(cmdHome)
}

// SetDisplay turns the display, the underline cursor and the blinking block
// on or off. The text in DDRAM is kept while the display is off.
func (d *Dev) SetDisplay(on, cursor, blink bool) error {
	var flags byte
	if on {
		flags |= displayOn
	}
	if cursor {
		flags |= cursorOn
	}
	if blink {
		flags |= blinkOn
	}
	return d.WriteCommand(cmdDisplay | flags)
}

// Halt turns the display off.
// After calling Halt, the display will not accept further writes.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.WriteCommand(cmdDisplay)
	d.halted = true
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("hd44780sr.Dev{%dx%d}", d.cols, d.rows)
}
