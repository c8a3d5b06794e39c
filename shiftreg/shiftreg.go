package shiftreg

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Signal is a logical LCD line wired to one output of the shift register.
type Signal uint8

// Signals in output order.
const (
	RS Signal = iota // Register select: low for commands, high for data
	E                // Enable strobe
	D4
	D5
	D6
	D7
)

// UsedMask selects the outputs wired to the LCD. Q6 and Q7 are always low.
const UsedMask byte = 0x3F

// LatchPulse is the minimum time the latch line is held high.
const LatchPulse = time.Microsecond

// bits maps each Signal to its register output.
var bits = [...]uint8{
	RS: 0,
	E:  1,
	D4: 2,
	D5: 3,
	D6: 4,
	D7: 5,
}

var names = [...]string{"RS", "E", "D4", "D5", "D6", "D7"}

// Bit returns the register output the signal is wired to.
//
// It panics if s is not one of the declared signals.
func (s Signal) Bit() uint8 {
	return bits[s]
}

func (s Signal) String() string {
	if int(s) < len(names) {
		return names[s]
	}
	return fmt.Sprintf("Signal(%d)", uint8(s))
}

// Pack builds the register image for one set of LCD lines.
// Only the low 4 bits of nibble are used.
func Pack(rs, e bool, nibble byte) byte {
	var v byte
	if rs {
		v |= 1 << bits[RS]
	}
	if e {
		v |= 1 << bits[E]
	}
	v |= (nibble & 0x0F) << bits[D4]
	return v
}

// Bus is the in-memory image of the register outputs plus the transport that
// commits it.
//
// Bus is not safe for concurrent use. A single owner is expected to mutate it
// with Set/SetNibble and publish it with Commit.
type Bus struct {
	t     Transport
	delay func(time.Duration)
	state byte
}

// New returns a Bus committing through t. delay implements the latch pulse
// width; nil means time.Sleep.
func New(t Transport, delay func(time.Duration)) *Bus {
	if delay == nil {
		delay = time.Sleep
	}
	return &Bus{t: t, delay: delay}
}

// Configure initializes the transport and resets the bus image to all zeros.
// Nothing is committed.
func (b *Bus) Configure() error {
	b.state = 0
	if err := b.t.Configure(); err != nil {
		return fmt.Errorf("shiftreg: configure: %w", err)
	}
	return nil
}

// Set updates one signal in memory. Physical outputs are untouched until
// Commit.
func (b *Bus) Set(s Signal, v bool) {
	mask := byte(1) << s.Bit()
	if v {
		b.state |= mask
	} else {
		b.state &^= mask
	}
}

// SetNibble clears D4..D7 and loads them from the low 4 bits of n, bit 0 on
// D4 through bit 3 on D7.
func (b *Bus) SetNibble(n byte) {
	b.state = b.state&^(0x0F<<bits[D4]) | (n&0x0F)<<bits[D4]
}

// State returns the image the next Commit will publish.
func (b *Bus) State() byte {
	return b.state & UsedMask
}

// Commit shifts the current image into the register with the latch held low,
// then pulses the latch once to move it to the outputs.
func (b *Bus) Commit() error {
	v := b.State()
	if err := b.t.Latch(gpio.Low); err != nil {
		return err
	}
	if err := b.t.Transfer(v); err != nil {
		return err
	}
	if err := b.t.Latch(gpio.High); err != nil {
		return err
	}
	b.delay(LatchPulse)
	return b.t.Latch(gpio.Low)
}
