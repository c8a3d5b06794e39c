package shiftreg

import (
	"fmt"
	"strconv"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Transport is the synchronous serial link feeding the shift register.
//
// All methods block until the lines have been driven. There is no read path.
type Transport interface {
	// Configure drives the clock, data and latch lines as outputs at their
	// idle level and selects the clock rate.
	Configure() error
	// Transfer shifts b out most significant bit first and returns once the
	// last bit has been clocked.
	Transfer(b byte) error
	// Latch drives the register's storage clock (STCP) line.
	Latch(l gpio.Level) error
}

// ReferenceClock is the clock the dividers apply to.
const ReferenceClock = 8 * physic.MegaHertz

// ClockDivider selects the serial clock as a fraction of ReferenceClock.
type ClockDivider uint8

// Supported dividers.
const (
	Div2   ClockDivider = 2
	Div4   ClockDivider = 4
	Div8   ClockDivider = 8
	Div16  ClockDivider = 16
	Div32  ClockDivider = 32
	Div64  ClockDivider = 64
	Div128 ClockDivider = 128
)

// Frequency returns the serial clock rate for the divider.
func (d ClockDivider) Frequency() physic.Frequency {
	return ReferenceClock / physic.Frequency(d)
}

func (d ClockDivider) String() string {
	return fmt.Sprintf("/%d (%s)", uint8(d), d.Frequency())
}

// Valid reports whether d is one of the supported dividers.
func (d ClockDivider) Valid() bool {
	switch d {
	case Div2, Div4, Div8, Div16, Div32, Div64, Div128:
		return true
	}
	return false
}

// ParseDivider parses a divide ratio such as "64" or "/64".
func ParseDivider(s string) (ClockDivider, error) {
	if len(s) > 0 && s[0] == '/' {
		s = s[1:]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("shiftreg: invalid divider %q: %w", s, err)
	}
	d := ClockDivider(n)
	if n <= 0 || n > 128 || !d.Valid() {
		return 0, fmt.Errorf("shiftreg: unsupported divider %d", n)
	}
	return d, nil
}
