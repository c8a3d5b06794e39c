package shiftreg

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// SPI is a Transport over a hardware SPI port. The chip select of the port is
// not used for latching; the register's storage clock is wired to a separate
// GPIO.
type SPI struct {
	port  spi.Port
	latch gpio.PinOut
	div   ClockDivider

	c spi.Conn
}

// NewSPI returns a Transport shifting through p and latching on latch.
// Configure must be called before the first Transfer.
func NewSPI(p spi.Port, latch gpio.PinOut, div ClockDivider) *SPI {
	return &SPI{port: p, latch: latch, div: div}
}

// Configure connects the port in mode 0 with 8-bit words at the divided
// reference clock, and drives the latch low.
func (s *SPI) Configure() error {
	if !s.div.Valid() {
		return fmt.Errorf("shiftreg: unsupported divider %d", uint8(s.div))
	}
	if s.c == nil {
		// The 74HC595 samples DS on the rising edge of SHCP: CPOL=0, CPHA=0.
		c, err := s.port.Connect(s.div.Frequency(), spi.Mode0, 8)
		if err != nil {
			return err
		}
		s.c = c
	}
	return s.latch.Out(gpio.Low)
}

// Transfer writes one byte. Tx only returns once the word has left the
// controller.
func (s *SPI) Transfer(b byte) error {
	if s.c == nil {
		return errors.New("shiftreg: spi transport not configured")
	}
	return s.c.Tx([]byte{b}, nil)
}

// Latch drives the storage clock line.
func (s *SPI) Latch(l gpio.Level) error {
	return s.latch.Out(l)
}

func (s *SPI) String() string {
	return fmt.Sprintf("shiftreg.SPI{%s, %s, %s}", s.port, s.latch, s.div)
}

var _ Transport = &SPI{}
