package shiftreg

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// BitBang is a Transport that clocks the register from three GPIOs. It is
// hardcoded to mode 0: data is set up while the clock is low and sampled on
// the rising edge.
type BitBang struct {
	clk   gpio.PinOut
	data  gpio.PinOut
	latch gpio.PinOut
	half  time.Duration
	delay func(time.Duration)
}

// NewBitBang returns a Transport driving clk, data and latch directly. The
// clock half period is derived from div; delay implements it and defaults to
// time.Sleep when nil.
func NewBitBang(clk, data, latch gpio.PinOut, div ClockDivider, delay func(time.Duration)) *BitBang {
	if delay == nil {
		delay = time.Sleep
	}
	return &BitBang{
		clk:   clk,
		data:  data,
		latch: latch,
		half:  div.Frequency().Period() / 2,
		delay: delay,
	}
}

// Configure drives all three lines low.
func (b *BitBang) Configure() error {
	for _, p := range []gpio.PinOut{b.clk, b.data, b.latch} {
		if err := p.Out(gpio.Low); err != nil {
			return fmt.Errorf("shiftreg: %s: %w", p, err)
		}
	}
	return nil
}

// Transfer shifts v out MSB first and leaves the clock low.
func (b *BitBang) Transfer(v byte) error {
	for i := 7; i >= 0; i-- {
		if err := b.data.Out(gpio.Level(v&(1<<uint(i)) != 0)); err != nil {
			return err
		}
		b.delay(b.half)
		if err := b.clk.Out(gpio.High); err != nil {
			return err
		}
		b.delay(b.half)
		if err := b.clk.Out(gpio.Low); err != nil {
			return err
		}
	}
	return nil
}

// Latch drives the storage clock line.
func (b *BitBang) Latch(l gpio.Level) error {
	return b.latch.Out(l)
}

func (b *BitBang) String() string {
	return fmt.Sprintf("shiftreg.BitBang{clk=%s, data=%s, latch=%s}", b.clk, b.data, b.latch)
}

var _ Transport = &BitBang{}
