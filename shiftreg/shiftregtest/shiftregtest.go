// Package shiftregtest is meant to be used to test drivers built on top of
// shiftreg.
//
// Record stands in for the register and its serial link: it keeps a log of
// every line change and delay, and models the staging and output stages of a
// 74HC595 so tests can inspect what the LCD actually saw.
package shiftregtest

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Kind identifies an Event.
type Kind int

// Event kinds.
const (
	Configure Kind = iota
	Shift
	Latch
	Delay
)

func (k Kind) String() string {
	switch k {
	case Configure:
		return "Configure"
	case Shift:
		return "Shift"
	case Latch:
		return "Latch"
	case Delay:
		return "Delay"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is one recorded operation.
type Event struct {
	Kind  Kind
	Value byte          // Shift: the byte shifted
	Level gpio.Level    // Latch: the level driven
	D     time.Duration // Delay: the requested duration
}

func (e Event) String() string {
	switch e.Kind {
	case Shift:
		return fmt.Sprintf("Shift(0x%02X)", e.Value)
	case Latch:
		return fmt.Sprintf("Latch(%s)", e.Level)
	case Delay:
		return fmt.Sprintf("Delay(%s)", e.D)
	}
	return e.Kind.String()
}

// Nibble is one value strobed into the LCD by an enable pulse.
type Nibble struct {
	RS   bool
	Data byte
}

func (n Nibble) String() string {
	return fmt.Sprintf("{RS:%t 0x%X}", n.RS, n.Data)
}

// Record implements shiftreg.Transport and doubles as the delay function.
//
// The zero value is ready to use.
type Record struct {
	// Log is every operation in call order.
	Log []Event
	// Err, when set, is returned by every transport call after it is logged.
	Err error

	staged  byte
	latch   gpio.Level
	rising  bool
	outputs []byte
	pulses  int
}

// Configure implements shiftreg.Transport.
func (r *Record) Configure() error {
	r.Log = append(r.Log, Event{Kind: Configure})
	r.latch = gpio.Low
	return r.Err
}

// Transfer implements shiftreg.Transport. The 8 bits shifted replace the
// whole staging register.
func (r *Record) Transfer(b byte) error {
	r.Log = append(r.Log, Event{Kind: Shift, Value: b})
	r.staged = b
	return r.Err
}

// Latch implements shiftreg.Transport. A rising edge copies the staging
// register to the outputs.
func (r *Record) Latch(l gpio.Level) error {
	r.Log = append(r.Log, Event{Kind: Latch, Level: l})
	switch {
	case l == gpio.High && r.latch == gpio.Low:
		r.outputs = append(r.outputs, r.staged)
		r.rising = true
	case l == gpio.Low && r.latch == gpio.High && r.rising:
		r.pulses++
		r.rising = false
	}
	r.latch = l
	return r.Err
}

// Delay records d instead of sleeping.
func (r *Record) Delay(d time.Duration) {
	r.Log = append(r.Log, Event{Kind: Delay, D: d})
}

// Outputs returns the register output image after each latch rising edge.
func (r *Record) Outputs() []byte {
	return append([]byte(nil), r.outputs...)
}

// Pulses returns the number of complete low, high, low latch pulses.
func (r *Record) Pulses() int {
	return r.pulses
}

// Shifted returns every byte transferred.
func (r *Record) Shifted() []byte {
	var out []byte
	for _, e := range r.Log {
		if e.Kind == Shift {
			out = append(out, e.Value)
		}
	}
	return out
}

// Delays returns every requested delay.
func (r *Record) Delays() []time.Duration {
	var out []time.Duration
	for _, e := range r.Log {
		if e.Kind == Delay {
			out = append(out, e.D)
		}
	}
	return out
}

// Nibbles decodes the outputs into the values the LCD latched: one per
// enable pulse, taken from the output image where E went high.
func (r *Record) Nibbles() []Nibble {
	var out []Nibble
	prevE := false
	for _, v := range r.outputs {
		e := v&0x02 != 0
		if e && !prevE {
			out = append(out, Nibble{RS: v&0x01 != 0, Data: v >> 2 & 0x0F})
		}
		prevE = e
	}
	return out
}

// Reset forgets everything recorded so far. The latch level is kept.
func (r *Record) Reset() {
	r.Log = nil
	r.outputs = nil
	r.pulses = 0
	r.rising = false
}
