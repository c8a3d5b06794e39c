package glyph

import (
	"image"
	"image/color"
)

// Cell size of the 5x8 font.
const (
	Width  = 5
	Height = 8
)

// Dot is the color of one dot of the LCD.
type Dot struct {
	On bool
}

// RGBA converts the Dot to standard RGBA. A lit dot is white.
func (c Dot) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// toDot converts any color.Color to Dot.
func toDot(c color.Color) color.Color {
	if d, ok := c.(Dot); ok {
		return d
	}
	r, g, b, _ := c.RGBA()
	// Standard luminance: 0.299R + 0.587G + 0.114B, lit from half scale up
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Dot{On: y >= 0x8000}
}

// DotModel converts colors to Dot.
var DotModel = color.ModelFunc(toDot)

// Glyph is one 5x8 character cell in CGRAM row format.
type Glyph struct {
	Pix  [Height]byte    // One row per byte, bit 4 = leftmost dot
	Rect image.Rectangle // Image bounds, always Width x Height
}

// New creates an empty Glyph with the specified bounds.
// The rectangle must be exactly Width x Height.
func New(r image.Rectangle) *Glyph {
	if r.Dx() != Width || r.Dy() != Height {
		panic("glyph: bounds must be 5x8")
	}
	return &Glyph{Rect: r}
}

// FromRows creates a Glyph at the origin from raw CGRAM rows. Bits 5..7 of
// each row are dropped.
func FromRows(rows [Height]byte) *Glyph {
	g := New(image.Rect(0, 0, Width, Height))
	for i, v := range rows {
		g.Pix[i] = v & 0x1F
	}
	return g
}

// ColorModel returns the color model of the image.
func (g *Glyph) ColorModel() color.Model {
	return DotModel
}

// Bounds returns the image bounds.
func (g *Glyph) Bounds() image.Rectangle {
	return g.Rect
}

// At returns the color of the dot at (x, y).
// It implements the image.Image interface.
func (g *Glyph) At(x, y int) color.Color {
	return g.DotAt(x, y)
}

// DotAt returns the Dot at (x, y).
func (g *Glyph) DotAt(x, y int) Dot {
	if !(image.Point{X: x, Y: y}.In(g.Rect)) {
		return Dot{}
	}
	row, bit := g.dotOffset(x, y)
	return Dot{On: g.Pix[row]&(1<<bit) != 0}
}

// Set sets the color of the dot at (x, y).
func (g *Glyph) Set(x, y int, c color.Color) {
	g.SetDot(x, y, DotModel.Convert(c).(Dot))
}

// SetDot sets the Dot at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (g *Glyph) SetDot(x, y int, c Dot) {
	if !(image.Point{X: x, Y: y}.In(g.Rect)) {
		return
	}
	row, bit := g.dotOffset(x, y)
	if c.On {
		g.Pix[row] |= 1 << bit
	} else {
		g.Pix[row] &^= 1 << bit
	}
}

// dotOffset returns the row and bit of the dot at (x, y).
// The leftmost column is bit 4.
func (g *Glyph) dotOffset(x, y int) (row int, bit uint) {
	row = y - g.Rect.Min.Y
	bit = uint(Width - 1 - (x - g.Rect.Min.X))
	return
}

// String renders the glyph with '#' for lit dots, one line per row.
func (g *Glyph) String() string {
	buf := make([]byte, 0, (Width+1)*Height)
	for _, v := range g.Pix {
		for bit := Width - 1; bit >= 0; bit-- {
			if v&(1<<uint(bit)) != 0 {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
