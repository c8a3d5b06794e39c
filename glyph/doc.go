// Package glyph provides the 5x8 monochrome character cell used to program
// custom characters into the HD44780 character generator RAM (CGRAM).
//
// Each of the 8 rows is stored in one byte. Bit 4 is the leftmost dot and
// bit 0 the rightmost; bits 5..7 are unused and always zero.
//
// Memory layout example for a heart:
//
//	Row  Dots   Byte
//	0    .....  0x00
//	1    .#.#.  0x0A
//	2    #####  0x1F
//	3    #####  0x1F
//	4    .###.  0x0E
//	5    ..#..  0x04
//	6    .....  0x00
//	7    .....  0x00
//
// This package provides:
//
// - Dot: A color type for one dot, lit or dark
// - DotModel: A color model converting standard Go colors to Dot
// - Glyph: An image.Image implementation holding one character cell
//
// Example usage:
//
//	g := glyph.New(image.Rect(0, 0, glyph.Width, glyph.Height))
//	g.SetDot(1, 1, glyph.Dot{On: true})
//
//	// Or render any image into it, lit where it is bright
//	draw.Draw(g, g.Bounds(), src, image.Point{}, draw.Src)
//
//	dev.SetCustomChar(0, g)
//	dev.WriteData(0)
package glyph
