package core

import "math"

// TextStyle describes how a text command should be drawn.
type TextStyle struct {
	Color    Color
	Size     float64 // Font size in world units; terminal surfaces ignore it
	Gradient bool    // Rainbow gradient across the string instead of Color
}

// Surface is the opaque drawing target the simulation issues commands to.
// Coordinates are world units; implementations decide how to rasterize.
type Surface interface {
	// Clear wipes the whole surface before a frame.
	Clear()
	// FillRect draws a filled rectangle.
	FillRect(r Rect, c Color)
	// StrokeRect draws a rectangle outline.
	StrokeRect(r Rect, c Color)
	// DrawText draws a string whose baseline starts at (x, y).
	DrawText(x, y float64, text string, style TextStyle)
}

// ScaledSurface rasterizes world-space draw commands onto a character Screen,
// scaling the world's width and height to the screen's cell grid.
type ScaledSurface struct {
	dst    *Screen
	scaleX float64
	scaleY float64
}

// NewScaledSurface creates a surface mapping a worldW x worldH area onto dst.
func NewScaledSurface(dst *Screen, worldW, worldH float64) *ScaledSurface {
	s := &ScaledSurface{dst: dst}
	if worldW > 0 {
		s.scaleX = float64(dst.Width()) / worldW
	}
	if worldH > 0 {
		s.scaleY = float64(dst.Height()) / worldH
	}
	return s
}

// cellSpan converts a world interval to a cell interval covering at least
// one cell, so thin ledges stay visible at low resolutions.
func cellSpan(start, length, scale float64) (int, int) {
	c0 := int(math.Floor(start * scale))
	c1 := int(math.Ceil((start + length) * scale))
	if c1 <= c0 {
		c1 = c0 + 1
	}
	return c0, c1 - c0
}

// Clear wipes the underlying screen.
func (s *ScaledSurface) Clear() {
	s.dst.Clear()
}

// FillRect fills the cells covered by r with solid blocks.
func (s *ScaledSurface) FillRect(r Rect, c Color) {
	x, w := cellSpan(r.X, r.W, s.scaleX)
	y, h := cellSpan(r.Y, r.H, s.scaleY)
	s.dst.FillCells(x, y, w, h, '█', c)
}

// StrokeRect outlines the cells covered by r.
func (s *ScaledSurface) StrokeRect(r Rect, c Color) {
	x, w := cellSpan(r.X, r.W, s.scaleX)
	y, h := cellSpan(r.Y, r.H, s.scaleY)
	s.dst.DrawBox(x, y, w, h, c)
}

// DrawText places text on the row containing the baseline.
func (s *ScaledSurface) DrawText(x, y float64, text string, style TextStyle) {
	col := int(math.Floor(x * s.scaleX))
	row := int(math.Floor(y * s.scaleY))
	if !style.Gradient {
		s.dst.DrawTextColor(col, row, text, style.Color)
		return
	}
	runes := []rune(text)
	for i, r := range runes {
		s.dst.SetCell(col+i, row, Cell{Rune: r, Color: GradientAt(i, len(runes))})
	}
}

// DrawOp identifies the kind of a recorded draw command.
type DrawOp int

const (
	OpClear DrawOp = iota
	OpFillRect
	OpStrokeRect
	OpText
)

// DrawCommand is one recorded call against a Surface.
type DrawCommand struct {
	Op    DrawOp
	Rect  Rect
	Color Color
	X, Y  float64
	Text  string
	Style TextStyle
}

// DrawList is a Surface that records commands instead of drawing them.
// Useful for tests and for hosts that rasterize frames elsewhere.
type DrawList struct {
	Commands []DrawCommand
}

// Clear drops previously recorded commands and records a clear.
func (d *DrawList) Clear() {
	d.Commands = append(d.Commands[:0], DrawCommand{Op: OpClear})
}

// FillRect records a filled rectangle.
func (d *DrawList) FillRect(r Rect, c Color) {
	d.Commands = append(d.Commands, DrawCommand{Op: OpFillRect, Rect: r, Color: c})
}

// StrokeRect records a rectangle outline.
func (d *DrawList) StrokeRect(r Rect, c Color) {
	d.Commands = append(d.Commands, DrawCommand{Op: OpStrokeRect, Rect: r, Color: c})
}

// DrawText records a text command.
func (d *DrawList) DrawText(x, y float64, text string, style TextStyle) {
	d.Commands = append(d.Commands, DrawCommand{Op: OpText, X: x, Y: y, Text: text, Style: style, Color: style.Color})
}

// Texts returns the strings of all recorded text commands in order.
func (d *DrawList) Texts() []string {
	var out []string
	for _, c := range d.Commands {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Replay issues the recorded commands against another surface.
func (d *DrawList) Replay(dst Surface) {
	for _, c := range d.Commands {
		switch c.Op {
		case OpClear:
			dst.Clear()
		case OpFillRect:
			dst.FillRect(c.Rect, c.Color)
		case OpStrokeRect:
			dst.StrokeRect(c.Rect, c.Color)
		case OpText:
			dst.DrawText(c.X, c.Y, c.Text, c.Style)
		}
	}
}

var (
	_ Surface = (*ScaledSurface)(nil)
	_ Surface = (*DrawList)(nil)
)
