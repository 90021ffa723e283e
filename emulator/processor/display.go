/*
Copyright (c) 2019-2021 Andreas T Jonsson

This software is provided 'as-is', without any express or implied
warranty. In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
*/

package processor

const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Frame is a row-major copy of the display.
type Frame [DisplayWidth * DisplayHeight]bool

func (f *Frame) At(x, y int) bool {
	return f[y*DisplayWidth+x]
}

type Display struct {
	cells Frame
}

func (d *Display) Clear() {
	d.cells = Frame{}
}

func (d *Display) At(x, y int) bool {
	return d.cells.At(x, y)
}

// Toggle flips the cell at x,y and reports whether it was set before.
// Coordinates must be inside the display.
func (d *Display) Toggle(x, y int) bool {
	idx := y*DisplayWidth + x
	old := d.cells[idx]
	d.cells[idx] = !old
	return old
}

// Snapshot returns a copy that is safe to hand to another goroutine.
func (d *Display) Snapshot() Frame {
	return d.cells
}
