// This file is part of GopherChess.
//
// GopherChess is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherChess is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherChess.  If not, see <https://www.gnu.org/licenses/>.

// Package display implements the driver for the 2x8 bicolor LED matrix of
// the console. The matrix is addressed with a two-coordinate scheme: an
// 8-bit column mask (the mux pattern) and a 2-bit row enable value,
// addressing up to 16 independently controllable LED positions.
//
// The package holds driver state only. Rendering the LEDs to a screen is
// outside the scope of the emulation core.
package display

import (
	"fmt"
	"strings"
)

// NumRows of the LED matrix. together with the eight columns this gives the
// sixteen LEDs of the real machine.
const NumRows = 2

// Matrix implements the LED matrix driver.
type Matrix struct {
	// the column mask most recently driven. this is the mux pattern
	Col uint8

	// the row enable bits most recently driven. one bit per row
	Rows uint8

	// the LED state currently being driven. zero for rows that are not
	// enabled
	lit [NumRows]uint8

	// the last non-zero drive of each row. the firmware strobes the rows in
	// turn so the instantaneous state is a poor representation of what the
	// eye sees. image holds the persisted picture
	image [NumRows]uint8
}

// NewMatrix is the preferred method of initialisation of the Matrix type.
func NewMatrix() *Matrix {
	return &Matrix{}
}

// Snapshot returns a copy of the Matrix in its current state.
func (mx *Matrix) Snapshot() *Matrix {
	n := *mx
	return &n
}

func (mx *Matrix) String() string {
	s := strings.Builder{}
	for r := 0; r < NumRows; r++ {
		s.WriteString(fmt.Sprintf("row %d: %08b  ", r, mx.image[r]))
	}
	return strings.TrimSpace(s.String())
}

// Reset the matrix to an all-off state.
func (mx *Matrix) Reset() {
	mx.Col = 0x00
	mx.Rows = 0x00
	for r := range mx.lit {
		mx.lit[r] = 0x00
		mx.image[r] = 0x00
	}
}

// SetColumnMask drives the eight column lines. Implements the
// ports.DisplayWriter interface.
func (mx *Matrix) SetColumnMask(mask uint8) {
	mx.Col = mask
	mx.refresh()
}

// SetRowSelect drives the two row enable lines. Only the low two bits of the
// argument are significant. Implements the ports.DisplayWriter interface.
func (mx *Matrix) SetRowSelect(rows uint8) {
	mx.Rows = rows & 0x03
	mx.refresh()
}

func (mx *Matrix) refresh() {
	for r := 0; r < NumRows; r++ {
		if (mx.Rows>>r)&0x01 == 0x01 {
			mx.lit[r] = mx.Col
			mx.image[r] = mx.Col
		} else {
			mx.lit[r] = 0x00
		}
	}
}

// Lit returns the LED state currently being driven for one row. A row that
// is not enabled reads as zero.
func (mx *Matrix) Lit(row int) uint8 {
	return mx.lit[row&0x01]
}

// Image returns the persisted picture for one row: the columns last driven
// while the row was enabled. This is what a viewer of the multiplexed
// display would perceive.
func (mx *Matrix) Image(row int) uint8 {
	return mx.image[row&0x01]
}
