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

package mcu

// MCU is the contract between the chess computer and the microcontroller
// emulation. The machine attaches handlers for the I/O ports the firmware
// uses; the MCU implementation calls them, synchronously and in program
// order, as it executes.
type MCU interface {
	// AttachPortR attaches a handler for writes to one of the 4-bit output
	// ports. the Computachess II uses ports R2 and R3 for the mux pattern
	AttachPortR(port int, write func(data uint8))

	// AttachPortD attaches the handlers for the 16-bit bidirectional D port
	AttachPortD(write func(data uint16), read func() uint16)

	// SetResetLine asserts or clears the reset input. the line is asserted
	// for as long as the New Game button is held
	SetResetLine(assert bool)

	// Reset the MCU to its power-on state
	Reset()

	// Step the MCU forward one scan step
	Step() error
}

// R port numbers used by the machine wiring.
const (
	PortR2 = 2
	PortR3 = 3
)
