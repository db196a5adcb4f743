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

// Package ports implements the I/O multiplexing between the HD44840 MCU and
// the peripherals of the Computachess II console. A handful of output lines
// select which scan line is active at any instant and the same select bits
// are reused to drive the LED matrix and to sample the keypad buttons and
// the sensor board.
//
// The MCU asserts the mux pattern four bits at a time, on two separate
// output ports (R2 and R3 on the real machine). Each nibble is active-low on
// the wire and is stored inverted. The full 8-bit pattern doubles as the
// column address of the LED matrix.
//
// The 16-bit D port is split: the upper eight bits sample the sensor board,
// one line per active mux bit; the lower bits carry the two LED row select
// bits, the buzzer bit and the two keypad group bits.
//
// A quirk of the board wiring is that sensor board files are connected in
// reverse order to the mux lines: mux bit i samples file i^7. This is a
// fixed fact of this hardware revision and not a general pattern.
package ports
