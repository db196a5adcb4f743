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

// Package hardware is the container for the emulated components of the CXG
// Computachess II: the I/O ports, the button sensor chessboard, the LED
// matrix, the keypad and the buzzer, all orchestrated around the MCU that
// runs the firmware.
//
// The sub-systems are tightly coupled around one multiplexing invariant: a
// single 8-bit line-select pattern, asserted by the MCU a nibble at a time,
// is reused both to drive the LED matrix and to gate the sampling of the
// board and keypad. The ports package implements that invariant; everything
// else hangs off it.
package hardware
