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

// Package mcu defines the narrow contract between the chess computer and the
// HD44840 microcontroller that drives it. Execution of the firmware itself
// (instruction semantics, the Intelligent Software chess engine) is outside
// the scope of this project: the emulation core only cares about the I/O
// traffic the firmware generates on its ports.
//
// The ScanLoop type is a scripted stand-in for the firmware's I/O behaviour.
// It performs the same port traffic the real program does: sweep the mux
// lines one at a time, sample the composite input for each line, and drive
// the LED and buzzer outputs. It is used by the run and performance modes
// and by tests. It does not play chess.
package mcu
