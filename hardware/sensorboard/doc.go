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

// Package sensorboard implements the 8x8 button sensor chessboard. Each
// square is a momentary button; the firmware detects moves by the order in
// which squares are pressed.
//
// Sensor changes are debounced: a touched or released square becomes visible
// through ReadFile() only after a settle period of simulated time has
// elapsed. The settle period is owned entirely by this package; readers
// always see whatever the board currently reports.
//
// Files are indexed 0 to 7 (chess files 'a' to 'h') and the squares of a
// file are packed into one byte, rank r in bit r.
package sensorboard
