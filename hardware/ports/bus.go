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

package ports

// BoardReader is the sensor board capability required by the Ports type. The
// board may apply a settle delay internally; the read always reflects
// whatever the board currently reports.
type BoardReader interface {
	// ReadFile returns the occupancy/press mask for one file of the board.
	// rank r of the file is reported in bit r
	ReadFile(file int) uint8
}

// KeypadReader is the keypad capability required by the Ports type.
type KeypadReader interface {
	// ReadGroup returns the raw button levels for one of the two keypad
	// groups
	ReadGroup(group int) uint8
}

// DisplayWriter is the LED matrix capability required by the Ports type.
type DisplayWriter interface {
	// SetColumnMask drives the eight column lines of the matrix
	SetColumnMask(mask uint8)

	// SetRowSelect drives the two row enable lines. only the low two bits
	// are significant
	SetRowSelect(rows uint8)
}

// AudioWriter is the buzzer capability required by the Ports type.
type AudioWriter interface {
	// SetLevel drives the single-bit buzzer signal. the level is re-asserted
	// on every control write, including redundant repeats
	SetLevel(on bool)
}
