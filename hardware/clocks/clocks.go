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

// Package clocks defines the constant values that define the speed of the
// MCU clock in the Computachess II console.
//
// The oscillator value is an approximation. The real machine derives the
// clock from a 62K resistor network and the frequency drifts with
// temperature and component tolerance. 650kHz is the generally accepted
// value.
package clocks

const (
	// main MCU oscillator in MHz
	Osc = 0.650
)

const (
	// number of MCU cycles in one millisecond of simulated time
	CyclesPerMilli = int64(Osc * 1000000 / 1000)

	// number of MCU cycles consumed by one firmware scan step. the real
	// firmware spends roughly a millisecond on each line of the scan loop
	CyclesPerStep = CyclesPerMilli
)
