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

package sensorboard

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherchess/hardware/clocks"
)

// SettlePeriod is the time, in MCU cycles, between a sensor being touched or
// released and the change becoming visible through ReadFile(). 150ms, per
// the original hardware.
const SettlePeriod = 150 * clocks.CyclesPerMilli

// number of files and ranks of the board.
const (
	NumFiles = 8
	NumRanks = 8
)

// a sensor change waiting for the settle period to expire.
type change struct {
	file    int
	rank    int
	pressed bool

	// cycle count at which the change becomes visible
	visible int64
}

// Board implements the button sensor chessboard.
type Board struct {
	// current debounced state. one mask per file, rank r in bit r
	files [NumFiles]uint8

	// sensor changes not yet visible
	pending []change

	// elapsed machine cycles. advanced by Step()
	cycles int64
}

// NewBoard is the preferred method of initialisation of the Board type. The
// board begins empty; use PresetChess() for the standard starting occupancy.
func NewBoard() *Board {
	return &Board{
		pending: make([]change, 0, NumFiles),
	}
}

// Snapshot returns a copy of the Board in its current state.
func (bd *Board) Snapshot() *Board {
	n := *bd
	n.pending = make([]change, len(bd.pending))
	copy(n.pending, bd.pending)
	return &n
}

func (bd *Board) String() string {
	s := strings.Builder{}
	for f := 0; f < NumFiles; f++ {
		s.WriteString(fmt.Sprintf("%c: %#02x  ", 'a'+f, bd.files[f]))
	}
	return strings.TrimSpace(s.String())
}

// Reset the board to an empty state, discarding any pending sensor changes.
func (bd *Board) Reset() {
	for f := range bd.files {
		bd.files[f] = 0x00
	}
	bd.pending = bd.pending[:0]
}

// PresetChess sets the standard chess starting occupancy: ranks 1, 2, 7 and
// 8 occupied on every file. The preset takes effect immediately, without a
// settle period.
func (bd *Board) PresetChess() {
	for f := range bd.files {
		bd.files[f] = 0xc3
	}
	bd.pending = bd.pending[:0]
}

// ReadFile returns the debounced press mask for one file of the board.
// Implements the ports.BoardReader interface.
func (bd *Board) ReadFile(file int) uint8 {
	return bd.files[file&0x07]
}

// SetFile overwrites the debounced state of one file, bypassing the settle
// period. Used when restoring a savestate.
func (bd *Board) SetFile(file int, mask uint8) {
	bd.files[file&0x07] = mask
}

// Touch the sensor of one square. The press becomes visible after the settle
// period.
func (bd *Board) Touch(file int, rank int) {
	bd.schedule(file, rank, true)
}

// Release the sensor of one square. The release becomes visible after the
// settle period.
func (bd *Board) Release(file int, rank int) {
	bd.schedule(file, rank, false)
}

// Sensed returns true if the square is currently reported as pressed or
// occupied. Like ReadFile() this reflects the debounced state.
func (bd *Board) Sensed(file int, rank int) bool {
	return (bd.files[file&0x07]>>(rank&0x07))&0x01 == 0x01
}

func (bd *Board) schedule(file int, rank int, pressed bool) {
	bd.pending = append(bd.pending, change{
		file:    file & 0x07,
		rank:    rank & 0x07,
		pressed: pressed,
		visible: bd.cycles + SettlePeriod,
	})
}

// Step the board forward the specified number of machine cycles, applying
// any sensor changes whose settle period has expired.
func (bd *Board) Step(cycles int64) {
	bd.cycles += cycles

	i := 0
	for _, c := range bd.pending {
		if c.visible > bd.cycles {
			bd.pending[i] = c
			i++
			continue
		}
		if c.pressed {
			bd.files[c.file] |= 0x01 << c.rank
		} else {
			bd.files[c.file] &= ^(uint8(0x01) << c.rank)
		}
	}
	bd.pending = bd.pending[:i]
}
