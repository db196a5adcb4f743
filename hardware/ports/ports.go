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

import (
	"fmt"
)

// number of 4-bit mux slots, keypad groups and board files. these are fixed
// by the board wiring and are not configurable.
const (
	NumMuxSlots     = 2
	NumKeypadGroups = 2
	NumBoardFiles   = 8
)

// Ports implements the I/O port adapter between the MCU and the peripherals.
// Peripherals are attached at construction and are fixed for the lifetime of
// the session.
type Ports struct {
	board   BoardReader
	keypad  KeypadReader
	display DisplayWriter
	audio   AudioWriter

	// Mux is the current 8-bit line-select pattern. each nibble arrives
	// active-low on a separate output port and is stored inverted, so a set
	// bit means the line is active. slot 0 occupies bits 0-3 and slot 1
	// occupies bits 4-7
	Mux uint8

	// Buzzer is the level most recently written to the audio peripheral.
	// kept here because the firmware can observe it indirectly and it must
	// be part of any savestate
	Buzzer bool
}

// NewPorts is the preferred method of initialisation of the Ports type.
func NewPorts(board BoardReader, keypad KeypadReader, display DisplayWriter, audio AudioWriter) *Ports {
	return &Ports{
		board:   board,
		keypad:  keypad,
		display: display,
		audio:   audio,
	}
}

// Snapshot returns a copy of the Ports sub-system in its current state.
func (p *Ports) Snapshot() *Ports {
	n := *p
	return &n
}

// Plumb new peripherals into the Ports sub-system. Used when restoring a
// snapshot into a live machine.
func (p *Ports) Plumb(board BoardReader, keypad KeypadReader, display DisplayWriter, audio AudioWriter) {
	p.board = board
	p.keypad = keypad
	p.display = display
	p.audio = audio
}

func (p *Ports) String() string {
	return fmt.Sprintf("MUX: %#02x  buzzer: %v", p.Mux, p.Buzzer)
}

// Reset the port state. Peripherals are notified of the cleared mux pattern
// and buzzer level.
func (p *Ports) Reset() {
	p.Mux = 0x00
	p.Buzzer = false
	p.display.SetColumnMask(p.Mux)
	p.audio.SetLevel(p.Buzzer)
}

// WriteMux writes a 4-bit value to one of the two mux nibble slots. Values
// outside four bits are masked, not rejected. The nibble arrives active-low
// and is stored inverted. Writing one slot never disturbs the stored bits of
// the other slot.
//
// The display is notified immediately with the full updated pattern, which
// it interprets as the newly active column address.
func (p *Ports) WriteMux(slot int, data uint8) {
	shift := uint((slot & 0x01) * 4)
	p.Mux = (p.Mux & ^(uint8(0x0f) << shift)) | ((data^0x0f)&0x0f)<<shift
	p.display.SetColumnMask(p.Mux)
}

// WriteControl writes the 16-bit control value (the D port of the MCU). Only
// bits 2, 3 and 4 are meaningful:
//
//	D4     buzzer level, forwarded verbatim to the audio peripheral
//	D2,D3  LED row select, active-low
//
// The operation is idempotent and is expected to be invoked on every change
// of the relevant output bits, including redundant repeats.
func (p *Ports) WriteControl(data uint16) {
	p.Buzzer = data&0x0010 == 0x0010
	p.audio.SetLevel(p.Buzzer)

	p.display.SetRowSelect(uint8(^data>>2) & 0x03)
}

// ReadInput samples the sensor board and keypad for every currently active
// mux line and returns the 16-bit composite. The bus convention is
// active-low so the accumulated value is complemented before returning: with
// no lines selected the result is all ones.
//
// Repeated reads without intervening writes return identical values,
// provided the peripherals report the same state.
func (p *Ports) ReadInput() uint16 {
	var data uint16

	// D6,D7: keypad groups. a group contributes a single collapsed bit when
	// any of its pressed buttons coincide with an active mux line
	for i := 0; i < NumKeypadGroups; i++ {
		if p.Mux&p.keypad.ReadGroup(i) != 0 {
			data |= 0x0040 << i
		}
	}

	// D8-D15: sensor board. mux bit i samples file i^7 (reversed board
	// wiring)
	for i := 0; i < NumBoardFiles; i++ {
		if (p.Mux>>i)&0x01 == 0x01 {
			data |= uint16(p.board.ReadFile(i^7)) << 8
		}
	}

	return ^data
}
