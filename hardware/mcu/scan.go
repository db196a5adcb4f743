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

import (
	"fmt"

	"github.com/jetsetilly/gopherchess/curated"
)

// number of scan steps the buzzer is held high after a change has been
// detected.
const beepSteps = 8

// ScanLoop is a scripted implementation of the MCU interface. Each Step()
// performs the I/O work of one line of the firmware's scan loop.
type ScanLoop struct {
	writeR [4]func(data uint8)
	writeD func(data uint16)
	readD  func() uint16

	// the line currently being scanned
	line int

	// decoded peripheral state from the most recently completed sweep.
	// Files is indexed by board file, Keys by keypad group
	Files [8]uint8
	Keys  [2]uint8

	// decode in progress
	workFiles [8]uint8
	workKeys  [2]uint8

	// count of completed sweeps
	Sweeps int

	// remaining steps of buzzer output
	beep int

	// state of the reset input
	resetLine bool
}

// NewScanLoop is the preferred method of initialisation of the ScanLoop
// type.
func NewScanLoop() *ScanLoop {
	return &ScanLoop{}
}

func (sc *ScanLoop) String() string {
	return fmt.Sprintf("scan: line=%d sweeps=%d", sc.line, sc.Sweeps)
}

// AttachPortR implements the MCU interface.
func (sc *ScanLoop) AttachPortR(port int, write func(data uint8)) {
	sc.writeR[port&0x03] = write
}

// AttachPortD implements the MCU interface.
func (sc *ScanLoop) AttachPortD(write func(data uint16), read func() uint16) {
	sc.writeD = write
	sc.readD = read
}

// SetResetLine implements the MCU interface. While the line is asserted the
// scan loop does nothing; when it clears, the loop starts over, as the real
// MCU does on leaving reset.
func (sc *ScanLoop) SetResetLine(assert bool) {
	if sc.resetLine && !assert {
		sc.Reset()
	}
	sc.resetLine = assert
}

// Reset implements the MCU interface.
func (sc *ScanLoop) Reset() {
	sc.line = 0
	sc.Files = [8]uint8{}
	sc.Keys = [2]uint8{}
	sc.workFiles = [8]uint8{}
	sc.workKeys = [2]uint8{}
	sc.Sweeps = 0
	sc.beep = 0
}

// Step implements the MCU interface.
func (sc *ScanLoop) Step() error {
	if sc.writeR[PortR2] == nil || sc.writeR[PortR3] == nil || sc.writeD == nil || sc.readD == nil {
		return curated.Errorf("scan: ports not attached")
	}

	if sc.resetLine {
		return nil
	}

	// select the next scan line. the mux nibbles are active-low on the wire
	mask := uint8(0x01) << sc.line
	sc.writeR[PortR2]((mask & 0x0f) ^ 0x0f)
	sc.writeR[PortR3]((mask >> 4) ^ 0x0f)

	// drive the LED matrix with the sweep itself and sound the buzzer if a
	// change was detected on the last sweep. the row select bits are
	// active-low
	rows := uint8(0x01) << (sc.line & 0x01)
	control := uint16(^rows&0x03) << 2
	if sc.beep > 0 {
		control |= 0x0010
		sc.beep--
	}
	sc.writeD(control)

	// sample the composite input for the selected line. the bus is
	// active-low
	data := ^sc.readD()

	// the upper byte is the sensor reading for the reversed file
	sc.workFiles[sc.line^7] = uint8(data >> 8)

	// a set keypad group bit means the group has a pressed button on this
	// line
	for g := 0; g < 2; g++ {
		if data&(0x0040<<g) != 0 {
			sc.workKeys[g] |= mask
		}
	}

	sc.line++
	if sc.line >= 8 {
		sc.line = 0
		sc.Sweeps++

		if sc.workFiles != sc.Files || sc.workKeys != sc.Keys {
			sc.beep = beepSteps
		}

		sc.Files = sc.workFiles
		sc.Keys = sc.workKeys
		sc.workFiles = [8]uint8{}
		sc.workKeys = [2]uint8{}
	}

	return nil
}
