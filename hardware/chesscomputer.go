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

package hardware

import (
	"github.com/jetsetilly/gopherchess/curated"
	"github.com/jetsetilly/gopherchess/hardware/buzzer"
	"github.com/jetsetilly/gopherchess/hardware/clocks"
	"github.com/jetsetilly/gopherchess/hardware/display"
	"github.com/jetsetilly/gopherchess/hardware/keypad"
	"github.com/jetsetilly/gopherchess/hardware/mcu"
	"github.com/jetsetilly/gopherchess/hardware/ports"
	"github.com/jetsetilly/gopherchess/hardware/sensorboard"
)

// ChessComputer is the main container for the emulated components of the
// console.
type ChessComputer struct {
	// the MCU is an external collaborator. the machine only attaches port
	// handlers to it
	MCU mcu.MCU

	Ports   *ports.Ports
	Board   *sensorboard.Board
	Display *display.Matrix
	Keypad  *keypad.Keypad
	Buzzer  *buzzer.Buzzer
}

// NewChessComputer creates a new machine and everything associated with the
// hardware. The supplied MCU has the machine's port wiring attached: R2 and
// R3 carry the mux nibbles and the D port carries everything else.
func NewChessComputer(m mcu.MCU) (*ChessComputer, error) {
	if m == nil {
		return nil, curated.Errorf("chesscomputer: %v", "no MCU attached")
	}

	mc := &ChessComputer{
		MCU:     m,
		Board:   sensorboard.NewBoard(),
		Display: display.NewMatrix(),
		Keypad:  keypad.NewKeypad(),
		Buzzer:  buzzer.NewBuzzer(),
	}

	mc.Ports = ports.NewPorts(mc.Board, mc.Keypad, mc.Display, mc.Buzzer)
	mc.attachMCU()

	mc.Board.PresetChess()

	return mc, nil
}

// the closures resolve mc.Ports at call time, so plumbing a new Ports
// instance into the machine does not require re-attaching.
func (mc *ChessComputer) attachMCU() {
	mc.MCU.AttachPortR(mcu.PortR2, func(data uint8) {
		mc.Ports.WriteMux(0, data)
	})
	mc.MCU.AttachPortR(mcu.PortR3, func(data uint8) {
		mc.Ports.WriteMux(1, data)
	})
	mc.MCU.AttachPortD(
		func(data uint16) {
			mc.Ports.WriteControl(data)
		},
		func() uint16 {
			return mc.Ports.ReadInput()
		},
	)
}

// Reset the machine. The board occupancy and any held keypad buttons are
// part of the physical world and survive a reset.
func (mc *ChessComputer) Reset() error {
	mc.MCU.Reset()
	mc.Ports.Reset()
	mc.Display.Reset()
	mc.Buzzer.Reset()
	return nil
}

// AssertReset holds the MCU reset line. The New Game button on the real
// machine is wired directly to the reset input, bypassing the multiplexed
// I/O protocol entirely.
func (mc *ChessComputer) AssertReset() {
	mc.MCU.SetResetLine(true)
}

// ClearReset releases the MCU reset line.
func (mc *ChessComputer) ClearReset() {
	mc.MCU.SetResetLine(false)
}

// Step the machine forward one scan step. The MCU performs its port traffic
// first and then the time-sensitive peripherals are advanced by the same
// number of cycles.
func (mc *ChessComputer) Step() error {
	if err := mc.MCU.Step(); err != nil {
		return err
	}

	mc.Board.Step(clocks.CyclesPerStep)
	mc.Buzzer.Step(clocks.CyclesPerStep)

	return nil
}
