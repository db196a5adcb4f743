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
	"github.com/jetsetilly/gopherchess/hardware/buzzer"
	"github.com/jetsetilly/gopherchess/hardware/display"
	"github.com/jetsetilly/gopherchess/hardware/keypad"
	"github.com/jetsetilly/gopherchess/hardware/ports"
	"github.com/jetsetilly/gopherchess/hardware/sensorboard"
)

// State stores the chess computer sub-systems. It is produced by the
// Snapshot() function and can be restored with the Plumb() function.
//
// Note that the MCU is not part of the snapshot process. It is an external
// collaborator and the scripted scan loop rebuilds its decoded state from
// the port traffic of a single sweep.
type State struct {
	Ports   *ports.Ports
	Board   *sensorboard.Board
	Display *display.Matrix
	Keypad  *keypad.Keypad
	Buzzer  *buzzer.Buzzer
}

// Snapshot creates a copy of a previously snapshotted machine State.
func (s *State) Snapshot() *State {
	return &State{
		Ports:   s.Ports.Snapshot(),
		Board:   s.Board.Snapshot(),
		Display: s.Display.Snapshot(),
		Keypad:  s.Keypad.Snapshot(),
		Buzzer:  s.Buzzer.Snapshot(),
	}
}

// Snapshot the state of the machine sub-systems.
func (mc *ChessComputer) Snapshot() *State {
	return &State{
		Ports:   mc.Ports.Snapshot(),
		Board:   mc.Board.Snapshot(),
		Display: mc.Display.Snapshot(),
		Keypad:  mc.Keypad.Snapshot(),
		Buzzer:  mc.Buzzer.Snapshot(),
	}
}

// Plumb a previously snapshotted state into the machine. The state is
// snapshotted again before plumbing so the argument remains usable.
func (mc *ChessComputer) Plumb(state *State) {
	s := state.Snapshot()

	// the sampling tap is a live attachment rather than machine state. carry
	// it over to the restored buzzer
	s.Buzzer.Plumb(mc.Buzzer.Tap())

	mc.Ports = s.Ports
	mc.Board = s.Board
	mc.Display = s.Display
	mc.Keypad = s.Keypad
	mc.Buzzer = s.Buzzer

	// reconnect the ports to the new peripheral instances. the MCU handlers
	// resolve mc.Ports lazily and need no re-attachment
	mc.Ports.Plumb(mc.Board, mc.Keypad, mc.Display, mc.Buzzer)
}
