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

package savestate_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherchess/curated"
	"github.com/jetsetilly/gopherchess/hardware"
	"github.com/jetsetilly/gopherchess/hardware/keypad"
	"github.com/jetsetilly/gopherchess/hardware/mcu"
	"github.com/jetsetilly/gopherchess/savestate"
	"github.com/jetsetilly/gopherchess/test"
)

func newMachine(t *testing.T) *hardware.ChessComputer {
	t.Helper()
	mc, err := hardware.NewChessComputer(mcu.NewScanLoop())
	if err != nil {
		t.Fatalf("machine creation failed: %v", err)
	}
	return mc
}

func TestRoundTrip(t *testing.T) {
	mc := newMachine(t)

	mc.Ports.WriteMux(0, 0x00)
	mc.Ports.WriteMux(1, 0x0f)
	mc.Ports.WriteControl(0x0010)
	mc.Board.SetFile(4, 0x42)
	mc.Keypad.Press(keypad.Sound)

	s := strings.Builder{}
	test.ExpectedSuccess(t, savestate.Save(mc, &s))

	// restore into a factory-fresh machine
	rs := newMachine(t)
	test.ExpectedSuccess(t, savestate.Load(rs, strings.NewReader(s.String())))

	test.Equate(t, rs.Ports.Mux, 0x0f)
	test.ExpectedSuccess(t, rs.Ports.Buzzer)
	test.ExpectedSuccess(t, rs.Buzzer.Level)
	test.Equate(t, rs.Board.ReadFile(4), 0x42)
	test.Equate(t, rs.Keypad.ReadGroup(1), 0x40)

	// untouched files carry the saved preset
	test.Equate(t, rs.Board.ReadFile(0), 0xc3)
}

func TestBadHeader(t *testing.T) {
	mc := newMachine(t)

	err := savestate.Load(mc, strings.NewReader("not a savestate\n"))
	test.ExpectedSuccess(t, curated.Is(err, savestate.NotASaveState))

	err = savestate.Load(mc, strings.NewReader("*** gopherchess savestate ***\n99.0\n"))
	test.ExpectedSuccess(t, curated.Is(err, savestate.UnsupportedVersion))
}

func TestBadEntry(t *testing.T) {
	mc := newMachine(t)

	for _, s := range []string{
		"mux :: not-a-number\n",
		"board.z :: 0x00\n",
		"keypad.7 :: 0x00\n",
		"unknown :: 0x00\n",
		"no separator\n",
	} {
		err := savestate.Load(mc, strings.NewReader(
			"*** gopherchess savestate ***\n1.0\n"+s))
		test.ExpectedSuccess(t, curated.Is(err, savestate.InvalidEntry))
	}
}

func TestFailedLoadLeavesMachineUntouched(t *testing.T) {
	mc := newMachine(t)
	mc.Board.SetFile(3, 0x55)

	// valid entries before the invalid one must not have been applied
	err := savestate.Load(mc, strings.NewReader(
		"*** gopherchess savestate ***\n1.0\n"+
			"mux :: 0x0f\n"+
			"board.d :: 0xaa\n"+
			"board.z :: 0x00\n"))
	test.ExpectedSuccess(t, curated.Is(err, savestate.InvalidEntry))

	test.Equate(t, mc.Ports.Mux, 0x00)
	test.Equate(t, mc.Board.ReadFile(3), 0x55)
}
