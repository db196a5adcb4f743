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

package hardware_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/jetsetilly/gopherchess/hardware"
	"github.com/jetsetilly/gopherchess/hardware/clocks"
	"github.com/jetsetilly/gopherchess/hardware/keypad"
	"github.com/jetsetilly/gopherchess/hardware/mcu"
	"github.com/jetsetilly/gopherchess/hardware/sensorboard"
	"github.com/jetsetilly/gopherchess/test"
)

// number of steps in one complete sweep of the scan loop.
const sweepSteps = 8

// number of steps before a board change is visible: the settle period plus a
// full sweep to decode it.
var settleSteps = int(sensorboard.SettlePeriod/clocks.CyclesPerStep) + sweepSteps

func newMachine(t *testing.T) (*hardware.ChessComputer, *mcu.ScanLoop) {
	t.Helper()
	sc := mcu.NewScanLoop()
	mc, err := hardware.NewChessComputer(sc)
	if err != nil {
		t.Fatalf("machine creation failed: %v", err)
	}
	return mc, sc
}

func step(t *testing.T, mc *hardware.ChessComputer, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := mc.Step(); err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}
}

func TestScanDecodesPreset(t *testing.T) {
	mc, sc := newMachine(t)

	// one complete sweep decodes the chess preset on every file
	step(t, mc, sweepSteps)

	want := [8]uint8{0xc3, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3}
	if diff := deep.Equal(sc.Files, want); diff != nil {
		t.Errorf("preset not decoded: %v\nscan: %s", diff, spew.Sdump(sc))
	}
}

func TestScanDecodesTouch(t *testing.T) {
	mc, sc := newMachine(t)
	mc.Board.Reset()

	sq, err := sensorboard.ParseSquare("e4")
	test.ExpectedSuccess(t, err)
	mc.Board.Touch(sq.File, sq.Rank)

	// not visible before the settle period
	step(t, mc, sweepSteps)
	test.Equate(t, sc.Files[4], 0x00)

	step(t, mc, settleSteps)
	test.Equate(t, sc.Files[4], 0x08)
}

func TestScanDecodesKeypad(t *testing.T) {
	mc, sc := newMachine(t)

	mc.Keypad.Press(keypad.King)
	step(t, mc, sweepSteps)
	test.Equate(t, sc.Keys[0], 0x02)
	test.Equate(t, sc.Keys[1], 0x00)

	mc.Keypad.Release(keypad.King)
	mc.Keypad.Press(keypad.Level)
	step(t, mc, sweepSteps)
	test.Equate(t, sc.Keys[0], 0x00)
	test.Equate(t, sc.Keys[1], 0x80)
}

func TestBuzzerOnChange(t *testing.T) {
	mc, _ := newMachine(t)

	// the first sweep detects the preset appearing and the second sweep
	// sounds the buzzer
	step(t, mc, sweepSteps)
	step(t, mc, 1)
	test.ExpectedSuccess(t, mc.Buzzer.Level)

	// with no further changes the buzzer falls silent
	step(t, mc, sweepSteps*4)
	test.ExpectedFailure(t, mc.Buzzer.Level)
}

func TestDisplayFollowsScan(t *testing.T) {
	mc, _ := newMachine(t)

	// the scan loop strobes the matrix with the sweep pattern itself: after
	// a full sweep every column of both rows has been driven
	step(t, mc, sweepSteps)
	test.Equate(t, mc.Display.Image(0)|mc.Display.Image(1), 0xff)
}

func TestResetLine(t *testing.T) {
	mc, sc := newMachine(t)

	step(t, mc, sweepSteps)
	test.Equate(t, sc.Sweeps, 1)

	// the scan loop holds while the reset line is asserted
	mc.AssertReset()
	step(t, mc, sweepSteps)
	test.Equate(t, sc.Sweeps, 1)

	// releasing the line restarts the firmware
	mc.ClearReset()
	test.Equate(t, sc.Sweeps, 0)
	step(t, mc, sweepSteps)
	test.Equate(t, sc.Sweeps, 1)
}

func TestSnapshotPlumb(t *testing.T) {
	mc, _ := newMachine(t)
	mc.Board.Reset()

	mc.Board.Touch(0, 0)
	step(t, mc, settleSteps)
	state := mc.Snapshot()

	// diverge the live machine from the snapshot
	mc.Board.Touch(7, 7)
	step(t, mc, settleSteps)
	test.Equate(t, mc.Board.ReadFile(7), 0x80)

	// restoring the snapshot rewinds the board
	mc.Plumb(state)
	test.Equate(t, mc.Board.ReadFile(7), 0x00)
	test.Equate(t, mc.Board.ReadFile(0), 0x01)

	// the restored machine is connected and runs
	mc.Board.Touch(7, 7)
	step(t, mc, settleSteps)
	test.Equate(t, mc.Board.ReadFile(7), 0x80)

	// the state argument was not consumed by the plumbing
	test.Equate(t, state.Board.ReadFile(7), 0x00)
}

// countingTap counts the samples it receives from the buzzer.
type countingTap struct {
	samples int
}

func (tap *countingTap) Sample(_ bool) {
	tap.samples++
}

func TestPlumbKeepsBuzzerTap(t *testing.T) {
	mc, _ := newMachine(t)

	tap := &countingTap{}
	mc.Buzzer.Plumb(tap)

	// 650 cycles per step, one sample every 20 cycles
	step(t, mc, 100)
	test.Equate(t, tap.samples, 3250)

	// the tap is not part of the snapshot but it must survive a plumbing
	state := mc.Snapshot()
	mc.Plumb(state)

	step(t, mc, 100)
	test.Equate(t, tap.samples, 6500)
}
