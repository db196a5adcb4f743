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

package recorder_test

import (
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/jetsetilly/gopherchess/curated"
	"github.com/jetsetilly/gopherchess/hardware"
	"github.com/jetsetilly/gopherchess/hardware/keypad"
	"github.com/jetsetilly/gopherchess/hardware/mcu"
	"github.com/jetsetilly/gopherchess/hardware/sensorboard"
	"github.com/jetsetilly/gopherchess/recorder"
	"github.com/jetsetilly/gopherchess/test"
)

func newMachine(t *testing.T) (*hardware.ChessComputer, *mcu.ScanLoop) {
	t.Helper()
	sc := mcu.NewScanLoop()
	mc, err := hardware.NewChessComputer(sc)
	if err != nil {
		t.Fatalf("machine creation failed: %v", err)
	}
	return mc, sc
}

func TestRecordPlayback(t *testing.T) {
	mc, sc := newMachine(t)

	output := strings.Builder{}
	rec, err := recorder.NewRecorder(&output, mc)
	test.ExpectedSuccess(t, err)

	// a short session: pick up the king's pawn, put it down two ranks on,
	// press a button
	e2, _ := sensorboard.ParseSquare("e2")
	e4, _ := sensorboard.ParseSquare("e4")

	record := func(n int) {
		t.Helper()
		for i := 0; i < n; i++ {
			if err := mc.Step(); err != nil {
				t.Fatalf("step failed: %v", err)
			}
			rec.Step()
		}
	}

	test.ExpectedSuccess(t, rec.Touch(e2))
	record(200)
	test.ExpectedSuccess(t, rec.Release(e2))
	record(200)
	test.ExpectedSuccess(t, rec.Touch(e4))
	record(200)
	test.ExpectedSuccess(t, rec.Press(keypad.Knight))
	record(50)
	test.ExpectedSuccess(t, rec.ReleaseButton(keypad.Knight))
	record(200)

	// replay the session on a second machine
	mc2, sc2 := newMachine(t)
	plb, err := recorder.NewPlayback(strings.NewReader(output.String()), mc2)
	test.ExpectedSuccess(t, err)

	for !plb.EndOfEvents() {
		plb.Step()
		if err := mc2.Step(); err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}

	// run both machines to the same step count
	for i := 0; i < 200; i++ {
		plb.Step()
		if err := mc2.Step(); err != nil {
			t.Fatalf("step failed: %v", err)
		}
	}

	// both machines decoded the same board and keypad history
	if diff := deep.Equal(sc.Files, sc2.Files); diff != nil {
		t.Errorf("playback diverged from recording: %v", diff)
	}
	test.Equate(t, mc2.Board.ReadFile(4), mc.Board.ReadFile(4))
}

func TestPlaybackValidation(t *testing.T) {
	mc, _ := newMachine(t)

	_, err := recorder.NewPlayback(strings.NewReader("not a recording\n"), mc)
	test.ExpectedSuccess(t, curated.Is(err, recorder.NotAPlaybackFile))

	header := "gopherchess recording\n1.0\n"

	for _, line := range []string{
		"0, board, touch, i9\n",
		"0, board, launch, e2\n",
		"0, keypad, press, 99\n",
		"0, reset, press, -\n",
		"0, tape, press, -\n",
		"0, board, touch\n",
	} {
		_, err = recorder.NewPlayback(strings.NewReader(header+line), mc)
		test.ExpectedSuccess(t, curated.Has(err, recorder.PlaybackError))
	}

	// step stamps must not decrease
	lines := header + "10, board, touch, e2\n5, board, release, e2\n"
	_, err = recorder.NewPlayback(strings.NewReader(lines), mc)
	test.ExpectedSuccess(t, curated.Has(err, recorder.PlaybackError))
}
