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

package rewind_test

import (
	"testing"

	"github.com/jetsetilly/gopherchess/curated"
	"github.com/jetsetilly/gopherchess/hardware"
	"github.com/jetsetilly/gopherchess/hardware/mcu"
	"github.com/jetsetilly/gopherchess/rewind"
	"github.com/jetsetilly/gopherchess/test"
)

func step(t *testing.T, mc *hardware.ChessComputer, rw *rewind.Rewind, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := mc.Step(); err != nil {
			t.Fatalf("step failed: %v", err)
		}
		rw.Step()
	}
}

func TestGoBack(t *testing.T) {
	mc, err := hardware.NewChessComputer(mcu.NewScanLoop())
	if err != nil {
		t.Fatalf("machine creation failed: %v", err)
	}

	rw := rewind.NewRewind(mc)
	test.Equate(t, rw.NumEntries(), 1)

	// e5 starts unoccupied in the chess preset
	test.ExpectedFailure(t, mc.Board.Sensed(4, 4))

	// run for a while before touching the square. the settle period is well
	// within the 400 steps that follow the touch
	step(t, mc, rw, 500)
	mc.Board.Touch(4, 4)
	step(t, mc, rw, 400)

	test.ExpectedSuccess(t, mc.Board.Sensed(4, 4))
	test.Equate(t, rw.NumEntries(), 10)

	// five snapshots back is before the touch was even scheduled
	test.ExpectedSuccess(t, rw.GoBack(5))
	test.ExpectedFailure(t, mc.Board.Sensed(4, 4))

	// the history after the restored snapshot is gone
	test.Equate(t, rw.NumEntries(), 5)

	// the machine keeps working after a rewind
	step(t, mc, rw, 100)
	test.Equate(t, rw.NumEntries(), 6)
}

func TestGoBackLimits(t *testing.T) {
	mc, err := hardware.NewChessComputer(mcu.NewScanLoop())
	if err != nil {
		t.Fatalf("machine creation failed: %v", err)
	}

	rw := rewind.NewRewind(mc)

	err = rw.GoBack(1)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, rewind.NoHistory))

	// GoBack(0) returns to the most recent snapshot, which always exists
	test.ExpectedSuccess(t, rw.GoBack(0))
}
