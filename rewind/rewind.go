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

// Package rewind keeps a history of machine states so that earlier moments
// of a session can be returned to. Snapshots are taken at a fixed step
// frequency and the oldest entries are forgotten once the history is full.
package rewind

import (
	"github.com/jetsetilly/gopherchess/curated"
	"github.com/jetsetilly/gopherchess/hardware"
	"github.com/jetsetilly/gopherchess/logger"
)

// NoHistory is returned by GoBack() when the request reaches past the oldest
// stored snapshot.
const NoHistory = "rewind: no history that far back"

// the maximum number of entries to store before the earliest entries are
// forgotten. there is an overhead of two entries to facilitate appending
const overhead = 2
const maxEntries = 100 + overhead

// how many machine steps between snapshots. one step is one millisecond of
// machine time so the granularity of the history is a tenth of a second
const frequency = 100

type entry struct {
	step  int64
	state *hardware.State
}

// Rewind contains a history of machine states for the emulation.
type Rewind struct {
	mc *hardware.ChessComputer

	// circular array of snapshotted entries
	entries [maxEntries]*entry
	start   int
	end     int

	// number of machine steps seen since the last Reset()
	steps int64
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The current state of the machine becomes the oldest entry of the history.
func NewRewind(mc *hardware.ChessComputer) *Rewind {
	r := &Rewind{mc: mc}
	r.Reset()
	return r
}

// Reset discards the history and makes the current machine state the first
// entry.
func (r *Rewind) Reset() {
	r.start = 0
	r.end = 0
	r.steps = 0
	r.append(&entry{step: 0, state: r.mc.Snapshot()})
}

// Step advances the history by one machine step. Call once for every machine
// step. A snapshot is taken when the step count crosses the snapshot
// frequency.
func (r *Rewind) Step() {
	r.steps++
	if r.steps%frequency == 0 {
		r.append(&entry{step: r.steps, state: r.mc.Snapshot()})
	}
}

func (r *Rewind) append(e *entry) {
	r.entries[r.end] = e
	r.end = (r.end + 1) % maxEntries
	if r.end == r.start {
		r.start = (r.start + 1) % maxEntries
	}
}

// NumEntries returns the number of snapshots in the history.
func (r *Rewind) NumEntries() int {
	return (r.end - r.start + maxEntries) % maxEntries
}

// GoBack plumbs the snapshot n entries before the most recent one back into
// the machine. GoBack(0) returns to the most recent snapshot. The history
// after the restored snapshot is discarded.
func (r *Rewind) GoBack(n int) error {
	num := r.NumEntries()
	if n < 0 || n >= num {
		return curated.Errorf(NoHistory)
	}

	idx := (r.end - 1 - n + maxEntries) % maxEntries
	e := r.entries[idx]

	r.mc.Plumb(e.state)
	r.steps = e.step
	r.end = (idx + 1) % maxEntries

	logger.Logf("rewind", "went back to step %d", e.step)

	return nil
}
