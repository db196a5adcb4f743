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

// Package buzzer implements the piezo buzzer of the console. The buzzer is
// driven by a single bit of the control port: the firmware produces tones by
// toggling that bit at audible rates. The package has no waveform shaping of
// its own, it simply latches the level and optionally makes it available to
// a sampling tap at a fixed rate.
package buzzer

import (
	"fmt"

	"github.com/jetsetilly/gopherchess/hardware/clocks"
)

// SampleFreq is the rate at which an attached Tap receives the buzzer level,
// in samples per second of simulated time.
const SampleFreq = 32500

// number of MCU cycles between samples.
const cyclesPerSample = int64(clocks.Osc*1000000) / SampleFreq

// Tap receives the buzzer level at SampleFreq. The wavwriter package
// implements this interface.
type Tap interface {
	Sample(level bool)
}

// Buzzer implements the 1-bit sound output of the console.
type Buzzer struct {
	// Level is the most recently driven value. no memory beyond the current
	// on/off state
	Level bool

	tap   Tap
	phase int64
}

// NewBuzzer is the preferred method of initialisation of the Buzzer type.
func NewBuzzer() *Buzzer {
	return &Buzzer{}
}

// Snapshot returns a copy of the Buzzer in its current state. The tap is not
// part of the snapshot.
func (bz *Buzzer) Snapshot() *Buzzer {
	n := *bz
	n.tap = nil
	return &n
}

// Plumb a sampling tap into the Buzzer. A nil Tap detaches any existing tap.
func (bz *Buzzer) Plumb(tap Tap) {
	bz.tap = tap
}

// Tap returns the currently attached sampling tap. nil if there is none.
func (bz *Buzzer) Tap() Tap {
	return bz.tap
}

func (bz *Buzzer) String() string {
	return fmt.Sprintf("buzzer: %v", bz.Level)
}

// Reset the buzzer to silence.
func (bz *Buzzer) Reset() {
	bz.Level = false
	bz.phase = 0
}

// SetLevel drives the buzzer signal. Implements the ports.AudioWriter
// interface.
func (bz *Buzzer) SetLevel(on bool) {
	bz.Level = on
}

// Step the buzzer forward the specified number of machine cycles, feeding
// the attached tap with level samples.
func (bz *Buzzer) Step(cycles int64) {
	if bz.tap == nil {
		return
	}

	bz.phase += cycles
	for bz.phase >= cyclesPerSample {
		bz.phase -= cyclesPerSample
		bz.tap.Sample(bz.Level)
	}
}
