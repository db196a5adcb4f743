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

// Package wavwriter records the buzzer level stream to disk as a WAV file.
// Note that the samples are buffered in memory in their entirety and written
// to disk on End(). It is therefore probably only suitable for testing
// purposes.
//
// The buzzer is a 1-bit device. No shaping or filtering is applied: each
// sample is the raw level at the tap rate.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherchess/curated"
	"github.com/jetsetilly/gopherchess/hardware/buzzer"
	"github.com/jetsetilly/gopherchess/logger"
)

// 8-bit WAV data is unsigned. the two levels of the buzzer map to the
// extremes.
const (
	levelLow  = 0x00
	levelHigh = 0xff
)

// WavWriter implements the buzzer.Tap interface.
type WavWriter struct {
	filename string
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, buzzer.SampleFreq),
	}
	return aw, nil
}

// Sample implements the buzzer.Tap interface.
func (aw *WavWriter) Sample(level bool) {
	if level {
		aw.buffer = append(aw.buffer, levelHigh)
	} else {
		aw.buffer = append(aw.buffer, levelLow)
	}
}

// End writes the buffered samples to disk.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, buzzer.SampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  buzzer.SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "%d samples written to %s", len(aw.buffer), aw.filename)

	return nil
}
