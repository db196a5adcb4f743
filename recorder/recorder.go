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

package recorder

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopherchess/curated"
	"github.com/jetsetilly/gopherchess/hardware"
	"github.com/jetsetilly/gopherchess/hardware/keypad"
	"github.com/jetsetilly/gopherchess/hardware/sensorboard"
	"github.com/jetsetilly/gopherchess/logger"
)

// Recorder applies user input events to the machine and writes them to the
// output, stamped with the machine step at which they occurred.
type Recorder struct {
	mc     *hardware.ChessComputer
	output io.Writer

	// the machine step count. advanced by the Step() function, which must be
	// called in lockstep with the machine
	step int64
}

// NewRecorder is the preferred method of initialisation of the Recorder
// type. The file header is written immediately.
func NewRecorder(output io.Writer, mc *hardware.ChessComputer) (*Recorder, error) {
	rec := &Recorder{
		mc:     mc,
		output: output,
	}

	header := fmt.Sprintf("%s\n%s\n", fileID, version)
	if _, err := io.WriteString(output, header); err != nil {
		return nil, curated.Errorf(RecordingError, err)
	}

	logger.Log("recorder", "recording started")

	return rec, nil
}

// Step advances the recorder's step count. Call once for every machine step.
func (rec *Recorder) Step() {
	rec.step++
}

func (rec *Recorder) writeEvent(device string, action string, arg string) error {
	fields := make([]string, numFields)
	fields[fieldStep] = fmt.Sprintf("%d", rec.step)
	fields[fieldDevice] = device
	fields[fieldAction] = action
	fields[fieldArg] = arg

	line := strings.Join(fields, fieldSep) + "\n"
	if _, err := io.WriteString(rec.output, line); err != nil {
		return curated.Errorf(RecordingError, err)
	}

	return nil
}

// Touch a board square, recording the event.
func (rec *Recorder) Touch(sq sensorboard.Square) error {
	rec.mc.Board.Touch(sq.File, sq.Rank)
	return rec.writeEvent(deviceBoard, actionTouch, sq.String())
}

// Release a board square, recording the event.
func (rec *Recorder) Release(sq sensorboard.Square) error {
	rec.mc.Board.Release(sq.File, sq.Rank)
	return rec.writeEvent(deviceBoard, actionRelease, sq.String())
}

// Press a keypad button, recording the event.
func (rec *Recorder) Press(b keypad.Button) error {
	rec.mc.Keypad.Press(b)
	return rec.writeEvent(deviceKeypad, actionPress, fmt.Sprintf("%d", int(b)))
}

// ReleaseButton releases a keypad button, recording the event.
func (rec *Recorder) ReleaseButton(b keypad.Button) error {
	rec.mc.Keypad.Release(b)
	return rec.writeEvent(deviceKeypad, actionRelease, fmt.Sprintf("%d", int(b)))
}

// Reset asserts or clears the MCU reset line, recording the event.
func (rec *Recorder) Reset(assert bool) error {
	action := actionClear
	if assert {
		rec.mc.AssertReset()
		action = actionAssert
	} else {
		rec.mc.ClearReset()
	}
	return rec.writeEvent(deviceReset, action, noArg)
}
