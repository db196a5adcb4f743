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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherchess/curated"
	"github.com/jetsetilly/gopherchess/hardware"
	"github.com/jetsetilly/gopherchess/hardware/keypad"
	"github.com/jetsetilly/gopherchess/hardware/sensorboard"
	"github.com/jetsetilly/gopherchess/logger"
)

// a single parsed event from a playback file.
type event struct {
	step   int64
	device string
	action string
	arg    string

	// the line number of the event, for error messages
	line int
}

// Playback reapplies a previously recorded session to the machine.
type Playback struct {
	mc     *hardware.ChessComputer
	events []event

	// index of the next event to apply
	idx int

	// the machine step count. advanced by the Step() function
	step int64
}

// NewPlayback is the preferred method of initialisation of the Playback
// type. The entire input is parsed and validated before playback begins.
func NewPlayback(input io.Reader, mc *hardware.ChessComputer) (*Playback, error) {
	plb := &Playback{
		mc:     mc,
		events: make([]event, 0),
	}

	scanner := bufio.NewScanner(input)

	// validate header
	if !scanner.Scan() || scanner.Text() != fileID {
		return nil, curated.Errorf(NotAPlaybackFile)
	}
	if !scanner.Scan() || scanner.Text() != version {
		return nil, curated.Errorf(PlaybackError, "unsupported version")
	}

	lineNum := 2
	var prevStep int64
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) != numFields {
			return nil, curated.Errorf(PlaybackError, curated.Errorf("wrong number of fields (line %d)", lineNum))
		}

		step, err := strconv.ParseInt(fields[fieldStep], 10, 64)
		if err != nil || step < prevStep {
			return nil, curated.Errorf(PlaybackError, curated.Errorf("bad step stamp (line %d)", lineNum))
		}
		prevStep = step

		ev := event{
			step:   step,
			device: fields[fieldDevice],
			action: fields[fieldAction],
			arg:    fields[fieldArg],
			line:   lineNum,
		}

		// validate the event now rather than during playback
		if err := plb.check(ev); err != nil {
			return nil, err
		}

		plb.events = append(plb.events, ev)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}

	logger.Logf("playback", "%d events", len(plb.events))

	return plb, nil
}

func (plb *Playback) check(ev event) error {
	switch ev.device {
	case deviceBoard:
		if ev.action != actionTouch && ev.action != actionRelease {
			return curated.Errorf(PlaybackError, curated.Errorf("unknown board action (line %d)", ev.line))
		}
		if _, err := sensorboard.ParseSquare(ev.arg); err != nil {
			return curated.Errorf(PlaybackError, curated.Errorf("bad square (line %d)", ev.line))
		}
	case deviceKeypad:
		if ev.action != actionPress && ev.action != actionRelease {
			return curated.Errorf(PlaybackError, curated.Errorf("unknown keypad action (line %d)", ev.line))
		}
		b, err := strconv.Atoi(ev.arg)
		if err != nil || b < int(keypad.King) || b > int(keypad.Level) {
			return curated.Errorf(PlaybackError, curated.Errorf("bad button (line %d)", ev.line))
		}
	case deviceReset:
		if ev.action != actionAssert && ev.action != actionClear {
			return curated.Errorf(PlaybackError, curated.Errorf("unknown reset action (line %d)", ev.line))
		}
	default:
		return curated.Errorf(PlaybackError, curated.Errorf("unknown device (line %d)", ev.line))
	}
	return nil
}

func (plb *Playback) apply(ev event) {
	switch ev.device {
	case deviceBoard:
		// the square was validated during parsing
		sq, _ := sensorboard.ParseSquare(ev.arg)
		if ev.action == actionTouch {
			plb.mc.Board.Touch(sq.File, sq.Rank)
		} else {
			plb.mc.Board.Release(sq.File, sq.Rank)
		}
	case deviceKeypad:
		b, _ := strconv.Atoi(ev.arg)
		if ev.action == actionPress {
			plb.mc.Keypad.Press(keypad.Button(b))
		} else {
			plb.mc.Keypad.Release(keypad.Button(b))
		}
	case deviceReset:
		if ev.action == actionAssert {
			plb.mc.AssertReset()
		} else {
			plb.mc.ClearReset()
		}
	}
}

// Step applies the events recorded for the current machine step and advances
// the step count. Call once for every machine step.
func (plb *Playback) Step() {
	for plb.idx < len(plb.events) && plb.events[plb.idx].step == plb.step {
		plb.apply(plb.events[plb.idx])
		plb.idx++
	}
	plb.step++
}

// EndOfEvents returns true when every recorded event has been applied.
func (plb *Playback) EndOfEvents() bool {
	return plb.idx >= len(plb.events)
}
