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

// Package console implements the interactive terminal surface of the
// emulation. Board sensors and keypad buttons are operated with short typed
// commands and the machine state can be inspected, saved and restored.
//
// When a recorder is attached, every input event issued through the console
// goes through the recorder and so ends up in the recording.
package console

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherchess/curated"
	"github.com/jetsetilly/gopherchess/hardware"
	"github.com/jetsetilly/gopherchess/hardware/display"
	"github.com/jetsetilly/gopherchess/hardware/keypad"
	"github.com/jetsetilly/gopherchess/hardware/sensorboard"
	"github.com/jetsetilly/gopherchess/recorder"
	"github.com/jetsetilly/gopherchess/rewind"
	"github.com/jetsetilly/gopherchess/savestate"
)

// number of machine steps for the "NEW" command to hold the reset line. any
// value above zero would do, the line is level sensitive.
const resetHold = 5

// Console is the interactive terminal loop.
type Console struct {
	term terminal
	mc   *hardware.ChessComputer

	// may be nil in which case input events are applied directly
	rec *recorder.Recorder

	// rewind history. not available while recording because rewinding would
	// break the step alignment of the recording
	rw *rewind.Rewind

	// all terminal input arrives through this channel, fed by a single
	// goroutine. the command loop and runUntilKeypress() would otherwise
	// compete for reads on the same file
	input    chan byte
	inputErr error

	running bool
}

// NewConsole is the preferred method of initialisation for the Console type.
// rec may be nil.
func NewConsole(mc *hardware.ChessComputer, rec *recorder.Recorder) (*Console, error) {
	cns := &Console{
		mc:  mc,
		rec: rec,
	}

	if err := cns.term.initialise(os.Stdin, os.Stdout); err != nil {
		return nil, curated.Errorf("console: %v", err)
	}

	if rec == nil {
		cns.rw = rewind.NewRewind(mc)
	}

	// the input pump is the only reader of the terminal. closing the channel
	// happens after the error field is set so receivers that see the close
	// can safely read inputErr
	cns.input = make(chan byte)
	go func() {
		rdr := bufio.NewReader(cns.term.input)
		for {
			b, err := rdr.ReadByte()
			if err != nil {
				cns.inputErr = err
				close(cns.input)
				return
			}
			cns.input <- b
		}
	}()

	return cns, nil
}

// Run the console loop. Returns when the user quits or on error.
func (cns *Console) Run() error {
	cns.term.canonicalMode()
	defer cns.term.canonicalMode()

	cns.term.print("GopherChess. type HELP for commands\n")

	cns.running = true

	for cns.running {
		cns.term.print("» ")
		line, err := cns.readLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf("console: %v", err)
		}

		if err := cns.parseCommand(line); err != nil {
			cns.term.print("error: %v\n", err)
		}
	}

	return nil
}

// readLine assembles one line of input from the pump channel.
func (cns *Console) readLine() (string, error) {
	s := strings.Builder{}
	for {
		b, ok := <-cns.input
		if !ok {
			return s.String(), cns.inputErr
		}
		if b == '\n' {
			return s.String(), nil
		}
		s.WriteByte(b)
	}
}

func (cns *Console) parseCommand(line string) error {
	toks := strings.Fields(line)
	if len(toks) == 0 {
		return nil
	}

	arg := func(n int) (string, error) {
		if len(toks) <= n {
			return "", curated.Errorf("%s: missing argument", toks[0])
		}
		return toks[n], nil
	}

	switch strings.ToUpper(toks[0]) {
	case "HELP":
		cns.printHelp()

	case "QUIT", "EXIT":
		cns.running = false

	case "STEP":
		n := 1
		if len(toks) > 1 {
			var err error
			n, err = strconv.Atoi(toks[1])
			if err != nil || n < 1 {
				return curated.Errorf("STEP: not a step count: %s", toks[1])
			}
		}
		return cns.step(n)

	case "RUN":
		return cns.runUntilKeypress()

	case "TOUCH":
		a, err := arg(1)
		if err != nil {
			return err
		}
		sq, err := sensorboard.ParseSquare(a)
		if err != nil {
			return err
		}
		return cns.touch(sq)

	case "RELEASE":
		a, err := arg(1)
		if err != nil {
			return err
		}
		sq, err := sensorboard.ParseSquare(a)
		if err != nil {
			return err
		}
		return cns.release(sq)

	case "PRESS":
		if _, err := arg(1); err != nil {
			return err
		}
		b, err := keypad.ParseButton(strings.Join(toks[1:], " "))
		if err != nil {
			return err
		}
		return cns.press(b)

	case "LIFT":
		if _, err := arg(1); err != nil {
			return err
		}
		b, err := keypad.ParseButton(strings.Join(toks[1:], " "))
		if err != nil {
			return err
		}
		return cns.lift(b)

	case "NEW":
		return cns.newGame()

	case "REWIND":
		n := 1
		if len(toks) > 1 {
			var err error
			n, err = strconv.Atoi(toks[1])
			if err != nil || n < 0 {
				return curated.Errorf("REWIND: not a snapshot count: %s", toks[1])
			}
		}
		if cns.rw == nil {
			return curated.Errorf("REWIND: not available while recording")
		}
		return cns.rw.GoBack(n)

	case "BOARD":
		cns.term.print("%s\n", cns.mc.Board.String())
		cns.printBoard()

	case "DISPLAY":
		cns.printDisplay()

	case "PORTS":
		cns.term.print("%s\n", cns.mc.Ports.String())

	case "KEYPAD":
		cns.term.print("%s\n", cns.mc.Keypad.String())

	case "SAVE":
		a, err := arg(1)
		if err != nil {
			return err
		}
		return cns.save(a)

	case "LOAD":
		a, err := arg(1)
		if err != nil {
			return err
		}
		return cns.load(a)

	default:
		return curated.Errorf("unknown command: %s", toks[0])
	}

	return nil
}

func (cns *Console) printHelp() {
	cns.term.print(`commands:
  TOUCH <square>    press a board sensor (eg. TOUCH e2)
  RELEASE <square>  release a board sensor
  PRESS <button>    press a keypad button (eg. PRESS knight)
  LIFT <button>     release a keypad button
  NEW               pulse the New Game line
  REWIND [n]        go back n snapshots (a tenth of a second each)
  STEP [n]          step the machine (1ms of machine time per step)
  RUN               run until a key is pressed
  BOARD             show the sensed squares
  DISPLAY           show the LED picture
  PORTS             show the I/O port state
  KEYPAD            show the pressed buttons
  SAVE <file>       save machine state
  LOAD <file>       load machine state
  QUIT
`)
}

// step the machine, keeping the recorder's step count in sync.
func (cns *Console) step(n int) error {
	for i := 0; i < n; i++ {
		if err := cns.mc.Step(); err != nil {
			return err
		}
		if cns.rec != nil {
			cns.rec.Step()
		}
		if cns.rw != nil {
			cns.rw.Step()
		}
	}
	return nil
}

// runUntilKeypress puts the terminal in cbreak mode and runs the machine
// until any key is pressed.
func (cns *Console) runUntilKeypress() error {
	cns.term.cbreakMode()
	defer cns.term.canonicalMode()
	defer cns.term.flush()

	cns.term.print("running. press any key to stop\n")

	for {
		if err := cns.step(1); err != nil {
			return err
		}

		select {
		case _, ok := <-cns.input:
			if !ok {
				if cns.inputErr != io.EOF {
					return curated.Errorf("console: %v", cns.inputErr)
				}
				cns.running = false
			}
			return nil
		default:
		}
	}
}

func (cns *Console) touch(sq sensorboard.Square) error {
	if cns.rec != nil {
		return cns.rec.Touch(sq)
	}
	cns.mc.Board.Touch(sq.File, sq.Rank)
	return nil
}

func (cns *Console) release(sq sensorboard.Square) error {
	if cns.rec != nil {
		return cns.rec.Release(sq)
	}
	cns.mc.Board.Release(sq.File, sq.Rank)
	return nil
}

func (cns *Console) press(b keypad.Button) error {
	if cns.rec != nil {
		return cns.rec.Press(b)
	}
	cns.mc.Keypad.Press(b)
	return nil
}

func (cns *Console) lift(b keypad.Button) error {
	if cns.rec != nil {
		return cns.rec.ReleaseButton(b)
	}
	cns.mc.Keypad.Release(b)
	return nil
}

// newGame pulses the reset line, holding it for a handful of steps.
func (cns *Console) newGame() error {
	if cns.rec != nil {
		if err := cns.rec.Reset(true); err != nil {
			return err
		}
	} else {
		cns.mc.AssertReset()
	}

	if err := cns.step(resetHold); err != nil {
		return err
	}

	if cns.rec != nil {
		return cns.rec.Reset(false)
	}
	cns.mc.ClearReset()
	return nil
}

// printBoard draws the sensed squares as a grid, rank 8 at the top.
func (cns *Console) printBoard() {
	for r := sensorboard.NumRanks - 1; r >= 0; r-- {
		cns.term.print("%d  ", r+1)
		for f := 0; f < sensorboard.NumFiles; f++ {
			if cns.mc.Board.Sensed(f, r) {
				cns.term.print("x ")
			} else {
				cns.term.print(". ")
			}
		}
		cns.term.print("\n")
	}
	cns.term.print("   a b c d e f g h\n")
}

// printDisplay draws the persisted LED picture, one line per row.
func (cns *Console) printDisplay() {
	for r := 0; r < display.NumRows; r++ {
		img := cns.mc.Display.Image(r)
		cns.term.print("row %d  ", r)
		for b := 0; b < 8; b++ {
			if (img>>b)&0x01 == 0x01 {
				cns.term.print("●")
			} else {
				cns.term.print("·")
			}
		}
		cns.term.print("\n")
	}
}

func (cns *Console) save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("console: %v", err)
	}
	defer f.Close()
	return savestate.Save(cns.mc, f)
}

func (cns *Console) load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return curated.Errorf("console: %v", err)
	}
	defer f.Close()

	if err := savestate.Load(cns.mc, f); err != nil {
		return err
	}

	// the loaded state invalidates the rewind history
	if cns.rw != nil {
		cns.rw.Reset()
	}
	return nil
}
