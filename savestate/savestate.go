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

// Package savestate saves and restores the transient state of the machine as
// a versioned text file, one "key :: value" entry per line.
//
// The serialized state is deliberately small: the mux pattern and buzzer
// level (the scalars the firmware can observe indirectly), the debounced
// board occupancy and the keypad levels. The LED matrix is not serialized
// because the firmware re-drives it several times per millisecond; its state
// is rebuilt within one sweep of resuming.
package savestate

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherchess/curated"
	"github.com/jetsetilly/gopherchess/hardware"
	"github.com/jetsetilly/gopherchess/hardware/keypad"
	"github.com/jetsetilly/gopherchess/hardware/sensorboard"
	"github.com/jetsetilly/gopherchess/logger"
)

// first two lines of a savestate file.
const (
	fileID  = "*** gopherchess savestate ***"
	version = "1.0"
)

// separator between the key and value of an entry.
const entrySep = " :: "

// sentinal error patterns returned by Load().
const (
	NotASaveState      = "savestate: not a savestate file"
	UnsupportedVersion = "savestate: unsupported version: %s"
	InvalidEntry       = "savestate: invalid entry: %s"
)

// Save the transient machine state to the io.Writer.
func Save(mc *hardware.ChessComputer, output io.Writer) error {
	s := strings.Builder{}

	s.WriteString(fileID)
	s.WriteString("\n")
	s.WriteString(version)
	s.WriteString("\n")

	s.WriteString(fmt.Sprintf("mux%s%#02x\n", entrySep, mc.Ports.Mux))
	s.WriteString(fmt.Sprintf("buzzer%s%v\n", entrySep, mc.Ports.Buzzer))
	for f := 0; f < sensorboard.NumFiles; f++ {
		s.WriteString(fmt.Sprintf("board.%c%s%#02x\n", 'a'+f, entrySep, mc.Board.ReadFile(f)))
	}
	for g := 0; g < keypad.NumGroups; g++ {
		s.WriteString(fmt.Sprintf("keypad.%d%s%#02x\n", g, entrySep, mc.Keypad.ReadGroup(g)))
	}

	if _, err := io.WriteString(output, s.String()); err != nil {
		return curated.Errorf("savestate: %v", err)
	}

	return nil
}

// Load machine state from the io.Reader, previously written by Save().
func Load(mc *hardware.ChessComputer, input io.Reader) error {
	scanner := bufio.NewScanner(input)

	// validate header
	if !scanner.Scan() || scanner.Text() != fileID {
		return curated.Errorf(NotASaveState)
	}
	if !scanner.Scan() {
		return curated.Errorf(NotASaveState)
	}
	if v := scanner.Text(); v != version {
		return curated.Errorf(UnsupportedVersion, v)
	}

	// entries are staged and applied only once the whole file has parsed. an
	// invalid line must not leave the machine half restored
	apply := make([]func(*hardware.ChessComputer), 0, 12)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		kv := strings.SplitN(line, entrySep, 2)
		if len(kv) != 2 {
			return curated.Errorf(InvalidEntry, line)
		}
		key := kv[0]
		value := kv[1]

		switch {
		case key == "mux":
			v, err := strconv.ParseUint(value, 0, 8)
			if err != nil {
				return curated.Errorf(InvalidEntry, line)
			}
			apply = append(apply, func(mc *hardware.ChessComputer) {
				mc.Ports.Mux = uint8(v)
			})

		case key == "buzzer":
			v, err := strconv.ParseBool(value)
			if err != nil {
				return curated.Errorf(InvalidEntry, line)
			}
			apply = append(apply, func(mc *hardware.ChessComputer) {
				mc.Ports.Buzzer = v
				mc.Buzzer.SetLevel(v)
			})

		case strings.HasPrefix(key, "board."):
			if len(key) != 7 || key[6] < 'a' || key[6] > 'h' {
				return curated.Errorf(InvalidEntry, line)
			}
			f := int(key[6] - 'a')
			v, err := strconv.ParseUint(value, 0, 8)
			if err != nil {
				return curated.Errorf(InvalidEntry, line)
			}
			apply = append(apply, func(mc *hardware.ChessComputer) {
				mc.Board.SetFile(f, uint8(v))
			})

		case strings.HasPrefix(key, "keypad."):
			g, err := strconv.Atoi(key[len("keypad."):])
			if err != nil || g < 0 || g >= keypad.NumGroups {
				return curated.Errorf(InvalidEntry, line)
			}
			v, err := strconv.ParseUint(value, 0, 8)
			if err != nil {
				return curated.Errorf(InvalidEntry, line)
			}
			apply = append(apply, func(mc *hardware.ChessComputer) {
				mc.Keypad.SetGroup(g, uint8(v))
			})

		default:
			return curated.Errorf(InvalidEntry, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("savestate: %v", err)
	}

	for _, a := range apply {
		a(mc)
	}

	logger.Log("savestate", "state restored")

	return nil
}
