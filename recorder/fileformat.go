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

// Package recorder records the user input events of a session (board
// touches, keypad presses, reset pulses) to a text file, stamped with the
// machine step at which they occurred. the playback type reapplies a
// recording to a machine, reproducing the session exactly. because the
// emulation is deterministic, a recording is a complete reproduction of a
// game.
package recorder

// a playback/recording file is a two line header followed by one line per
// event:
//
//	gopherchess recording
//	<version>
//	<step>, <device>, <action>, <argument>
const (
	fileID  = "gopherchess recording"
	version = "1.0"
)

const fieldSep = ", "

// fields of an event line.
const (
	fieldStep int = iota
	fieldDevice
	fieldAction
	fieldArg
	numFields
)

// values of the device field.
const (
	deviceBoard  = "board"
	deviceKeypad = "keypad"
	deviceReset  = "reset"
)

// values of the action field.
const (
	actionTouch   = "touch"
	actionRelease = "release"
	actionPress   = "press"
	actionAssert  = "assert"
	actionClear   = "clear"
)

// value of the argument field for events that carry no argument.
const noArg = "-"

// sentinal error patterns.
const (
	RecordingError   = "recorder: %v"
	PlaybackError    = "playback: %v"
	NotAPlaybackFile = "playback: not a playback file"
)
