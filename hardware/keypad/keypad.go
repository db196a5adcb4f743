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

// Package keypad implements the console buttons. The buttons are wired in
// two 8-bit groups, each gated by a distinct mux line and reported on a
// distinct bit of the composite input read.
//
// The "New Game" button is not part of the keypad. It is wired directly to
// the MCU reset line and bypasses the multiplexed protocol entirely.
package keypad

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherchess/curated"
)

// NumGroups of buttons.
const NumGroups = 2

// Button identifies one of the console buttons.
type Button int

// List of valid Button values. The piece buttons are used when setting up or
// verifying positions.
const (
	King Button = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	TakeBack
	ReversePlay
	Sound
	Level
)

func (b Button) String() string {
	switch b {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	case TakeBack:
		return "Take Back"
	case ReversePlay:
		return "Reverse Play"
	case Sound:
		return "Sound"
	case Level:
		return "Level"
	}
	panic("unknown button")
}

// ParseButton converts a string to a Button value. Matching is case
// insensitive and ignores spaces, so "takeback" and "Take Back" are the same
// button.
func ParseButton(s string) (Button, error) {
	s = strings.ReplaceAll(strings.ToLower(s), " ", "")
	for b := King; b <= Level; b++ {
		if s == strings.ReplaceAll(strings.ToLower(b.String()), " ", "") {
			return b, nil
		}
	}
	return King, curated.Errorf(NotAButton, s)
}

// NotAButton is the error returned by ParseButton for unrecognised input.
const NotAButton = "keypad: not a button: %s"

// the group and level bit for each button, fixed by the board wiring.
var buttonWiring = map[Button]struct {
	group int
	mask  uint8
}{
	King:        {group: 0, mask: 0x02},
	Queen:       {group: 0, mask: 0x04},
	Rook:        {group: 0, mask: 0x08},
	Bishop:      {group: 0, mask: 0x10},
	Knight:      {group: 0, mask: 0x20},
	Pawn:        {group: 0, mask: 0x40},
	TakeBack:    {group: 1, mask: 0x10},
	ReversePlay: {group: 1, mask: 0x20},
	Sound:       {group: 1, mask: 0x40},
	Level:       {group: 1, mask: 0x80},
}

// Keypad implements the two button groups.
type Keypad struct {
	groups [NumGroups]uint8
}

// NewKeypad is the preferred method of initialisation of the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Snapshot returns a copy of the Keypad in its current state.
func (kp *Keypad) Snapshot() *Keypad {
	n := *kp
	return &n
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for g := 0; g < NumGroups; g++ {
		s.WriteString(fmt.Sprintf("group %d: %#02x  ", g, kp.groups[g]))
	}
	return strings.TrimSpace(s.String())
}

// Reset releases all buttons.
func (kp *Keypad) Reset() {
	for g := range kp.groups {
		kp.groups[g] = 0x00
	}
}

// ReadGroup returns the raw button levels for one group. Implements the
// ports.KeypadReader interface.
func (kp *Keypad) ReadGroup(group int) uint8 {
	return kp.groups[group&0x01]
}

// SetGroup overwrites the raw levels of one group. Used when restoring a
// savestate.
func (kp *Keypad) SetGroup(group int, mask uint8) {
	kp.groups[group&0x01] = mask
}

// Press the button. The level remains asserted until Release() is called.
func (kp *Keypad) Press(b Button) {
	w := buttonWiring[b]
	kp.groups[w.group] |= w.mask
}

// Release the button.
func (kp *Keypad) Release(b Button) {
	w := buttonWiring[b]
	kp.groups[w.group] &= ^w.mask
}

// IsPressed returns the current level of the button.
func (kp *Keypad) IsPressed(b Button) bool {
	w := buttonWiring[b]
	return kp.groups[w.group]&w.mask == w.mask
}
