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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopherchess/curated"
	"github.com/jetsetilly/gopherchess/hardware/keypad"
	"github.com/jetsetilly/gopherchess/test"
)

func TestPressRelease(t *testing.T) {
	kp := keypad.NewKeypad()

	kp.Press(keypad.King)
	test.Equate(t, kp.ReadGroup(0), 0x02)
	test.Equate(t, kp.ReadGroup(1), 0x00)
	test.ExpectedSuccess(t, kp.IsPressed(keypad.King))

	kp.Press(keypad.Pawn)
	test.Equate(t, kp.ReadGroup(0), 0x42)

	kp.Release(keypad.King)
	test.Equate(t, kp.ReadGroup(0), 0x40)
	test.ExpectedFailure(t, kp.IsPressed(keypad.King))
}

func TestGroupWiring(t *testing.T) {
	kp := keypad.NewKeypad()

	// the function buttons live in group 1, on the upper four bits
	kp.Press(keypad.TakeBack)
	kp.Press(keypad.Level)
	test.Equate(t, kp.ReadGroup(0), 0x00)
	test.Equate(t, kp.ReadGroup(1), 0x90)

	kp.Reset()
	test.Equate(t, kp.ReadGroup(1), 0x00)
}

func TestParseButton(t *testing.T) {
	b, err := keypad.ParseButton("knight")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(b), int(keypad.Knight))

	b, err = keypad.ParseButton("Take Back")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(b), int(keypad.TakeBack))

	b, err = keypad.ParseButton("takeback")
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(b), int(keypad.TakeBack))

	_, err = keypad.ParseButton("castle")
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, keypad.NotAButton))
}
