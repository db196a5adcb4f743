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

package logger

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherchess/test"
)

func TestRepeatCollapse(t *testing.T) {
	l := newLogger(maxCentral)

	l.log("ports", "mux updated")
	l.log("ports", "mux updated")
	l.log("ports", "mux updated")
	l.log("board", "settle expired")

	test.Equate(t, len(l.entries), 2)

	s := strings.Builder{}
	l.write(&s)
	test.ExpectedSuccess(t, strings.Contains(s.String(), "(repeat x3)"))
}

func TestTail(t *testing.T) {
	l := newLogger(maxCentral)

	l.log("a", "1")
	l.log("b", "2")
	l.log("c", "3")

	s := strings.Builder{}
	l.tail(&s, 2)
	test.Equate(t, s.String(), "b: 2\nc: 3\n")

	// tail longer than the number of entries is capped
	s.Reset()
	l.tail(&s, 100)
	test.Equate(t, s.String(), "a: 1\nb: 2\nc: 3\n")
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(4)

	l.log("tag", "1")
	l.log("tag", "2")
	l.log("tag", "3")
	l.log("tag", "4")
	l.log("tag", "5")

	test.Equate(t, len(l.entries), 4)
	test.Equate(t, l.entries[0].detail, "2")
}
