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

package sensorboard

import (
	"strings"

	"github.com/jetsetilly/gopherchess/curated"
)

// sentinal error returned by ParseSquare().
const NotASquare = "sensorboard: not a square: %s"

// Square identifies one square of the board in file/rank form.
type Square struct {
	File int
	Rank int
}

// ParseSquare converts algebraic notation ("e2") to a Square.
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Square{}, curated.Errorf(NotASquare, s)
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, curated.Errorf(NotASquare, s)
	}
	return Square{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}, nil
}

func (sq Square) String() string {
	return string(rune('a'+sq.File)) + string(rune('1'+sq.Rank))
}
