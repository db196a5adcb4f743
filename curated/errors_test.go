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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherchess/curated"
	"github.com/jetsetilly/gopherchess/test"
)

const testPattern = "test: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedFailure(t, curated.Is(e, "some other pattern: %v"))

	// plain errors are not curated
	p := errors.New("plain error")
	test.ExpectedFailure(t, curated.IsAny(p))
	test.ExpectedFailure(t, curated.Is(p, testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf("wrapped: %v", e)

	// f does not match the inner pattern directly but the pattern is
	// somewhere in the chain
	test.ExpectedFailure(t, curated.Is(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, "wrapped: %v"))
}

func TestDeduplication(t *testing.T) {
	// adjacent duplicate parts should be normalised away
	e := curated.Errorf("savestate: %v", curated.Errorf("savestate: %v", "not a savestate file"))
	test.Equate(t, e.Error(), "savestate: not a savestate file")

	// non-adjacent duplicates are left alone
	f := curated.Errorf("ports: %v", curated.Errorf("savestate: %v", "not a savestate file"))
	test.Equate(t, f.Error(), "ports: savestate: not a savestate file")
}
