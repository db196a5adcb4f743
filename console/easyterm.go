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

package console

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// terminal is a thin wrapper for "github.com/pkg/term/termios". it wraps the
// termios methods in functions with friendlier names and keeps copies of the
// terminal attributes for the modes the console switches between.
type terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// initialise the fields in the terminal struct
func (pt *terminal) initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the terminal modes we'll be using
	termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// print writes the formatted string to the output file
func (pt *terminal) print(s string, a ...interface{}) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// canonicalMode puts terminal into normal, everyday canonical mode
func (pt *terminal) canonicalMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// cbreakMode puts terminal into cbreak mode. individual keypresses are
// readable without waiting for a newline
func (pt *terminal) cbreakMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// flush makes sure the terminal's input/output buffers are empty
func (pt *terminal) flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}
