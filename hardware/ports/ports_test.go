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

package ports_test

import (
	"testing"

	"github.com/jetsetilly/gopherchess/hardware/ports"
	"github.com/jetsetilly/gopherchess/test"
)

// mockPeripherals implements the BoardReader, KeypadReader, DisplayWriter
// and AudioWriter interfaces.
type mockPeripherals struct {
	files  [8]uint8
	groups [2]uint8

	colMask   uint8
	rowSelect uint8
	level     bool
}

func (m *mockPeripherals) ReadFile(file int) uint8 {
	return m.files[file]
}

func (m *mockPeripherals) ReadGroup(group int) uint8 {
	return m.groups[group]
}

func (m *mockPeripherals) SetColumnMask(mask uint8) {
	m.colMask = mask
}

func (m *mockPeripherals) SetRowSelect(rows uint8) {
	m.rowSelect = rows
}

func (m *mockPeripherals) SetLevel(on bool) {
	m.level = on
}

func newPorts() (*ports.Ports, *mockPeripherals) {
	m := &mockPeripherals{}
	return ports.NewPorts(m, m, m, m), m
}

func TestWriteMux(t *testing.T) {
	p, m := newPorts()

	// every 4-bit value, in both slots, is stored inverted in its own slice
	for v := uint8(0); v < 0x10; v++ {
		p.WriteMux(0, v)
		test.Equate(t, p.Mux&0x0f, (v^0x0f)&0x0f)

		p.WriteMux(1, v)
		test.Equate(t, p.Mux>>4, (v^0x0f)&0x0f)

		// writing one slot must not disturb the other
		test.Equate(t, p.Mux&0x0f, (v^0x0f)&0x0f)

		// the display sees the full pattern immediately
		test.Equate(t, m.colMask, p.Mux)
	}
}

func TestWriteMuxIdempotence(t *testing.T) {
	p, _ := newPorts()

	p.WriteMux(0, 0x0a)
	first := p.Mux
	p.WriteMux(0, 0x0a)
	test.Equate(t, p.Mux, first)
}

func TestWriteMuxMasking(t *testing.T) {
	p, _ := newPorts()

	// values outside four bits are masked, not rejected
	p.WriteMux(0, 0xfa)
	test.Equate(t, p.Mux, 0x05)
}

func TestRowSelectTable(t *testing.T) {
	p, m := newPorts()

	// the row select bits are active-low: 00->3, 01->2, 10->1, 11->0
	rows := map[uint16]uint8{
		0x00: 0x03,
		0x04: 0x02,
		0x08: 0x01,
		0x0c: 0x00,
	}

	for data, expected := range rows {
		p.WriteControl(data)
		test.Equate(t, m.rowSelect, expected)
	}
}

func TestBuzzer(t *testing.T) {
	p, m := newPorts()

	p.WriteControl(0x0010)
	test.ExpectedSuccess(t, m.level)
	test.ExpectedSuccess(t, p.Buzzer)

	p.WriteControl(0x0000)
	test.ExpectedFailure(t, m.level)
	test.ExpectedFailure(t, p.Buzzer)

	// every write re-asserts the level. no edge detection
	p.WriteControl(0x0010)
	p.WriteControl(0x0010)
	test.ExpectedSuccess(t, m.level)
}

func TestReadInputNoLines(t *testing.T) {
	p, m := newPorts()

	// with no lines selected, nothing is sampled, even with signals present
	m.files[3] = 0xff
	m.groups[0] = 0xff
	test.Equate(t, p.ReadInput(), 0xffff)
}

func TestReadInputPurity(t *testing.T) {
	p, m := newPorts()

	m.files[5] = 0x42
	p.WriteMux(0, ^uint8(0x04) & 0x0f) // select mux bit 2 (file 5)

	first := p.ReadInput()
	test.Equate(t, p.ReadInput(), first)
}

func TestBoardFileReversal(t *testing.T) {
	p, m := newPorts()

	// with only mux bit i set, the upper byte of the composite (before
	// complement) equals the board reading for file i^7
	for i := 0; i < 8; i++ {
		for f := range m.files {
			m.files[f] = 0
		}
		m.files[i^7] = 0x81

		mask := uint8(1) << i
		p.WriteMux(0, (mask&0x0f)^0x0f)
		p.WriteMux(1, (mask>>4)^0x0f)
		test.Equate(t, p.Mux, mask)

		test.Equate(t, ^p.ReadInput()>>8, 0x81)
	}
}

func TestKeypadGroupGating(t *testing.T) {
	p, m := newPorts()

	// mux bit 0 set, all others clear
	p.WriteMux(0, 0x0e)
	p.WriteMux(1, 0x0f)
	test.Equate(t, p.Mux, 0x01)

	// a group-0 button on an active line collapses to bit 6. bit 7 stays
	// clear
	m.groups[0] = 0x01
	data := ^p.ReadInput()
	test.Equate(t, data&0x0040, 0x0040)
	test.Equate(t, data&0x0080, 0x0000)

	// a group-0 button on an inactive line contributes nothing
	m.groups[0] = 0x02
	test.Equate(t, p.ReadInput(), 0xffff)

	// group 1 reports on bit 7
	m.groups[0] = 0x00
	m.groups[1] = 0x01
	data = ^p.ReadInput()
	test.Equate(t, data&0x0080, 0x0080)
	test.Equate(t, data&0x0040, 0x0000)
}

func TestEndToEnd(t *testing.T) {
	p, m := newPorts()

	// slot 0 = 0x0 stores 0xf in the low nibble; slot 1 = 0xf stores 0x0 in
	// the high nibble
	p.WriteMux(0, 0x00)
	p.WriteMux(1, 0x0f)
	test.Equate(t, p.Mux, 0x0f)

	// mux bit 0 samples file 7. files 4-6 (mux bits 1-3) read zero
	m.files[7] = 0x01

	test.Equate(t, p.ReadInput(), 0xfeff)
}

func TestSnapshot(t *testing.T) {
	p, m := newPorts()

	p.WriteMux(0, 0x03)
	p.WriteControl(0x0010)

	s := p.Snapshot()
	test.Equate(t, s.Mux, p.Mux)
	test.Equate(t, s.Buzzer, p.Buzzer)

	// mutating the original must not affect the snapshot
	p.WriteMux(0, 0x0f)
	test.Equate(t, s.Mux, 0x0c)

	// a snapshot can be plumbed back into live peripherals
	s.Plumb(m, m, m, m)
	s.WriteMux(1, 0x00)
	test.Equate(t, m.colMask, s.Mux)
}
