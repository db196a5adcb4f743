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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherchess/curated"
	"github.com/jetsetilly/gopherchess/hardware"
	"github.com/jetsetilly/gopherchess/hardware/mcu"
)

// lead time before measurement starts. gives the host a chance to settle
// down (cache warming, GC of startup allocations)
const leadTime = 2 * time.Second

// only check the timer channel every checkBrake machine steps. checking the
// channel is relatively expensive
const checkBrake = 1000

// one machine step is one millisecond of machine time
const stepsPerSecond = 1000.0

// Check the performance of the emulation.
//
// Emulation will run for the specified duration and will create a cpu
// profile, a memory profile, or both, as requested.
func Check(output io.Writer, profileCPU bool, profileMem bool, duration string) error {
	sc := mcu.NewScanLoop()
	mc, err := hardware.NewChessComputer(sc)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var steps int64
	var startSteps int64
	var startSweeps int

	runner := func() error {
		// the timer channel signals false when the lead time has elapsed and
		// measurement should start. it signals true when the measurement
		// period has finished
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(leadTime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		brake := 0

		return mc.Run(func() (bool, error) {
			steps++
			brake++
			if brake >= checkBrake {
				brake = 0

				select {
				case v := <-timerChan:
					if v {
						return false, nil
					}
					startSteps = steps
					startSweeps = sc.Sweeps
				default:
				}
			}
			return true, nil
		})
	}

	err = cpuProfile(profileCPU, "performance_cpu.profile", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = memProfile(profileMem, "performance_mem.profile")
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numSteps := steps - startSteps
	numSweeps := sc.Sweeps - startSweeps
	ratio := float64(numSteps) / dur.Seconds() / stepsPerSecond
	output.Write([]byte(fmt.Sprintf("%d steps, %d sweeps in %.2f seconds (%.0fx real speed)\n",
		numSteps, numSweeps, dur.Seconds(), ratio)))

	return nil
}
