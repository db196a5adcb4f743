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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherchess/console"
	"github.com/jetsetilly/gopherchess/hardware"
	"github.com/jetsetilly/gopherchess/hardware/mcu"
	"github.com/jetsetilly/gopherchess/logger"
	"github.com/jetsetilly/gopherchess/modalflag"
	"github.com/jetsetilly/gopherchess/performance"
	"github.com/jetsetilly/gopherchess/recorder"
	"github.com/jetsetilly/gopherchess/statsview"
	"github.com/jetsetilly/gopherchess/version"
	"github.com/jetsetilly/gopherchess/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PERFORMANCE", "VIZ", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VIZ":
		err = viz(md)

	case "VERSION":
		ver, rev, _ := version.Version()
		fmt.Printf("%s %s (%s)\n", version.ApplicationName, ver, rev)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	record := md.AddString("record", "", "record user input to the named file")
	playback := md.AddString("playback", "", "replay a previously recorded session")
	wav := md.AddString("wav", "", "record buzzer output to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *record != "" && *playback != "" {
		return fmt.Errorf("-record and -playback cannot be used at the same time")
	}

	mc, err := hardware.NewChessComputer(mcu.NewScanLoop())
	if err != nil {
		return err
	}

	// attach wavwriter to the buzzer if the wav argument has been specified
	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		mc.Buzzer.Plumb(aw)
		defer func() {
			if err := aw.End(); err != nil {
				fmt.Printf("* %v\n", err)
			}
		}()
	}

	if *playback != "" {
		return playbackRun(mc, *playback)
	}

	var rec *recorder.Recorder
	if *record != "" {
		f, err := os.Create(*record)
		if err != nil {
			return err
		}
		defer f.Close()

		rec, err = recorder.NewRecorder(f, mc)
		if err != nil {
			return err
		}
	}

	cns, err := console.NewConsole(mc, rec)
	if err != nil {
		return err
	}

	return cns.Run()
}

// playbackRun replays a recorded session without the interactive console,
// printing the machine state when the recording is exhausted.
func playbackRun(mc *hardware.ChessComputer, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	plb, err := recorder.NewPlayback(f, mc)
	if err != nil {
		return err
	}

	// ctrl-c abandons a long playback
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	for !plb.EndOfEvents() {
		select {
		case <-intChan:
			fmt.Println("\r")
			return nil
		default:
		}

		plb.Step()
		if err := mc.Step(); err != nil {
			return err
		}
	}

	fmt.Printf("%s\n%s\n%s\n", mc.Ports.String(), mc.Board.String(), mc.Display.String())

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (in addition to lead time)")
	profCPU := md.AddBool("cpuprofile", false, "write cpu profile to performance_cpu.profile")
	profMem := md.AddBool("memprofile", false, "write memory profile to performance_mem.profile")
	stats := md.AddBool("statsview", false, "run the statsview http server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available. rebuild with statsview build constraint")
		}
		statsview.Launch(md.Output)
	}

	return performance.Check(md.Output, *profCPU, *profMem, *duration)
}

// viz writes a graphviz (dot) rendering of the machine state to a file. the
// machine is stepped beforehand so the visualisation shows a working machine
// rather than a pristine one.
func viz(md *modalflag.Modes) error {
	md.NewMode()

	output := md.AddString("o", "gopherchess.dot", "output file")
	steps := md.AddInt("steps", 1000, "number of machine steps before the snapshot")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mc, err := hardware.NewChessComputer(mcu.NewScanLoop())
	if err != nil {
		return err
	}

	for i := 0; i < *steps; i++ {
		if err := mc.Step(); err != nil {
			return err
		}
	}

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	defer f.Close()

	state := mc.Snapshot()
	memviz.Map(f, state)

	fmt.Printf("state graph written to %s\n", *output)

	return nil
}
