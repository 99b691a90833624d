package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/thelolagemann/lr35902/internal/cpu"
	"github.com/thelolagemann/lr35902/internal/emulator"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/emu"
	"github.com/thelolagemann/lr35902/pkg/log"
	"github.com/thelolagemann/lr35902/pkg/monitor"
	"github.com/thelolagemann/lr35902/pkg/profile"
	"github.com/thelolagemann/lr35902/pkg/utils"
)

// publishEvery is how many instructions pass between monitor snapshots.
const publishEvery = 4096

func main() {
	romFile := flag.String("rom", "", "The rom file to load")
	state := flag.String("state", "", "The state file to resume from, or \"latest\" for the newest state in the save folder")
	saveFolder := flag.String("save", "", "The folder to write a state to when the run ends")
	steps := flag.Uint64("steps", 0, "Stop after this many instructions (0 for no limit)")
	trace := flag.Bool("trace", false, "Log every instruction before it is executed")
	breakpoints := flag.String("break", "", "Comma separated addresses to stop at, e.g. 0150,$C000")
	softBreak := flag.Bool("ldbb", false, "Treat LD B, B as a breakpoint")
	startPC := flag.String("pc", "", "The address to start executing from")
	digest := flag.Bool("digest", false, "Print a digest of memory when the run ends")
	profileFile := flag.String("profile", "", "Write an opcode histogram to this file (png, svg or pdf)")
	monitorAddr := flag.String("monitor", "", "Serve register snapshots over websocket on this address, e.g. localhost:8080")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	// trace lines are written at debug level
	logger := log.New(*verbose || *trace)

	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	// open the rom file
	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Fatal(err.Error())
	}

	opts := []emulator.Opt{
		emulator.WithLogger(logger),
		emulator.MaxSteps(*steps),
	}
	if *trace {
		opts = append(opts, emulator.WithTrace())
	}
	if *softBreak {
		opts = append(opts, emulator.WithSoftwareBreakpoint())
	}
	if *breakpoints != "" {
		for _, field := range strings.Split(*breakpoints, ",") {
			address, err := parseAddress(field)
			if err != nil {
				logger.Fatal(err.Error())
			}
			opts = append(opts, emulator.WithBreakpoint(address))
		}
	}
	if *startPC != "" {
		address, err := parseAddress(*startPC)
		if err != nil {
			logger.Fatal(err.Error())
		}
		opts = append(opts, emulator.WithPC(address))
	}

	if *state != "" {
		path := *state
		if path == "latest" {
			if path, err = emu.LatestState(*saveFolder, rom); err != nil {
				logger.Fatal(err.Error())
			}
		}
		s, err := emu.LoadState(path)
		if err != nil {
			logger.Fatal(err.Error())
		}
		logger.Infof("resuming from %s", path)
		opts = append(opts, emulator.WithState(s))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if *monitorAddr != "" {
		srv := monitor.NewServer(logger)
		go func() {
			if err := srv.ListenAndServe(ctx, *monitorAddr); err != nil {
				logger.Errorf("monitor: %v", err)
			}
		}()
		opts = append(opts, emulator.WithObserver(publishEvery, func(c *cpu.CPU, steps uint64) {
			srv.Publish(monitor.SnapshotOf(c, steps))
		}))
		logger.Infof("monitor listening on ws://%s", *monitorAddr)
	}

	e := emulator.New(rom, opts...)
	started := time.Now()
	reason, runErr := e.Run(ctx)
	logger.Infof("%s after %d instructions in %s", reason, e.Steps(), time.Since(started).Round(time.Millisecond))
	logger.Infof("%s", e.CPU.Registers.String())

	if *saveFolder != "" {
		s := types.NewState()
		e.Save(s)
		path := emu.StatePath(*saveFolder, rom, time.Now())
		if err := os.MkdirAll(*saveFolder, 0o755); err != nil {
			logger.Errorf("creating save folder: %v", err)
		} else if err := emu.SaveState(path, s); err != nil {
			logger.Errorf("saving state: %v", err)
		} else {
			logger.Infof("saved state to %s", path)
		}
	}

	if *profileFile != "" {
		if err := profile.Save(*profileFile, "Opcodes", e.Counts(), profile.DefaultTop, false); err != nil {
			logger.Errorf("writing profile: %v", err)
		}
	}

	if *digest {
		fmt.Println(emu.Digest(e.CPU.Memory.Bytes()))
	}

	if runErr != nil {
		logger.Fatal(runErr.Error())
	}
}

// parseAddress reads a 16-bit hexadecimal address, with or without a $
// or 0x prefix.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint16(v), nil
}
