// Command disasm prints an instruction listing of a ROM image.
package main

import (
	"bufio"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/thelolagemann/lr35902/internal/disassembler"
	"github.com/thelolagemann/lr35902/pkg/log"
	"github.com/thelolagemann/lr35902/pkg/utils"
)

func main() {
	romFile := flag.String("rom", "", "The rom file to disassemble")
	origin := flag.String("origin", "0100", "The address the rom is loaded at")
	count := flag.Int("count", 0, "The number of instructions to list (0 for the whole rom)")
	flag.Parse()

	logger := log.New(false)
	if *romFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Fatal(err.Error())
	}

	address, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimPrefix(*origin, "$"), "0x"), 16, 16)
	if err != nil {
		logger.Fatal("invalid origin " + *origin)
	}

	lines, disErr := disassembler.Disassemble(rom, uint16(address), *count)

	w := bufio.NewWriter(os.Stdout)
	if err := disassembler.Write(w, lines); err != nil {
		logger.Fatal(err.Error())
	}
	w.Flush()

	if disErr != nil {
		logger.Fatal(disErr.Error())
	}
}
