// Package profile renders executed opcode counts as bar charts.
package profile

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/thelolagemann/lr35902/internal/cpu"
)

const (
	// DefaultTop is the number of opcodes charted when no limit is given.
	DefaultTop = 16

	width  = 8 * vg.Inch
	height = 4 * vg.Inch
)

// Entry is a single bar of a histogram.
type Entry struct {
	Opcode uint8
	Count  uint64
	Label  string
}

// Top returns the n most executed opcodes of counts in descending order,
// ties broken by opcode. Opcodes that never ran are left out. When cb is
// true the counts are taken to be of CB prefixed opcodes.
func Top(counts [256]uint64, n int, cb bool) []Entry {
	if n <= 0 {
		n = DefaultTop
	}
	var entries []Entry
	for op, count := range counts {
		if count == 0 {
			continue
		}
		entries = append(entries, Entry{Opcode: uint8(op), Count: count})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Label = label(entries[i].Opcode, cb)
	}
	return entries
}

// label names an opcode by its mnemonic, e.g. "3E LD" or "CB 7C BIT".
func label(opcode uint8, cb bool) string {
	c := cpu.New()
	if cb {
		c.Memory.Write(0, cpu.CBPrefix)
		c.Memory.Write(1, opcode)
		return fmt.Sprintf("CB %02X %s", opcode, mnemonic(c.Fetch()))
	}
	if !cpu.Legal(opcode) {
		return fmt.Sprintf("%02X ???", opcode)
	}
	if opcode == cpu.CBPrefix {
		return "CB"
	}
	c.Memory.Write(0, opcode)
	return fmt.Sprintf("%02X %s", opcode, mnemonic(c.Fetch()))
}

func mnemonic(instr cpu.Instruction) string {
	name, _, _ := strings.Cut(instr.String(), " ")
	return name
}

// Histogram charts the top most executed opcodes of counts.
func Histogram(title string, counts [256]uint64, top int, cb bool) (*plot.Plot, error) {
	entries := Top(counts, top, cb)
	if len(entries) == 0 {
		return nil, fmt.Errorf("profile: no opcodes executed")
	}

	values := make(plotter.Values, len(entries))
	names := make([]string, len(entries))
	for i, e := range entries {
		values[i] = float64(e.Count)
		names[i] = e.Label
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Executions"

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.8

	return p, nil
}

// WritePNG writes the histogram of counts to w as a PNG image.
func WritePNG(w io.Writer, title string, counts [256]uint64, top int, cb bool) error {
	p, err := Histogram(title, counts, top, cb)
	if err != nil {
		return err
	}
	to, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = to.WriteTo(w)
	return err
}

// Save writes the histogram of counts to filename. The image format
// follows the file extension.
func Save(filename, title string, counts [256]uint64, top int, cb bool) error {
	p, err := Histogram(title, counts, top, cb)
	if err != nil {
		return err
	}
	return p.Save(width, height, filename)
}
