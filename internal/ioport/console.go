// Package ioport implements engine.IOPort against the process's standard
// streams, the way original_source's ConsoleIOHandler does for the
// reference interpreter and jyane-jnes/nes/debug_console.go does for its
// stack/memory dumps.
package ioport

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"gofunge93/engine"
)

// Console is the concrete IOPort: program output and diagnostics go to
// separate writers, numeric and character input come from a shared
// reader. In verbose mode every read and write is additionally logged
// through glog for operators, never changing the user-visible stream.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

// NewConsole builds a Console over the given streams.
func NewConsole(in io.Reader, out, errOut io.Writer, verbose bool) *Console {
	return &Console{in: bufio.NewReader(in), out: out, errOut: errOut, verbose: verbose}
}

// WriteOutput writes s to the program output stream verbatim.
func (c *Console) WriteOutput(s string) {
	if c.verbose {
		glog.Infof("output: %q", s)
	}
	fmt.Fprint(c.out, s)
}

// WriteError writes a diagnostic line to the error stream. It never
// returns an error: a broken diagnostic channel must not itself abort
// the program that triggered the diagnostic.
func (c *Console) WriteError(s string) {
	if c.verbose {
		glog.Warningf("diagnostic: %s", s)
	}
	fmt.Fprintf(c.errOut, "! %s\n", s)
}

// ReadNumber reads one line from input and parses it as a non-negative
// integer for the `&` command.
func (c *Console) ReadNumber() (engine.Cell, error) {
	line, err := c.readLine()
	if err != nil {
		return 0, engine.NewIoError(err)
	}
	v, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, engine.NewParseError(line, err)
	}
	if c.verbose {
		glog.Infof("read number: %d", v)
	}
	return v, nil
}

// ReadChar reads one rune from input for the `~` command.
func (c *Console) ReadChar() (rune, error) {
	r, _, err := c.in.ReadRune()
	if err != nil {
		return 0, engine.NewIoError(err)
	}
	if c.verbose {
		glog.Infof("read char: %q", r)
	}
	return r, nil
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if line == "" && err == io.EOF {
		return "", io.EOF
	}
	return line, nil
}

// DisplayStack renders one IP's data stack bottom first, the way
// debug_console.go's printstack walks a CPU's memory window.
func (c *Console) DisplayStack(stack []engine.Cell) {
	if len(stack) == 0 {
		fmt.Fprintln(c.errOut, "stack: []")
		return
	}
	parts := make([]string, len(stack))
	for i, v := range stack {
		parts[i] = strconv.FormatUint(v, 10)
	}
	fmt.Fprintf(c.errOut, "stack: [%s]\n", strings.Join(parts, " "))
}

// DisplayGrid renders a plane snapshot with the active IP marked '@'
// over its cell.
func (c *Console) DisplayGrid(snapshot [][]rune, ipX, ipY int) {
	var b strings.Builder
	for y, row := range snapshot {
		for x, ch := range row {
			if x == ipX && y == ipY {
				b.WriteRune('@')
				continue
			}
			b.WriteRune(ch)
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(c.errOut, b.String())
}
