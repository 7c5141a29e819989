// Package loader implements engine.GridLoader by reading a program file
// from disk and padding it into a rectangular plane, the way
// original_source's CodeGrid::load does for the reference interpreter.
package loader

import (
	"os"
	"strings"

	"gofunge93/engine"
)

// FileLoader reads a Befunge-93-family program from the local filesystem.
type FileLoader struct{}

// Load reads path, splits it into lines, and pads every line with spaces
// to the width of the longest line so every row has equal length. A
// missing file reports FileNotFound; an unreadable one reports
// FileReadError. An empty file is not an error: it yields a single row
// holding one space, so a default IP can still be placed (spec.md §6).
func (FileLoader) Load(path string) (*engine.Plane, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, engine.NewFileNotFoundError(path, err)
		}
		return nil, engine.NewFileReadError(path, err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	if len(lines) == 0 || width == 0 {
		return engine.NewPlane([][]rune{{' '}}), nil
	}

	rows := make([][]rune, len(lines))
	for i, l := range lines {
		row := make([]rune, width)
		for j := range row {
			row[j] = ' '
		}
		copy(row, []rune(l))
		rows[i] = row
	}

	return engine.NewPlane(rows), nil
}
