package engine

import (
	"fmt"
	"unicode/utf8"
)

// opPut pops v, y, x (in that order, reversing the push order x, y, v) and
// writes the character with code point v into the plane at (x, y), the way
// original_source's put_command.rs substitutes U+FFFD for any v that is
// not a valid Unicode scalar value (out of range, or a UTF-16 surrogate).
// A write outside the plane's content-dimensions is a diagnostic, not a
// fatal error: the IP keeps running.
func opPut(ip *IP, api CommandAPI, io IOPort) {
	v := api.Pop(ip)
	y := api.Pop(ip)
	x := api.Pop(ip)
	ch := utf8.RuneError
	if v <= utf8.MaxRune {
		if r := rune(v); utf8.ValidRune(r) {
			ch = r
		}
	}
	if err := api.Set(int(x), int(y), ch); err != nil {
		io.WriteError(fmt.Sprintf("put: %v", err))
	}
}

// opGet pops y, x (reversing the push order x, y) and pushes the code
// point of the plane cell at (x, y). An out-of-bounds read pushes 0 and
// reports a diagnostic.
func opGet(ip *IP, api CommandAPI, io IOPort) {
	y := api.Pop(ip)
	x := api.Pop(ip)
	ch, err := api.Get(int(x), int(y))
	if err != nil {
		io.WriteError(fmt.Sprintf("get: %v", err))
		ip.Push(0)
		return
	}
	ip.Push(Cell(ch))
}
