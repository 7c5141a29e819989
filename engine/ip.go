package engine

import "sync"

// Cell is a stack value. Cells are conceptually non-negative; arithmetic
// commands widen to int64, compute, and narrow back to Cell, so a cell can
// transiently hold the two's-complement reinterpretation of a negative
// result exactly like the reference implementation's usize<->isize casts.
type Cell = uint64

// IP is one instruction pointer: its position, heading, data stack, and
// mode flags. Every field is guarded by mu; no code outside this file may
// read or write an IP's fields without holding it.
type IP struct {
	mu         sync.Mutex
	x, y       int
	dir        Direction
	stack      []Cell
	stringMode bool
	terminated bool
}

// NewIP constructs an IP at (x, y) heading dir, with an empty stack and
// cleared flags.
func NewIP(x, y int, dir Direction) *IP {
	return &IP{x: x, y: y, dir: dir}
}

// Position returns the IP's current coordinates.
func (ip *IP) Position() (int, int) {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	return ip.x, ip.y
}

// SetPosition overwrites the IP's coordinates. Only the scheduler's step
// routine calls this.
func (ip *IP) SetPosition(x, y int) {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	ip.x, ip.y = x, y
}

// Direction returns the IP's current heading.
func (ip *IP) Direction() Direction {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	return ip.dir
}

// SetDirection overwrites the IP's heading.
func (ip *IP) SetDirection(d Direction) {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	ip.dir = d
}

// StringMode reports whether string mode is active.
func (ip *IP) StringMode() bool {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	return ip.stringMode
}

// ToggleStringMode flips the string-mode flag atomically with respect to
// the per-IP lock and returns the new value.
func (ip *IP) ToggleStringMode() bool {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	ip.stringMode = !ip.stringMode
	return ip.stringMode
}

// Terminated reports whether the IP has set its termination flag.
func (ip *IP) Terminated() bool {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	return ip.terminated
}

// Terminate sets the IP's termination flag. A terminated IP is never
// advanced or dispatched again (invariant 3).
func (ip *IP) Terminate() {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	ip.terminated = true
}

// Push appends a cell to the top of the stack.
func (ip *IP) Push(v Cell) {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	ip.stack = append(ip.stack, v)
}

// Pop removes and returns the top cell. Popping an empty stack yields 0;
// this is not an error (spec §7: stack behaves as if padded with zeros).
func (ip *IP) Pop() Cell {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	return ip.popLocked()
}

// popLocked is Pop's body for callers that already hold mu.
func (ip *IP) popLocked() Cell {
	n := len(ip.stack)
	if n == 0 {
		return 0
	}
	v := ip.stack[n-1]
	ip.stack = ip.stack[:n-1]
	return v
}

// Dup duplicates the top of stack. On an empty stack it pushes two zeros
// instead (so the resulting length is 2, not 1).
func (ip *IP) Dup() {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	if n := len(ip.stack); n > 0 {
		ip.stack = append(ip.stack, ip.stack[n-1])
	} else {
		ip.stack = append(ip.stack, 0, 0)
	}
}

// Swap exchanges the top two cells. On a single-element stack [v] it
// leaves [v, 0] (top 0). On an empty stack it pushes two zeros.
func (ip *IP) Swap() {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	switch n := len(ip.stack); {
	case n >= 2:
		ip.stack[n-1], ip.stack[n-2] = ip.stack[n-2], ip.stack[n-1]
	case n == 1:
		ip.stack = append(ip.stack, 0)
	default:
		ip.stack = append(ip.stack, 0, 0)
	}
}

// Drop pops and discards the top cell, ignoring underflow.
func (ip *IP) Drop() {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	ip.popLocked()
}

// StackSnapshot returns a copy of the current stack, bottom first, for
// rendering by the I/O port. It never holds the IP lock across the I/O
// call itself.
func (ip *IP) StackSnapshot() []Cell {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	out := make([]Cell, len(ip.stack))
	copy(out, ip.stack)
	return out
}

// CloneForFork atomically snapshots everything Fork needs to build a child
// IP: position, direction, stack contents, and string-mode flag.
func (ip *IP) CloneForFork() (x, y int, dir Direction, stack []Cell, stringMode bool) {
	ip.mu.Lock()
	defer ip.mu.Unlock()
	stack = make([]Cell, len(ip.stack))
	copy(stack, ip.stack)
	return ip.x, ip.y, ip.dir, stack, ip.stringMode
}

// newForkedIP builds a child IP from a fork snapshot, with a fresh
// termination flag.
func newForkedIP(x, y int, dir Direction, stack []Cell, stringMode bool) *IP {
	return &IP{x: x, y: y, dir: dir, stack: stack, stringMode: stringMode}
}
