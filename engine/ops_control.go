package engine

// opGoRight, opGoLeft, opGoUp, and opGoDown set an unconditional heading.
// They never touch coordinates: only the scheduler's step routine moves an
// IP, once per tick, after dispatch has returned.
func opGoRight(ip *IP, api CommandAPI, io IOPort) { ip.SetDirection(Right) }
func opGoLeft(ip *IP, api CommandAPI, io IOPort)  { ip.SetDirection(Left) }
func opGoUp(ip *IP, api CommandAPI, io IOPort)    { ip.SetDirection(Up) }
func opGoDown(ip *IP, api CommandAPI, io IOPort)  { ip.SetDirection(Down) }

// opHIf is the horizontal-if: pop a value, head Right on zero, Left
// otherwise.
func opHIf(ip *IP, api CommandAPI, io IOPort) {
	if api.Pop(ip) == 0 {
		ip.SetDirection(Right)
	} else {
		ip.SetDirection(Left)
	}
}

// opVIf is the vertical-if: pop a value, head Down on zero, Up otherwise.
func opVIf(ip *IP, api CommandAPI, io IOPort) {
	if api.Pop(ip) == 0 {
		ip.SetDirection(Down)
	} else {
		ip.SetDirection(Up)
	}
}

// opStringMode toggles string mode. While active, the scheduler's fetch
// loop pushes every cell's code point verbatim instead of dispatching it,
// until the closing '"' flips the flag back off.
func opStringMode(ip *IP, api CommandAPI, io IOPort) {
	ip.ToggleStringMode()
}

// opTerminate ends this IP. Its peers are unaffected (invariant 3).
func opTerminate(ip *IP, api CommandAPI, io IOPort) {
	ip.Terminate()
}

// opBridge is the trampoline glyph `#`: it advances the IP one cell
// further than usual, so the cell immediately ahead is passed over
// without being dispatched. The scheduler's own per-tick advance supplies
// the normal single step; this extra call makes the total two.
func opBridge(ip *IP, api CommandAPI, io IOPort) {
	api.Advance(ip)
}
