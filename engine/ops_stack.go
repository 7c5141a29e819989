package engine

// opDup, opSwap, and opDrop act directly against the IP's own stack rather
// than through CommandAPI.Pop: they need atomic multi-cell access (swap
// exchanges two cells in one locked critical section; dup reads-then-pushes
// the same cell) that a pair of independent Pop/Push calls cannot give
// without a race.
func opDup(ip *IP, api CommandAPI, io IOPort) {
	ip.Dup()
}

func opSwap(ip *IP, api CommandAPI, io IOPort) {
	ip.Swap()
}

func opDrop(ip *IP, api CommandAPI, io IOPort) {
	ip.Drop()
}

// opGreater pushes 1 if the second-popped value is greater than the
// first-popped value, else 0.
func opGreater(ip *IP, api CommandAPI, io IOPort) {
	a := api.Pop(ip)
	b := api.Pop(ip)
	if b > a {
		ip.Push(1)
	} else {
		ip.Push(0)
	}
}

// opNot pushes the logical complement of pop(): 1 for zero, 0 otherwise.
func opNot(ip *IP, api CommandAPI, io IOPort) {
	v := api.Pop(ip)
	if v == 0 {
		ip.Push(1)
	} else {
		ip.Push(0)
	}
}
