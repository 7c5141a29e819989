package engine

import "testing"

// runProgram seeds and runs rows to completion against a fresh scheduler
// and returns the recorded output.
func runProgram(rows ...string) string {
	io := &fakeIO{}
	plane := NewPlane(rowsOf(rows...))
	sched := NewScheduler(plane, io, false)
	sched.Run()
	return io.output()
}

// Scenario 1: hello world via the classic reversed-string-plus-bridge
// print loop. The leading `64+` pushes a trailing newline (code point 10)
// underneath the string, printed last once the stack is otherwise empty.
func TestScenarioHelloWorld(t *testing.T) {
	got := runProgram(`64+"!dlroW ,olleH">:#,_@`)
	want := "Hello, World!\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Scenario 2: add and print.
func TestScenarioAddAndPrint(t *testing.T) {
	got := runProgram(`23+.@`)
	if got != "5 " {
		t.Fatalf("got %q, want %q", got, "5 ")
	}
}

// Scenario 3: horizontal branch on a popped zero.
func TestScenarioHorizontalBranch(t *testing.T) {
	got := runProgram(`0_1.@`)
	if got != "1 " {
		t.Fatalf("got %q, want %q", got, "1 ")
	}
}

// Scenario 4: reflective put then get, read back as a character.
func TestScenarioReflectivePutThenGet(t *testing.T) {
	got := runProgram(`20"."p20g,@`)
	if got != "." {
		t.Fatalf("got %q, want %q", got, ".")
	}
}

// Scenario 5: two IPs seeded with mirrored arrows on the same row. Total
// output length across both is deterministic even though interleaving is
// not.
func TestScenarioMirroredArrowsBothTerminate(t *testing.T) {
	got := runProgram(`→3.@  @.3←`)
	if len(got) != 4 {
		t.Fatalf("got %q (len %d), want total length 4", got, len(got))
	}
}

// Scenario 6: division by zero pushes 0 and reports a diagnostic, but the
// IP keeps running.
func TestScenarioDivideByZero(t *testing.T) {
	io := &fakeIO{}
	plane := NewPlane(rowsOf(`50/.@`))
	sched := NewScheduler(plane, io, false)
	sched.Run()
	if io.output() != "0 " {
		t.Fatalf("got %q, want %q", io.output(), "0 ")
	}
	if len(io.diagnostics()) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(io.diagnostics()))
	}
}

// Unknown glyphs (here, a stray '?') do not affect the stack or
// direction; the IP simply advances past them.
func TestUnknownGlyphIsNoOp(t *testing.T) {
	got := runProgram(`5?.@`)
	if got != "5 " {
		t.Fatalf("got %q, want %q", got, "5 ")
	}
}

// Every reachable IP position stays within the PLANE torus even while
// wrapping repeatedly.
func TestIPPositionStaysWithinPlaneBounds(t *testing.T) {
	io := &fakeIO{}
	plane := NewPlane(rowsOf(`<`))
	sched := NewScheduler(plane, io, false)
	ips := plane.SeedScan()
	ip := ips[0]
	for i := 0; i < 2*PlaneWidth; i++ {
		sched.Advance(ip)
		x, y := ip.Position()
		if x < 0 || x >= PlaneWidth || y < 0 || y >= PlaneHeight {
			t.Fatalf("IP left PLANE bounds at (%d, %d)", x, y)
		}
	}
}

func TestStepControllerGatesOneTickAtATime(t *testing.T) {
	sc := newStepController()
	sc.Enable()

	released := make(chan struct{})
	go func() {
		sc.WaitForTurn()
		close(released)
	}()

	select {
	case <-released:
		t.Fatal("worker proceeded before Step was called")
	default:
	}

	sc.Step()
	<-released
}
