package lander

import (
	"math/rand"
	"testing"

	gp "github.com/darwins-challenge/moonlander-gp"
)

func TestProgramString(t *testing.T) {
	prog := If(
		And(Less(Sensor(Velocity), Constant(-2)), Greater(Sensor(Fuel), Constant(0))),
		Do(Thrust),
		Do(Skip),
	)
	want := "(IF (AND (LESS VELOCITY -2) (GREATER FUEL 0)) THRUST SKIP)"
	if got := prog.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"SKIP",
		"THRUST",
		"(IF (LESS VELOCITY -2) THRUST SKIP)",
		"(IF (NOT (GREATER ALTITUDE 10)) THRUST SKIP)",
		"(IF (OR (LESS FUEL 1) (GREATER VELOCITY 0)) SKIP (IF (LESS VELOCITY -1) THRUST SKIP))",
		"(IF (LESS (PLUS VELOCITY 2.5) (TIMES ALTITUDE -0.125)) THRUST SKIP)",
	}
	for _, c := range cases {
		prog, err := Parse(c)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c, err)
		}
		if got := prog.String(); got != c {
			t.Errorf("round trip of %q gave %q", c, got)
		}
	}
}

func TestParseConstantPrecision(t *testing.T) {
	// Constants print in shortest form that survives a float32 round
	// trip, so arbitrary mutated values reload exactly.
	vals := []gp.Number{0.1, -12.25, 1e6, 3.1415927, -0.333333}
	for _, v := range vals {
		prog := If(Less(Sensor(Velocity), Constant(v)), Do(Thrust), Do(Skip))
		back, err := Parse(prog.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", prog.String(), err)
		}
		cond := back.Args[0].(*Condition)
		got := cond.Args[1].(*Expression).Value
		if got != v {
			t.Errorf("constant %v reloaded as %v", v, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"",
		"HOVER",
		"(IF (LESS VELOCITY -2) THRUST)",
		"(IF VELOCITY THRUST SKIP)",
		"(IF (WAT 1 2) THRUST SKIP)",
		"(IF (LESS VELOCITY bogus) THRUST SKIP)",
		"(IF (NOT (LESS 1 2) (LESS 3 4)) THRUST SKIP)",
		"(IF (LESS (PLUS 1) 2) THRUST SKIP)",
		"(IF (LESS 1 2) THRUST SKIP",
	}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", c)
		}
	}
}

func TestRandomProgramParses(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	for i := 0; i < 200; i++ {
		prog := RandomProgram(gp.FixedHeight(5), rng)
		back, err := Parse(prog.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", prog.String(), err)
		}
		if back.String() != prog.String() {
			t.Fatalf("round trip of %q gave %q", prog.String(), back.String())
		}
	}
}

func TestKindTagsDistinct(t *testing.T) {
	prog := If(Less(Sensor(Altitude), Constant(1)), Do(Thrust), Do(Skip))
	kinds := map[gp.NodeType]bool{}
	var walk func(n gp.Node)
	walk = func(n gp.Node) {
		kinds[n.Type()] = true
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(prog)
	for _, k := range []gp.NodeType{CommandKind, ExpressionKind, ConditionKind, ProgramKind} {
		if !kinds[k] {
			t.Errorf("kind %d missing from a full program", k)
		}
	}
}

func TestMutateKeepsKind(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	w := gp.FixedHeight(4)
	nodes := []gp.Node{
		&Command{Op: Thrust},
		Constant(4),
		Sensor(Fuel),
		Plus(Constant(1), Constant(2)),
		Less(Constant(1), Constant(2)),
		Not(Less(Constant(1), Constant(2))),
		Do(Skip),
		If(Less(Constant(1), Constant(2)), Do(Thrust), Do(Skip)),
	}
	for _, n := range nodes {
		for i := 0; i < 25; i++ {
			if got := n.Mutate(w, rng).Type(); got != n.Type() {
				t.Fatalf("%s mutated from kind %d into kind %d", n, n.Type(), got)
			}
		}
	}
}

func TestConstantMutatePerturbs(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	c := Constant(10)
	perturbed := 0
	for i := 0; i < 200; i++ {
		out := c.Mutate(gp.FixedHeight(3), rng).(*Expression)
		if out.Op == OpConstant && out.Value != 10 && abs(out.Value-10) < 60 {
			perturbed++
		}
	}
	// Half the draws nudge the value instead of regenerating.
	if perturbed < 40 {
		t.Fatalf("only %d of 200 mutations perturbed the constant", perturbed)
	}
}

func TestCopyIsDeep(t *testing.T) {
	prog := If(Less(Sensor(Velocity), Constant(-2)), Do(Thrust), Do(Skip))
	dup := prog.Copy().(*Program)
	if dup == prog {
		t.Fatal("Copy returned the same pointer")
	}
	if dup.String() != prog.String() {
		t.Fatalf("copy %q differs from original %q", dup.String(), prog.String())
	}
	var walk func(a, b gp.Node)
	walk = func(a, b gp.Node) {
		if a == b {
			t.Fatalf("node %s shared between copy and original", a)
		}
		ac, bc := a.Children(), b.Children()
		for i := range ac {
			walk(ac[i], bc[i])
		}
	}
	walk(prog, dup)
}

func TestReplaceChildSharesSiblings(t *testing.T) {
	prog := If(Less(Sensor(Velocity), Constant(-2)), Do(Thrust), Do(Skip))
	out := prog.ReplaceChild(1, Do(Skip)).(*Program)
	if out.Args[0] != prog.Args[0] || out.Args[2] != prog.Args[2] {
		t.Fatal("untouched children not shared")
	}
	if got, want := out.String(), "(IF (LESS VELOCITY -2) SKIP SKIP)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReplaceChildPanics(t *testing.T) {
	prog := If(Less(Sensor(Velocity), Constant(-2)), Do(Thrust), Do(Skip))
	for name, fn := range map[string]func(){
		"out of range":    func() { prog.ReplaceChild(3, Do(Skip)) },
		"mismatched kind": func() { prog.ReplaceChild(0, Do(Skip)) },
		"command child":   func() { (&Command{Op: Skip}).ReplaceChild(0, Do(Skip)) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: no panic", name)
				}
			}()
			fn()
		}()
	}
}
