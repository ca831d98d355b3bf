package ant

import (
	"math/rand"
	"strings"
	"testing"

	gp "github.com/darwins-challenge/moonlander-gp"
)

func TestStatementString(t *testing.T) {
	prog := IfFoodAhead(
		Do(Move),
		Prog3(Do(Left), Prog2(Do(Move), Do(Right)), Do(Skip)),
	)
	want := "(IF-FOOD-AHEAD MOVE (PROG3 LEFT (PROG2 MOVE RIGHT) SKIP))"
	if got := prog.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"MOVE",
		"SKIP",
		"(PROG2 LEFT MOVE)",
		"(PROG3 MOVE MOVE RIGHT)",
		"(IF-FOOD-AHEAD MOVE (PROG2 LEFT MOVE))",
		"(IF-FOOD-AHEAD (PROG3 LEFT (PROG2 MOVE RIGHT) SKIP) MOVE)",
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

func TestParseToleratesWhitespace(t *testing.T) {
	prog, err := Parse("  (PROG2  MOVE   (PROG2 LEFT  MOVE) ) ")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := "(PROG2 MOVE (PROG2 LEFT MOVE))"
	if got := prog.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"",
		"BANANA",
		"(PROG2 MOVE)",
		"(PROG3 MOVE MOVE)",
		"(IF-FOOD-AHEAD MOVE MOVE MOVE)",
		"(WAT MOVE MOVE)",
		"(PROG2 MOVE MOVE",
		"()",
	}
	for _, c := range cases {
		if _, err := Parse(c); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", c)
		}
	}
}

func TestRandomStatementShape(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	total := 0
	for i := 0; i < 500; i++ {
		prog := RandomStatement(gp.FixedHeight(6), rng)
		d := gp.Depth(prog)
		if d < 1 {
			t.Fatalf("depth %d", d)
		}
		total += d
	}
	mean := float64(total) / 500
	if mean < 2 || mean > 12 {
		t.Fatalf("mean depth %.2f, want near the target height", mean)
	}
}

func TestRandomStatementParses(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		prog := RandomStatement(gp.FixedHeight(5), rng)
		back, err := Parse(prog.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", prog.String(), err)
		}
		if back.String() != prog.String() {
			t.Fatalf("round trip of %q gave %q", prog.String(), back.String())
		}
	}
}

func TestStatementCopyIsDeep(t *testing.T) {
	prog := Prog2(Do(Move), Do(Left))
	dup := prog.Copy().(*Statement)
	if dup == prog {
		t.Fatal("Copy returned the same pointer")
	}
	for i := range prog.Args {
		if dup.Args[i] == prog.Args[i] {
			t.Fatalf("child %d is shared", i)
		}
	}
	if dup.String() != prog.String() {
		t.Fatalf("copy %q differs from original %q", dup.String(), prog.String())
	}
}

func TestStatementReplaceChild(t *testing.T) {
	prog := Prog2(Do(Move), Do(Left))
	out := prog.ReplaceChild(1, Do(Right)).(*Statement)
	if got, want := out.String(), "(PROG2 MOVE RIGHT)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if prog.String() != "(PROG2 MOVE LEFT)" {
		t.Fatalf("original modified: %q", prog.String())
	}
	if out.Args[0] != prog.Args[0] {
		t.Fatal("untouched child not shared")
	}
}

func TestReplaceChildPanics(t *testing.T) {
	prog := Prog2(Do(Move), Do(Left))
	for name, fn := range map[string]func(){
		"out of range":    func() { prog.ReplaceChild(2, Do(Right)) },
		"mismatched kind": func() { prog.ReplaceChild(0, &Command{Op: Right}) },
		"command child":   func() { (&Command{Op: Move}).ReplaceChild(0, Do(Left)) },
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

func TestMutateKeepsKind(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	w := gp.FixedHeight(4)
	var stmt gp.Node = Prog2(Do(Move), Do(Left))
	var cmd gp.Node = &Command{Op: Move}
	for i := 0; i < 50; i++ {
		if got := stmt.Mutate(w, rng).Type(); got != StatementKind {
			t.Fatalf("statement mutated into kind %d", got)
		}
		if got := cmd.Mutate(w, rng).Type(); got != CommandKind {
			t.Fatalf("command mutated into kind %d", got)
		}
	}
}

func TestCommandStrings(t *testing.T) {
	for op, want := range map[CommandOp]string{
		Left: "LEFT", Right: "RIGHT", Move: "MOVE", Skip: "SKIP",
	} {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", op, got, want)
		}
	}
	if !strings.Contains(Do(Move).String(), "MOVE") {
		t.Error("Do(Move) does not mention MOVE")
	}
}
