// Package ant implements the Santa Fe trail problem: programs steer an
// ant across a toroidal board and are scored by how much of the food
// trail they eat within a fixed time budget.
package ant

import (
	"fmt"
	"math/rand"
	"strings"

	gp "github.com/darwins-challenge/moonlander-gp"
)

// Kind tags. Crossover only swaps nodes with matching tags, so commands
// trade places with commands and statements with statements.
const (
	CommandKind   gp.NodeType = 0
	StatementKind gp.NodeType = 1
)

// CommandOp enumerates the primitive ant actions.
type CommandOp int

const (
	Left CommandOp = iota
	Right
	Move
	Skip
)

func (c CommandOp) String() string {
	switch c {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Move:
		return "MOVE"
	case Skip:
		return "SKIP"
	default:
		return "UNKNOWN"
	}
}

// Command is a leaf node holding one primitive action.
type Command struct {
	Op CommandOp
}

func (c *Command) Type() gp.NodeType   { return CommandKind }
func (c *Command) Children() []gp.Node { return nil }
func (c *Command) Copy() gp.Node       { return &Command{Op: c.Op} }
func (c *Command) String() string      { return c.Op.String() }

func (c *Command) ReplaceChild(i int, child gp.Node) gp.Node {
	panic("ant: command has no children")
}

func (c *Command) Mutate(w gp.NodeWeights, rng *rand.Rand) gp.Node {
	return &Command{Op: RandomCommand(rng)}
}

// StatementOp enumerates the statement shapes.
type StatementOp int

const (
	OpIfFoodAhead StatementOp = iota
	OpProg2
	OpProg3
	OpDo
)

// Statement is the ant program tree. Args holds statements for the
// control ops and a single command for OpDo.
type Statement struct {
	Op   StatementOp
	Args []gp.Node
}

// IfFoodAhead runs then when the square ahead holds food, els otherwise.
func IfFoodAhead(then, els *Statement) *Statement {
	return &Statement{Op: OpIfFoodAhead, Args: []gp.Node{then, els}}
}

// Prog2 runs both statements in order.
func Prog2(a, b *Statement) *Statement {
	return &Statement{Op: OpProg2, Args: []gp.Node{a, b}}
}

// Prog3 runs all three statements in order.
func Prog3(a, b, c *Statement) *Statement {
	return &Statement{Op: OpProg3, Args: []gp.Node{a, b, c}}
}

// Do wraps a primitive action as a statement.
func Do(cmd CommandOp) *Statement {
	return &Statement{Op: OpDo, Args: []gp.Node{&Command{Op: cmd}}}
}

func (s *Statement) Type() gp.NodeType   { return StatementKind }
func (s *Statement) Children() []gp.Node { return s.Args }

func (s *Statement) ReplaceChild(i int, child gp.Node) gp.Node {
	if i < 0 || i >= len(s.Args) {
		panic("ant: replace child index out of range")
	}
	if child.Type() != s.Args[i].Type() {
		panic("ant: replace child of mismatched kind")
	}
	args := make([]gp.Node, len(s.Args))
	copy(args, s.Args)
	args[i] = child
	return &Statement{Op: s.Op, Args: args}
}

func (s *Statement) Mutate(w gp.NodeWeights, rng *rand.Rand) gp.Node {
	return RandomStatement(w, rng)
}

func (s *Statement) Copy() gp.Node {
	args := make([]gp.Node, len(s.Args))
	for i, a := range s.Args {
		args[i] = a.Copy()
	}
	return &Statement{Op: s.Op, Args: args}
}

func (s *Statement) String() string {
	switch s.Op {
	case OpIfFoodAhead:
		return fmt.Sprintf("(IF-FOOD-AHEAD %s %s)", s.Args[0], s.Args[1])
	case OpProg2:
		return fmt.Sprintf("(PROG2 %s %s)", s.Args[0], s.Args[1])
	case OpProg3:
		return fmt.Sprintf("(PROG3 %s %s %s)", s.Args[0], s.Args[1], s.Args[2])
	case OpDo:
		return fmt.Sprintf("%s", s.Args[0])
	default:
		return "UNKNOWN"
	}
}

// RandomCommand picks one of the four primitive actions uniformly.
func RandomCommand(rng *rand.Rand) CommandOp {
	return CommandOp(rng.Intn(4))
}

// RandomStatement grows a fresh statement, biased by the height budget
// carried in w.
func RandomStatement(w gp.NodeWeights, rng *rand.Rand) *Statement {
	internal := w.Internal()
	switch gp.PickWeighted(rng, internal, internal, internal, w.Leaf()) {
	case 0:
		next := w.NextLevel()
		return IfFoodAhead(RandomStatement(next, rng), RandomStatement(next, rng))
	case 1:
		next := w.NextLevel()
		return Prog2(RandomStatement(next, rng), RandomStatement(next, rng))
	case 2:
		next := w.NextLevel()
		return Prog3(RandomStatement(next, rng), RandomStatement(next, rng), RandomStatement(next, rng))
	default:
		return Do(RandomCommand(rng))
	}
}

// Parse reads a statement back from its String() form.
func Parse(s string) (*Statement, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("ant: empty program")
	}
	if !strings.HasPrefix(s, "(") {
		cmd, err := parseCommand(s)
		if err != nil {
			return nil, err
		}
		return Do(cmd), nil
	}
	if !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("ant: unbalanced parentheses in %q", s)
	}

	fields := splitFields(strings.TrimSpace(s[1 : len(s)-1]))
	if len(fields) == 0 {
		return nil, fmt.Errorf("ant: empty list")
	}
	head, rest := fields[0], fields[1:]

	var op StatementOp
	var arity int
	switch head {
	case "IF-FOOD-AHEAD":
		op, arity = OpIfFoodAhead, 2
	case "PROG2":
		op, arity = OpProg2, 2
	case "PROG3":
		op, arity = OpProg3, 3
	default:
		return nil, fmt.Errorf("ant: unknown operator %q", head)
	}
	if len(rest) != arity {
		return nil, fmt.Errorf("ant: %s wants %d arguments, got %d", head, arity, len(rest))
	}

	args := make([]gp.Node, len(rest))
	for i, f := range rest {
		sub, err := Parse(f)
		if err != nil {
			return nil, err
		}
		args[i] = sub
	}
	return &Statement{Op: op, Args: args}, nil
}

func parseCommand(s string) (CommandOp, error) {
	switch s {
	case "LEFT":
		return Left, nil
	case "RIGHT":
		return Right, nil
	case "MOVE":
		return Move, nil
	case "SKIP":
		return Skip, nil
	default:
		return 0, fmt.Errorf("ant: unknown command %q", s)
	}
}

// splitFields splits the body of an s-expression into its top-level
// fields, keeping parenthesized groups intact.
func splitFields(s string) []string {
	var fields []string
	depth, start := 0, 0
	inField := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ' ':
			if depth == 0 {
				if inField {
					fields = append(fields, s[start:i])
					inField = false
				}
				continue
			}
		}
		if !inField {
			start = i
			inField = true
		}
	}
	if inField {
		fields = append(fields, s[start:])
	}
	return fields
}
