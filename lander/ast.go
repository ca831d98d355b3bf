// Package lander implements a vertical-descent landing problem:
// programs read the craft's sensors each tick and decide whether to
// fire the engine, and are scored on how gently they put it down.
//
// The grammar has four node kinds, so crossover can swap conditions
// with conditions and expressions with expressions across programs.
package lander

import (
	"fmt"
	"math/rand"
	"strconv"

	gp "github.com/darwins-challenge/moonlander-gp"
)

// Kind tags.
const (
	CommandKind    gp.NodeType = 0
	ExpressionKind gp.NodeType = 1
	ConditionKind  gp.NodeType = 2
	ProgramKind    gp.NodeType = 3
)

// CommandOp enumerates what the craft can do in one tick.
type CommandOp int

const (
	Skip CommandOp = iota
	Thrust
)

func (c CommandOp) String() string {
	switch c {
	case Skip:
		return "SKIP"
	case Thrust:
		return "THRUST"
	default:
		return "UNKNOWN"
	}
}

// Command is a leaf node holding one action.
type Command struct {
	Op CommandOp
}

func (c *Command) Type() gp.NodeType   { return CommandKind }
func (c *Command) Children() []gp.Node { return nil }
func (c *Command) Copy() gp.Node       { return &Command{Op: c.Op} }
func (c *Command) String() string      { return c.Op.String() }

func (c *Command) ReplaceChild(i int, child gp.Node) gp.Node {
	panic("lander: command has no children")
}

func (c *Command) Mutate(w gp.NodeWeights, rng *rand.Rand) gp.Node {
	return &Command{Op: RandomCommand(rng)}
}

// ExprOp enumerates the numeric expression shapes.
type ExprOp int

const (
	OpConstant ExprOp = iota
	OpSensor
	OpPlus
	OpTimes
)

// SensorKind selects which part of the craft state a sensor reads.
type SensorKind int

const (
	Altitude SensorKind = iota
	Velocity
	Fuel
)

func (k SensorKind) String() string {
	switch k {
	case Altitude:
		return "ALTITUDE"
	case Velocity:
		return "VELOCITY"
	case Fuel:
		return "FUEL"
	default:
		return "UNKNOWN"
	}
}

// Expression is a numeric-valued node: a literal constant, a sensor
// reading, or an arithmetic combination of two expressions.
type Expression struct {
	Op    ExprOp
	Value gp.Number  // payload for OpConstant
	Input SensorKind // payload for OpSensor
	Args  []gp.Node  // operands for OpPlus and OpTimes
}

// Constant builds a literal expression.
func Constant(v gp.Number) *Expression {
	return &Expression{Op: OpConstant, Value: v}
}

// Sensor builds an expression reading one part of the craft state.
func Sensor(input SensorKind) *Expression {
	return &Expression{Op: OpSensor, Input: input}
}

// Plus builds the sum of two expressions.
func Plus(a, b *Expression) *Expression {
	return &Expression{Op: OpPlus, Args: []gp.Node{a, b}}
}

// Times builds the product of two expressions.
func Times(a, b *Expression) *Expression {
	return &Expression{Op: OpTimes, Args: []gp.Node{a, b}}
}

func (e *Expression) Type() gp.NodeType   { return ExpressionKind }
func (e *Expression) Children() []gp.Node { return e.Args }

func (e *Expression) ReplaceChild(i int, child gp.Node) gp.Node {
	if i < 0 || i >= len(e.Args) {
		panic("lander: replace child index out of range")
	}
	if child.Type() != e.Args[i].Type() {
		panic("lander: replace child of mismatched kind")
	}
	args := make([]gp.Node, len(e.Args))
	copy(args, e.Args)
	args[i] = child
	return &Expression{Op: e.Op, Value: e.Value, Input: e.Input, Args: args}
}

// Mutate perturbs a constant's value half the time; everything else is
// regenerated from scratch.
func (e *Expression) Mutate(w gp.NodeWeights, rng *rand.Rand) gp.Node {
	if e.Op == OpConstant && rng.Intn(2) == 0 {
		return Constant(e.Value + gp.Number(rng.NormFloat64()*10))
	}
	return RandomExpression(w, rng)
}

func (e *Expression) Copy() gp.Node {
	args := make([]gp.Node, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.Copy()
	}
	return &Expression{Op: e.Op, Value: e.Value, Input: e.Input, Args: args}
}

func (e *Expression) String() string {
	switch e.Op {
	case OpConstant:
		return strconv.FormatFloat(float64(e.Value), 'g', -1, 32)
	case OpSensor:
		return e.Input.String()
	case OpPlus:
		return fmt.Sprintf("(PLUS %s %s)", e.Args[0], e.Args[1])
	case OpTimes:
		return fmt.Sprintf("(TIMES %s %s)", e.Args[0], e.Args[1])
	default:
		return "UNKNOWN"
	}
}

// CondOp enumerates the boolean condition shapes.
type CondOp int

const (
	OpLess CondOp = iota
	OpGreater
	OpAnd
	OpOr
	OpNot
)

// Condition is a boolean-valued node comparing expressions or combining
// other conditions.
type Condition struct {
	Op   CondOp
	Args []gp.Node
}

// Less is true when a evaluates below b.
func Less(a, b *Expression) *Condition {
	return &Condition{Op: OpLess, Args: []gp.Node{a, b}}
}

// Greater is true when a evaluates above b.
func Greater(a, b *Expression) *Condition {
	return &Condition{Op: OpGreater, Args: []gp.Node{a, b}}
}

// And is true when both conditions hold.
func And(a, b *Condition) *Condition {
	return &Condition{Op: OpAnd, Args: []gp.Node{a, b}}
}

// Or is true when either condition holds.
func Or(a, b *Condition) *Condition {
	return &Condition{Op: OpOr, Args: []gp.Node{a, b}}
}

// Not inverts a condition.
func Not(c *Condition) *Condition {
	return &Condition{Op: OpNot, Args: []gp.Node{c}}
}

func (c *Condition) Type() gp.NodeType   { return ConditionKind }
func (c *Condition) Children() []gp.Node { return c.Args }

func (c *Condition) ReplaceChild(i int, child gp.Node) gp.Node {
	if i < 0 || i >= len(c.Args) {
		panic("lander: replace child index out of range")
	}
	if child.Type() != c.Args[i].Type() {
		panic("lander: replace child of mismatched kind")
	}
	args := make([]gp.Node, len(c.Args))
	copy(args, c.Args)
	args[i] = child
	return &Condition{Op: c.Op, Args: args}
}

func (c *Condition) Mutate(w gp.NodeWeights, rng *rand.Rand) gp.Node {
	return RandomCondition(w, rng)
}

func (c *Condition) Copy() gp.Node {
	args := make([]gp.Node, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.Copy()
	}
	return &Condition{Op: c.Op, Args: args}
}

func (c *Condition) String() string {
	switch c.Op {
	case OpLess:
		return fmt.Sprintf("(LESS %s %s)", c.Args[0], c.Args[1])
	case OpGreater:
		return fmt.Sprintf("(GREATER %s %s)", c.Args[0], c.Args[1])
	case OpAnd:
		return fmt.Sprintf("(AND %s %s)", c.Args[0], c.Args[1])
	case OpOr:
		return fmt.Sprintf("(OR %s %s)", c.Args[0], c.Args[1])
	case OpNot:
		return fmt.Sprintf("(NOT %s)", c.Args[0])
	default:
		return "UNKNOWN"
	}
}

// ProgramOp enumerates the statement shapes.
type ProgramOp int

const (
	OpIf ProgramOp = iota
	OpDo
)

// Program is the decision tree evaluated once per simulation tick.
type Program struct {
	Op   ProgramOp
	Args []gp.Node
}

// If runs then when cond holds, els otherwise.
func If(cond *Condition, then, els *Program) *Program {
	return &Program{Op: OpIf, Args: []gp.Node{cond, then, els}}
}

// Do wraps an action as a program.
func Do(cmd CommandOp) *Program {
	return &Program{Op: OpDo, Args: []gp.Node{&Command{Op: cmd}}}
}

func (p *Program) Type() gp.NodeType   { return ProgramKind }
func (p *Program) Children() []gp.Node { return p.Args }

func (p *Program) ReplaceChild(i int, child gp.Node) gp.Node {
	if i < 0 || i >= len(p.Args) {
		panic("lander: replace child index out of range")
	}
	if child.Type() != p.Args[i].Type() {
		panic("lander: replace child of mismatched kind")
	}
	args := make([]gp.Node, len(p.Args))
	copy(args, p.Args)
	args[i] = child
	return &Program{Op: p.Op, Args: args}
}

func (p *Program) Mutate(w gp.NodeWeights, rng *rand.Rand) gp.Node {
	return RandomProgram(w, rng)
}

func (p *Program) Copy() gp.Node {
	args := make([]gp.Node, len(p.Args))
	for i, a := range p.Args {
		args[i] = a.Copy()
	}
	return &Program{Op: p.Op, Args: args}
}

func (p *Program) String() string {
	switch p.Op {
	case OpIf:
		return fmt.Sprintf("(IF %s %s %s)", p.Args[0], p.Args[1], p.Args[2])
	case OpDo:
		return fmt.Sprint(p.Args[0])
	default:
		return "UNKNOWN"
	}
}

// RandomCommand picks an action uniformly.
func RandomCommand(rng *rand.Rand) CommandOp {
	return CommandOp(rng.Intn(2))
}

// RandomSensor picks a sensor uniformly.
func RandomSensor(rng *rand.Rand) SensorKind {
	return SensorKind(rng.Intn(3))
}

// RandomExpression grows a fresh expression. Constants land in
// [-100, 100), the rough range of the craft's state variables.
func RandomExpression(w gp.NodeWeights, rng *rand.Rand) *Expression {
	leaf := w.Leaf()
	internal := w.Internal()
	switch gp.PickWeighted(rng, leaf, leaf, internal, internal) {
	case 0:
		return Constant(gp.Number(rng.Float64()*200 - 100))
	case 1:
		return Sensor(RandomSensor(rng))
	case 2:
		next := w.NextLevel()
		return Plus(RandomExpression(next, rng), RandomExpression(next, rng))
	default:
		next := w.NextLevel()
		return Times(RandomExpression(next, rng), RandomExpression(next, rng))
	}
}

// RandomCondition grows a fresh condition. Comparisons count as leaves
// of the condition grammar even though they carry expression children.
func RandomCondition(w gp.NodeWeights, rng *rand.Rand) *Condition {
	leaf := w.Leaf()
	internal := w.Internal()
	next := w.NextLevel()
	switch gp.PickWeighted(rng, leaf, leaf, internal, internal, internal) {
	case 0:
		return Less(RandomExpression(next, rng), RandomExpression(next, rng))
	case 1:
		return Greater(RandomExpression(next, rng), RandomExpression(next, rng))
	case 2:
		return And(RandomCondition(next, rng), RandomCondition(next, rng))
	case 3:
		return Or(RandomCondition(next, rng), RandomCondition(next, rng))
	default:
		return Not(RandomCondition(next, rng))
	}
}

// RandomProgram grows a fresh program, biased by the height budget
// carried in w.
func RandomProgram(w gp.NodeWeights, rng *rand.Rand) *Program {
	switch gp.PickWeighted(rng, w.Internal(), w.Leaf()) {
	case 0:
		next := w.NextLevel()
		return If(RandomCondition(next, rng), RandomProgram(next, rng), RandomProgram(next, rng))
	default:
		return Do(RandomCommand(rng))
	}
}
