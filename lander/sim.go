package lander

import gp "github.com/darwins-challenge/moonlander-gp"

// Per-tick physics. Velocity is positive upward, so the craft starts
// falling as soon as gravity outweighs thrust.
const (
	Gravity          gp.Number = 1.0
	ThrustAccel      gp.Number = 3.0
	SafeLandingSpeed gp.Number = 2.0
	MaxTicks                   = 500
)

// Lander is the craft state during one descent.
type Lander struct {
	Altitude gp.Number
	Velocity gp.Number
	Fuel     gp.Number
}

// Tick advances one time step executing cmd. Thrust only fires while
// fuel remains, and burns one unit per tick.
func (l *Lander) Tick(cmd CommandOp) {
	accel := -Gravity
	if cmd == Thrust && l.Fuel > 0 {
		accel += ThrustAccel
		l.Fuel--
	}
	l.Velocity += accel
	l.Altitude += l.Velocity
}

// Landed reports touchdown.
func (l *Lander) Landed() bool { return l.Altitude <= 0 }

// SafeLanding reports a touchdown gentle enough to survive.
func (l *Lander) SafeLanding() bool {
	return l.Landed() && abs(l.Velocity) <= SafeLandingSpeed
}

// EvalProgram decides the craft's action for one tick.
func EvalProgram(p *Program, l *Lander) CommandOp {
	switch p.Op {
	case OpIf:
		if EvalCondition(p.Args[0].(*Condition), l) {
			return EvalProgram(p.Args[1].(*Program), l)
		}
		return EvalProgram(p.Args[2].(*Program), l)
	default:
		return p.Args[0].(*Command).Op
	}
}

// EvalCondition evaluates a boolean node against the craft state.
func EvalCondition(c *Condition, l *Lander) bool {
	switch c.Op {
	case OpLess:
		return EvalExpression(c.Args[0].(*Expression), l) < EvalExpression(c.Args[1].(*Expression), l)
	case OpGreater:
		return EvalExpression(c.Args[0].(*Expression), l) > EvalExpression(c.Args[1].(*Expression), l)
	case OpAnd:
		return EvalCondition(c.Args[0].(*Condition), l) && EvalCondition(c.Args[1].(*Condition), l)
	case OpOr:
		return EvalCondition(c.Args[0].(*Condition), l) || EvalCondition(c.Args[1].(*Condition), l)
	default:
		return !EvalCondition(c.Args[0].(*Condition), l)
	}
}

// EvalExpression evaluates a numeric node against the craft state.
func EvalExpression(e *Expression, l *Lander) gp.Number {
	switch e.Op {
	case OpConstant:
		return e.Value
	case OpSensor:
		switch e.Input {
		case Altitude:
			return l.Altitude
		case Velocity:
			return l.Velocity
		default:
			return l.Fuel
		}
	case OpPlus:
		return EvalExpression(e.Args[0].(*Expression), l) + EvalExpression(e.Args[1].(*Expression), l)
	default:
		return EvalExpression(e.Args[0].(*Expression), l) * EvalExpression(e.Args[1].(*Expression), l)
	}
}

// Simulate flies one descent from start, consulting the program every
// tick, and returns the final craft state. The tick cap keeps hovering
// programs from running forever.
func Simulate(p *Program, start Lander) Lander {
	l := start
	for t := 0; t < MaxTicks && !l.Landed(); t++ {
		l.Tick(EvalProgram(p, &l))
	}
	return l
}

func abs(x gp.Number) gp.Number {
	if x < 0 {
		return -x
	}
	return x
}
