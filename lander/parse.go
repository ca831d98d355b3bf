package lander

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a program back from its String() form.
func Parse(s string) (*Program, error) {
	return parseProgram(strings.TrimSpace(s))
}

func parseProgram(s string) (*Program, error) {
	if s == "" {
		return nil, fmt.Errorf("lander: empty program")
	}
	if !strings.HasPrefix(s, "(") {
		switch s {
		case "SKIP":
			return Do(Skip), nil
		case "THRUST":
			return Do(Thrust), nil
		default:
			return nil, fmt.Errorf("lander: unknown command %q", s)
		}
	}

	head, args, err := splitList(s)
	if err != nil {
		return nil, err
	}
	if head != "IF" {
		return nil, fmt.Errorf("lander: unknown program operator %q", head)
	}
	if len(args) != 3 {
		return nil, fmt.Errorf("lander: IF wants 3 arguments, got %d", len(args))
	}

	cond, err := parseCondition(args[0])
	if err != nil {
		return nil, err
	}
	then, err := parseProgram(args[1])
	if err != nil {
		return nil, err
	}
	els, err := parseProgram(args[2])
	if err != nil {
		return nil, err
	}
	return If(cond, then, els), nil
}

func parseCondition(s string) (*Condition, error) {
	head, args, err := splitList(s)
	if err != nil {
		return nil, err
	}

	switch head {
	case "LESS", "GREATER":
		if len(args) != 2 {
			return nil, fmt.Errorf("lander: %s wants 2 arguments, got %d", head, len(args))
		}
		a, err := parseExpression(args[0])
		if err != nil {
			return nil, err
		}
		b, err := parseExpression(args[1])
		if err != nil {
			return nil, err
		}
		if head == "LESS" {
			return Less(a, b), nil
		}
		return Greater(a, b), nil

	case "AND", "OR":
		if len(args) != 2 {
			return nil, fmt.Errorf("lander: %s wants 2 arguments, got %d", head, len(args))
		}
		a, err := parseCondition(args[0])
		if err != nil {
			return nil, err
		}
		b, err := parseCondition(args[1])
		if err != nil {
			return nil, err
		}
		if head == "AND" {
			return And(a, b), nil
		}
		return Or(a, b), nil

	case "NOT":
		if len(args) != 1 {
			return nil, fmt.Errorf("lander: NOT wants 1 argument, got %d", len(args))
		}
		inner, err := parseCondition(args[0])
		if err != nil {
			return nil, err
		}
		return Not(inner), nil

	default:
		return nil, fmt.Errorf("lander: unknown condition operator %q", head)
	}
}

func parseExpression(s string) (*Expression, error) {
	if s == "" {
		return nil, fmt.Errorf("lander: empty expression")
	}
	if !strings.HasPrefix(s, "(") {
		switch s {
		case "ALTITUDE":
			return Sensor(Altitude), nil
		case "VELOCITY":
			return Sensor(Velocity), nil
		case "FUEL":
			return Sensor(Fuel), nil
		}
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, fmt.Errorf("lander: bad constant %q", s)
		}
		return Constant(float32(v)), nil
	}

	head, args, err := splitList(s)
	if err != nil {
		return nil, err
	}
	if head != "PLUS" && head != "TIMES" {
		return nil, fmt.Errorf("lander: unknown expression operator %q", head)
	}
	if len(args) != 2 {
		return nil, fmt.Errorf("lander: %s wants 2 arguments, got %d", head, len(args))
	}

	a, err := parseExpression(args[0])
	if err != nil {
		return nil, err
	}
	b, err := parseExpression(args[1])
	if err != nil {
		return nil, err
	}
	if head == "PLUS" {
		return Plus(a, b), nil
	}
	return Times(a, b), nil
}

// splitList breaks "(HEAD arg arg …)" into its head and top-level
// argument strings.
func splitList(s string) (string, []string, error) {
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return "", nil, fmt.Errorf("lander: unbalanced parentheses in %q", s)
	}
	fields := splitFields(strings.TrimSpace(s[1 : len(s)-1]))
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("lander: empty list")
	}
	return fields[0], fields[1:], nil
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
