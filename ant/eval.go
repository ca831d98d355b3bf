package ant

import (
	"math/rand"

	gp "github.com/darwins-challenge/moonlander-gp"
)

// MaxTime is how many times the whole program is re-run per evaluation.
const MaxTime = 600

// Direction the ant is facing. North is toward row 0.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// TurnRight returns d rotated a quarter turn clockwise.
func (d Direction) TurnRight() Direction { return (d + 1) % 4 }

// TurnLeft returns d rotated a quarter turn counterclockwise.
func (d Direction) TurnLeft() Direction { return (d + 3) % 4 }

// Ant walks the board eating the food squares it moves onto.
type Ant struct {
	X, Y      int
	Dir       Direction
	FoodEaten int
}

// Ahead returns the coordinates of the square directly in front of the
// ant.
func (a *Ant) Ahead() (y, x int) {
	switch a.Dir {
	case North:
		return a.Y - 1, a.X
	case South:
		return a.Y + 1, a.X
	case West:
		return a.Y, a.X - 1
	default:
		return a.Y, a.X + 1
	}
}

// Execute applies one primitive action to the ant.
func (a *Ant) Execute(cmd CommandOp, board *Board) {
	switch cmd {
	case Skip:
	case Left:
		a.Dir = a.Dir.TurnLeft()
	case Right:
		a.Dir = a.Dir.TurnRight()
	case Move:
		y, x := a.Ahead()
		a.Y, a.X = y, x
		if board.Get(y, x) == Food {
			a.FoodEaten++
			board.Clear(y, x)
		}
	}
}

// Eval interprets one pass of the program against the ant and board.
func Eval(s *Statement, a *Ant, board *Board) {
	switch s.Op {
	case OpIfFoodAhead:
		y, x := a.Ahead()
		if board.Get(y, x) == Food {
			Eval(s.Args[0].(*Statement), a, board)
		} else {
			Eval(s.Args[1].(*Statement), a, board)
		}
	case OpProg2:
		Eval(s.Args[0].(*Statement), a, board)
		Eval(s.Args[1].(*Statement), a, board)
	case OpProg3:
		Eval(s.Args[0].(*Statement), a, board)
		Eval(s.Args[1].(*Statement), a, board)
		Eval(s.Args[2].(*Statement), a, board)
	case OpDo:
		a.Execute(s.Args[0].(*Command).Op, board)
	}
}

// Score runs the program MaxTime times over a fresh trail, starting the
// ant at the origin facing east, and scores it by the food eaten.
func Score(program *Statement, _ *rand.Rand) gp.SimpleFitness {
	board := SantaFe()
	a := &Ant{Dir: East}
	for t := 0; t < MaxTime; t++ {
		Eval(program, a, board)
	}
	return gp.NewSimpleFitness(gp.Score{Name: "food_eaten", Value: gp.Number(a.FoodEaten)})
}

// Solved reports whether the program ate the whole trail.
func Solved(f gp.SimpleFitness) bool {
	return f.ScoreCard().Total() >= TrailFood
}
