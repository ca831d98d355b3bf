package ant

import gp "github.com/darwins-challenge/moonlander-gp"

// Square is one cell of the trail board.
type Square uint8

const (
	Empty Square = iota
	Food
)

// Board is an n×n torus: coordinates wrap on both axes, so the ant can
// never walk off an edge.
type Board struct {
	n     int
	cells []Square
	food  int
}

// NewBoard returns an empty n×n board.
func NewBoard(n int) *Board {
	return &Board{n: n, cells: make([]Square, n*n)}
}

func (b *Board) index(y, x int) int {
	return gp.Torus(y, b.n)*b.n + gp.Torus(x, b.n)
}

// PutFood marks the square at (y, x) as food.
func (b *Board) PutFood(y, x int) {
	i := b.index(y, x)
	if b.cells[i] != Food {
		b.cells[i] = Food
		b.food++
	}
}

// Clear empties the square at (y, x).
func (b *Board) Clear(y, x int) {
	i := b.index(y, x)
	if b.cells[i] == Food {
		b.food--
	}
	b.cells[i] = Empty
}

// Get returns the square at (y, x).
func (b *Board) Get(y, x int) Square {
	return b.cells[b.index(y, x)]
}

// FoodLeft returns how many food squares remain.
func (b *Board) FoodLeft() int { return b.food }

// Size returns the board edge length.
func (b *Board) Size() int { return b.n }

// TrailFood is the number of food squares on the Santa Fe trail.
const TrailFood = 89

// SantaFe builds the classic Santa Fe trail on a 32×32 board.
func SantaFe() *Board {
	b := NewBoard(32)
	for _, p := range trail {
		b.PutFood(p[0], p[1])
	}
	return b
}

// trail lists the food squares as {y, x} pairs, row by row.
var trail = [][2]int{
	{0, 1}, {0, 2}, {0, 3},
	{1, 3},
	{2, 3}, {2, 25}, {2, 26}, {2, 27},
	{3, 3}, {3, 24}, {3, 29},
	{4, 3}, {4, 24}, {4, 29},
	{5, 3}, {5, 4}, {5, 5}, {5, 6}, {5, 8}, {5, 9}, {5, 10}, {5, 11}, {5, 12}, {5, 21}, {5, 22},
	{6, 12}, {6, 29},
	{7, 12},
	{8, 12}, {8, 20},
	{9, 12}, {9, 20}, {9, 29},
	{10, 12}, {10, 20},
	{11, 20},
	{12, 12}, {12, 29},
	{13, 12},
	{14, 12}, {14, 20}, {14, 26}, {14, 27}, {14, 28},
	{15, 12}, {15, 20}, {15, 23},
	{16, 17},
	{17, 16},
	{18, 12}, {18, 16}, {18, 24},
	{19, 12}, {19, 16}, {19, 27},
	{20, 12},
	{21, 12}, {21, 16},
	{22, 12}, {22, 26},
	{23, 12}, {23, 23},
	{24, 3}, {24, 4}, {24, 7}, {24, 8}, {24, 9}, {24, 10}, {24, 11}, {24, 16},
	{25, 1}, {25, 16},
	{26, 1}, {26, 16},
	{27, 1}, {27, 8}, {27, 9}, {27, 10}, {27, 11}, {27, 12}, {27, 13}, {27, 14},
	{28, 1}, {28, 7},
	{29, 7},
	{30, 2}, {30, 3}, {30, 4}, {30, 5},
}
