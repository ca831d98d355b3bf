package logx

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// NewTableWriter creates a tabwriter for custom output
func NewTableWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// PrintScoreTable - prints named score components as an aligned table
func PrintScoreTable(prefix string, names []string, values []float32) {
	w := NewTableWriter(os.Stdout)
	fmt.Fprintf(w, "%s\n", prefix)
	for i, name := range names {
		if i < len(values) {
			fmt.Fprintf(w, "  %s:\t%.4f\n", name, values[i])
		}
	}
	w.Flush()
}

// ChampionRow is one line of a champion listing table
type ChampionRow struct {
	Generation int
	Score      float32
	Depth      int
	Nodes      int
	Program    string
}

// PrintChampionTable - prints champion records as an aligned table,
// truncating programs to keep rows on one line
func PrintChampionTable(rows []ChampionRow) {
	w := NewTableWriter(os.Stdout)
	fmt.Fprintf(w, "GEN\tSCORE\tDEPTH\tNODES\tPROGRAM\n")
	for _, r := range rows {
		program := r.Program
		if len(program) > 60 {
			program = program[:60] + "…"
		}
		fmt.Fprintf(w, "%d\t%.4f\t%d\t%d\t%s\n",
			r.Generation, r.Score, r.Depth, r.Nodes, program)
	}
	w.Flush()
}
