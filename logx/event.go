package logx

import (
	"fmt"
	"strings"
	"time"
)

const eventSep = "═══════════════════════════════════════════════════════════════════"

// LogChampionBlock - new best program event block
// gen: generation the champion appeared in
// card: formatted score card, e.g. "89.0000 (food_eaten=89.0000)"
// depth: tree depth of the champion
// nodes: node count of the champion
// tree: serialized program text (long trees are truncated for display)
func LogChampionBlock(gen int, card string, depth, nodes int, tree string) {
	if quiet {
		return
	}
	fmt.Printf("%s\n%s  %s  %s NEW CHAMPION\nGeneration:   %d\nScore:        %s\nDepth:        %s\nNodes:        %s\nProgram:      %s\n%s\n",
		eventSep,
		C(cyan, time.Now().UTC().Format("15:04:05.000Z")),
		Channel("EVO "),
		Icon("champion"),
		gen,
		card,
		DepthColor(depth),
		NodesColor(nodes),
		trimTree(tree),
		eventSep,
	)
}

// LogSolvedBlock - problem solved event block (perfect score reached)
func LogSolvedBlock(gen int, card string, tree string) {
	if quiet {
		return
	}
	fmt.Printf("%s\n%s  %s  %s SOLVED\nGeneration:   %d\nScore:        %s\nProgram:      %s\n%s\n",
		eventSep,
		C(cyan, time.Now().UTC().Format("15:04:05.000Z")),
		Channel("EVO "),
		Success(Icon("solved")),
		gen,
		card,
		trimTree(tree),
		eventSep,
	)
}

// LogFinalBlock - end-of-run summary event block
// problem: problem name ("ant", "lander")
// gens: generations completed
// card: formatted score card of the final champion
// elapsed: total run time
func LogFinalBlock(problem string, gens int, card string, elapsed time.Duration) {
	if quiet {
		return
	}
	fmt.Printf("%s\n%s  %s  RUN COMPLETE\nProblem:      %s\nGenerations:  %d\nBest Score:   %s\nRuntime:      %s\n%s\n",
		eventSep,
		C(cyan, time.Now().UTC().Format("15:04:05.000Z")),
		Channel("PROG"),
		problem,
		gens,
		card,
		FormatDuration(elapsed),
		eventSep,
	)
}

// trimTree shortens a serialized program for single-block display
func trimTree(tree string) string {
	const max = 160
	tree = strings.ReplaceAll(tree, "\n", " ")
	if len(tree) <= max {
		return tree
	}
	return tree[:max] + Dim("…")
}
