package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/darwins-challenge/moonlander-gp/logx"
	"github.com/darwins-challenge/moonlander-gp/runner"
)

func main() {
	in := flag.String("in", "ant_champions.jsonl", "champions log to read")
	top := flag.Int("top", 10, "how many champions to keep, best first")
	out := flag.String("out", "", "write the kept champions to this JSONL file (default: print only)")
	full := flag.Bool("full", false, "print full program trees instead of the table")
	flag.Parse()

	records, err := runner.LoadChampions(*in, 0)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", *in, err)
		os.Exit(1)
	}
	if len(records) == 0 {
		fmt.Printf("No champions in %s\n", *in)
		return
	}

	// Best first; equal scores keep the earlier generation on top.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Score > records[j].Score
	})
	if *top > 0 && len(records) > *top {
		records = records[:*top]
	}

	if *full {
		for i, r := range records {
			fmt.Printf("#%d  gen=%d  score=%.4f  depth=%d  nodes=%d\n",
				i+1, r.Generation, r.Score, r.Depth, r.Nodes)
			fmt.Printf("  %s\n", r.Tree)
		}
	} else {
		rows := make([]logx.ChampionRow, len(records))
		for i, r := range records {
			rows[i] = logx.ChampionRow{
				Generation: r.Generation,
				Score:      r.Score,
				Depth:      r.Depth,
				Nodes:      r.Nodes,
				Program:    r.Tree,
			}
		}
		logx.PrintChampionTable(rows)
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Printf("Error creating %s: %v\n", *out, err)
			os.Exit(1)
		}
		defer f.Close()
		for _, r := range records {
			b, err := json.Marshal(r)
			if err != nil {
				fmt.Printf("Error encoding record: %v\n", err)
				os.Exit(1)
			}
			b = append(b, '\n')
			if _, err := f.Write(b); err != nil {
				fmt.Printf("Error writing %s: %v\n", *out, err)
				os.Exit(1)
			}
		}
		fmt.Printf("Successfully wrote top %d champions to %s\n", len(records), *out)
	}
}
