package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"syscall"

	gp "github.com/darwins-challenge/moonlander-gp"
	"github.com/darwins-challenge/moonlander-gp/lander"
	"github.com/darwins-challenge/moonlander-gp/logx"
	"github.com/darwins-challenge/moonlander-gp/runner"
	"github.com/darwins-challenge/moonlander-gp/tui"
	"github.com/darwins-challenge/moonlander-gp/web"
)

func main() {
	fmt.Println("Moon Lander Evolution")
	fmt.Println("=====================")

	cfg := runner.LanderDefaults()

	configPath := flag.String("config", "", "TOML config file (flags override it)")
	popSize := flag.Int("pop", cfg.PopulationSize, "population size")
	generations := flag.Int("generations", cfg.Generations, "generations to run (0 = until solved or interrupted)")
	maxDepth := flag.Int("max_depth", cfg.MaxDepth, "maximum program height")
	tournament := flag.Int("tournament", cfg.TournamentSize, "tournament size for parent selection")
	reproduce := flag.Int("reproduce", cfg.ReproduceWeight, "reproduction weight")
	mutate := flag.Int("mutate", cfg.MutateWeight, "mutation weight")
	crossover := flag.Int("crossover", cfg.CrossoverWeight, "crossover weight")
	trials := flag.Int("trials", cfg.Trials, "randomized descents averaged per score")
	seedFlag := flag.Int64("seed", 0, "random seed (0 = time-based, nonzero = reproducible)")
	resume := flag.Bool("resume", false, "resume from the checkpoint file")
	checkpointPath := flag.String("checkpoint", cfg.CheckpointPath, "checkpoint output path")
	checkpointEvery := flag.Int("checkpoint_every", cfg.CheckpointEvery, "auto-save checkpoint every N generations (0 = only on exit)")
	championsPath := flag.String("champions", cfg.ChampionsPath, "champions log path (JSONL)")
	seedChampions := flag.Int("seed_champions", cfg.SeedChampions, "champions from past runs injected into the start population")
	stall := flag.Int("stall", cfg.StallGenerations, "restart after N generations without improvement (0 = never)")
	stallKeep := flag.Float64("stall_keep", float64(cfg.StallKeep), "population fraction kept across a stall restart")
	tuiFlag := flag.Bool("tui", cfg.TUI, "full-screen dashboard")
	webFlag := flag.Bool("web", cfg.Web, "live web dashboard")
	webPort := flag.Int("web_port", cfg.WebPort, "web dashboard port (first free port from here up)")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			fmt.Printf("Error loading config %s: %v\n", *configPath, err)
			os.Exit(1)
		}
		fmt.Printf("Config: %s\n", *configPath)
	}

	// Flags the user actually set override both defaults and the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pop":
			cfg.PopulationSize = *popSize
		case "generations":
			cfg.Generations = *generations
		case "max_depth":
			cfg.MaxDepth = *maxDepth
		case "tournament":
			cfg.TournamentSize = *tournament
		case "reproduce":
			cfg.ReproduceWeight = *reproduce
		case "mutate":
			cfg.MutateWeight = *mutate
		case "crossover":
			cfg.CrossoverWeight = *crossover
		case "trials":
			cfg.Trials = *trials
		case "seed":
			cfg.Seed = *seedFlag
		case "resume":
			cfg.Resume = *resume
		case "checkpoint":
			cfg.CheckpointPath = *checkpointPath
		case "checkpoint_every":
			cfg.CheckpointEvery = *checkpointEvery
		case "champions":
			cfg.ChampionsPath = *championsPath
		case "seed_champions":
			cfg.SeedChampions = *seedChampions
		case "stall":
			cfg.StallGenerations = *stall
		case "stall_keep":
			cfg.StallKeep = float32(*stallKeep)
		case "tui":
			cfg.TUI = *tuiFlag
		case "web":
			cfg.Web = *webFlag
		case "web_port":
			cfg.WebPort = *webPort
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("CPU Cores: %d\n", runtime.NumCPU())
	fmt.Printf("Trials per score: %d\n", cfg.Trials)
	if cfg.Seed != 0 {
		fmt.Printf("Seed: %d (user-provided)\n", cfg.Seed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Println("\n\nReceived stop signal. Shutting down gracefully...")
		cancel()
	}()

	if cfg.Web {
		port := web.FindAvailablePort(cfg.WebPort)
		logx.LogWebServer(fmt.Sprintf("localhost:%d", port))
		go func() {
			if err := web.Start(port); err != nil {
				fmt.Printf("WARN: web dashboard: %v\n", err)
			}
		}()
	}

	dashboard := false
	if cfg.TUI {
		mode := "evolve"
		if cfg.Resume {
			mode = "resume"
		}
		err := tui.Start(ctx, tui.TUIConfig{Title: "moonlander-gp", Problem: cfg.Problem, Mode: mode})
		if err != nil {
			fmt.Printf("WARN: %v\n", err)
		} else {
			dashboard = true
			logx.SetQuiet(true)
			// Quitting the dashboard ends the run too.
			go func() {
				<-tui.Done()
				cancel()
			}()
		}
	}

	nTrials := cfg.Trials
	problem := runner.Problem[*lander.Program, gp.SimpleFitness]{
		Generate: lander.RandomProgram,
		Score: func(p *lander.Program, rng *rand.Rand) gp.SimpleFitness {
			return lander.ScoreTrials(p, nTrials, rng)
		},
		Format: func(p *lander.Program) string { return p.String() },
		Parse:  lander.Parse,
		Solved: lander.Solved,
	}

	res, err := runner.Run(ctx, cfg, problem)

	if dashboard {
		tui.Stop()
		logx.SetQuiet(false)
	}
	if err != nil {
		web.SendError(err.Error())
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if dashboard {
		printSummary(res)
	}
}

// printSummary recaps the run once the dashboard has released the
// terminal; non-dashboard runs already saw the logx final block.
func printSummary(res *runner.RunResult) {
	const w = 64
	fmt.Println()
	fmt.Print(logx.BoxHeader("RUN SUMMARY", w))
	fmt.Print(logx.BoxRow(fmt.Sprintf("Ended at:    generation %d (%s scored)",
		res.LastGen, logx.FormatNumberSimple(res.Generations)), w))
	fmt.Print(logx.BoxRow(fmt.Sprintf("Seed:        %d", res.Seed), w))
	if res.Best.Tree != "" {
		fmt.Print(logx.BoxRow(fmt.Sprintf("Best:        %.2f (depth %d, %d nodes)",
			res.Best.Score, res.Best.Depth, res.Best.Nodes), w))
	}
	fmt.Print(logx.BoxFooter(w))
	fmt.Printf("Solved: %s (safe touchdown on every trial)\n", logx.Checkmark(res.Solved))
	if res.Best.Tree != "" {
		fmt.Printf("  %s\n", res.Best.Tree)
		if len(res.Best.Scores) > 0 {
			names := make([]string, 0, len(res.Best.Scores))
			for name := range res.Best.Scores {
				names = append(names, name)
			}
			sort.Strings(names)
			values := make([]float32, len(names))
			for i, name := range names {
				values[i] = res.Best.Scores[name]
			}
			logx.PrintScoreTable("Score components:", names, values)
		}
	}
}
