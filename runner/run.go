package runner

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	gp "github.com/darwins-challenge/moonlander-gp"
	"github.com/darwins-challenge/moonlander-gp/logx"
	"github.com/darwins-challenge/moonlander-gp/tui"
	"github.com/darwins-challenge/moonlander-gp/web"
)

const runTitle = "moonlander-gp"

// Champions kept in a checkpoint; older ones stay in the JSONL log.
const maxCheckpointChampions = 100

// Problem binds a program grammar to the engine: how to grow random
// programs, how to score them, and how to move them in and out of
// text form for persistence.
type Problem[P gp.Node, F gp.Fitness] struct {
	Generate func(w gp.NodeWeights, rng *rand.Rand) P
	Score    func(p P, rng *rand.Rand) F
	Format   func(p P) string
	Parse    func(s string) (P, error)
	Solved   func(f F) bool // nil = open-ended problem
}

// RunResult summarizes a finished run.
type RunResult struct {
	Seed        int64
	Generations int // generations scored by this run
	LastGen     int
	Solved      bool
	Best        ChampionRecord
}

// Run drives the evolution loop until ctx is cancelled, the configured
// generation count is reached, or the problem reports itself solved.
// A final checkpoint is always written before returning.
func Run[P gp.Node, F gp.Fitness](ctx context.Context, cfg Config, problem Problem[P, F]) (*RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	mode := "evolve"
	startGen := 0
	var records []ChampionRecord
	var seedTrees []ChampionRecord

	if cfg.Resume {
		cp, err := LoadCheckpoint(cfg.CheckpointPath)
		switch {
		case err != nil:
			warn("failed to load checkpoint: %v", err)
		case cp.Problem != "" && cp.Problem != cfg.Problem:
			return nil, fmt.Errorf("checkpoint %s belongs to problem %q, not %q",
				cfg.CheckpointPath, cp.Problem, cfg.Problem)
		default:
			mode = "resume"
			startGen = cp.Generation + 1
			records = cp.Champions
			seedTrees = cp.Champions
			if cfg.Seed == 0 && cp.Seed != 0 {
				seed = cp.Seed
				rng = rand.New(rand.NewSource(seed))
			}
			logx.LogCheckpointLoad(cfg.CheckpointPath, cp.Generation, cp.BestScore, len(cp.Champions))
		}
	} else if cfg.SeedChampions > 0 {
		recs, err := LoadChampions(cfg.ChampionsPath, cfg.SeedChampions)
		if err != nil {
			if !os.IsNotExist(err) {
				warn("failed to load champions: %v", err)
			}
		} else {
			seedTrees = recs
		}
	}

	pop := gp.RandomPopulation[P, F](cfg.PopulationSize, cfg.MaxDepth, rng, problem.Generate)
	pop.Generation = startGen

	// Inject persisted champions over the random ramp, at most half the
	// population so fresh material still dominates.
	seeded := 0
	maxSeed := pop.Len() / 2
	for _, rec := range seedTrees {
		if seeded >= maxSeed {
			break
		}
		p, err := problem.Parse(rec.Tree)
		if err != nil {
			continue
		}
		pop.Programs[seeded] = p
		seeded++
	}

	logx.LogRunStart(cfg.Problem, pop.Len(), cfg.Generations, seeded, seed)

	selector := func(pop *gp.Population[P, F], rng *rand.Rand) P {
		return gp.TournamentSelection(cfg.TournamentSize, pop, rng)
	}
	weights := gp.Weights{
		Reproduce: cfg.ReproduceWeight,
		Mutate:    cfg.MutateWeight,
		Crossover: cfg.CrossoverWeight,
	}

	stats := &GenStats{}
	startTime := time.Now()
	evaluated := 0

	var bestCard *gp.ScoreCard
	var bestRecord ChampionRecord
	var bestFoundAt time.Time
	gensSinceImprove := 0
	lastGen := startGen
	solved := false

	endGen := 0
	if cfg.Generations > 0 {
		endGen = startGen + cfg.Generations
	}

	save := func(gen int) {
		cp := Checkpoint{
			Seed:       seed,
			Problem:    cfg.Problem,
			Generation: gen,
			BestScore:  bestRecord.Score,
			Champions:  records,
		}
		if len(cp.Champions) > maxCheckpointChampions {
			cp.Champions = cp.Champions[len(cp.Champions)-maxCheckpointChampions:]
		}
		if err := SaveCheckpoint(cfg.CheckpointPath, cp); err != nil {
			warn("failed to save checkpoint: %v", err)
			return
		}
		logx.LogCheckpoint(cfg.CheckpointPath, gen, time.Since(startTime))
		logx.LogCheckpointEvent(cfg.CheckpointPath, gen)
	}

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		default:
		}

		pop.Score(problem.Score, rng)
		gen := pop.Generation
		lastGen = gen
		evaluated += pop.Len()

		best := pop.BestScore()
		avg := pop.AvgScore()
		meanDepth := MeanDepth(pop.Programs)
		elapsed := time.Since(startTime)
		rate := 0.0
		if secs := elapsed.Seconds(); secs > 0 {
			rate = float64(evaluated) / secs
		}

		stats.Record(best, avg)
		logx.LogProgress(gen, endGen, best, avg, meanDepth, rate)

		idx := bestIndex(pop)
		champCard := pop.Scores[idx].ScoreCard()

		if bestCard == nil || champCard.Cmp(bestCard) > 0 {
			champion := pop.Programs[idx]
			tree := problem.Format(champion)
			rec := ChampionRecord{
				Generation: gen,
				Score:      champCard.Total(),
				Scores:     cardScores(champCard),
				Tree:       tree,
				Depth:      gp.Depth(champion),
				Nodes:      gp.NodeCount(champion),
			}
			records = append(records, rec)
			if err := AppendChampion(cfg.ChampionsPath, rec); err != nil {
				warn("failed to append champion: %v", err)
			}

			logx.LogChampionBlock(gen, champCard.String(), rec.Depth, rec.Nodes, tree)
			if bestCard != nil {
				logx.LogNewChampion(gen, bestCard.Total(), rec.Score)
			}
			web.SendChampion(gen, rec.Score, rec.Scores, rec.Depth, rec.Nodes, tree)

			bestCard = champCard
			bestRecord = rec
			bestFoundAt = time.Now()
			gensSinceImprove = 0
		} else {
			gensSinceImprove++
		}

		tui.PushState(tui.StateSnapshot{
			Title:          runTitle,
			Problem:        cfg.Problem,
			Mode:           mode,
			StartTime:      startTime,
			Generation:     gen,
			Generations:    endGen,
			PopulationSize: pop.Len(),
			RatePerSec:     rate,
			BestScore:      float64(best),
			AvgScore:       float64(avg),
			MeanDepth:      meanDepth,
			Champion: tui.ChampionInfo{
				Score:     bestRecord.Score,
				Depth:     bestRecord.Depth,
				Nodes:     bestRecord.Nodes,
				Program:   bestRecord.Tree,
				Timestamp: bestFoundAt,
			},
		})

		web.SendGeneration(gen, best, avg, meanDepth, pop.Len(), logx.FormatDuration(elapsed), rate)
		if gen > startGen && (gen-startGen)%10 == 0 {
			sendRunStats(gen, stats)
		}

		if problem.Solved != nil && problem.Solved(pop.Scores[idx]) {
			logx.LogSolvedBlock(gen, champCard.String(), problem.Format(pop.Programs[idx]))
			logx.LogSolved(gen, champCard.Total())
			web.SendStatus("solved", fmt.Sprintf("solved in generation %d", gen))
			solved = true
			break loop
		}

		if cfg.CheckpointEvery > 0 && gen > startGen && (gen-startGen)%cfg.CheckpointEvery == 0 {
			save(gen)
		}

		if endGen > 0 && gen+1 >= endGen {
			break loop
		}

		if cfg.StallGenerations > 0 && gensSinceImprove >= cfg.StallGenerations {
			logx.LogStall(gensSinceImprove, cfg.StallKeep)
			logx.LogStagnationEvent(gensSinceImprove)
			next := gp.RetainBest(gp.Number(cfg.StallKeep), pop, cfg.MaxDepth, rng, problem.Generate)
			next.Generation = gen + 1
			pop = next
			gensSinceImprove = 0
		} else {
			pop = gp.Evolve(pop, weights, cfg.MaxDepth, rng, selector)
		}
	}

	save(lastGen)
	sendRunStats(lastGen, stats)
	if !solved {
		web.SendStatus("stopped", fmt.Sprintf("run ended at generation %d", lastGen))
	}

	finalCard := "(no scored generations)"
	if bestCard != nil {
		finalCard = bestCard.String()
	}
	logx.LogFinalBlock(cfg.Problem, stats.Generations(), finalCard, time.Since(startTime))

	return &RunResult{
		Seed:        seed,
		Generations: stats.Generations(),
		LastGen:     lastGen,
		Solved:      solved,
		Best:        bestRecord,
	}, nil
}

// warn reports a non-fatal problem wherever the operator is looking:
// the web feed always, the dashboard event log while it owns the
// terminal, stdout otherwise.
func warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	web.SendWarning(msg)
	if tui.Active() {
		logx.LogBugWarning(msg)
		return
	}
	fmt.Println(logx.Warn("WARN: " + msg))
}

func bestIndex[P gp.Node, F gp.Fitness](pop *gp.Population[P, F]) int {
	best := 0
	for i := 1; i < pop.Len(); i++ {
		if pop.Scores[i].ScoreCard().Cmp(pop.Scores[best].ScoreCard()) > 0 {
			best = i
		}
	}
	return best
}

func cardScores(card *gp.ScoreCard) map[string]float32 {
	out := make(map[string]float32, len(card.Scores()))
	for _, s := range card.Scores() {
		out[s.Name] = s.Value
	}
	return out
}

func sendRunStats(gen int, stats *GenStats) {
	sum := stats.Describe()
	web.SendRunStats(web.RunStatsData{
		Generation: gen,
		BestMean:   sum.BestMean,
		BestStd:    sum.BestStd,
		BestMin:    sum.BestMin,
		BestMax:    sum.BestMax,
		AvgMean:    sum.AvgMean,
		AvgStd:     sum.AvgStd,
	})
}
