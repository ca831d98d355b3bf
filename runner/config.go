package runner

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds every knob of an evolution run. Values come from the
// problem defaults, then an optional TOML file, then command line
// flags, each layer overriding the previous one.
type Config struct {
	Problem        string `toml:"problem"`
	PopulationSize int    `toml:"population_size"`
	Generations    int    `toml:"generations"` // 0 = run until solved or interrupted
	MaxDepth       int    `toml:"max_depth"`
	TournamentSize int    `toml:"tournament_size"`

	ReproduceWeight int `toml:"reproduce_weight"`
	MutateWeight    int `toml:"mutate_weight"`
	CrossoverWeight int `toml:"crossover_weight"`

	// Trials is the number of randomized evaluations averaged per
	// program. Problems with deterministic scoring use 1.
	Trials int `toml:"trials"`

	Seed int64 `toml:"seed"` // 0 = time-based

	CheckpointPath  string `toml:"checkpoint_path"`
	CheckpointEvery int    `toml:"checkpoint_every"` // generations between saves, 0 = only on exit
	Resume          bool   `toml:"resume"`

	ChampionsPath string `toml:"champions_path"`
	SeedChampions int    `toml:"seed_champions"` // past champions injected into a fresh population

	StallGenerations int     `toml:"stall_generations"` // 0 = never restart
	StallKeep        float32 `toml:"stall_keep"`

	TUI     bool `toml:"tui"`
	Web     bool `toml:"web"`
	WebPort int  `toml:"web_port"`
}

// AntDefaults returns the stock configuration for the ant trail problem.
func AntDefaults() Config {
	return Config{
		Problem:        "ant",
		PopulationSize: 500,
		Generations:    50,
		MaxDepth:       8,
		TournamentSize: 10,

		ReproduceWeight: 10,
		MutateWeight:    20,
		CrossoverWeight: 70,

		Trials: 1,

		CheckpointPath:  "ant_checkpoint.json",
		CheckpointEvery: 10,
		ChampionsPath:   "ant_champions.jsonl",

		StallKeep: 0.25,

		WebPort: 8080,
	}
}

// LanderDefaults returns the stock configuration for the moon lander
// problem.
func LanderDefaults() Config {
	return Config{
		Problem:        "lander",
		PopulationSize: 400,
		Generations:    80,
		MaxDepth:       7,
		TournamentSize: 7,

		ReproduceWeight: 10,
		MutateWeight:    30,
		CrossoverWeight: 60,

		Trials: 5,

		CheckpointPath:  "lander_checkpoint.json",
		CheckpointEvery: 10,
		ChampionsPath:   "lander_champions.jsonl",

		StallKeep: 0.25,

		WebPort: 8080,
	}
}

// LoadFile overlays the TOML file at path onto c. Unknown keys are an
// error so typos in config files fail loudly.
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config keys: %v", undecoded)
	}
	return nil
}

// Validate rejects configurations the engine cannot run.
func (c *Config) Validate() error {
	if c.PopulationSize < 2 {
		return fmt.Errorf("population_size must be at least 2, got %d", c.PopulationSize)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", c.Generations)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be at least 1, got %d", c.MaxDepth)
	}
	if c.TournamentSize < 1 {
		return fmt.Errorf("tournament_size must be at least 1, got %d", c.TournamentSize)
	}
	if c.ReproduceWeight < 0 || c.MutateWeight < 0 || c.CrossoverWeight < 0 {
		return fmt.Errorf("operator weights must not be negative")
	}
	if c.ReproduceWeight+c.MutateWeight+c.CrossoverWeight <= 0 {
		return fmt.Errorf("at least one operator weight must be positive")
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials must be at least 1, got %d", c.Trials)
	}
	if c.CheckpointEvery < 0 {
		return fmt.Errorf("checkpoint_every must not be negative, got %d", c.CheckpointEvery)
	}
	if c.SeedChampions < 0 {
		return fmt.Errorf("seed_champions must not be negative, got %d", c.SeedChampions)
	}
	if c.StallGenerations < 0 {
		return fmt.Errorf("stall_generations must not be negative, got %d", c.StallGenerations)
	}
	if c.StallGenerations > 0 && (c.StallKeep < 0 || c.StallKeep > 1) {
		return fmt.Errorf("stall_keep must be within [0,1], got %v", c.StallKeep)
	}
	return nil
}
