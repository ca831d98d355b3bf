package runner

import (
	"encoding/json"
	"os"
	"time"
)

// ChampionRecord is a serializable snapshot of one champion program.
// The tree is stored as text so checkpoints survive grammar-internal
// refactors and stay readable with plain tools.
type ChampionRecord struct {
	Generation int                `json:"generation"`
	Score      float32            `json:"score"`
	Scores     map[string]float32 `json:"scores"`
	Tree       string             `json:"tree"`
	Depth      int                `json:"depth"`
	Nodes      int                `json:"nodes"`
}

// Checkpoint is the persisted state of a run. The population itself is
// not stored: a resumed run regrows a fresh population and injects the
// recorded champions into it.
type Checkpoint struct {
	Version     int    `json:"version"`
	SavedAtUnix int64  `json:"saved_at_unix"`
	Seed        int64  `json:"seed"`
	Problem     string `json:"problem"`

	Generation int     `json:"generation"`
	BestScore  float32 `json:"best_score"`

	Champions []ChampionRecord `json:"champions"`
}

func SaveCheckpoint(path string, cp Checkpoint) error {
	cp.Version = 1
	cp.SavedAtUnix = time.Now().Unix()

	tmp := path + ".tmp"
	b, err := json.MarshalIndent(cp, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, b, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path) // atomic replace
}

func LoadCheckpoint(path string) (Checkpoint, error) {
	var cp Checkpoint
	b, err := os.ReadFile(path)
	if err != nil {
		return cp, err
	}
	err = json.Unmarshal(b, &cp)
	return cp, err
}
