package runner

import (
	"bufio"
	"encoding/json"
	"os"
)

// AppendChampion appends one champion record to the JSONL log at path.
// Champions arrive at most once per generation, so the file is opened
// per call rather than held.
func AppendChampion(path string, rec ChampionRecord) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = f.Write(b)
	return err
}

// LoadChampions loads the last N records from a champions JSONL file
// (simple + safe); limit <= 0 loads every record. Unparseable lines are
// skipped rather than fatal.
func LoadChampions(path string, limit int) ([]ChampionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Ring buffer of last N lines
	var ring []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if limit <= 0 || len(ring) < limit {
			ring = append(ring, line)
		} else {
			// rotate
			copy(ring, ring[1:])
			ring[len(ring)-1] = line
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	out := make([]ChampionRecord, 0, len(ring))
	for _, line := range ring {
		var rec ChampionRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			// don't crash; just skip bad lines
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
