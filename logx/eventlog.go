package logx

import (
	"fmt"
	"time"

	"github.com/darwins-challenge/moonlander-gp/tui"
)

// Convenience functions that forward to TUI

func LogNewChampion(gen int, oldScore, newScore float32) {
	event := tui.Event{
		Timestamp: time.Now(),
		Type:      "BEST",
		Severity:  "info",
		Message:   fmt.Sprintf("Gen %d: best score improved: %.4f → %.4f", gen, oldScore, newScore),
	}
	tui.PushEvent(event)
}

func LogSolved(gen int, score float32) {
	event := tui.Event{
		Timestamp: time.Now(),
		Type:      "SOLVED",
		Severity:  "info",
		Message:   fmt.Sprintf("Perfect score %.4f reached in generation %d", score, gen),
	}
	tui.PushEvent(event)
}

func LogStagnationEvent(gensNoImprove int) {
	event := tui.Event{
		Timestamp: time.Now(),
		Type:      "STAGNATION",
		Severity:  "warning",
		Message:   fmt.Sprintf("No improvement for %d generations", gensNoImprove),
	}
	tui.PushEvent(event)
}

func LogCheckpointEvent(path string, gen int) {
	event := tui.Event{
		Timestamp: time.Now(),
		Type:      "CHK",
		Severity:  "info",
		Message:   fmt.Sprintf("Checkpoint saved to %s (gen %d)", path, gen),
	}
	tui.PushEvent(event)
}

func LogWebClients(count int) {
	event := tui.Event{
		Timestamp: time.Now(),
		Type:      "WEB",
		Severity:  "info",
		Message:   fmt.Sprintf("%d live feed client(s) connected", count),
	}
	tui.PushEvent(event)
}

func LogBugWarning(message string) {
	event := tui.Event{
		Timestamp: time.Now(),
		Type:      "BUG",
		Severity:  "error",
		Message:   message,
	}
	tui.PushEvent(event)
}
