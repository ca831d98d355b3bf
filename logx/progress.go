package logx

import (
	"fmt"
	"strings"
	"time"
)

// LogProgress - single line per-generation progress log
// gen: generation just scored
// gens: total generations configured
// best: best fitness total in the generation
// avg: mean fitness total in the generation
// meanDepth: mean tree depth across the population
// rate: programs evaluated per second
func LogProgress(gen, gens int, best, avg float32, meanDepth float64, rate float64) {
	if quiet {
		return
	}
	fmt.Printf("%s  %s  Gen %s/%d | Best: %s | Avg: %s | Depth: %.1f | Rate: %.0f/s\n",
		C(gray, time.Now().UTC().Format("15:04:05Z")),
		Channel("GEN "),
		formatNumber(gen), gens,
		ScoreColor(best), ScoreColor(avg),
		meanDepth, rate,
	)
}

// LogRunStart - run banner line under the boxed header
func LogRunStart(problem string, popSize, gens, seedCount int, seed int64) {
	if quiet {
		return
	}
	fmt.Printf("%s  %s  Problem: %s | Pop: %s | Gens: %d | Seeded champions: %d | Seed: %d\n",
		C(gray, time.Now().UTC().Format("15:04:05Z")),
		Channel("PROG"),
		Highlight(problem),
		formatNumber(popSize), gens, seedCount, seed,
	)
}

// LogCheckpoint - checkpoint saved message (simplified)
func LogCheckpoint(path string, gen int, elapsed time.Duration) {
	if quiet {
		return
	}
	fmt.Printf("%s  %s  %s Checkpoint saved: %s (gen %d, runtime %s)\n",
		C(gray, time.Now().UTC().Format("15:04:05Z")),
		Channel("CHK "),
		Icon("save"),
		path, gen, formatDuration(elapsed),
	)
}

// LogCheckpointLoad - checkpoint loaded message
func LogCheckpointLoad(path string, gen int, best float32, champions int) {
	if quiet {
		return
	}
	fmt.Printf("%s  %s  CHECKPOINT loaded: %s (gen=%d, best=%.4f, champions=%d)\n",
		C(gray, time.Now().UTC().Format("15:04:05Z")),
		Channel("CHK "),
		path, gen, best, champions,
	)
}

// LogWebServer - websocket feed started message
func LogWebServer(addr string) {
	if quiet {
		return
	}
	fmt.Printf("%s  %s  %s Live feed on ws://%s/ws\n",
		C(gray, time.Now().UTC().Format("15:04:05Z")),
		Channel("WEB "),
		Icon("web"),
		addr,
	)
}

// LogStall - stagnation notice with the restart fraction applied
func LogStall(gensNoImprove int, keptFrac float32) {
	if quiet {
		return
	}
	fmt.Printf("%s  %s  %s STALL: no improvement for %d generations, keeping best %.0f%% and regrowing\n",
		C(gray, time.Now().UTC().Format("15:04:05Z")),
		Channel("EVO "),
		Icon("warn"),
		gensNoImprove, keptFrac*100,
	)
}

// formatDuration formats a duration in a human-readable way
// Shows hours, minutes, and seconds (e.g., "1h23m45s" or "45m32s" or "23s")
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", hours, minutes)
}

// Box formatting helpers for compact display

// BoxHeader creates a top border for a boxed section with title
func BoxHeader(title string, width int) string {
	if width < 20 {
		width = 50
	}
	// Create border like: ┌─ TITLE ─────────────────┐
	padding := width - len(title) - 6
	if padding < 2 {
		padding = 2
	}
	return fmt.Sprintf("┌─ %s %s┐\n", C(bold, title), C(gray, strings.Repeat("─", padding)+"─"))
}

// BoxFooter creates a bottom border for a boxed section
func BoxFooter(width int) string {
	if width < 20 {
		width = 50
	}
	return C(gray, "└"+strings.Repeat("─", width-2)+"┘") + "\n"
}

// BoxRow creates a content row for a boxed section (auto-pads to width)
func BoxRow(content string, width int) string {
	if width < 20 {
		width = 50
	}
	padding := width - len(content) - 4 // -4 for "│ " and " │"
	if padding < 0 {
		padding = 0
	}
	return fmt.Sprintf("│ %s%s │\n", content, C(gray, strings.Repeat(" ", padding)))
}

// formatNumber formats a number with thousands separators (e.g., 12,345)
func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var result []string
	for i := len(s); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{s[start:i]}, result...)
	}
	return strings.Join(result, ",")
}

// FormatNumberSimple formats a number with thousands separators (exported version)
func FormatNumberSimple(n int) string {
	return formatNumber(n)
}
