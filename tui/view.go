package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Styles (defined at package init for reuse)
var (
	// Color styles
	styleGreen  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleYellow = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	styleRed    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleCyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styleGray   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Panel styles
	stylePanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	styleEventInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	styleEventWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	styleEventError = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Build panels
	header := m.renderHeader()
	progress := m.renderProgress()
	stats := m.renderStats()
	shape := m.renderShape()
	champion := m.renderChampion()
	events := m.renderEvents()
	footer := m.renderFooter()

	// Stack panels vertically
	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		progress,
		lipgloss.JoinHorizontal(lipgloss.Top, stats, shape),
		champion,
		events,
		footer,
	)

	return body
}

func (m Model) renderHeader() string {
	runtime := time.Since(m.snapshot.StartTime)
	return styleHeader.Render(fmt.Sprintf(
		"%s │ problem=%s │ mode=%s │ runtime=%s",
		m.snapshot.Title,
		m.snapshot.Problem,
		m.snapshot.Mode,
		FormatDuration(runtime),
	))
}

func (m Model) renderProgress() string {
	if m.snapshot.Generations <= 0 {
		return stylePanel.Render(fmt.Sprintf(
			"Gen %d %s", m.snapshot.Generation, styleDim.Render("(until solved)"),
		))
	}
	ratio := float64(m.snapshot.Generation) / float64(m.snapshot.Generations)
	if ratio > 1 {
		ratio = 1
	}
	return stylePanel.Render(fmt.Sprintf(
		"Gen %d/%d %s",
		m.snapshot.Generation,
		m.snapshot.Generations,
		m.progress.ViewAs(ratio),
	))
}

func (m Model) renderStats() string {
	bestColor := m.scoreChangeColor(m.snapshot.BestScore)

	return stylePanel.Width(50).Render(fmt.Sprintf(
		"Fitness: best=%s │ avg=%.4f │ pop=%d",
		bestColor,
		m.snapshot.AvgScore,
		m.snapshot.PopulationSize,
	))
}

func (m Model) renderShape() string {
	return stylePanel.Width(50).Render(fmt.Sprintf(
		"Shape: meanDepth=%s │ rate=%.0f prog/s",
		m.depthColor(m.snapshot.MeanDepth),
		m.snapshot.RatePerSec,
	))
}

func (m Model) renderChampion() string {
	c := m.snapshot.Champion

	if c.Timestamp.IsZero() {
		return stylePanel.Render(fmt.Sprintf(
			"Champion: %s", styleDim.Render("(none yet)"),
		))
	}

	program := c.Program
	if maxLen := m.width - 20; maxLen > 10 && len(program) > maxLen {
		program = program[:maxLen] + "…"
	}

	return stylePanel.Render(fmt.Sprintf(
		"Champion: score=%s │ depth=%d │ nodes=%d\n%s",
		styleGreen.Render(fmt.Sprintf("%.4f", c.Score)),
		c.Depth,
		c.Nodes,
		styleCyan.Render(program),
	))
}

func (m Model) renderEvents() string {
	// viewport.Model is a struct, not a pointer - never nil
	// Content is updated in Update() on MsgEvent, not here
	if !m.ready || m.width == 0 {
		return stylePanel.Render("Events: initializing...")
	}
	return stylePanel.Render("Events (scroll):") + "\n" + m.viewport.View()
}

func (m Model) renderFooter() string {
	hints := []string{"q: quit", "p: pause", "d: debug"}
	if m.paused {
		hints = append(hints, "(PAUSED)")
	}

	hintStrings := make([]string, len(hints))
	for i, h := range hints {
		hintStrings[i] = styleDim.Render(h)
	}

	return styleGray.Render("│ " + strings.Join(hintStrings, " │ ") + " │")
}

// Color helper functions

func (m Model) scoreChangeColor(score float64) string {
	// Compare with previous best score
	if score > m.prevBest {
		return styleGreen.Render(fmt.Sprintf("%.4f ↑", score))
	}
	if score < m.prevBest {
		return styleRed.Render(fmt.Sprintf("%.4f ↓", score))
	}
	return styleDim.Render(fmt.Sprintf("%.4f =", score))
}

func (m Model) depthColor(depth float64) string {
	if depth < 10 {
		return styleGreen.Render(fmt.Sprintf("%.1f", depth))
	}
	if depth < 17 {
		return styleYellow.Render(fmt.Sprintf("%.1f", depth))
	}
	return styleRed.Render(fmt.Sprintf("%.1f", depth))
}

func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if minutes > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}
