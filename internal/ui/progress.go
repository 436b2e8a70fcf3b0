package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar draws a determinate progress bar for bulk loads.
// Without a TTY it prints a line at every tenth of the total instead.
type ProgressBar struct {
	ui         *UI
	bar        progress.Model
	label      string
	total      int64
	start      time.Time
	lastDecile int64
}

// NewProgressBar creates a new progress bar.
func (u *UI) NewProgressBar(label string, total int64) *ProgressBar {
	return &ProgressBar{
		ui:    u,
		label: label,
		total: total,
		start: time.Now(),
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(30),
			progress.WithoutPercentage(),
		),
	}
}

// Update sets the current progress value and redraws.
func (p *ProgressBar) Update(current int64) {
	pct := 1.0
	if p.total > 0 {
		pct = min(float64(current)/float64(p.total), 1)
	}

	if !p.ui.shouldStyle() {
		decile := int64(pct * 10)
		if decile > p.lastDecile {
			p.lastDecile = decile
			fmt.Fprintf(p.ui.Out, "%s: %d/%d\n", p.label, current, p.total)
		}
		return
	}

	labelStyle := lipgloss.NewStyle().Width(18)
	countStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	fmt.Fprintf(p.ui.Out, "\r\033[K  %s %s %s",
		labelStyle.Render(p.label),
		p.bar.ViewAs(pct),
		countStyle.Render(fmt.Sprintf("%d/%d", current, p.total)),
	)
}

// Complete finishes the progress bar with a success indicator.
func (p *ProgressBar) Complete() {
	if !p.ui.shouldStyle() {
		return
	}
	fmt.Fprintf(p.ui.Out, "\r\033[K  %s %s %s\n",
		StyleSuccess.Render(SymbolSuccess),
		lipgloss.NewStyle().Width(18).Render(p.label),
		StyleSuccess.Render(fmt.Sprintf("%d rows in %s", p.total, time.Since(p.start).Round(time.Millisecond))),
	)
}

// Fail finishes the progress bar with an error indicator.
func (p *ProgressBar) Fail() {
	if !p.ui.shouldStyle() {
		return
	}
	fmt.Fprintf(p.ui.Out, "\r\033[K  %s %s\n", StyleError.Render(SymbolError), p.label)
}
