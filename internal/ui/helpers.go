package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/five82/deck/internal/i18n"
)

// formatTime renders m:ss. Negative durations render as a placeholder.
func formatTime(d time.Duration) string {
	if d < 0 {
		return "—:——"
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// formatTotal renders the summed length of a track list.
func formatTotal(ms int64, tr i18n.Translator) string {
	minutes := ms / 60000
	if minutes >= 60 {
		hourKey := "duration.hours"
		if minutes/60 == 1 {
			hourKey = "duration.hour"
		}
		return fmt.Sprintf("%d %s %d %s", minutes/60, tr.T(hourKey), minutes%60, tr.T("duration.min"))
	}
	return fmt.Sprintf("%d %s", minutes, tr.T("duration.min"))
}

func truncate(value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

// progressBar draws a bar of width cells filled to fraction.
func progressBar(width int, fraction float64, styles Styles) string {
	if width <= 0 {
		return ""
	}
	switch {
	case fraction < 0:
		fraction = 0
	case fraction > 1:
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	return styles.ProgressFill.Render(strings.Repeat("━", filled)) +
		styles.ProgressEmpty.Render(strings.Repeat("─", width-filled))
}

// slider renders a percent value as a short bar with its number.
func slider(value, width int, styles Styles) string {
	return progressBar(width, float64(value)/100, styles) + fmt.Sprintf(" %3d%%", value)
}

func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
