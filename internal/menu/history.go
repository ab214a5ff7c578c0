package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Utility-Gods/charswap/internal/db"
)

var (
	historyHeader = lipgloss.NewStyle().Bold(true)
	historyFaint  = lipgloss.NewStyle().Faint(true)
)

// RenderHistory formats records one per line, as listed by the history
// screen and the history command.
func RenderHistory(records []db.Replacement) string {
	if len(records) == 0 {
		return "No replacements recorded yet.\n"
	}

	var b strings.Builder
	b.WriteString(historyHeader.Render(fmt.Sprintf("%d replacement(s)", len(records))) + "\n")
	for _, r := range records {
		fmt.Fprintf(&b, "%s  %q  %c -> %c  %q  (%d)\n",
			historyFaint.Render(r.CreatedAt.Local().Format("2006-01-02 15:04:05")),
			r.Input,
			r.From,
			r.To,
			r.Output,
			r.Replaced,
		)
	}
	return b.String()
}
