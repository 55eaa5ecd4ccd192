package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/l9rins/foine-2025/pkg/post"
	"github.com/l9rins/foine-2025/pkg/timeutil"
)

// renderDetail draws the full post overlay: image reference, author,
// age, description, tags, and the action hints.
func renderDetail(p *post.Post, width int, username string, now time.Time) string {
	inner := width - 8
	if inner < 24 {
		inner = 24
	}
	if inner > 72 {
		inner = 72
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(wordwrap.String(p.Title, inner)) + "\n")
	b.WriteString(imageStyle.Render("▨ "+p.ImageURL) + "\n\n")

	b.WriteString(faintStyle.Render("Posted by ") + "@" + username +
		faintStyle.Render(" · "+timeutil.Relative(p.CreatedAt.Time, now)) + "\n\n")

	desc := p.Description
	if desc == "" {
		desc = "No description provided."
	}
	b.WriteString(wordwrap.String(desc, inner) + "\n")

	if names := p.TagNames(); len(names) > 0 {
		b.WriteString("\n" + tagStyle.Render(wordwrap.String("#"+strings.Join(names, " #"), inner)) + "\n")
	}

	heart := "♡"
	style := faintStyle
	if p.Liked {
		heart = "♥"
		style = likedStyle
	}
	b.WriteString("\n" + style.Render(fmt.Sprintf("%s %d", heart, p.LikeCount)))
	b.WriteString("\n\n" + faintStyle.Render("l like · d delete · esc close"))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("39")).
		Padding(1, 2).
		Width(inner + 4)
	return panel.Render(b.String())
}
