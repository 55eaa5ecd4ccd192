package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/l9rins/foine-2025/pkg/masonry"
	"github.com/l9rins/foine-2025/pkg/post"
	"github.com/l9rins/foine-2025/pkg/timeutil"
)

const (
	cardWidth  = 32
	columnGap  = 2
	maxColumns = 4
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(cardWidth)
	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("213"))
	imageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)
	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
	likedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))
	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	skeletonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("236")).
			Foreground(lipgloss.Color("236")).
			Width(cardWidth)
)

// columnsForWidth picks the column count from the terminal width, between
// one and four columns the way the feed scales.
func columnsForWidth(width int) int {
	cols := width / (cardWidth + columnGap)
	if cols < 1 {
		cols = 1
	}
	if cols > maxColumns {
		cols = maxColumns
	}
	return cols
}

// renderCard draws one feed card. Terminals have no inline images, so the
// image slot shows the file's place in the layout instead.
func renderCard(p *post.Post, selected bool, now time.Time) string {
	inner := cardWidth - 4 // borders and padding

	var b strings.Builder
	b.WriteString(imageStyle.Render("▨ "+trim(p.ImageURL, inner-2)) + "\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(wordwrap.String(p.Title, inner)))
	if p.Description != "" {
		b.WriteString("\n" + wordwrap.String(p.Description, inner))
	}
	if names := p.TagNames(); len(names) > 0 {
		b.WriteString("\n" + tagStyle.Render(wordwrap.String("#"+strings.Join(names, " #"), inner)))
	}
	heart := "♡"
	style := faintStyle
	if p.Liked {
		heart = "♥"
		style = likedStyle
	}
	b.WriteString("\n" + style.Render(fmt.Sprintf("%s %d", heart, p.LikeCount)) +
		faintStyle.Render("  "+timeutil.Relative(p.CreatedAt.Time, now)))

	if selected {
		return selectedCardStyle.Render(b.String())
	}
	return cardStyle.Render(b.String())
}

// renderSkeleton draws a loading placeholder of the given height.
func renderSkeleton(height int) string {
	inner := cardWidth - 2
	rows := make([]string, 0, height)
	for i := 0; i < height; i++ {
		rows = append(rows, strings.Repeat("░", inner))
	}
	return skeletonStyle.Render(strings.Join(rows, "\n"))
}

// masonryView lays rendered cells out in balanced columns. Cells keep
// their reading order: the assignment walks them in sequence, so the
// first cells land in the top row.
func masonryView(cells []string, columns int) string {
	if len(cells) == 0 || columns < 1 {
		return ""
	}
	heights := make([]int, len(cells))
	for i, cell := range cells {
		heights[i] = lipgloss.Height(cell)
	}
	grouped, err := masonry.Distribute(heights, columns)
	if err != nil {
		return ""
	}

	gap := strings.Repeat(" ", columnGap)
	rendered := make([]string, 0, 2*columns-1)
	for c, indices := range grouped {
		if c > 0 {
			rendered = append(rendered, gap)
		}
		parts := make([]string, 0, len(indices))
		for _, i := range indices {
			parts = append(parts, cells[i])
		}
		rendered = append(rendered, lipgloss.JoinVertical(lipgloss.Left, parts...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func trim(s string, max int) string {
	if max <= 1 || len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
