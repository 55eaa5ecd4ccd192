package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/l9rins/foine-2025/pkg/post"
	"github.com/l9rins/foine-2025/pkg/timeutil"
)

// PrettyPrint renders feed posts for plain CLI output.
type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints a bold, underlined section header.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// TitleWithCount prints a header with a faint post count.
func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)
	switch count {
	case 1:
		_, _ = c.Println(" post")
	default:
		_, _ = c.Println(" posts")
	}
}

// Feed prints posts as a table: like count, title, tags, and age.
func (pp *PrettyPrint) Feed(posts ...*post.Post) {
	if len(posts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	now := time.Now()
	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("ID", "♥", "Title", "Tags", "Posted")
	} else {
		tbl.AddRow("♥", "Title", "Tags", "Posted")
	}
	for _, p := range posts {
		heart := fmt.Sprintf("%d", p.LikeCount)
		if p.Liked {
			heart = fmt.Sprintf("%d ♥", p.LikeCount)
		}
		tags := strings.Join(p.TagNames(), " #")
		if tags != "" {
			tags = "#" + tags
		}
		posted := timeutil.Relative(p.CreatedAt.Time, now)
		if pp.ShowID {
			tbl.AddRow(fmt.Sprintf("%d", p.ID), heart, p.Title, tags, posted)
		} else {
			tbl.AddRow(heart, p.Title, tags, posted)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Detail prints one post in full.
func (pp *PrettyPrint) Detail(p *post.Post) {
	if p == nil {
		return
	}
	pp.Title(p.Title)

	t := color.New()
	faint := color.New(color.Faint)

	desc := p.Description
	if desc == "" {
		desc = "No description provided."
	}
	_, _ = t.Println(desc)
	if names := p.TagNames(); len(names) > 0 {
		_, _ = t.Printf("#%s\n", strings.Join(names, " #"))
	}
	_, _ = faint.Printf("♥ %d · %s · %s\n", p.LikeCount,
		timeutil.Relative(p.CreatedAt.Time, time.Now()), p.ImageURL)
}
