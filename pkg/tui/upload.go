package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/l9rins/foine-2025/pkg/api"
)

const (
	uploadFieldTitle = iota
	uploadFieldDescription
	uploadFieldTags
	uploadFieldFile
	uploadFieldCount
)

var uploadLabels = [uploadFieldCount]string{"Title", "Description", "Tags", "Image file"}

// uploadModel is the upload composer overlay: four text fields and local
// validation. Submission itself belongs to the parent model, which owns
// the network round trip.
type uploadModel struct {
	inputs [uploadFieldCount]textinput.Model
	focus  int
	errMsg string
	busy   bool
}

func newUploadModel() uploadModel {
	var m uploadModel
	placeholders := [uploadFieldCount]string{
		"Give it a title",
		"Say something about it (optional)",
		"Comma separated, e.g. nature, sky",
		"Path to an image on disk",
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 256
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.setFocus(uploadFieldTitle)
	return m
}

func (m *uploadModel) setFocus(field int) tea.Cmd {
	m.focus = field
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == field {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m *uploadModel) cycleFocus(delta int) tea.Cmd {
	next := (m.focus + delta + uploadFieldCount) % uploadFieldCount
	return m.setFocus(next)
}

// submit validates the form. It returns the request to send, or nil with
// errMsg set — validation failures never reach the network.
func (m *uploadModel) submit() *api.CreateRequest {
	title := strings.TrimSpace(m.inputs[uploadFieldTitle].Value())
	filePath := strings.TrimSpace(m.inputs[uploadFieldFile].Value())
	if title == "" {
		m.errMsg = "Title is required"
		return nil
	}
	if filePath == "" {
		m.errMsg = "Please select an image"
		return nil
	}
	m.errMsg = ""

	var tags []string
	for _, tag := range strings.Split(m.inputs[uploadFieldTags].Value(), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return &api.CreateRequest{
		Title:       title,
		Description: strings.TrimSpace(m.inputs[uploadFieldDescription].Value()),
		FilePath:    filePath,
		Tags:        tags,
	}
}

// update routes a key press to the focused field.
func (m *uploadModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *uploadModel) view(width int) string {
	inner := width - 6
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Create New Post") + "\n\n")
	for i := range m.inputs {
		label := uploadLabels[i]
		style := faintStyle
		if i == m.focus {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
		}
		b.WriteString(style.Render(label) + "\n")
		b.WriteString(m.inputs[i].View() + "\n")
	}
	if m.busy {
		b.WriteString("\n" + faintStyle.Render("Uploading…"))
	} else if m.errMsg != "" {
		b.WriteString("\n" + likedStyle.Render(m.errMsg))
	} else {
		b.WriteString("\n" + faintStyle.Render("enter submit · tab next field · esc cancel"))
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("213")).
		Padding(1, 2).
		Width(inner)
	return panel.Render(b.String())
}
