// Package tui is the interactive feed client: a single Bubble Tea event
// loop over the shared post repository. All state transitions run to
// completion inside Update; network calls suspend as commands and come
// back as messages, the only asynchrony in the program.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/l9rins/foine-2025/pkg/api"
	"github.com/l9rins/foine-2025/pkg/feed"
	"github.com/l9rins/foine-2025/pkg/filter"
	"github.com/l9rins/foine-2025/pkg/masonry"
	"github.com/l9rins/foine-2025/pkg/post"
	"github.com/l9rins/foine-2025/pkg/session"
)

// Model contains the feed UI state.
type Model struct {
	repo   *feed.Repository
	likes  *feed.LikeMutator
	client *api.Client
	sess   *session.Store

	search    textinput.Model
	searching bool

	tags        []string
	selectedTag string

	visible []*post.Post
	cursor  int

	modal  ModalController
	upload uploadModel

	loading  bool
	fetchSeq int

	status string

	termWidth  int
	termHeight int
}

// New builds the feed UI over a shared repository and session.
func New(repo *feed.Repository, likes *feed.LikeMutator, client *api.Client, sess *session.Store) Model {
	search := textinput.New()
	search.Placeholder = "Search posts"
	search.CharLimit = 128
	search.Prompt = "/ "

	return Model{
		repo:     repo,
		likes:    likes,
		client:   client,
		sess:     sess,
		search:   search,
		loading:  true,
		fetchSeq: 1,
		status:   "j/k move · / search · t tag · enter detail · o new post · L like · r refresh · q quit",
	}
}

// messages
type postsLoadedMsg struct {
	seq int
	err error
}
type likeResultMsg struct {
	id  int64
	err error
}
type postCreatedMsg struct {
	post *post.Post
	err  error
}
type postDeletedMsg struct {
	id  int64
	err error
}

// Init kicks off the first feed fetch. The constructor already marked
// the model loading with sequence one, so Init only issues the command.
func (m Model) Init() tea.Cmd {
	return fetchFeed(m.repo, m.fetchSeq)
}

// fetchCmd starts a feed fetch tagged with a sequence number so a late
// response cannot clear the loading state of a newer request. The
// repository itself applies last-response-wins regardless.
func (m *Model) fetchCmd() tea.Cmd {
	m.fetchSeq++
	m.loading = true
	return fetchFeed(m.repo, m.fetchSeq)
}

func fetchFeed(repo *feed.Repository, seq int) tea.Cmd {
	return func() tea.Msg {
		_, err := repo.FetchAll(context.Background())
		return postsLoadedMsg{seq: seq, err: err}
	}
}

func (m *Model) likeCmd(id int64) tea.Cmd {
	likes := m.likes
	return func() tea.Msg {
		return likeResultMsg{id: id, err: likes.Toggle(context.Background(), id)}
	}
}

func (m *Model) createCmd(req api.CreateRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		created, err := client.CreatePost(context.Background(), req)
		return postCreatedMsg{post: created, err: err}
	}
}

func (m *Model) deleteCmd(id int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return postDeletedMsg{id: id, err: client.DeletePost(context.Background(), id)}
	}
}

// refreshDerived recomputes the visible subset and distinct tags from the
// repository snapshot. Every mutation funnels through here, so the view
// never diverges from the source of truth.
func (m *Model) refreshDerived() {
	posts := m.repo.Posts()
	m.tags = filter.DistinctTags(posts)
	if m.selectedTag != "" && !contains(m.tags, m.selectedTag) {
		m.selectedTag = ""
	}
	m.visible = filter.VisiblePosts(posts, m.search.Value(), m.selectedTag)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// cycleTag advances the tag filter: no filter, each tag in sorted order,
// back to no filter.
func (m *Model) cycleTag() {
	if len(m.tags) == 0 {
		m.selectedTag = ""
		return
	}
	if m.selectedTag == "" {
		m.selectedTag = m.tags[0]
		return
	}
	for i, name := range m.tags {
		if name == m.selectedTag {
			if i+1 < len(m.tags) {
				m.selectedTag = m.tags[i+1]
			} else {
				m.selectedTag = ""
			}
			return
		}
	}
	m.selectedTag = ""
}

func (m *Model) selectedPost() *post.Post {
	if len(m.visible) == 0 || m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return m.visible[m.cursor]
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height

	case postsLoadedMsg:
		if msg.seq == m.fetchSeq {
			m.loading = false
			if msg.err != nil {
				m.status = "Could not load the feed: " + msg.err.Error()
			} else {
				m.status = fmt.Sprintf("Loaded %d posts", m.repo.Len())
			}
		}
		m.refreshDerived()

	case likeResultMsg:
		if msg.err != nil {
			m.status = "Like failed: " + msg.err.Error()
		}
		m.refreshDerived()

	case postCreatedMsg:
		m.upload.busy = false
		if msg.err != nil {
			m.upload.errMsg = msg.err.Error()
			m.status = "Upload failed: " + msg.err.Error()
			break
		}
		m.repo.Prepend(msg.post)
		if m.modal.State() == ModalUpload {
			// Auto-dismiss on success: the feed reflecting the new post
			// is the completion signal.
			m.modal.Close()
		}
		m.status = "Posted " + msg.post.Title
		m.refreshDerived()

	case postDeletedMsg:
		if msg.err != nil {
			m.status = "Delete failed: " + msg.err.Error()
			break
		}
		m.repo.Remove(msg.id)
		if d := m.modal.Detail(); d != nil && d.ID == msg.id {
			m.modal.Close()
		}
		m.status = "Deleted"
		m.refreshDerived()

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg)...)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch m.modal.State() {
	case ModalUpload:
		switch msg.String() {
		case "esc":
			m.modal.Close()
			m.status = "Upload cancelled"
		case "tab", "down":
			if cmd := m.upload.cycleFocus(1); cmd != nil {
				cmds = append(cmds, cmd)
			}
		case "shift+tab", "up":
			if cmd := m.upload.cycleFocus(-1); cmd != nil {
				cmds = append(cmds, cmd)
			}
		case "enter":
			if m.upload.busy {
				break
			}
			if req := m.upload.submit(); req != nil {
				m.upload.busy = true
				cmds = append(cmds, m.createCmd(*req))
			}
		default:
			if cmd := m.upload.update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return cmds

	case ModalDetail:
		switch msg.String() {
		case "esc", "q":
			m.modal.Close()
		case "l", "L", " ":
			if d := m.modal.Detail(); d != nil {
				cmds = append(cmds, m.likeCmd(d.ID))
			}
		case "d":
			if d := m.modal.Detail(); d != nil {
				cmds = append(cmds, m.deleteCmd(d.ID))
			}
		}
		return cmds
	}

	if m.searching {
		switch msg.String() {
		case "enter", "esc":
			m.searching = false
			m.search.Blur()
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.refreshDerived()
		return cmds
	}

	switch msg.String() {
	case "q", "ctrl+c":
		cmds = append(cmds, tea.Quit)
	case "/":
		m.searching = true
		if cmd := m.search.Focus(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, textinput.Blink)
	case "j", "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		if len(m.visible) > 0 {
			m.cursor = len(m.visible) - 1
		}
	case "t":
		m.cycleTag()
		m.refreshDerived()
	case "T":
		m.selectedTag = ""
		m.refreshDerived()
	case "enter", "v":
		if p := m.selectedPost(); p != nil {
			m.modal.OpenDetail(p)
		}
	case "o", "n":
		m.upload = newUploadModel()
		m.modal.OpenUpload()
		cmds = append(cmds, textinput.Blink)
	case "L", " ":
		if p := m.selectedPost(); p != nil {
			cmds = append(cmds, m.likeCmd(p.ID))
		}
	case "r":
		cmds = append(cmds, m.fetchCmd())
	case "x":
		m.search.Reset()
		m.refreshDerived()
	}
	return cmds
}

// View renders the feed, or the active overlay in its place.
func (m Model) View() string {
	width := m.termWidth
	if width <= 0 {
		width = 80
	}

	header := lipgloss.NewStyle().Bold(true).Render("Foiné") +
		faintStyle.Render("  @"+m.sess.Identity().Username)

	searchLine := m.search.View()
	tagLine := m.tagLine()

	var body string
	switch m.modal.State() {
	case ModalUpload:
		body = m.upload.view(min(width, 64))
	case ModalDetail:
		body = renderDetail(m.modal.Detail(), width, m.sess.Identity().Username, time.Now())
	default:
		body = m.feedView(width)
	}

	status := faintStyle.Render(m.status)
	return strings.Join([]string{header, searchLine, tagLine, "", body, "", status}, "\n")
}

func (m Model) feedView(width int) string {
	columns := columnsForWidth(width)

	if m.loading && len(m.visible) == 0 {
		heights := masonry.SkeletonHeights(2 * columns)
		cells := make([]string, len(heights))
		for i, h := range heights {
			cells[i] = renderSkeleton(h)
		}
		return masonryView(cells, columns)
	}

	if len(m.visible) == 0 {
		return faintStyle.Render("Nothing here yet. Press o to post something.")
	}

	now := time.Now()
	cells := make([]string, len(m.visible))
	for i, p := range m.visible {
		cells[i] = renderCard(p, i == m.cursor, now)
	}
	return masonryView(cells, columns)
}

func (m Model) tagLine() string {
	if len(m.tags) == 0 {
		return faintStyle.Render("no tags")
	}
	parts := make([]string, 0, len(m.tags))
	for _, name := range m.tags {
		if name == m.selectedTag {
			parts = append(parts, lipgloss.NewStyle().
				Foreground(lipgloss.Color("213")).Bold(true).Render("#"+name))
		} else {
			parts = append(parts, tagStyle.Render("#"+name))
		}
	}
	return strings.Join(parts, " ")
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// Run starts the interactive feed.
func Run(repo *feed.Repository, likes *feed.LikeMutator, client *api.Client, sess *session.Store) error {
	p := tea.NewProgram(New(repo, likes, client, sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
