package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lehigh-university-libraries/swatchbook/internal/carousel"
	"github.com/lehigh-university-libraries/swatchbook/internal/models"
)

// API is the subset of the server API the browser needs
type API interface {
	Sets(ctx context.Context) ([]string, error)
	Images(ctx context.Context, set string) ([]models.Image, error)
	Probe(ctx context.Context, assetPath string) error
}

type setsMsg struct {
	sets []string
	err  error
}

type imagesMsg struct {
	generation uint64
	set        string
	images     []models.Image
	err        error
}

type probeMsg struct {
	generation uint64
	index      int
	err        error
}

// stripOrder is the left-to-right order of visible coverflow roles
var stripOrder = []carousel.Role{
	carousel.RolePrev2,
	carousel.RolePrev1,
	carousel.RoleCenter,
	carousel.RoleNext1,
	carousel.RoleNext2,
}

// Model is a terminal coverflow over the sets served by a swatchbook server
type Model struct {
	ctx     context.Context
	api     API
	engine  *carousel.Engine
	styles  Styles
	spinner spinner.Model

	sets    []string
	setIdx  int
	loading bool
	status  string
	view    models.View
	width   int
}

func New(ctx context.Context, api API) *Model {
	return &Model{
		ctx:     ctx,
		api:     api,
		engine:  carousel.New(nil),
		styles:  DefaultStyles(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		loading: true,
		view:    models.View{Empty: true},
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchSets())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case setsMsg:
		m.loading = false
		if msg.err != nil {
			slog.Debug("Unable to load sets", "err", msg.err)
			m.status = "Failed to load image sets"
			return m, nil
		}
		m.sets = msg.sets
		if len(m.sets) == 0 {
			m.status = "No image sets found in Images/Styles"
			return m, nil
		}
		return m, m.loadSet(0)

	case imagesMsg:
		return m, m.applyImages(msg)

	case probeMsg:
		if msg.generation != m.engine.Generation() || msg.index != m.engine.State().Current {
			return m, nil
		}
		m.engine.EndTransition()
		if msg.err != nil {
			slog.Debug("Preview unavailable, using swatch", "index", msg.index, "err", msg.err)
			m.view = carousel.PreviewFailed(m.view)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "left", "h":
		if m.engine.Prev() {
			return m.selected()
		}
	case "right", "l":
		if m.engine.Next() {
			return m.selected()
		}
	case "tab":
		if len(m.sets) > 0 {
			return m.loadSet(carousel.Normalize(m.setIdx+1, len(m.sets)))
		}
	case "shift+tab":
		if len(m.sets) > 0 {
			return m.loadSet(carousel.Normalize(m.setIdx-1, len(m.sets)))
		}
	case "r":
		if len(m.sets) > 0 {
			return m.loadSet(m.setIdx)
		}
	}
	return nil
}

func (m *Model) fetchSets() tea.Cmd {
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		sets, err := api.Sets(ctx)
		return setsMsg{sets: sets, err: err}
	}
}

// loadSet starts fetching a set. Only the newest load is applied when
// several are in flight.
func (m *Model) loadSet(idx int) tea.Cmd {
	m.setIdx = idx
	m.loading = true
	m.status = ""

	set := m.sets[idx]
	gen := m.engine.BeginLoad()
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		images, err := api.Images(ctx, set)
		return imagesMsg{generation: gen, set: set, images: images, err: err}
	}
}

func (m *Model) applyImages(msg imagesMsg) tea.Cmd {
	if msg.err != nil {
		if msg.generation != m.engine.Generation() {
			return nil
		}
		m.loading = false
		m.engine.Apply(msg.generation, nil)
		m.view = m.engine.View()
		m.status = fmt.Sprintf("Failed to load %s: %v", msg.set, msg.err)
		return nil
	}

	if !m.engine.Apply(msg.generation, msg.images) {
		return nil
	}
	m.loading = false
	if len(msg.images) == 0 {
		m.view = m.engine.View()
		m.status = "(no images)"
		return nil
	}
	return m.selected()
}

// selected renders the new selection and, when it has a room image, holds
// the engine busy until the room image is confirmed reachable.
func (m *Model) selected() tea.Cmd {
	m.view = m.engine.View()
	if m.view.Preview.Fallback || !m.engine.BeginTransition() {
		return nil
	}

	gen := m.engine.Generation()
	idx := m.view.Current
	src := m.view.Preview.Src
	ctx, api := m.ctx, m.api
	return func() tea.Msg {
		return probeMsg{generation: gen, index: idx, err: api.Probe(ctx, src)}
	}
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderSets())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading…")
	case m.view.Empty:
		if m.status == "" {
			b.WriteString("(no images)")
		}
	default:
		b.WriteString(m.renderSelection())
		b.WriteString("\n\n")
		b.WriteString(m.renderStrip())
	}

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("←/→ browse • tab/shift+tab switch set • r reload • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderSets() string {
	parts := make([]string, 0, len(m.sets))
	for i, set := range m.sets {
		if i == m.setIdx {
			parts = append(parts, m.styles.ActiveSet.Render(set))
		} else {
			parts = append(parts, m.styles.Set.Render(set))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderSelection() string {
	var b strings.Builder
	b.WriteString(m.styles.MainTitle.Render(m.view.Title.Main))
	if m.view.Title.Sub != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.SubTitle.Render(m.view.Title.Sub))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Preview.Render(m.view.Preview.Src))
	if m.view.Preview.Fallback {
		b.WriteString(" ")
		b.WriteString(m.styles.Fallback.Render("[using fallback image]"))
	}
	return b.String()
}

// renderStrip draws the near neighbours of the selection; far items are
// only counted.
func (m *Model) renderStrip() string {
	byRole := make(map[carousel.Role]models.Thumbnail, len(stripOrder))
	for _, t := range m.view.Thumbs {
		role := carousel.Role(t.Role)
		if role != carousel.RoleFar {
			byRole[role] = t
		}
	}

	cells := make([]string, 0, len(stripOrder))
	for _, role := range stripOrder {
		t, ok := byRole[role]
		if !ok {
			continue
		}
		cells = append(cells, m.styles.Roles[role].Render(truncate(t.Name, 24)))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Center, cells...)
	return fmt.Sprintf("%s\n%d / %d", strip, m.view.Current+1, len(m.view.Thumbs))
}

// truncate shortens s to at most l runes
func truncate(s string, l int) string {
	r := []rune(s)
	if len(r) > l {
		return string(r[:l-3]) + "..."
	}
	return s
}
