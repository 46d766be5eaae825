package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-sim/internal/core"
	"github.com/vovakirdan/arcade-sim/internal/registry"
	"github.com/vovakirdan/arcade-sim/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 20
	maxScores          = 100
	dateLayout         = "Jan 02 15:04"
)

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardPanelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardStatsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardEmptyStyle  = boardDimStyle.Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextScene key.Binding
	PrevScene key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextScene, k.PrevScene, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextScene, k.PrevScene},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextScene: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next scene")),
		PrevScene: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev scene")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the top scores and run statistics of each scored
// scene, one scene at a time.
type ScoreboardModel struct {
	scenes    []registry.SceneInfo
	cursor    int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.SceneStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over store. A nil store shows
// empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var scenes []registry.SceneInfo
	for _, info := range registry.List() {
		if info.Scored {
			scenes = append(scenes, info)
		}
	}

	m := ScoreboardModel{
		scenes: scenes,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	if len(scenes) > 0 {
		m.loadScores(scenes[0].ID)
	}
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

// newTable sizes the columns to the space left beside the sidebar.
func (m ScoreboardModel) newTable() table.Model {
	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}
	player := 12
	if avail > 50 {
		player = core.Min(avail-38, 20)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Player", Width: player},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// loadScores reads the scores and stats of one scene. Query failures leave
// the table empty.
func (m *ScoreboardModel) loadScores(sceneID string) {
	m.scores, m.stats = nil, nil
	if m.store != nil {
		if scores, err := m.store.TopScores(sceneID, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.Stats(sceneID); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{"#" + strconv.Itoa(i+1), player, strconv.Itoa(s.Score), s.CreatedAt.Format(dateLayout)}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selectScene moves the scene cursor by delta, wrapping around.
func (m *ScoreboardModel) selectScene(delta int) {
	if len(m.scenes) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.scenes)) % len(m.scenes)
	m.loadScores(m.scenes[m.cursor].ID)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextScene):
			m.selectScene(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevScene):
			m.selectScene(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.fillTable()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.scenes) > 0 {
		title += " - " + m.scenes[m.cursor].Title
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", m.renderTable()))
	} else {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.renderTable(), m.width))
	}
	b.WriteString("\n")
	b.WriteString(m.renderStats())
	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Scenes\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	for i, info := range m.scenes {
		line := "  " + truncate(info.Title, sidebarWidth-6)
		if i == m.cursor {
			line = boardTitleStyle.Render("> " + truncate(info.Title, sidebarWidth-6))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return boardPanelStyle.Width(sidebarWidth).Render(sb.String())
}

// renderTabs lists scenes on one line, or only the current one with arrows
// when they don't fit.
func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.scenes))
	for i, info := range m.scenes {
		name := truncate(info.Title, 10)
		if i == m.cursor {
			tabs[i] = boardActiveStyle.Render(name)
		} else {
			tabs[i] = boardDimStyle.Render(" " + name + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.scenes) > 0 {
		line = fmt.Sprintf("< %s >", m.scenes[m.cursor].Title)
	}
	return line
}

func (m ScoreboardModel) renderTable() string {
	if len(m.scores) == 0 {
		return boardPanelStyle.Render(boardEmptyStyle.Render("No scores recorded yet.\nPlay a scene to set a high score!"))
	}
	return boardPanelStyle.Render(m.table.View())
}

// renderStats summarizes every run of the selected scene.
func (m ScoreboardModel) renderStats() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return ""
	}
	line := fmt.Sprintf("Runs %d  |  Best %d  |  Avg %.1f  |  Last %s",
		m.stats.RunsCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LastPlayed.Format(dateLayout))
	return boardStatsStyle.Render(centerText(line, m.width)) + "\n"
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program and reports whether
// the user went back to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
